package backend

import (
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/shopspring/decimal"
)

type categoryDTO struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	ParentID     *int64 `json:"parent_id"`
	NameRu       string `json:"name_ru"`
	NameUz       string `json:"name_uz"`
	ImageURL     string `json:"image_url"`
	SortOrder    *int   `json:"sort_order"`
	IsActive     bool   `json:"is_active"`
}

// productDTO: цена тары приходит null, если у товара нет тары.
type productDTO struct {
	ID             int64               `json:"id"`
	RestaurantID   int64               `json:"restaurant_id"`
	CategoryID     int64               `json:"category_id"`
	CategoryName   string              `json:"category_name"`
	NameRu         string              `json:"name_ru"`
	NameUz         string              `json:"name_uz"`
	DescriptionRu  string              `json:"description_ru"`
	DescriptionUz  string              `json:"description_uz"`
	Price          decimal.Decimal     `json:"price"`
	Unit           string              `json:"unit"`
	ContainerID    *int64              `json:"container_id"`
	ContainerName  string              `json:"container_name"`
	ContainerPrice decimal.NullDecimal `json:"container_price"`
	InStock        bool                `json:"in_stock"`
	ImageURL       string              `json:"image_url"`
}

type restaurantDTO struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Phone      string          `json:"phone"`
	LogoURL    string          `json:"logo_url"`
	ServiceFee decimal.Decimal `json:"service_fee"`
	ClickURL   string          `json:"click_url"`
	PaymeURL   string          `json:"payme_url"`
}

type orderItemDTO struct {
	ProductID   *int64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
}

// createOrderReq — тело POST /orders. Координаты передаются строкой "lat,lng".
type createOrderReq struct {
	Items               []orderItemDTO `json:"items"`
	RestaurantID        int64          `json:"restaurant_id,omitempty"`
	DeliveryAddress     string         `json:"delivery_address"`
	DeliveryCoordinates *string        `json:"delivery_coordinates"`
	CustomerName        string         `json:"customer_name"`
	CustomerPhone       string         `json:"customer_phone"`
	PaymentMethod       string         `json:"payment_method"`
	Comment             string         `json:"comment"`
	DeliveryDate        string         `json:"delivery_date"`
	DeliveryTime        string         `json:"delivery_time"`
}

type createOrderRes struct {
	Message string `json:"message"`
	Order   struct {
		OrderNumber   string          `json:"order_number"`
		TotalAmount   decimal.Decimal `json:"total_amount"`
		PaymentMethod string          `json:"payment_method"`
		Status        string          `json:"status"`
	} `json:"order"`
}

type deliveryCalcReq struct {
	RestaurantID int64   `json:"restaurant_id"`
	CustomerLat  float64 `json:"customer_lat"`
	CustomerLng  float64 `json:"customer_lng"`
}

type deliveryCalcRes struct {
	DeliveryCost   decimal.Decimal `json:"delivery_cost"`
	DistanceKm     float64         `json:"distance_km"`
	DistanceType   string          `json:"distance_type"`
	FreeDelivery   bool            `json:"free_delivery"`
	BaseRadiusKm   float64         `json:"base_radius_km"`
	BasePrice      decimal.Decimal `json:"base_price"`
	PricePerKm     decimal.Decimal `json:"price_per_km"`
	RestaurantName string          `json:"restaurant_name"`
}

type errorRes struct {
	Error string `json:"error"`
}

func (c categoryDTO) toEntity() domain.Category {
	return domain.Category{
		ID:           c.ID,
		RestaurantID: c.RestaurantID,
		ParentID:     c.ParentID,
		NameRu:       c.NameRu,
		NameUz:       c.NameUz,
		ImageURL:     c.ImageURL,
		SortOrder:    c.SortOrder,
		IsActive:     c.IsActive,
	}
}

func (p productDTO) toEntity() domain.Product {
	containerPrice := decimal.Zero
	if p.ContainerPrice.Valid {
		containerPrice = p.ContainerPrice.Decimal
	}

	return domain.Product{
		ID:             p.ID,
		RestaurantID:   p.RestaurantID,
		CategoryID:     p.CategoryID,
		CategoryName:   p.CategoryName,
		NameRu:         p.NameRu,
		NameUz:         p.NameUz,
		DescriptionRu:  p.DescriptionRu,
		DescriptionUz:  p.DescriptionUz,
		Price:          p.Price,
		Unit:           p.Unit,
		ContainerID:    p.ContainerID,
		ContainerName:  p.ContainerName,
		ContainerPrice: containerPrice,
		InStock:        p.InStock,
		ImageURL:       p.ImageURL,
	}
}

func (r restaurantDTO) toEntity() domain.Restaurant {
	return domain.Restaurant{
		ID:         r.ID,
		Name:       r.Name,
		Address:    r.Address,
		Phone:      r.Phone,
		LogoURL:    r.LogoURL,
		ServiceFee: r.ServiceFee,
		ClickURL:   r.ClickURL,
		PaymeURL:   r.PaymeURL,
		IsActive:   true,
	}
}

func newCreateOrderReq(d *domain.OrderDraft) createOrderReq {
	items := make([]orderItemDTO, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, orderItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Price:       it.Price,
		})
	}

	req := createOrderReq{
		Items:           items,
		RestaurantID:    d.RestaurantID,
		DeliveryAddress: d.DeliveryAddress,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		PaymentMethod:   string(d.PaymentMethod),
		Comment:         d.Comment,
		DeliveryDate:    d.DeliveryDate,
		DeliveryTime:    d.DeliveryTime,
	}
	if d.DeliveryCoordinates != nil {
		s := d.DeliveryCoordinates.String()
		req.DeliveryCoordinates = &s
	}

	return req
}

func (r createOrderRes) toAck() *domain.OrderAck {
	return &domain.OrderAck{
		Message:       r.Message,
		OrderNumber:   r.Order.OrderNumber,
		TotalAmount:   r.Order.TotalAmount,
		PaymentMethod: domain.PaymentMethod(r.Order.PaymentMethod),
		Status:        domain.OrderStatus(r.Order.Status),
	}
}

func (r deliveryCalcRes) toQuote() *domain.DeliveryQuote {
	return &domain.DeliveryQuote{
		Cost:           r.DeliveryCost,
		DistanceKm:     r.DistanceKm,
		DistanceType:   domain.DistanceType(r.DistanceType),
		FreeDelivery:   r.FreeDelivery,
		RestaurantName: r.RestaurantName,
		Tariff: domain.DeliveryTariff{
			BaseRadiusKm: r.BaseRadiusKm,
			BasePrice:    r.BasePrice,
			PricePerKm:   r.PricePerKm,
		},
	}
}
