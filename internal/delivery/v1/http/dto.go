package http

import (
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/money"
	"github.com/shopspring/decimal"
)

// API меню и заказов

type CategoryResponse struct {
	ID           int64  `json:"id"`
	RestaurantID int64  `json:"restaurant_id"`
	ParentID     *int64 `json:"parent_id"`
	NameRu       string `json:"name_ru"`
	NameUz       string `json:"name_uz"`
	ImageURL     string `json:"image_url"`
	SortOrder    *int   `json:"sort_order"`
	IsActive     bool   `json:"is_active"`
}

// ProductResponse: container_price равен null, если у товара нет тары.
type ProductResponse struct {
	ID             int64               `json:"id"`
	RestaurantID   int64               `json:"restaurant_id"`
	CategoryID     int64               `json:"category_id"`
	CategoryName   string              `json:"category_name"`
	NameRu         string              `json:"name_ru"`
	NameUz         string              `json:"name_uz"`
	DescriptionRu  string              `json:"description_ru"`
	DescriptionUz  string              `json:"description_uz"`
	Price          decimal.Decimal     `json:"price" swaggertype:"string"`
	Unit           string              `json:"unit"`
	ContainerID    *int64              `json:"container_id"`
	ContainerName  string              `json:"container_name"`
	ContainerPrice decimal.NullDecimal `json:"container_price" swaggertype:"string"`
	InStock        bool                `json:"in_stock"`
	ImageURL       string              `json:"image_url"`
}

type RestaurantResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Address    string          `json:"address"`
	Phone      string          `json:"phone"`
	LogoURL    string          `json:"logo_url"`
	ServiceFee decimal.Decimal `json:"service_fee" swaggertype:"string"`
	ClickURL   string          `json:"click_url"`
	PaymeURL   string          `json:"payme_url"`
}

type OrderItemRequest struct {
	ProductID   *int64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
}

// CreateOrderRequest — тело POST /orders. Координаты передаются строкой "lat,lng".
type CreateOrderRequest struct {
	Items               []OrderItemRequest `json:"items"`
	RestaurantID        int64              `json:"restaurant_id"`
	DeliveryAddress     string             `json:"delivery_address"`
	DeliveryCoordinates *string            `json:"delivery_coordinates"`
	CustomerName        string             `json:"customer_name"`
	CustomerPhone       string             `json:"customer_phone"`
	PaymentMethod       string             `json:"payment_method"`
	Comment             string             `json:"comment"`
	DeliveryDate        string             `json:"delivery_date"`
	DeliveryTime        string             `json:"delivery_time"`
}

type OrderItemResponse struct {
	ProductID   *int64          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Total       decimal.Decimal `json:"total" swaggertype:"string"`
}

type OrderResponse struct {
	ID                  int64               `json:"id"`
	OrderNumber         string              `json:"order_number"`
	RestaurantID        int64               `json:"restaurant_id,omitempty"`
	TotalAmount         decimal.Decimal     `json:"total_amount" swaggertype:"string"`
	DeliveryAddress     string              `json:"delivery_address"`
	DeliveryCoordinates *string             `json:"delivery_coordinates"`
	CustomerName        string              `json:"customer_name"`
	CustomerPhone       string              `json:"customer_phone"`
	PaymentMethod       string              `json:"payment_method"`
	Comment             string              `json:"comment"`
	DeliveryDate        string              `json:"delivery_date"`
	DeliveryTime        string              `json:"delivery_time"`
	Status              string              `json:"status"`
	CreatedAt           time.Time           `json:"created_at"`
	Items               []OrderItemResponse `json:"items"`
}

type CreateOrderResponse struct {
	Message string        `json:"message"`
	Order   OrderResponse `json:"order"`
}

type DeliveryCalcRequest struct {
	RestaurantID int64    `json:"restaurant_id"`
	CustomerLat  *float64 `json:"customer_lat"`
	CustomerLng  *float64 `json:"customer_lng"`
}

type DeliveryQuoteResponse struct {
	DeliveryCost   decimal.Decimal `json:"delivery_cost" swaggertype:"string"`
	DeliveryText   string          `json:"delivery_cost_display"`
	DistanceKm     float64         `json:"distance_km"`
	DistanceType   string          `json:"distance_type,omitempty"`
	FreeDelivery   bool            `json:"free_delivery"`
	BaseRadiusKm   float64         `json:"base_radius_km"`
	BasePrice      decimal.Decimal `json:"base_price" swaggertype:"string"`
	PricePerKm     decimal.Decimal `json:"price_per_km" swaggertype:"string"`
	RestaurantName string          `json:"restaurant_name"`
	Message        string          `json:"message,omitempty"`
}

type DeliveryInfoResponse struct {
	BaseRadiusKm float64         `json:"base_radius_km"`
	BasePrice    decimal.Decimal `json:"base_price" swaggertype:"string"`
	PricePerKm   decimal.Decimal `json:"price_per_km" swaggertype:"string"`
	Description  string          `json:"description"`
}

// Витрина

type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ProfileDTO struct {
	FullName     string          `json:"full_name"`
	Phone        string          `json:"phone"`
	LastAddress  string          `json:"last_address"`
	LastLocation *CoordinatesDTO `json:"last_location"`
}

type SessionResponse struct {
	SessionID          string     `json:"session_id"`
	RestaurantID       *int64     `json:"restaurant_id"`
	Language           string     `json:"language"`
	SelectedCategoryID *int64     `json:"selected_category_id"`
	Profile            ProfileDTO `json:"profile"`
}

type SelectRestaurantRequest struct {
	RestaurantID int64 `json:"restaurant_id"`
}

type CategoryRefResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

type CategoryGroupResponse struct {
	Category CategoryRefResponse   `json:"category"`
	Children []CategoryRefResponse `json:"children"`
}

type StorefrontProductResponse struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price" swaggertype:"string"`
	PriceDisplay   string          `json:"price_display"`
	Unit           string          `json:"unit"`
	ContainerPrice decimal.Decimal `json:"container_price" swaggertype:"string"`
	InStock        bool            `json:"in_stock"`
	ImageURL       string          `json:"image_url"`
}

type SectionResponse struct {
	CategoryID int64                       `json:"category_id"`
	Title      string                      `json:"title"`
	Anchor     string                      `json:"anchor"`
	Products   []StorefrontProductResponse `json:"products"`
}

type CatalogViewResponse struct {
	RestaurantID int64                   `json:"restaurant_id"`
	Language     string                  `json:"language"`
	Selected     *CategoryRefResponse    `json:"selected"`
	Groups       []CategoryGroupResponse `json:"groups"`
	Sections     []SectionResponse       `json:"sections"`
	Empty        bool                    `json:"empty"`
	ScrollToTop  bool                    `json:"scroll_to_top"`
}

type CartLineResponse struct {
	ProductID      int64           `json:"product_id"`
	RestaurantID   int64           `json:"restaurant_id"`
	Title          string          `json:"title"`
	Unit           string          `json:"unit"`
	Price          decimal.Decimal `json:"price" swaggertype:"string"`
	ContainerPrice decimal.Decimal `json:"container_price" swaggertype:"string"`
	Quantity       int             `json:"quantity"`
	Subtotal       decimal.Decimal `json:"subtotal" swaggertype:"string"`
	ImageURL       string          `json:"image_url"`
}

type CartResponse struct {
	Items          []CartLineResponse `json:"items"`
	Count          int                `json:"count"`
	ProductTotal   decimal.Decimal    `json:"product_total" swaggertype:"string"`
	ContainerTotal decimal.Decimal    `json:"container_total" swaggertype:"string"`
	Total          decimal.Decimal    `json:"total" swaggertype:"string"`
	TotalDisplay   string             `json:"total_display"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type SlotsResponse struct {
	Date               string   `json:"date"`
	Slots              []string `json:"slots"`
	ScheduledAvailable bool     `json:"scheduled_available"`
}

type CheckoutRequest struct {
	CustomerName        string          `json:"customer_name"`
	CustomerPhone       string          `json:"customer_phone"`
	DeliveryAddress     string          `json:"delivery_address"`
	DeliveryCoordinates *CoordinatesDTO `json:"delivery_coordinates"`
	PaymentMethod       string          `json:"payment_method"`
	Comment             string          `json:"comment"`
	DeliveryTime        string          `json:"delivery_time"`
}

type PrefillResponse struct {
	CustomerName        string          `json:"customer_name"`
	CustomerPhone       string          `json:"customer_phone"`
	DeliveryAddress     string          `json:"delivery_address"`
	DeliveryCoordinates *CoordinatesDTO `json:"delivery_coordinates"`
	PaymentMethod       string          `json:"payment_method"`
	DeliveryTime        string          `json:"delivery_time"`
}

type ReceiptResponse struct {
	OrderNumber     string              `json:"order_number"`
	RestaurantID    int64               `json:"restaurant_id"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal     `json:"total_amount" swaggertype:"string"`
	TotalDisplay    string              `json:"total_display"`
	PaymentMethod   string              `json:"payment_method"`
	DeliveryAddress string              `json:"delivery_address"`
	DeliveryDate    string              `json:"delivery_date"`
	DeliveryTime    string              `json:"delivery_time"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
}

// MAPPERS

func newCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
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

func newProductResponse(p domain.Product) ProductResponse {
	var containerPrice decimal.NullDecimal
	if p.ContainerID != nil {
		containerPrice = decimal.NewNullDecimal(p.ContainerPrice)
	}

	return ProductResponse{
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

func newRestaurantResponse(r domain.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:         r.ID,
		Name:       r.Name,
		Address:    r.Address,
		Phone:      r.Phone,
		LogoURL:    r.LogoURL,
		ServiceFee: r.ServiceFee,
		ClickURL:   r.ClickURL,
		PaymeURL:   r.PaymeURL,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}

// toDraft переводит тело POST /orders в черновик. Нечитаемые координаты дают ошибку запроса.
func (req CreateOrderRequest) toDraft() (*domain.OrderDraft, error) {
	draft := &domain.OrderDraft{
		Items: mapSlice(req.Items, func(it OrderItemRequest) domain.OrderItem {
			return domain.OrderItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				Unit:        it.Unit,
				Price:       it.Price,
			}
		}),
		RestaurantID:    req.RestaurantID,
		DeliveryAddress: req.DeliveryAddress,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		Comment:         req.Comment,
		DeliveryDate:    req.DeliveryDate,
		DeliveryTime:    req.DeliveryTime,
	}

	if req.DeliveryCoordinates != nil && *req.DeliveryCoordinates != "" {
		coords, err := domain.ParseCoordinates(*req.DeliveryCoordinates)
		if err != nil {
			return nil, err
		}
		draft.DeliveryCoordinates = &coords
	}

	return draft, nil
}

func newOrderItemResponse(it domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		Unit:        it.Unit,
		Price:       it.Price,
		Total:       it.Total(),
	}
}

func newOrderResponse(o *domain.Order) OrderResponse {
	var coords *string
	if o.DeliveryCoordinates != nil {
		s := o.DeliveryCoordinates.String()
		coords = &s
	}

	return OrderResponse{
		ID:                  o.ID,
		OrderNumber:         o.OrderNumber,
		RestaurantID:        o.RestaurantID,
		TotalAmount:         o.TotalAmount,
		DeliveryAddress:     o.DeliveryAddress,
		DeliveryCoordinates: coords,
		CustomerName:        o.CustomerName,
		CustomerPhone:       o.CustomerPhone,
		PaymentMethod:       string(o.PaymentMethod),
		Comment:             o.Comment,
		DeliveryDate:        o.DeliveryDate,
		DeliveryTime:        o.DeliveryTime,
		Status:              string(o.Status),
		CreatedAt:           o.CreatedAt,
		Items:               mapSlice(o.Items, newOrderItemResponse),
	}
}

func newDeliveryQuoteResponse(q *domain.DeliveryQuote) DeliveryQuoteResponse {
	res := DeliveryQuoteResponse{
		DeliveryCost:   q.Cost,
		DeliveryText:   money.Format(q.Cost),
		DistanceKm:     q.DistanceKm,
		DistanceType:   string(q.DistanceType),
		FreeDelivery:   q.FreeDelivery,
		BaseRadiusKm:   q.Tariff.BaseRadiusKm,
		BasePrice:      q.Tariff.BasePrice,
		PricePerKm:     q.Tariff.PricePerKm,
		RestaurantName: q.RestaurantName,
	}
	if q.FreeDelivery {
		res.Message = "Координаты ресторана не указаны - бесплатная доставка"
	}

	return res
}

func newCoordinatesDTO(c *domain.Coordinates) *CoordinatesDTO {
	if c == nil {
		return nil
	}
	return &CoordinatesDTO{Lat: c.Lat, Lng: c.Lng}
}

func (c *CoordinatesDTO) toDomain() *domain.Coordinates {
	if c == nil {
		return nil
	}
	return &domain.Coordinates{Lat: c.Lat, Lng: c.Lng}
}

func newSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:          s.ID,
		RestaurantID:       s.RestaurantID,
		Language:           string(s.Language),
		SelectedCategoryID: s.SelectedCategoryID,
		Profile: ProfileDTO{
			FullName:     s.Profile.FullName,
			Phone:        s.Profile.Phone,
			LastAddress:  s.Profile.LastAddress,
			LastLocation: newCoordinatesDTO(s.Profile.LastLocation),
		},
	}
}

func newCategoryRefResponse(c usecase.CategoryRef) CategoryRefResponse {
	return CategoryRefResponse{ID: c.ID, Title: c.Title, ImageURL: c.ImageURL}
}

func newCatalogViewResponse(v *usecase.CatalogView) CatalogViewResponse {
	res := CatalogViewResponse{
		RestaurantID: v.RestaurantID,
		Language:     string(v.Language),
		Empty:        v.Empty,
		ScrollToTop:  v.ScrollToTop,
		Groups: mapSlice(v.Groups, func(g usecase.CategoryGroup) CategoryGroupResponse {
			return CategoryGroupResponse{
				Category: newCategoryRefResponse(g.Category),
				Children: mapSlice(g.Children, newCategoryRefResponse),
			}
		}),
		Sections: mapSlice(v.Sections, func(s usecase.ProductSection) SectionResponse {
			return SectionResponse{
				CategoryID: s.CategoryID,
				Title:      s.Title,
				Anchor:     s.Anchor,
				Products: mapSlice(s.Products, func(p domain.Product) StorefrontProductResponse {
					return newStorefrontProduct(p, v.Language)
				}),
			}
		}),
	}
	if v.Selected != nil {
		ref := newCategoryRefResponse(*v.Selected)
		res.Selected = &ref
	}

	return res
}

func newStorefrontProduct(p domain.Product, lang domain.Language) StorefrontProductResponse {
	description := p.DescriptionRu
	if lang == domain.LanguageUz && p.DescriptionUz != "" {
		description = p.DescriptionUz
	}

	return StorefrontProductResponse{
		ID:             p.ID,
		Title:          p.Title(lang),
		Description:    description,
		Price:          p.Price,
		PriceDisplay:   money.Format(p.Price),
		Unit:           p.Unit,
		ContainerPrice: p.ContainerPrice,
		InStock:        p.InStock,
		ImageURL:       p.ImageURL,
	}
}

func newCartResponse(c *usecase.CartView, lang domain.Language) CartResponse {
	return CartResponse{
		Items: mapSlice(c.Lines, func(l domain.CartLine) CartLineResponse {
			return CartLineResponse{
				ProductID:      l.ProductID,
				RestaurantID:   l.RestaurantID,
				Title:          l.Title(lang),
				Unit:           l.Unit,
				Price:          l.Price,
				ContainerPrice: l.ContainerPrice,
				Quantity:       l.Quantity,
				Subtotal:       l.Subtotal(),
				ImageURL:       l.ImageURL,
			}
		}),
		Count:          c.Count,
		ProductTotal:   c.ProductTotal,
		ContainerTotal: c.ContainerTotal,
		Total:          c.Total,
		TotalDisplay:   money.Format(c.Total),
	}
}

func (req CheckoutRequest) toForm() domain.OrderForm {
	return domain.OrderForm{
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		DeliveryAddress:     req.DeliveryAddress,
		DeliveryCoordinates: req.DeliveryCoordinates.toDomain(),
		PaymentMethod:       domain.PaymentMethod(req.PaymentMethod),
		Comment:             req.Comment,
		DeliveryTime:        req.DeliveryTime,
	}
}

func newPrefillResponse(p *usecase.CheckoutPrefill) PrefillResponse {
	return PrefillResponse{
		CustomerName:        p.CustomerName,
		CustomerPhone:       p.CustomerPhone,
		DeliveryAddress:     p.DeliveryAddress,
		DeliveryCoordinates: newCoordinatesDTO(p.DeliveryCoordinates),
		PaymentMethod:       string(p.PaymentMethod),
		DeliveryTime:        p.DeliveryTime,
	}
}

func newReceiptResponse(r *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		OrderNumber:     r.OrderNumber,
		RestaurantID:    r.RestaurantID,
		Items:           mapSlice(r.Items, newOrderItemResponse),
		TotalAmount:     r.TotalAmount,
		TotalDisplay:    money.Format(r.TotalAmount),
		PaymentMethod:   string(r.PaymentMethod),
		DeliveryAddress: r.DeliveryAddress,
		DeliveryDate:    r.DeliveryDate,
		DeliveryTime:    r.DeliveryTime,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
	}
}
