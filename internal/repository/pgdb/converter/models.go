package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID           int64      `db:"id"`
	RestaurantID int64      `db:"restaurant_id"`
	ParentID     *int64     `db:"parent_id"`
	NameRu       string     `db:"name_ru"`
	NameUz       string     `db:"name_uz"`
	ImageURL     string     `db:"image_url"`
	SortOrder    *int32     `db:"sort_order"`
	IsActive     bool       `db:"is_active"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products вместе с названием категории и тарой.
type ProductModel struct {
	ID             int64           `db:"id"`
	RestaurantID   int64           `db:"restaurant_id"`
	CategoryID     int64           `db:"category_id"`
	CategoryName   *string         `db:"category_name"`
	NameRu         string          `db:"name_ru"`
	NameUz         string          `db:"name_uz"`
	DescriptionRu  string          `db:"description_ru"`
	DescriptionUz  string          `db:"description_uz"`
	Price          decimal.Decimal `db:"price"`
	Unit           string          `db:"unit"`
	ContainerID    *int64          `db:"container_id"`
	ContainerName  *string         `db:"container_name"`
	ContainerPrice decimal.Decimal `db:"container_price"`
	InStock        bool            `db:"in_stock"`
	ImageURL       string          `db:"image_url"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      *time.Time      `db:"updated_at"`
}

// RestaurantModel представляет запись таблицы restaurants в PostgreSQL.
type RestaurantModel struct {
	ID         int64           `db:"id"`
	Name       string          `db:"name"`
	Address    string          `db:"address"`
	Phone      string          `db:"phone"`
	LogoURL    string          `db:"logo_url"`
	ServiceFee decimal.Decimal `db:"service_fee"`
	Latitude   *float64        `db:"latitude"`
	Longitude  *float64        `db:"longitude"`
	ClickURL   string          `db:"click_url"`
	PaymeURL   string          `db:"payme_url"`
	IsActive   bool            `db:"is_active"`
	CreatedAt  time.Time       `db:"created_at"`
}

// OrderModel представляет запись таблицы orders. Координаты хранятся строкой "lat,lng".
type OrderModel struct {
	ID                  int64           `db:"id"`
	OrderNumber         string          `db:"order_number"`
	RestaurantID        *int64          `db:"restaurant_id"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	DeliveryAddress     string          `db:"delivery_address"`
	DeliveryCoordinates *string         `db:"delivery_coordinates"`
	CustomerName        string          `db:"customer_name"`
	CustomerPhone       string          `db:"customer_phone"`
	PaymentMethod       string          `db:"payment_method"`
	Comment             string          `db:"comment"`
	DeliveryDate        string          `db:"delivery_date"`
	DeliveryTime        string          `db:"delivery_time"`
	Status              string          `db:"status"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           *time.Time      `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items.
type OrderItemModel struct {
	ID          int64           `db:"id"`
	OrderID     int64           `db:"order_id"`
	ProductID   *int64          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int32           `db:"quantity"`
	Unit        string          `db:"unit"`
	Price       decimal.Decimal `db:"price"`
	Total       decimal.Decimal `db:"total"`
}

// OutboxEventModel представляет запись таблицы outbox_events.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID int64      `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
