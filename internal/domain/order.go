package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PinnedLocationAddress подставляется в адрес, когда клиент указал только точку на карте.
const PinnedLocationAddress = "Доставка по геолокации"

// DeliveryASAP — доставка как можно скорее.
const DeliveryASAP = "asap"

// DeliveryDateLayout — формат delivery_date.
const DeliveryDateLayout = "2006-01-02"

type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentClick PaymentMethod = "click"
	PaymentPayme PaymentMethod = "payme"
)

// IsValid: пустое значение допустимо и означает оплату наличными.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case "", PaymentCash, PaymentCard, PaymentClick, PaymentPayme:
		return true
	default:
		return false
	}
}

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem — позиция заказа с зафиксированной ценой.
type OrderItem struct {
	ProductID   *int64
	ProductName string
	Quantity    int
	Unit        string
	Price       decimal.Decimal
}

func (i OrderItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderForm — данные формы оформления, как их прислал клиент.
type OrderForm struct {
	CustomerName        string
	CustomerPhone       string
	DeliveryAddress     string
	DeliveryCoordinates *Coordinates
	PaymentMethod       PaymentMethod
	Comment             string
	DeliveryTime        string
}

// OrderDraft — тело запроса на создание заказа. Собирается заново на каждую попытку отправки.
type OrderDraft struct {
	Items               []OrderItem
	RestaurantID        int64
	DeliveryAddress     string
	DeliveryCoordinates *Coordinates
	CustomerName        string
	CustomerPhone       string
	PaymentMethod       PaymentMethod
	Comment             string
	DeliveryDate        string
	DeliveryTime        string
}

// ItemsTotal — Σ price × quantity по позициям.
func ItemsTotal(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total())
	}

	return total
}

func (d *OrderDraft) Total() decimal.Decimal {
	return ItemsTotal(d.Items)
}

// Order — сохранённый заказ.
type Order struct {
	ID                  int64
	OrderNumber         string
	RestaurantID        int64
	TotalAmount         decimal.Decimal
	DeliveryAddress     string
	DeliveryCoordinates *Coordinates
	CustomerName        string
	CustomerPhone       string
	PaymentMethod       PaymentMethod
	Comment             string
	DeliveryDate        string
	DeliveryTime        string
	Status              OrderStatus
	Items               []OrderItem
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// OrderAck — подтверждение создания заказа от API.
type OrderAck struct {
	Message       string
	OrderNumber   string
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	Status        OrderStatus
}

// Receipt — чек, который показывается после успешной отправки.
// Позиции берутся из отправленного черновика, а не из каталога.
type Receipt struct {
	OrderNumber     string
	RestaurantID    int64
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	PaymentMethod   PaymentMethod
	DeliveryAddress string
	DeliveryDate    string
	DeliveryTime    string
	CustomerName    string
	CustomerPhone   string
}
