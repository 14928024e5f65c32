package usecase

import (
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG VIEW

// CategoryRef — категория в том виде, в котором её показывает витрина.
type CategoryRef struct {
	ID       int64
	Title    string
	ImageURL string
}

// CategoryGroup — категория первого уровня с непустыми детьми второго уровня.
type CategoryGroup struct {
	Category CategoryRef
	Children []CategoryRef
}

// ProductSection — блок товаров на странице категории второго уровня.
// Anchor используется вкладками "перейти к разделу".
type ProductSection struct {
	CategoryID int64
	Title      string
	Anchor     string
	Products   []domain.Product
}

// CatalogView — то, что витрина рисует в текущем состоянии навигации.
// При Selected == nil показывается корень (сетка групп), иначе открыта категория второго уровня.
// Empty выставляется, когда показывать нечего и нужен экран "ничего не найдено".
type CatalogView struct {
	RestaurantID int64
	Language     domain.Language
	Selected     *CategoryRef
	Groups       []CategoryGroup
	Sections     []ProductSection
	Empty        bool
	ScrollToTop  bool
}

// CART

// CartView — корзина с пересчитанными итогами.
type CartView struct {
	Lines          []domain.CartLine
	Count          int
	ProductTotal   decimal.Decimal
	ContainerTotal decimal.Decimal
	Total          decimal.Decimal
}

// CHECKOUT

// SlotsRes — доступные на сегодня слоты доставки.
type SlotsRes struct {
	Date               string
	Slots              []string
	ScheduledAvailable bool
}

// CheckoutPrefill — значения формы оформления по умолчанию.
type CheckoutPrefill struct {
	CustomerName        string
	CustomerPhone       string
	DeliveryAddress     string
	DeliveryCoordinates *domain.Coordinates
	PaymentMethod       domain.PaymentMethod
	DeliveryTime        string
}

// MENU

// ProductFilter — фильтры списка товаров.
type ProductFilter struct {
	RestaurantID *int64
	CategoryID   *int64
	InStockOnly  bool
}

// DeliveryCalcReq — запрос расчёта доставки.
type DeliveryCalcReq struct {
	RestaurantID int64
	Customer     domain.Coordinates
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

const EventOrderCreated = "order.created"

// OutboxEvent — событие, которое воркер отправит в Kafka после коммита транзакции.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   string
	AggregateID int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

// OrderEventMsg — событие заказа, готовое к отправке. OrderID служит ключом партиционирования.
type OrderEventMsg struct {
	OrderID   int64
	EventID   string
	EventType string
	Payload   []byte
}

// MAPPERS

func NewCategoryRef(c *domain.Category, lang domain.Language) CategoryRef {
	return CategoryRef{
		ID:       c.ID,
		Title:    c.Title(lang),
		ImageURL: c.ImageURL,
	}
}

func NewCartView(c *domain.Cart) *CartView {
	return &CartView{
		Lines:          c.Lines(),
		Count:          c.Count(),
		ProductTotal:   c.ProductTotal(),
		ContainerTotal: c.ContainerTotal(),
		Total:          c.Total(),
	}
}

func NewOrderEventMsg(event *OutboxEvent) *OrderEventMsg {
	return &OrderEventMsg{
		OrderID:   event.AggregateID,
		EventID:   event.EventID,
		EventType: event.EventType,
		Payload:   event.Payload,
	}
}

func NewOutboxEvent(eventID, eventType string, aggregateID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
	}
}
