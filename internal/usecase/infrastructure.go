package usecase

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
)

// BackendCatalogAPI — чтение меню через HTTP API.
type BackendCatalogAPI interface {
	GetCategories(ctx context.Context, restaurantID int64) ([]domain.Category, error)
	GetProducts(ctx context.Context, restaurantID int64) ([]domain.Product, error)
	GetRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// BackendOrderAPI — создание заказа и расчёт доставки через HTTP API.
type BackendOrderAPI interface {
	CreateOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.OrderAck, error)
	CalculateDelivery(ctx context.Context, req *DeliveryCalcReq) (*domain.DeliveryQuote, error)
}

// OrderEventPublisher доставляет события заказов из outbox в брокер.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg *OrderEventMsg) error
}

// OrderEventEncoder сериализует событие о созданном заказе для Kafka.
type OrderEventEncoder interface {
	EncodeOrderCreated(eventID string, order *domain.Order) ([]byte, error)
}

// ImageURLResolver превращает сохранённый путь картинки в ссылку, доступную клиенту.
type ImageURLResolver interface {
	Resolve(ctx context.Context, raw string) string
}

// RouteDistanceInfra — дорожное расстояние между двумя точками.
type RouteDistanceInfra interface {
	RoadDistanceKm(ctx context.Context, from, to domain.Coordinates) (float64, error)
}

type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
