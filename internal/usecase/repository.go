package usecase

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
)

// API меню и заказов (PostgreSQL)

type CategoryRepository interface {
	ListActive(ctx context.Context, restaurantID *int64) ([]domain.Category, error)
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type RestaurantRepository interface {
	ListActive(ctx context.Context) ([]domain.Restaurant, error)
	GetByID(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// OrderRepository пишет только внутри транзакции из контекста.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	AddStatusHistory(ctx context.Context, orderID int64, status domain.OrderStatus) error
	GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
	ReturnToPending(ctx context.Context, id int64) error
}

// Витрина (Redis)

// CartRepository хранит корзину сессии. Нечитаемые данные возвращаются как пустая корзина.
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionRepository возвращает nil без ошибки, если сессии нет.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
}

// CatalogCacheRepository возвращает nil без ошибки при промахе.
type CatalogCacheRepository interface {
	Get(ctx context.Context, restaurantID int64) (*domain.Catalog, error)
	Set(ctx context.Context, catalog *domain.Catalog) error
	Invalidate(ctx context.Context, restaurantIDs ...int64) error
}

// SubmitGuard не даёт отправить второй заказ той же сессии, пока первый в полёте.
type SubmitGuard interface {
	Acquire(ctx context.Context, sessionID string) (token string, ok bool, err error)
	Release(ctx context.Context, sessionID, token string) error
}
