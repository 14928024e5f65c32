package usecase

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
)

// Витрина

type SessionUC interface {
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	SelectRestaurant(ctx context.Context, sessionID string, restaurantID int64) (*domain.Session, error)
	UpdateProfile(ctx context.Context, sessionID string, profile domain.UserProfile) (*domain.Session, error)
}

type CatalogUC interface {
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetView(ctx context.Context, sessionID string, lang domain.Language) (*CatalogView, error)
	OpenCategory(ctx context.Context, sessionID string, categoryID int64, lang domain.Language) (*CatalogView, error)
	CloseCategory(ctx context.Context, sessionID string, lang domain.Language) (*CatalogView, error)
	Refresh(ctx context.Context, sessionID string, lang domain.Language) (*CatalogView, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
	AddItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)
	Clear(ctx context.Context, sessionID string) error
}

type CheckoutUC interface {
	Slots(ctx context.Context) *SlotsRes
	Prefill(ctx context.Context, sessionID string) (*CheckoutPrefill, error)
	QuoteDelivery(ctx context.Context, sessionID string, to domain.Coordinates) (*domain.DeliveryQuote, error)
	Submit(ctx context.Context, sessionID string, form domain.OrderForm) (*domain.Receipt, error)
}

// API меню и заказов

type MenuUC interface {
	ListCategories(ctx context.Context, restaurantID *int64) ([]domain.Category, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
}

type OrderUC interface {
	CreateOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error)
	GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error)
}

type DeliveryUC interface {
	Calculate(ctx context.Context, req *DeliveryCalcReq) (*domain.DeliveryQuote, error)
	Tariff() domain.DeliveryTariff
}
