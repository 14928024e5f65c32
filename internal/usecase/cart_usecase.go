package usecase

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

// catalogLoader — источник товаров для снимка в корзину.
type catalogLoader interface {
	LoadCatalog(ctx context.Context, restaurantID int64) *domain.Catalog
}

// CartUseCase: каждая операция читает корзину сессии, меняет её и сразу записывает обратно.
type CartUseCase struct {
	carts       CartRepository
	sessions    SessionRepository
	catalog     catalogLoader
	logger      logger.Logger
	defaultLang domain.Language
}

func NewCartUC(
	carts CartRepository,
	sessions SessionRepository,
	catalog catalogLoader,
	logger logger.Logger,
	defaultLang domain.Language,
) *CartUseCase {
	return &CartUseCase{
		carts:       carts,
		sessions:    sessions,
		catalog:     catalog,
		logger:      logger,
		defaultLang: defaultLang,
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	const op = "CartUseCase.GetCart"

	if sessionID == "" {
		return nil, e.Wrap(op, e.ErrSessionRequired)
	}

	cart, err := c.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}

// AddItem добавляет товар активного ресторана. Товар, которого нет в наличии, не добавляется.
func (c *CartUseCase) AddItem(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.AddItem"

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if session.RestaurantID == nil {
		return nil, e.Wrap(op, e.ErrRestaurantNotSelected)
	}

	product, ok := c.catalog.LoadCatalog(ctx, *session.RestaurantID).FindProduct(productID)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}
	if !product.InStock {
		return nil, e.Wrap(op, e.ErrOutOfStock)
	}

	return c.mutate(ctx, op, sessionID, func(cart *domain.Cart) {
		cart.Add(product)
	})
}

func (c *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartView, error) {
	const op = "CartUseCase.UpdateQuantity"

	return c.mutate(ctx, op, sessionID, func(cart *domain.Cart) {
		cart.UpdateQuantity(productID, quantity)
	})
}

func (c *CartUseCase) RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	const op = "CartUseCase.RemoveItem"

	return c.mutate(ctx, op, sessionID, func(cart *domain.Cart) {
		cart.Remove(productID)
	})
}

func (c *CartUseCase) Clear(ctx context.Context, sessionID string) error {
	const op = "CartUseCase.Clear"

	if sessionID == "" {
		return e.Wrap(op, e.ErrSessionRequired)
	}

	if err := c.carts.Delete(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CartUseCase) mutate(ctx context.Context, op, sessionID string, fn func(cart *domain.Cart)) (*CartView, error) {
	if sessionID == "" {
		return nil, e.Wrap(op, e.ErrSessionRequired)
	}

	cart, err := c.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	fn(cart)

	if err := c.carts.Save(ctx, sessionID, cart); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCartView(cart), nil
}
