package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const cacheWriteTimeout = 500 * time.Millisecond

// CatalogUseCase отдаёт витрине меню выбранного ресторана и хранит состояние навигации по категориям.
type CatalogUseCase struct {
	backend     BackendCatalogAPI
	cache       CatalogCacheRepository
	sessions    SessionRepository
	logger      logger.Logger
	defaultLang domain.Language
}

func NewCatalogUC(
	backend BackendCatalogAPI,
	cache CatalogCacheRepository,
	sessions SessionRepository,
	logger logger.Logger,
	defaultLang domain.Language,
) *CatalogUseCase {
	return &CatalogUseCase{
		backend:     backend,
		cache:       cache,
		sessions:    sessions,
		logger:      logger,
		defaultLang: defaultLang,
	}
}

func (c *CatalogUseCase) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	const op = "CatalogUseCase.ListRestaurants"

	restaurants, err := c.backend.GetRestaurants(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return restaurants, nil
}

// LoadCatalog возвращает каталог ресторана из кэша или загружает категории и товары параллельно.
// Ошибка любого из запросов даёт пустой каталог: частичный каталог не показывается и не кэшируется.
func (c *CatalogUseCase) LoadCatalog(ctx context.Context, restaurantID int64) *domain.Catalog {
	const op = "CatalogUseCase.LoadCatalog"

	cached, err := c.cache.Get(ctx, restaurantID)
	if err != nil {
		c.logger.Warnf("catalog cache read failed: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached
	}

	var (
		categories []domain.Category
		products   []domain.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = c.backend.GetCategories(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = c.backend.GetProducts(gctx, restaurantID)
		return err
	})

	if err := g.Wait(); err != nil {
		c.logger.Warnf("failed to load catalog for restaurant %d, showing empty catalog: %v", restaurantID, e.Wrap(op, err))
		return &domain.Catalog{RestaurantID: restaurantID}
	}

	catalog := &domain.Catalog{
		RestaurantID: restaurantID,
		Categories:   categories,
		Products:     products,
	}

	cacheCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWriteTimeout)
	defer cancel()
	if err := c.cache.Set(cacheCtx, catalog); err != nil {
		c.logger.Warnf("failed to cache catalog: %v", e.Wrap(op, err))
	}

	return catalog
}

// GetView показывает каталог в текущем состоянии навигации сессии.
func (c *CatalogUseCase) GetView(ctx context.Context, sessionID string, lang domain.Language) (*CatalogView, error) {
	const op = "CatalogUseCase.GetView"

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if session.RestaurantID == nil {
		return nil, e.Wrap(op, e.ErrRestaurantNotSelected)
	}

	tree := c.tree(ctx, *session.RestaurantID)

	// Категория могла исчезнуть или опустеть после перезагрузки меню.
	if session.SelectedCategoryID != nil && !isNavigable(tree, *session.SelectedCategoryID) {
		session.SelectedCategoryID = nil
		if err := c.sessions.Save(ctx, session); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	view := ComputeSections(session.SelectedCategoryID, tree, lang)
	view.RestaurantID = *session.RestaurantID

	return &view, nil
}

// OpenCategory переводит навигацию на категорию второго уровня.
func (c *CatalogUseCase) OpenCategory(ctx context.Context, sessionID string, categoryID int64, lang domain.Language) (*CatalogView, error) {
	const op = "CatalogUseCase.OpenCategory"

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if session.RestaurantID == nil {
		return nil, e.Wrap(op, e.ErrRestaurantNotSelected)
	}

	tree := c.tree(ctx, *session.RestaurantID)
	if !isNavigable(tree, categoryID) {
		return nil, e.Wrap(op, e.ErrCategoryNotFound)
	}

	session.SelectedCategoryID = &categoryID
	if err := c.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	view := ComputeSections(session.SelectedCategoryID, tree, lang)
	view.RestaurantID = *session.RestaurantID
	view.ScrollToTop = true

	return &view, nil
}

// CloseCategory возвращает навигацию в корень.
func (c *CatalogUseCase) CloseCategory(ctx context.Context, sessionID string, lang domain.Language) (*CatalogView, error) {
	const op = "CatalogUseCase.CloseCategory"

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if session.RestaurantID == nil {
		return nil, e.Wrap(op, e.ErrRestaurantNotSelected)
	}

	session.SelectedCategoryID = nil
	if err := c.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	view := ComputeSections(nil, c.tree(ctx, *session.RestaurantID), lang)
	view.RestaurantID = *session.RestaurantID
	view.ScrollToTop = true

	return &view, nil
}

// Refresh сбрасывает кэш меню ресторана сессии и строит представление заново.
func (c *CatalogUseCase) Refresh(ctx context.Context, sessionID string, lang domain.Language) (*CatalogView, error) {
	const op = "CatalogUseCase.Refresh"

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if session.RestaurantID == nil {
		return nil, e.Wrap(op, e.ErrRestaurantNotSelected)
	}

	if err := c.cache.Invalidate(ctx, *session.RestaurantID); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.GetView(ctx, sessionID, lang)
}

func (c *CatalogUseCase) tree(ctx context.Context, restaurantID int64) *domain.CategoryTree {
	catalog := c.LoadCatalog(ctx, restaurantID)
	return domain.BuildCategoryTree(catalog.Categories, catalog.Products)
}
