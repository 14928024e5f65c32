package usecase

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

// MenuUseCase — чтение меню из базы для публичного API.
// Пути картинок заменяются ссылками, по которым клиент может их скачать.
type MenuUseCase struct {
	categoryRepo   CategoryRepository
	productRepo    ProductRepository
	restaurantRepo RestaurantRepository
	images         ImageURLResolver
	logger         logger.Logger
}

func NewMenuUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	restaurantRepo RestaurantRepository,
	images ImageURLResolver,
	logger logger.Logger,
) *MenuUseCase {
	return &MenuUseCase{
		categoryRepo:   categoryRepo,
		productRepo:    productRepo,
		restaurantRepo: restaurantRepo,
		images:         images,
		logger:         logger,
	}
}

func (m *MenuUseCase) ListCategories(ctx context.Context, restaurantID *int64) ([]domain.Category, error) {
	const op = "MenuUseCase.ListCategories"

	categories, err := m.categoryRepo.ListActive(ctx, restaurantID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range categories {
		categories[i].ImageURL = m.images.Resolve(ctx, categories[i].ImageURL)
	}

	return categories, nil
}

func (m *MenuUseCase) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	const op = "MenuUseCase.ListProducts"

	products, err := m.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range products {
		products[i].ImageURL = m.images.Resolve(ctx, products[i].ImageURL)
	}

	return products, nil
}

func (m *MenuUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "MenuUseCase.GetProduct"

	product, err := m.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product.ImageURL = m.images.Resolve(ctx, product.ImageURL)
	return product, nil
}

func (m *MenuUseCase) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	const op = "MenuUseCase.ListRestaurants"

	restaurants, err := m.restaurantRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range restaurants {
		restaurants[i].LogoURL = m.images.Resolve(ctx, restaurants[i].LogoURL)
	}

	return restaurants, nil
}

func (m *MenuUseCase) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	const op = "MenuUseCase.GetRestaurant"

	restaurant, err := m.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	restaurant.LogoURL = m.images.Resolve(ctx, restaurant.LogoURL)
	return restaurant, nil
}
