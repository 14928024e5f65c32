package converter

import (
	"github.com/DRSN-tech/food-delivery/internal/domain"
)

// CartConverter преобразует строки корзины между domain и JSON-моделью Redis.
type CartConverter interface {
	ToArrRedisModel(lines []domain.CartLine) []CartLineRedisModel
	ToArrEntity(models []CartLineRedisModel) []domain.CartLine
}

// SessionConverter преобразует сессию витрины между domain и JSON-моделью Redis.
type SessionConverter interface {
	ToRedisModel(entity *domain.Session) *SessionRedisModel
	ToEntity(model *SessionRedisModel) *domain.Session
}

// CatalogConverter преобразует снимок меню ресторана между domain и JSON-моделью Redis.
type CatalogConverter interface {
	ToRedisModel(entity *domain.Catalog) *CatalogRedisModel
	ToEntity(model *CatalogRedisModel) *domain.Catalog
}

type CartConverterImpl struct{}

func NewCartConverterImpl() *CartConverterImpl { return &CartConverterImpl{} }

func (CartConverterImpl) ToArrRedisModel(lines []domain.CartLine) []CartLineRedisModel {
	out := make([]CartLineRedisModel, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineRedisModel{
			ProductID:      l.ProductID,
			RestaurantID:   l.RestaurantID,
			NameRu:         l.NameRu,
			NameUz:         l.NameUz,
			Unit:           l.Unit,
			Price:          l.Price,
			ContainerPrice: l.ContainerPrice,
			ImageURL:       l.ImageURL,
			Quantity:       l.Quantity,
		})
	}
	return out
}

func (CartConverterImpl) ToArrEntity(models []CartLineRedisModel) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(models))
	for _, m := range models {
		out = append(out, domain.CartLine{
			ProductID:      m.ProductID,
			RestaurantID:   m.RestaurantID,
			NameRu:         m.NameRu,
			NameUz:         m.NameUz,
			Unit:           m.Unit,
			Price:          m.Price,
			ContainerPrice: m.ContainerPrice,
			ImageURL:       m.ImageURL,
			Quantity:       m.Quantity,
		})
	}
	return out
}

type SessionConverterImpl struct{}

func NewSessionConverterImpl() *SessionConverterImpl { return &SessionConverterImpl{} }

func (SessionConverterImpl) ToRedisModel(entity *domain.Session) *SessionRedisModel {
	if entity == nil {
		return nil
	}

	model := &SessionRedisModel{
		ID:                 entity.ID,
		RestaurantID:       entity.RestaurantID,
		Language:           string(entity.Language),
		SelectedCategoryID: entity.SelectedCategoryID,
		Profile: ProfileRedisModel{
			FullName:    entity.Profile.FullName,
			Phone:       entity.Profile.Phone,
			LastAddress: entity.Profile.LastAddress,
		},
	}
	if loc := entity.Profile.LastLocation; loc != nil {
		model.Profile.LastLocation = &CoordinatesRedisModel{Lat: loc.Lat, Lng: loc.Lng}
	}

	return model
}

func (SessionConverterImpl) ToEntity(model *SessionRedisModel) *domain.Session {
	if model == nil {
		return nil
	}

	entity := &domain.Session{
		ID:                 model.ID,
		RestaurantID:       model.RestaurantID,
		Language:           domain.Language(model.Language),
		SelectedCategoryID: model.SelectedCategoryID,
		Profile: domain.UserProfile{
			FullName:    model.Profile.FullName,
			Phone:       model.Profile.Phone,
			LastAddress: model.Profile.LastAddress,
		},
	}
	if loc := model.Profile.LastLocation; loc != nil {
		entity.Profile.LastLocation = &domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}
	}

	return entity
}

type CatalogConverterImpl struct{}

func NewCatalogConverterImpl() *CatalogConverterImpl { return &CatalogConverterImpl{} }

func (CatalogConverterImpl) ToRedisModel(entity *domain.Catalog) *CatalogRedisModel {
	if entity == nil {
		return nil
	}

	model := &CatalogRedisModel{
		RestaurantID: entity.RestaurantID,
		Categories:   make([]CategoryRedisModel, 0, len(entity.Categories)),
		Products:     make([]ProductRedisModel, 0, len(entity.Products)),
	}
	for _, c := range entity.Categories {
		model.Categories = append(model.Categories, CategoryRedisModel{
			ID:           c.ID,
			RestaurantID: c.RestaurantID,
			ParentID:     c.ParentID,
			NameRu:       c.NameRu,
			NameUz:       c.NameUz,
			ImageURL:     c.ImageURL,
			SortOrder:    c.SortOrder,
			IsActive:     c.IsActive,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		})
	}
	for _, p := range entity.Products {
		model.Products = append(model.Products, ProductRedisModel{
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
			ContainerPrice: p.ContainerPrice,
			InStock:        p.InStock,
			ImageURL:       p.ImageURL,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}

	return model
}

func (CatalogConverterImpl) ToEntity(model *CatalogRedisModel) *domain.Catalog {
	if model == nil {
		return nil
	}

	entity := &domain.Catalog{
		RestaurantID: model.RestaurantID,
		Categories:   make([]domain.Category, 0, len(model.Categories)),
		Products:     make([]domain.Product, 0, len(model.Products)),
	}
	for _, c := range model.Categories {
		entity.Categories = append(entity.Categories, domain.Category{
			ID:           c.ID,
			RestaurantID: c.RestaurantID,
			ParentID:     c.ParentID,
			NameRu:       c.NameRu,
			NameUz:       c.NameUz,
			ImageURL:     c.ImageURL,
			SortOrder:    c.SortOrder,
			IsActive:     c.IsActive,
			CreatedAt:    c.CreatedAt,
			UpdatedAt:    c.UpdatedAt,
		})
	}
	for _, p := range model.Products {
		entity.Products = append(entity.Products, domain.Product{
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
			ContainerPrice: p.ContainerPrice,
			InStock:        p.InStock,
			ImageURL:       p.ImageURL,
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		})
	}

	return entity
}
