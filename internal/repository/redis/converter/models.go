package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLineRedisModel — строка корзины в JSON-массиве под ключом cart:<session>.
type CartLineRedisModel struct {
	ProductID      int64           `json:"product_id"`
	RestaurantID   int64           `json:"restaurant_id"`
	NameRu         string          `json:"name_ru"`
	NameUz         string          `json:"name_uz,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	Price          decimal.Decimal `json:"price"`
	ContainerPrice decimal.Decimal `json:"container_price"`
	ImageURL       string          `json:"image_url,omitempty"`
	Quantity       int             `json:"quantity"`
}

type CoordinatesRedisModel struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ProfileRedisModel struct {
	FullName     string                 `json:"full_name,omitempty"`
	Phone        string                 `json:"phone,omitempty"`
	LastAddress  string                 `json:"last_address,omitempty"`
	LastLocation *CoordinatesRedisModel `json:"last_location,omitempty"`
}

type SessionRedisModel struct {
	ID                 string            `json:"id"`
	RestaurantID       *int64            `json:"restaurant_id,omitempty"`
	Language           string            `json:"language"`
	SelectedCategoryID *int64            `json:"selected_category_id,omitempty"`
	Profile            ProfileRedisModel `json:"profile"`
}

type CategoryRedisModel struct {
	ID           int64      `json:"id"`
	RestaurantID int64      `json:"restaurant_id"`
	ParentID     *int64     `json:"parent_id,omitempty"`
	NameRu       string     `json:"name_ru"`
	NameUz       string     `json:"name_uz,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	SortOrder    *int       `json:"sort_order,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

type ProductRedisModel struct {
	ID             int64           `json:"id"`
	RestaurantID   int64           `json:"restaurant_id"`
	CategoryID     int64           `json:"category_id"`
	CategoryName   string          `json:"category_name,omitempty"`
	NameRu         string          `json:"name_ru"`
	NameUz         string          `json:"name_uz,omitempty"`
	DescriptionRu  string          `json:"description_ru,omitempty"`
	DescriptionUz  string          `json:"description_uz,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Unit           string          `json:"unit,omitempty"`
	ContainerID    *int64          `json:"container_id,omitempty"`
	ContainerName  string          `json:"container_name,omitempty"`
	ContainerPrice decimal.Decimal `json:"container_price"`
	InStock        bool            `json:"in_stock"`
	ImageURL       string          `json:"image_url,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// CatalogRedisModel — снимок меню ресторана под ключом catalog:<restaurant_id>.
type CatalogRedisModel struct {
	RestaurantID int64                `json:"restaurant_id"`
	Categories   []CategoryRedisModel `json:"categories"`
	Products     []ProductRedisModel  `json:"products"`
}
