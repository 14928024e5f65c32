package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар меню. ContainerPrice равна нулю, если тары нет.
type Product struct {
	ID             int64
	RestaurantID   int64
	CategoryID     int64
	CategoryName   string
	NameRu         string
	NameUz         string
	DescriptionRu  string
	DescriptionUz  string
	Price          decimal.Decimal
	Unit           string
	ContainerID    *int64
	ContainerName  string
	ContainerPrice decimal.Decimal
	InStock        bool
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

func (p *Product) Title(lang Language) string {
	return localized(lang, p.NameRu, p.NameUz)
}

// Catalog — категории и товары одного ресторана, загруженные вместе.
type Catalog struct {
	RestaurantID int64
	Categories   []Category
	Products     []Product
}

// FindProduct ищет товар по id в загруженном каталоге.
func (c *Catalog) FindProduct(id int64) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}

	return Product{}, false
}

func (c *Catalog) IsEmpty() bool {
	return len(c.Categories) == 0 && len(c.Products) == 0
}
