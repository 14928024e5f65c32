package domain

import "time"

// Category описывает категорию меню ресторана.
// ParentID == nil у категорий первого уровня.
type Category struct {
	ID           int64
	RestaurantID int64
	ParentID     *int64
	NameRu       string
	NameUz       string
	ImageURL     string
	SortOrder    *int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Title возвращает название категории на нужном языке.
func (c *Category) Title(lang Language) string {
	return localized(lang, c.NameRu, c.NameUz)
}
