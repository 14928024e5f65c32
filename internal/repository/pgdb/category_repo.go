package pgdb

import (
	"context"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// ListActive возвращает активные категории, отсортированные по name_ru.
// При restaurantID == nil возвращаются категории всех ресторанов.
func (c *CategoryRepo) ListActive(ctx context.Context, restaurantID *int64) ([]domain.Category, error) {
	query := `
		SELECT id, restaurant_id, parent_id, name_ru, name_uz, image_url,
		       sort_order, is_active, created_at, updated_at
		FROM categories
		WHERE is_active = true
		  AND ($1::bigint IS NULL OR restaurant_id = $1)
		ORDER BY name_ru, id
	`

	rows, err := c.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CategoryModel, 0)
	for rows.Next() {
		var m converter.CategoryModel
		if err := rows.Scan(
			&m.ID, &m.RestaurantID, &m.ParentID, &m.NameRu, &m.NameUz, &m.ImageURL,
			&m.SortOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}
