package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	p.id, p.restaurant_id, p.category_id, c.name_ru,
	p.name_ru, p.name_uz, p.description_ru, p.description_uz,
	p.price, p.unit, cnt.id, cnt.name, COALESCE(cnt.price, 0),
	p.in_stock, p.image_url, p.created_at, p.updated_at
`

const productFrom = `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN containers cnt ON p.container_id = cnt.id
`

// List возвращает товары по фильтру, отсортированные по name_ru. Цена тары подтягивается из containers.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	query, args := buildProductsQuery(filter)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := "SELECT " + productColumns + productFrom + " WHERE p.id = $1"

	m, err := scanProduct(p.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(m), nil
}

// buildProductsQuery собирает запрос списка товаров с позиционными параметрами.
func buildProductsQuery(filter usecase.ProductFilter) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString("SELECT ")
	sb.WriteString(productColumns)
	sb.WriteString(productFrom)
	sb.WriteString(" WHERE 1=1")

	if filter.RestaurantID != nil {
		args = append(args, *filter.RestaurantID)
		fmt.Fprintf(&sb, " AND p.restaurant_id = $%d", len(args))
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		fmt.Fprintf(&sb, " AND p.category_id = $%d", len(args))
	}

	if filter.InStockOnly {
		sb.WriteString(" AND p.in_stock = true")
	}

	sb.WriteString(" ORDER BY p.name_ru, p.id")

	return sb.String(), args
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var m converter.ProductModel
	if err := row.Scan(
		&m.ID, &m.RestaurantID, &m.CategoryID, &m.CategoryName,
		&m.NameRu, &m.NameUz, &m.DescriptionRu, &m.DescriptionUz,
		&m.Price, &m.Unit, &m.ContainerID, &m.ContainerName, &m.ContainerPrice,
		&m.InStock, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &m, nil
}
