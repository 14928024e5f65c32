package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type RestaurantRepo struct {
	pool *pgxpool.Pool
	conv converter.RestaurantConverter
}

func NewRestaurantRepo(pool *pgxpool.Pool, conv converter.RestaurantConverter) *RestaurantRepo {
	return &RestaurantRepo{pool: pool, conv: conv}
}

const restaurantColumns = `
	id, name, address, phone, logo_url, service_fee,
	latitude, longitude, click_url, payme_url, is_active, created_at
`

// ListActive возвращает активные рестораны по алфавиту.
func (r *RestaurantRepo) ListActive(ctx context.Context) ([]domain.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants WHERE is_active = true ORDER BY name, id"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.RestaurantModel, 0)
	for rows.Next() {
		m, err := scanRestaurant(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}

// GetByID возвращает ресторан независимо от is_active: чек старого заказа должен открываться.
func (r *RestaurantRepo) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	query := "SELECT " + restaurantColumns + " FROM restaurants WHERE id = $1"

	m, err := scanRestaurant(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrRestaurantNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(m), nil
}

func scanRestaurant(row pgx.Row) (*converter.RestaurantModel, error) {
	var m converter.RestaurantModel
	if err := row.Scan(
		&m.ID, &m.Name, &m.Address, &m.Phone, &m.LogoURL, &m.ServiceFee,
		&m.Latitude, &m.Longitude, &m.ClickURL, &m.PaymeURL, &m.IsActive, &m.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &m, nil
}
