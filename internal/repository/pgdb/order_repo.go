package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo хранит заказы, их позиции и историю статусов.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

// Create вставляет заказ и все его позиции. Должен вызываться внутри транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)
	query := `
		INSERT INTO orders (
			order_number, restaurant_id, total_amount, delivery_address,
			delivery_coordinates, customer_name, customer_phone, payment_method,
			comment, delivery_date, delivery_time, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	if err := tx.QueryRow(ctx, query,
		model.OrderNumber,
		model.RestaurantID,
		model.TotalAmount,
		model.DeliveryAddress,
		model.DeliveryCoordinates,
		model.CustomerName,
		model.CustomerPhone,
		model.PaymentMethod,
		model.Comment,
		model.DeliveryDate,
		model.DeliveryTime,
		model.Status,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: order with number %s already exists", whereami.WhereAmI(), model.OrderNumber)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items := o.conv.ToItemModels(model.ID, order.Items)

	batch := &pgx.Batch{}
	for _, it := range items {
		batch.Queue(`
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit, price, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, it.OrderID, it.ProductID, it.ProductName, it.Quantity, it.Unit, it.Price, it.Total)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model, items), nil
}

func (o *OrderRepo) AddStatusHistory(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := tx.Exec(ctx,
		"INSERT INTO order_status_history (order_id, status) VALUES ($1, $2)",
		orderID, string(status),
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetByNumber возвращает заказ с позициями.
func (o *OrderRepo) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `
		SELECT id, order_number, restaurant_id, total_amount, delivery_address,
		       delivery_coordinates, customer_name, customer_phone, payment_method,
		       comment, delivery_date, delivery_time, status, created_at, updated_at
		FROM orders
		WHERE order_number = $1
	`

	var m converter.OrderModel
	err := o.pool.QueryRow(ctx, query, orderNumber).Scan(
		&m.ID, &m.OrderNumber, &m.RestaurantID, &m.TotalAmount, &m.DeliveryAddress,
		&m.DeliveryCoordinates, &m.CustomerName, &m.CustomerPhone, &m.PaymentMethod,
		&m.Comment, &m.DeliveryDate, &m.DeliveryTime, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := o.items(ctx, m.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&m, items), nil
}

func (o *OrderRepo) items(ctx context.Context, orderID int64) ([]converter.OrderItemModel, error) {
	rows, err := o.pool.Query(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, unit, price, total
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]converter.OrderItemModel, 0)
	for rows.Next() {
		var it converter.OrderItemModel
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Unit, &it.Price, &it.Total,
		); err != nil {
			return nil, err
		}

		items = append(items, it)
	}

	return items, rows.Err()
}
