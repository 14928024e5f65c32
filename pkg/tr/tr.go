package tr

import (
	"context"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

type txKey struct{}

// WithTx кладёт транзакцию в контекст, репозитории достают её через TxFromCtx.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}

	return tx, nil
}

// Runner открывает транзакцию на пуле и выполняет fn внутри неё.
type Runner struct {
	pool *pgxpool.Pool
}

func NewRunner(pool *pgxpool.Pool) *Runner {
	return &Runner{pool: pool}
}

// WithinTx коммитит транзакцию, если fn вернула nil, иначе откатывает.
func (r *Runner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, trx, err := trmpgx.NewTransaction(ctx, pgx.TxOptions{}, r.pool)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tx, ok := trx.Transaction().(pgx.Tx)
	if !ok {
		_ = trx.Rollback(ctx)
		return e.ErrTransactionNotFound
	}

	if err := fn(WithTx(ctx, tx)); err != nil {
		if trx.IsActive() {
			_ = trx.Rollback(ctx)
		}
		return err
	}

	if err := trx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
