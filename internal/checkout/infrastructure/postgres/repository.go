package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/checkout/domain"
)

// Repository persists orders in the orders and order_items tables. The
// item position column keeps the original request order; no total
// column exists, the total is always recomputed from the items.
type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Add(ctx context.Context, o domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `INSERT INTO orders (id, client_id, status, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5)`,
		o.ID, o.ClientID, string(o.Status), o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", o.ID, err)
	}

	batch := &pgx.Batch{}
	for i, item := range o.Items {
		batch.Queue(`INSERT INTO order_items (order_id, position, product_id, name, description, price)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			o.ID, i, item.ID, item.Name, item.Description, item.Price.String())
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert order items for %s: %w", o.ID, err)
	}

	return tx.Commit(ctx)
}

func (r *Repository) Find(ctx context.Context, id string) (domain.Order, error) {
	var o domain.Order
	var status string
	err := r.pool.QueryRow(ctx, `SELECT id, client_id, status, created_at, updated_at
			FROM orders WHERE id=$1`, id).
		Scan(&o.ID, &o.ClientID, &status, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	o.Status = domain.OrderStatus(status)

	rows, err := r.pool.Query(ctx, `SELECT product_id, name, description, price::text
			FROM order_items WHERE order_id=$1 ORDER BY position`, id)
	if err != nil {
		return domain.Order{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var item domain.Product
		var price string
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &price); err != nil {
			return domain.Order{}, err
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return domain.Order{}, fmt.Errorf("order %s item %s price: %w", id, item.ID, err)
		}
		o.Items = append(o.Items, item)
	}
	return o, rows.Err()
}
