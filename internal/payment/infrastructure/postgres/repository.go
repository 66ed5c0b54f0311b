package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmatheus/commerce-core/internal/payment/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Save(ctx context.Context, t domain.Transaction) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO transactions
			(id, order_id, amount, status, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6)`,
		t.ID, t.OrderID, t.Amount.String(), string(t.Status), t.CreatedAt, t.UpdatedAt)
	return err
}
