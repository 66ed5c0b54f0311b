package postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gmatheus/commerce-core/internal/client/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Add(ctx context.Context, c domain.Client) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO clients
			(id, name, email, document, street, number, complement, city, state, zip_code, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.Name, c.Email, c.Document,
		c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.City, c.Address.State, c.Address.ZipCode,
		c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *Repository) Find(ctx context.Context, id string) (domain.Client, error) {
	var c domain.Client
	err := r.pool.QueryRow(ctx, `SELECT id, name, email, document, street, number, complement, city, state, zip_code, created_at, updated_at
			FROM clients WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Document,
			&c.Address.Street, &c.Address.Number, &c.Address.Complement,
			&c.Address.City, &c.Address.State, &c.Address.ZipCode,
			&c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Client{}, domain.ErrClientNotFound
	}
	if err != nil {
		return domain.Client{}, err
	}
	return c, nil
}
