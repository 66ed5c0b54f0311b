package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/invoice/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Add(ctx context.Context, inv domain.Invoice) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `INSERT INTO invoices
			(id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		inv.ID, inv.Name, inv.Document,
		inv.Address.Street, inv.Address.Number, inv.Address.Complement,
		inv.Address.City, inv.Address.State, inv.Address.ZipCode,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice %s: %w", inv.ID, err)
	}

	batch := &pgx.Batch{}
	for i, item := range inv.Items {
		batch.Queue(`INSERT INTO invoice_items (invoice_id, position, item_id, name, price)
			VALUES ($1,$2,$3,$4,$5)`,
			inv.ID, i, item.ID, item.Name, item.Price.String())
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert invoice items for %s: %w", inv.ID, err)
	}

	return tx.Commit(ctx)
}

func (r *Repository) Find(ctx context.Context, id string) (domain.Invoice, error) {
	var inv domain.Invoice
	err := r.pool.QueryRow(ctx, `SELECT id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at
			FROM invoices WHERE id=$1`, id).
		Scan(&inv.ID, &inv.Name, &inv.Document,
			&inv.Address.Street, &inv.Address.Number, &inv.Address.Complement,
			&inv.Address.City, &inv.Address.State, &inv.Address.ZipCode,
			&inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Invoice{}, domain.ErrInvoiceNotFound
	}
	if err != nil {
		return domain.Invoice{}, err
	}

	rows, err := r.pool.Query(ctx, `SELECT item_id, name, price::text
			FROM invoice_items WHERE invoice_id=$1 ORDER BY position`, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var item domain.Item
		var price string
		if err := rows.Scan(&item.ID, &item.Name, &price); err != nil {
			return domain.Invoice{}, err
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return domain.Invoice{}, fmt.Errorf("invoice %s item %s price: %w", id, item.ID, err)
		}
		inv.Items = append(inv.Items, item)
	}
	return inv, rows.Err()
}
