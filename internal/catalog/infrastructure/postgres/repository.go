package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gmatheus/commerce-core/internal/catalog/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) Add(ctx context.Context, p domain.Product) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO products
			(id, name, description, purchase_price, sales_price, stock, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.Name, p.Description, p.PurchasePrice.String(), p.SalesPrice.String(), p.Stock,
		p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *Repository) Find(ctx context.Context, id string) (domain.Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, name, description, purchase_price::text, sales_price::text, stock, created_at, updated_at
			FROM products WHERE id=$1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, err
}

func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, purchase_price::text, sales_price::text, stock, created_at, updated_at
			FROM products ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var purchase, sales string
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &purchase, &sales, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return domain.Product{}, err
	}
	var err error
	if p.PurchasePrice, err = decimal.NewFromString(purchase); err != nil {
		return domain.Product{}, fmt.Errorf("product %s purchase price: %w", p.ID, err)
	}
	if p.SalesPrice, err = decimal.NewFromString(sales); err != nil {
		return domain.Product{}, fmt.Errorf("product %s sales price: %w", p.ID, err)
	}
	return p, nil
}
