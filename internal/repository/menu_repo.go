package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

// GetPrices returns the stored price for every requested id that exists.
// Ids absent from menu_items are simply absent from the result map; the
// caller decides what a missing item means.
func (r *MenuRepo) GetPrices(ctx context.Context, ids []string) (map[string]float64, error) {
	query := `SELECT id, price FROM menu_items WHERE id = ANY($1)`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make(map[string]float64, len(ids))
	for rows.Next() {
		var id string
		var price float64
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	return prices, rows.Err()
}
