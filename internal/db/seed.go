package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// demoSellers are inserted by Seed. Balances are in cents.
var demoSellers = []struct {
	name    string
	balance int64
}{
	{"Emerald Electronics", 500000},
	{"Kraków Home & Garden", 250000},
	{"Baltic Fashion House", 120000},
}

// Seed inserts demo sellers when the sellers table is empty. Campaigns are
// left to the admin UI. It reports how many sellers were inserted.
func Seed(ctx context.Context, db *pgxpool.Pool) (int, error) {
	var count int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM sellers`).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	for _, s := range demoSellers {
		if _, err := db.Exec(ctx, `INSERT INTO sellers (name, emerald_balance_cents) VALUES ($1, $2)`, s.name, s.balance); err != nil {
			return 0, err
		}
	}
	return len(demoSellers), nil
}
