package main

import (
	"context"
	"fmt"
	"os"

	"product-api/internal/config"
	"product-api/internal/database"
	"product-api/internal/seed"

	"github.com/jackc/pgx/v5"
)

// Creates the products table read by SEED_DB_ENABLED and fills it with the
// default catalogue. Connection settings come from the usual DB_* variables.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	table := cfg.Database.Table
	if table == "" {
		table = seed.DefaultTable
	}

	_, err = pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			category VARCHAR(100) NOT NULL,
			in_stock BOOLEAN NOT NULL DEFAULT TRUE
		)
	`, pgx.Identifier{table}.Sanitize()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Create table failed: %v\n", err)
		os.Exit(1)
	}

	products := seed.DefaultProducts()
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{p.ID, p.Name, p.Description, p.Price, p.Category, p.InStock})
	}

	copied, err := pool.CopyFrom(ctx,
		pgx.Identifier{table},
		[]string{"id", "name", "description", "price", "category", "in_stock"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Copy failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d products into %s\n", copied, table)
}
