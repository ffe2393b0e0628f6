package seed

import (
	"context"
	"fmt"

	"product-api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DefaultTable is the table read by the PostgreSQL loader when none is given.
const DefaultTable = "products"

// postgresLoader implements Loader by reading a products table once.
type postgresLoader struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresLoader creates a seed loader that imports rows from PostgreSQL.
// The table must have the columns id, name, description, price, category
// and in_stock.
func NewPostgresLoader(pool *pgxpool.Pool, logger zerolog.Logger) Loader {
	return &postgresLoader{
		pool:   pool,
		logger: logger.With().Str("component", "seed-postgres-loader").Logger(),
	}
}

// Load reads every row of the named table ordered by id.
func (l *postgresLoader) Load(ctx context.Context, table string) ([]model.Product, error) {
	if table == "" {
		table = DefaultTable
	}

	query := fmt.Sprintf(`
		SELECT id, name, description, price, category, in_stock
		FROM %s
		ORDER BY id
	`, pgx.Identifier{table}.Sanitize())

	rows, err := l.pool.Query(ctx, query)
	if err != nil {
		l.logger.Error().Err(err).Str("table", table).Msg("failed to query seed products")
		return nil, fmt.Errorf("failed to query seed products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		l.logger.Error().Err(err).Str("table", table).Msg("failed to scan seed products")
		return nil, fmt.Errorf("failed to scan seed products: %w", err)
	}

	for i := range products {
		if err := validate.Struct(products[i]); err != nil {
			return nil, fmt.Errorf("row %s: %w", products[i].ID, err)
		}
	}

	l.logger.Info().
		Str("table", table).
		Int("products_loaded", len(products)).
		Msg("seed products loaded from database")

	return products, nil
}
