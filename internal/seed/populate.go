package seed

import (
	"context"
	"fmt"

	"product-api/internal/model"

	"github.com/rs/zerolog"
)

// Store receives seeded products.
type Store interface {
	Seed(ctx context.Context, products []model.Product) (int, error)
}

// Source names one thing to load and the loader that reads it.
type Source struct {
	Name   string
	Loader Loader
	Target string // file path, object key or table name passed to Loader
}

// staticLoader serves a fixed product list.
type staticLoader struct {
	products []model.Product
}

// NewStaticLoader creates a loader that always returns a copy of products.
func NewStaticLoader(products []model.Product) Loader {
	return &staticLoader{products: products}
}

func (l *staticLoader) Load(ctx context.Context, _ string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.Product(nil), l.products...), nil
}

// Populate loads every source in order and hands the products to store.
// The first failing source stops seeding; products stored before it stay.
func Populate(ctx context.Context, store Store, logger zerolog.Logger, sources ...Source) (int, error) {
	total := 0
	for _, src := range sources {
		products, err := src.Loader.Load(ctx, src.Target)
		if err != nil {
			return total, fmt.Errorf("seed source %s: %w", src.Name, err)
		}

		stored, err := store.Seed(ctx, products)
		total += stored
		if err != nil {
			return total, fmt.Errorf("seed source %s: %w", src.Name, err)
		}

		logger.Info().
			Str("source", src.Name).
			Int("products_loaded", len(products)).
			Int("products_stored", stored).
			Msg("seed source applied")
	}

	return total, nil
}
