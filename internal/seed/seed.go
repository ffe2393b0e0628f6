// Package seed fills the product store at startup. Products come from a
// built-in catalogue and, optionally, from JSON-lines files held locally or
// in S3, or from a PostgreSQL table. Seeding is a one-way import: nothing is
// written back.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"product-api/internal/model"

	"github.com/go-playground/validator/v10"
)

// Loader defines the interface for loading seed products from a source.
type Loader interface {
	// Load reads every product held by source. What source names depends
	// on the implementation: a file path, an object key or a table name.
	Load(ctx context.Context, source string) ([]model.Product, error)
}

var validate = validator.New()

// DefaultProducts returns the built-in catalogue the API starts with.
func DefaultProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       1200,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       800,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       50,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}

// isGzip reports whether a source name refers to gzip-compressed data.
func isGzip(source string) bool {
	return strings.HasSuffix(source, ".gz")
}

// decodeProducts reads one JSON product per line. Blank lines are skipped.
// A record without inStock is taken to be in stock.
func decodeProducts(ctx context.Context, r io.Reader, compressed bool) ([]model.Product, error) {
	if compressed {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	products := make([]model.Product, 0)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++

		// Check context cancellation periodically
		if lineNumber%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record struct {
			model.Product
			InStock *bool `json:"inStock"`
		}
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, fmt.Errorf("line %d: invalid product: %w", lineNumber, err)
		}

		product := record.Product
		product.InStock = record.InStock == nil || *record.InStock

		if err := validate.Struct(product); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		products = append(products, product)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading products: %w", err)
	}

	return products, nil
}
