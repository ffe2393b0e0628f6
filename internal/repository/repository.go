package repository

import (
	"context"

	"product-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
// Implementations own the collection and return copies, never references into it.
type ProductRepository interface {
	// List returns one page of products, optionally filtered by category
	// (case-insensitive), together with the size of the filtered set.
	List(ctx context.Context, category string, page, limit int) ([]model.Product, int, error)

	// GetByID retrieves a single product by its ID.
	// Returns model.ErrProductNotFound if no product has the ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create stores a new product under a freshly generated ID.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// Update applies the non-nil fields of patch to the product with the given ID.
	Update(ctx context.Context, id string, patch *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes the product with the given ID and returns its last state.
	Delete(ctx context.Context, id string) (*model.Product, error)

	// Search returns products whose name or description contains query,
	// ignoring case.
	Search(ctx context.Context, query string) ([]model.Product, error)

	// Seed bulk-loads products at startup and returns how many were stored.
	// Products whose ID is already taken are skipped.
	Seed(ctx context.Context, products []model.Product) (int, error)
}
