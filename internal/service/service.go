package service

import (
	"context"

	"product-api/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves one page of products, optionally filtered by category.
	List(ctx context.Context, category string, page, limit int) (*model.ProductPage, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create validates the request and stores a new product.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// Update validates the patch and applies it to an existing product.
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a product and returns its last state.
	Delete(ctx context.Context, id string) (*model.Product, error)

	// Search finds products whose name or description contains the query.
	Search(ctx context.Context, query string) ([]model.Product, error)
}
