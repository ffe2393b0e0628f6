package service

import (
	"context"
	"errors"
	"fmt"

	"product-api/internal/model"
	"product-api/internal/repository"

	"github.com/rs/zerolog"
)

// Pagination defaults applied to list requests.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves one page of products, optionally filtered by category.
func (s *productService) List(ctx context.Context, category string, page, limit int) (*model.ProductPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	products, total, err := s.productRepo.List(ctx, category, page, limit)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", category).
			Int("page", page).
			Int("limit", limit).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return &model.ProductPage{
		Page:     page,
		Total:    total,
		Products: products,
	}, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.storeError(err, id, "failed to get product")
	}

	return product, nil
}

// Create validates the request and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if err := ValidateCreate(req); err != nil {
		s.logger.Debug().Err(err).Msg("create request rejected")
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product, err := s.productRepo.Create(ctx, &model.Product{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		Category:    *req.Category,
		InStock:     inStock,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().Str("product_id", product.ID).Msg("product created")

	return product, nil
}

// Update validates the patch and applies it to an existing product.
// An unknown ID is reported before the payload is checked.
func (s *productService) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := ValidateUpdate(req); err != nil {
		s.logger.Debug().Err(err).Str("product_id", id).Msg("update request rejected")
		return nil, err
	}

	product, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		return nil, s.storeError(err, id, "failed to update product")
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product and returns its last state.
func (s *productService) Delete(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, s.storeError(err, id, "failed to delete product")
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return product, nil
}

// Search finds products whose name or description contains the query.
func (s *productService) Search(ctx context.Context, query string) ([]model.Product, error) {
	if err := ValidateSearch(query); err != nil {
		return nil, err
	}

	results, err := s.productRepo.Search(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	if results == nil {
		results = []model.Product{}
	}

	s.logger.Debug().
		Str("query", query).
		Int("count", len(results)).
		Msg("searched products")

	return results, nil
}

// storeError passes not-found through unchanged and wraps anything else.
func (s *productService) storeError(err error, id, msg string) error {
	if errors.Is(err, model.ErrProductNotFound) {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}
	s.logger.Error().Err(err).Str("product_id", id).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
