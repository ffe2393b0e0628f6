package repository

import (
	"context"
	"strings"
	"sync"

	"product-api/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryProductRepository implements ProductRepository with an insertion-ordered slice.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products []model.Product
	newID    func() string
	logger   zerolog.Logger
}

// Option configures a memoryProductRepository.
type Option func(*memoryProductRepository)

// WithIDGenerator overrides the UUID generator used for new products.
func WithIDGenerator(fn func() string) Option {
	return func(r *memoryProductRepository) {
		r.newID = fn
	}
}

// NewProductRepository creates a new in-memory product repository.
// The collection lives only as long as the process.
func NewProductRepository(logger zerolog.Logger, opts ...Option) ProductRepository {
	r := &memoryProductRepository{
		products: make([]model.Product, 0),
		newID:    uuid.NewString,
		logger:   logger.With().Str("repository", "product").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns one page of products, optionally filtered by category.
func (r *memoryProductRepository) List(ctx context.Context, category string, page, limit int) ([]model.Product, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filtered := r.products
	if category != "" {
		filtered = make([]model.Product, 0, len(r.products))
		for _, p := range r.products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
	}

	total := len(filtered)
	// (page-1)*limit can overflow, so the range check divides instead.
	if page < 1 || limit <= 0 || total == 0 || page-1 > (total-1)/limit {
		return []model.Product{}, total, nil
	}
	start := (page - 1) * limit
	end := min(start+limit, total)

	result := make([]model.Product, end-start)
	copy(result, filtered[start:end])

	r.logger.Debug().
		Str("category", category).
		Int("page", page).
		Int("limit", limit).
		Int("total", total).
		Int("count", len(result)).
		Msg("listed products")

	return result, total, nil
}

// GetByID retrieves a single product by its ID.
func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	p := r.products[i]
	return &p, nil
}

// Create stores a new product under a freshly generated ID.
func (r *memoryProductRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := *product
	p.ID = r.uniqueID()
	r.products = append(r.products, p)

	r.logger.Debug().Str("product_id", p.ID).Msg("product created")

	return &p, nil
}

// Update applies the non-nil fields of patch to the stored product.
func (r *memoryProductRepository) Update(ctx context.Context, id string, patch *model.UpdateProductRequest) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	p := &r.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}

	updated := *p
	return &updated, nil
}

// Delete removes the product with the given ID and returns its last state.
func (r *memoryProductRepository) Delete(ctx context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found for deletion")
		return nil, model.ErrProductNotFound
	}

	deleted := r.products[i]
	r.products = append(r.products[:i], r.products[i+1:]...)

	r.logger.Debug().Str("product_id", id).Msg("product deleted")

	return &deleted, nil
}

// Search returns products whose name or description contains query, ignoring case.
func (r *memoryProductRepository) Search(ctx context.Context, query string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(query)
	results := make([]model.Product, 0)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			results = append(results, p)
		}
	}

	return results, nil
}

// Seed bulk-loads products, keeping their IDs where given.
func (r *memoryProductRepository) Seed(ctx context.Context, products []model.Product) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := 0
	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return stored, err
		}

		if p.ID == "" {
			p.ID = r.uniqueID()
		} else if r.indexOf(p.ID) >= 0 {
			r.logger.Warn().Str("product_id", p.ID).Msg("duplicate product ID in seed data, skipping")
			continue
		}

		r.products = append(r.products, p)
		stored++
	}

	r.logger.Info().
		Int("stored", stored).
		Int("total", len(r.products)).
		Msg("seeded products")

	return stored, nil
}

// indexOf returns the position of the product with the given ID, or -1.
// Callers must hold r.mu.
func (r *memoryProductRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID draws IDs until one is free. Callers must hold r.mu for writing.
func (r *memoryProductRepository) uniqueID() string {
	for {
		id := r.newID()
		if r.indexOf(id) < 0 {
			return id
		}
		r.logger.Warn().Str("product_id", id).Msg("generated product ID already in use, retrying")
	}
}
