package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"product-api/internal/model"
	"product-api/internal/service"

	"github.com/rs/zerolog"
)

// WelcomeMessage is returned by the root route.
const WelcomeMessage = "Welcome to the Product API! Go to /api/products"

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Welcome handles GET / requests.
func (h *ProductHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(WelcomeMessage))
}

// List handles GET /api/products requests with category filtering and pagination.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, ok := h.intParam(w, query.Get("page"), service.DefaultPage, model.ErrInvalidPage)
	if !ok {
		return
	}
	limit, ok := h.intParam(w, query.Get("limit"), service.DefaultLimit, model.ErrInvalidLimit)
	if !ok {
		return
	}

	result, err := h.service.List(r.Context(), query.Get("category"), page, limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result, h.logger)
}

// Search handles GET /api/products/search requests.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, results, h.logger)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product, h.logger)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("failed to decode create request")
		writeServiceError(w, model.ErrMissingFields, h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product, h.logger)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// An empty body is an empty patch.
	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug().Err(err).Str("product_id", id).Msg("failed to decode update request")
		// A missing product is reported ahead of a bad payload.
		if _, lookupErr := h.service.GetByID(r.Context(), id); lookupErr != nil {
			writeServiceError(w, lookupErr, h.logger)
			return
		}
		writeServiceError(w, model.ErrInvalidTypes, h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product, h.logger)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteProductResponse{
		Message: "Product deleted",
		Product: *product,
	}, h.logger)
}

// intParam parses an optional integer query parameter, writing a 400 on failure.
func (h *ProductHandler) intParam(w http.ResponseWriter, raw string, defaultValue int, invalid *model.DomainError) (int, bool) {
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		writeServiceError(w, invalid, h.logger)
		return 0, false
	}
	return value, true
}
