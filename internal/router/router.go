package router

import (
	"net/http"

	"product-api/internal/handler"
	"product-api/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
//
// Routes use method+pattern matching, so the literal /api/products/search is
// always chosen over /api/products/{id} whatever the registration order.
func New(productHandler *handler.ProductHandler, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Welcome route (no authentication required)
	mux.HandleFunc("GET /{$}", productHandler.Welcome)

	mux.HandleFunc("GET /api/products", productHandler.List)
	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.Delete)
	mux.HandleFunc("GET /api/products/search", productHandler.Search)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
