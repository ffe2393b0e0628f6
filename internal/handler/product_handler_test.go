package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"product-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, category string, page, limit int) (*model.ProductPage, error) {
	args := m.Called(ctx, category, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductPage), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Search(ctx context.Context, query string) ([]model.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestProductHandler_Welcome(t *testing.T) {
	handler := NewProductHandler(new(MockProductService), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.Welcome(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, WelcomeMessage, w.Body.String())
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testPage := &model.ProductPage{
		Page:  1,
		Total: 2,
		Products: []model.Product{
			{ID: "1", Name: "Laptop", Category: "electronics"},
			{ID: "2", Name: "Smartphone", Category: "electronics"},
		},
	}

	tests := []struct {
		name           string
		queryParams    string
		mockReturn     *model.ProductPage
		mockError      error
		expectedStatus int
		expectedError  string
		expectService  bool
		category       string
		page           int
		limit          int
	}{
		{
			name:           "Success with default pagination",
			queryParams:    "",
			mockReturn:     testPage,
			expectedStatus: http.StatusOK,
			expectService:  true,
			page:           1,
			limit:          10,
		},
		{
			name:           "Success with category and pagination",
			queryParams:    "?category=Electronics&page=2&limit=1",
			mockReturn:     testPage,
			expectedStatus: http.StatusOK,
			expectService:  true,
			category:       "Electronics",
			page:           2,
			limit:          1,
		},
		{
			name:           "Out of range values are passed on for clamping",
			queryParams:    "?page=0&limit=-4",
			mockReturn:     testPage,
			expectedStatus: http.StatusOK,
			expectService:  true,
			page:           0,
			limit:          -4,
		},
		{
			name:           "Invalid page parameter",
			queryParams:    "?page=abc",
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrInvalidPage.Message,
		},
		{
			name:           "Invalid limit parameter",
			queryParams:    "?limit=1.5",
			expectedStatus: http.StatusBadRequest,
			expectedError:  model.ErrInvalidLimit.Message,
		},
		{
			name:           "Service error is hidden",
			queryParams:    "",
			mockError:      errors.New("storage failure"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  model.MsgInternalError,
			expectService:  true,
			page:           1,
			limit:          10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("List", mock.Anything, tt.category, tt.page, tt.limit).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w))
			} else {
				var body model.ProductPage
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, *tt.mockReturn, body)
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Search(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		queryParams    string
		query          string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			queryParams:    "?query=keyboard",
			query:          "keyboard",
			mockReturn:     []model.Product{{ID: "7", Name: "Cover", Description: "Keyboard cover"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "No matches is an empty array",
			queryParams:    "?query=bicycle",
			query:          "bicycle",
			mockReturn:     []model.Product{},
			expectedStatus: http.StatusOK,
			expectedBody:   "[]\n",
		},
		{
			name:           "Missing query",
			queryParams:    "",
			query:          "",
			mockError:      model.ErrMissingQuery,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			mockService.On("Search", mock.Anything, tt.query).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/products/search"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.Search(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			if tt.mockError != nil {
				assert.Equal(t, "Search query is required", decodeError(t, w))
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{ID: "1", Name: "Laptop", Price: 1200, Category: "electronics", InStock: true}

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			productID:      "1",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			productID:      "999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Service error",
			productID:      "1",
			mockError:      errors.New("storage failure"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			mockService.On("GetByID", mock.Anything, tt.productID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.productID, nil)
			req.SetPathValue("id", tt.productID)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			switch tt.expectedStatus {
			case http.StatusOK:
				var body model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, *testProduct, body)
			case http.StatusNotFound:
				assert.Equal(t, "Product not found", decodeError(t, w))
			case http.StatusInternalServerError:
				assert.Equal(t, model.MsgInternalError, decodeError(t, w))
				assert.NotContains(t, w.Body.String(), "storage failure")
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	created := &model.Product{ID: "new-id", Name: "Mouse", Description: "Wireless mouse", Price: 25, Category: "electronics", InStock: true}

	tests := []struct {
		name           string
		body           string
		expectService  bool
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			body:           `{"name":"Mouse","description":"Wireless mouse","price":25,"category":"electronics"}`,
			expectService:  true,
			mockReturn:     created,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Validation failure",
			body:           `{"name":"Mouse"}`,
			expectService:  true,
			mockError:      model.ErrMissingFields,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing or invalid fields",
		},
		{
			name:           "Price of wrong type",
			body:           `{"name":"Mouse","description":"Wireless mouse","price":"25","category":"electronics"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing or invalid fields",
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing or invalid fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateProductRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w))
			} else {
				var body model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, *created, body)
			}

			if !tt.expectService {
				mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Update(t *testing.T) {
	logger := zerolog.Nop()

	updated := &model.Product{ID: "1", Name: "Laptop", Description: "Fast", Price: 999, Category: "electronics", InStock: false}

	tests := []struct {
		name           string
		productID      string
		body           string
		expectLookup   bool
		lookupError    error
		expectService  bool
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			productID:      "1",
			body:           `{"price":999,"inStock":false}`,
			expectService:  true,
			mockReturn:     updated,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			productID:      "999",
			body:           `{"price":1}`,
			expectService:  true,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "Wrong type for existing product",
			productID:      "1",
			body:           `{"inStock":"yes"}`,
			expectLookup:   true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid input types",
		},
		{
			name:           "Wrong type for missing product reports not found",
			productID:      "999",
			body:           `{"price":"free"}`,
			expectLookup:   true,
			lookupError:    model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "Empty body is an empty patch",
			productID:      "1",
			body:           "",
			expectService:  true,
			mockReturn:     updated,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty name rejected by service",
			productID:      "1",
			body:           `{"name":""}`,
			expectService:  true,
			mockError:      model.ErrInvalidTypes,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid input types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectLookup {
				if tt.lookupError != nil {
					mockService.On("GetByID", mock.Anything, tt.productID).Return(nil, tt.lookupError)
				} else {
					mockService.On("GetByID", mock.Anything, tt.productID).Return(updated, nil)
				}
			}
			if tt.expectService {
				mockService.On("Update", mock.Anything, tt.productID, mock.AnythingOfType("*model.UpdateProductRequest")).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/products/"+tt.productID, strings.NewReader(tt.body))
			req.SetPathValue("id", tt.productID)
			w := httptest.NewRecorder()

			handler.Update(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, w))
			} else {
				var body model.Product
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, *updated, body)
			}

			if !tt.expectService {
				mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Update_DecodesPatch(t *testing.T) {
	mockService := new(MockProductService)
	handler := NewProductHandler(mockService, zerolog.Nop())

	mockService.On("Update", mock.Anything, "1", mock.MatchedBy(func(req *model.UpdateProductRequest) bool {
		return req.Name == nil && req.Description == nil && req.Category == nil &&
			req.Price != nil && *req.Price == 0 &&
			req.InStock != nil && !*req.InStock
	})).Return(&model.Product{ID: "1"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/products/1", strings.NewReader(`{"price":0,"inStock":false}`))
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestProductHandler_Update_EmptyBodyChangesNothing(t *testing.T) {
	mockService := new(MockProductService)
	handler := NewProductHandler(mockService, zerolog.Nop())

	mockService.On("Update", mock.Anything, "1", mock.MatchedBy(func(req *model.UpdateProductRequest) bool {
		return *req == model.UpdateProductRequest{}
	})).Return(&model.Product{ID: "1"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/products/1", http.NoBody)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestWriteJSON_LogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	w := httptest.NewRecorder()

	writeJSON(w, http.StatusOK, map[string]float64{"price": math.Inf(1)}, logger)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, buf.String(), "failed to encode response")
}

func TestProductHandler_Delete(t *testing.T) {
	logger := zerolog.Nop()

	deleted := &model.Product{ID: "1", Name: "Laptop", Price: 1200, Category: "electronics", InStock: true}

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "Success",
			productID:      "1",
			mockReturn:     deleted,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			productID:      "999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			mockService.On("Delete", mock.Anything, tt.productID).Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodDelete, "/api/products/"+tt.productID, nil)
			req.SetPathValue("id", tt.productID)
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var body model.DeleteProductResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "Product deleted", body.Message)
				assert.Equal(t, *deleted, body.Product)
			} else {
				assert.Equal(t, "Product not found", decodeError(t, w))
			}

			mockService.AssertExpectations(t)
		})
	}
}
