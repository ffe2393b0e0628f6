package service

import (
	"testing"

	"product-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreate(t *testing.T) {
	valid := func() *model.CreateProductRequest {
		return &model.CreateProductRequest{
			Name:        strPtr("Mouse"),
			Description: strPtr("Wireless mouse"),
			Price:       floatPtr(25),
			Category:    strPtr("electronics"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *model.CreateProductRequest)
		wantErr bool
	}{
		{name: "Valid", mutate: func(r *model.CreateProductRequest) {}},
		{name: "Negative price is accepted", mutate: func(r *model.CreateProductRequest) { r.Price = floatPtr(-5) }},
		{name: "Whitespace name is accepted", mutate: func(r *model.CreateProductRequest) { r.Name = strPtr(" ") }},
		{name: "Nil name", mutate: func(r *model.CreateProductRequest) { r.Name = nil }, wantErr: true},
		{name: "Empty name", mutate: func(r *model.CreateProductRequest) { r.Name = strPtr("") }, wantErr: true},
		{name: "Nil description", mutate: func(r *model.CreateProductRequest) { r.Description = nil }, wantErr: true},
		{name: "Nil price", mutate: func(r *model.CreateProductRequest) { r.Price = nil }, wantErr: true},
		{name: "Empty category", mutate: func(r *model.CreateProductRequest) { r.Category = strPtr("") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)

			err := ValidateCreate(req)

			if tt.wantErr {
				assert.Equal(t, model.ErrMissingFields, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name    string
		req     *model.UpdateProductRequest
		wantErr bool
	}{
		{name: "Empty patch", req: &model.UpdateProductRequest{}},
		{name: "Zero price", req: &model.UpdateProductRequest{Price: floatPtr(0)}},
		{name: "False stock flag", req: &model.UpdateProductRequest{InStock: boolPtr(false)}},
		{name: "All fields", req: &model.UpdateProductRequest{
			Name: strPtr("A"), Description: strPtr("B"), Price: floatPtr(1), Category: strPtr("C"), InStock: boolPtr(true),
		}},
		{name: "Empty name", req: &model.UpdateProductRequest{Name: strPtr("")}, wantErr: true},
		{name: "Empty description", req: &model.UpdateProductRequest{Description: strPtr("")}, wantErr: true},
		{name: "Empty category", req: &model.UpdateProductRequest{Category: strPtr("")}, wantErr: true},
		{name: "Nil request", req: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate(tt.req)

			if tt.wantErr {
				assert.Equal(t, model.ErrInvalidTypes, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSearch(t *testing.T) {
	assert.NoError(t, ValidateSearch("keyboard"))
	assert.Equal(t, model.ErrMissingQuery, ValidateSearch(""))
}
