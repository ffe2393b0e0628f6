package service

import (
	"product-api/internal/model"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateCreate reports whether a create payload carries every required field.
// Price only has to be present; zero is a valid price.
func ValidateCreate(req *model.CreateProductRequest) error {
	if req == nil {
		return model.ErrMissingFields
	}
	if err := validate.Struct(req); err != nil {
		return model.ErrMissingFields
	}
	return nil
}

// ValidateUpdate reports whether a patch is acceptable. Text fields that are
// supplied must not be empty.
func ValidateUpdate(req *model.UpdateProductRequest) error {
	if req == nil {
		return model.ErrInvalidTypes
	}
	if err := validate.Struct(req); err != nil {
		return model.ErrInvalidTypes
	}
	return nil
}

// ValidateSearch reports whether a search query was supplied.
func ValidateSearch(query string) error {
	if query == "" {
		return model.ErrMissingQuery
	}
	return nil
}
