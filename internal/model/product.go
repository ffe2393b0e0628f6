package model

// Product represents a catalogue entry.
type Product struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name" validate:"required"`
	Description string  `json:"description" db:"description" validate:"required"`
	Price       float64 `json:"price" db:"price"`
	Category    string  `json:"category" db:"category" validate:"required"`
	InStock     bool    `json:"inStock" db:"in_stock"`
}

// CreateProductRequest represents the request payload for creating a product.
// Fields are pointers so that an omitted field can be told apart from a zero value.
type CreateProductRequest struct {
	Name        *string  `json:"name" validate:"required,min=1"`
	Description *string  `json:"description" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"required"`
	Category    *string  `json:"category" validate:"required,min=1"`
	InStock     *bool    `json:"inStock"`
}

// UpdateProductRequest represents a partial update. Only non-nil fields are applied.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=1"`
	Description *string  `json:"description" validate:"omitnil,min=1"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category" validate:"omitnil,min=1"`
	InStock     *bool    `json:"inStock"`
}

// ProductPage represents one page of a product listing.
type ProductPage struct {
	Page     int       `json:"page"`
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

// DeleteProductResponse represents the response payload for a deleted product.
type DeleteProductResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
