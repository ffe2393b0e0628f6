package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidFieldType  = "INVALID_FIELD_TYPE"
	ErrCodeMissingQuery      = "MISSING_QUERY"
	ErrCodeInvalidPagination = "INVALID_PAGINATION"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrMissingFields   = NewDomainError(ErrCodeMissingField, "Missing or invalid fields")
	ErrInvalidTypes    = NewDomainError(ErrCodeInvalidFieldType, "Invalid input types")
	ErrMissingQuery    = NewDomainError(ErrCodeMissingQuery, "Search query is required")
	ErrInvalidPage     = NewDomainError(ErrCodeInvalidPagination, "Invalid page parameter")
	ErrInvalidLimit    = NewDomainError(ErrCodeInvalidPagination, "Invalid limit parameter")
)

// Messages returned by the authentication gate.
const (
	MsgNoAPIKey      = "Unauthorized: no key provided"
	MsgInvalidAPIKey = "Unauthorized: invalid key"
	MsgInternalError = "Internal Server Error"
)
