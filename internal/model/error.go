package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodePrintNotFound     = "PRINT_NOT_FOUND"
	ErrCodeRollNotFound      = "ROLL_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidStatus     = "INVALID_STATUS"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeInvalidWeight     = "INVALID_WEIGHT"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message so
// handlers can map business failures to HTTP statuses.
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

// NotFound reports whether the error denotes a missing entity.
func (e *DomainError) NotFound() bool {
	switch e.Code {
	case ErrCodeCustomerNotFound, ErrCodeOrderNotFound, ErrCodeProductNotFound,
		ErrCodePrintNotFound, ErrCodeRollNotFound:
		return true
	}
	return false
}

// Common domain errors
var (
	ErrCustomerNotFound  = NewDomainError(ErrCodeCustomerNotFound, "Customer not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrPrintNotFound     = NewDomainError(ErrCodePrintNotFound, "Print job not found")
	ErrRollNotFound      = NewDomainError(ErrCodeRollNotFound, "Filament roll not found")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus     = NewDomainError(ErrCodeInvalidStatus, "Unknown status value")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "Status transition not allowed")
	ErrInvalidWeight     = NewDomainError(ErrCodeInvalidWeight, "Current weight must be between zero and total weight")
)
