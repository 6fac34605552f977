package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
)

// Error codes raised at the persistence boundary. STORE_CONSTRAINT carries the
// store's own message for duplicate keys and foreign-key mismatches;
// STORE_UNAVAILABLE marks connectivity failures and maps to a server error
// rather than a client error.
const (
	CodeStoreConstraint  = "STORE_CONSTRAINT"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// NewConstraintError wraps a store constraint violation, passing the store's
// message through to the caller.
func NewConstraintError(message string) *DomainError {
	return NewDomainError(CodeStoreConstraint, message)
}

// NewUnavailableError wraps a connectivity or pool failure.
func NewUnavailableError(message string) *DomainError {
	return NewDomainError(CodeStoreUnavailable, message)
}
