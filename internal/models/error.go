package models

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid credentials
	Message string `json:"message"`

	// Underlying error detail, only set on internal errors
	// example: connection refused
	Error string `json:"error,omitempty"`
}
