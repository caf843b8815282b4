package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// required: true
	// example: John Doe
	FullName string `json:"fullName"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`

	// Identifier of the new user
	// example: 652f1c0e9b1e8a3d4c2b1a00
	UserID string `json:"userId"`
}
