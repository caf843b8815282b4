package models

// ProfileResponse is the public part of a user document.
// swagger:model ProfileResponse
type ProfileResponse struct {
	// example: John Doe
	FullName string `json:"fullName"`
	// example: john@example.com
	Email string `json:"email"`
	// example: john_doe
	Username string `json:"username"`
}
