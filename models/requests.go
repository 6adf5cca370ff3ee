package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Name is optional; nil when the user registers without a display name.
	Name *string `json:"name,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAssetRequest is the body of POST /assets.
type CreateAssetRequest struct {
	Name   string `json:"name"`
	Number int64  `json:"number"`
}
