package models

// AuthResponse is returned by the register and login endpoints: the issued
// bearer token plus the public view of the user it was issued for.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Profile is the claims-derived view returned by GET /auth/profile.
// It is built entirely from the verified token, without a database lookup.
type Profile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// DeleteResponse acknowledges a successful DELETE /assets/{id}.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// StatusResponse is returned by the root and health endpoints.
type StatusResponse struct {
	Message   string `json:"message,omitempty"`
	Status    string `json:"status,omitempty"`
	Timestamp string `json:"timestamp"`
}
