package models

import "time"

// User represents an account entity used for authentication and authorization.
// Its JSON form is the public view returned by the API: the password hash is
// never serialized and must not leave trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user, assigned by the database.
	UserID int64 `json:"id"`

	// Email is the unique address the user registers and logs in with.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password. The per-user
	// salt is embedded in the hash itself. Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Name is the optional display name. Nil when the user registered
	// without one; serialized as JSON null in that case.
	Name *string `json:"name"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is maintained by the persistence layer and is not part of
	// the public view.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
