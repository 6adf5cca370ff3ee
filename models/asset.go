package models

import "time"

// Asset is a user-owned record with a name and a number. Assets are scoped
// to their owner: only requests authenticated as Asset.UserID may read or
// mutate the record.
type Asset struct {
	// ID is the unique identifier of the asset, assigned by the database.
	ID int64 `json:"id"`

	// UserID references the owning user.
	UserID int64 `json:"userId"`

	Name   string `json:"name"`
	Number int64  `json:"number"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Asset model.
func (a Asset) TableName() string {
	return "assets"
}

// AssetUpdate represents a partial update of a single asset.
// Only non-nil fields are applied (PATCH semantics).
type AssetUpdate struct {
	// ID is the identifier of the asset to update. Required.
	ID int64 `json:"-"`

	// UserID is the authenticated owner performing the update.
	// Required for ownership enforcement; never taken from the body.
	UserID int64 `json:"-"`

	Name   *string `json:"name,omitempty"`
	Number *int64  `json:"number,omitempty"`
}
