package store

import (
	"context"

	"github.com/MKhiriev/go-asset-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is
	// already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user account by its unique email.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AssetRepository is the data-access layer for user-owned assets.
//
// Lookups by asset ID are deliberately not owner-filtered: ownership
// enforcement is a service-layer concern, which needs to distinguish
// "absent" from "owned by someone else".
type AssetRepository interface {
	// CreateAsset persists a new asset and returns it with server-assigned
	// fields populated.
	CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error)

	// GetAllAssets returns every asset owned by userID, newest-created first.
	GetAllAssets(ctx context.Context, userID int64) ([]models.Asset, error)

	// GetAsset fetches a single asset by its ID regardless of owner.
	// Returns ErrAssetNotFound when no asset matches.
	GetAsset(ctx context.Context, assetID int64) (models.Asset, error)

	// UpdateAsset applies the non-nil fields of update and returns the
	// resulting row. Returns ErrAssetNotFound when the asset does not exist.
	UpdateAsset(ctx context.Context, update models.AssetUpdate) (models.Asset, error)

	// DeleteAsset removes the asset with the given ID.
	// Returns ErrAssetNotFound when no asset matches.
	DeleteAsset(ctx context.Context, assetID int64) error
}
