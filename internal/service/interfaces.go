package service

import (
	"context"

	"github.com/MKhiriev/go-asset-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AssetService interface {
	CreateAsset(ctx context.Context, userID int64, req models.CreateAssetRequest) (models.Asset, error)
	GetAllAssets(ctx context.Context, userID int64) ([]models.Asset, error)
	GetAsset(ctx context.Context, userID, assetID int64) (models.Asset, error)
	UpdateAsset(ctx context.Context, userID int64, update models.AssetUpdate) (models.Asset, error)
	DeleteAsset(ctx context.Context, userID, assetID int64) error
}
