package service

import (
	"github.com/MKhiriev/go-asset-keeper/internal/config"
	"github.com/MKhiriev/go-asset-keeper/internal/crypto"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/store"
)

type Services struct {
	AuthService  AuthService
	AssetService AssetService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewBCryptHasher(cfg.App.BCryptCost)

	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		AssetService: NewAssetService(storages.AssetRepository, logger),
	}
}
