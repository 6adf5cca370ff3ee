package store

import "github.com/MKhiriev/go-asset-keeper/internal/logger"

// Storages aggregates all repositories backed by a single database
// connection. It is the unit injected into the service layer.
type Storages struct {
	UserRepository  UserRepository
	AssetRepository AssetRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		AssetRepository: NewAssetRepository(db, logger),
	}
}
