package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/store"
	"github.com/MKhiriev/go-asset-keeper/internal/validators"
	"github.com/MKhiriev/go-asset-keeper/models"
)

// assetService is the concrete implementation of AssetService.
//
// Every operation is scoped to the authenticated user. Ownership is enforced
// here, not in the repository, and the two failure modes are deliberately
// asymmetric:
//   - Reads of another user's asset return store.ErrAssetNotFound, hiding
//     the record's existence.
//   - Writes to another user's asset return ErrAssetAccessDenied, because a
//     write attempt is already an authorization question.
type assetService struct {
	assetRepository store.AssetRepository
	validator       validators.Validator
	logger          *logger.Logger
}

// NewAssetService constructs an AssetService wired to the given AssetRepository.
func NewAssetService(assetRepository store.AssetRepository, logger *logger.Logger) AssetService {
	return &assetService{
		assetRepository: assetRepository,
		validator:       validators.NewAssetValidator(),
		logger:          logger,
	}
}

// CreateAsset validates the request and persists a new asset owned by userID.
func (s *assetService) CreateAsset(ctx context.Context, userID int64, req models.CreateAssetRequest) (models.Asset, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("invalid create asset request")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	asset := models.Asset{
		UserID: userID,
		Name:   req.Name,
		Number: req.Number,
	}

	created, err := s.assetRepository.CreateAsset(ctx, asset)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("asset creation ended with error")
		return models.Asset{}, fmt.Errorf("asset creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllAssets lists every asset owned by userID, newest first.
func (s *assetService) GetAllAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	assets, err := s.assetRepository.GetAllAssets(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing assets ended with error")
		return nil, fmt.Errorf("listing assets ended with error: %w", err)
	}

	return assets, nil
}

// GetAsset retrieves a single asset owned by userID.
//
// An asset owned by a different user is reported as store.ErrAssetNotFound,
// indistinguishable from an absent one.
func (s *assetService) GetAsset(ctx context.Context, userID, assetID int64) (models.Asset, error) {
	log := logger.FromContext(ctx)

	asset, err := s.assetRepository.GetAsset(ctx, assetID)
	if err != nil {
		return models.Asset{}, err
	}

	if asset.UserID != userID {
		log.Warn().
			Int64("user_id", userID).
			Int64("asset_id", assetID).
			Msg("read of foreign asset masked as not found")
		return models.Asset{}, store.ErrAssetNotFound
	}

	return asset, nil
}

// UpdateAsset applies a partial update to an asset owned by userID.
//
// Returns store.ErrAssetNotFound when no such asset exists and
// ErrAssetAccessDenied when it exists but belongs to another user.
func (s *assetService) UpdateAsset(ctx context.Context, userID int64, update models.AssetUpdate) (models.Asset, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Int64("asset_id", update.ID).Msg("invalid asset update")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkOwnership(ctx, userID, update.ID); err != nil {
		return models.Asset{}, err
	}

	updated, err := s.assetRepository.UpdateAsset(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("asset_id", update.ID).Msg("asset update ended with error")
		return models.Asset{}, err
	}

	return updated, nil
}

// DeleteAsset removes an asset owned by userID.
//
// Returns store.ErrAssetNotFound when no such asset exists and
// ErrAssetAccessDenied when it exists but belongs to another user.
func (s *assetService) DeleteAsset(ctx context.Context, userID, assetID int64) error {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(ctx, userID, assetID); err != nil {
		return err
	}

	if err := s.assetRepository.DeleteAsset(ctx, assetID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("asset_id", assetID).Msg("asset deletion ended with error")
		return err
	}

	return nil
}

// checkOwnership verifies that the asset exists and belongs to userID before
// a write. Unlike reads, a foreign asset here yields ErrAssetAccessDenied.
func (s *assetService) checkOwnership(ctx context.Context, userID, assetID int64) error {
	log := logger.FromContext(ctx)

	asset, err := s.assetRepository.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}

	if asset.UserID != userID {
		log.Warn().
			Int64("user_id", userID).
			Int64("owner_id", asset.UserID).
			Int64("asset_id", assetID).
			Msg("write attempt on foreign asset")
		return ErrAssetAccessDenied
	}

	return nil
}
