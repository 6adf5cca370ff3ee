package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/models"
)

// assetRepository is the PostgreSQL-backed implementation of
// [AssetRepository]. It executes all asset CRUD operations directly against
// the "assets" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, asset_id, etc.).
type assetRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssetRepository constructs an [AssetRepository] backed by the provided
// database connection and logger.
func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating asset repository")
	return &assetRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAsset persists a new asset owned by asset.UserID and returns the
// fully populated [models.Asset] with server-assigned fields (ID, CreatedAt,
// UpdatedAt) via the INSERT … RETURNING clause.
func (r *assetRepository) CreateAsset(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createAsset, asset.UserID, asset.Name, asset.Number)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*assetRepository.CreateAsset").
			Int64("user_id", asset.UserID).
			Msg("failed to execute asset insert")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&asset.ID, &asset.UserID, &asset.Name, &asset.Number, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "*assetRepository.CreateAsset").
			Int64("user_id", asset.UserID).
			Msg("failed to scan inserted asset row")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return asset, nil
}

// GetAllAssets retrieves every asset owned by the given user, ordered
// newest-created first. Returns an empty slice when no records are found.
func (r *assetRepository) GetAllAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getAllUserAssets, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*assetRepository.GetAllAssets").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all user assets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0, 20)

	for rows.Next() {
		var asset models.Asset

		scanErr := rows.Scan(&asset.ID, &asset.UserID, &asset.Name, &asset.Number, &asset.CreatedAt, &asset.UpdatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*assetRepository.GetAllAssets").
				Int64("user_id", userID).
				Msg("failed to scan asset row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		assets = append(assets, asset)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*assetRepository.GetAllAssets").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return assets, nil
}

// GetAsset retrieves a single asset by its ID regardless of owner.
// Ownership checks belong to the service layer.
//
// Returns [ErrAssetNotFound] when no asset with the given ID exists.
func (r *assetRepository) GetAsset(ctx context.Context, assetID int64) (models.Asset, error) {
	log := logger.FromContext(ctx)

	var asset models.Asset
	row := r.DB.QueryRowContext(ctx, getAsset, assetID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*assetRepository.GetAsset").
			Int64("asset_id", assetID).
			Msg("failed to execute asset lookup")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&asset.ID, &asset.UserID, &asset.Name, &asset.Number, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Asset{}, ErrAssetNotFound
		}

		log.Err(err).
			Str("func", "*assetRepository.GetAsset").
			Int64("asset_id", assetID).
			Msg("failed to scan asset row")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return asset, nil
}

// UpdateAsset applies the non-nil fields of update to a single asset and
// returns the resulting row.
//
// The UPDATE is built dynamically via [buildUpdateAssetQuery]; updated_at is
// always bumped, even for an empty patch. A concurrent delete between the
// service-layer ownership check and this UPDATE surfaces as
// [ErrAssetNotFound].
func (r *assetRepository) UpdateAsset(ctx context.Context, update models.AssetUpdate) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAssetQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*assetRepository.UpdateAsset").
			Int64("asset_id", update.ID).
			Msg("failed to build update query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var asset models.Asset
	scanErr := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&asset.ID, &asset.UserID, &asset.Name, &asset.Number, &asset.CreatedAt, &asset.UpdatedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*assetRepository.UpdateAsset").
				Int64("asset_id", update.ID).
				Msg("asset not found")
			return models.Asset{}, ErrAssetNotFound
		}

		log.Err(scanErr).
			Str("func", "*assetRepository.UpdateAsset").
			Int64("asset_id", update.ID).
			Msg("failed to execute update query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	log.Info().
		Str("func", "*assetRepository.UpdateAsset").
		Int64("asset_id", asset.ID).
		Msg("successfully updated asset")

	return asset, nil
}

// DeleteAsset removes the asset with the given ID.
//
// Returns [ErrAssetNotFound] when the DELETE affects no rows — either the
// asset never existed or a concurrent request already removed it.
func (r *assetRepository) DeleteAsset(ctx context.Context, assetID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteAsset, assetID)
	if err != nil {
		log.Err(err).
			Str("func", "*assetRepository.DeleteAsset").
			Int64("asset_id", assetID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "*assetRepository.DeleteAsset").
			Int64("asset_id", assetID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "*assetRepository.DeleteAsset").
			Int64("asset_id", assetID).
			Msg("asset not found")
		return ErrAssetNotFound
	}

	return nil
}
