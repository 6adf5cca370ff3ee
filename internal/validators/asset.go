package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-asset-keeper/models"
)

// Field name constants for asset validation scoping.
const (
	// FieldAssetID targets the numeric identifier of an asset.
	FieldAssetID = "asset_id"

	// FieldAssetName targets the human-readable name of an asset.
	FieldAssetName = "asset_name"
)

// AssetValidator implements the Validator interface for asset request
// models: CreateAssetRequest and AssetUpdate.
//
// A partial update with no fields set is valid: the server treats it as a
// touch that only bumps the record's updated_at timestamp.
type AssetValidator struct {
}

// NewAssetValidator constructs a new AssetValidator
// and returns it as the Validator interface.
func NewAssetValidator() Validator {
	return &AssetValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.CreateAssetRequest / *models.CreateAssetRequest
//   - models.AssetUpdate / *models.AssetUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *AssetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateAssetRequest:
		return v.validateCreateAssetRequest(ctx, value, fields...)
	case *models.CreateAssetRequest:
		return v.validateCreateAssetRequest(ctx, *value, fields...)

	case models.AssetUpdate:
		return v.validateAssetUpdate(ctx, value, fields...)
	case *models.AssetUpdate:
		return v.validateAssetUpdate(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AssetValidator) validateCreateAssetRequest(_ context.Context, req models.CreateAssetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAssetName}
	}

	for _, field := range fields {
		switch field {
		case FieldAssetName:
			if err := v.validateAssetName(req.Name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AssetValidator) validateAssetUpdate(_ context.Context, update models.AssetUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAssetID, FieldAssetName}
	}

	for _, field := range fields {
		switch field {
		case FieldAssetID:
			if update.ID <= 0 {
				return ErrInvalidAssetID
			}
		case FieldAssetName:
			// name is optional in a patch, but must be non-empty when present
			if update.Name != nil {
				if err := v.validateAssetName(*update.Name); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AssetValidator) validateAssetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyAssetName
	}

	return nil
}
