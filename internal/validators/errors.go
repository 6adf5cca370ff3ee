package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("email must be a valid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrEmptyAssetName   = errors.New("asset name is required")
	ErrInvalidAssetID   = errors.New("invalid asset ID")
)
