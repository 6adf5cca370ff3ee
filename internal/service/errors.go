package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that a login response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAssetAccessDenied is returned by mutating asset operations when the
	// record exists but belongs to a different user.
	ErrAssetAccessDenied = errors.New("asset belongs to another user")
)
