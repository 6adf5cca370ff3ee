package validators

import (
	"context"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/go-asset-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the email address of a registration or login request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a registration or login request.
	FieldPassword = "password"

	// FieldName targets the optional display name of a registration request.
	FieldName = "name"
)

// minPasswordLength is the minimum accepted password length in runes.
const minPasswordLength = 6

// AuthValidator implements the Validator interface for authentication
// request models: RegisterRequest and LoginRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type AuthValidator struct {
}

// NewAuthValidator constructs a new AuthValidator
// and returns it as the Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// all fields of the request are validated.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AuthValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := v.validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validatePassword(req.Password); err != nil {
				return err
			}
		case FieldName:
			if err := v.validateName(req.Name); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *AuthValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := v.validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validatePassword(req.Password); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateEmail checks that email parses as an RFC 5322 address with no
// display-name part.
func (v *AuthValidator) validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func (v *AuthValidator) validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// validateName accepts a nil name (the field is optional) but rejects an
// explicitly provided empty one.
func (v *AuthValidator) validateName(name *string) error {
	if name != nil && *name == "" {
		return ErrEmptyName
	}

	return nil
}
