// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-asset-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptrStr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// RegisterRequest
// ---------------------------------------------------------------------------

func TestAuthValidator_RegisterRequest(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		fields  []string
		wantErr error
	}{
		{
			name: "success: full valid request",
			req: models.RegisterRequest{
				Email:    "john@example.com",
				Password: "secret-password",
				Name:     ptrStr("John"),
			},
		},
		{
			name: "success: name omitted",
			req: models.RegisterRequest{
				Email:    "john@example.com",
				Password: "secret-password",
			},
		},
		{
			name: "success: password of exactly six characters",
			req: models.RegisterRequest{
				Email:    "john@example.com",
				Password: "123456",
			},
		},
		{
			name: "error: malformed email",
			req: models.RegisterRequest{
				Email:    "not-an-email",
				Password: "secret-password",
			},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "error: empty email",
			req: models.RegisterRequest{
				Email:    "",
				Password: "secret-password",
			},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "error: email with display name part",
			req: models.RegisterRequest{
				Email:    "John <john@example.com>",
				Password: "secret-password",
			},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "error: short password",
			req: models.RegisterRequest{
				Email:    "john@example.com",
				Password: "12345",
			},
			wantErr: ErrPasswordTooShort,
		},
		{
			name: "error: explicitly empty name",
			req: models.RegisterRequest{
				Email:    "john@example.com",
				Password: "secret-password",
				Name:     ptrStr(""),
			},
			wantErr: ErrEmptyName,
		},
		{
			name: "success: field scoping skips invalid password",
			req: models.RegisterRequest{
				Email:    "john@example.com",
				Password: "x",
			},
			fields: []string{FieldEmail},
		},
		{
			name: "error: unknown field",
			req: models.RegisterRequest{
				Email:    "john@example.com",
				Password: "secret-password",
			},
			fields:  []string{"nonexistent"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestAuthValidator_RegisterRequest_PointerForm(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	req := &models.RegisterRequest{
		Email:    "john@example.com",
		Password: "secret-password",
	}

	require.NoError(t, v.Validate(ctx, req))
}

// ---------------------------------------------------------------------------
// LoginRequest
// ---------------------------------------------------------------------------

func TestAuthValidator_LoginRequest(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{
			name: "success: valid credentials",
			req: models.LoginRequest{
				Email:    "john@example.com",
				Password: "secret-password",
			},
		},
		{
			name: "error: malformed email",
			req: models.LoginRequest{
				Email:    "john@",
				Password: "secret-password",
			},
			wantErr: ErrInvalidEmail,
		},
		{
			name: "error: short password",
			req: models.LoginRequest{
				Email:    "john@example.com",
				Password: "123",
			},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// Unsupported types
// ---------------------------------------------------------------------------

func TestAuthValidator_UnsupportedType(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	err := v.Validate(ctx, struct{ X int }{X: 1})
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "struct")
}
