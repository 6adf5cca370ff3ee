// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-asset-keeper/internal/service"
	"github.com/MKhiriev/go-asset-keeper/internal/utils"
	"github.com/MKhiriev/go-asset-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextSpy records whether the wrapped handler was reached and what identity
// the middleware stashed in the context.
type nextSpy struct {
	called bool
	userID int64
	email  string
	idOK   bool
}

func (s *nextSpy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.userID, s.idOK = utils.GetUserIDFromContext(r.Context())
		s.email, _ = utils.GetUserEmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{
				UserID: 42,
				TokenClaims: models.TokenClaims{
					Email: "alice@example.com",
				},
			}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	spy := &nextSpy{}
	req := httptest.NewRequest(http.MethodGet, "/assets", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(spy.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, spy.called)
	assert.True(t, spy.idOK)
	assert.Equal(t, int64(42), spy.userID)
	assert.Equal(t, "alice@example.com", spy.email)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		parseErr   error
	}{
		{name: "missing header", authHeader: ""},
		{name: "no token part", authHeader: "Bearer"},
		{name: "empty token part", authHeader: "Bearer "},
		{name: "invalid token", authHeader: "Bearer bad.token", parseErr: service.ErrTokenIsExpiredOrInvalid},
		{name: "expired token", authHeader: "Bearer expired.token", parseErr: service.ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					return models.Token{}, tt.parseErr
				},
			}
			h := newHandlerWithAuth(t, auth)

			spy := &nextSpy{}
			req := httptest.NewRequest(http.MethodGet, "/assets", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			h.auth(spy.handler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, spy.called)
		})
	}
}

// TestAuthMiddleware_UniformRejectionBody verifies that every rejection path
// produces the same 401 body, leaking nothing about why the token failed.
func TestAuthMiddleware_UniformRejectionBody(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newHandlerWithAuth(t, auth)

	bodies := make(map[string]struct{})
	for _, header := range []string{"", "Bearer", "Bearer bad.token"} {
		req := httptest.NewRequest(http.MethodGet, "/assets", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()

		h.auth(http.NotFoundHandler()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies[rec.Body.String()] = struct{}{}
	}

	assert.Len(t, bodies, 1)
}

func Test_getTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "arbitrary scheme", header: "Token xyz", want: "xyz"},
		{name: "single part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
