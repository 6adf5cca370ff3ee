// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while extracting the bearer token from the
// "Authorization" header. They never reach the client as-is: the auth
// middleware collapses every rejection into a uniform 401 response.
var (
	// ErrEmptyAuthorizationHeader: the request carries no "Authorization"
	// header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: the header is present but has no
	// space-separated token part after the scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix is present but the token value is an
	// empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
