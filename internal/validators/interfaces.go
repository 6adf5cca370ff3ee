// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds boundary-layer validation of request payloads:
// registration and login credentials, and asset create/patch input.
//
// Services receive a [Validator] by injection and call Validate before
// touching storage, so transport handlers stay thin and the rules remain
// testable in isolation. The optional field names restrict a call to a
// subset of the value's fields, which keeps partial-update (PATCH)
// validation on the same code path as full validation.
package validators

import "context"

// Validator validates an arbitrary input value. Implementations pick the
// rules based on the value's concrete type and may scope the check to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
