// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks records submitted to the blog API before the
// service layer hands them to the store.
//
// A [Validator] validates one value, optionally restricted to named fields:
//
//	v := validators.NewRecordValidator()
//	err := v.Validate(ctx, blog, validators.FieldName)
//
// Callers match the returned sentinel errors with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
