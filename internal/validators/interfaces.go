// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks vault requests before they reach the services.
//
// A [Validator] accepts a request model and, optionally, the names of the
// fields to check; [ValidateProjectName] and [ValidatePassphrase] are the
// single-value rules the model checks are built from.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
