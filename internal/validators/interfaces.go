// SPDX-License-Identifier: Apache-2.0

// Package validators provides the input-validation and formatting rules for
// the application: member contact/address checks, phone formatting, and the
// product billing rules the payment provider enforces.
//
// The plain functions (FormatPhone, ValidateAddress, MinorUnits, ...) are
// pure and free of I/O. The Validator implementations bundle them per entity
// so services can inject validation as a single dependency.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
