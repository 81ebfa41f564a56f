// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming auth requests against the `validate`
// struct tags declared on the request models.
package validators

import "context"

// Validator validates a request value.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
