// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

// Package validation wraps go-playground/validator v10 with a singleton
// instance and readable error messages.
//
//	type Preferences struct {
//	    PriceMin float64 `validate:"gte=0,lte=1"`
//	}
//
//	if err := validation.Validate(&prefs); err != nil {
//	    var se *validation.StructError
//	    if errors.As(err, &se) { ... }
//	}
//
// Besides the built-in tags, "notblank" rejects whitespace-only strings.
package validation
