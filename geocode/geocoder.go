// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

// Package geocode resolves coordinates into postal codes.
package geocode

import "context"

// NotFound is recorded instead of a postal code when the service answers
// without one. It is a value, not an error.
const NotFound = "Not Found"

// Geocoder interface for reverse geocoding providers.
type Geocoder interface {
	// ReversePostcode returns the postal code for the lat/lon pair, or
	// NotFound if the provider has none. Coordinates are passed through
	// as given, without numeric validation.
	ReversePostcode(ctx context.Context, lat, lon string) (string, error)
}
