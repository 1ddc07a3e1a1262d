// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package pincode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedRow a data row with fewer than two cells.
	ErrMalformedRow = errors.New("insufficient columns")

	// ErrNotACoordinatePair the geocode cell does not split into exactly two
	// comma separated parts. Such rows are skipped without a warning.
	ErrNotACoordinatePair = errors.New("not a coordinate pair")
)

// InputRow is a data row of the input sheet.
type InputRow struct {
	OutletCode string
	Geocode    string
}

// GeoQuery holds the trimmed coordinates of a row. They are never parsed as
// numbers: whatever the sheet holds is what the service receives.
type GeoQuery struct {
	Lat string
	Lon string
}

// LookupResult is a row of the output sheet.
type LookupResult struct {
	OutletCode string
	Pincode    string
}

// ParseRow validates a row and extracts its coordinates.
//
// ErrMalformedRow is returned for rows with fewer than two cells. When the
// geocode is not a "<lat>,<lon>" pair the InputRow is still filled in and
// ErrNotACoordinatePair is returned.
func ParseRow(row []string) (InputRow, GeoQuery, error) {
	if len(row) < 2 {
		return InputRow{}, GeoQuery{}, fmt.Errorf("%w (expected 2, got %d)", ErrMalformedRow, len(row))
	}

	in := InputRow{OutletCode: row[0], Geocode: row[1]}

	parts := strings.Split(in.Geocode, ",")
	if len(parts) != 2 {
		return in, GeoQuery{}, ErrNotACoordinatePair
	}

	return in, GeoQuery{
		Lat: strings.TrimSpace(parts[0]),
		Lon: strings.TrimSpace(parts[1]),
	}, nil
}
