// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package pincode

import (
	"fmt"
	"strings"

	"github.com/jcodagnone/pincode/utils"
)

// RowFailure describes a row whose lookup failed.
type RowFailure struct {
	// Row is the 1-based data row number, the header not counted
	Row        int
	OutletCode string
	Err        error
}

func (f RowFailure) String() string {
	return fmt.Sprintf("row %d (%s): %v", f.Row, f.OutletCode, f.Err)
}

// Report tracks what happened to every data row of a run.
type Report struct {
	// Rows is the number of data rows read, the header not counted
	Rows int

	// Processed is the number of rows that produced an output record
	Processed int

	// Malformed rows had fewer than two cells
	Malformed int

	// NotCoordinates rows had a geocode that is not a lat,lon pair
	NotCoordinates int

	// Warnings emitted for malformed rows, in row order
	Warnings []string

	// Failures holds the rows whose lookup failed
	Failures []RowFailure
}

// Failed returns the number of failed lookups.
func (r *Report) Failed() int {
	return len(r.Failures)
}

// Summary returns a one line human readable description of the run.
func (r *Report) Summary() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Processed %s %s from %s data %s",
		utils.FormatInt(int64(r.Processed)),
		utils.Plural(r.Processed, "record", "records"),
		utils.FormatInt(int64(r.Rows)),
		utils.Plural(r.Rows, "row", "rows"),
	)

	fmt.Fprintf(&sb, " - %s malformed, %s not a coordinate pair, %s failed",
		utils.FormatInt(int64(r.Malformed)),
		utils.FormatInt(int64(r.NotCoordinates)),
		utils.FormatInt(int64(r.Failed())),
	)

	return sb.String()
}
