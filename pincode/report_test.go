// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package pincode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportSummary(t *testing.T) {
	r := &Report{
		Rows:           1200,
		Processed:      1,
		Malformed:      2,
		NotCoordinates: 3,
		Failures:       []RowFailure{{Row: 7, OutletCode: "S007", Err: errors.New("boom")}},
	}

	assert.Equal(t,
		"Processed 1 record from 1,200 data rows - 2 malformed, 3 not a coordinate pair, 1 failed",
		r.Summary(),
	)
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, "row 7 (S007): boom", r.Failures[0].String())
}
