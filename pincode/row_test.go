// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package pincode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name     string
		row      []string
		in       InputRow
		query    GeoQuery
		expected error
	}{
		{
			name:  "pair",
			row:   []string{"S001", "12.9,77.6"},
			in:    InputRow{"S001", "12.9,77.6"},
			query: GeoQuery{"12.9", "77.6"},
		},
		{
			name:  "spaces are trimmed",
			row:   []string{"S003", " 10.0 , 20.0 "},
			in:    InputRow{"S003", " 10.0 , 20.0 "},
			query: GeoQuery{"10.0", "20.0"},
		},
		{
			name:  "extra cells are ignored",
			row:   []string{"S010", "1,2", "comment"},
			in:    InputRow{"S010", "1,2"},
			query: GeoQuery{"1", "2"},
		},
		{
			name:  "non numeric passes through",
			row:   []string{"S011", "north,east"},
			in:    InputRow{"S011", "north,east"},
			query: GeoQuery{"north", "east"},
		},
		{
			name:  "empty parts pass through",
			row:   []string{"S012", ","},
			in:    InputRow{"S012", ","},
			query: GeoQuery{"", ""},
		},
		{
			name:     "no comma",
			row:      []string{"S002", "bad"},
			in:       InputRow{"S002", "bad"},
			expected: ErrNotACoordinatePair,
		},
		{
			name:     "three parts",
			row:      []string{"S013", "1,2,3"},
			in:       InputRow{"S013", "1,2,3"},
			expected: ErrNotACoordinatePair,
		},
		{
			name:     "empty geocode",
			row:      []string{"S014", ""},
			in:       InputRow{"S014", ""},
			expected: ErrNotACoordinatePair,
		},
		{
			name:     "single cell",
			row:      []string{"S004"},
			expected: ErrMalformedRow,
		},
		{
			name:     "empty row",
			row:      nil,
			expected: ErrMalformedRow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, q, err := ParseRow(tc.row)
			if tc.expected != nil {
				assert.ErrorIs(t, err, tc.expected)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tc.in, in)
			assert.Equal(t, tc.query, q)
		})
	}
}

func TestParseRowMalformedMessage(t *testing.T) {
	_, _, err := ParseRow([]string{"S004"})
	assert.EqualError(t, err, "insufficient columns (expected 2, got 1)")
}
