// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

// Package sheet reads and writes xlsx workbooks.
package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet read from input files and written to output files.
const DefaultSheet = "Sheet1"

// ErrNotFound is returned when the input workbook or worksheet does not exist.
var ErrNotFound = errors.New("not found")

// ReadRows returns every row of the named worksheet as strings, header
// included. Trailing empty cells are not part of a row.
func ReadRows(path, sheetName string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input file %s: %w", path, ErrNotFound)
		}

		return nil, fmt.Errorf("checking input file: %w", err)
	}

	f, err := excelize.OpenFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx == -1 {
		return nil, fmt.Errorf("worksheet %q in %s: %w", sheetName, path, ErrNotFound)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet %q: %w", sheetName, err)
	}

	return rows, nil
}
