// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// OutputError names the step of the output phase that failed.
type OutputError struct {
	Step string
	Path string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Step, e.Path, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// WriteRows creates a new workbook at path with a single DefaultSheet
// worksheet holding header followed by rows, in order. The parent
// directory is created if missing. An existing file is replaced.
func WriteRows(path string, header []string, rows [][]string) (err error) {
	fail := func(step string, err error) error {
		return &OutputError{Step: step, Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fail("creating output directory", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fail("closing workbook", cerr)
		}
	}()

	// NewFile already carries DefaultSheet.
	if idx, err := f.GetSheetIndex(DefaultSheet); err != nil || idx == -1 {
		if _, err := f.NewSheet(DefaultSheet); err != nil {
			return fail("adding worksheet", err)
		}
	}

	sw, err := f.NewStreamWriter(DefaultSheet)
	if err != nil {
		return fail("adding worksheet", err)
	}

	if err := sw.SetRow("A1", asRow(header)); err != nil {
		return fail("writing header", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fail(fmt.Sprintf("writing row %d", i+1), err)
		}

		if err := sw.SetRow(cell, asRow(row)); err != nil {
			return fail(fmt.Sprintf("writing row %d", i+1), err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fail("flushing worksheet", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fail("saving workbook", err)
	}

	return nil
}

// asRow keeps every value as a string cell, so outlet codes such as "007"
// keep their leading zeros.
func asRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	return row
}

// IsOutputError reports whether err is, or wraps, an *OutputError.
func IsOutputError(err error) bool {
	var outErr *OutputError

	return errors.As(err, &outErr)
}
