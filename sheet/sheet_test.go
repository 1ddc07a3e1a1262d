// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows into a new workbook under sheetName.
func writeWorkbook(t *testing.T, path, sheetName string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheetName != DefaultSheet {
		require.NoError(t, f.SetSheetName(DefaultSheet, sheetName))
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)

		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}

	require.NoError(t, f.SaveAs(path))
}

func TestReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xlsx")
	writeWorkbook(t, path, DefaultSheet, [][]interface{}{
		{"Outlet Code", "Geocode"},
		{"S001", "12.9,77.6"},
		{"S002"},
		{1234, "10.0, 20.0"},
	})

	rows, err := ReadRows(path, DefaultSheet)
	require.NoError(t, err)

	expected := [][]string{
		{"Outlet Code", "Geocode"},
		{"S001", "12.9,77.6"},
		{"S002"},
		{"1234", "10.0, 20.0"},
	}
	if diff := cmp.Diff(expected, rows); diff != "" {
		t.Errorf("ReadRows() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "input", "Input_one.xlsx"), DefaultSheet)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Input_one.xlsx")
}

func TestReadRowsMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xlsx")
	writeWorkbook(t, path, "Outlets", [][]interface{}{{"Outlet Code", "Geocode"}})

	_, err := ReadRows(path, DefaultSheet)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"Sheet1"`)
}

func TestReadRowsNotAWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("outlet,geocode\n"), 0o600))

	_, err := ReadRows(path, DefaultSheet)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestWriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "nested", "pincode_output.xlsx")

	header := []string{"Outlet Code", "Pincode"}
	rows := [][]string{
		{"S001", "560001"},
		{"007", "Not Found"},
	}

	require.NoError(t, WriteRows(path, header, rows))

	got, err := ReadRows(path, DefaultSheet)
	require.NoError(t, err)

	expected := [][]string{
		{"Outlet Code", "Pincode"},
		{"S001", "560001"},
		{"007", "Not Found"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("WriteRows() round trip mismatch (-want +got):\n%s", diff)
	}

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{DefaultSheet}, f.GetSheetList())
}

func TestWriteRowsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, WriteRows(path, []string{"Outlet Code", "Pincode"}, nil))

	got, err := ReadRows(path, DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Outlet Code", "Pincode"}}, got)
}

func TestWriteRowsReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	require.NoError(t, WriteRows(path, []string{"h"}, [][]string{{"a"}, {"b"}}))
	require.NoError(t, WriteRows(path, []string{"h"}, [][]string{{"c"}}))

	got, err := ReadRows(path, DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"h"}, {"c"}}, got)
}

func TestWriteRowsDirectoryFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "output")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := WriteRows(filepath.Join(blocker, "pincode_output.xlsx"), []string{"h"}, nil)
	require.Error(t, err)

	var outErr *OutputError
	require.ErrorAs(t, err, &outErr)
	assert.Equal(t, "creating output directory", outErr.Step)
	assert.True(t, IsOutputError(err))
}
