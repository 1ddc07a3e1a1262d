// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

// Package pincode converts outlet geocodes read from a spreadsheet into
// postal codes and writes them to a new spreadsheet.
package pincode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jcodagnone/pincode/geocode"
	"github.com/jcodagnone/pincode/sheet"
	"github.com/schollz/progressbar/v3"
)

// Default locations, relative to the working directory.
const (
	DefaultInputPath  = "input/Input_one.xlsx"
	DefaultOutputPath = "output/pincode_output.xlsx"
)

// OutputHeader is the first row of the output sheet.
var OutputHeader = []string{"Outlet Code", "Pincode"}

// ErrRowsFailed is returned in keep-going mode when at least one lookup
// failed. The output has been written anyway.
var ErrRowsFailed = errors.New("some lookups failed")

// Options configuration for Converter.
type Options struct {
	// InputPath is the workbook to read
	InputPath string

	// SheetName is the worksheet of InputPath holding the outlets
	SheetName string

	// OutputPath is the workbook to create
	OutputPath string

	// KeepGoing records failed lookups and continues instead of aborting
	// the whole run on the first one
	KeepGoing bool

	// Quiet suppresses the per row progress lines
	Quiet bool

	// Out receives progress lines, os.Stdout if nil
	Out io.Writer

	// Logger receives warnings, log.Default() if nil
	Logger *log.Logger

	// Progress receives a progress bar when not nil
	Progress io.Writer
}

// Converter runs the read, lookup, write pipeline.
type Converter struct {
	options  Options
	geocoder geocode.Geocoder
	out      io.Writer
	logger   *log.Logger
}

// NewConverter creates a converter that resolves postal codes with geocoder.
func NewConverter(options *Options, geocoder geocode.Geocoder) *Converter {
	c := &Converter{geocoder: geocoder}
	if options != nil {
		c.options = *options
	}

	if c.options.InputPath == "" {
		c.options.InputPath = DefaultInputPath
	}

	if c.options.SheetName == "" {
		c.options.SheetName = sheet.DefaultSheet
	}

	if c.options.OutputPath == "" {
		c.options.OutputPath = DefaultOutputPath
	}

	c.out = c.options.Out
	if c.out == nil {
		c.out = os.Stdout
	}

	c.logger = c.options.Logger
	if c.logger == nil {
		c.logger = log.Default()
	}

	return c
}

func (c *Converter) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// rowf prints per row lines, unless quiet.
func (c *Converter) rowf(format string, args ...any) {
	if !c.options.Quiet {
		c.printf(format, args...)
	}
}

// Load reads the input worksheet and returns its data rows, header excluded.
func (c *Converter) Load() ([][]string, error) {
	c.printf("Opening Excel file: %s", c.options.InputPath)

	rows, err := sheet.ReadRows(c.options.InputPath, c.options.SheetName)
	if err != nil {
		return nil, fmt.Errorf("loading input: %w", err)
	}

	c.printf("Successfully accessed %s", c.options.SheetName)

	if len(rows) == 0 {
		return nil, nil
	}

	return rows[1:], nil
}

// Process looks up every valid row in order and returns one result per
// row that produced a record.
//
// Malformed rows are warned about and skipped, rows without a coordinate
// pair are skipped silently. A failed lookup aborts the run, unless the
// converter is in keep-going mode, where it is recorded in the report.
func (c *Converter) Process(ctx context.Context, rows [][]string) ([]LookupResult, *Report, error) {
	report := &Report{Rows: len(rows)}
	c.printf("Found %d rows to process", len(rows))

	bar := c.newProgressBar(len(rows))

	var results []LookupResult

	for i, row := range rows {
		n := i + 1

		if bar != nil {
			_ = bar.Add(1)
		}

		in, q, err := ParseRow(row)

		switch {
		case errors.Is(err, ErrMalformedRow):
			warning := fmt.Sprintf("Row %d has insufficient columns (expected 2, got %d)", n, len(row))
			report.Malformed++
			report.Warnings = append(report.Warnings, warning)
			c.logger.Printf("ERROR: %s", warning)

			continue
		case errors.Is(err, ErrNotACoordinatePair):
			c.rowf("Processing row %d: Outlet Code = %s, Geocode = %s", n, in.OutletCode, in.Geocode)
			report.NotCoordinates++

			continue
		case err != nil:
			return nil, report, fmt.Errorf("row %d: %w", n, err)
		}

		c.rowf("Processing row %d: Outlet Code = %s, Geocode = %s", n, in.OutletCode, in.Geocode)
		c.rowf("Fetching pincode for %s...", in.OutletCode)

		pin, err := c.geocoder.ReversePostcode(ctx, q.Lat, q.Lon)
		if err != nil {
			if !c.options.KeepGoing {
				return nil, report, fmt.Errorf("row %d (%s): %w", n, in.OutletCode, err)
			}

			failure := RowFailure{Row: n, OutletCode: in.OutletCode, Err: err}
			report.Failures = append(report.Failures, failure)
			c.logger.Printf("ERROR: %s", failure)

			continue
		}

		results = append(results, LookupResult{OutletCode: in.OutletCode, Pincode: pin})
		report.Processed++
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return results, report, nil
}

func (c *Converter) newProgressBar(n int) *progressbar.ProgressBar {
	if c.options.Progress == nil || n == 0 {
		return nil
	}

	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription("Fetching pincodes"),
		progressbar.OptionSetWriter(c.options.Progress),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// Write creates the output workbook holding results, in order.
func (c *Converter) Write(results []LookupResult) error {
	c.printf("Processed %d records, writing to output file", len(results))
	c.printf("Creating output workbook at %s", c.options.OutputPath)

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.OutletCode, r.Pincode}
	}

	if err := sheet.WriteRows(c.options.OutputPath, OutputHeader, rows); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	c.printf("Output written to %s", c.options.OutputPath)

	return nil
}

// Run executes the whole pipeline. Any fatal error stops it right away and
// nothing is written. The report reflects the rows seen so far.
func (c *Converter) Run(ctx context.Context) (*Report, error) {
	rows, err := c.Load()
	if err != nil {
		return &Report{}, err
	}

	results, report, err := c.Process(ctx, rows)
	if err != nil {
		return report, err
	}

	if err := c.Write(results); err != nil {
		return report, err
	}

	c.printf("%s", report.Summary())

	if report.Failed() > 0 {
		return report, fmt.Errorf("%w: %d of %d data rows", ErrRowsFailed, report.Failed(), report.Rows)
	}

	return report, nil
}
