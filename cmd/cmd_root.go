// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jcodagnone/pincode/geocode"
	"github.com/jcodagnone/pincode/pincode"
	"github.com/jcodagnone/pincode/sheet"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

// rootOptions holds every flag of the root command.
type rootOptions struct {
	pincode.Options

	Endpoint            string
	EnableHTTPTrace     bool
	EnableHTTPBodyTrace bool
}

var options = &rootOptions{}

var rootCmd = &cobra.Command{
	Use:   "pincode",
	Short: "Converts outlet geocodes into postal codes",
	Long: `
pincode reads outlet codes and "lat,lon" geocodes from the Sheet1 worksheet of
input/Input_one.xlsx, looks up the postal code of every geocode with the
OpenStreetMap Nominatim reverse geocoding service, and writes the outlet codes
and postal codes to output/pincode_output.xlsx.

Rows are looked up one at a time, in order. The first failed lookup aborts the
run unless --keep-going is given.
`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runConvert(cmd, options)
	},
}

var Version = "dev"

func userAgent() string {
	return fmt.Sprintf("pincode/%s (+https://github.com/jcodagnone/pincode)", Version)
}

func newGeocoder(opts *rootOptions) *geocode.Nominatim {
	var trace io.Writer
	if opts.EnableHTTPTrace || opts.EnableHTTPBodyTrace {
		trace = os.Stderr
	}

	return geocode.NewNominatim(&geocode.NominatimOptions{
		Endpoint:  opts.Endpoint,
		UserAgent: userAgent(),
		Trace:     trace,
		TraceBody: opts.EnableHTTPBodyTrace,
	})
}

func runConvert(cmd *cobra.Command, opts *rootOptions) error {
	convertOptions := opts.Options
	convertOptions.Out = cmd.OutOrStdout()

	if convertOptions.Quiet && isatty.IsTerminal(os.Stderr.Fd()) {
		convertOptions.Progress = os.Stderr
	}

	c := pincode.NewConverter(&convertOptions, newGeocoder(opts))

	report, err := c.Run(cmd.Context())
	if report != nil {
		for _, f := range report.Failures {
			log.Printf("Failed lookup: %s", f)
		}
	}

	return err
}

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		log.Printf("ERROR: %v", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(
		&options.InputPath,
		"input",
		pincode.DefaultInputPath,
		"Workbook holding the outlet codes and geocodes",
	)
	flags.StringVar(
		&options.SheetName,
		"sheet",
		sheet.DefaultSheet,
		"Worksheet of the input workbook to read",
	)
	flags.StringVar(
		&options.OutputPath,
		"output",
		pincode.DefaultOutputPath,
		"Workbook to create with the outlet codes and postal codes",
	)
	rootCmd.PersistentFlags().StringVar(
		&options.Endpoint,
		"endpoint",
		geocode.DefaultEndpoint,
		"Nominatim reverse geocoding endpoint",
	)
	flags.BoolVar(
		&options.KeepGoing,
		"keep-going",
		false,
		"Record failed lookups and continue; exits non-zero after writing the output if any failed",
	)
	flags.BoolVarP(
		&options.Quiet,
		"quiet",
		"q",
		false,
		"Do not print a line per row; shows a progress bar on terminals instead",
	)
	rootCmd.PersistentFlags().BoolVar(
		&options.EnableHTTPTrace,
		"trace-http",
		false,
		"Display HTTP requests-responses",
	)
	rootCmd.PersistentFlags().BoolVar(
		&options.EnableHTTPBodyTrace,
		"trace-http-body",
		false,
		"Display HTTP requests-responses bodies",
	)
}
