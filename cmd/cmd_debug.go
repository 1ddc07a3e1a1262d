// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/jcodagnone/pincode/pincode"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dev tools",
}

var debugLookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Looks up the postal code of geocodes read from stdin",
	Long: `Reads one "lat,lon" geocode per line, and prints in stdout the geocode
followed by its postal code, exactly as a row of the input sheet would be
resolved.

$ echo 12.9716,77.5946 | pincode debug lookup
12.9716,77.5946		560001
	`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(os.Stderr, "Enter geocodes to look up, one per line…")
		}

		g := newGeocoder(options)
		out := cmd.OutOrStdout()

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := scanner.Text()

			_, q, err := pincode.ParseRow([]string{"", line})
			if errors.Is(err, pincode.ErrNotACoordinatePair) {
				fmt.Fprintf(out, "%s\t%q\n", line, err)

				continue
			}

			pin, err := g.ReversePostcode(cmd.Context(), q.Lat, q.Lon)
			if err != nil {
				fmt.Fprintf(out, "%s\t%q\n", line, err)

				continue
			}

			fmt.Fprintf(out, "%s\t\t%s\n", line, pin)
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugLookupCmd)
}
