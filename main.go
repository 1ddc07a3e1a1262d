// Copyright 2025 The Pincode Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/jcodagnone/pincode/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
