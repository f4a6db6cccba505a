// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package main provides the units binary: an RPN calculator over quantities with
// units, plus subcommands to inspect the unit catalog and manage user defined units.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, exiting\n", err)
		os.Exit(1)
	}
}
