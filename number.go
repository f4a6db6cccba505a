// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// a number followed by an optional unit symbol, e.g. "7m", "-3.5 km", "1_000 m/s²"
var numberWithUnit = regexp.MustCompile(`^\s*([+-]?(?:[0-9][0-9_]*(?:\.[0-9_]*)?|\.[0-9][0-9_]*)(?:[eE][+-]?[0-9]+)?)\s*(.*?)\s*$`)

func parseNumber(input string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(input, "_", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// splitQuantity separates text into its number and unit symbol.
func splitQuantity(text string) (float64, string, bool) {
	match := numberWithUnit.FindStringSubmatch(text)
	if match == nil {
		return 0, "", false
	}

	number, ok := parseNumber(match[1])
	if !ok {
		return 0, "", false
	}

	return number, match[2], true
}

// displayTolerance is for numbers already scaled to the unit they are shown in.
var displayTolerance = Tolerance{Rel: 1e-9, Abs: 1e-9}

// isWhole reports whether f is within tolerance of an integer.
func isWhole(f float64) bool {
	return displayTolerance.Close(f, math.Round(f))
}

// formatShortest renders f with the fewest digits that round trip, switching to an
// exponent only for very large or very small magnitudes.
func formatShortest(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatDisplay renders f without a decimal point when whole, otherwise with one decimal.
func formatDisplay(f float64) string {
	if isWhole(f) {
		f = math.Round(f)
		if f == 0 {
			f = 0 // drop the sign of -0
		}
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// digitCounts returns the number of integer and fractional digits of |f| written out in
// its shortest decimal form.
func digitCounts(f float64) (int, int) {
	s := strconv.FormatFloat(math.Abs(f), 'f', -1, 64)
	integer, fraction, _ := strings.Cut(s, ".")
	if integer == "0" && fraction != "" {
		integer = ""
	}
	return len(integer), len(fraction)
}
