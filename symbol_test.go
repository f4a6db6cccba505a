// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		input    string
		expected map[string]int
	}{
		{"m", map[string]int{"m": 1}},
		{"m/s", map[string]int{"m": 1, "s": -1}},
		{"m/s²", map[string]int{"m": 1, "s": -2}},
		{"m/s/s", map[string]int{"m": 1, "s": -2}},
		{"1/s²", map[string]int{"1": 1, "s": -2}},
		{"kg*m/s^2", map[string]int{"kg": 1, "m": 1, "s": -2}},
		{"kg·m²", map[string]int{"kg": 1, "m": 2}},
		{"m⁻¹", map[string]int{"m": -1}},
		{"s^-1", map[string]int{"s": -1}},
		{"/s", map[string]int{"s": -1}},
		{"m * m", map[string]int{"m": 2}},
		{"m/m", map[string]int{"m": 0}},
		{"", map[string]int{}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			powers, err := ParseSymbol(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, powers.Map())
		})
	}
}

func TestParseSymbolErrors(t *testing.T) {
	for _, input := range []string{"m/", "m//s", "m*", "²", "m^", "m^x", "*/s"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseSymbol(input)
			assert.True(t, ParseError.Has(err), "%q: %v", input, err)
		})
	}
}

func TestStrExponent(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{1, ""},
		{2, "²"},
		{3, "³"},
		{0, "⁰"},
		{-1, "⁻¹"},
		{-12, "⁻¹²"},
		{10, "¹⁰"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, StrExponent(test.input), "StrExponent(%d)", test.input)
	}
}

func TestJoinSymbols(t *testing.T) {
	tests := []struct {
		left, right string
		op          rune
		expected    string
	}{
		{"m", "s", '/', "m/s"},
		{"m/s", "s", '/', "m/s²"},
		{"m", "m", '*', "m²"},
		{"1", "s", '/', "1/s"},
		{"1", "m", '*', "m"},
		{"m/s", "s", '*', "m"},
		{"m", "m", '/', "1"},
		{"kg", "m/s²", '*', "kg*m/s²"},
		{"1/s", "m", '*', "m/s"},
		{"km", "h", '/', "km/h"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, JoinSymbols(test.left, test.right, test.op))
		})
	}
}

// Symbols produced by joining always parse back to the exponents they were built from.
func TestSymbolRoundTrip(t *testing.T) {
	tests := []Powers{
		{{"m", 1}, {"s", -1}},
		{{"kg", 1}, {"m", 2}, {"s", -3}, {"A", -2}},
		{{"s", -1}},
		{{"s", -2}, {"m", 3}},
		{{"B", 8}},
	}

	for _, powers := range tests {
		symbol := FormatPowers(powers)
		t.Run(symbol, func(t *testing.T) {
			parsed, err := ParseSymbol(symbol)
			require.NoError(t, err)
			assert.Equal(t, powers.Map(), parsed.compact().Map())
		})
	}
}
