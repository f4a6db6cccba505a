// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/units"
	. "github.com/mikecarlton/units/quantities"
)

func stackOf(quantities ...units.Quantity) *Stack {
	s := newStack()
	for _, q := range quantities {
		s.push(entry{quantity: q})
	}
	return s
}

func TestStackOperations(t *testing.T) {
	s := stackOf(Meters.Of(1), Meters.Of(2))

	require.NoError(t, s.exchange())
	top, err := s.peek()
	require.NoError(t, err)
	assert.Equal(t, 1.0, top.quantity.Value())

	require.NoError(t, s.dup())
	assert.Equal(t, 3, s.size())

	require.NoError(t, s.reduce("+"))
	assert.Equal(t, 1, s.size())
	top, _ = s.peek()
	assert.True(t, top.quantity.Equal(Meters.Of(4)))

	_, err = s.pop()
	require.NoError(t, err)
	_, err = s.pop()
	assert.True(t, StackError.Has(err))
	assert.True(t, StackError.Has(s.dup()))
	assert.True(t, StackError.Has(s.exchange()))
	assert.True(t, StackError.Has(STACKOP["p"](s)))
}

func TestStackReduceStopsOnError(t *testing.T) {
	s := stackOf(Meters.Of(1), Seconds.Of(2), Meters.Of(3))
	err := s.reduce("+")
	assert.True(t, units.IncompatibleDimensionError.Has(err))
}

func TestStackApply(t *testing.T) {
	s := stackOf(One.Of(3))
	require.NoError(t, s.apply(Feet))
	top, _ := s.peek()
	assert.True(t, top.pinned)
	assert.Same(t, Feet, top.quantity.Unit())
	assert.Equal(t, 3.0, top.quantity.Value())

	require.NoError(t, s.apply(Inches))
	top, _ = s.peek()
	assert.InDelta(t, 36.0, top.quantity.Value(), 1e-9)

	assert.True(t, units.IncompatibleDimensionError.Has(s.apply(Seconds)))
	assert.True(t, StackError.Has(newStack().apply(Meters)))
}

func TestStackUnaryKeepsPinned(t *testing.T) {
	s := newStack()
	s.push(entry{quantity: Meters.Of(5000), pinned: true})

	require.NoError(t, s.unaryOp("chs"))
	top, _ := s.peek()
	assert.True(t, top.pinned)

	require.NoError(t, s.unaryOp("r"))
	top, _ = s.peek()
	assert.False(t, top.pinned)
}

func TestPower(t *testing.T) {
	q, err := power(Meters.Of(3), One.Of(-1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, q.Value(), 1e-12)
	assert.Equal(t, "1/m", q.Unit().Symbol())

	_, err = power(Meters.Of(3), Meters.Of(2))
	assert.True(t, StackError.Has(err))

	for _, n := range []float64{1e300, -65, 65, 2.5} {
		_, err = power(Meters.Of(2), One.Of(n))
		assert.True(t, StackError.Has(err), "exponent %v", n)
	}

	q, err = power(Meters.Of(2), One.Of(-64))
	require.NoError(t, err)
	assert.Equal(t, "1/m⁶⁴", q.Unit().Symbol())
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		display display
		entry   entry
		number  string
		symbol  string
	}{
		{"suitable", display{precision: 4}, entry{quantity: Meters.Of(1289)}, "1.3", "km"},
		{"pinned", display{precision: 4}, entry{quantity: Meters.Of(1289), pinned: true}, "1289", "m"},
		{"precision", display{precision: 2}, entry{quantity: Meters.Of(1.23456), pinned: true}, "1.23", "m"},
		{"dimensionless", display{precision: 4}, entry{quantity: One.Of(2.5)}, "2.5", ""},
		{"negative zero", display{precision: 4}, entry{quantity: One.Of(-0.00001)}, "0", ""},
		{"debug", display{debug: true}, entry{quantity: Meters.Of(1289)}, "1289", "m"},
		{"grouped", display{group: true, precision: 4}, entry{quantity: One.Of(-1234567.25)}, "-1,234,567.25", ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			number, symbol := test.display.render(test.entry)
			assert.Equal(t, test.number, number)
			assert.Equal(t, test.symbol, symbol)
		})
	}
}

func TestSplitNumber(t *testing.T) {
	tests := []struct {
		input    string
		integer  string
		fraction string
	}{
		{"100", "100", ""},
		{"100.5", "100", ".5"},
		{"-0.25", "-0", ".25"},
		{"1e+21", "1e+21", ""},
	}

	for _, test := range tests {
		integer, fraction := splitNumber(test.input)
		if integer != test.integer || fraction != test.fraction {
			t.Errorf("splitNumber(%q) = %q, %q; want %q, %q", test.input, integer, fraction, test.integer, test.fraction)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	tests := map[string]string{
		"1":            "1",
		"1000":         "1,000",
		"-1234567.125": "-1,234,567.125",
		"1e+21":        "1e+21",
	}

	for input, expected := range tests {
		if got := groupDigits(input); got != expected {
			t.Errorf("groupDigits(%q) = %q; want %q", input, got, expected)
		}
	}
}

func TestPrint(t *testing.T) {
	s := stackOf(One.Of(10), Meters.Of(2.5), One.Of(0.125))

	var buf bytes.Buffer
	s.print(&buf, display{precision: 4})
	assert.Equal(t, " 0.125\n 2.5   m\n10\n", buf.String())

	assert.Equal(t, "10 2.5 m 0.125", s.oneline(display{precision: 4}))
}
