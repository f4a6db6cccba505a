// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityCompare(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		a, b     Quantity
		expected int
	}{
		{"equal units", f.m.Of(3), f.m.Of(3), 0},
		{"converted", f.km.Of(1), f.m.Of(1000), 0},
		{"within tolerance", f.m.Of(0.1 + 0.2), f.m.Of(0.3), 0},
		{"less", f.min.Of(1), f.s.Of(61), -1},
		{"greater", f.h.Of(1), f.min.Of(59), 1},
		{"zero right", f.m.Of(-2), Zero, -1},
		{"zero left", Zero, f.m.Of(2), -1},
		{"zero both", Zero, Zero, 0},
		{"zero equal", f.m.Of(0), Zero, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := test.a.Compare(test.b)
			require.NoError(t, err)
			assert.Equal(t, test.expected, c)

			assert.Equal(t, c == 0, test.a.Equal(test.b))
			assert.Equal(t, c != 0, test.a.NotEqual(test.b))
			assert.Equal(t, c < 0, test.a.Less(test.b))
			assert.Equal(t, c <= 0, test.a.LessEqual(test.b))
			assert.Equal(t, c > 0, test.a.Greater(test.b))
			assert.Equal(t, c >= 0, test.a.GreaterEqual(test.b))
		})
	}

	_, err := f.m.Of(1).Compare(f.s.Of(1))
	assert.True(t, IncompatibleDimensionError.Has(err))
}

func TestQuantityIncompatible(t *testing.T) {
	f := newFixture(t)
	a, b := f.m.Of(1), f.s.Of(1)

	_, err := a.Add(b)
	assert.True(t, IncompatibleDimensionError.Has(err))
	_, err = a.Sub(b)
	assert.True(t, IncompatibleDimensionError.Has(err))
	_, err = a.To(f.s)
	assert.True(t, IncompatibleDimensionError.Has(err))

	assert.False(t, a.Equal(b))
	assert.True(t, a.NotEqual(b))
	assert.False(t, a.Less(b))
	assert.False(t, a.LessEqual(b))
	assert.False(t, a.Greater(b))
	assert.False(t, a.GreaterEqual(b))
	assert.False(t, a.IsCompatibleWith(b))
	assert.True(t, a.IsCompatibleWith(Zero))
}

func TestQuantityArithmetic(t *testing.T) {
	f := newFixture(t)

	sum, err := f.km.Of(1).Add(f.m.Of(500))
	require.NoError(t, err)
	assert.Same(t, f.km, sum.Unit())
	assert.InDelta(t, 1.5, sum.Value(), 1e-12)

	diff, err := f.h.Of(1).Sub(f.min.Of(15))
	require.NoError(t, err)
	assert.Same(t, f.h, diff.Unit())
	assert.InDelta(t, 0.75, diff.Value(), 1e-12)

	area := f.m.Of(10).Mul(f.m.Of(5))
	assert.Equal(t, "m²", area.Unit().Symbol())
	assert.Equal(t, 50.0, area.Value())

	speed := f.m.Of(10).Div(f.s.Of(5))
	assert.Same(t, f.mps, speed.Unit())
	assert.Equal(t, 2.0, speed.Value())

	freq := f.reg.One().Of(10).Div(f.s.Of(2))
	assert.Same(t, f.hz, freq.Unit())
	assert.Equal(t, 5.0, freq.Value())

	assert.Equal(t, -3.0, f.m.Of(3).Neg().Value())
	assert.Equal(t, 3.0, f.m.Of(-3).Abs().Value())
	assert.Equal(t, -1, f.m.Of(-3).Sign())
	assert.Equal(t, 0, f.m.Of(0).Sign())
	assert.Equal(t, 1, f.m.Of(0.1).Sign())
	assert.Equal(t, 6.0, f.m.Of(3).Scale(2).Value())
	assert.Equal(t, 1.5, f.m.Of(3).DivScalar(2).Value())

	inv := f.s.Of(4).Inv()
	assert.Same(t, f.hz, inv.Unit())
	assert.Equal(t, 0.25, inv.Value())

	cube := f.m.Of(2).Pow(3)
	assert.Equal(t, "m³", cube.Unit().Symbol())
	assert.Equal(t, 8.0, cube.Value())
}

func TestQuantityZero(t *testing.T) {
	f := newFixture(t)
	q := f.km.Of(3)

	for _, r := range []func() (Quantity, error){
		func() (Quantity, error) { return q.Add(Zero) },
		func() (Quantity, error) { return Zero.Add(q) },
		func() (Quantity, error) { return q.Sub(Zero) },
	} {
		result, err := r()
		require.NoError(t, err)
		assert.Equal(t, q, result)
	}

	neg, err := Zero.Sub(q)
	require.NoError(t, err)
	assert.Equal(t, q.Neg(), neg)

	assert.True(t, Zero.IsZero())
	assert.False(t, f.m.Of(0).IsZero())
	assert.Nil(t, Zero.Unit())
	assert.Nil(t, Zero.Dimension())

	n, err := Zero.ToNumber(f.km)
	require.NoError(t, err)
	assert.Equal(t, 0.0, n)

	product := Zero.Mul(f.m.Of(3))
	assert.Same(t, f.m, product.Unit())
	assert.Equal(t, 0.0, product.Value())

	assert.True(t, Zero.Mul(Zero).IsZero())
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "0", Zero.Debug())
}

func TestQuantityUnitless(t *testing.T) {
	f := newFixture(t)
	km := f.km.Of(3)

	one := Zero.Pow(0)
	assert.Equal(t, 1.0, one.Value())
	assert.False(t, one.IsZero())
	assert.False(t, one.Equal(Zero))
	assert.True(t, one.Equal(f.reg.One().Of(1)))

	_, err := km.Add(one)
	assert.True(t, IncompatibleDimensionError.Has(err))
	_, err = one.Sub(km)
	assert.True(t, IncompatibleDimensionError.Has(err))
	_, err = one.Compare(km)
	assert.True(t, IncompatibleDimensionError.Has(err))
	assert.False(t, km.IsCompatibleWith(one))

	sum, err := one.Add(f.reg.One().Of(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum.Value())

	inf := Zero.Inv()
	assert.True(t, math.IsInf(inf.Value(), 1))
	assert.False(t, inf.IsZero())
	assert.False(t, inf.Equal(Zero))
	assert.True(t, inf.Greater(Zero))

	n, err := one.ToNumber(f.reg.One())
	require.NoError(t, err)
	assert.Equal(t, 1.0, n)
	_, err = one.ToNumber(f.m)
	assert.True(t, IncompatibleDimensionError.Has(err))

	assert.Equal(t, 6.0, one.Scale(2).Mul(f.reg.One().Of(3)).Value())
	assert.Equal(t, 4.0, one.Mul(one).Scale(4).Value())
}

func TestQuantitySmallMagnitudes(t *testing.T) {
	f := newFixture(t)
	fm := Femto.MustApply(f.m)

	assert.False(t, f.m.Of(1e-13).Equal(f.m.Of(9e-13)))
	assert.True(t, f.m.Of(1e-13).Less(f.m.Of(9e-13)))
	assert.False(t, fm.Of(1).Equal(Zero))
	assert.True(t, fm.Of(1).Greater(Zero))
	assert.True(t, fm.Of(1000).Equal(Pico.MustApply(f.m).Of(1)))
}

func TestQuantityToNumber(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		value    Quantity
		unit     *Unit
		expected float64
	}{
		{f.m.Of(7000), f.km, 7},
		{f.km.Of(3.5), f.m, 3500},
		{f.km.Div(f.h).Of(90), f.mps, 25},
		{f.mps.Of(1), f.m.Div(f.min), 60},
		{f.h.Of(1.5), f.min, 90},
		{f.hz.Of(1), f.reg.One().Div(f.min), 60},
	}

	for _, test := range tests {
		t.Run(test.value.Debug(), func(t *testing.T) {
			n, err := test.value.ToNumber(test.unit)
			require.NoError(t, err)
			assert.InDelta(t, test.expected, n, 1e-9*test.expected)

			// and back again
			back, err := test.unit.Of(n).ToNumber(test.value.Unit())
			require.NoError(t, err)
			assert.InDelta(t, test.value.Value(), back, 1e-9*test.value.Value())
		})
	}
}

func TestParseQuantity(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		input  string
		value  float64
		symbol string
	}{
		{"7m", 7, "m"},
		{"7 m", 7, "m"},
		{"-2.5 km", -2.5, "km"},
		{"5m/s", 5, "m/s"},
		{"4m/s/s", 4, "m/s²"},
		{"3", 3, "1"},
		{"1_500 ms", 1500, "ms"},
		{"1e3 g", 1000, "g"},
		{"5/s", 5, "Hz"},
		{"2 kHz", 2, "kHz"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			q, err := f.reg.ParseQuantity(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.value, q.Value())
			assert.Equal(t, test.symbol, q.Unit().Symbol())
		})
	}

	for _, input := range []string{"m", "", "km 7", "7 m/", "7 parsecs"} {
		t.Run(input, func(t *testing.T) {
			_, err := f.reg.ParseQuantity(input)
			assert.True(t, ParseError.Has(err), "%q: %v", input, err)
		})
	}

	_, err := f.reg.ParseQuantityAs("7m", f.mps.Dimension())
	assert.True(t, ParseError.Has(err))
	assert.True(t, IncompatibleDimensionError.Has(err))
	assert.Contains(t, err.Error(), `"7m"`)
}

func TestQuantityFormat(t *testing.T) {
	f := newFixture(t)
	q := f.m.Of(7000)

	assert.Equal(t, "7 km", fmt.Sprintf("%v", q))
	assert.Equal(t, "7 km", fmt.Sprintf("%s", q))
	assert.Equal(t, "7000m", fmt.Sprintf("%#v", q))
	assert.Equal(t, "7000.00 m", fmt.Sprintf("%.2f", q))
	assert.Equal(t, "3", fmt.Sprintf("%.0f", f.reg.One().Of(3)))
	assert.Equal(t, "5Hz", f.hz.Of(5).Debug())
	assert.Equal(t, "NaN m", f.m.Of(math.NaN()).String())
}
