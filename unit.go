// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is a scale for one Dimension. Its multiplier is its size relative to the
// dimension's base unit, which has multiplier 1.
//
// Primitive units are declared with Registry.MakeUnit; derived units come from Mul, Div
// and Pow and carry a symbol such as "m/s²". Units are immutable.
type Unit struct {
	reg        *Registry
	dim        *Dimension
	symbol     string
	multiplier float64
	derived    bool
	prefix     *Prefix
	base       *Unit // unprefixed unit, when prefix is set
}

func (u *Unit) Symbol() string { return u.symbol }

func (u *Unit) Multiplier() float64 { return u.multiplier }

func (u *Unit) Dimension() *Dimension { return u.dim }

// IsDerived reports whether u was computed from other units and so cannot take a prefix.
func (u *Unit) IsDerived() bool { return u.derived }

// IsPrefixed reports whether u is a primitive unit with a prefix applied.
func (u *Unit) IsPrefixed() bool { return u.prefix != nil }

// Prefix returns the prefix and the unprefixed unit of a prefixed unit.
func (u *Unit) Prefix() (*Prefix, *Unit) { return u.prefix, u.base }

func (u *Unit) isOne() bool { return u == u.reg.one }

// IsCompatibleWith reports whether u and other measure the same dimension.
func (u *Unit) IsCompatibleWith(other *Unit) bool {
	return u.dim.Equal(other.dim)
}

// Of returns the quantity value u.
func (u *Unit) Of(value float64) Quantity {
	return Quantity{value: value, unit: u}
}

// Convert re-expresses q in u.
func (u *Unit) Convert(q Quantity) (Quantity, error) {
	return q.To(u)
}

func (u *Unit) Mul(other *Unit) *Unit { return u.combine(other, '*') }

func (u *Unit) Div(other *Unit) *Unit { return u.combine(other, '/') }

// Inv returns 1/u.
func (u *Unit) Inv() *Unit { return u.reg.one.Div(u) }

// Pow returns u raised to n. Pow(1) is u itself and Pow(0) the dimensionless unit.
func (u *Unit) Pow(n int) *Unit {
	if n == 1 || u.isOne() {
		return u
	}
	if n == 0 {
		return u.reg.one
	}

	return u.reg.derive(derivation{left: u, op: '^', power: n}, func() *Unit {
		dim := u.dim.Pow(n)
		multiplier := math.Pow(u.multiplier, float64(n))
		if named := dim.namedWithMultiplier(multiplier); named != nil {
			return named
		}

		return &Unit{
			reg:        u.reg,
			dim:        dim,
			symbol:     powSymbol(u.symbol, n),
			multiplier: multiplier,
			derived:    true,
		}
	})
}

// powSymbol raises every factor of symbol to n: powSymbol("m/s", 2) is "m²/s²".
func powSymbol(symbol string, n int) string {
	powers, err := ParseSymbol(symbol)
	if err != nil {
		return "(" + symbol + ")" + StrExponent(n)
	}
	for i := range powers {
		powers[i].Exponent *= n
	}
	return FormatPowers(powers)
}

// mulPow returns u * factor^n, dividing for negative n so the symbol reads "m/s" rather
// than "m*Hz".
func mulPow(u, factor *Unit, n int) *Unit {
	if n < 0 {
		return u.Div(factor.Pow(-n))
	}
	return u.Mul(factor.Pow(n))
}

// combine builds u*other or u/other. A result that matches a named unit of its dimension
// is that named unit, so 1/s is Hz once Hz is declared.
func (u *Unit) combine(other *Unit, op rune) *Unit {
	if other.isOne() {
		return u
	}
	if op == '*' && u.isOne() {
		return other
	}

	return u.reg.derive(derivation{left: u, right: other, op: op}, func() *Unit {
		sign := 1
		multiplier := u.multiplier * other.multiplier
		if op == '/' {
			sign = -1
			multiplier = u.multiplier / other.multiplier
		}

		dim := Combine(u.dim, other.dim, sign)
		if named := dim.namedWithMultiplier(multiplier); named != nil {
			return named
		}

		return &Unit{
			reg:        u.reg,
			dim:        dim,
			symbol:     JoinSymbols(u.symbol, other.symbol, op),
			multiplier: multiplier,
			derived:    true,
		}
	})
}

// Equal reports whether u and other are the same size of the same dimension.
func (u *Unit) Equal(other *Unit) bool {
	return u.IsCompatibleWith(other) && IsClose(u.multiplier, other.multiplier)
}

// Less reports whether u is smaller than other. Units of different dimensions are never
// ordered.
func (u *Unit) Less(other *Unit) bool {
	return u.IsCompatibleWith(other) && u.multiplier < other.multiplier && !IsClose(u.multiplier, other.multiplier)
}

func (u *Unit) String() string { return u.symbol }

func (u *Unit) GoString() string {
	return fmt.Sprintf("Unit(%s, %q, %s)", u.dim, u.symbol, strconv.FormatFloat(u.multiplier, 'g', -1, 64))
}
