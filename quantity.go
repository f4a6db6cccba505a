// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"fmt"
	"math"
)

// Quantity is an immutable measurement: a number in some Unit. Arithmetic returns new
// quantities.
//
// The zero Quantity (Zero) is a unitless 0 that is compatible with every dimension: it is
// the identity for Add and Sub and compares against any quantity. Other unitless values,
// such as Zero.Inv(), are plain dimensionless numbers.
type Quantity struct {
	value float64
	unit  *Unit
}

// Zero is the universal zero.
var Zero Quantity

// New returns the quantity value unit.
func New(value float64, unit *Unit) Quantity {
	return Quantity{value: value, unit: unit}
}

func (q Quantity) Value() float64 { return q.value }

// Unit returns the unit of q, nil for Zero.
func (q Quantity) Unit() *Unit { return q.unit }

// IsZero reports whether q is the universal zero. A quantity such as 0 m is not.
func (q Quantity) IsZero() bool { return q.unit == nil && q.value == 0 }

func (q Quantity) isDimensionless() bool {
	return q.unit == nil || q.unit.dim.IsDimensionless()
}

// dimensionName names the dimension of q for error messages.
func (q Quantity) dimensionName() string {
	if q.unit == nil {
		return One.name
	}
	return q.unit.dim.String()
}

// Dimension returns the dimension of q, nil when q has no unit.
func (q Quantity) Dimension() *Dimension {
	if q.unit == nil {
		return nil
	}
	return q.unit.dim
}

// IsCompatibleWith reports whether q and other have the same dimension. Zero is
// compatible with everything.
func (q Quantity) IsCompatibleWith(other Quantity) bool {
	if q.IsZero() || other.IsZero() {
		return true
	}
	if q.unit == nil || other.unit == nil {
		return q.isDimensionless() && other.isDimensionless()
	}
	return q.unit.IsCompatibleWith(other.unit)
}

// absolute is the value of q in its dimension's base unit.
func (q Quantity) absolute() float64 {
	if q.unit == nil {
		return q.value
	}
	return q.value * q.unit.multiplier
}

// ToNumber returns the value of q expressed in unit.
func (q Quantity) ToNumber(unit *Unit) (float64, error) {
	if q.IsZero() {
		return 0, nil
	}
	if q.unit == nil {
		if !unit.dim.IsDimensionless() {
			return 0, IncompatibleDimensionError.New("cannot convert %s (%s) to %s (%s)", formatShortest(q.value), One.name, unit, unit.dim)
		}
		return q.value / unit.multiplier, nil
	}
	if !q.unit.IsCompatibleWith(unit) {
		return 0, IncompatibleDimensionError.New("cannot convert %s (%s) to %s (%s)", q.unit, q.unit.dim, unit, unit.dim)
	}
	return q.value * (q.unit.multiplier / unit.multiplier), nil
}

// To returns q expressed in unit.
func (q Quantity) To(unit *Unit) (Quantity, error) {
	n, err := q.ToNumber(unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: n, unit: unit}, nil
}

// Compare returns -1, 0 or 1 as q is less than, equal to (within DefaultTolerance) or
// greater than other. Quantities of different dimensions cannot be compared.
func (q Quantity) Compare(other Quantity) (int, error) {
	if q.unit == nil || other.unit == nil {
		if !q.IsCompatibleWith(other) {
			return 0, IncompatibleDimensionError.New("cannot compare %s with %s", q.dimensionName(), other.dimensionName())
		}
		return compareFloats(q.absolute(), other.absolute()), nil
	}

	n, err := other.ToNumber(q.unit)
	if err != nil {
		return 0, err
	}
	return compareFloats(q.value, n), nil
}

func compareFloats(a, b float64) int {
	switch {
	case IsClose(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// The comparison operators below never fail: quantities of different dimensions are
// neither equal nor ordered, so every operator but NotEqual returns false for them.

func (q Quantity) Equal(other Quantity) bool {
	c, err := q.Compare(other)
	return err == nil && c == 0
}

func (q Quantity) NotEqual(other Quantity) bool { return !q.Equal(other) }

func (q Quantity) Less(other Quantity) bool {
	c, err := q.Compare(other)
	return err == nil && c < 0
}

func (q Quantity) LessEqual(other Quantity) bool {
	c, err := q.Compare(other)
	return err == nil && c <= 0
}

func (q Quantity) Greater(other Quantity) bool {
	c, err := q.Compare(other)
	return err == nil && c > 0
}

func (q Quantity) GreaterEqual(other Quantity) bool {
	c, err := q.Compare(other)
	return err == nil && c >= 0
}

// Add returns q + other in the unit of q.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if other.IsZero() {
		return q, nil
	}
	if q.IsZero() {
		return other, nil
	}

	n, err := other.numberIn(q)
	if err != nil {
		return Quantity{}, IncompatibleDimensionError.New("cannot add %s to %s", other.dimensionName(), q.dimensionName())
	}
	return Quantity{value: q.value + n, unit: q.unit}, nil
}

// Sub returns q - other in the unit of q.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if other.IsZero() {
		return q, nil
	}
	if q.IsZero() {
		return other.Neg(), nil
	}

	n, err := other.numberIn(q)
	if err != nil {
		return Quantity{}, IncompatibleDimensionError.New("cannot subtract %s from %s", other.dimensionName(), q.dimensionName())
	}
	return Quantity{value: q.value - n, unit: q.unit}, nil
}

// numberIn returns the value of q in the unit of target, which may be unitless.
func (q Quantity) numberIn(target Quantity) (float64, error) {
	if target.unit != nil {
		return q.ToNumber(target.unit)
	}
	if !q.isDimensionless() {
		return 0, IncompatibleDimensionError.New("%s is not dimensionless", q.dimensionName())
	}
	return q.absolute(), nil
}

func (q Quantity) Neg() Quantity { return Quantity{value: -q.value, unit: q.unit} }

func (q Quantity) Abs() Quantity { return Quantity{value: math.Abs(q.value), unit: q.unit} }

// Sign returns -1, 0 or 1.
func (q Quantity) Sign() int {
	switch {
	case q.value < 0:
		return -1
	case q.value > 0:
		return 1
	default:
		return 0
	}
}

// Scale multiplies the value of q by f.
func (q Quantity) Scale(f float64) Quantity { return Quantity{value: q.value * f, unit: q.unit} }

// DivScalar divides the value of q by f.
func (q Quantity) DivScalar(f float64) Quantity { return Quantity{value: q.value / f, unit: q.unit} }

// Mul returns q * other, whose unit is the product of the units. Zero acts as a
// dimensionless 0.
func (q Quantity) Mul(other Quantity) Quantity {
	left, right := q.withUnit(other), other.withUnit(q)
	if left.unit == nil {
		return Quantity{value: left.value * right.value}
	}
	return Quantity{value: left.value * right.value, unit: left.unit.Mul(right.unit)}
}

// Div returns q / other, whose unit is the quotient of the units.
func (q Quantity) Div(other Quantity) Quantity {
	left, right := q.withUnit(other), other.withUnit(q)
	if left.unit == nil {
		return Quantity{value: left.value / right.value}
	}
	return Quantity{value: left.value / right.value, unit: left.unit.Div(right.unit)}
}

// withUnit gives a unitless q the dimensionless unit of the registry other belongs to.
func (q Quantity) withUnit(other Quantity) Quantity {
	if q.unit != nil || other.unit == nil {
		return q
	}
	return Quantity{value: q.value, unit: other.unit.reg.one}
}

// Inv returns 1/q.
func (q Quantity) Inv() Quantity {
	if q.unit == nil {
		return Quantity{value: math.Inf(1)}
	}
	return Quantity{value: 1 / q.value, unit: q.unit.Inv()}
}

// Pow returns q raised to n.
func (q Quantity) Pow(n int) Quantity {
	if q.unit == nil {
		return Quantity{value: math.Pow(q.value, float64(n))}
	}
	return Quantity{value: math.Pow(q.value, float64(n)), unit: q.unit.Pow(n)}
}

// Debug returns the value followed directly by the unit symbol it was created with, e.g.
// "7000m". Unlike String it never picks another unit.
func (q Quantity) Debug() string {
	number := formatShortest(q.value)
	if q.unit == nil || q.unit.isOne() {
		return number
	}
	return number + q.unit.symbol
}

// Format implements fmt.Formatter: %v and %s print String, %#v prints Debug, and numeric
// verbs format the value followed by the unit symbol.
func (q Quantity) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		fmt.Fprint(f, q.Debug())
	case verb == 'v' || verb == 's':
		fmt.Fprint(f, q.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), q.value)
		if q.unit != nil && !q.unit.isOne() {
			fmt.Fprint(f, " ", q.unit.symbol)
		}
	}
}

// ParseQuantity parses "<number><unit>", e.g. "7m", "5 m/s" or "3" (dimensionless).
func (r *Registry) ParseQuantity(text string) (Quantity, error) {
	number, symbol, ok := splitQuantity(text)
	if !ok {
		return Quantity{}, ParseError.New("cannot parse %q as a quantity", text)
	}

	unit, err := r.ParseUnit(symbol)
	if err != nil {
		return Quantity{}, ParseError.Wrap(fmt.Errorf("cannot parse %q: %w", text, err))
	}

	return Quantity{value: number, unit: unit}, nil
}

// ParseQuantityAs is like ParseQuantity but requires the quantity to have dimension dim.
// A quantity of another dimension is a ParseError that also matches
// IncompatibleDimensionError.
func (r *Registry) ParseQuantityAs(text string, dim *Dimension) (Quantity, error) {
	q, err := r.ParseQuantity(text)
	if err != nil {
		return Quantity{}, err
	}
	if !q.unit.dim.Equal(dim) {
		return Quantity{}, ParseError.Wrap(fmt.Errorf("cannot parse %q as %s: %w", text, dim,
			IncompatibleDimensionError.New("%s is a unit of %s", q.unit, q.unit.dim)))
	}
	return q, nil
}
