// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BaseQuantity is an atomic physical dimension such as Distance or Duration. Identity is
// by declaration: two base quantities are the same only if they are the same pointer.
type BaseQuantity struct {
	name  string
	index int
	dim   *Dimension
}

// One stands for "no quantity". It is never stored in a Dimension.
var One = &BaseQuantity{name: "One", index: -1}

func (b *BaseQuantity) Name() string { return b.name }

func (b *BaseQuantity) String() string { return b.name }

// Dimension returns the dimension consisting of b alone.
func (b *BaseQuantity) Dimension() *Dimension { return b.dim }

// Term is one base quantity of a Dimension with its (non-zero) exponent.
type Term struct {
	Base     *BaseQuantity
	Exponent int
}

// Dimension is a canonical product of base quantities raised to integer exponents.
// Dimensions are interned by their Registry: structurally equal dimensions are the same
// pointer, and the record carries the dimension's named units and display prefixes.
type Dimension struct {
	reg   *Registry
	key   string
	terms []Term // sorted by base index; no zero exponents, no One

	// guarded by reg.mu
	name     string
	units    []*Unit // ascending multiplier
	prefixes []*Prefix
}

// normalize merges exponents per base quantity, drops zeros and One, and sorts by
// declaration order.
func normalize(terms []Term) []Term {
	merged := make(map[*BaseQuantity]int, len(terms))
	for _, term := range terms {
		if term.Base == nil || term.Base == One {
			continue
		}
		merged[term.Base] += term.Exponent
	}

	result := make([]Term, 0, len(merged))
	for base, exponent := range merged {
		if exponent != 0 {
			result = append(result, Term{Base: base, Exponent: exponent})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Base.index < result[j].Base.index })

	return result
}

func termsKey(terms []Term) string {
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = strconv.Itoa(term.Base.index) + "^" + strconv.Itoa(term.Exponent)
	}
	return strings.Join(parts, ",")
}

// Combine returns the dimension whose exponent for each base quantity is
// a[k] + sign*b[k]. Both dimensions must belong to the same registry.
func Combine(a, b *Dimension, sign int) *Dimension {
	terms := make([]Term, 0, len(a.terms)+len(b.terms))
	terms = append(terms, a.terms...)
	for _, term := range b.terms {
		terms = append(terms, Term{Base: term.Base, Exponent: sign * term.Exponent})
	}
	return a.reg.intern(terms)
}

func (d *Dimension) Mul(other *Dimension) *Dimension { return Combine(d, other, 1) }

func (d *Dimension) Div(other *Dimension) *Dimension { return Combine(d, other, -1) }

// Pow multiplies every exponent by n.
func (d *Dimension) Pow(n int) *Dimension {
	terms := make([]Term, len(d.terms))
	for i, term := range d.terms {
		terms[i] = Term{Base: term.Base, Exponent: n * term.Exponent}
	}
	return d.reg.intern(terms)
}

// Key is the canonical form of the exponent set; equal dimensions have equal keys.
func (d *Dimension) Key() string { return d.key }

// Hash is consistent with Equal.
func (d *Dimension) Hash() uint64 { return xxhash.Sum64String(d.key) }

// Equal reports whether d and other have the same exponents.
func (d *Dimension) Equal(other *Dimension) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d == other || d.key == other.key
}

// Terms returns the base quantities of d in declaration order.
func (d *Dimension) Terms() []Term { return slices.Clone(d.terms) }

// Exponents returns the exponent of every base quantity in d.
func (d *Dimension) Exponents() map[*BaseQuantity]int {
	result := make(map[*BaseQuantity]int, len(d.terms))
	for _, term := range d.terms {
		result[term.Base] = term.Exponent
	}
	return result
}

// Exponent returns the exponent of base in d, 0 if absent.
func (d *Dimension) Exponent(base *BaseQuantity) int {
	for _, term := range d.terms {
		if term.Base == base {
			return term.Exponent
		}
	}
	return 0
}

func (d *Dimension) IsDimensionless() bool { return len(d.terms) == 0 }

// IsSimple reports whether d is a single base quantity with exponent 1.
func (d *Dimension) IsSimple() bool { return len(d.terms) == 1 && d.terms[0].Exponent == 1 }

func (d *Dimension) Registry() *Registry { return d.reg }

func (d *Dimension) Name() string {
	d.reg.mu.RLock()
	defer d.reg.mu.RUnlock()

	return d.name
}

// String returns the dimension's name, or its exponents, e.g. "Distance·Duration⁻¹".
func (d *Dimension) String() string {
	if name := d.Name(); name != "" {
		return name
	}
	if d.IsDimensionless() {
		return One.name
	}

	parts := make([]string, len(d.terms))
	for i, term := range d.terms {
		parts[i] = term.Base.name + StrExponent(term.Exponent)
	}
	return strings.Join(parts, string(dot))
}

// NamedUnits returns the primitive units declared for d, smallest first.
func (d *Dimension) NamedUnits() []*Unit {
	d.reg.mu.RLock()
	defer d.reg.mu.RUnlock()

	return slices.Clone(d.units)
}

// Prefixes returns the prefixes considered when displaying quantities of d.
func (d *Dimension) Prefixes() []*Prefix {
	d.reg.mu.RLock()
	defer d.reg.mu.RUnlock()

	return slices.Clone(d.prefixes)
}

// SetPrefixes replaces the display prefixes of d.
func (d *Dimension) SetPrefixes(prefixes ...*Prefix) {
	d.reg.mu.Lock()
	defer d.reg.mu.Unlock()

	d.prefixes = slices.Clone(prefixes)
}

// BaseUnit returns the unit of d with multiplier 1. For compound dimensions without one it
// is composed from the base units of the factors. It is nil when some factor has no base
// unit.
func (d *Dimension) BaseUnit() *Unit {
	if d.IsDimensionless() {
		return d.reg.one
	}
	for _, unit := range d.NamedUnits() {
		if unit.multiplier == 1 {
			return unit
		}
	}
	if d.IsSimple() {
		return nil
	}

	result := d.reg.one
	for _, term := range d.byExponent() {
		base := term.Base.dim.BaseUnit()
		if base == nil {
			return nil
		}
		result = mulPow(result, base, term.Exponent)
	}
	return result
}

// byExponent returns the terms ordered by descending exponent.
func (d *Dimension) byExponent() []Term {
	terms := d.Terms()
	sort.SliceStable(terms, func(i, j int) bool { return terms[i].Exponent > terms[j].Exponent })
	return terms
}

// namedWithMultiplier returns the named unit of d whose multiplier is close to m.
func (d *Dimension) namedWithMultiplier(m float64) *Unit {
	for _, unit := range d.NamedUnits() {
		if IsClose(unit.multiplier, m) {
			return unit
		}
	}
	return nil
}

// Parse parses text as a quantity of dimension d.
func (d *Dimension) Parse(text string) (Quantity, error) {
	return d.reg.ParseQuantityAs(text, d)
}
