// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"sort"

	"github.com/mikecarlton/units/enumerable"
)

// String renders q for people: "7 m", "1.3 km", "2.5 km/s".
//
// The unit and prefix are chosen greedily, one factor of the dimension at a time, to
// keep the number short. This is not guaranteed to find the shortest rendering.
//
//  1. Zero is shown in the base unit, or in the named unit closest to it in size for a
//     compound dimension such as Force.
//  2. A value with fewer than 4 integer and 4 fractional digits keeps its own unit.
//  3. A dimension with named units (simple dimensions, or compound ones with a
//     dedicated unit such as Hz) picks from those units and then its prefixes.
//  4. Other compound dimensions pick a unit and prefix for each base quantity, highest
//     exponent first.
//
// Chosen values print without a decimal point when whole and with one decimal otherwise.
func (q Quantity) String() string {
	if q.unit == nil {
		return formatShortest(q.value)
	}
	if math.IsNaN(q.value) || math.IsInf(q.value, 0) {
		return withSymbol(formatShortest(q.value), q.unit.symbol)
	}

	absolute := q.absolute()
	if absolute == 0 {
		unit := q.unit.dim.zeroUnit()
		if unit == nil {
			unit = q.unit
		}
		return withSymbol("0", unit.symbol)
	}

	if q.unit.dim.IsDimensionless() && !q.unit.isOne() {
		q = Quantity{value: absolute, unit: q.unit.reg.one}
	}

	if integer, fraction := digitCounts(q.value); integer < 4 && fraction < 4 {
		return withSymbol(formatShortest(q.value), q.unit.symbol)
	}

	value, symbol := q.unit.dim.suitable(math.Abs(absolute))
	if absolute < 0 {
		value = -value
	}
	return withSymbol(formatDisplay(value), symbol)
}

func withSymbol(number, symbol string) string {
	if symbol == oneSymbol {
		return number
	}
	return number + " " + symbol
}

// zeroUnit is the unit zero is shown in.
func (d *Dimension) zeroUnit() *Unit {
	if d.IsSimple() || d.IsDimensionless() {
		return d.BaseUnit()
	}

	named := d.NamedUnits()
	if len(named) == 0 {
		return d.BaseUnit()
	}
	best := named[0]
	for _, unit := range named[1:] {
		if math.Abs(math.Log(unit.multiplier)) < math.Abs(math.Log(best.multiplier)) {
			best = unit
		}
	}
	return best
}

// candidate is a unit together with its effective factor multiplier^exponent.
type candidate struct {
	unit   *Unit
	factor float64
}

// suitable expresses value (in base units of d) in the unit picked for display.
func (d *Dimension) suitable(value float64) (float64, string) {
	if d.IsDimensionless() {
		return value, oneSymbol
	}

	if d.IsSimple() || len(d.NamedUnits()) > 0 {
		if c, ok := d.choose(value, 1); ok {
			return value / c.factor, c.unit.symbol
		}
	}

	unit := d.reg.one
	remaining := value
	for _, term := range d.byExponent() {
		c, ok := term.Base.dim.choose(remaining, term.Exponent)
		if !ok {
			if base := d.BaseUnit(); base != nil {
				return value, base.symbol
			}
			return value, d.String()
		}
		remaining /= c.factor
		unit = mulPow(unit, c.unit, term.Exponent)
	}

	return remaining, unit.symbol
}

// choose picks the named unit of d, and possibly a prefix for it, for a value in base
// units raised to exponent.
//
// The pick is the largest unit whose factor does not exceed value, or the smallest unit
// if none fits. A prefix is only tried when that unit is the largest, when the next unit
// up is more than 1000 times larger, or when value is below every unit.
func (d *Dimension) choose(value float64, exponent int) (candidate, bool) {
	candidates := enumerable.Map(d.NamedUnits(), func(u *Unit) candidate {
		return candidate{unit: u, factor: math.Pow(u.multiplier, float64(exponent))}
	})
	if len(candidates) == 0 {
		return candidate{}, false
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].factor < candidates[j].factor })

	i := bestFit(candidates, value)
	below := i < 0
	if below {
		i = 0
	}
	chosen := candidates[i]

	if chosen.unit.derived || chosen.unit.prefix != nil {
		return chosen, true
	}
	gap := math.Pow(1000, math.Abs(float64(exponent)))
	if !below && i < len(candidates)-1 && candidates[i+1].factor/chosen.factor <= gap {
		return chosen, true
	}

	prefixed := append(
		[]candidate{{unit: chosen.unit, factor: 1}},
		enumerable.Map(d.Prefixes(), func(p *Prefix) candidate {
			return candidate{unit: p.MustApply(chosen.unit), factor: math.Pow(p.multiplier, float64(exponent))}
		})...,
	)
	sort.SliceStable(prefixed, func(i, j int) bool { return prefixed[i].factor < prefixed[j].factor })

	j := bestFit(prefixed, value/chosen.factor)
	if j < 0 {
		j = 0
	}
	return candidate{unit: prefixed[j].unit, factor: chosen.factor * prefixed[j].factor}, true
}

// bestFit returns the index of the largest factor not exceeding value, or -1.
func bestFit(candidates []candidate, value float64) int {
	return enumerable.LastIndex(candidates, func(c candidate) bool {
		return c.factor <= value || IsClose(c.factor, value)
	})
}
