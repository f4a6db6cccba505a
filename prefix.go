// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "fmt"

// Prefix scales a primitive unit: kilo applied to meters is kilometers.
type Prefix struct {
	name       string
	symbol     string
	multiplier float64
}

func NewPrefix(name, symbol string, multiplier float64) *Prefix {
	return &Prefix{name: name, symbol: symbol, multiplier: multiplier}
}

var (
	Quecto = NewPrefix("quecto", "q", 1e-30)
	Ronto  = NewPrefix("ronto", "r", 1e-27)
	Yocto  = NewPrefix("yocto", "y", 1e-24)
	Zepto  = NewPrefix("zepto", "z", 1e-21)
	Atto   = NewPrefix("atto", "a", 1e-18)
	Femto  = NewPrefix("femto", "f", 1e-15)
	Pico   = NewPrefix("pico", "p", 1e-12)
	Nano   = NewPrefix("nano", "n", 1e-9)
	Micro  = NewPrefix("micro", "µ", 1e-6)
	Milli  = NewPrefix("milli", "m", 1e-3)
	Centi  = NewPrefix("centi", "c", 1e-2)
	Deci   = NewPrefix("deci", "d", 1e-1)
	Deka   = NewPrefix("deka", "da", 1e1)
	Hecto  = NewPrefix("hecto", "h", 1e2)
	Kilo   = NewPrefix("kilo", "k", 1e3)
	Mega   = NewPrefix("mega", "M", 1e6)
	Giga   = NewPrefix("giga", "G", 1e9)
	Tera   = NewPrefix("tera", "T", 1e12)
	Peta   = NewPrefix("peta", "P", 1e15)
	Exa    = NewPrefix("exa", "E", 1e18)
	Zetta  = NewPrefix("zetta", "Z", 1e21)
	Yotta  = NewPrefix("yotta", "Y", 1e24)
	Ronna  = NewPrefix("ronna", "R", 1e27)
	Quetta = NewPrefix("quetta", "Q", 1e30)

	Kibi = NewPrefix("kibi", "Ki", 1<<10)
	Mebi = NewPrefix("mebi", "Mi", 1<<20)
	Gibi = NewPrefix("gibi", "Gi", 1<<30)
	Tebi = NewPrefix("tebi", "Ti", 1<<40)
	Pebi = NewPrefix("pebi", "Pi", 1<<50)
	Exbi = NewPrefix("exbi", "Ei", 1<<60)
	Zebi = NewPrefix("zebi", "Zi", 1<<70)
	Yobi = NewPrefix("yobi", "Yi", 1<<80)
)

// SIPrefixes are the SI prefixes in steps of 1000, smallest first. These are the ones
// picked when displaying a quantity.
var SIPrefixes = []*Prefix{
	Quecto, Ronto, Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli,
	Kilo, Mega, Giga, Tera, Peta, Exa, Zetta, Yotta, Ronna, Quetta,
}

// BinaryPrefixes are the IEC prefixes, smallest first.
var BinaryPrefixes = []*Prefix{Kibi, Mebi, Gibi, Tebi, Pebi, Exbi, Zebi, Yobi}

// StandardPrefixes are registered with every new Registry.
var StandardPrefixes = []*Prefix{
	Quecto, Ronto, Yocto, Zepto, Atto, Femto, Pico, Nano, Micro, Milli, Centi, Deci,
	Deka, Hecto, Kilo, Mega, Giga, Tera, Peta, Exa, Zetta, Yotta, Ronna, Quetta,
	Kibi, Mebi, Gibi, Tebi, Pebi, Exbi, Zebi, Yobi,
}

// PrefixesUpTo returns the SI prefixes no larger than last, e.g. PrefixesUpTo(Milli) for
// durations, where kiloseconds read worse than hours.
func PrefixesUpTo(last *Prefix) []*Prefix {
	var result []*Prefix
	for _, prefix := range SIPrefixes {
		if prefix.multiplier <= last.multiplier {
			result = append(result, prefix)
		}
	}
	return result
}

func (p *Prefix) Name() string { return p.name }

func (p *Prefix) Symbol() string { return p.symbol }

func (p *Prefix) Multiplier() float64 { return p.multiplier }

func (p *Prefix) String() string { return p.symbol }

func (p *Prefix) GoString() string { return fmt.Sprintf("<Prefix %s>", p.symbol) }

// Apply returns unit scaled by p. Only primitive units take a prefix: derived units such
// as m² and units that already carry a prefix fail with PrefixNotApplicableError.
// Prefixed units are cached per registry, so Apply returns the same *Unit every time.
func (p *Prefix) Apply(unit *Unit) (*Unit, error) {
	if unit.derived || unit.prefix != nil || unit.isOne() {
		return nil, PrefixNotApplicableError.New("%s cannot take prefix %s", unit.symbol, p.symbol)
	}

	return unit.reg.derive(derivation{left: unit, prefix: p}, func() *Unit {
		return &Unit{
			reg:        unit.reg,
			dim:        unit.dim,
			symbol:     p.symbol + unit.symbol,
			multiplier: p.multiplier * unit.multiplier,
			prefix:     p,
			base:       unit,
		}
	}), nil
}

// MustApply is like Apply but panics on error. Use it for static unit definitions.
func (p *Prefix) MustApply(unit *Unit) *Unit {
	result, err := p.Apply(unit)
	if err != nil {
		panic(err)
	}
	return result
}
