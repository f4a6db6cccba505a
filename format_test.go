// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	f := newFixture(t)
	f.reg.MustMakeUnit(f.duration.Dimension(), "d", 86400)
	f.reg.SetPrefixes(f.hz.Dimension(), SIPrefixes...)
	newton := f.reg.MustName(Kilo.MustApply(f.g).Mul(f.m).Div(f.s.Pow(2)), "N")

	tests := []struct {
		name     string
		value    Quantity
		expected string
	}{
		// fast path keeps the unit
		{"small", f.m.Of(7), "7 m"},
		{"fraction", f.km.Of(3.5), "3.5 km"},
		{"three decimals", f.m.Of(1.125), "1.125 m"},
		{"negative", f.s.Of(-12), "-12 s"},

		// zero uses the base unit
		{"zero", f.km.Of(0), "0 m"},
		{"negative zero", f.km.Of(math.Copysign(0, -1)), "0 m"},
		{"zero compound", f.km.Div(f.h).Of(0), "0 m/s"},
		{"zero named compound", f.reg.One().Div(f.min).Of(0), "0 Hz"},
		{"zero force", newton.Of(0), "0 N"},

		// prefixes
		{"kilo", f.m.Of(1289), "1.3 km"},
		{"whole", f.m.Of(7000), "7 km"},
		{"mega", f.m.Of(12_500_000), "12.5 Mm"},
		{"milli", f.m.Of(0.0042), "4.2 mm"},
		{"micro", f.s.Of(0.000_25), "250 µs"},
		{"kilo of kilo", f.km.Of(1500), "1.5 Mm"},
		{"femto", Femto.MustApply(f.m).Of(1), "1 fm"},
		{"pico fraction", Pico.MustApply(f.m).Of(0.5), "0.5 pm"},
		{"sub picometer", f.m.Of(1e-13), "100 fm"},
		{"quecto", f.m.Of(3e-30), "3 qm"},

		// named units
		{"minutes", f.s.Of(1500), "25 min"},
		{"hours", f.s.Of(5000), "1.4 h"},
		{"days", f.h.Of(1000), "41.7 d"},
		{"largest unit takes a prefix", f.g.Of(2500), "2.5 kg"},

		// compound dimensions
		{"speed", f.mps.Of(2500), "2.5 km/s"},
		{"per minute", f.m.Div(f.min).Of(6000), "100 m/s"},
		{"area", f.m.Pow(2).Of(3), "3 m²"},
		{"large area", f.m.Pow(2).Of(2_000_000), "2 km²"},
		{"named compound", f.hz.Of(12_000), "12 kHz"},
		{"inverse", f.reg.One().Div(f.min).Of(1200), "20 Hz"},

		// dimensionless
		{"one", f.reg.One().Of(5), "5"},
		{"one large", f.reg.One().Of(12345), "12345"},
		{"ratio of units", f.km.Div(f.m).Of(5), "5000"},
		{"ratio of units search", f.km.Div(f.m).Of(5000.5), "5000500"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.value.String())
		})
	}
}
