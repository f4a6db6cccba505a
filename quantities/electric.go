// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantities

import "github.com/mikecarlton/units"

var (
	ElectricCurrentQuantity = reg.MustDefineBaseQuantity("ElectricCurrent", units.SIPrefixes...)
	ElectricCurrent         = ElectricCurrentQuantity.Dimension()

	Amperes      = reg.MustMakeUnit(ElectricCurrent, "A", 1)
	Milliamperes = units.Milli.MustApply(Amperes)
)

// Derived SI units. Their multipliers are relative to grams, so a newton is 1000 g·m/s².
var (
	ElectricCharge = withSI(Amperes.Mul(Seconds).Dimension(), "ElectricCharge")
	Coulombs       = reg.MustName(Amperes.Mul(Seconds), "C")

	Force   = withSI(Kilograms.Mul(MetersPerSecondSquared).Dimension(), "Force")
	Newtons = reg.MustName(Kilograms.Mul(MetersPerSecondSquared), "N")

	Pressure = withSI(Force.Div(Area), "Pressure")
	Pascals  = reg.MustName(Newtons.Div(SquareMeters), "Pa")

	Energy = withSI(Force.Mul(Distance), "Energy")
	Joules = reg.MustName(Newtons.Mul(Meters), "J")

	Power = withSI(Energy.Div(Duration), "Power")
	Watts = reg.MustName(Joules.Div(Seconds), "W")

	Voltage = withSI(Power.Div(ElectricCurrent), "Voltage")
	Volts   = reg.MustName(Watts.Div(Amperes), "V")

	ElectricResistance = withSI(Voltage.Div(ElectricCurrent), "ElectricResistance")
	Ohms               = reg.MustName(Volts.Div(Amperes), "Ω")
)

func init() {
	reg.MustAlias(Ohms, "ohm")
}

func withSI(d *units.Dimension, name string) *units.Dimension {
	return reg.SetPrefixes(named(d, name), units.SIPrefixes...)
}
