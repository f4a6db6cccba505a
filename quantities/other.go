// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantities

import (
	"math"

	"github.com/mikecarlton/units"
)

var (
	// Temperature is absolute: only kelvin, which scales without an offset.
	TemperatureQuantity = reg.MustDefineBaseQuantity("Temperature", units.SIPrefixes...)
	Temperature         = TemperatureQuantity.Dimension()
	Kelvin              = reg.MustMakeUnit(Temperature, "K", 1)

	AmountOfSubstanceQuantity = reg.MustDefineBaseQuantity("AmountOfSubstance", units.SIPrefixes...)
	AmountOfSubstance         = AmountOfSubstanceQuantity.Dimension()
	Moles                     = reg.MustMakeUnit(AmountOfSubstance, "mol", 1)

	LuminousIntensityQuantity = reg.MustDefineBaseQuantity("LuminousIntensity", units.SIPrefixes...)
	LuminousIntensity         = LuminousIntensityQuantity.Dimension()
	Candelas                  = reg.MustMakeUnit(LuminousIntensity, "cd", 1)

	PixelsQuantity = reg.MustDefineBaseQuantity("Pixels", units.Kilo, units.Mega, units.Giga)
	Pixels         = PixelsQuantity.Dimension()
	Px             = reg.MustMakeUnit(Pixels, "px", 1)
)

var (
	AngleQuantity = reg.MustDefineBaseQuantity("Angle", units.PrefixesUpTo(units.Milli)...)
	Angle         = AngleQuantity.Dimension()

	Radians = reg.MustMakeUnit(Angle, "rad", 1)
	Degrees = reg.MustMakeUnlistedUnit(Angle, "°", math.Pi/180)
	Gons    = reg.MustMakeUnlistedUnit(Angle, "ᵍ", math.Pi/200)
	Turns   = reg.MustMakeUnlistedUnit(Angle, "tr", 2*math.Pi)

	SolidAngle = named(Angle.Pow(2), "SolidAngle")
	Steradians = reg.MustName(Radians.Pow(2), "sr")
)

func init() {
	reg.MustAlias(Degrees, "deg")
}
