// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantities

import "github.com/mikecarlton/units"

var (
	DistanceQuantity = reg.MustDefineBaseQuantity("Distance", units.SIPrefixes...)
	Distance         = DistanceQuantity.Dimension()

	Meters            = reg.MustMakeUnit(Distance, "m", 1)
	LightSeconds      = reg.MustMakeUnit(Distance, "ls", 299_792_458)
	AstronomicalUnits = reg.MustMakeUnit(Distance, "au", 149_597_870_700)
	LightYears        = reg.MustMakeUnit(Distance, "ly", 9_460_730_472_580_800)
	Parsecs           = reg.MustMakeUnit(Distance, "pc", 3.085_677_581_491_367_3e16)

	Nanometers  = units.Nano.MustApply(Meters)
	Micrometers = units.Micro.MustApply(Meters)
	Millimeters = units.Milli.MustApply(Meters)
	Centimeters = units.Centi.MustApply(Meters)
	Decimeters  = units.Deci.MustApply(Meters)
	Kilometers  = units.Kilo.MustApply(Meters)

	// US customary, by definition of the international inch
	Inches = reg.MustMakeUnlistedUnit(Distance, "in", 0.0254)
	Feet   = reg.MustMakeUnlistedUnit(Distance, "ft", 0.0254*12)
	Yards  = reg.MustMakeUnlistedUnit(Distance, "yd", 0.0254*36)
	Miles  = reg.MustMakeUnlistedUnit(Distance, "mi", 0.0254*12*5280)

	NauticalMiles = reg.MustMakeUnlistedUnit(Distance, "nmi", 1852)
)

var (
	Area = named(Distance.Pow(2), "Area")

	SquareMeters     = Meters.Pow(2)
	SquareKilometers = Kilometers.Pow(2)
	Hectares         = reg.MustMakeUnlistedUnit(Area, "ha", 10_000)
	Acres            = reg.MustMakeUnlistedUnit(Area, "ac", 4_046.856_422_4)
)

var (
	Volume = reg.SetPrefixes(named(Distance.Pow(3), "Volume"), units.Milli)

	CubicMeters = Meters.Pow(3)
	Liters      = reg.MustMakeUnit(Volume, "l", 1e-3)
	Milliliters = units.Milli.MustApply(Liters)

	FluidOunces = reg.MustMakeUnlistedUnit(Volume, "foz", 3.785_411_784e-3/128)
	Cups        = reg.MustMakeUnlistedUnit(Volume, "cup", 3.785_411_784e-3/16)
	Pints       = reg.MustMakeUnlistedUnit(Volume, "pt", 3.785_411_784e-3/8)
	Quarts      = reg.MustMakeUnlistedUnit(Volume, "qt", 3.785_411_784e-3/4)
	Gallons     = reg.MustMakeUnlistedUnit(Volume, "gal", 3.785_411_784e-3) // 231 cubic inches
)

func init() {
	reg.MustAlias(Liters, "L")
}
