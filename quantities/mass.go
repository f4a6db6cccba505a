// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantities

import "github.com/mikecarlton/units"

// Mass has the gram as its base unit so that kilograms are an ordinary prefixed unit.
var (
	MassQuantity = reg.MustDefineBaseQuantity("Mass", units.SIPrefixes...)
	Mass         = MassQuantity.Dimension()

	Grams = reg.MustMakeUnit(Mass, "g", 1)
	Tons  = reg.MustMakeUnit(Mass, "t", 1_000_000)

	Nanograms  = units.Nano.MustApply(Grams)
	Micrograms = units.Micro.MustApply(Grams)
	Milligrams = units.Milli.MustApply(Grams)
	Centigrams = units.Centi.MustApply(Grams)
	Decigrams  = units.Deci.MustApply(Grams)
	Kilograms  = units.Kilo.MustApply(Grams)

	// avoirdupois
	Ounces = reg.MustMakeUnlistedUnit(Mass, "oz", 28.349_523_125)
	Pounds = reg.MustMakeUnlistedUnit(Mass, "lb", 453.592_37)
)
