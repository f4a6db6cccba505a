// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantities

import "github.com/mikecarlton/units"

var (
	Speed = named(Distance.Div(Duration), "Speed")

	MetersPerSecond   = Meters.Div(Seconds)
	KilometersPerHour = Kilometers.Div(Hours)
	MilesPerHour      = Miles.Div(Hours)
)

var (
	Acceleration = named(Speed.Div(Duration), "Acceleration")

	MetersPerSecondSquared   = MetersPerSecond.Div(Seconds)
	KilometersPerHourSquared = KilometersPerHour.Div(Hours)
)

var (
	Frequency = reg.SetPrefixes(named(One.Dimension().Div(Duration), "Frequency"), units.SIPrefixes...)

	Hertz     = reg.MustName(One.Div(Seconds), "Hz")
	Kilohertz = units.Kilo.MustApply(Hertz)
	Megahertz = units.Mega.MustApply(Hertz)
	Gigahertz = units.Giga.MustApply(Hertz)
)
