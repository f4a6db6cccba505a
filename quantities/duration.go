// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantities

import "github.com/mikecarlton/units"

// Duration is displayed with sub-second prefixes only: 5000 s reads as 1.4 h, not 5 ks.
var (
	DurationQuantity = reg.MustDefineBaseQuantity("Duration", units.PrefixesUpTo(units.Milli)...)
	Duration         = DurationQuantity.Dimension()

	Seconds   = reg.MustMakeUnit(Duration, "s", 1)
	Minutes   = reg.MustMakeUnit(Duration, "min", 60)
	Hours     = reg.MustMakeUnit(Duration, "h", 3_600)
	Days      = reg.MustMakeUnit(Duration, "d", 86_400)
	Weeks     = reg.MustMakeUnit(Duration, "wk", 604_800)
	Years     = reg.MustMakeUnit(Duration, "yr", 31_557_600) // Julian year
	Decades   = reg.MustMakeUnit(Duration, "dec", 315_576_000)
	Centuries = reg.MustMakeUnit(Duration, "cent", 3_155_760_000)
	Millennia = reg.MustMakeUnit(Duration, "mil", 31_557_600_000)

	Milliseconds = units.Milli.MustApply(Seconds)
	Microseconds = units.Micro.MustApply(Seconds)
	Nanoseconds  = units.Nano.MustApply(Seconds)
)

func init() {
	reg.MustAlias(Seconds, "sec")
	reg.MustAlias(Hours, "hr")
	reg.MustAlias(Weeks, "w")
	reg.MustAlias(Years, "y")
	reg.MustAlias(Millennia, "ka")
}
