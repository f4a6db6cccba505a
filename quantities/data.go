// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package quantities

import "github.com/mikecarlton/units"

// DataVolume parses both SI and binary prefixes (kB, KiB) but displays with SI ones.
var (
	DataVolumeQuantity = reg.MustDefineBaseQuantity("DataVolume", units.SIPrefixes...)
	DataVolume         = DataVolumeQuantity.Dimension()

	Bytes     = reg.MustMakeUnit(DataVolume, "B", 1)
	Bits      = reg.MustMakeUnlistedUnit(DataVolume, "bit", 0.125)
	Kilobytes = units.Kilo.MustApply(Bytes)
	Megabytes = units.Mega.MustApply(Bytes)
	Gigabytes = units.Giga.MustApply(Bytes)
	Terabytes = units.Tera.MustApply(Bytes)
	Kibibytes = units.Kibi.MustApply(Bytes)
	Mebibytes = units.Mebi.MustApply(Bytes)
	Gibibytes = units.Gibi.MustApply(Bytes)
	Tebibytes = units.Tebi.MustApply(Bytes)
)

var (
	DataTransferSpeed = named(DataVolume.Div(Duration), "DataTransferSpeed")

	BytesPerSecond = Bytes.Div(Seconds)
	BitsPerSecond  = Bits.Div(Seconds)
)
