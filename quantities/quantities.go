// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package quantities declares common quantities and units on units.Default.
//
//	d := quantities.Meters.Of(1289)
//	fmt.Println(d)                                    // 1.3 km
//	v, _ := quantities.Speed.Parse("90km/h")
//	n, _ := v.ToNumber(quantities.MetersPerSecond)    // 25
package quantities

import "github.com/mikecarlton/units"

var reg = units.Default

// One is the dimensionless unit "1".
var One = reg.One()

func named(d *units.Dimension, name string) *units.Dimension {
	return reg.NameDimension(d, name)
}
