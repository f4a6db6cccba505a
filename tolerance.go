// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "math"

// Tolerance bounds floating point equality: a and b are close when
// |a-b| <= max(Rel*max(|a|, |b|), Abs).
type Tolerance struct {
	Rel float64
	Abs float64
}

// DefaultTolerance is used by quantity comparisons and the formatter. It is purely
// relative: values in base units span quecto to quetta, so no absolute epsilon fits them all.
var DefaultTolerance = Tolerance{Rel: 1e-9}

// Close reports whether a and b are equal within t.
func (t Tolerance) Close(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	diff := math.Abs(a - b)
	return diff <= math.Max(t.Rel*math.Max(math.Abs(a), math.Abs(b)), t.Abs)
}

// IsClose reports whether a and b are equal within DefaultTolerance.
func IsClose(a, b float64) bool {
	return DefaultTolerance.Close(a, b)
}
