// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"math"
	"testing"
)

func TestTolerance(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected bool
	}{
		{1, 1, true},
		{0.1 + 0.2, 0.3, true},
		{1e9, 1e9 + 0.5, true},
		{1, 1.001, false},
		{0, 1e-13, false},
		{0, 1e-300, false},
		{1e-13, 9e-13, false},
		{1e-30, 1e-30 * (1 + 1e-12), true},
		{math.Inf(1), math.Inf(1), true},
		{math.Inf(1), 1e308, false},
		{math.NaN(), math.NaN(), false},
	}

	for _, test := range tests {
		if result := IsClose(test.a, test.b); result != test.expected {
			t.Errorf("IsClose(%v, %v) = %v, want %v", test.a, test.b, result, test.expected)
		}
	}

	absolute := Tolerance{Abs: 1e-9}
	if !absolute.Close(0, 1e-10) {
		t.Errorf("%+v: 0 and 1e-10 should be close", absolute)
	}

	loose := Tolerance{Rel: 1e-3}
	if !loose.Close(1, 1.0005) {
		t.Errorf("%+v: 1 and 1.0005 should be close", loose)
	}
}
