// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import "github.com/zeebo/errs"

// Error classes returned by this package. Test for a kind with Has, e.g.
//
//	if units.ParseError.Has(err) { ... }
var (
	// InvalidUnitError is returned when a unit is constructed with a non-finite or
	// non-positive multiplier, or with an empty symbol.
	InvalidUnitError = errs.Class("invalid unit")

	// IncompatibleDimensionError is returned when two units or quantities of different
	// dimensions are converted, added or subtracted.
	IncompatibleDimensionError = errs.Class("incompatible dimension")

	// ParseError is returned for text that is not <number><unit>, for unknown unit symbols
	// and for quantities of the wrong dimension.
	ParseError = errs.Class("parse")

	// PrefixNotApplicableError is returned when a prefix is applied to a derived or
	// already prefixed unit.
	PrefixNotApplicableError = errs.Class("prefix not applicable")

	// UnknownSymbolError is returned when a symbol does not resolve in the registry.
	UnknownSymbolError = errs.Class("unknown symbol")

	// SymbolConflictError is returned when a symbol or name is already registered to a
	// different unit or base quantity.
	SymbolConflictError = errs.Class("symbol conflict")
)
