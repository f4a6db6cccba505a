// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package units

import (
	"io"
	"log/slog"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Registry owns base quantities, interned dimensions, the symbol table and the cache of
// derived units. It is populated while the program initializes and read concurrently
// afterwards; every mutation takes the write lock.
type Registry struct {
	mu     sync.RWMutex
	logger *slog.Logger

	bases      []*BaseQuantity
	baseNames  map[string]*BaseQuantity
	dimensions map[string]*Dimension
	symbols    map[string]*Unit
	prefixes   map[string]*Prefix
	prefixSyms []string // longest first
	derived    map[derivation]*Unit

	dimensionless *Dimension
	one           *Unit
}

// derivation identifies a derived unit: left op right, left raised to power, or prefix
// applied to left.
type derivation struct {
	left, right *Unit
	prefix      *Prefix
	op          rune
	power       int
}

type Option func(*Registry)

// WithLogger sets the logger registrations are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates a registry holding the standard prefixes and the dimensionless
// unit "1".
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		baseNames:  make(map[string]*BaseQuantity),
		dimensions: make(map[string]*Dimension),
		symbols:    make(map[string]*Unit),
		prefixes:   make(map[string]*Prefix),
		derived:    make(map[derivation]*Unit),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.dimensionless = r.intern(nil)
	r.one = &Unit{reg: r, dim: r.dimensionless, symbol: oneSymbol, multiplier: 1}
	r.symbols[oneSymbol] = r.one
	r.dimensionless.units = []*Unit{r.one}

	for _, prefix := range StandardPrefixes {
		r.addPrefix(prefix.symbol, prefix)
	}
	r.addPrefix("μ", Micro) // Greek mu, Micro uses the micro sign
	r.addPrefix("u", Micro)

	return r
}

// Default is the registry used by the package level functions and the quantities
// catalog.
var Default = NewRegistry()

func normalizeSymbol(symbol string) string {
	return norm.NFC.String(strings.TrimSpace(symbol))
}

// intern returns the canonical dimension for terms.
func (r *Registry) intern(terms []Term) *Dimension {
	terms = normalize(terms)
	key := termsKey(terms)

	r.mu.RLock()
	d, ok := r.dimensions[key]
	r.mu.RUnlock()
	if ok {
		return d
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.dimensions[key]; ok {
		return d
	}
	d = &Dimension{reg: r, key: key, terms: terms}
	r.dimensions[key] = d

	return d
}

// Dimension returns the canonical dimension with the given exponents.
func (r *Registry) Dimension(exponents map[*BaseQuantity]int) *Dimension {
	terms := make([]Term, 0, len(exponents))
	for base, exponent := range exponents {
		terms = append(terms, Term{Base: base, Exponent: exponent})
	}
	return r.intern(terms)
}

// Dimensionless returns the dimension with no base quantities.
func (r *Registry) Dimensionless() *Dimension { return r.dimensionless }

// One returns the dimensionless unit "1".
func (r *Registry) One() *Unit { return r.one }

// DefineBaseQuantity declares a new base quantity. Quantities of a simple dimension are
// displayed with the given prefixes.
func (r *Registry) DefineBaseQuantity(name string, prefixes ...*Prefix) (*BaseQuantity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, InvalidUnitError.New("base quantity needs a name")
	}

	r.mu.Lock()
	if _, exists := r.baseNames[name]; exists {
		r.mu.Unlock()
		return nil, SymbolConflictError.New("base quantity %q already defined", name)
	}
	base := &BaseQuantity{name: name, index: len(r.bases)}
	r.bases = append(r.bases, base)
	r.baseNames[name] = base
	r.mu.Unlock()

	base.dim = r.intern([]Term{{Base: base, Exponent: 1}})

	r.mu.Lock()
	base.dim.name = name
	base.dim.prefixes = append([]*Prefix(nil), prefixes...)
	r.mu.Unlock()

	r.logger.Debug("defined base quantity", "name", name, "prefixes", len(prefixes))

	return base, nil
}

// MustDefineBaseQuantity is like DefineBaseQuantity but panics on error.
func (r *Registry) MustDefineBaseQuantity(name string, prefixes ...*Prefix) *BaseQuantity {
	base, err := r.DefineBaseQuantity(name, prefixes...)
	if err != nil {
		panic(err)
	}
	return base
}

// BaseQuantity returns the base quantity declared under name.
func (r *Registry) BaseQuantity(name string) (*BaseQuantity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	base, ok := r.baseNames[name]
	return base, ok
}

// BaseQuantities returns all base quantities in declaration order.
func (r *Registry) BaseQuantities() []*BaseQuantity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*BaseQuantity(nil), r.bases...)
}

// NameDimension gives d a display name, e.g. "Speed".
func (r *Registry) NameDimension(d *Dimension, name string) *Dimension {
	r.mu.Lock()
	defer r.mu.Unlock()

	d.name = name
	return d
}

// SetPrefixes sets the display prefixes of d.
func (r *Registry) SetPrefixes(d *Dimension, prefixes ...*Prefix) *Dimension {
	d.SetPrefixes(prefixes...)
	return d
}

// Dimensions returns every dimension that has a name or a named unit.
func (r *Registry) Dimensions() []*Dimension {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Dimension
	for _, d := range r.dimensions {
		if d.name != "" || len(d.units) > 0 {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].key < result[j].key })

	return result
}

// MakeUnit declares a primitive unit of dimension dim: symbol is registered for lookup
// and the unit joins the dimension's named units. The multiplier is the size of the unit
// relative to the dimension's base unit and must be finite and positive.
func (r *Registry) MakeUnit(dim *Dimension, symbol string, multiplier float64) (*Unit, error) {
	return r.makeUnit(dim, symbol, multiplier, true)
}

// MakeUnlistedUnit declares a primitive unit that parses and takes prefixes like any
// other but is never picked when displaying quantities, e.g. US customary units.
func (r *Registry) MakeUnlistedUnit(dim *Dimension, symbol string, multiplier float64) (*Unit, error) {
	return r.makeUnit(dim, symbol, multiplier, false)
}

// MustMakeUnlistedUnit is like MakeUnlistedUnit but panics on error.
func (r *Registry) MustMakeUnlistedUnit(dim *Dimension, symbol string, multiplier float64) *Unit {
	unit, err := r.MakeUnlistedUnit(dim, symbol, multiplier)
	if err != nil {
		panic(err)
	}
	return unit
}

func (r *Registry) makeUnit(dim *Dimension, symbol string, multiplier float64, listed bool) (*Unit, error) {
	symbol = normalizeSymbol(symbol)
	if err := validateUnit(symbol, multiplier); err != nil {
		return nil, err
	}
	if dim.reg != r {
		return nil, InvalidUnitError.New("dimension %s belongs to another registry", dim)
	}

	unit := &Unit{reg: r, dim: dim, symbol: symbol, multiplier: multiplier}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.symbols[symbol]; exists {
		return nil, SymbolConflictError.New("%q is already a unit of %s", symbol, existing.dim.key)
	}
	r.symbols[symbol] = unit
	if !listed {
		r.logger.Debug("defined unlisted unit", "symbol", symbol, "multiplier", multiplier, "dimension", dim.key)
		return unit, nil
	}

	// derived units of dim computed earlier may now resolve to this unit
	for key, cached := range r.derived {
		if cached.derived && cached.dim == dim {
			delete(r.derived, key)
		}
	}

	i := sort.Search(len(dim.units), func(i int) bool { return dim.units[i].multiplier > multiplier })
	dim.units = append(dim.units, nil)
	copy(dim.units[i+1:], dim.units[i:])
	dim.units[i] = unit

	r.logger.Debug("defined unit", "symbol", symbol, "multiplier", multiplier, "dimension", dim.key)

	return unit, nil
}

// MustMakeUnit is like MakeUnit but panics on error.
func (r *Registry) MustMakeUnit(dim *Dimension, symbol string, multiplier float64) *Unit {
	unit, err := r.MakeUnit(dim, symbol, multiplier)
	if err != nil {
		panic(err)
	}
	return unit
}

// Name declares a primitive unit with the dimension and size of unit under a new symbol,
// e.g. Name(one.Div(seconds), "Hz"). The result takes prefixes.
func (r *Registry) Name(unit *Unit, symbol string) (*Unit, error) {
	return r.MakeUnit(unit.dim, symbol, unit.multiplier)
}

// MustName is like Name but panics on error.
func (r *Registry) MustName(unit *Unit, symbol string) *Unit {
	return r.MustMakeUnit(unit.dim, symbol, unit.multiplier)
}

func validateUnit(symbol string, multiplier float64) error {
	if symbol == "" {
		return InvalidUnitError.New("unit needs a symbol")
	}
	if strings.ContainsFunc(symbol, isOperator) || strings.ContainsRune(symbol, '^') {
		return InvalidUnitError.New("%q: symbol cannot contain operators", symbol)
	}
	if math.IsNaN(multiplier) || math.IsInf(multiplier, 0) || multiplier <= 0 {
		return InvalidUnitError.New("%q: multiplier must be finite and positive, got %v", symbol, multiplier)
	}
	return nil
}

// Alias registers symbol as another name for unit. The unit does not gain a second entry
// in its dimension's named units.
func (r *Registry) Alias(unit *Unit, symbol string) error {
	symbol = normalizeSymbol(symbol)
	if err := validateUnit(symbol, unit.multiplier); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.symbols[symbol]; exists {
		if existing == unit {
			return nil
		}
		return SymbolConflictError.New("%q is already a unit of %s", symbol, existing.dim.key)
	}
	r.symbols[symbol] = unit

	r.logger.Debug("defined alias", "symbol", symbol, "unit", unit.symbol)

	return nil
}

// MustAlias is like Alias but panics on error.
func (r *Registry) MustAlias(unit *Unit, symbols ...string) {
	for _, symbol := range symbols {
		if err := r.Alias(unit, symbol); err != nil {
			panic(err)
		}
	}
}

// Units returns every unit reachable by symbol, ordered by dimension then size.
func (r *Registry) Units() []*Unit {
	r.mu.RLock()
	seen := make(map[*Unit]bool, len(r.symbols))
	result := make([]*Unit, 0, len(r.symbols))
	for _, unit := range r.symbols {
		if !seen[unit] {
			seen[unit] = true
			result = append(result, unit)
		}
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].dim.key != result[j].dim.key {
			return result[i].dim.key < result[j].dim.key
		}
		if result[i].multiplier != result[j].multiplier {
			return result[i].multiplier < result[j].multiplier
		}
		return result[i].symbol < result[j].symbol
	})

	return result
}

// AddPrefix makes prefix available for prefix stripping under its symbol and any aliases.
func (r *Registry) AddPrefix(prefix *Prefix, aliases ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, symbol := range append([]string{prefix.symbol}, aliases...) {
		symbol = normalizeSymbol(symbol)
		if existing, exists := r.prefixes[symbol]; exists && existing != prefix {
			return SymbolConflictError.New("prefix %q already defined", symbol)
		}
		r.addPrefix(symbol, prefix)
	}

	return nil
}

// addPrefix requires r.mu to be held or r to be unshared.
func (r *Registry) addPrefix(symbol string, prefix *Prefix) {
	if _, exists := r.prefixes[symbol]; !exists {
		// copy on write: Lookup iterates a snapshot without the lock
		syms := append(slices.Clone(r.prefixSyms), symbol)
		sort.SliceStable(syms, func(i, j int) bool { return len(syms[i]) > len(syms[j]) })
		r.prefixSyms = syms
	}
	r.prefixes[symbol] = prefix
}

// Prefix returns the prefix registered under symbol.
func (r *Registry) Prefix(symbol string) (*Prefix, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix, ok := r.prefixes[normalizeSymbol(symbol)]
	return prefix, ok
}

// Lookup resolves a single unit symbol. When the symbol itself is unknown, a leading
// prefix symbol is stripped (longest first) and the rest looked up, so "km" resolves to
// kilo applied to "m".
func (r *Registry) Lookup(symbol string) (*Unit, error) {
	symbol = normalizeSymbol(symbol)

	r.mu.RLock()
	unit, ok := r.symbols[symbol]
	prefixSyms := r.prefixSyms
	r.mu.RUnlock()
	if ok {
		return unit, nil
	}

	for _, ps := range prefixSyms {
		if len(symbol) <= len(ps) || !strings.HasPrefix(symbol, ps) {
			continue
		}

		r.mu.RLock()
		base, ok := r.symbols[symbol[len(ps):]]
		prefix := r.prefixes[ps]
		r.mu.RUnlock()
		if !ok {
			continue
		}

		if unit, err := prefix.Apply(base); err == nil {
			return unit, nil
		}
	}

	return nil, UnknownSymbolError.New("%q does not correspond to a known unit", symbol)
}

// derive returns the cached unit for key, building it on first use. build runs without
// the lock held; when two goroutines race the first stored unit wins.
func (r *Registry) derive(key derivation, build func() *Unit) *Unit {
	r.mu.RLock()
	unit, ok := r.derived[key]
	r.mu.RUnlock()
	if ok {
		return unit
	}

	unit = build()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.derived[key]; ok {
		return existing
	}
	r.derived[key] = unit

	return unit
}

// ParseUnit resolves a possibly compound symbol such as "m/s²" or "kg*m/s^2".
func (r *Registry) ParseUnit(symbol string) (*Unit, error) {
	powers, err := ParseSymbol(normalizeSymbol(symbol))
	if err != nil {
		return nil, err
	}
	powers = powers.compact()

	// Start with a positive exponent so the symbol does not open with "1/".
	for i, power := range powers {
		if power.Exponent > 0 {
			powers = append(Powers{power}, append(powers[:i:i], powers[i+1:]...)...)
			break
		}
	}

	result := r.one
	for _, power := range powers {
		unit, err := r.Lookup(power.Symbol)
		if err != nil {
			return nil, err
		}
		result = mulPow(result, unit, power.Exponent)
	}

	return result, nil
}

// MustParseUnit is like ParseUnit but panics on error.
func (r *Registry) MustParseUnit(symbol string) *Unit {
	unit, err := r.ParseUnit(symbol)
	if err != nil {
		panic(err)
	}
	return unit
}

// ParseUnitAs is like ParseUnit but fails with IncompatibleDimensionError unless the
// unit has dimension dim.
func (r *Registry) ParseUnitAs(symbol string, dim *Dimension) (*Unit, error) {
	unit, err := r.ParseUnit(symbol)
	if err != nil {
		return nil, err
	}
	if !unit.dim.Equal(dim) {
		return nil, IncompatibleDimensionError.New("%q is not a unit of %s", symbol, dim)
	}
	return unit, nil
}

// Package level shortcuts on Default.

func DefineBaseQuantity(name string, prefixes ...*Prefix) (*BaseQuantity, error) {
	return Default.DefineBaseQuantity(name, prefixes...)
}

func MakeUnit(dim *Dimension, symbol string, multiplier float64) (*Unit, error) {
	return Default.MakeUnit(dim, symbol, multiplier)
}

func Lookup(symbol string) (*Unit, error) { return Default.Lookup(symbol) }

func ParseUnit(symbol string) (*Unit, error) { return Default.ParseUnit(symbol) }

func ParseQuantity(text string) (Quantity, error) { return Default.ParseQuantity(text) }
