// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package store

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/mikecarlton/units"
)

// Error is the class of all errors from this package.
var Error = errs.Class("store")

// Definition declares a unit as a multiple of a unit expression, e.g. nmi = 1852 m.
type Definition struct {
	Symbol      string    `yaml:"symbol"`
	Multiplier  float64   `yaml:"multiplier"`
	Of          string    `yaml:"of"`
	Description string    `yaml:"description,omitempty"`
	Display     bool      `yaml:"display,omitempty"` // picked when displaying quantities
	CreatedAt   time.Time `yaml:"-"`
}

// Apply declares d on reg.
func (d Definition) Apply(reg *units.Registry) (*units.Unit, error) {
	of, err := reg.ParseUnit(d.Of)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	declare := reg.MakeUnlistedUnit
	if d.Display {
		declare = reg.MakeUnit
	}
	unit, err := declare(of.Dimension(), d.Symbol, d.Multiplier*of.Multiplier())
	if err != nil {
		return nil, Error.Wrap(err)
	}
	return unit, nil
}

// QuantityDefinition declares a base quantity with its base unit.
type QuantityDefinition struct {
	Name     string   `yaml:"name"`
	Unit     string   `yaml:"unit"`
	Prefixes []string `yaml:"prefixes,omitempty"`
}

// AliasDefinition adds another symbol for an existing unit.
type AliasDefinition struct {
	Symbol string `yaml:"symbol"`
	Unit   string `yaml:"unit"`
}

// Definitions is the layout of a YAML definitions file:
//
//	quantities:
//	  - {name: Information, unit: bit, prefixes: [SI, binary]}
//	units:
//	  - {symbol: nmi, multiplier: 1852, of: m}
//	aliases:
//	  - {symbol: hr, unit: h}
type Definitions struct {
	Quantities []QuantityDefinition `yaml:"quantities"`
	Units      []Definition         `yaml:"units"`
	Aliases    []AliasDefinition    `yaml:"aliases"`
}

// definitionsFile is Definitions as written in YAML, where a unit without a multiplier
// is the same size as its expression.
type definitionsFile struct {
	Quantities []QuantityDefinition `yaml:"quantities"`
	Units      []struct {
		Symbol      string   `yaml:"symbol"`
		Multiplier  *float64 `yaml:"multiplier"`
		Of          string   `yaml:"of"`
		Description string   `yaml:"description"`
		Display     bool     `yaml:"display"`
	} `yaml:"units"`
	Aliases []AliasDefinition `yaml:"aliases"`
}

// ParseDefinitions decodes a YAML definitions file.
func ParseDefinitions(r io.Reader) (*Definitions, error) {
	var file definitionsFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, Error.New("decoding definitions: %v", err)
	}

	defs := &Definitions{Quantities: file.Quantities, Aliases: file.Aliases}
	for _, u := range file.Units {
		multiplier := 1.0
		if u.Multiplier != nil {
			multiplier = *u.Multiplier
		}
		defs.Units = append(defs.Units, Definition{
			Symbol:      u.Symbol,
			Multiplier:  multiplier,
			Of:          u.Of,
			Description: u.Description,
			Display:     u.Display,
		})
	}

	return defs, nil
}

// LoadDefinitions reads a YAML definitions file into reg. Entries are applied in order
// (quantities, then units, then aliases) so later units can build on earlier ones. Every
// entry is attempted; the errors are combined.
func LoadDefinitions(r io.Reader, reg *units.Registry) error {
	defs, err := ParseDefinitions(r)
	if err != nil {
		return err
	}
	return defs.Apply(reg)
}

// Apply declares every definition on reg.
func (defs *Definitions) Apply(reg *units.Registry) error {
	var group errs.Group

	for _, q := range defs.Quantities {
		group.Add(q.apply(reg))
	}
	for _, d := range defs.Units {
		_, err := d.Apply(reg)
		group.Add(err)
	}
	for _, a := range defs.Aliases {
		unit, err := reg.ParseUnit(a.Unit)
		if err != nil {
			group.Add(Error.Wrap(err))
			continue
		}
		group.Add(Error.Wrap(reg.Alias(unit, a.Symbol)))
	}

	return group.Err()
}

func (q QuantityDefinition) apply(reg *units.Registry) error {
	prefixes, err := ParsePrefixes(reg, q.Prefixes)
	if err != nil {
		return err
	}

	base, err := reg.DefineBaseQuantity(q.Name, prefixes...)
	if err != nil {
		return Error.Wrap(err)
	}
	if q.Unit == "" {
		return nil
	}

	_, err = reg.MakeUnit(base.Dimension(), q.Unit, 1)
	return Error.Wrap(err)
}

// ParsePrefixes resolves prefix set names ("SI", "binary", "standard") and single prefix
// symbols ("k", "Mi").
func ParsePrefixes(reg *units.Registry, names []string) ([]*units.Prefix, error) {
	var result []*units.Prefix
	for _, name := range names {
		switch strings.ToLower(name) {
		case "si":
			result = append(result, units.SIPrefixes...)
		case "binary", "iec":
			result = append(result, units.BinaryPrefixes...)
		case "standard", "all":
			result = append(result, units.StandardPrefixes...)
		default:
			prefix, ok := reg.Prefix(name)
			if !ok {
				return nil, Error.New("unknown prefix %q", name)
			}
			result = append(result, prefix)
		}
	}
	return result, nil
}

func validMultiplier(m float64) bool {
	return !math.IsNaN(m) && !math.IsInf(m, 0) && m > 0
}
