// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/units"
)

func newRegistry(t *testing.T) *units.Registry {
	t.Helper()

	reg := units.NewRegistry()
	distance := reg.MustDefineBaseQuantity("Distance", units.SIPrefixes...)
	duration := reg.MustDefineBaseQuantity("Duration")
	reg.MustMakeUnit(distance.Dimension(), "m", 1)
	reg.MustMakeUnit(duration.Dimension(), "s", 1)
	reg.MustMakeUnit(duration.Dimension(), "h", 3600)

	return reg
}

func openDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "data", "units.sqlite3"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSaveListDelete(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	require.NoError(t, db.Save(ctx, Definition{Symbol: "nmi", Multiplier: 1852, Of: "m", Description: "nautical mile"}))
	require.NoError(t, db.Save(ctx, Definition{Symbol: "kn", Multiplier: 1, Of: "nmi/h"}))

	defs, err := db.List(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, "nmi", defs[0].Symbol)
	assert.Equal(t, 1852.0, defs[0].Multiplier)
	assert.Equal(t, "m", defs[0].Of)
	assert.Equal(t, "nautical mile", defs[0].Description)
	assert.False(t, defs[0].CreatedAt.IsZero())
	assert.Equal(t, "kn", defs[1].Symbol)

	// replace
	require.NoError(t, db.Save(ctx, Definition{Symbol: "nmi", Multiplier: 1852.0, Of: "m", Display: true}))
	d, err := db.Get(ctx, "nmi")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.Display)
	assert.Empty(t, d.Description)

	deleted, err := db.Delete(ctx, "kn")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = db.Delete(ctx, "kn")
	require.NoError(t, err)
	assert.False(t, deleted)

	d, err = db.Get(ctx, "kn")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestSaveInvalid(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	for _, d := range []Definition{
		{Symbol: "", Multiplier: 1, Of: "m"},
		{Symbol: "x", Multiplier: 1},
		{Symbol: "x", Multiplier: -1, Of: "m"},
		{Symbol: "x", Multiplier: 0, Of: "m"},
	} {
		assert.True(t, Error.Has(db.Save(ctx, d)), "%+v", d)
	}
}

func TestLoadInto(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	reg := newRegistry(t)

	require.NoError(t, db.Save(ctx, Definition{Symbol: "nmi", Multiplier: 1852, Of: "m"}))
	require.NoError(t, db.Save(ctx, Definition{Symbol: "kn", Multiplier: 1, Of: "nmi/h"}))
	require.NoError(t, db.Save(ctx, Definition{Symbol: "fur", Multiplier: 201.168, Of: "furlongs"}))

	loaded, err := db.LoadInto(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)

	q, err := reg.ParseQuantity("10 kn")
	require.NoError(t, err)
	n, err := q.ToNumber(reg.MustParseUnit("km/h"))
	require.NoError(t, err)
	assert.InDelta(t, 18.52, n, 1e-9)

	_, err = reg.Lookup("fur")
	assert.True(t, units.UnknownSymbolError.Has(err))
}

func TestLoadDefinitions(t *testing.T) {
	reg := newRegistry(t)

	err := LoadDefinitions(strings.NewReader(`
quantities:
  - name: Information
    unit: bit
    prefixes: [SI, Ki, Mi]
units:
  - symbol: B
    multiplier: 8
    of: bit
    display: true
  - symbol: ftm
    multiplier: 1.8288
    of: m
    description: fathom
aliases:
  - {symbol: hr, unit: h}
  - {symbol: byte, unit: B}
`), reg)
	require.NoError(t, err)

	information, ok := reg.BaseQuantity("Information")
	require.True(t, ok)
	assert.Len(t, information.Dimension().Prefixes(), len(units.SIPrefixes)+2)
	assert.Len(t, information.Dimension().NamedUnits(), 2)

	q, err := reg.ParseQuantity("2 KiB")
	require.NoError(t, err)
	n, err := q.ToNumber(reg.MustParseUnit("bit"))
	require.NoError(t, err)
	assert.Equal(t, 16384.0, n)

	hr, err := reg.Lookup("hr")
	require.NoError(t, err)
	assert.Equal(t, "h", hr.Symbol())

	ftm, err := reg.Lookup("ftm")
	require.NoError(t, err)
	assert.Equal(t, 1.8288, ftm.Multiplier())
	assert.NotContains(t, ftm.Dimension().NamedUnits(), ftm)
}

func TestLoadDefinitionsErrors(t *testing.T) {
	reg := newRegistry(t)

	err := LoadDefinitions(strings.NewReader(`
quantities:
  - {name: Distance, unit: m}
  - {name: Luck, prefixes: [zz]}
units:
  - {symbol: ok, multiplier: 2, of: m}
  - {symbol: bad, multiplier: 2, of: parsec}
aliases:
  - {symbol: m, unit: s}
`), reg)
	require.Error(t, err)
	assert.True(t, Error.Has(err))

	// valid entries still apply
	_, err = reg.Lookup("ok")
	assert.NoError(t, err)

	err = LoadDefinitions(strings.NewReader("units: [{symbol: nothing, multiplier: 0, of: m}]"), reg)
	assert.True(t, units.InvalidUnitError.Has(err))
	_, err = reg.Lookup("nothing")
	assert.True(t, units.UnknownSymbolError.Has(err))

	require.NoError(t, LoadDefinitions(strings.NewReader("units: [{symbol: metre, of: m}]"), reg))
	metre, err := reg.Lookup("metre")
	require.NoError(t, err)
	assert.Equal(t, 1.0, metre.Multiplier())

	err = LoadDefinitions(strings.NewReader("units: [{symbol: x, colour: red}]"), reg)
	assert.True(t, Error.Has(err))

	assert.NoError(t, LoadDefinitions(strings.NewReader(""), reg))
}
