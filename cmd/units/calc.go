// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mikecarlton/units"
	"github.com/mikecarlton/units/currency"
)

// Calculator evaluates RPN arguments against a stack of quantities.
type Calculator struct {
	reg    *units.Registry
	stack  *Stack
	logger *slog.Logger

	// rates supplies exchange rates the first time a currency is mentioned; nil
	// disables currencies.
	rates func(context.Context) (*currency.Rates, error)

	trace   io.Writer
	display display
}

func newCalculator(reg *units.Registry, logger *slog.Logger) *Calculator {
	return &Calculator{
		reg:     reg,
		stack:   newStack(),
		logger:  logger,
		display: display{precision: 4},
	}
}

func (c *Calculator) eval(ctx context.Context, args []string) error {
	for _, arg := range args {
		if err := c.step(ctx, arg); err != nil {
			return fmt.Errorf("'%s': %w", arg, err)
		}
		if c.trace != nil {
			fmt.Fprintf(c.trace, "%-10s [%d] %s\n", arg, c.stack.size(), c.stack.oneline(c.display))
		}
	}
	return nil
}

func (c *Calculator) step(ctx context.Context, arg string) error {
	if alias, ok := STACKALIAS[arg]; ok {
		arg = alias
	}
	if op, ok := STACKOP[arg]; ok {
		return op(c.stack)
	}
	if _, ok := binaryOps[arg]; ok {
		return c.stack.binaryOp(arg)
	}
	if op, ok := strings.CutPrefix(arg, "@"); ok {
		if _, ok := binaryOps[op]; ok {
			return c.stack.reduce(op)
		}
	}
	if _, ok := unaryOps[arg]; ok {
		return c.stack.unaryOp(arg)
	}

	err := c.push(arg)
	if err != nil && c.wantsCurrency(err, arg) {
		if err := c.loadCurrency(ctx); err != nil {
			return err
		}
		err = c.push(arg)
	}
	return err
}

// push handles a quantity such as "7m" or "3", or a unit symbol applied to the top of
// the stack.
func (c *Calculator) push(arg string) error {
	q, err := c.reg.ParseQuantity(arg)
	if err == nil {
		c.stack.push(entry{quantity: q})
		return nil
	}

	unit, unitErr := c.reg.ParseUnit(arg)
	if unitErr == nil {
		return c.stack.apply(unit)
	}

	// the number parsed, so the quantity error names the bad symbol
	if units.UnknownSymbolError.Has(err) {
		return err
	}
	return unitErr
}

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// wantsCurrency reports whether arg failed on a symbol that looks like a currency and
// currencies are not loaded yet.
func (c *Calculator) wantsCurrency(err error, arg string) bool {
	if c.rates == nil || !units.UnknownSymbolError.Has(err) {
		return false
	}
	if _, ok := c.reg.BaseQuantity("Currency"); ok {
		return false
	}

	symbol := strings.TrimSpace(strings.TrimLeft(arg, "+-0123456789._"))
	if _, ok := currency.Symbols[symbol]; ok {
		return true
	}
	return currencyCode.MatchString(symbol)
}

func (c *Calculator) loadCurrency(ctx context.Context) error {
	rates, err := c.rates(ctx)
	if err != nil {
		return err
	}

	if _, err := currency.Define(c.reg, rates, c.logger); err != nil {
		return err
	}
	c.logger.Debug("loaded currencies", "base", rates.Base, "date", rates.Time().UTC().Format("2006-01-02"))

	return nil
}

func (c *Calculator) print(w io.Writer) {
	c.stack.print(w, c.display)
}
