// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mikecarlton/units"
	"github.com/mikecarlton/units/enumerable"
	"github.com/mikecarlton/units/store"
)

func listCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known units by dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, v)
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context()); err != nil {
				return err
			}

			// Units() is ordered by dimension, so each group is one dimension
			listed := enumerable.Filter(s.reg.Units(), func(u *units.Unit) bool {
				return !u.Dimension().IsDimensionless()
			})
			groups := enumerable.GroupBy(listed, (*units.Unit).Dimension)

			width := enumerable.Reduce(groups, 0, func(width int, group []*units.Unit) int {
				return max(width, len([]rune(group[0].Dimension().String())))
			})

			w := cmd.OutOrStdout()
			for _, group := range groups {
				dim := group[0].Dimension()
				name := dim.String()
				symbols := enumerable.Map(group, (*units.Unit).Symbol)
				fmt.Fprintf(w, "%s%s  %s", name, strings.Repeat(" ", width-len([]rune(name))), strings.Join(symbols, " "))
				if prefixes := dim.Prefixes(); len(prefixes) > 0 {
					fmt.Fprintf(w, "  (prefixes: %s)", strings.Join(enumerable.Map(prefixes, (*units.Prefix).Symbol), " "))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func symbolCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "symbol EXPRESSION...",
		Short: "Show how unit expressions parse",
		Example: heredoc(`
            units symbol kg*m/s^2         # kg*m/s² = N  [Force]
        `),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, v)
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context()); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, arg := range args {
				powers, err := units.ParseSymbol(arg)
				if err != nil {
					return err
				}
				unit, err := s.reg.ParseUnit(arg)
				if err != nil {
					return err
				}

				fmt.Fprintf(w, "%s = %s  [%s]", units.FormatPowers(powers), unit.Symbol(), unit.Dimension())
				if unit.Multiplier() != 1 {
					fmt.Fprintf(w, "  x%s", strconv.FormatFloat(unit.Multiplier(), 'g', -1, 64))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func defineCmd(v *viper.Viper) *cobra.Command {
	var (
		description string
		show        bool
	)

	cmd := &cobra.Command{
		Use:   "define SYMBOL MULTIPLIER UNIT",
		Short: "Store a unit as a multiple of a unit expression",
		Example: heredoc(`
            units define kn 1 nmi/h       # knots
            units define furlong 201.168 m
        `),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, v)
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context()); err != nil {
				return err
			}

			multiplier, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("number argument required for multiplier, cannot parse '%s'", args[1])
			}
			d := store.Definition{
				Symbol:      args[0],
				Multiplier:  multiplier,
				Of:          args[2],
				Description: description,
				Display:     show,
			}
			// declaring it first rejects unknown expressions and taken symbols
			if _, err := d.Apply(s.reg); err != nil {
				return err
			}

			db, err := s.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Save(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s %s\n", d.Symbol, strconv.FormatFloat(d.Multiplier, 'g', -1, 64), d.Of)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Description of the unit")
	cmd.Flags().BoolVar(&show, "display", false, "Consider the unit when choosing how to display quantities")

	return cmd
}

func undefineCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "undefine SYMBOL...",
		Short: "Remove stored units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, v)
			if err != nil {
				return err
			}

			db, err := s.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			for _, symbol := range args {
				found, err := db.Delete(cmd.Context(), symbol)
				if err != nil {
					return err
				}
				if !found {
					return store.Error.New("no stored unit '%s'", symbol)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", symbol)
			}
			return nil
		},
	}
}
