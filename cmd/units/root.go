// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"

	"github.com/mikecarlton/units"
	"github.com/mikecarlton/units/currency"
	_ "github.com/mikecarlton/units/quantities"
	"github.com/mikecarlton/units/store"
)

// Environment variables override flag defaults, e.g. UNITS_DB or UNITS_RATES_DIR.
const envPrefix = "UNITS"

// API key name in the environment or keychain, see currency.LookupAPIKey.
const ratesSource = "openexchangerates"

type config struct {
	group       bool
	debug       bool
	trace       bool
	precision   int
	date        string
	db          string
	definitions string
	ratesDir    string
	ratesURL    string
	logLevel    string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func bindFlags(v *viper.Viper, sets ...*pflag.FlagSet) error {
	for _, set := range sets {
		if err := v.BindPFlags(set); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) config {
	return config{
		group:       v.GetBool("group"),
		debug:       v.GetBool("debug"),
		trace:       v.GetBool("trace"),
		precision:   v.GetInt("precision"),
		date:        v.GetString("date"),
		db:          v.GetString("db"),
		definitions: v.GetString("definitions"),
		ratesDir:    v.GetString("rates-dir"),
		ratesURL:    v.GetString("rates-url"),
		logLevel:    v.GetString("log-level"),
	}
}

func newLogger(level string, w io.Writer) *slog.Logger {
	l := slog.LevelWarn
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func rootCmd() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "units [flags] ARGUMENTS...",
		Short: "RPN calculator for quantities with units",
		Long:  longHelp(),
		Example: heredoc(`
            units 7m 3m +                 # 10 m
            units 100km 2h /              # 50 km/h
            units 1mi km                  # 1.6093 km
            units 12 ft m                 # 3.6576 m
            units 2000EUR USD             # rates from openexchangerates.org
        `),
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, v)
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context()); err != nil {
				return err
			}

			calc := newCalculator(s.reg, s.logger)
			calc.rates = s.rates
			calc.display = display{group: s.cfg.group, debug: s.cfg.debug, precision: s.cfg.precision}
			if s.cfg.trace {
				calc.trace = cmd.ErrOrStderr()
			}

			if err := calc.eval(cmd.Context(), args); err != nil {
				return err
			}
			calc.print(cmd.OutOrStdout())
			return nil
		},
	}

	// leave "-5" and friends to the calculator once arguments start
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().BoolP("group", "g", false, "Use ',' to group digits of the integer part")
	cmd.Flags().BoolP("debug", "d", false, "Show values in their own unit at full precision")
	cmd.Flags().BoolP("trace", "t", false, "Trace operations on stderr")
	cmd.Flags().IntP("precision", "p", 4, "Decimals shown for converted and dimensionless values")
	cmd.Flags().StringP("date", "D", "", "Date for currency conversion rates (e.g. 2022-01-01)")

	cmd.PersistentFlags().String("db", "", "SQLite database of user defined units (default ~/data/units.sqlite3)")
	cmd.PersistentFlags().String("definitions", "", "YAML file of extra quantities, units and aliases")
	cmd.PersistentFlags().String("rates-dir", "", "Directory caching currency rates (default ~/data/currency)")
	cmd.PersistentFlags().String("rates-url", currency.DefaultBaseURL, "Currency rates API")
	cmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	_ = cmd.PersistentFlags().MarkHidden("rates-url")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return bindFlags(v, cmd.Flags(), cmd.PersistentFlags())
	}

	cmd.AddCommand(
		listCmd(v),
		symbolCmd(v),
		defineCmd(v),
		undefineCmd(v),
	)

	return cmd
}

// session is the state shared by the commands: configuration, logger and the registry
// with user definitions loaded.
type session struct {
	cfg    config
	logger *slog.Logger
	reg    *units.Registry
}

func newSession(cmd *cobra.Command, v *viper.Viper) (*session, error) {
	cfg := loadConfig(v)

	logger := newLogger(cfg.logLevel, cmd.ErrOrStderr())
	slog.SetDefault(logger)

	return &session{cfg: cfg, logger: logger, reg: units.Default}, nil
}

func (s *session) dbPath() (string, error) {
	if s.cfg.db != "" {
		return s.cfg.db, nil
	}
	return store.DefaultPath()
}

func (s *session) openDB() (*store.DB, error) {
	path, err := s.dbPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path, s.logger)
}

// load applies the definitions file and then the stored units to the registry.
func (s *session) load(ctx context.Context) error {
	if s.cfg.definitions != "" {
		f, err := os.Open(s.cfg.definitions)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := store.LoadDefinitions(f, s.reg); err != nil {
			return errs.New("%s: %w", s.cfg.definitions, err)
		}
	}

	path, err := s.dbPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no unit database", "path", path)
		return nil
	}

	db, err := store.Open(path, s.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.LoadInto(ctx, s.reg)
	if err != nil {
		return err
	}
	s.logger.Debug("loaded stored units", "path", path, "count", n)

	return nil
}

// rates fetches exchange rates, from the cache when it is fresh.
func (s *session) rates(ctx context.Context) (*currency.Rates, error) {
	apiKey, keyErr := currency.LookupAPIKey(ratesSource)

	dir := s.cfg.ratesDir
	if dir == "" {
		var err error
		if dir, err = currency.DefaultCacheDir(); err != nil {
			return nil, err
		}
	}

	fetcher := &currency.Fetcher{
		BaseURL:  s.cfg.ratesURL,
		APIKey:   apiKey,
		CacheDir: dir,
		Date:     s.cfg.date,
		Logger:   s.logger,
	}

	rates, err := fetcher.Get(ctx)
	if err != nil && keyErr != nil {
		return nil, keyErr
	}
	return rates, err
}
