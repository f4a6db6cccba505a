// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package currency turns an OpenExchangeRates table into units of a Currency base
// quantity, so that "12 EUR" converts to dollars like any other unit.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/zeebo/errs"

	"github.com/mikecarlton/units"
)

// Error is the class of all errors from this package.
var Error = errs.Class("currency")

const DefaultBaseURL = "https://openexchangerates.org/api"

// Rates follows the OpenExchangeRates API schema: one unit of Base buys Rates[code] of
// each other currency.
type Rates struct {
	Disclaimer string             `json:"disclaimer,omitempty"`
	License    string             `json:"license,omitempty"`
	Timestamp  int64              `json:"timestamp"`
	Base       string             `json:"base"`
	Rates      map[string]float64 `json:"rates"`
}

// Time returns when the rates were published.
func (r *Rates) Time() time.Time { return time.Unix(r.Timestamp, 0) }

// Codes returns the currency codes in the table, base included, sorted.
func (r *Rates) Codes() []string {
	codes := make([]string, 0, len(r.Rates)+1)
	codes = append(codes, r.Base)
	for code := range r.Rates {
		if code != r.Base {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Fetcher loads exchange rates from a JSON cache file, refreshing from the API when the
// cached latest rates are more than an hour old. Historical rates never expire.
type Fetcher struct {
	Client   *http.Client
	BaseURL  string // DefaultBaseURL if empty
	APIKey   string
	CacheDir string // no caching if empty
	Date     string // YYYY-MM-DD for historical rates, empty for the latest
	Now      func() time.Time
	Logger   *slog.Logger
}

// MaxAge is how long latest rates are served from the cache.
const MaxAge = time.Hour

// Get returns the rates, from the cache when fresh.
func (f *Fetcher) Get(ctx context.Context) (*Rates, error) {
	logger := f.logger()

	cacheFile := f.cacheFile()
	if cacheFile != "" {
		if cached, err := loadRates(cacheFile); err == nil {
			if !f.expired(cached) {
				logger.Debug("using cached rates", "file", cacheFile, "timestamp", cached.Timestamp)
				return cached, nil
			}
			logger.Debug("cached rates expired", "file", cacheFile, "timestamp", cached.Timestamp)
		}
	}

	if f.APIKey == "" {
		return nil, Error.New("no API key for %s", f.baseURL())
	}

	rates, err := f.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if cacheFile != "" {
		if err := saveRates(rates, cacheFile); err != nil {
			// the rates are still usable
			logger.Warn("failed to save rates to cache", "file", cacheFile, "error", err)
		}
	}

	return rates, nil
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger == nil {
		return slog.Default()
	}
	return f.Logger
}

func (f *Fetcher) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func (f *Fetcher) baseURL() string {
	if f.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimSuffix(f.BaseURL, "/")
}

// URL returns the API endpoint for current or historical rates.
func (f *Fetcher) URL() string {
	if f.Date != "" {
		return fmt.Sprintf("%s/historical/%s.json", f.baseURL(), f.Date)
	}
	return fmt.Sprintf("%s/latest.json", f.baseURL())
}

func (f *Fetcher) cacheFile() string {
	if f.CacheDir == "" {
		return ""
	}
	if f.Date != "" {
		return filepath.Join(f.CacheDir, fmt.Sprintf("%s-rates.json", f.Date))
	}
	return filepath.Join(f.CacheDir, "rates.json")
}

func (f *Fetcher) expired(rates *Rates) bool {
	if f.Date != "" {
		return false
	}
	return f.now().Sub(rates.Time()) > MaxAge
}

func (f *Fetcher) fetch(ctx context.Context) (*Rates, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	url := f.URL()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	req.Header.Set("Authorization", "Token "+f.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, Error.New("HTTP failure '%d' from '%s'", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	var rates Rates
	if err := json.Unmarshal(body, &rates); err != nil {
		return nil, Error.New("decoding %s: %v", url, err)
	}
	if rates.Base == "" || len(rates.Rates) == 0 {
		return nil, Error.New("no rates in response from %s", url)
	}

	f.logger().Debug("fetched rates", "url", url, "base", rates.Base, "count", len(rates.Rates))

	return &rates, nil
}

func loadRates(cacheFile string) (*Rates, error) {
	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, err
	}

	var rates Rates
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, err
	}

	return &rates, nil
}

func saveRates(rates *Rates, cacheFile string) error {
	if err := os.MkdirAll(filepath.Dir(cacheFile), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rates, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cacheFile, data, 0644)
}

// DefaultCacheDir is ~/data/currency.
func DefaultCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", Error.Wrap(err)
	}
	return filepath.Join(homeDir, "data", "currency"), nil
}

// LookupAPIKey finds the API key for source in the environment or, on macOS, in the
// login keychain.
func LookupAPIKey(source string) (string, error) {
	if apiKey := os.Getenv(source); apiKey != "" {
		return apiKey, nil
	}

	if runtime.GOOS == "darwin" {
		cmd := exec.Command("security", "find-generic-password", "-s", source, "-a", "api_key", "-w")
		if output, err := cmd.Output(); err == nil {
			if apiKey := strings.TrimSpace(string(output)); apiKey != "" {
				return apiKey, nil
			}
		}
	}

	return "", Error.New(`Please set api_key in security (macos) or the environment, e.g.
  export %s=$api_key
or
  security add-generic-password -s %s -a api_key -U -w $api_key`, source, source)
}

// Symbols maps currency signs and lowercase names to codes.
var Symbols = map[string]string{
	"$":   "USD",
	"usd": "USD",
	"€":   "EUR",
	"eur": "EUR",
	"£":   "GBP",
	"gbp": "GBP",
	"¥":   "JPY",
	"yen": "JPY",
	"jpy": "JPY",
	"btc": "BTC",
}

// Define declares the Currency base quantity on reg with one unit per code in rates. The
// base currency has multiplier 1 and is the only one used for display; every other code
// is worth 1/rate of it. Codes that collide with an existing unit symbol are skipped.
func Define(reg *units.Registry, rates *Rates, logger *slog.Logger) (*units.BaseQuantity, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if rates == nil || rates.Base == "" {
		return nil, Error.New("rates have no base currency")
	}

	quantity, err := reg.DefineBaseQuantity("Currency")
	if err != nil {
		return nil, Error.Wrap(err)
	}
	dim := quantity.Dimension()

	if _, err := reg.MakeUnit(dim, rates.Base, 1); err != nil {
		return nil, Error.Wrap(err)
	}

	for _, code := range rates.Codes() {
		rate := rates.Rates[code]
		if code == rates.Base {
			continue
		}
		if rate <= 0 {
			logger.Warn("skipping currency without a rate", "code", code, "rate", rate)
			continue
		}
		if _, err := reg.MakeUnlistedUnit(dim, code, 1/rate); err != nil {
			if units.SymbolConflictError.Has(err) {
				logger.Debug("skipping currency", "code", code, "error", err)
				continue
			}
			return nil, Error.Wrap(err)
		}
	}

	for symbol, code := range Symbols {
		unit, err := reg.Lookup(code)
		if err != nil || !unit.Dimension().Equal(dim) {
			continue
		}
		if err := reg.Alias(unit, symbol); err != nil {
			logger.Debug("skipping currency symbol", "symbol", symbol, "error", err)
		}
	}

	logger.Debug("defined currencies", "base", rates.Base, "count", len(rates.Rates), "date", rates.Time().UTC().Format(time.DateOnly))

	return quantity, nil
}
