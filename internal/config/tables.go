package config

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// DefaultYear is the year used by the command line when no year is given
const DefaultYear = 2025

// ErrUnsupportedYear is returned for years without a shipped table
var ErrUnsupportedYear = errors.New("no configuration available for given year")

//go:embed years/*.yaml
var yearTables embed.FS

// yearFiles maps the supported years to their embedded table
var yearFiles = func() map[int]string {
	files := map[int]string{}
	entries, err := yearTables.ReadDir("years")
	if err != nil {
		panic(fmt.Sprintf("embedded year tables unreadable: %v", err))
	}
	for _, entry := range entries {
		year, err := strconv.Atoi(strings.TrimSuffix(entry.Name(), ".yaml"))
		if err != nil {
			continue
		}
		files[year] = path.Join("years", entry.Name())
	}
	return files
}()

// SupportedYears returns the years with a shipped table in ascending order
func SupportedYears() []int {
	years := lo.Keys(yearFiles)
	slices.Sort(years)
	return years
}

// ForYear creates the configuration for the given year.
// Every call returns a fresh configuration that the caller may modify.
func ForYear(year int) (*domain.TaxYearConfig, error) {
	file, ok := yearFiles[year]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedYear, year)
	}

	data, err := yearTables.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read table for %d: %w", year, err)
	}

	cfg, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("table for %d: %w", year, err)
	}
	if cfg.Year != year {
		return nil, fmt.Errorf("table for %d declares year %d", year, cfg.Year)
	}
	return cfg, nil
}

// MustForYear is ForYear for the shipped years; it panics on error
func MustForYear(year int) *domain.TaxYearConfig {
	cfg, err := ForYear(year)
	if err != nil {
		panic(err)
	}
	return cfg
}

func parseTable(data []byte) (*domain.TaxYearConfig, error) {
	var cfg domain.TaxYearConfig

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Marshal renders a year table as YAML
func Marshal(cfg *domain.TaxYearConfig) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to render YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
