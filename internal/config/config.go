package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"solar-calculator/internal/calculator"
	"solar-calculator/internal/model"
	"solar-calculator/internal/report"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load the size table from a separate YAML (e.g. examples/catalog.yaml).
	// Entries in Catalog override the ones loaded from CatalogFile.
	CatalogFile string           `yaml:"catalog_file"`
	Catalog     map[string][]int `yaml:"catalog"`

	// Pointers so an explicit zero is kept (and validated) instead of
	// falling back to the default.
	UnitsPerKW *float64 `yaml:"units_per_kw"`
	ExportRate *float64 `yaml:"export_rate"`
	Currency   string   `yaml:"currency"`
}

// Default mirrors the built-in calculator constants and catalog.
func Default() *Config {
	p := calculator.DefaultParams()
	c := &Config{
		Catalog:    map[string][]int{},
		UnitsPerKW: &p.UnitsPerKW,
		ExportRate: &p.ExportRate,
		Currency:   p.Currency,
	}
	for cat, sizes := range calculator.DefaultCatalog() {
		c.Catalog[string(cat)] = sizes
	}
	return c
}

// Load reads path, overlays it on Default and validates the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	override, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c := Merge(Default(), override)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// LoadUnchecked loads and merges the catalog file, but does not validate or apply defaults.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.CatalogFile != "" {
		catalogPath := c.CatalogFile
		if !filepath.IsAbs(catalogPath) {
			// Prefer paths relative to the config file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), catalogPath)
			if _, err := os.Stat(cand); err == nil {
				catalogPath = cand
			}
		}
		loaded, err := loadCatalogFile(catalogPath)
		if err != nil {
			return nil, err
		}
		c.Catalog = MergeCatalog(loaded, c.Catalog)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	catalog, err := c.ToCatalog()
	if err != nil {
		return err
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("catalog invalid: %w", err)
	}
	if err := c.ToParams().Validate(); err != nil {
		return fmt.Errorf("params invalid: %w", err)
	}
	if err := report.ValidateCurrency(c.Currency); err != nil {
		return err
	}
	return nil
}

// ToParams treats unset constants as zero, which Validate rejects for UnitsPerKW.
func (c *Config) ToParams() calculator.Params {
	p := calculator.Params{Currency: c.Currency}
	if c.UnitsPerKW != nil {
		p.UnitsPerKW = *c.UnitsPerKW
	}
	if c.ExportRate != nil {
		p.ExportRate = *c.ExportRate
	}
	return p
}

// ToCatalog resolves catalog keys (slugs or labels) to categories.
func (c *Config) ToCatalog() (calculator.Catalog, error) {
	out := calculator.Catalog{}
	for key, sizes := range c.Catalog {
		cat, err := model.ParseCategory(key)
		if err != nil || key == "" {
			return nil, fmt.Errorf("catalog key %q: %w", key, model.ErrUnknownCategory)
		}
		out[cat] = append([]int(nil), sizes...)
	}
	return out, nil
}

// Calculator builds the calculator described by c.
func (c *Config) Calculator() (*calculator.Calculator, error) {
	catalog, err := c.ToCatalog()
	if err != nil {
		return nil, err
	}
	return calculator.New(catalog, c.ToParams())
}

type catalogFileWrapper struct {
	Catalog map[string][]int `yaml:"catalog"`
}

func loadCatalogFile(path string) (map[string][]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w catalogFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return w.Catalog, nil
}

// Merge overlays the fields set in override onto base.
func Merge(base, override *Config) *Config {
	out := *base
	out.Catalog = MergeCatalog(base.Catalog, override.Catalog)
	if override.CatalogFile != "" {
		out.CatalogFile = override.CatalogFile
	}
	if override.UnitsPerKW != nil {
		v := *override.UnitsPerKW
		out.UnitsPerKW = &v
	}
	if override.ExportRate != nil {
		v := *override.ExportRate
		out.ExportRate = &v
	}
	if override.Currency != "" {
		out.Currency = override.Currency
	}
	return &out
}

// MergeCatalog replaces whole category entries from override; it never merges sizes.
func MergeCatalog(base, override map[string][]int) map[string][]int {
	out := make(map[string][]int, len(base)+len(override))
	for k, v := range base {
		out[canonicalKey(k)] = v
	}
	for k, v := range override {
		if len(v) > 0 {
			out[canonicalKey(k)] = v
		}
	}
	return out
}

// canonicalKey maps labels to slugs so an override replaces the default entry
// instead of sitting next to it.
func canonicalKey(k string) string {
	if cat, err := model.ParseCategory(k); err == nil && k != "" {
		return string(cat)
	}
	return k
}
