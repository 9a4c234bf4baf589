package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"capm-lab/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Chart   ChartConfig   `yaml:"chart" json:"chart"`
	Sliders SlidersConfig `yaml:"sliders" json:"sliders"`
	// Optional: directory of extra lab files (*.yaml), merged after
	// the built-in labs.
	LabDir string `yaml:"lab_dir" json:"-"`
}

type ChartConfig struct {
	Samples int `yaml:"samples" json:"samples"`
}

// SliderBounds describes one input widget. Bounds are advisory hints
// for UIs; the evaluator accepts values outside them.
type SliderBounds struct {
	Min     float64 `yaml:"min" json:"min"`
	Max     float64 `yaml:"max" json:"max"`
	Step    float64 `yaml:"step" json:"step"`
	Default float64 `yaml:"default" json:"default"`
}

type SlidersConfig struct {
	RiskFreeRate SliderBounds `yaml:"risk_free_rate" json:"risk_free_rate"`
	MarketReturn SliderBounds `yaml:"market_return" json:"market_return"`
	Beta         SliderBounds `yaml:"beta" json:"beta"`
}

// Default returns the configuration used when no file is given.
// Slider defaults match the default preset.
func Default() *Config {
	defaults := model.DefaultParams()
	return &Config{
		Chart: ChartConfig{Samples: model.DefaultCurveSamples},
		Sliders: SlidersConfig{
			RiskFreeRate: SliderBounds{Min: 0, Max: 0.10, Step: 0.001, Default: defaults.RiskFreeRate},
			MarketReturn: SliderBounds{Min: 0, Max: 0.20, Step: 0.005, Default: defaults.MarketReturn},
			Beta:         SliderBounds{Min: model.SMLBetaMin, Max: model.SMLBetaMax, Step: 0.05, Default: defaults.Beta},
		},
	}
}

// Load reads path, fills unset fields from Default, and validates.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	merged := Merge(*Default(), c)
	return &merged, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Two samples are the minimum that spans both curve endpoints.
	if c.Chart.Samples < 2 {
		return errors.New("chart.samples must be at least 2")
	}
	for _, s := range []struct {
		name   string
		bounds SliderBounds
	}{
		{"risk_free_rate", c.Sliders.RiskFreeRate},
		{"market_return", c.Sliders.MarketReturn},
		{"beta", c.Sliders.Beta},
	} {
		if err := s.bounds.validate(); err != nil {
			return fmt.Errorf("sliders.%s: %w", s.name, err)
		}
	}
	return nil
}

func (b SliderBounds) validate() error {
	if b.Min >= b.Max {
		return errors.New("min must be below max")
	}
	if b.Step <= 0 {
		return errors.New("step must be positive")
	}
	if b.Default < b.Min || b.Default > b.Max {
		return errors.New("default must fall within [min, max]")
	}
	return nil
}

// Merge overlays non-zero fields from override onto base. A config
// file only has to name the fields it changes.
func Merge(base, override Config) Config {
	out := base
	if override.Chart.Samples != 0 {
		out.Chart.Samples = override.Chart.Samples
	}
	out.Sliders.RiskFreeRate = mergeBounds(base.Sliders.RiskFreeRate, override.Sliders.RiskFreeRate)
	out.Sliders.MarketReturn = mergeBounds(base.Sliders.MarketReturn, override.Sliders.MarketReturn)
	out.Sliders.Beta = mergeBounds(base.Sliders.Beta, override.Sliders.Beta)
	if override.LabDir != "" {
		out.LabDir = override.LabDir
	}
	return out
}

// mergeBounds treats a fully zero SliderBounds as "not provided".
// Inside a provided block, zero keeps its literal meaning so a file
// can pin a minimum of exactly 0.
func mergeBounds(base, override SliderBounds) SliderBounds {
	if override == (SliderBounds{}) {
		return base
	}
	return override
}
