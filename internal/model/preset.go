package model

import (
	"errors"
	"strings"
)

// ErrPresetNotFound is returned when a preset name matches nothing in
// the built-in table.
var ErrPresetNotFound = errors.New("preset not found")

// DefaultPresetName is the name of the reset tuple.
const DefaultPresetName = "default"

// Preset is a named, immutable bundle of CAPM inputs. Applying a preset
// overwrites all three inputs at once regardless of prior state.
type Preset struct {
	Name   string `json:"name" yaml:"name"`
	Params Params `json:"params" yaml:"params"`
}

// Presets returns the built-in trigger table: the reset default plus
// the five lab setups. Order is stable for display.
func Presets() []Preset {
	return []Preset{
		{Name: DefaultPresetName, Params: Params{RiskFreeRate: 0.02, MarketReturn: 0.08, Beta: 1.0}},
		{Name: "lab1", Params: Params{RiskFreeRate: 0.02, MarketReturn: 0.08, Beta: 1.5}},
		{Name: "lab2", Params: Params{RiskFreeRate: 0.03, MarketReturn: 0.12, Beta: 2.0}},
		{Name: "lab3", Params: Params{RiskFreeRate: 0.01, MarketReturn: 0.05, Beta: 0.5}},
		{Name: "lab4", Params: Params{RiskFreeRate: 0.04, MarketReturn: 0.10, Beta: 0.8}},
		{Name: "lab5", Params: Params{RiskFreeRate: 0.02, MarketReturn: 0.06, Beta: 1.2}},
	}
}

// LookupPreset finds a built-in preset by name (case-insensitive).
func LookupPreset(name string) (Preset, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets() {
		if p.Name == want {
			return p, nil
		}
	}
	return Preset{}, ErrPresetNotFound
}
