package lab

import (
	"errors"
	"strings"

	"capm-lab/internal/model"
)

// ErrLabNotFound is returned when a lab name matches nothing in the
// catalog.
var ErrLabNotFound = errors.New("lab not found")

// Lab is one guided exercise: a preset parameter tuple plus the
// scenario text a student works through. Applying a lab's preset
// overwrites all three inputs at once.
type Lab struct {
	Name      string       `json:"name" yaml:"name"`
	Title     string       `json:"title" yaml:"title"`
	Scenario  string       `json:"scenario" yaml:"scenario"`
	Objective string       `json:"objective" yaml:"objective"`
	Steps     []string     `json:"steps" yaml:"steps"`
	Preset    model.Params `json:"preset" yaml:"preset"`
}

// Builtin returns the five practical labs in display order. Preset
// values come from the built-in preset table so the two never drift.
func Builtin() []Lab {
	return []Lab{
		{
			Name:      "lab1",
			Title:     "Beta Sensitivity",
			Scenario:  "You're analyzing two stocks: one with beta 0.5 (defensive) and another with beta 2.0 (aggressive). How do their expected returns change as the market return fluctuates?",
			Objective: "Understand how beta amplifies or dampens market movements, and practice interpreting beta values.",
			Steps: []string{
				"Apply the lab preset: rf 2%, market return 8%, beta 1.5.",
				"Compare expected returns for beta 0.5 and beta 2.0.",
				"Increase the market return to 12% and observe how returns change.",
				"Decrease the market return to 4% and repeat the analysis.",
			},
			Preset: mustPreset("lab1"),
		},
		{
			Name:      "lab2",
			Title:     "Market Risk Premium Impact",
			Scenario:  "In a high-risk environment the market risk premium widens. How does this affect the expected return of assets with different betas?",
			Objective: "Explore the relationship between the market risk premium and expected returns, and why higher-risk environments favor aggressive stocks.",
			Steps: []string{
				"Apply the lab preset: rf 3%, market return 12%, beta 2.0.",
				"Compare expected returns for beta 1.0 and beta 1.5.",
				"Increase the market return to 15% and observe the impact.",
				"Decrease the market return to 5% and repeat the analysis.",
			},
			Preset: mustPreset("lab2"),
		},
		{
			Name:      "lab3",
			Title:     "Portfolio Construction",
			Scenario:  "You're constructing a portfolio from a defensive asset (beta 0.5) and an aggressive one (beta 2.0). How do you allocate weights to reach a target portfolio beta?",
			Objective: "Learn how assets combine into a blended risk level: portfolio beta is the weighted sum of component betas.",
			Steps: []string{
				"Apply the lab preset: rf 1%, market return 5%, beta 0.5.",
				"Allocate 60% to the defensive asset and 40% to the aggressive asset.",
				"Compute the portfolio beta as the weighted sum of component betas.",
				"Adjust the weights until the portfolio beta reaches a target such as 1.0.",
			},
			Preset: mustPreset("lab3"),
		},
		{
			Name:      "lab4",
			Title:     "Defensive vs Aggressive Stocks",
			Scenario:  "During downturns, defensive stocks (beta below 1) tend to hold up better than aggressive ones (beta above 1). How does the CAPM explain that behavior?",
			Objective: "Understand beta's role across market cycles and the trade-off between risk and return.",
			Steps: []string{
				"Apply the lab preset: rf 4%, market return 10%, beta 0.8.",
				"Compare expected returns for beta 0.5 and beta 1.5.",
				"Simulate a downturn by reducing the market return to 2% and observe the impact.",
			},
			Preset: mustPreset("lab4"),
		},
		{
			Name:      "lab5",
			Title:     "High-Risk Environments",
			Scenario:  "In volatile markets, aggressive stocks can deliver outsized returns while carrying significant risk. How does the CAPM help assess those opportunities?",
			Objective: "Explore the beta/return relationship in volatile markets and the importance of diversification.",
			Steps: []string{
				"Apply the lab preset: rf 2%, market return 6%, beta 1.2.",
				"Increase the market return to 15% and observe expected returns.",
				"Decrease the market return to 1% and repeat the analysis.",
			},
			Preset: mustPreset("lab5"),
		},
	}
}

func mustPreset(name string) model.Params {
	p, err := model.LookupPreset(name)
	if err != nil {
		panic(err)
	}
	return p.Params
}

// Catalog is the merged lab list: built-ins first, then any labs loaded
// from disk. Built-ins are never shadowed by file labs with the same
// name.
type Catalog struct {
	labs []Lab
}

// NewCatalog builds a catalog from the built-in labs plus extras.
// Extras whose name collides with a built-in (or an earlier extra) are
// dropped.
func NewCatalog(extra ...Lab) *Catalog {
	labs := Builtin()
	seen := make(map[string]bool, len(labs)+len(extra))
	for _, l := range labs {
		seen[strings.ToLower(l.Name)] = true
	}
	for _, l := range extra {
		key := strings.ToLower(l.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		labs = append(labs, l)
	}
	return &Catalog{labs: labs}
}

// All returns the catalog in display order.
func (c *Catalog) All() []Lab {
	out := make([]Lab, len(c.labs))
	copy(out, c.labs)
	return out
}

// Find looks a lab up by name (case-insensitive).
func (c *Catalog) Find(name string) (Lab, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, l := range c.labs {
		if strings.ToLower(l.Name) == want {
			return l, nil
		}
	}
	return Lab{}, ErrLabNotFound
}

// ResolvePreset maps a preset trigger name to its parameter tuple. The
// built-in table (default plus lab1..lab5) is consulted first, then
// labs loaded from disk.
func (c *Catalog) ResolvePreset(name string) (model.Params, error) {
	if p, err := model.LookupPreset(name); err == nil {
		return p.Params, nil
	}
	l, err := c.Find(name)
	if err != nil {
		return model.Params{}, model.ErrPresetNotFound
	}
	return l.Preset, nil
}
