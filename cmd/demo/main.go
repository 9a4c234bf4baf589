package main

import (
	"flag"
	"fmt"

	"capm-lab/internal/analysis"
	"capm-lab/internal/chart"
	"capm-lab/internal/lab"
	"capm-lab/internal/model"
)

// Demo:
// - Evaluate the default preset
// - Show a handful of SML samples and the chart payload pieces
// - Walk the lab catalog with its computed expected returns
// - Price a small two-asset portfolio
func main() {
	samples := flag.Int("samples", 7, "Number of SML samples to print")
	flag.Parse()

	p := model.DefaultParams()
	fmt.Println("=== Point evaluation (default preset) ===")
	fmt.Printf("rf=%s rm=%s beta=%.2f\n",
		model.FormatPercent(p.RiskFreeRate), model.FormatPercent(p.MarketReturn), p.Beta)
	fmt.Printf("market risk premium: %s\n", model.FormatPercent(p.MarketRiskPremium()))
	fmt.Printf("expected return:     %s (%s)\n",
		model.FormatPercent(p.ExpectedReturn()), model.ClassifyBeta(p.Beta))

	fmt.Println("")
	fmt.Println("=== Security Market Line samples ===")
	for _, pt := range model.Curve(p.RiskFreeRate, p.MarketReturn, *samples) {
		fmt.Printf("beta=%.2f -> %s\n", pt.Beta, model.FormatPercent(pt.ExpectedReturn))
	}

	ch := chart.Build(p, model.DefaultCurveSamples)
	fmt.Println("")
	fmt.Println("=== Chart payload ===")
	fmt.Printf("title: %s\n", ch.Title)
	fmt.Printf("sml points: %d, asset at (%.2f, %s), risk-free line at y=%s\n",
		len(ch.SML), ch.Asset.Beta,
		model.FormatPercent(ch.Asset.ExpectedReturn),
		model.FormatPercent(ch.RiskFreeLine.Y))

	fmt.Println("")
	fmt.Println("=== Lab catalog ===")
	catalog, _ := lab.LoadCatalog("")
	for _, row := range analysis.CompareLabs(catalog.All()) {
		fmt.Printf("%-6s beta=%.2f (%s) -> %s\n",
			row.Name, row.Params.Beta, row.Class, model.FormatPercent(row.ExpectedReturn))
	}

	// The lab3 exercise: 60% defensive (beta 0.5), 40% aggressive (beta 2.0).
	fmt.Println("")
	fmt.Println("=== Portfolio (60% beta 0.5, 40% beta 2.0) ===")
	result, err := analysis.PortfolioReturn(p.RiskFreeRate, p.MarketReturn, []model.WeightedBeta{
		{Weight: 0.6, Beta: 0.5},
		{Weight: 0.4, Beta: 2.0},
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("portfolio beta=%.2f (%s) -> %s\n",
		result.Beta, result.Class, model.FormatPercent(result.ExpectedReturn))
}
