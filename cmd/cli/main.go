package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"capm-lab/internal/analysis"
	"capm-lab/internal/chart"
	"capm-lab/internal/lab"
	"capm-lab/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "eval":
		cmdEval(os.Args[2:])
	case "curve":
		cmdCurve(os.Args[2:])
	case "labs":
		cmdLabs(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli eval --rf 0.02 --rm 0.08 --beta 1.5 [--compare 0.5,2.0]")
	fmt.Println("  cli curve --rf 0.02 --rm 0.08 [--samples 100] [--out results/sml.csv]")
	fmt.Println("  cli labs [--dir path/to/labs]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - rates are decimal fractions (0.02 = 2%)")
	fmt.Println("  - eval accepts any real inputs; slider ranges are advisory only")
}

func cmdEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	rf := fs.Float64("rf", 0.02, "Risk-free rate (decimal fraction)")
	rm := fs.Float64("rm", 0.08, "Expected market return (decimal fraction)")
	beta := fs.Float64("beta", 1.0, "Asset beta")
	compare := fs.String("compare", "", "Optional comma-separated betas to evaluate alongside")
	_ = fs.Parse(args)

	expected := model.ExpectedReturn(*rf, *rm, *beta)
	fmt.Printf("Inputs: rf=%s rm=%s beta=%.2f (%s)\n",
		model.FormatPercent(*rf), model.FormatPercent(*rm), *beta, model.ClassifyBeta(*beta))
	fmt.Printf("Market risk premium: %s\n", model.FormatPercent(model.MarketRiskPremium(*rf, *rm)))
	fmt.Printf("Expected return:     %s\n", model.FormatPercent(expected))

	if *compare == "" {
		return
	}

	betas, err := parseBetas(*compare)
	if err != nil {
		fmt.Printf("bad --compare value: %v\n", err)
		os.Exit(2)
	}
	fmt.Println("")
	printSweep(analysis.BetaSweep(*rf, *rm, betas))
}

func cmdCurve(args []string) {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	rf := fs.Float64("rf", 0.02, "Risk-free rate (decimal fraction)")
	rm := fs.Float64("rm", 0.08, "Expected market return (decimal fraction)")
	samples := fs.Int("samples", model.DefaultCurveSamples, "Number of curve samples")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	points := model.Curve(*rf, *rm, *samples)
	if len(points) == 0 {
		fmt.Println("samples must be positive")
		os.Exit(2)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := chart.WriteCurveCSV(*outPath, points); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(points), *outPath)
		return
	}

	fmt.Printf("%-8s %-16s\n", "beta", "expected")
	for _, pt := range points {
		fmt.Printf("%-8.3f %-16s\n", pt.Beta, model.FormatPercent(pt.ExpectedReturn))
	}
}

func cmdLabs(args []string) {
	fs := flag.NewFlagSet("labs", flag.ExitOnError)
	dir := fs.String("dir", "", "Optional directory of extra lab files (*.yaml)")
	_ = fs.Parse(args)

	catalog, skipped := lab.LoadCatalog(*dir)
	for _, err := range skipped {
		fmt.Printf("skipping lab file: %v\n", err)
	}

	rows := analysis.CompareLabs(catalog.All())
	fmt.Printf("%-8s %-32s %-8s %-8s %-6s %-12s %-10s\n",
		"name", "title", "rf", "rm", "beta", "class", "expected")
	for _, r := range rows {
		fmt.Printf("%-8s %-32s %-8s %-8s %-6.2f %-12s %-10s\n",
			r.Name,
			r.Title,
			model.FormatPercent(r.Params.RiskFreeRate),
			model.FormatPercent(r.Params.MarketReturn),
			r.Params.Beta,
			r.Class,
			model.FormatPercent(r.ExpectedReturn),
		)
	}
}

func printSweep(rows []analysis.SweepRow) {
	fmt.Printf("%-8s %-12s %-10s\n", "beta", "class", "expected")
	for _, r := range rows {
		fmt.Printf("%-8.2f %-12s %-10s\n", r.Beta, r.Class, model.FormatPercent(r.ExpectedReturn))
	}
}

func parseBetas(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("parse beta %q: %w", p, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no betas given")
	}
	return out, nil
}
