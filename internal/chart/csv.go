package chart

import (
	"encoding/csv"
	"os"
	"strconv"

	"capm-lab/internal/model"
)

// WriteCurveCSV writes an SML curve as CSV with a beta,expected_return
// header row, one row per sample in curve order.
func WriteCurveCSV(path string, points []model.SMLPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"beta", "expected_return"}); err != nil {
		return err
	}

	for _, pt := range points {
		row := []string{
			fmtFloat(pt.Beta),
			fmtFloat(pt.ExpectedReturn),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
