// Package analysis computes descriptive statistics over a prepared curve
// table. The summary feeds the PDF report and is the basis for eyeballing
// out-of-range values before the high/low-cut filters are tuned.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/user/welllog_go/internal/curves"
)

// Describe computes per-curve statistics for every curve in the table, in
// table order. Missing values are excluded from the moments; a curve with no
// valid samples reports NaN moments.
func Describe(t curves.Table) Summary {
	sum := Summary{Rows: t.NumRows()}
	if min, max, ok := curves.DepthRange(t); ok {
		sum.MinDepth, sum.MaxDepth = min, max
	}

	for _, name := range t.Names {
		col, _ := t.Column(name)
		valid := make([]float64, 0, len(col))
		for _, v := range col {
			if !math.IsNaN(v) {
				valid = append(valid, v)
			}
		}

		cs := CurveStats{
			Curve:   name,
			Count:   len(valid),
			Missing: len(col) - len(valid),
			Mean:    math.NaN(),
			StdDev:  math.NaN(),
			Min:     math.NaN(),
			Max:     math.NaN(),
		}
		if len(valid) > 0 {
			cs.Mean = stat.Mean(valid, nil)
			if len(valid) > 1 {
				cs.StdDev = stat.StdDev(valid, nil)
			} else {
				cs.StdDev = 0
			}
			cs.Min, cs.Max = valid[0], valid[0]
			for _, v := range valid[1:] {
				if v < cs.Min {
					cs.Min = v
				}
				if v > cs.Max {
					cs.Max = v
				}
			}
		}
		sum.Stats = append(sum.Stats, cs)
	}
	return sum
}
