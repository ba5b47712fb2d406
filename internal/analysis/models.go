package analysis

// CurveStats holds the descriptive statistics for one curve over the
// prepared table.
type CurveStats struct {
	Curve   string
	Count   int // valid (non-missing) samples
	Missing int
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Summary is the statistics block rendered into the report: one row per
// curve in table order, plus the table extent.
type Summary struct {
	Rows     int
	MinDepth float64
	MaxDepth float64
	Stats    []CurveStats
}
