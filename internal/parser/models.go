package parser

// DefaultNull is the null marker assumed when the ~Well section does not
// declare one. -999.25 is the conventional LAS null value.
const DefaultNull = -999.25

// WellLog is the parsed content of one LAS file: the well identity, the
// curve mnemonics in file order, and the measurement table keyed by depth.
// The first curve of the file is the depth index and is not repeated in
// Table. All null-marker values have already been converted to NaN.
type WellLog struct {
	WellName   string
	NullValue  float64
	DepthName  string   // mnemonic of the index curve, e.g. "DEPT"
	CurveNames []string // non-index curves, file order
	Table      Table
	Warnings   []string // non-fatal anomalies collected during parsing
}

// Table is the raw ingested measurement grid before any preparation.
// Depths and each column in Columns have equal length.
type Table struct {
	Depths  []float64
	Columns map[string][]float64
}

func newWellLog() *WellLog {
	return &WellLog{
		NullValue:  DefaultNull,
		CurveNames: make([]string, 0),
		Table:      Table{Columns: make(map[string][]float64)},
		Warnings:   make([]string, 0),
	}
}
