// Package curves holds the depth-indexed curve table and the preparation
// steps applied to it before statistics and plotting: projection, removal of
// incomplete rows, high/low-cut range filtering, the derived shale-fraction
// curve and reindexing of the depth axis into an ordinary column.
//
// Missing measurements are NaN. The ingest layer converts the raw null
// marker to NaN before a Table is ever constructed, so every operation here
// treats NaN as the only absence marker. All operations return a new Table
// and never mutate their input.
package curves

import (
	"math"
	"sort"
)

// Table is an ordered set of rows indexed by depth, with named float64
// columns. Names preserves column order; Cells maps each name to a slice of
// per-row values aligned with Depths.
type Table struct {
	Depths []float64
	Names  []string
	Cells  map[string][]float64
}

// New creates an empty table over the given depths.
func New(depths []float64) Table {
	return Table{
		Depths: append([]float64(nil), depths...),
		Names:  make([]string, 0),
		Cells:  make(map[string][]float64),
	}
}

// NumRows returns the row count.
func (t Table) NumRows() int { return len(t.Depths) }

// HasColumn reports whether the named curve exists.
func (t Table) HasColumn(name string) bool {
	_, ok := t.Cells[name]
	return ok
}

// Column returns the values of the named curve aligned with Depths.
func (t Table) Column(name string) ([]float64, bool) {
	c, ok := t.Cells[name]
	return c, ok
}

// AddColumn appends a curve to the table. The values slice must have one
// entry per row; it is copied.
func (t *Table) AddColumn(name string, values []float64) {
	if !t.HasColumn(name) {
		t.Names = append(t.Names, name)
	}
	t.Cells[name] = append([]float64(nil), values...)
}

// clone performs a deep copy.
func (t Table) clone() Table {
	out := New(t.Depths)
	for _, name := range t.Names {
		out.AddColumn(name, t.Cells[name])
	}
	return out
}

// keepRows builds a new table containing only the rows where keep is true,
// preserving row order.
func (t Table) keepRows(keep []bool) Table {
	out := Table{Names: append([]string(nil), t.Names...), Cells: make(map[string][]float64)}
	for i, k := range keep {
		if k {
			out.Depths = append(out.Depths, t.Depths[i])
		}
	}
	for _, name := range t.Names {
		src := t.Cells[name]
		dst := make([]float64, 0, len(out.Depths))
		for i, k := range keep {
			if k {
				dst = append(dst, src[i])
			}
		}
		out.Cells[name] = dst
	}
	return out
}

// Select returns a projection holding only the requested curves, in the
// given order. The depth index is carried along unchanged.
func Select(t Table, columns ...string) (Table, error) {
	out := New(t.Depths)
	for _, name := range columns {
		src, ok := t.Cells[name]
		if !ok {
			return Table{}, &MissingColumnError{Column: name}
		}
		out.AddColumn(name, src)
	}
	return out, nil
}

// DropIncomplete removes every row where one or more of the required curves
// is missing (NaN). Curves not listed may still hold NaN in retained rows.
func DropIncomplete(t Table, required ...string) (Table, error) {
	for _, name := range required {
		if !t.HasColumn(name) {
			return Table{}, &MissingColumnError{Column: name}
		}
	}
	keep := make([]bool, t.NumRows())
	for i := range keep {
		keep[i] = true
		for _, name := range required {
			if math.IsNaN(t.Cells[name][i]) {
				keep[i] = false
				break
			}
		}
	}
	return t.keepRows(keep), nil
}

// FilterRange retains rows where low < value <= high for the named curve.
// Rows where the curve is missing are dropped. The bounds follow the usual
// high/low-cut convention: the low bound is exclusive, the high inclusive.
func FilterRange(t Table, column string, low, high float64) (Table, error) {
	src, ok := t.Cells[column]
	if !ok {
		return Table{}, &MissingColumnError{Column: column}
	}
	keep := make([]bool, t.NumRows())
	for i, v := range src {
		keep[i] = !math.IsNaN(v) && v > low && v <= high
	}
	return t.keepRows(keep), nil
}

// DeriveShaleFraction appends a curve named target holding the min-max
// normalization of source over all rows currently in the table:
// (v - min) / (max - min). Missing source values yield a missing result.
// A source with zero spread normalizes to all zeros.
func DeriveShaleFraction(t Table, source, target string) (Table, error) {
	src, ok := t.Cells[source]
	if !ok {
		return Table{}, &MissingColumnError{Column: source}
	}
	if t.NumRows() == 0 {
		return Table{}, &EmptyTableError{Op: "DeriveShaleFraction"}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range src {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		// Every source value is missing.
		return Table{}, &EmptyTableError{Op: "DeriveShaleFraction"}
	}
	span := hi - lo
	out := t.clone()
	derived := make([]float64, t.NumRows())
	for i, v := range src {
		switch {
		case math.IsNaN(v):
			derived[i] = math.NaN()
		case span == 0:
			derived[i] = 0
		default:
			derived[i] = (v - lo) / span
		}
	}
	out.AddColumn(target, derived)
	return out, nil
}

// ReindexToColumn exposes the depth index as an ordinary named curve in the
// first column position. The depth slice itself is retained, so rows stay
// addressable by position and no information is lost.
func ReindexToColumn(t Table, name string) Table {
	out := New(t.Depths)
	out.AddColumn(name, t.Depths)
	for _, n := range t.Names {
		out.AddColumn(n, t.Cells[n])
	}
	return out
}

// SortByDepth returns the table with rows stably reordered by ascending
// depth. Plotting expects a monotonic depth axis; ingest order is not
// guaranteed to provide one.
func SortByDepth(t Table) Table {
	idx := make([]int, t.NumRows())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return t.Depths[idx[a]] < t.Depths[idx[b]] })

	out := Table{Names: append([]string(nil), t.Names...), Cells: make(map[string][]float64)}
	out.Depths = make([]float64, t.NumRows())
	for i, j := range idx {
		out.Depths[i] = t.Depths[j]
	}
	for _, name := range t.Names {
		src := t.Cells[name]
		dst := make([]float64, t.NumRows())
		for i, j := range idx {
			dst[i] = src[j]
		}
		out.Cells[name] = dst
	}
	return out
}

// MinMax returns the smallest and largest non-missing values of the named
// curve. ok is false when the curve is absent or holds no valid values.
func MinMax(t Table, column string) (lo, hi float64, ok bool) {
	src, present := t.Cells[column]
	if !present {
		return 0, 0, false
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range src {
		if math.IsNaN(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// DepthRange returns the minimum and maximum depth of the table.
func DepthRange(t Table) (min, max float64, ok bool) {
	if t.NumRows() == 0 {
		return 0, 0, false
	}
	min, max = t.Depths[0], t.Depths[0]
	for _, d := range t.Depths[1:] {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max, true
}
