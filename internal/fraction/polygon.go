// Package fraction turns per-component fraction series sampled at shared
// depths into closed polygon rings for a stacked compositional track.
//
// Component k is drawn as the region between cumulative series k-1 and k.
// The first polygon is anchored to the zero baseline over the full depth
// extent; each later polygon reuses the previous cumulative boundary,
// traversed in reverse, as its lower edge. The renderer closes the ring
// between last and first vertex implicitly.
package fraction

import (
	"fmt"
	"image/color"
)

// Vertex is one (value, depth) pair of a polygon boundary.
type Vertex struct {
	Value float64
	Depth float64
}

// Polygon is a closed ordered ring of vertices. It is built once per render
// and never modified afterwards.
type Polygon []Vertex

// Component names one compositional constituent and the fill color used for
// its polygon. Components are matched positionally against the series list.
type Component struct {
	Name  string
	Color color.Color
}

// EmptyDepthRangeError reports a polygon build with no depth samples.
type EmptyDepthRangeError struct{}

func (e *EmptyDepthRangeError) Error() string {
	return "cannot build fraction polygons with zero depth samples"
}

// LengthMismatchError reports a component series whose length differs from
// the depth sequence.
type LengthMismatchError struct {
	Series    int
	SeriesLen int
	DepthLen  int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("component series %d has %d samples, want %d to match depths",
		e.Series, e.SeriesLen, e.DepthLen)
}

// Cumulate computes the running per-depth sums of the component series and
// zips each with its depth: out[k][i] = (series[0][i]+...+series[k][i], depths[i]).
// The depth sequence is assumed monotonic; it is never sorted here.
func Cumulate(series [][]float64, depths []float64) ([][]Vertex, error) {
	if len(series) == 0 {
		return nil, nil
	}
	if len(depths) == 0 {
		return nil, &EmptyDepthRangeError{}
	}
	for k, s := range series {
		if len(s) != len(depths) {
			return nil, &LengthMismatchError{Series: k, SeriesLen: len(s), DepthLen: len(depths)}
		}
	}
	out := make([][]Vertex, len(series))
	running := make([]float64, len(depths))
	for k, s := range series {
		row := make([]Vertex, len(depths))
		for i, v := range s {
			running[i] += v
			row[i] = Vertex{Value: running[i], Depth: depths[i]}
		}
		out[k] = row
	}
	return out, nil
}

// BuildPolygons constructs one closed ring per component. minDepth and
// maxDepth give the full vertical extent the baseline of the first polygon
// anchors to:
//
//	polygon 0 = (0, maxDepth), (0, minDepth), then cumulative boundary 0
//	polygon k = cumulative boundary k-1, then boundary k reversed
//
// An empty series list yields an empty result with no error.
func BuildPolygons(series [][]float64, depths []float64, minDepth, maxDepth float64) ([]Polygon, error) {
	bounds, err := Cumulate(series, depths)
	if err != nil || bounds == nil {
		return nil, err
	}

	polys := make([]Polygon, len(bounds))
	for k, upper := range bounds {
		var ring Polygon
		if k == 0 {
			ring = make(Polygon, 0, len(upper)+2)
			ring = append(ring, Vertex{Value: 0, Depth: maxDepth}, Vertex{Value: 0, Depth: minDepth})
			ring = append(ring, upper...)
		} else {
			lower := bounds[k-1]
			ring = make(Polygon, 0, len(lower)+len(upper))
			ring = append(ring, lower...)
			for i := len(upper) - 1; i >= 0; i-- {
				ring = append(ring, upper[i])
			}
		}
		polys[k] = ring
	}
	return polys, nil
}
