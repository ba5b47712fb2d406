package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The four demo component series of the reference well, closest-to-zero
// first.
var demoSeries = [][]float64{
	{0.292, 0.333, 0.200, 0.458, 0.292},
	{0.083, 0.125, 0.167, 0.125, 0.083},
	{0.292, 0.333, 0.292, 0.083, 0.083},
	{0.333, 0.208, 0.341, 0.333, 0.542},
}

var demoDepths = []float64{0, 1, 2, 3, 4}

func TestBuildPolygonsSingleComponent(t *testing.T) {
	polys, err := BuildPolygons([][]float64{demoSeries[0]}, demoDepths, 0, 4)
	require.NoError(t, err)
	require.Len(t, polys, 1)

	want := Polygon{
		{0, 4}, {0, 0},
		{0.292, 0}, {0.333, 1}, {0.200, 2}, {0.458, 3}, {0.292, 4},
	}
	assert.Equal(t, want, polys[0])
}

func TestCumulateTopBoundarySumsToOne(t *testing.T) {
	bounds, err := Cumulate(demoSeries, demoDepths)
	require.NoError(t, err)
	require.Len(t, bounds, 4)

	// 0.292+0.083+0.292+0.333 at the first sample of the last boundary.
	assert.InDelta(t, 1.0, bounds[3][0].Value, 1e-9)
	assert.Equal(t, demoDepths[0], bounds[3][0].Depth)
}

func TestBuildPolygonsBoundaryOrder(t *testing.T) {
	polys, err := BuildPolygons(demoSeries, demoDepths, 0, 4)
	require.NoError(t, err)
	require.Len(t, polys, 4)

	// Polygon k>0 starts with boundary k-1 forward and ends with boundary k
	// reversed: its first vertex is the lower boundary at the first depth,
	// its last vertex is the upper boundary at the first depth.
	for k := 1; k < 4; k++ {
		ring := polys[k]
		require.Len(t, ring, 2*len(demoDepths))
		assert.Equal(t, demoDepths[0], ring[0].Depth)
		assert.Equal(t, demoDepths[0], ring[len(ring)-1].Depth)
		assert.Less(t, ring[0].Value, ring[len(ring)-1].Value)
	}

	// The first polygon anchors to the zero baseline over the full extent.
	assert.Equal(t, Vertex{0, 4}, polys[0][0])
	assert.Equal(t, Vertex{0, 0}, polys[0][1])
}

func TestBuildPolygonsEmptyComponentList(t *testing.T) {
	polys, err := BuildPolygons(nil, demoDepths, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, polys)
}

func TestBuildPolygonsEmptyDepths(t *testing.T) {
	_, err := BuildPolygons([][]float64{{}}, nil, 0, 4)
	var target *EmptyDepthRangeError
	require.ErrorAs(t, err, &target)
}

func TestBuildPolygonsLengthMismatch(t *testing.T) {
	_, err := BuildPolygons([][]float64{{0.1, 0.2}}, demoDepths, 0, 4)
	var target *LengthMismatchError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 0, target.Series)
	assert.Equal(t, 2, target.SeriesLen)
	assert.Equal(t, 5, target.DepthLen)
}

func TestBuildPolygonsDeterministic(t *testing.T) {
	a, err := BuildPolygons(demoSeries, demoDepths, 0, 4)
	require.NoError(t, err)
	b, err := BuildPolygons(demoSeries, demoDepths, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
