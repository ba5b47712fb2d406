package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/welllog_go/internal/curves"
)

func TestDescribe(t *testing.T) {
	tbl := curves.New([]float64{100, 101, 102, 103})
	tbl.AddColumn("GR", []float64{10, 20, 30, 40})
	tbl.AddColumn("DT", []float64{60, math.NaN(), 80, math.NaN()})

	sum := Describe(tbl)
	assert.Equal(t, 4, sum.Rows)
	assert.Equal(t, 100.0, sum.MinDepth)
	assert.Equal(t, 103.0, sum.MaxDepth)
	require.Len(t, sum.Stats, 2)

	gr := sum.Stats[0]
	assert.Equal(t, "GR", gr.Curve)
	assert.Equal(t, 4, gr.Count)
	assert.Equal(t, 0, gr.Missing)
	assert.InDelta(t, 25.0, gr.Mean, 1e-12)
	assert.Equal(t, 10.0, gr.Min)
	assert.Equal(t, 40.0, gr.Max)

	dt := sum.Stats[1]
	assert.Equal(t, 2, dt.Count)
	assert.Equal(t, 2, dt.Missing)
	assert.InDelta(t, 70.0, dt.Mean, 1e-12)
}

func TestDescribeAllMissingCurve(t *testing.T) {
	tbl := curves.New([]float64{100, 101})
	tbl.AddColumn("SPOR", []float64{math.NaN(), math.NaN()})

	sum := Describe(tbl)
	require.Len(t, sum.Stats, 1)
	assert.Equal(t, 0, sum.Stats[0].Count)
	assert.Equal(t, 2, sum.Stats[0].Missing)
	assert.True(t, math.IsNaN(sum.Stats[0].Mean))
}
