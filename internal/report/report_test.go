package report

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/welllog_go/internal/analysis"
	"github.com/user/welllog_go/internal/curves"
	"github.com/user/welllog_go/internal/fraction"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func plotTable() curves.Table {
	depths := make([]float64, 20)
	gr := make([]float64, 20)
	dt := make([]float64, 20)
	for i := range depths {
		depths[i] = 3600 + float64(i)
		gr[i] = 50 + 30*math.Sin(float64(i)/3)
		dt[i] = 65 + 5*math.Cos(float64(i)/4)
	}
	t := curves.New(depths)
	t.AddColumn("Depth", depths)
	t.AddColumn("GR", gr)
	t.AddColumn("DT", dt)
	return t
}

func testSpecs() []TrackSpec {
	return []TrackSpec{
		{Label: "GR", Curves: []string{"GR"}, Colors: []color.Color{TrackPalette[0]}},
		{Label: "DT", Curves: []string{"DT"}, Colors: []color.Color{TrackPalette[1]}},
	}
}

func testPolygons(t *testing.T) ([]fraction.Polygon, []fraction.Component) {
	t.Helper()
	series := [][]float64{
		{0.3, 0.4, 0.2},
		{0.5, 0.3, 0.6},
	}
	polys, err := fraction.BuildPolygons(series, []float64{3600, 3610, 3619}, 3600, 3619)
	require.NoError(t, err)
	comps := []fraction.Component{
		{Name: "Water", Color: color.RGBA{B: 0xff, A: 0xff}},
		{Name: "Shale", Color: color.RGBA{R: 0xff, A: 0xff}},
	}
	return polys, comps
}

func TestTracksFigure(t *testing.T) {
	png, err := TracksFigure(plotTable(), "Depth", testSpecs(), "TEST WELL")
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:4])
}

func TestTracksFigureMissingCurve(t *testing.T) {
	specs := []TrackSpec{{Label: "SPOR", Curves: []string{"SPOR"}}}
	_, err := TracksFigure(plotTable(), "Depth", specs, "")
	var target *curves.MissingColumnError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "SPOR", target.Column)
}

func TestFractionFigure(t *testing.T) {
	polys, comps := testPolygons(t)
	png, err := FractionFigure(polys, comps, 3600, 3619, "TEST WELL")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestFractionFigureComponentMismatch(t *testing.T) {
	polys, comps := testPolygons(t)
	_, err := FractionFigure(polys, comps[:1], 3600, 3619, "")
	require.Error(t, err)
}

func TestCombinedFigure(t *testing.T) {
	polys, comps := testPolygons(t)
	png, err := CombinedFigure(plotTable(), "Depth", testSpecs(), polys, comps, "TEST WELL")
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestBuildPDFReport(t *testing.T) {
	polys, comps := testPolygons(t)
	figures := map[string][]byte{}
	var err error
	figures["tracks"], err = TracksFigure(plotTable(), "Depth", testSpecs(), "TEST WELL")
	require.NoError(t, err)
	figures["fraction"], err = FractionFigure(polys, comps, 3600, 3619, "TEST WELL")
	require.NoError(t, err)

	summary := analysis.Describe(plotTable())
	path := filepath.Join(t.TempDir(), "report.pdf")
	err = BuildPDFReport(path, "TEST WELL", summary, []string{"line 3: row skipped"}, figures, DefaultFigureDefs)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
