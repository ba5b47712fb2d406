package report

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/welllog_go/internal/curves"
	"github.com/user/welllog_go/internal/fraction"
)

// fractionPlot builds the stacked compositional track: one filled polygon
// ring per component, legend entries in component order, fraction on the
// horizontal axis and the inverted depth axis shared with the log tracks.
func fractionPlot(polys []fraction.Polygon, comps []fraction.Component, minDepth, maxDepth float64) (*plot.Plot, error) {
	if len(polys) != len(comps) {
		return nil, fmt.Errorf("%d polygons for %d components", len(polys), len(comps))
	}

	p := plot.New()
	p.X.Label.Text = "Fraction"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Min, p.Y.Max = minDepth, maxDepth
	p.Y.Tick.Marker = plot.ConstantTicks{}

	for i, ring := range polys {
		xys := make(plotter.XYs, len(ring))
		for j, v := range ring {
			xys[j] = plotter.XY{X: v.Value, Y: v.Depth}
		}
		pg, err := plotter.NewPolygon(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to create polygon for %s: %w", comps[i].Name, err)
		}
		pg.Color = comps[i].Color
		pg.LineStyle.Color = comps[i].Color
		pg.LineStyle.Width = vg.Points(0.5)
		p.Add(pg)
		p.Legend.Add(comps[i].Name, pg)
	}
	p.Legend.Top = true
	return p, nil
}

// FractionFigure renders the standalone fraction panel.
func FractionFigure(polys []fraction.Polygon, comps []fraction.Component, minDepth, maxDepth float64, title string) ([]byte, error) {
	p, err := fractionPlot(polys, comps, minDepth, maxDepth)
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.Y.Tick.Marker = plot.DefaultTicks{}
	p.Y.Label.Text = "Depth (ft)"

	writer, err := p.WriterTo(vg.Points(360), vg.Points(560), "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create figure writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to encode figure: %w", err)
	}
	return buf.Bytes(), nil
}

// CombinedFigure renders the log tracks with the fraction panel appended as
// the final track, all sharing the table's depth range.
func CombinedFigure(t curves.Table, depthCol string, specs []TrackSpec,
	polys []fraction.Polygon, comps []fraction.Component, title string) ([]byte, error) {

	minDepth, maxDepth, ok := curves.DepthRange(t)
	if !ok {
		return nil, &curves.EmptyTableError{Op: "CombinedFigure"}
	}

	plots := make([]*plot.Plot, 0, len(specs)+1)
	for i, spec := range specs {
		p, err := trackPlot(t, depthCol, spec, minDepth, maxDepth, i == 0)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			p.Title.Text = title
		}
		plots = append(plots, p)
	}
	fp, err := fractionPlot(polys, comps, minDepth, maxDepth)
	if err != nil {
		return nil, err
	}
	plots = append(plots, fp)

	return renderRow(plots, vg.Points(170*float64(len(plots))), vg.Points(560))
}
