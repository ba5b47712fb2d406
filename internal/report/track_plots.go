package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/user/welllog_go/internal/curves"
)

// TrackSpec describes one vertical track of the log display: the curves
// drawn in it (more than one makes an overlay track) and their line colors.
type TrackSpec struct {
	Label  string
	Curves []string
	Colors []color.Color
}

// TrackPalette is the line color assigned to track i when no explicit color
// is configured. Order follows the reference display.
var TrackPalette = []color.Color{
	color.RGBA{G: 0x80, A: 0xff},                   // green
	color.RGBA{R: 0xff, A: 0xff},                   // red
	color.RGBA{A: 0xff},                            // black
	color.RGBA{B: 0xff, A: 0xff},                   // blue
	color.RGBA{G: 0xbb, B: 0xbb, A: 0xff},          // cyan
	color.RGBA{R: 0xbb, B: 0xbb, A: 0xff},          // magenta
	color.RGBA{R: 0xff, G: 0xa5, A: 0xff},          // orange
	color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, // gray
}

// trackPlot builds one track: the named curves against depth, depth axis
// inverted so depth increases downward, horizontal extent spanning the
// plotted curves' min and max.
func trackPlot(t curves.Table, depthCol string, spec TrackSpec, minDepth, maxDepth float64, firstTrack bool) (*plot.Plot, error) {
	depths, ok := t.Column(depthCol)
	if !ok {
		return nil, &curves.MissingColumnError{Column: depthCol}
	}

	p := plot.New()
	p.X.Label.Text = spec.Label
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Min, p.Y.Max = minDepth, maxDepth
	p.Add(plotter.NewGrid())
	if firstTrack {
		p.Y.Label.Text = "Depth (ft)"
	} else {
		// Depth labels only on the leftmost track.
		p.Y.Tick.Marker = plot.ConstantTicks{}
	}

	xLo, xHi := math.Inf(1), math.Inf(-1)
	for ci, name := range spec.Curves {
		col, ok := t.Column(name)
		if !ok {
			return nil, &curves.MissingColumnError{Column: name}
		}
		pts := make(plotter.XYs, 0, len(col))
		for i, v := range col {
			if math.IsNaN(v) {
				continue
			}
			pts = append(pts, plotter.XY{X: v, Y: depths[i]})
			if v < xLo {
				xLo = v
			}
			if v > xHi {
				xHi = v
			}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("failed to create line for %s: %w", name, err)
		}
		if ci < len(spec.Colors) {
			line.Color = spec.Colors[ci]
		}
		line.LineStyle.Width = vg.Points(1)
		p.Add(line)
	}
	if xLo <= xHi {
		p.X.Min, p.X.Max = xLo, xHi
	}
	return p, nil
}

// renderRow composes the plots side by side into a single PNG, one column
// per track, and returns the encoded bytes.
func renderRow(plots []*plot.Plot, width, height vg.Length) ([]byte, error) {
	img := vgimg.New(width, height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}
	buf := new(bytes.Buffer)
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to encode figure: %w", err)
	}
	return buf.Bytes(), nil
}

// TracksFigure renders the multi-track log display: one sub-axis per track
// spec, shared inverted depth range, title above the first track.
func TracksFigure(t curves.Table, depthCol string, specs []TrackSpec, title string) ([]byte, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("no tracks to plot")
	}
	minDepth, maxDepth, ok := curves.DepthRange(t)
	if !ok {
		return nil, &curves.EmptyTableError{Op: "TracksFigure"}
	}

	plots := make([]*plot.Plot, 0, len(specs))
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
	return renderRow(plots, vg.Points(170*float64(len(plots))), vg.Points(560))
}
