// Package pipeline runs the full batch workflow: ingest a LAS file, prepare
// the curve table, compute statistics, build the fraction polygons, render
// the figures and write the report. Every stage takes explicit inputs and
// returns explicit outputs; there is no ambient state between stages.
package pipeline

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/user/welllog_go/internal/analysis"
	"github.com/user/welllog_go/internal/config"
	"github.com/user/welllog_go/internal/curves"
	"github.com/user/welllog_go/internal/fraction"
	"github.com/user/welllog_go/internal/parser"
	"github.com/user/welllog_go/internal/report"
)

// Options configures one run.
type Options struct {
	LASPath  string
	PDFPath  string // empty: skip the PDF report
	PlotsDir string // empty: skip standalone PNG files
	Config   *config.Config
	Logger   *zap.Logger
}

// Result carries every intermediate and final product of a run, mainly so
// tests can assert on the prepared table and polygons.
type Result struct {
	Well     *parser.WellLog
	Prepared curves.Table
	Summary  analysis.Summary
	Depths   []float64
	Polygons []fraction.Polygon
	Figures  map[string][]byte
}

// Prepare applies the curve-table preparation to an ingested table: select,
// drop incomplete rows, chain the range filters, derive the shale fraction,
// reindex depth into a column and sort by depth. Filters compound: each one
// runs on the previous filter's output.
func Prepare(t curves.Table, cfg *config.Config, logger *zap.Logger) (curves.Table, error) {
	selected, err := curves.Select(t, cfg.Curves...)
	if err != nil {
		return curves.Table{}, fmt.Errorf("curve selection: %w", err)
	}
	logger.Debug("selected curves", zap.Strings("curves", cfg.Curves), zap.Int("rows", selected.NumRows()))

	dropped, err := curves.DropIncomplete(selected, cfg.Required...)
	if err != nil {
		return curves.Table{}, fmt.Errorf("dropping incomplete rows: %w", err)
	}
	logger.Info("dropped incomplete rows",
		zap.Strings("required", cfg.Required),
		zap.Int("before", selected.NumRows()),
		zap.Int("after", dropped.NumRows()))

	filtered := dropped
	for _, f := range cfg.Filters {
		next, err := curves.FilterRange(filtered, f.Curve, f.Low, f.High)
		if err != nil {
			return curves.Table{}, fmt.Errorf("range filter on %s: %w", f.Curve, err)
		}
		logger.Debug("applied range filter",
			zap.String("curve", f.Curve),
			zap.Float64("low", f.Low),
			zap.Float64("high", f.High),
			zap.Int("rows", next.NumRows()))
		filtered = next
	}

	derived, err := curves.DeriveShaleFraction(filtered, cfg.ShaleSource, cfg.ShaleCurve)
	if err != nil {
		return curves.Table{}, fmt.Errorf("deriving %s: %w", cfg.ShaleCurve, err)
	}

	prepared := curves.SortByDepth(curves.ReindexToColumn(derived, cfg.DepthColumn))
	logger.Info("table prepared", zap.Int("rows", prepared.NumRows()), zap.Strings("curves", prepared.Names))
	return prepared, nil
}

// trackSpecs builds one track per plotted curve plus, when configured, a
// trailing overlay track combining several curves in one axis.
func trackSpecs(cfg *config.Config) []report.TrackSpec {
	plotted := append(append([]string(nil), cfg.Curves...), cfg.ShaleCurve)
	colorOf := make(map[string]int, len(plotted))

	specs := make([]report.TrackSpec, 0, len(plotted)+1)
	for i, name := range plotted {
		colorOf[name] = i % len(report.TrackPalette)
		specs = append(specs, report.TrackSpec{
			Label:  name,
			Curves: []string{name},
			Colors: []color.Color{report.TrackPalette[colorOf[name]]},
		})
	}
	if len(cfg.Overlay) > 0 {
		spec := report.TrackSpec{Label: strings.Join(cfg.Overlay, ", "), Curves: cfg.Overlay}
		for _, name := range cfg.Overlay {
			idx, ok := colorOf[name]
			if !ok {
				idx = len(colorOf) % len(report.TrackPalette)
			}
			spec.Colors = append(spec.Colors, report.TrackPalette[idx])
		}
		specs = append(specs, spec)
	}
	return specs
}

// Run executes the pipeline end to end.
func Run(opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger.Info("reading LAS file", zap.String("path", opts.LASPath))
	well, err := parser.ParseFile(opts.LASPath)
	if err != nil {
		return nil, err
	}
	logger.Info("parsed well log",
		zap.String("well", well.WellName),
		zap.Int("rows", len(well.Table.Depths)),
		zap.Int("curves", len(well.CurveNames)),
		zap.Int("warnings", len(well.Warnings)))
	for _, w := range well.Warnings {
		logger.Warn("ingest warning", zap.String("detail", w))
	}

	prepared, err := Prepare(well.CurveTable(), cfg, logger)
	if err != nil {
		return nil, err
	}

	summary := analysis.Describe(prepared)
	logger.Info("computed curve statistics",
		zap.Int("rows", summary.Rows),
		zap.Float64("min_depth", summary.MinDepth),
		zap.Float64("max_depth", summary.MaxDepth))

	comps, series, err := cfg.FractionComponents()
	if err != nil {
		return nil, err
	}
	var depths []float64
	var polys []fraction.Polygon
	if len(series) > 0 && len(series[0]) > 0 {
		// Component series are sampled evenly over the prepared depth range.
		depths = make([]float64, len(series[0]))
		floats.Span(depths, summary.MinDepth, summary.MaxDepth)
		polys, err = fraction.BuildPolygons(series, depths, summary.MinDepth, summary.MaxDepth)
		if err != nil {
			return nil, fmt.Errorf("building fraction polygons: %w", err)
		}
		logger.Info("built fraction polygons", zap.Int("components", len(polys)))
	}

	title := cfg.WellTitle
	if title == "" {
		title = well.WellName
	}
	specs := trackSpecs(cfg)

	figures := make(map[string][]byte)
	figures["tracks"], err = report.TracksFigure(prepared, cfg.DepthColumn, specs, title)
	if err != nil {
		return nil, fmt.Errorf("rendering track figure: %w", err)
	}
	if len(polys) > 0 {
		figures["fraction"], err = report.FractionFigure(polys, comps, summary.MinDepth, summary.MaxDepth, title)
		if err != nil {
			return nil, fmt.Errorf("rendering fraction figure: %w", err)
		}
		figures["combined"], err = report.CombinedFigure(prepared, cfg.DepthColumn, specs, polys, comps, title)
		if err != nil {
			return nil, fmt.Errorf("rendering combined figure: %w", err)
		}
	}
	logger.Info("rendered figures", zap.Int("count", len(figures)))

	if opts.PlotsDir != "" {
		if err := os.MkdirAll(opts.PlotsDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating plots dir: %w", err)
		}
		for key, png := range figures {
			path := filepath.Join(opts.PlotsDir, key+".png")
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return nil, fmt.Errorf("writing %s: %w", path, err)
			}
			logger.Info("wrote figure", zap.String("path", path))
		}
	}

	if opts.PDFPath != "" {
		if err := report.BuildPDFReport(opts.PDFPath, title, summary, well.Warnings, figures, report.DefaultFigureDefs); err != nil {
			return nil, fmt.Errorf("writing PDF report: %w", err)
		}
		logger.Info("wrote PDF report", zap.String("path", opts.PDFPath))
	}

	return &Result{
		Well:     well,
		Prepared: prepared,
		Summary:  summary,
		Depths:   depths,
		Polygons: polys,
		Figures:  figures,
	}, nil
}
