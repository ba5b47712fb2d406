// Package config holds the YAML run configuration: which curves to plot,
// which must be present for a row to count, the high/low-cut ranges, the
// shale-fraction derivation and the fraction-track component list. Defaults
// reproduce the Kansas Geological Survey demo well setup.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/welllog_go/internal/fraction"
)

// Filter is one high/low-cut range applied to a curve: rows with
// low < value <= high are kept.
type Filter struct {
	Curve string  `yaml:"curve"`
	Low   float64 `yaml:"low"`
	High  float64 `yaml:"high"`
}

// Component configures one constituent of the fraction track. Series holds
// its fraction-at-depth samples; all components must supply series of equal
// length, spread evenly over the filtered depth range.
type Component struct {
	Name   string    `yaml:"name"`
	Color  string    `yaml:"color"`
	Series []float64 `yaml:"series"`
}

// Config is the full run configuration.
type Config struct {
	WellTitle   string      `yaml:"well_title"`
	Curves      []string    `yaml:"curves"`
	Required    []string    `yaml:"required"`
	Filters     []Filter    `yaml:"filters"`
	ShaleSource string      `yaml:"shale_source"`
	ShaleCurve  string      `yaml:"shale_curve"`
	DepthColumn string      `yaml:"depth_column"`
	Overlay     []string    `yaml:"overlay"`
	Components  []Component `yaml:"components"`
}

// Default returns the configuration of the reference workflow: six KGS
// curves, GR/DT/SPOR required, the standard petrophysical cut ranges, Vsh
// derived from gamma ray, and the four-component demo fraction series.
func Default() *Config {
	return &Config{
		Curves:   []string{"CNPOR", "GR", "RHOB", "DT", "MELCAL", "SPOR"},
		Required: []string{"GR", "DT", "SPOR"},
		Filters: []Filter{
			{Curve: "CNPOR", Low: -15, High: 50},
			{Curve: "GR", Low: 0, High: 250},
			{Curve: "RHOB", Low: 1, High: 3},
			{Curve: "DT", Low: 30, High: 140},
		},
		ShaleSource: "GR",
		ShaleCurve:  "Vsh",
		DepthColumn: "Depth",
		Overlay:     []string{"MELCAL", "RHOB"},
		Components: []Component{
			{Name: "Water", Color: "blue", Series: []float64{0.292, 0.333, 0.200, 0.458, 0.292}},
			{Name: "Shale", Color: "red", Series: []float64{0.083, 0.125, 0.167, 0.125, 0.083}},
			{Name: "Sand", Color: "yellow", Series: []float64{0.292, 0.333, 0.292, 0.083, 0.083}},
			{Name: "Carbonate", Color: "green", Series: []float64{0.333, 0.208, 0.341, 0.333, 0.542}},
		},
	}
}

// Load reads a YAML config file, filling unset fields from Default.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	def := Default()
	if len(cfg.Curves) == 0 {
		cfg.Curves = def.Curves
	}
	if len(cfg.Required) == 0 {
		cfg.Required = def.Required
	}
	if cfg.Filters == nil {
		cfg.Filters = def.Filters
	}
	if cfg.ShaleSource == "" {
		cfg.ShaleSource = def.ShaleSource
	}
	if cfg.ShaleCurve == "" {
		cfg.ShaleCurve = def.ShaleCurve
	}
	if cfg.DepthColumn == "" {
		cfg.DepthColumn = def.DepthColumn
	}
	if cfg.Overlay == nil {
		cfg.Overlay = def.Overlay
	}
	if len(cfg.Components) == 0 {
		cfg.Components = def.Components
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks internal consistency: resolvable colors, equal component
// series lengths, and filters/required referring to selected curves.
func (c *Config) Validate() error {
	selected := make(map[string]bool, len(c.Curves))
	for _, name := range c.Curves {
		selected[name] = true
	}
	for _, name := range c.Required {
		if !selected[name] {
			return fmt.Errorf("required curve %q is not among the selected curves", name)
		}
	}
	for _, f := range c.Filters {
		if !selected[f.Curve] {
			return fmt.Errorf("filter refers to unselected curve %q", f.Curve)
		}
		if f.Low >= f.High {
			return fmt.Errorf("filter for %q has low %.3f >= high %.3f", f.Curve, f.Low, f.High)
		}
	}
	if !selected[c.ShaleSource] {
		return fmt.Errorf("shale source curve %q is not among the selected curves", c.ShaleSource)
	}
	seriesLen := -1
	for _, comp := range c.Components {
		if _, err := ParseColor(comp.Color); err != nil {
			return fmt.Errorf("component %q: %w", comp.Name, err)
		}
		if seriesLen == -1 {
			seriesLen = len(comp.Series)
		} else if len(comp.Series) != seriesLen {
			return fmt.Errorf("component %q has %d series samples, want %d",
				comp.Name, len(comp.Series), seriesLen)
		}
	}
	return nil
}

// FractionComponents resolves the component list into the form consumed by
// the polygon builder and the fraction track, plus the positional series.
func (c *Config) FractionComponents() ([]fraction.Component, [][]float64, error) {
	comps := make([]fraction.Component, len(c.Components))
	series := make([][]float64, len(c.Components))
	for i, cc := range c.Components {
		col, err := ParseColor(cc.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("component %q: %w", cc.Name, err)
		}
		comps[i] = fraction.Component{Name: cc.Name, Color: col}
		series[i] = cc.Series
	}
	return comps, series, nil
}

var namedColors = map[string]color.RGBA{
	"blue":    {B: 0xff, A: 0xff},
	"red":     {R: 0xff, A: 0xff},
	"yellow":  {R: 0xff, G: 0xff, A: 0xff},
	"green":   {G: 0x80, A: 0xff},
	"black":   {A: 0xff},
	"cyan":    {G: 0xff, B: 0xff, A: 0xff},
	"magenta": {R: 0xff, B: 0xff, A: 0xff},
	"orange":  {R: 0xff, G: 0xa5, A: 0xff},
	"gray":    {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// ParseColor resolves a named color or a "#rrggbb" hex triplet.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("unreadable hex color %q", s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
