// seehuhn.de/go/chart - gridlines and coordinate transforms for 2D charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scene reads chart descriptions from TOML or YAML files.
//
// A scene gives the canvas size, the two axes and the data series of a
// chart.  Series are either listed point by point or produced by one of
// the generators of package testcases.  A minimal TOML scene looks like
// this:
//
//	width = 640
//	height = 480
//
//	[x]
//	scale = "log"
//	start = 1
//	stop = 1000
//
//	[[series]]
//	points = [[1, 0], [10, 20], [100, 40], [1000, 60]]
package scene

import (
	"fmt"
	"log/slog"
	"strings"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/testcases"
)

// Scene is the decoded content of a scene file.
type Scene struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// X and Y describe the axes.  A missing axis uses the chart
	// defaults.
	X *Axis `toml:"x" yaml:"x"`
	Y *Axis `toml:"y" yaml:"y"`

	Padding  *Padding `toml:"padding" yaml:"padding"`
	MaxTicks int      `toml:"max_ticks" yaml:"max_ticks"`

	// SortByX sorts every series by x before it is drawn.
	SortByX bool `toml:"sort_by_x" yaml:"sort_by_x"`

	Series []Series `toml:"series" yaml:"series"`
}

// Axis describes one chart axis.
type Axis struct {
	Scale        string  `toml:"scale" yaml:"scale"` // "linear" (default) or "log"
	Start        float64 `toml:"start" yaml:"start"`
	Stop         float64 `toml:"stop" yaml:"stop"`
	Increment    float64 `toml:"increment" yaml:"increment"`
	Subdivisions int     `toml:"subdivisions" yaml:"subdivisions"`
}

// Padding is the space reserved around the plot area, in pixels.
type Padding struct {
	Top    float64 `toml:"top" yaml:"top"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Left   float64 `toml:"left" yaml:"left"`
}

// Series is one data series.  Exactly one of Points and Generate must
// be set.
type Series struct {
	Points   [][2]float64 `toml:"points" yaml:"points"`
	Generate *Generator   `toml:"generate" yaml:"generate"`
}

// Generator describes synthetic data.
//
// Kind selects the generator: "line" (y = A + B*x), "logline"
// (y = A + B*log10(x), x spaced logarithmically), "sine"
// (Offset + Amplitude*sin(2πx/Period)) or "walk" (a Gaussian random
// walk from A with standard deviation Step per point).
type Generator struct {
	Kind string  `toml:"kind" yaml:"kind"`
	N    int     `toml:"n" yaml:"n"`
	From float64 `toml:"from" yaml:"from"`
	To   float64 `toml:"to" yaml:"to"`

	A float64 `toml:"a" yaml:"a"`
	B float64 `toml:"b" yaml:"b"`

	Amplitude float64 `toml:"amplitude" yaml:"amplitude"`
	Period    float64 `toml:"period" yaml:"period"`
	Offset    float64 `toml:"offset" yaml:"offset"`

	Seed uint64  `toml:"seed" yaml:"seed"`
	Step float64 `toml:"step" yaml:"step"`
}

// AxisConfig converts a to a chart axis configuration.  A nil Axis
// gives def.
func (a *Axis) AxisConfig(def chart.AxisConfig) (chart.AxisConfig, error) {
	if a == nil {
		return def, nil
	}
	cfg := chart.AxisConfig{
		Start:             a.Start,
		Stop:              a.Stop,
		MajorIncrement:    a.Increment,
		MinorSubdivisions: a.Subdivisions,
	}
	switch strings.ToLower(a.Scale) {
	case "", "linear":
		cfg.Scale = chart.Linear
	case "log", "logarithmic":
		cfg.Scale = chart.Logarithmic
	default:
		return chart.AxisConfig{}, fmt.Errorf("scene: unknown scale %q", a.Scale)
	}
	return cfg, nil
}

// Data returns the points of the series.
func (s *Series) Data() (chart.Series, error) {
	switch {
	case s.Generate != nil && s.Points != nil:
		return nil, fmt.Errorf("scene: series has both points and a generator")
	case s.Generate != nil:
		return s.Generate.Data()
	}
	res := make(chart.Series, len(s.Points))
	for i, p := range s.Points {
		res[i].X, res[i].Y = p[0], p[1]
	}
	return res, nil
}

// Data runs the generator.
func (g *Generator) Data() (chart.Series, error) {
	if g.N < 0 {
		return nil, fmt.Errorf("scene: negative point count %d", g.N)
	}
	switch strings.ToLower(g.Kind) {
	case "line":
		return testcases.Line(g.N, g.From, g.To, g.A, g.B), nil
	case "logline":
		if !(g.From > 0 && g.To > 0) {
			return nil, fmt.Errorf("scene: logline needs a positive range, got [%g, %g]", g.From, g.To)
		}
		return testcases.LogLine(g.N, g.From, g.To, g.A, g.B), nil
	case "sine":
		if g.Period == 0 {
			return nil, fmt.Errorf("scene: sine needs a non-zero period")
		}
		return testcases.Sine(g.N, g.From, g.To, g.Amplitude, g.Period, g.Offset), nil
	case "walk":
		return testcases.RandomWalk(g.Seed, g.N, g.From, g.To, g.A, g.Step), nil
	default:
		return nil, fmt.Errorf("scene: unknown generator %q", g.Kind)
	}
}

// Frame returns a chart frame for the scene, with all series written.
// It does not call Recompute, so axis errors are reported by the
// renderer.
func (s *Scene) Frame(logger *slog.Logger) (*chart.Frame, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid canvas size %dx%d", s.Width, s.Height)
	}
	x, err := s.X.AxisConfig(chart.DefaultXAxis())
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	y, err := s.Y.AxisConfig(chart.DefaultYAxis())
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	opts := &chart.Options{
		X:        x,
		Y:        y,
		MaxTicks: s.MaxTicks,
		Logger:   logger,
	}
	if p := s.Padding; p != nil {
		opts.Padding = &chart.Padding{Top: p.Top, Right: p.Right, Bottom: p.Bottom, Left: p.Left}
	}
	f := chart.New(opts)
	f.SetViewport(s.Width, s.Height)

	for slot := range s.Series {
		data, err := s.Series[slot].Data()
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", slot, err)
		}
		if s.SortByX {
			chart.SortByX(data)
		}
		if err := f.WriteSeries(slot, data); err != nil {
			return nil, err
		}
	}
	return f, nil
}
