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

// Package testcases provides named chart scenarios together with
// generators for synthetic data.
//
// The scenarios are shared by the unit tests of the chart and paint
// packages, by the benchmarks, and by the commands in the export and
// genpdf subdirectories, which write reference output for every
// scenario.
package testcases

import (
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
)

// Scenario describes one chart: axes, canvas size and data.
type Scenario struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // canvas width in pixels
	Height int    // canvas height in pixels

	X, Y chart.AxisConfig

	Padding  *chart.Padding // nil means chart.DefaultPadding
	MaxTicks int            // 0 means chart.DefaultMaxTicks

	// Series holds the data, one entry per slot.  Nil entries leave a
	// slot empty.
	Series []chart.Series
}

// Frame returns a new Frame set up for the scenario.  It does not call
// Recompute.
func (s *Scenario) Frame(logger *slog.Logger) (*chart.Frame, error) {
	f := chart.New(&chart.Options{
		X:        s.X,
		Y:        s.Y,
		Padding:  s.Padding,
		MaxTicks: s.MaxTicks,
		Logger:   logger,
	})
	f.SetViewport(s.Width, s.Height)
	for slot, data := range s.Series {
		if err := f.WriteSeries(slot, data); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	return f, nil
}

// linear returns a linear axis configuration.
func linear(start, stop, inc float64, sub int) chart.AxisConfig {
	return chart.AxisConfig{
		Scale:             chart.Linear,
		Start:             start,
		Stop:              stop,
		MajorIncrement:    inc,
		MinorSubdivisions: sub,
	}
}

// logarithmic returns a logarithmic axis configuration.
func logarithmic(start, stop float64) chart.AxisConfig {
	return chart.AxisConfig{
		Scale: chart.Logarithmic,
		Start: start,
		Stop:  stop,
	}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
