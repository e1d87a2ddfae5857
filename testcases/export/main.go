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

// Command export writes the computed ticks, gridlines and clipped paths
// of every scenario to testdata/scenarios.json.  The file serves as a
// reference when porting the chart computations to other renderers.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/testcases"
)

const outFile = "testdata/scenarios.json"

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, s := range testcases.All[category] {
			js, err := toJSON(category, &s)
			if err != nil {
				panic(err)
			}
			out.Scenarios = append(out.Scenarios, js)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name   string           `json:"name"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
	X      jsonAxis         `json:"x"`
	Y      jsonAxis         `json:"y"`
	Major  [][4]float64     `json:"major_lines"`
	Minor  [][4]float64     `json:"minor_lines"`
	Paths  [][][][2]float64 `json:"paths"`
}

type jsonAxis struct {
	Scale     string    `json:"scale"`
	Start     float64   `json:"start"`
	Stop      float64   `json:"stop"`
	Slope     float64   `json:"slope"`
	Intercept float64   `json:"intercept"`
	Major     []float64 `json:"major"`
	Labels    []string  `json:"labels"`
	Minor     []float64 `json:"minor"`
}

func toJSON(category string, s *testcases.Scenario) (jsonScenario, error) {
	name := category + "_" + s.Name
	f, err := s.Frame(nil)
	if err != nil {
		return jsonScenario{}, err
	}
	if err := f.Recompute(); err != nil {
		return jsonScenario{}, fmt.Errorf("%s: %w", name, err)
	}

	js := jsonScenario{
		Name:   name,
		Width:  s.Width,
		Height: s.Height,
		X:      axisToJSON(f, chart.AxisX),
		Y:      axisToJSON(f, chart.AxisY),
	}
	major, minor := f.GridLines()
	js.Major = segmentsToJSON(major)
	js.Minor = segmentsToJSON(minor)
	for _, paths := range f.RenderPaths() {
		slot := make([][][2]float64, len(paths))
		for i, p := range paths {
			slot[i] = pointsToJSON(p)
		}
		js.Paths = append(js.Paths, slot)
	}
	return js, nil
}

func axisToJSON(f *chart.Frame, a chart.Axis) jsonAxis {
	cfg := f.AxisConfig(a)
	tr := f.Transform(a)
	ts := f.Ticks(a)
	return jsonAxis{
		Scale:     cfg.Scale.String(),
		Start:     cfg.Start,
		Stop:      cfg.Stop,
		Slope:     tr.Slope,
		Intercept: tr.Intercept,
		Major:     ts.Major,
		Labels:    ts.Labels,
		Minor:     ts.Minor,
	}
}

func segmentsToJSON(segs []chart.Segment) [][4]float64 {
	res := make([][4]float64, len(segs))
	for i, s := range segs {
		res[i] = [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y}
	}
	return res
}

func pointsToJSON(pts []vec.Vec2) [][2]float64 {
	res := make([][2]float64, len(pts))
	for i, p := range pts {
		res[i] = [2]float64{p.X, p.Y}
	}
	return res
}
