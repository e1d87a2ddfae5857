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

package testcases

import "seehuhn.de/go/chart"

var linearCases = []Scenario{
	{
		Name:   "defaults",
		Width:  640,
		Height: 480,
		X:      chart.DefaultXAxis(),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			Sine(200, 0, 1, 50, 0.5, 30),
		},
	},
	{
		Name:   "palette",
		Width:  640,
		Height: 480,
		X:      chart.DefaultXAxis(),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			Line(2, 0, 1, -30, 120),
			Line(2, 0, 1, -20, 100),
			Line(2, 0, 1, -10, 80),
			Line(2, 0, 1, 0, 60),
			Line(2, 0, 1, 10, 40),
			Line(2, 0, 1, 20, 20), // wraps around to the first colour
		},
	},
	{
		Name:   "no_minor",
		Width:  400,
		Height: 300,
		X:      linear(0, 10, 1, 0),
		Y:      linear(0, 100, 25, 0),
		Series: []chart.Series{
			Line(11, 0, 10, 0, 10),
		},
	},
	{
		Name:   "inexact_span",
		Width:  400,
		Height: 300,
		X:      linear(0, 1.05, 0.2, 4),
		Y:      linear(-1, 1, 0.5, 5),
		Series: []chart.Series{
			Sine(100, 0, 1.05, 1, 1, 0),
		},
	},
	{
		Name:   "unaligned_start",
		Width:  400,
		Height: 300,
		X:      linear(0.05, 1.05, 0.1, 5),
		Y:      linear(-35, 95, 20, 4),
		Series: []chart.Series{
			RandomWalk(1, 100, 0.05, 1.05, 30, 5),
		},
	},
	{
		Name:    "tight_padding",
		Width:   300,
		Height:  200,
		X:       linear(-5, 5, 1, 2),
		Y:       linear(-5, 5, 1, 2),
		Padding: &chart.Padding{Top: 4, Right: 4, Bottom: 20, Left: 24},
		Series: []chart.Series{
			Line(2, -5, 5, -5, 1),
			Line(2, -5, 5, 5, -1),
		},
	},
}
