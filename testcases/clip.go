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

import (
	"math"

	"seehuhn.de/go/chart"
)

var clipCases = []Scenario{
	{
		// the sine leaves the window at the top and at the bottom
		Name:   "overshoot",
		Width:  640,
		Height: 480,
		X:      chart.DefaultXAxis(),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			Sine(300, -0.2, 1.2, 120, 0.4, 30),
		},
	},
	{
		Name:   "all_outside",
		Width:  400,
		Height: 300,
		X:      chart.DefaultXAxis(),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			{pt(-100, 1000), pt(100, 1000)},
			{pt(-100, -1000), pt(-50, 1000)},
		},
	},
	{
		Name:   "gaps",
		Width:  400,
		Height: 300,
		X:      chart.DefaultXAxis(),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			{pt(0, 0), pt(0.2, 40), pt(0.3, math.NaN()), pt(0.5, 20), pt(0.8, 80)},
			nil,
			{pt(0.6, 60)},
		},
	},
	{
		Name:   "unsorted",
		Width:  400,
		Height: 300,
		X:      chart.DefaultXAxis(),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			Shuffled(7, Line(10, 0, 1, -20, 100)),
		},
	},
	{
		Name:   "log_below_zero",
		Width:  400,
		Height: 300,
		X:      logarithmic(1, 100),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			{pt(-5, 0), pt(0, 20), pt(10, 40), pt(1000, 60)},
		},
	},
}
