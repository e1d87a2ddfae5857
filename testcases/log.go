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

var logCases = []Scenario{
	{
		Name:   "decades",
		Width:  640,
		Height: 480,
		X:      logarithmic(1, 1000),
		Y:      linear(0, 60, 10, 2),
		Series: []chart.Series{
			LogLine(50, 1, 1000, 0, 20),
		},
	},
	{
		Name:   "partial_decades",
		Width:  640,
		Height: 480,
		X:      logarithmic(0.5, 5000),
		Y:      linear(-40, 100, 20, 4),
		Series: []chart.Series{
			LogLine(80, 0.5, 5000, -40, 30),
			LogLine(80, 0.5, 5000, 100, -30),
		},
	},
	{
		// no power of ten in the domain: minor ticks only
		Name:   "inside_one_decade",
		Width:  400,
		Height: 300,
		X:      logarithmic(20, 80),
		Y:      chart.DefaultYAxis(),
		Series: []chart.Series{
			LogLine(20, 20, 80, 0, 50),
		},
	},
	{
		Name:   "small_values",
		Width:  400,
		Height: 300,
		X:      logarithmic(1e-4, 1),
		Y:      linear(0, 1, 0.25, 5),
		Series: []chart.Series{
			LogLine(40, 1e-4, 1, 1, 0.25),
		},
	},
}
