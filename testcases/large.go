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

// largeCases have big canvases and long series, for benchmarks.
var largeCases = []Scenario{
	{
		Name:   "long_walk",
		Width:  2000,
		Height: 1500,
		X:      linear(0, 100, 10, 10),
		Y:      linear(-100, 100, 20, 4),
		Series: []chart.Series{
			RandomWalk(1, 100_000, 0, 100, 0, 0.5),
			RandomWalk(2, 100_000, 0, 100, 0, 0.5),
		},
	},
	{
		Name:     "dense_grid",
		Width:    2000,
		Height:   1500,
		X:        linear(0, 1, 0.01, 2),
		Y:        linear(0, 1, 0.01, 1),
		MaxTicks: 200,
		Series: []chart.Series{
			Sine(2000, 0, 1, 0.4, 0.1, 0.5),
		},
	},
}
