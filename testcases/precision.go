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

var precisionCases = []Scenario{
	{
		Name:   "tiny_domain",
		Width:  400,
		Height: 300,
		X:      linear(0, 1e-6, 1e-7, 2),
		Y:      linear(0, 1e-3, 2e-4, 2),
		Series: []chart.Series{
			Line(20, 0, 1e-6, 0, 1000),
		},
	},
	{
		Name:   "large_offset",
		Width:  400,
		Height: 300,
		X:      linear(1e6, 1e6+1, 0.25, 5),
		Y:      linear(1e9, 1e9+100, 20, 4),
		Series: []chart.Series{
			Line(20, 1e6, 1e6+1, 1e9-100e6, 100),
		},
	},
	{
		Name:   "thirds",
		Width:  400,
		Height: 300,
		X:      linear(0, 1, 1.0/3, 3),
		Y:      linear(0, 1, 0.1, 0),
		Series: []chart.Series{
			Line(4, 0, 1, 0, 1),
		},
	},
}
