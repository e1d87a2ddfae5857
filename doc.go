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

// Package chart computes the geometry of 2D line charts: gridline
// positions and labels for linear and logarithmic axes, the mapping
// from data coordinates to pixels, and the clipping of data series to
// the visible window.
//
// The package never draws.  A [Frame] collects the axis configurations,
// the viewport size and the data series of one chart, and hands out
// ticks, transforms and pixel-space polylines.  A renderer, such as the
// one in seehuhn.de/go/chart/paint, turns these into strokes and text.
//
// All operations are synchronous and allocate only their results.
// Invalid axes are reported as [*DegenerateAxisError], and axes which
// would need too many gridlines as [*TickOverflowError].
package chart
