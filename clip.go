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

package chart

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Series is an ordered list of data points in domain coordinates.
// The order of the points is the order in which they are connected.
type Series []vec.Vec2

// SortByX sorts s by increasing x value.  Points with equal x keep their
// relative order.  The chart never sorts series itself; this is an
// optional preprocessing step for callers whose data arrives unordered.
func SortByX(s Series) {
	slices.SortStableFunc(s, func(a, b vec.Vec2) int {
		return cmp.Compare(a.X, b.X)
	})
}

// Window is the visible part of the domain.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// WindowOf returns the window spanned by an x and a y axis configuration.
func WindowOf(x, y AxisConfig) Window {
	return Window{XMin: x.Start, XMax: x.Stop, YMin: y.Start, YMax: y.Stop}
}

// Snap moves p onto the nearest point of w.  Each coordinate is clamped
// independently, so points outside the window end up on its boundary.
func (w Window) Snap(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: clamp(p.X, w.XMin, w.XMax),
		Y: clamp(p.Y, w.YMin, w.YMax),
	}
}

// Contains reports whether p lies in w, boundary included.
func (w Window) Contains(p vec.Vec2) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// ClippedPath is a polyline in pixel coordinates.  The first point is
// the start of the line; every further point is connected to its
// predecessor by a straight segment.
type ClippedPath []vec.Vec2

// Data converts the polyline to a path which can be stroked.
func (c ClippedPath) Data() *path.Data {
	p := &path.Data{}
	for i, pt := range c {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	return p
}

// Clip converts a series to pixel space.  Points outside w are snapped
// to the edge of w before transforming, so that lines leaving the
// visible area run along its border instead of disappearing.  Points
// with a NaN coordinate are skipped.
//
// A non-empty series yields exactly one path; an empty series yields
// none.
func Clip(s Series, tx, ty Transform, w Window) []ClippedPath {
	var out ClippedPath
	for _, p := range s {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		q := w.Snap(p)
		out = append(out, vec.Vec2{X: tx.Apply(q.X), Y: ty.Apply(q.Y)})
	}
	if len(out) == 0 {
		return nil
	}
	return []ClippedPath{out}
}
