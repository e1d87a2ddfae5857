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

import "seehuhn.de/go/geom/vec"

// Segment is a straight line between two points in pixel coordinates.
type Segment struct {
	A, B vec.Vec2
}

// Label is the text of a major tick together with its anchor point.
type Label struct {
	Text  string
	Value float64 // tick position in domain coordinates

	// At is the pixel position where the gridline meets the plot
	// border: the bottom edge for x labels, the left edge for y labels.
	At vec.Vec2
}

// GridLines returns the gridlines of both axes in pixel coordinates.
// Vertical lines for x ticks span the full y domain, horizontal lines
// for y ticks span the full x domain.  Before the first successful
// Recompute both results are nil.
func (f *Frame) GridLines() (major, minor []Segment) {
	if f.cur == nil {
		return nil, nil
	}
	d := f.cur
	w := f.Window()

	vertical := func(x float64) Segment {
		px := d.tx.Apply(x)
		return Segment{
			A: vec.Vec2{X: px, Y: d.ty.Apply(w.YMin)},
			B: vec.Vec2{X: px, Y: d.ty.Apply(w.YMax)},
		}
	}
	horizontal := func(y float64) Segment {
		py := d.ty.Apply(y)
		return Segment{
			A: vec.Vec2{X: d.tx.Apply(w.XMin), Y: py},
			B: vec.Vec2{X: d.tx.Apply(w.XMax), Y: py},
		}
	}

	major = make([]Segment, 0, len(d.xt.Major)+len(d.yt.Major))
	for _, x := range d.xt.Major {
		major = append(major, vertical(x))
	}
	for _, y := range d.yt.Major {
		major = append(major, horizontal(y))
	}

	minor = make([]Segment, 0, len(d.xt.Minor)+len(d.yt.Minor))
	for _, x := range d.xt.Minor {
		minor = append(minor, vertical(x))
	}
	for _, y := range d.yt.Minor {
		minor = append(minor, horizontal(y))
	}
	return major, minor
}

// Labels returns the major tick labels of one axis with their anchors.
func (f *Frame) Labels(a Axis) []Label {
	if f.cur == nil {
		return nil
	}
	d := f.cur
	w := f.Window()

	ts := f.Ticks(a)
	res := make([]Label, len(ts.Major))
	for i, v := range ts.Major {
		res[i] = Label{Text: ts.Labels[i], Value: v}
		if a == AxisY {
			res[i].At = vec.Vec2{X: d.tx.Apply(w.XMin), Y: d.ty.Apply(v)}
		} else {
			res[i].At = vec.Vec2{X: d.tx.Apply(v), Y: d.ty.Apply(w.YMin)}
		}
	}
	return res
}
