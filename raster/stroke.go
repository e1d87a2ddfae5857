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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// subpath is a range of points in a point buffer.
type subpath struct {
	start, end int
	closed     bool
}

// flatten walks p, replaces curves by line segments, and stores the
// resulting polylines in r.pts and r.subpaths.  Consecutive duplicate
// points are dropped.
func (r *Rasterizer) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]

	start := -1 // index of the current subpath's first point, or -1
	finish := func(closed bool) {
		if start >= 0 {
			r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.pts), closed: closed})
		}
		start = -1
	}
	lineTo := func(q vec.Vec2) {
		last := r.pts[len(r.pts)-1]
		if q.Sub(last).Length() > zeroLengthThreshold {
			r.pts = append(r.pts, q)
		}
	}

	var current vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			k++
			start = len(r.pts)
			r.pts = append(r.pts, current)

		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			if start < 0 {
				// drawing without a current point starts a new subpath
				start = len(r.pts)
				r.pts = append(r.pts, current)
			}
			switch cmd {
			case path.CmdLineTo:
				lineTo(p.Coords[k])
				current = p.Coords[k]
				k++
			case path.CmdQuadTo:
				r.flattenQuad(current, p.Coords[k], p.Coords[k+1], lineTo)
				current = p.Coords[k+1]
				k += 2
			case path.CmdCubeTo:
				r.flattenCube(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], lineTo)
				current = p.Coords[k+2]
				k += 3
			}

		case path.CmdClose:
			if start >= 0 {
				current = r.pts[start]
			}
			finish(true)
		}
	}
	finish(false)
}

// flattenQuad approximates a quadratic Bézier curve by line segments,
// calling lineTo for every segment end point.
func (r *Rasterizer) flattenQuad(p0, p1, p2 vec.Vec2, lineTo func(vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCube approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasterizer) flattenCube(p0, p1, p2, p3 vec.Vec2, lineTo func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		lineTo(p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t)))
	}
}

// Stroke draws the outline of p using Width, Cap, Join, MiterLimit, Dash
// and DashPhase.
//
// The outline is built from one quadrilateral per segment plus polygons
// for joins and caps, all with the same orientation, and filled with the
// nonzero rule.  Overlaps therefore never cancel out.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	if !(r.Width > 0) {
		return
	}
	r.flatten(p)

	pts, subs := r.pts, r.subpaths
	if r.dashed() {
		r.applyDash()
		pts, subs = r.dashPts, r.dashSubs
	}

	r.startEdges()
	for _, sp := range subs {
		r.strokePolyline(pts[sp.start:sp.end], sp.closed)
	}
	r.scan(fillNonZero, emit)
}

// strokePolyline adds the outline polygons of one polyline.
func (r *Rasterizer) strokePolyline(pts []vec.Vec2, closed bool) {
	d := r.Width / 2

	if closed && len(pts) > 1 && pts[0].Sub(pts[len(pts)-1]).Length() <= zeroLengthThreshold {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		// a subpath without direction only shows up with round caps
		if r.Cap == graphics.LineCapRound {
			r.addCircle(pts[0], d)
		}
		return
	}

	n := len(pts) - 1 // number of segments
	if closed && len(pts) > 2 {
		n = len(pts)
	} else {
		closed = false
	}

	for i := range n {
		a, b := pts[i], pts[(i+1)%len(pts)]
		t := unit(b.Sub(a))
		nd := normal(t).Mul(d)
		r.addPolygon(r.quad(a.Add(nd), b.Add(nd), b.Sub(nd), a.Sub(nd)))
	}

	// joins at the inner vertices, and at the first vertex if closed
	for i := 1; i < len(pts); i++ {
		if !closed && i == len(pts)-1 {
			break
		}
		r.addJoin(pts[i-1], pts[i], pts[(i+1)%len(pts)], d)
	}
	if closed {
		r.addJoin(pts[len(pts)-1], pts[0], pts[1], d)
		return
	}

	r.addCap(pts[0], unit(pts[0].Sub(pts[1])), d)
	r.addCap(pts[len(pts)-1], unit(pts[len(pts)-1].Sub(pts[len(pts)-2])), d)
}

// quad returns the four points in the polygon scratch buffer.
func (r *Rasterizer) quad(a, b, c, d vec.Vec2) []vec.Vec2 {
	r.poly = append(r.poly[:0], a, b, c, d)
	return r.poly
}

// addJoin adds the join polygon at vertex p, between the segments
// prev→p and p→next.
func (r *Rasterizer) addJoin(prev, p, next vec.Vec2, d float64) {
	t1 := unit(p.Sub(prev))
	t2 := unit(next.Sub(p))
	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.X*t2.X + t1.Y*t2.Y
	if math.Abs(cross) < collinearThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	// the outer side of the corner is opposite to the turning direction
	side := 1.0
	if cross > 0 {
		side = -1
	}
	o1 := p.Add(normal(t1).Mul(side * d))
	o2 := p.Add(normal(t2).Mul(side * d))

	if r.Join == graphics.LineJoinMiter {
		// ratio of miter length to line width
		cosHalf := math.Sqrt(max(0, (1+dot)/2))
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit {
			dir := unit(normal(t1).Add(normal(t2)).Mul(side))
			tip := p.Add(dir.Mul(d / cosHalf))
			r.poly = append(r.poly[:0], p, o1, tip, o2)
			r.addPolygon(r.poly)
			return
		}
	}

	r.poly = append(r.poly[:0], p, o1, o2)
	r.addPolygon(r.poly)
}

// addCap adds the cap at end point p of an open polyline.  out points
// away from the line.
func (r *Rasterizer) addCap(p, out vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		nd := normal(out).Mul(d)
		ext := p.Add(out.Mul(d))
		r.addPolygon(r.quad(p.Add(nd), ext.Add(nd), ext.Sub(nd), p.Sub(nd)))
	}
}

// addCircle adds a regular polygon approximating a circle within
// Flatness.
func (r *Rasterizer) addCircle(c vec.Vec2, radius float64) {
	n := 8
	if radius > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/radius))))
	}
	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{
			X: c.X + radius*math.Cos(phi),
			Y: c.Y + radius*math.Sin(phi),
		})
	}
	r.addPolygon(r.poly)
}

// unit returns v scaled to length one.  v must not be zero.
func unit(v vec.Vec2) vec.Vec2 {
	return v.Mul(1 / v.Length())
}

// normal returns v rotated by 90 degrees.
func normal(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}
