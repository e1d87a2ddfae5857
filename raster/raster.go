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

// Package raster converts chart geometry into anti-aliased pixel
// coverage.
//
// A [Rasterizer] fills and strokes paths given in device coordinates.
// Coverage is delivered one scanline at a time through a callback, so
// that the caller decides how to composite it.  Internal buffers are
// kept between calls; a single Rasterizer can draw any number of paths
// without allocating in steady state.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of scanline y, starting at pixel xMin.
// Coverage values are in [0, 1].  The slice is only valid during the
// call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasterizer fills and strokes paths.
type Rasterizer struct {
	// Clip is the output region in device coordinates.  The corners
	// should be at integer coordinates.
	Clip rect.Rect

	// Flatness is the maximum distance, in pixels, between a curve or
	// arc and the line segments which approximate it.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the shape of the ends of open subpaths and dashes.
	Cap graphics.LineCapStyle

	// Join is the shape of the corners of stroked paths.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio of miter length to line width
	// for which a miter join is drawn.  Sharper corners are beveled.
	MiterLimit float64

	// Dash is the dash pattern in pixels, alternating between drawn
	// and skipped lengths.  Nil draws solid lines.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	cover     []float32 // per-pixel change of the winding number
	area      []float32 // per-pixel partial coverage
	edges     []edge
	active    []int
	edgeBBox  [4]float64 // xMin, xMax, yMin, yMax of all edges
	haveEdges bool

	pts      []vec.Vec2 // flattened subpath points, contiguous
	subpaths []subpath
	dashPts  []vec.Vec2
	dashSubs []subpath
	poly     []vec.Vec2
}

// NewRasterizer returns a Rasterizer for the given clip rectangle,
// drawing one pixel wide solid lines with butt caps and miter joins.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]
	r.dashPts = r.dashPts[:0]
	r.dashSubs = r.dashSubs[:0]
	r.poly = r.poly[:0]
	r.haveEdges = false
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.startEdges()
	r.addPathEdges(p)
	r.scan(fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.startEdges()
	r.addPathEdges(p)
	r.scan(fillEvenOdd, emit)
}

// FillRect fills an axis-parallel rectangle.
func (r *Rasterizer) FillRect(box rect.Rect, emit EmitFunc) {
	r.startEdges()
	r.addPolygon([]vec.Vec2{
		{X: box.LLx, Y: box.LLy},
		{X: box.URx, Y: box.LLy},
		{X: box.URx, Y: box.URy},
		{X: box.LLx, Y: box.URy},
	})
	r.scan(fillNonZero, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.haveEdges = false
}

// addPathEdges adds the edges of all subpaths of p.  Open subpaths are
// closed implicitly, curves are flattened.
func (r *Rasterizer) addPathEdges(p *path.Data) {
	r.flatten(p)
	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		for i := range pts {
			r.addEdge(pts[i], pts[(i+1)%len(pts)])
		}
	}
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	bb := [4]float64{min(a.X, b.X), max(a.X, b.X), min(a.Y, b.Y), max(a.Y, b.Y)}
	if !r.haveEdges {
		r.edgeBBox = bb
		r.haveEdges = true
		return
	}
	r.edgeBBox[0] = min(r.edgeBBox[0], bb[0])
	r.edgeBBox[1] = max(r.edgeBBox[1], bb[1])
	r.edgeBBox[2] = min(r.edgeBBox[2], bb[2])
	r.edgeBBox[3] = max(r.edgeBBox[3], bb[3])
}

// addPolygon adds a closed polygon with positive orientation, so that
// overlapping polygons add up under the nonzero rule.
func (r *Rasterizer) addPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	if signedArea(pts) < 0 {
		for i := len(pts) - 1; i >= 0; i-- {
			r.addEdge(pts[i], pts[(i+len(pts)-1)%len(pts)])
		}
		return
	}
	for i := range pts {
		r.addEdge(pts[i], pts[(i+1)%len(pts)])
	}
}

func signedArea(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// scan integrates the collected edges scanline by scanline, using an
// active edge list, and emits the non-zero part of every row.
//
// Each edge piece inside a pixel adds its signed height to cover and
// the part of that height lying right of the edge to area.  Summing
// cover from the left and adding area gives the signed coverage of each
// pixel.
func (r *Rasterizer) scan(rule fillRule, emit EmitFunc) {
	if !r.haveEdges {
		return
	}
	// clamp in floating point, edges may lie far outside the clip
	xMin := int(max(math.Floor(r.edgeBBox[0]), r.Clip.LLx))
	xMax := int(min(math.Floor(r.edgeBBox[1])+1, r.Clip.URx))
	yMin := int(max(math.Floor(r.edgeBBox[2]), r.Clip.LLy))
	yMax := int(min(math.Floor(r.edgeBBox[3])+1, r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, top, bot, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e between top and bot to the row buffers.
// It reports whether anything was added.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, xMin, xMax int) bool {
	yTop := max(top, e.yMin())
	yBot := min(bot, e.yMax())
	if yBot <= yTop {
		return false
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}
	h := yBot - yTop

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}

	left, right := float64(xMin), float64(xMax)
	if xb < left {
		r.addCell(xMin-1, sign*float32(h), 0, xMin, xMax)
		return true
	}
	if xa >= right {
		return true
	}
	if xb-xa < horizontalEdgeThreshold || math.Floor(xa) == math.Floor(xb) {
		c := int(math.Floor(xa))
		r.addCell(c, sign*float32(h), (xa+xb)/2, xMin, xMax)
		return true
	}

	// split the piece at every pixel boundary it crosses
	w := xb - xa
	if xa < left {
		part := h * (left - xa) / w
		r.addCell(xMin-1, sign*float32(part), 0, xMin, xMax)
	}
	first := int(math.Floor(max(xa, left)))
	last := int(math.Floor(min(xb, right-1)))
	for c := first; c <= last; c++ {
		lx := max(xa, float64(c))
		rx := min(xb, float64(c+1))
		if rx <= lx {
			continue
		}
		part := h * (rx - lx) / w
		r.addCell(c, sign*float32(part), (lx+rx)/2, xMin, xMax)
	}
	return true
}

// addCell records coverage cov, centred at x, in pixel column c.
func (r *Rasterizer) addCell(c int, cov float32, x float64, xMin, xMax int) {
	switch {
	case c < xMin:
		// left of the output: covers every pixel of the row
		r.cover[0] += cov
		r.area[0] += cov
	case c < xMax:
		i := c - xMin
		r.cover[i] += cov
		r.area[i] += cov * float32(1-(x-float64(c)))
	}
}

// integrateNonZero turns cover/area into coverage values, in place in
// cover, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns cover/area into coverage values, in place in
// cover, using the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript: corners sharper than
	// about 11.5 degrees are beveled.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment which has a
	// direction.
	zeroLengthThreshold = 1e-10

	// collinearThreshold is the largest sine of the angle between two
	// segments for which no join is drawn.
	collinearThreshold = 1e-6
)
