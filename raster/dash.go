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

	"seehuhn.de/go/geom/vec"
)

// dashed reports whether r.Dash describes a usable dash pattern: no
// negative entries and a positive total length.
func (r *Rasterizer) dashed() bool {
	if len(r.Dash) == 0 {
		return false
	}
	var total float64
	for _, l := range r.Dash {
		if l < 0 {
			return false
		}
		total += l
	}
	return total > 0
}

// applyDash cuts the flattened subpaths in r.pts into dashes, stored as
// open polylines in r.dashPts and r.dashSubs.  Every subpath starts at
// DashPhase into the pattern.  Dashes of length zero become single
// points, which are only visible with round caps.
func (r *Rasterizer) applyDash() {
	r.dashPts = r.dashPts[:0]
	r.dashSubs = r.dashSubs[:0]

	var total float64
	for _, l := range r.Dash {
		total += l
	}

	for _, sp := range r.subpaths {
		pts := r.pts[sp.start:sp.end]
		if sp.closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}

		// find the position in the pattern
		idx := 0
		left := r.Dash[0]
		phase := math.Mod(r.DashPhase, total)
		if phase < 0 {
			phase += total
		}
		for phase > 0 {
			if phase < left {
				left -= phase
				break
			}
			phase -= left
			idx = (idx + 1) % len(r.Dash)
			left = r.Dash[idx]
		}
		on := idx%2 == 0

		start := -1
		if on {
			start = len(r.dashPts)
			r.dashPts = append(r.dashPts, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			seg := b.Sub(a)
			length := seg.Length()
			pos := 0.0
			for length-pos > left {
				pos += left
				q := a.Add(seg.Mul(pos / length))
				if on {
					r.appendDashPoint(q)
					r.dashSubs = append(r.dashSubs, subpath{start: start, end: len(r.dashPts)})
					start = -1
				} else {
					start = len(r.dashPts)
					r.dashPts = append(r.dashPts, q)
				}
				on = !on
				idx = (idx + 1) % len(r.Dash)
				left = r.Dash[idx]
			}
			left -= length - pos
			if on {
				r.appendDashPoint(b)
			}
		}
		if on && start >= 0 {
			r.dashSubs = append(r.dashSubs, subpath{start: start, end: len(r.dashPts)})
		}
	}
}

// appendDashPoint extends the current dash, skipping duplicate points.
func (r *Rasterizer) appendDashPoint(q vec.Vec2) {
	if last := r.dashPts[len(r.dashPts)-1]; q.Sub(last).Length() <= zeroLengthThreshold {
		return
	}
	r.dashPts = append(r.dashPts, q)
}
