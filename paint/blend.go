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

package paint

import (
	"image"
	"image/color"
)

// blendRow composites col over one row of dst, weighted by the given
// coverage values, using the Porter-Duff "over" operator.
func blendRow(dst *image.RGBA, y, xMin int, coverage []float32, col color.NRGBA) {
	b := dst.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if xMin < b.Min.X {
		coverage = coverage[min(b.Min.X-xMin, len(coverage)):]
		xMin = b.Min.X
	}
	if n := b.Max.X - xMin; len(coverage) > n {
		coverage = coverage[:max(n, 0)]
	}

	alpha := float32(col.A) / 255
	sr := float32(col.R) * alpha
	sg := float32(col.G) * alpha
	sb := float32(col.B) * alpha

	pix := dst.Pix[dst.PixOffset(xMin, y):]
	for i, c := range coverage {
		if c <= 0 {
			continue
		}
		a := c * alpha
		keep := 1 - a
		px := pix[4*i : 4*i+4 : 4*i+4]
		px[0] = uint8(float32(px[0])*keep + sr*c + 0.5)
		px[1] = uint8(float32(px[1])*keep + sg*c + 0.5)
		px[2] = uint8(float32(px[2])*keep + sb*c + 0.5)
		px[3] = uint8(float32(px[3])*keep + 255*a + 0.5)
	}
}
