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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart"
)

// Page is the subset of a PDF content stream writer used to draw
// charts.  The page returned by seehuhn.de/go/pdf/document implements
// this interface.
type Page interface {
	SetFillColor(pdfcolor.Color)
	SetStrokeColor(pdfcolor.Color)
	SetLineWidth(float64)
	SetLineCap(graphics.LineCapStyle)
	SetLineJoin(graphics.LineJoinStyle)
	SetLineDash(pattern []float64, phase float64)
	Transform(matrix.Matrix)
	Rectangle(x, y, w, h float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Fill()
	Stroke()
}

// DrawPDF draws f onto a PDF page of the size of the frame's viewport,
// with one PDF unit per pixel.
//
// PDF output has no tick labels, and translucent colours are blended
// with the background colour in advance.  As for [Renderer.Draw], the
// last valid state of the frame is drawn if recomputation fails, and
// the error is returned.
func DrawPDF(page Page, f *chart.Frame, style *Style) error {
	if style == nil {
		style = DefaultStyle()
	}
	err := f.Recompute()

	w, h := f.Viewport()
	page.SetFillColor(deviceColor(style.Background, style.Background))
	page.Rectangle(0, 0, float64(w), float64(h))
	page.Fill()

	// chart coordinates have the origin at the top-left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})
	page.SetLineCap(style.Cap)
	page.SetLineJoin(style.Join)

	major, minor := f.GridLines()
	grid := deviceColor(style.Grid, style.Background)
	if len(minor) > 0 && style.MinorWidth > 0 {
		page.SetStrokeColor(grid)
		page.SetLineWidth(style.MinorWidth)
		if len(style.MinorDash) > 0 {
			page.SetLineDash(style.MinorDash, 0)
		}
		for _, s := range minor {
			page.MoveTo(s.A.X, s.A.Y)
			page.LineTo(s.B.X, s.B.Y)
		}
		page.Stroke()
		if len(style.MinorDash) > 0 {
			page.SetLineDash(nil, 0)
		}
	}
	if len(major) > 0 && style.MajorWidth > 0 {
		page.SetStrokeColor(grid)
		page.SetLineWidth(style.MajorWidth)
		for _, s := range major {
			page.MoveTo(s.A.X, s.A.Y)
			page.LineTo(s.B.X, s.B.Y)
		}
		page.Stroke()
	}

	page.SetLineWidth(style.SeriesWidth)
	for slot, paths := range f.RenderPaths() {
		if len(paths) == 0 {
			continue
		}
		page.SetStrokeColor(deviceColor(style.seriesColor(slot), style.Background))
		for _, cp := range paths {
			for i, q := range cp {
				if i == 0 {
					page.MoveTo(q.X, q.Y)
				} else {
					page.LineTo(q.X, q.Y)
				}
			}
			if len(cp) == 1 {
				page.LineTo(cp[0].X, cp[0].Y)
			}
		}
		page.Stroke()
	}
	return err
}

// deviceColor converts c to an opaque PDF colour by blending it over bg.
func deviceColor(c, bg color.NRGBA) pdfcolor.Color {
	a := float64(c.A) / 255
	mix := func(v, b uint8) float64 {
		return (a*float64(v) + (1-a)*float64(b)) / 255
	}
	return pdfcolor.DeviceRGB{mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B)}
}
