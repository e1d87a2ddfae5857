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
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/raster"
)

// Renderer draws frames into RGBA images.
//
// A Renderer keeps its rasteriser buffers between calls and is not safe
// for concurrent use.
type Renderer struct {
	Style *Style

	// Face is used for tick labels.
	Face font.Face

	r *raster.Rasterizer
}

// NewRenderer returns a Renderer using the given style.
// A nil style selects DefaultStyle.
func NewRenderer(style *Style) *Renderer {
	if style == nil {
		style = DefaultStyle()
	}
	return &Renderer{
		Style: style,
		Face:  basicfont.Face7x13,
		r:     raster.NewRasterizer(rect.Rect{}),
	}
}

// Image renders f into a new image of the size of the frame's viewport.
func (rd *Renderer) Image(f *chart.Frame) (*image.RGBA, error) {
	w, h := f.Viewport()
	img := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	err := rd.Draw(img, f)
	return img, err
}

// Draw renders f into dst.  The top-left corner of dst.Bounds() is the
// origin of the frame's pixel coordinates.
//
// Draw brings the frame up to date first.  If this fails, the last
// valid state of the frame is drawn and the error is returned.
func (rd *Renderer) Draw(dst *image.RGBA, f *chart.Frame) error {
	err := f.Recompute()

	st := rd.Style
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(st.Background), image.Point{}, draw.Src)

	off := vec.Vec2{X: float64(b.Min.X), Y: float64(b.Min.Y)}
	clip := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}

	major, minor := f.GridLines()
	rd.strokeSegments(dst, clip, segmentPath(minor, off), st.MinorWidth, st.MinorDash, st.Grid)
	rd.strokeSegments(dst, clip, segmentPath(major, off), st.MajorWidth, nil, st.Grid)

	if !st.NoLabels && rd.Face != nil {
		rd.drawLabels(dst, f, off)
	}

	for slot, paths := range f.RenderPaths() {
		if len(paths) == 0 {
			continue
		}
		p := &path.Data{}
		for _, cp := range paths {
			appendPolyline(p, cp, off)
		}
		rd.strokeSegments(dst, clip, p, st.SeriesWidth, nil, st.seriesColor(slot))
	}
	return err
}

func (rd *Renderer) strokeSegments(dst *image.RGBA, clip rect.Rect, p *path.Data, width float64, dash []float64, col color.NRGBA) {
	if len(p.Cmds) == 0 || width <= 0 || col.A == 0 {
		return
	}
	r := rd.r
	r.Reset(clip)
	r.Width = width
	r.Cap = rd.Style.Cap
	r.Join = rd.Style.Join
	r.Dash = dash
	r.Stroke(p, func(y, xMin int, coverage []float32) {
		blendRow(dst, y, xMin, coverage, col)
	})
}

func (rd *Renderer) drawLabels(dst *image.RGBA, f *chart.Frame, off vec.Vec2) {
	st := rd.Style
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(st.Label),
		Face: rd.Face,
	}
	ascent := rd.Face.Metrics().Ascent.Ceil()

	for _, l := range f.Labels(chart.AxisX) {
		w := d.MeasureString(l.Text).Ceil()
		x := int(l.At.X+off.X) - w/2
		y := int(l.At.Y+off.Y+st.TextOffset) + ascent
		d.Dot = fixed.P(x, y)
		d.DrawString(l.Text)
	}
	for _, l := range f.Labels(chart.AxisY) {
		w := d.MeasureString(l.Text).Ceil()
		x := int(l.At.X+off.X-st.TextOffset) - w
		y := int(l.At.Y + off.Y + 0.3*st.FontSize)
		d.Dot = fixed.P(x, y)
		d.DrawString(l.Text)
	}
}

// segmentPath collects line segments into one path, so that crossing
// gridlines are blended only once.
func segmentPath(segs []chart.Segment, off vec.Vec2) *path.Data {
	p := &path.Data{}
	for _, s := range segs {
		p.MoveTo(s.A.Add(off)).LineTo(s.B.Add(off))
	}
	return p
}

func appendPolyline(p *path.Data, pts chart.ClippedPath, off vec.Vec2) {
	for i, q := range pts {
		if i == 0 {
			p.MoveTo(q.Add(off))
		} else {
			p.LineTo(q.Add(off))
		}
	}
	if len(pts) == 1 {
		// a single visible point is drawn as a dot with round caps
		p.LineTo(pts[0].Add(off))
	}
}
