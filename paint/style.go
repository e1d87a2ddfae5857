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

// Package paint draws a [chart.Frame] into a raster image or onto a PDF
// page.
//
// The chart package only computes geometry.  This package turns the
// gridlines, labels and clipped series of a Frame into drawing
// operations, using the colours and line widths given in a [Style].
package paint

import (
	"image/color"

	"seehuhn.de/go/pdf/graphics"
)

// Style holds the visual parameters of a chart.
type Style struct {
	Background color.NRGBA
	Grid       color.NRGBA
	Label      color.NRGBA

	// MajorWidth and MinorWidth are the line widths of major and minor
	// gridlines, in pixels.
	MajorWidth float64
	MinorWidth float64

	// MinorDash, if set, draws minor gridlines dashed.
	MinorDash []float64

	// SeriesWidth is the line width of data series.
	SeriesWidth float64

	// SeriesOpacity is applied to every colour of the palette.
	SeriesOpacity float64

	// Palette gives the colours of the data series.  Slot i uses
	// Palette[i % len(Palette)].
	Palette []color.NRGBA

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// FontSize is the nominal label size; it positions y labels
	// vertically.
	FontSize float64

	// TextOffset is the distance between the plot border and the labels.
	TextOffset float64

	// NoLabels disables tick labels.
	NoLabels bool
}

// DefaultStyle returns the built-in chart style: translucent grey
// gridlines, thick major and thin minor lines, and a palette of five
// saturated colours.
func DefaultStyle() *Style {
	return &Style{
		Background:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Grid:          rgba(0.7, 0.7, 0.7, 0.6),
		Label:         rgba(0.2, 0.2, 0.2, 1),
		MajorWidth:    4,
		MinorWidth:    2,
		SeriesWidth:   2,
		SeriesOpacity: 0.7,
		Palette: []color.NRGBA{
			rgba(1, 0.27058, 0, 1),
			rgba(0.114, 0.929, 0, 1),
			rgba(0, 0.914, 0.929, 1),
			rgba(0.604, 0, 0.929, 1),
			rgba(0.929, 0, 0, 1),
		},
		Cap:        graphics.LineCapRound,
		Join:       graphics.LineJoinMiter,
		FontSize:   12,
		TextOffset: 10,
	}
}

// seriesColor returns the colour of the given slot, with the series
// opacity applied.
func (s *Style) seriesColor(slot int) color.NRGBA {
	if len(s.Palette) == 0 {
		return color.NRGBA{A: 255}
	}
	c := s.Palette[slot%len(s.Palette)]
	c.A = uint8(float64(c.A)*clamp01(s.SeriesOpacity) + 0.5)
	return c
}

func rgba(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
