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
	"math"
)

// Transform maps domain values of one axis to pixel coordinates.
//
// A Transform is a plain value: two transforms built from the same
// configuration and viewport compare equal, and Apply has no hidden
// state.
type Transform struct {
	// Scale tells whether Apply works on the value or on its base-10
	// logarithm.
	Scale ScaleType

	// Slope and Intercept define pixel = Slope*u + Intercept, where u is
	// the domain value (linear) or its base-10 logarithm (logarithmic).
	Slope, Intercept float64

	// Edge is the pixel coordinate used for values which have no
	// logarithm (v <= 0 or NaN) on a logarithmic axis.  It is the low
	// pixel end of the plot area.
	Edge float64
}

// NewTransform builds the transform for a horizontal axis, where pixel
// coordinates grow with the domain value.
func NewTransform(cfg AxisConfig, span ViewportSpan) (Transform, error) {
	if err := cfg.validateDomain(); err != nil {
		return Transform{}, err
	}
	usable, err := usablePixels(span)
	if err != nil {
		return Transform{}, err
	}

	lo, hi := cfg.Start, cfg.Stop
	if cfg.Scale == Logarithmic {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	low := span.PixelStart + span.PaddingLow
	slope := usable / (hi - lo)
	t := Transform{
		Scale:     cfg.Scale,
		Slope:     slope,
		Intercept: low - slope*lo,
		Edge:      low,
	}
	return t, nil
}

// NewInvertedTransform builds the transform for a vertical axis, where
// pixel coordinates grow downwards while domain values grow upwards:
// Stop maps to the low pixel end and Start to the high pixel end.
// Vertical axes are always linear.
func NewInvertedTransform(cfg AxisConfig, span ViewportSpan) (Transform, error) {
	if cfg.Scale != Linear {
		return Transform{}, &DegenerateAxisError{Reason: "vertical axes must use a linear scale"}
	}
	if err := cfg.validateDomain(); err != nil {
		return Transform{}, err
	}
	usable, err := usablePixels(span)
	if err != nil {
		return Transform{}, err
	}

	low := span.PixelStart + span.PaddingLow
	slope := usable / (cfg.Start - cfg.Stop)
	t := Transform{
		Scale:     Linear,
		Slope:     slope,
		Intercept: low - slope*cfg.Stop,
		Edge:      low,
	}
	return t, nil
}

func usablePixels(span ViewportSpan) (float64, error) {
	usable := span.Usable()
	if !(usable > 0) || math.IsInf(usable, 0) {
		return 0, &DegenerateAxisError{Reason: "no usable pixels between the paddings"}
	}
	return usable, nil
}

// Apply returns the pixel coordinate of the domain value v.
func (t Transform) Apply(v float64) float64 {
	if t.Scale == Logarithmic {
		if !(v > 0) {
			return t.Edge
		}
		v = math.Log10(v)
	}
	return t.Slope*v + t.Intercept
}

// Invert returns the domain value shown at pixel coordinate p.
// It is the inverse of Apply on the plot area.
func (t Transform) Invert(p float64) float64 {
	u := (p - t.Intercept) / t.Slope
	if t.Scale == Logarithmic {
		return math.Pow(10, u)
	}
	return u
}
