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
	"fmt"
	"math"
)

// ScaleType selects how domain values are spaced along an axis.
type ScaleType int

const (
	Linear ScaleType = iota
	Logarithmic
)

func (s ScaleType) String() string {
	switch s {
	case Linear:
		return "linear"
	case Logarithmic:
		return "logarithmic"
	default:
		return fmt.Sprintf("ScaleType(%d)", int(s))
	}
}

// Axis identifies one of the two axes of a chart.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AxisConfig describes the domain and tick spacing of one axis.
// The zero value is not valid; use DefaultXAxis or DefaultYAxis as a
// starting point.
type AxisConfig struct {
	// Scale selects linear or logarithmic spacing.
	// Logarithmic scales are only supported on the x axis.
	Scale ScaleType

	// Start and Stop delimit the visible domain.
	// Stop must be greater than Start, and Start must be positive for
	// logarithmic scales.
	Start, Stop float64

	// MajorIncrement is the distance between labelled ticks on a linear
	// scale. Must be > 0 for linear scales; ignored for logarithmic
	// scales, which place major ticks at powers of ten.
	MajorIncrement float64

	// MinorSubdivisions is the number of equal parts each major interval
	// of a linear scale is divided into by minor ticks.
	// Zero disables minor ticks on linear scales.
	MinorSubdivisions int
}

// DefaultXAxis returns the x axis configuration used when none is given:
// a linear scale on [0, 1] with major ticks every 0.1 and five
// subdivisions.
func DefaultXAxis() AxisConfig {
	return AxisConfig{
		Scale:             Linear,
		Start:             0,
		Stop:              1,
		MajorIncrement:    0.1,
		MinorSubdivisions: 5,
	}
}

// DefaultYAxis returns the y axis configuration used when none is given:
// a linear scale on [-40, 100] with major ticks every 20 and four
// subdivisions.
func DefaultYAxis() AxisConfig {
	return AxisConfig{
		Scale:             Linear,
		Start:             -40,
		Stop:              100,
		MajorIncrement:    20,
		MinorSubdivisions: 4,
	}
}

// validateDomain checks the invariants shared by transforms and tick
// generation.
func (c AxisConfig) validateDomain() error {
	switch {
	case !isFinite(c.Start) || !isFinite(c.Stop):
		return &DegenerateAxisError{Reason: fmt.Sprintf("non-finite domain [%g, %g]", c.Start, c.Stop)}
	case c.Stop == c.Start:
		return &DegenerateAxisError{Reason: fmt.Sprintf("zero-width domain at %g", c.Start)}
	case c.Stop < c.Start:
		return &DegenerateAxisError{Reason: fmt.Sprintf("inverted domain [%g, %g]", c.Start, c.Stop)}
	}

	switch c.Scale {
	case Linear:
	case Logarithmic:
		if c.Start <= 0 {
			return &DegenerateAxisError{Reason: fmt.Sprintf("logarithmic domain must start above zero, got %g", c.Start)}
		}
	default:
		return &DegenerateAxisError{Reason: "unknown scale " + c.Scale.String()}
	}
	return nil
}

// Validate reports whether c can be used to build ticks and transforms.
// The returned error, if any, is a *DegenerateAxisError.
func (c AxisConfig) Validate() error {
	if err := c.validateDomain(); err != nil {
		return err
	}
	if c.Scale == Linear {
		if !(c.MajorIncrement > 0) || math.IsInf(c.MajorIncrement, 0) {
			return &DegenerateAxisError{Reason: fmt.Sprintf("major increment must be positive, got %g", c.MajorIncrement)}
		}
		if c.MinorSubdivisions < 0 {
			return &DegenerateAxisError{Reason: fmt.Sprintf("negative minor subdivisions %d", c.MinorSubdivisions)}
		}
	}
	return nil
}

// ViewportSpan is the pixel extent of one axis.  PaddingLow and
// PaddingHigh are reserved for labels at the low and high pixel ends.
type ViewportSpan struct {
	PixelStart, PixelEnd    float64
	PaddingLow, PaddingHigh float64
}

// Usable returns the number of pixels left for the plot area.
func (v ViewportSpan) Usable() float64 {
	return v.PixelEnd - v.PixelStart - v.PaddingLow - v.PaddingHigh
}

// Padding is the space, in pixels, reserved on each side of the plot area.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// DefaultPadding leaves room for rotated x labels at the bottom and for
// y labels on the left.
func DefaultPadding() Padding {
	return Padding{Top: 16, Right: 16, Bottom: 50, Left: 50}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
