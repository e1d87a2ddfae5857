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

import "fmt"

// DegenerateAxisError reports an axis whose domain or pixel span cannot
// be mapped, such as a zero-width or inverted domain, a logarithmic
// domain starting at or below zero, or a plot area without pixels.
type DegenerateAxisError struct {
	// Axis is set when the error was raised by a Frame.
	Axis    Axis
	HasAxis bool

	Reason string
}

func (e *DegenerateAxisError) Error() string {
	if e.HasAxis {
		return fmt.Sprintf("chart: degenerate %s axis: %s", e.Axis, e.Reason)
	}
	return "chart: degenerate axis: " + e.Reason
}

// TickOverflowError reports that an axis would need more ticks than
// allowed.  Ticks are never truncated silently; the caller decides
// whether to widen the increment or to raise the limit.
type TickOverflowError struct {
	Axis    Axis
	HasAxis bool

	// Count is the number of ticks the configuration asks for.
	Count int

	// Max is the configured limit.
	Max int

	// Minor is true if the limit was exceeded by the minor ticks.
	Minor bool

	// Suggested is the smallest 1-2-5 major increment which keeps both
	// the major and the minor tick count within Max, or 0 if no such
	// increment exists or the scale is logarithmic.
	Suggested float64
}

func (e *TickOverflowError) Error() string {
	kind := "major"
	if e.Minor {
		kind = "minor"
	}
	where := "axis"
	if e.HasAxis {
		where = e.Axis.String() + " axis"
	}
	msg := fmt.Sprintf("chart: %s needs %d %s ticks, maximum is %d", where, e.Count, kind, e.Max)
	if e.Suggested > 0 {
		msg += fmt.Sprintf("; try a major increment of %g", e.Suggested)
	}
	return msg
}

// SlotIndexError reports an attempt to write a data series to a
// negative slot, or to a slot at or beyond MaxSeries.
type SlotIndexError struct {
	Slot int
}

func (e *SlotIndexError) Error() string {
	return fmt.Sprintf("chart: series slot %d out of range", e.Slot)
}

// withAxis records which axis an error belongs to.
func withAxis(err error, a Axis) error {
	switch e := err.(type) {
	case *DegenerateAxisError:
		e.Axis, e.HasAxis = a, true
	case *TickOverflowError:
		e.Axis, e.HasAxis = a, true
	}
	return err
}
