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
	"slices"
	"strconv"
)

// DefaultMaxTicks is the per-kind tick limit used when none is set.
const DefaultMaxTicks = 100

// Numerical tolerances for tick placement.
const (
	// stepTolerance is the distance, in units of the tick step, within
	// which a value counts as an exact multiple of the step.
	stepTolerance = 1e-9

	// logTolerance is added to base-10 logarithms before rounding, so
	// that exact powers of ten are not lost to rounding errors in Log10.
	logTolerance = 1e-10

	// sameTolerance is the relative distance below which two tick
	// positions are considered the same.
	sameTolerance = 1e-9
)

// TickSet holds the tick positions of one axis, in domain coordinates.
type TickSet struct {
	// Major lists the labelled ticks in strictly increasing order.
	Major []float64

	// Labels[i] is the label text for Major[i].
	Labels []string

	// Minor lists the unlabelled ticks in increasing order.
	// Positions which coincide with a major tick are omitted.
	Minor []float64
}

// GenerateTicks computes the major and minor ticks for cfg.
//
// If either the major or the minor ticks would exceed maxTicks, a
// *TickOverflowError is returned; no partial tick set is produced.
// A maxTicks value <= 0 selects DefaultMaxTicks.
func GenerateTicks(cfg AxisConfig, maxTicks int) (TickSet, error) {
	if err := cfg.Validate(); err != nil {
		return TickSet{}, err
	}
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	var ts TickSet
	var err error
	if cfg.Scale == Logarithmic {
		ts, err = logTicks(cfg, maxTicks)
	} else {
		ts, err = linearTicks(cfg, maxTicks)
	}
	if err != nil {
		return TickSet{}, err
	}

	ts.Labels = make([]string, len(ts.Major))
	for i, v := range ts.Major {
		ts.Labels[i] = FormatLabel(v)
	}
	return ts, nil
}

// linearMajorCount returns the number of major ticks for a linear axis
// spanning span with the given increment.  The count is floor(span/inc),
// plus one if span is a multiple of inc so that both ends of the domain
// get a tick.
func linearMajorCount(span, inc float64) float64 {
	q := span / inc
	if math.IsInf(q, 0) || math.IsNaN(q) {
		return math.Inf(1)
	}
	if r := math.Round(q); math.Abs(q-r) <= stepTolerance*math.Max(1, r) {
		return r + 1
	}
	return math.Floor(q)
}

func linearTicks(cfg AxisConfig, maxTicks int) (TickSet, error) {
	inc := cfg.MajorIncrement
	n := linearMajorCount(cfg.Stop-cfg.Start, inc)
	if n > float64(maxTicks) {
		err := &TickOverflowError{Count: saturate(n), Max: maxTicks}
		err.Suggested, _ = SuggestIncrement(cfg, maxTicks)
		return TickSet{}, err
	}
	count := int(n)

	major := make([]float64, 0, count)
	for i := range count {
		v := min(cfg.Start+float64(i)*inc, cfg.Stop)
		if i > 0 && v <= major[i-1] {
			return TickSet{}, &DegenerateAxisError{
				Reason: fmt.Sprintf("major increment %g is below the floating-point resolution at %g", inc, v),
			}
		}
		major = append(major, v)
	}

	_, nMinor := linearCounts(cfg)
	if nMinor > float64(maxTicks) {
		err := &TickOverflowError{Count: saturate(nMinor), Max: maxTicks, Minor: true}
		err.Suggested, _ = SuggestIncrement(cfg, maxTicks)
		return TickSet{}, err
	}
	if nMinor == 0 {
		return TickSet{Major: major}, nil
	}

	// The count above bounds both loops: either count is 1, or
	// (count-1)*(sub-1) <= maxTicks.
	sub := cfg.MinorSubdivisions
	step := inc / float64(sub)
	limit := cfg.Stop + stepTolerance*step
	var minor []float64
	for i := range count {
		for k := 1; k < sub; k++ {
			v := cfg.Start + float64(i*sub+k)*step
			if v > limit {
				break
			}
			minor = append(minor, min(v, cfg.Stop))
		}
	}
	if len(minor) > maxTicks {
		// rounding in the last interval
		return TickSet{}, &TickOverflowError{Count: len(minor), Max: maxTicks, Minor: true}
	}

	return TickSet{Major: major, Minor: minor}, nil
}

// linearCounts returns the number of major and minor ticks linearTicks
// produces for cfg, without building them.  Minor ticks subdivide every
// major interval, and the last one up to Stop.  They are only placed
// when the domain start lies on the grid of multiples of the minor
// step.  The counts are computed in floating point, so that huge
// subdivision counts cannot overflow.
func linearCounts(cfg AxisConfig) (major, minor float64) {
	major = linearMajorCount(cfg.Stop-cfg.Start, cfg.MajorIncrement)
	sub := cfg.MinorSubdivisions
	if sub < 2 || major < 1 || math.IsInf(major, 1) {
		return major, 0
	}
	step := cfg.MajorIncrement / float64(sub)
	if !(step > 0) || !isMultiple(cfg.Start, step) {
		return major, 0
	}

	last := cfg.Start + (major-1)*cfg.MajorIncrement
	tail := math.Floor((cfg.Stop + stepTolerance*step - last) / step)
	if math.IsNaN(tail) {
		tail = 0
	}
	tail = clamp(tail, 0, float64(sub-1))
	return major, (major-1)*float64(sub-1) + tail
}

// isMultiple reports whether v is an integer multiple of step, up to
// rounding errors.
func isMultiple(v, step float64) bool {
	q := v / step
	d := math.Abs(q - math.Round(q))
	return d <= 1e-6 || d <= stepTolerance*math.Abs(q)
}

func logTicks(cfg AxisConfig, maxTicks int) (TickSet, error) {
	firstPow := int(math.Ceil(math.Log10(cfg.Start) - logTolerance))
	lastPow := int(math.Floor(math.Log10(cfg.Stop) + logTolerance))

	count := max(lastPow-firstPow+1, 0)
	if count > maxTicks {
		return TickSet{}, &TickOverflowError{Count: count, Max: maxTicks}
	}

	major := make([]float64, 0, count)
	for p := firstPow; p <= lastPow; p++ {
		major = append(major, clamp(math.Pow10(p), cfg.Start, cfg.Stop))
	}

	var minor []float64

	// below the first power of ten: 9, 8, 7, ... times the next lower power
	base := math.Pow10(firstPow)
	unit := math.Pow10(firstPow - 1)
	for k := 1; k <= 9; k++ {
		v := base - float64(k)*unit
		if v < cfg.Start*(1-sameTolerance) {
			break
		}
		minor = append(minor, v)
	}

	minor = append(minor, logInterior(major)...)

	// above the last power of ten: 2, 3, ..., 10 times that power
	base = math.Pow10(lastPow)
	for k := 1; k <= 9; k++ {
		v := base + float64(k)*base
		if v > cfg.Stop*(1+sameTolerance) {
			break
		}
		minor = append(minor, v)
	}

	minor = tidyMinor(minor, major, cfg.Start, cfg.Stop)
	if len(minor) > maxTicks {
		return TickSet{}, &TickOverflowError{Count: len(minor), Max: maxTicks, Minor: true}
	}
	return TickSet{Major: major, Minor: minor}, nil
}

// logInterior returns the minor ticks between consecutive powers of
// ten: 2, 3, ..., 9 times every major tick except the last.  Intervals
// starting at or below zero have no logarithmic subdivision; this
// cannot happen for a validated axis.
func logInterior(major []float64) []float64 {
	var res []float64
	for i := 0; i < len(major)-1; i++ {
		m := major[i]
		if m <= 0 {
			continue
		}
		for k := 2; k <= 9; k++ {
			res = append(res, m*float64(k))
		}
	}
	return res
}

// tidyMinor restricts minor ticks to [lo, hi], sorts them, and removes
// duplicates as well as positions already taken by a major tick.
func tidyMinor(minor, major []float64, lo, hi float64) []float64 {
	out := minor[:0]
	for _, v := range minor {
		if v < lo*(1-sameTolerance) || v > hi*(1+sameTolerance) {
			continue
		}
		out = append(out, clamp(v, lo, hi))
	}
	slices.Sort(out)

	res := out[:0]
	j := 0
	for _, v := range out {
		if len(res) > 0 && same(res[len(res)-1], v) {
			continue
		}
		for j < len(major) && major[j] < v && !same(major[j], v) {
			j++
		}
		if j < len(major) && same(major[j], v) {
			continue
		}
		res = append(res, v)
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// FormatLabel returns the label text for a major tick at v.
//
// Zero is shown as "0".  Values in (0, 1) are rounded half-up to
// ceil(-log10(v)) decimal places and shown with leading zeros, so 0.05
// becomes "0.05" and 0.25 becomes "0.3".  All other values are
// truncated to an integer.  The result is meant for gridline labels,
// not for displaying data.
func FormatLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	if v > 0 && v < 1 {
		f := int(math.Ceil(-math.Log10(v)))
		if f > 300 {
			return strconv.FormatFloat(v, 'g', 1, 64)
		}
		scale := math.Pow10(f)
		digits := math.Floor(v*scale + 0.5)
		if digits >= scale {
			return "1"
		}
		return fmt.Sprintf("0.%0*d", f, int64(digits))
	}
	t := math.Trunc(v)
	if t == 0 {
		return "0"
	}
	return strconv.FormatFloat(t, 'f', 0, 64)
}

func same(a, b float64) bool {
	return math.Abs(a-b) <= sameTolerance*math.Max(math.Abs(a), math.Abs(b))
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

// saturate converts a non-negative count to int, saturating at the
// largest int.
func saturate(n float64) int {
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
