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

	"github.com/aclements/go-moremath/scale"
)

// ladderIncrement returns the major increment at the given level of the
// 1-2-5 ladder: ..., 0.5, 1, 2, 5, 10, 20, ...  Level 0 is 1.
func ladderIncrement(level int) float64 {
	exp, r := level/3, level%3
	if r < 0 {
		r += 3
		exp--
	}
	return [3]float64{1, 2, 5}[r] * math.Pow10(exp)
}

// SuggestIncrement returns the smallest increment of the form 1, 2 or 5
// times a power of ten for which a linear axis over cfg's domain, with
// cfg's minor subdivisions, has at most maxTicks major and at most
// maxTicks minor ticks.  Increments wider than the domain are never
// suggested.  The second return value is false if cfg is not a valid
// linear axis or no increment satisfies the limit.
func SuggestIncrement(cfg AxisConfig, maxTicks int) (float64, bool) {
	if cfg.Scale != Linear || cfg.validateDomain() != nil || maxTicks < 1 {
		return 0, false
	}

	span := cfg.Stop - cfg.Start
	count := func(level int) int {
		c := cfg
		c.MajorIncrement = ladderIncrement(level)
		if c.MajorIncrement > span {
			// at most one tick, which is no remedy
			return math.MaxInt
		}
		major, minor := linearCounts(c)
		return saturate(max(major, minor))
	}
	ticks := func(level int) []float64 {
		inc := ladderIncrement(level)
		n := saturate(linearMajorCount(cfg.Stop-cfg.Start, inc))
		res := make([]float64, n)
		for i := range res {
			res[i] = cfg.Start + float64(i)*inc
		}
		return res
	}

	guess := 0
	if g := math.Log10(span / float64(maxTicks)); isFinite(g) {
		guess = 3 * int(math.Floor(g))
	}

	opts := scale.TickOptions{
		Max: maxTicks,
		// reject increments lost in floating-point rounding
		Pred: func(ticks []float64, level int) bool {
			for i := 1; i < len(ticks); i++ {
				if ticks[i] <= ticks[i-1] {
					return false
				}
			}
			return true
		},
	}
	level, ok := opts.FindLevel(count, ticks, guess)
	if !ok {
		return 0, false
	}
	return ladderIncrement(level), true
}
