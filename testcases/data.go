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

package testcases

import (
	"math"
	"math/rand/v2"

	"seehuhn.de/go/chart"
)

// Line returns n points on the line y = a + b*x, with x evenly spaced
// in [x0, x1].
func Line(n int, x0, x1, a, b float64) chart.Series {
	return sample(n, x0, x1, func(x float64) float64 {
		return a + b*x
	})
}

// Sine returns n points of offset + amp*sin(2πx/period), with x evenly
// spaced in [x0, x1].
func Sine(n int, x0, x1, amp, period, offset float64) chart.Series {
	return sample(n, x0, x1, func(x float64) float64 {
		return offset + amp*math.Sin(2*math.Pi*x/period)
	})
}

// LogLine returns n points with x spaced evenly on a logarithmic scale
// in [x0, x1] and y = a + b*log10(x).  Both x0 and x1 must be positive.
func LogLine(n int, x0, x1, a, b float64) chart.Series {
	s := sample(n, math.Log10(x0), math.Log10(x1), func(e float64) float64 {
		return a + b*e
	})
	for i := range s {
		s[i].X = math.Pow(10, s[i].X)
	}
	return s
}

// RandomWalk returns n points of a Gaussian random walk starting at y0,
// with x evenly spaced in [x0, x1].  The same seed always gives the same
// walk.
func RandomWalk(seed uint64, n int, x0, x1, y0, step float64) chart.Series {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	y := y0
	return sample(n, x0, x1, func(float64) float64 {
		v := y
		y += step * rng.NormFloat64()
		return v
	})
}

// Shuffled returns a copy of s in random order, for use with
// chart.SortByX.
func Shuffled(seed uint64, s chart.Series) chart.Series {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	res := make(chart.Series, len(s))
	for i, j := range rng.Perm(len(s)) {
		res[j] = s[i]
	}
	return res
}

func sample(n int, x0, x1 float64, f func(float64) float64) chart.Series {
	if n <= 0 {
		return nil
	}
	s := make(chart.Series, n)
	for i := range s {
		x := x0
		if n > 1 {
			x = x0 + (x1-x0)*float64(i)/float64(n-1)
		}
		s[i] = pt(x, f(x))
	}
	return s
}
