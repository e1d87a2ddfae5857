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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLadderIncrement(t *testing.T) {
	cases := map[int]float64{
		-6: 0.01,
		-5: 0.02,
		-4: 0.05,
		-3: 0.1,
		-1: 0.5,
		0:  1,
		1:  2,
		2:  5,
		3:  10,
		7:  2000,
	}
	for level, want := range cases {
		assert.InDelta(t, want, ladderIncrement(level), want*1e-12, "level %d", level)
	}
}

func TestSuggestIncrement(t *testing.T) {
	// minor ticks count, too: 0.5 gives 3 majors but 8 minors
	inc, ok := SuggestIncrement(DefaultXAxis(), 5)
	assert.True(t, ok)
	assert.InDelta(t, 1, inc, 1e-12)

	inc, ok = SuggestIncrement(DefaultXAxis(), 11)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, inc, 1e-12)

	noMinor := DefaultXAxis()
	noMinor.MinorSubdivisions = 0
	inc, ok = SuggestIncrement(noMinor, 11)
	assert.True(t, ok)
	assert.InDelta(t, 0.1, inc, 1e-12)

	inc, ok = SuggestIncrement(DefaultYAxis(), 5)
	assert.True(t, ok)
	assert.InDelta(t, 50, inc, 1e-9)

	// the suggestion always satisfies the limit
	for _, n := range []int{2, 3, 7, 20, 100} {
		cfg := AxisConfig{Scale: Linear, Start: -3.7, Stop: 1234.5, MajorIncrement: 1}
		inc, ok := SuggestIncrement(cfg, n)
		if assert.True(t, ok) {
			cfg.MajorIncrement = inc
			ts, err := GenerateTicks(cfg, n)
			assert.NoError(t, err, "max %d", n)
			assert.LessOrEqual(t, len(ts.Major), n)
		}
	}
}

func TestSuggestIncrementInvalid(t *testing.T) {
	cases := []struct {
		name string
		cfg  AxisConfig
		max  int
	}{
		{"log", AxisConfig{Scale: Logarithmic, Start: 1, Stop: 10}, 10},
		{"inverted", AxisConfig{Scale: Linear, Start: 1, Stop: 0, MajorIncrement: 1}, 10},
		{"no_ticks", DefaultXAxis(), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := SuggestIncrement(c.cfg, c.max)
			assert.False(t, ok)
		})
	}
}
