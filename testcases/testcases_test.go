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
	"maps"
	"math"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chart"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestScenarioNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		require.True(t, validName.MatchString(category), category)
		for _, s := range All[category] {
			name := category + "_" + s.Name
			assert.True(t, validName.MatchString(s.Name), "invalid name %q", name)
			assert.False(t, seen[name], "duplicate name %q", name)
			seen[name] = true
		}
	}
}

// TestScenariosRecompute checks that every scenario describes a valid
// chart, so that the reference tools never hit an error.
func TestScenariosRecompute(t *testing.T) {
	for category, cases := range All {
		for _, s := range cases {
			t.Run(category+"_"+s.Name, func(t *testing.T) {
				f, err := s.Frame(nil)
				require.NoError(t, err)
				require.NoError(t, f.Recompute())
				assert.Equal(t, chart.Fresh, f.State())

				paths := f.RenderPaths()
				assert.Len(t, paths, len(s.Series))
				for slot, data := range s.Series {
					if len(data) == 0 {
						assert.Empty(t, paths[slot], "slot %d", slot)
					}
				}
			})
		}
	}
}

func TestInsideOneDecade(t *testing.T) {
	s := findScenario(t, "log", "inside_one_decade")
	f, err := s.Frame(nil)
	require.NoError(t, err)
	require.NoError(t, f.Recompute())

	ts := f.Ticks(chart.AxisX)
	assert.Empty(t, ts.Major)
	assert.InDeltaSlice(t, []float64{20, 30, 40, 50, 60, 70, 80}, ts.Minor, 1e-9)
}

func TestGenerators(t *testing.T) {
	line := Line(5, 0, 1, 2, 3)
	require.Len(t, line, 5)
	assert.Equal(t, pt(0, 2), line[0])
	assert.Equal(t, pt(1, 5), line[4])
	assert.InDelta(t, 0.25, line[1].X, 1e-12)

	single := Line(1, 3, 7, 0, 1)
	assert.Equal(t, chart.Series{pt(3, 3)}, single)
	assert.Nil(t, Line(0, 0, 1, 0, 1))

	sine := Sine(5, 0, 1, 2, 1, 10)
	assert.InDelta(t, 10, sine[0].Y, 1e-12)
	assert.InDelta(t, 12, sine[1].Y, 1e-12)
	assert.InDelta(t, 8, sine[3].Y, 1e-12)

	logLine := LogLine(4, 1, 1000, 0, 1)
	for i, p := range logLine {
		assert.InDelta(t, math.Pow(10, float64(i)), p.X, 1e-9)
		assert.InDelta(t, float64(i), p.Y, 1e-12)
	}
}

func TestRandomWalkDeterministic(t *testing.T) {
	a := RandomWalk(42, 100, 0, 1, 5, 1)
	b := RandomWalk(42, 100, 0, 1, 5, 1)
	c := RandomWalk(43, 100, 0, 1, 5, 1)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 5.0, a[0].Y)
}

func TestShuffled(t *testing.T) {
	s := Line(20, 0, 1, 0, 1)
	u := Shuffled(3, s)
	assert.NotEqual(t, s, u)
	assert.ElementsMatch(t, s, u)

	chart.SortByX(u)
	assert.Equal(t, s, u)
}

func findScenario(t *testing.T, category, name string) *Scenario {
	t.Helper()
	for i := range All[category] {
		if All[category][i].Name == name {
			return &All[category][i]
		}
	}
	t.Fatalf("scenario %s_%s not found", category, name)
	return nil
}
