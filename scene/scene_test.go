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

package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/chart"
)

const tomlScene = `
width = 640
height = 480
max_ticks = 50
sort_by_x = true

[x]
scale = "log"
start = 1.0
stop = 1000.0

[y]
start = 0.0
stop = 60.0
increment = 10.0
subdivisions = 2

[padding]
top = 10.0
right = 10.0
bottom = 40.0
left = 40.0

[[series]]
points = [[100.0, 40.0], [1.0, 0.0], [10.0, 20.0]]

[[series]]
generate = { kind = "logline", n = 4, from = 1.0, to = 1000.0, a = 0.0, b = 20.0 }
`

const yamlScene = `
width: 640
height: 480
max_ticks: 50
sort_by_x: true
x:
  scale: log
  start: 1
  stop: 1000
y:
  start: 0
  stop: 60
  increment: 10
  subdivisions: 2
padding: {top: 10, right: 10, bottom: 40, left: 40}
series:
  - points: [[100, 40], [1, 0], [10, 20]]
  - generate: {kind: logline, n: 4, from: 1, to: 1000, a: 0, b: 20}
`

func TestDecode(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		text   string
	}{
		{"toml", TOML, tomlScene},
		{"yaml", YAML, yamlScene},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tc.text), tc.format)
			require.NoError(t, err)

			assert.Equal(t, 640, s.Width)
			assert.Equal(t, 480, s.Height)
			require.NotNil(t, s.X)
			assert.Equal(t, "log", s.X.Scale)
			assert.Equal(t, &Padding{Top: 10, Right: 10, Bottom: 40, Left: 40}, s.Padding)
			require.Len(t, s.Series, 2)
			assert.Equal(t, [][2]float64{{100, 40}, {1, 0}, {10, 20}}, s.Series[0].Points)
			require.NotNil(t, s.Series[1].Generate)
			assert.Equal(t, "logline", s.Series[1].Generate.Kind)

			f, err := s.Frame(nil)
			require.NoError(t, err)
			require.NoError(t, f.Recompute())

			assert.Equal(t, chart.Logarithmic, f.AxisConfig(chart.AxisX).Scale)
			major, labels := f.MajorTicks(chart.AxisX)
			assert.InDeltaSlice(t, []float64{1, 10, 100, 1000}, major, 1e-9)
			assert.Equal(t, []string{"1", "10", "100", "1000"}, labels)

			// sorted by x
			assert.Equal(t, chart.Series{{X: 1, Y: 0}, {X: 10, Y: 20}, {X: 100, Y: 40}}, f.Series(0))
			assert.Len(t, f.Series(1), 4)

			tx := f.Transform(chart.AxisX)
			assert.InDelta(t, 40, tx.Apply(1), 1e-9)
			assert.InDelta(t, 630, tx.Apply(1000), 1e-9)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("width = 1\ncolour = 3\n"), TOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("width: 1\ncolour: 3\n"), YAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("width = 1"), Format(0))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFrameErrors(t *testing.T) {
	cases := []struct {
		name string
		s    Scene
	}{
		{"no_size", Scene{}},
		{"bad_scale", Scene{Width: 10, Height: 10, X: &Axis{Scale: "cubic", Stop: 1}}},
		{"points_and_generator", Scene{Width: 10, Height: 10, Series: []Series{{
			Points:   [][2]float64{{0, 0}},
			Generate: &Generator{Kind: "line", N: 2},
		}}}},
		{"bad_generator", Scene{Width: 10, Height: 10, Series: []Series{{
			Generate: &Generator{Kind: "spiral", N: 2},
		}}}},
		{"bad_logline", Scene{Width: 10, Height: 10, Series: []Series{{
			Generate: &Generator{Kind: "logline", N: 2, From: 0, To: 10},
		}}}},
		{"zero_period", Scene{Width: 10, Height: 10, Series: []Series{{
			Generate: &Generator{Kind: "sine", N: 2, To: 1},
		}}}},
		{"negative_count", Scene{Width: 10, Height: 10, Series: []Series{{
			Generate: &Generator{Kind: "walk", N: -1},
		}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.s.Frame(nil)
			assert.Error(t, err)
		})
	}
}

func TestDefaultAxes(t *testing.T) {
	s := &Scene{Width: 640, Height: 480}
	f, err := s.Frame(nil)
	require.NoError(t, err)
	assert.Equal(t, chart.DefaultXAxis(), f.AxisConfig(chart.AxisX))
	assert.Equal(t, chart.DefaultYAxis(), f.AxisConfig(chart.AxisY))
	assert.Zero(t, f.NumSeries())
}

func TestFormatOf(t *testing.T) {
	for name, want := range map[string]Format{
		"a.toml":     TOML,
		"b.yaml":     YAML,
		"c.YML":      YAML,
		"dir/d.TOML": TOML,
	} {
		got, err := FormatOf(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatOf("chart.json")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "chart.yaml")
	require.NoError(t, os.WriteFile(name, []byte(yamlScene), 0o644))

	s, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, 640, s.Width)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "chart.txt"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
