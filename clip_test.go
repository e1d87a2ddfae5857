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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// identity returns a transform which maps every value to itself.
func identity() Transform {
	return Transform{Scale: Linear, Slope: 1}
}

func TestSnap(t *testing.T) {
	w := WindowOf(DefaultXAxis(), DefaultYAxis())
	assert.Equal(t, Window{XMin: 0, XMax: 1, YMin: -40, YMax: 100}, w)

	p := vec.Vec2{X: w.XMin - 100, Y: w.YMax + 100}
	assert.Equal(t, vec.Vec2{X: 0, Y: 100}, w.Snap(p))
	assert.False(t, w.Contains(p))
	assert.True(t, w.Contains(w.Snap(p)))

	inside := vec.Vec2{X: 0.5, Y: 3}
	assert.Equal(t, inside, w.Snap(inside))
	assert.Equal(t, vec.Vec2{X: 1, Y: -40}, w.Snap(vec.Vec2{X: 7, Y: -1e9}))
}

func TestClip(t *testing.T) {
	w := WindowOf(DefaultXAxis(), DefaultYAxis())
	s := Series{
		{X: 0.2, Y: 10},
		{X: -100, Y: 200}, // snapped to the top-left corner
		{X: 0.5, Y: math.NaN()},
		{X: 0.7, Y: -50}, // snapped to the bottom
	}
	paths := Clip(s, identity(), identity(), w)
	require.Len(t, paths, 1)
	assert.Equal(t, ClippedPath{{X: 0.2, Y: 10}, {X: 0, Y: 100}, {X: 0.7, Y: -40}}, paths[0])

	// the input is not modified
	assert.Equal(t, -100.0, s[1].X)
}

func TestClipTransforms(t *testing.T) {
	tx, err := NewTransform(DefaultXAxis(), ViewportSpan{PixelEnd: 200, PaddingLow: 50, PaddingHigh: 50})
	require.NoError(t, err)
	ty, err := NewInvertedTransform(DefaultYAxis(), ViewportSpan{PixelEnd: 140})
	require.NoError(t, err)
	w := WindowOf(DefaultXAxis(), DefaultYAxis())

	paths := Clip(Series{{X: 0, Y: 100}, {X: 2, Y: -1000}}, tx, ty, w)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], 2)
	assert.InDelta(t, 50, paths[0][0].X, 1e-9)
	assert.InDelta(t, 0, paths[0][0].Y, 1e-9)
	assert.InDelta(t, 150, paths[0][1].X, 1e-9)
	assert.InDelta(t, 140, paths[0][1].Y, 1e-9)
}

func TestClipEmpty(t *testing.T) {
	w := WindowOf(DefaultXAxis(), DefaultYAxis())
	assert.Empty(t, Clip(nil, identity(), identity(), w))
	assert.Empty(t, Clip(Series{}, identity(), identity(), w))
	assert.Empty(t, Clip(Series{{X: math.NaN(), Y: 1}}, identity(), identity(), w))
}

func TestClipKeepsOrder(t *testing.T) {
	w := Window{XMin: 0, XMax: 10, YMin: 0, YMax: 10}
	s := Series{{X: 5, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 3}}
	paths := Clip(s, identity(), identity(), w)
	require.Len(t, paths, 1)
	assert.Equal(t, ClippedPath(s), paths[0])
}

func TestSortByX(t *testing.T) {
	s := Series{{X: 3, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 2}, {X: -1, Y: 3}, {X: 1, Y: 4}}
	SortByX(s)
	assert.Equal(t, Series{{X: -1, Y: 3}, {X: 1, Y: 1}, {X: 1, Y: 4}, {X: 3, Y: 0}, {X: 3, Y: 2}}, s)
}

func TestClippedPathData(t *testing.T) {
	c := ClippedPath{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 0}}
	p := c.Data()
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}, p.Cmds)
	assert.Equal(t, []vec.Vec2(c), p.Coords)

	assert.Empty(t, ClippedPath(nil).Data().Cmds)
}
