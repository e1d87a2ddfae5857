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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"
)

func newTestFrame(t *testing.T) *Frame {
	t.Helper()
	f := New(nil)
	f.SetViewport(640, 480)
	require.NoError(t, f.Recompute())
	return f
}

func TestNewDefaults(t *testing.T) {
	f := New(nil)
	assert.Equal(t, DefaultXAxis(), f.AxisConfig(AxisX))
	assert.Equal(t, DefaultYAxis(), f.AxisConfig(AxisY))
	assert.Equal(t, Stale, f.State())
	assert.Empty(t, f.Ticks(AxisX).Major)
	assert.Equal(t, Transform{}, f.Transform(AxisX))
	assert.Nil(t, f.RenderPaths())
	major, minor := f.GridLines()
	assert.Nil(t, major)
	assert.Nil(t, minor)
	assert.Nil(t, f.Labels(AxisX))

	// the viewport is still empty
	var degenerate *DegenerateAxisError
	require.True(t, errors.As(f.Recompute(), &degenerate))
	assert.Equal(t, AxisX, degenerate.Axis)
}

func TestNewOptions(t *testing.T) {
	x := AxisConfig{Scale: Logarithmic, Start: 1, Stop: 100}
	f := New(&Options{
		X:        x,
		Padding:  &Padding{},
		MaxTicks: 30,
	})
	f.SetViewport(100, 50)
	require.NoError(t, f.Recompute())

	assert.Equal(t, x, f.AxisConfig(AxisX))
	assert.Equal(t, DefaultYAxis(), f.AxisConfig(AxisY))

	tx := f.Transform(AxisX)
	assert.InDelta(t, 0, tx.Apply(1), 1e-9)
	assert.InDelta(t, 100, tx.Apply(100), 1e-9)

	// the default x axis has 40 minor ticks
	f.SetAxis(AxisX, DefaultXAxis())
	err := f.Recompute()
	var overflow *TickOverflowError
	require.True(t, errors.As(err, &overflow))
	assert.Equal(t, AxisX, overflow.Axis)
	assert.True(t, overflow.Minor)
	assert.Equal(t, 40, overflow.Count)
	assert.Equal(t, 30, overflow.Max)
}

func TestStateTransitions(t *testing.T) {
	f := newTestFrame(t)
	assert.Equal(t, Fresh, f.State())

	f.SetViewport(640, 480)
	assert.Equal(t, Fresh, f.State(), "unchanged viewport")

	f.SetViewport(800, 600)
	assert.Equal(t, Stale, f.State())
	require.NoError(t, f.Recompute())
	assert.Equal(t, Fresh, f.State())

	f.SetAxis(AxisY, AxisConfig{Scale: Linear, Start: 0, Stop: 10, MajorIncrement: 1})
	assert.Equal(t, Stale, f.State())
	require.NoError(t, f.Recompute())

	f.SetPadding(Padding{Top: 1, Right: 2, Bottom: 3, Left: 4})
	assert.Equal(t, Stale, f.State())
	require.NoError(t, f.Recompute())

	f.SetMaxTicks(50)
	assert.Equal(t, Stale, f.State())
	require.NoError(t, f.Recompute())

	// writing data does not touch transforms or ticks
	require.NoError(t, f.WriteSeries(0, []vec.Vec2{{X: 0.5, Y: 5}}))
	assert.Equal(t, Fresh, f.State())

	// going back to an earlier configuration is a change, too
	f.SetViewport(640, 480)
	assert.Equal(t, Stale, f.State())
}

func TestRecomputeIdempotent(t *testing.T) {
	f := newTestFrame(t)
	xt, yt := f.Ticks(AxisX), f.Ticks(AxisY)
	tx, ty := f.Transform(AxisX), f.Transform(AxisY)

	require.NoError(t, f.Recompute())
	assert.Equal(t, xt, f.Ticks(AxisX))
	assert.Equal(t, yt, f.Ticks(AxisY))
	assert.True(t, tx == f.Transform(AxisX))
	assert.True(t, ty == f.Transform(AxisY))

	// an independent frame with the same inputs gives identical output
	g := newTestFrame(t)
	assert.Equal(t, xt, g.Ticks(AxisX))
	assert.True(t, tx == g.Transform(AxisX))
	assert.True(t, ty == g.Transform(AxisY))
}

func TestRecomputeFailureKeepsState(t *testing.T) {
	f := newTestFrame(t)
	require.NoError(t, f.WriteSeries(0, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 50}}))
	paths := f.RenderPaths()
	xt := f.Ticks(AxisX)
	tx := f.Transform(AxisX)
	w := f.Window()

	bad := AxisConfig{Scale: Linear, Start: 5, Stop: 5, MajorIncrement: 1}
	f.SetAxis(AxisX, bad)
	err := f.Recompute()

	var degenerate *DegenerateAxisError
	require.True(t, errors.As(err, &degenerate))
	assert.True(t, degenerate.HasAxis)
	assert.Equal(t, AxisX, degenerate.Axis)
	assert.Contains(t, err.Error(), "chart: degenerate x axis")

	assert.Equal(t, Stale, f.State())
	assert.Equal(t, bad, f.AxisConfig(AxisX))
	assert.Equal(t, xt, f.Ticks(AxisX))
	assert.True(t, tx == f.Transform(AxisX))
	assert.Equal(t, w, f.Window())
	assert.Equal(t, paths, f.RenderPaths())

	// fixing the input recovers
	f.SetAxis(AxisX, DefaultXAxis())
	require.NoError(t, f.Recompute())
	assert.Equal(t, Fresh, f.State())
}

func TestLogVerticalAxis(t *testing.T) {
	f := newTestFrame(t)
	f.SetAxis(AxisY, AxisConfig{Scale: Logarithmic, Start: 1, Stop: 100})
	err := f.Recompute()

	var degenerate *DegenerateAxisError
	require.True(t, errors.As(err, &degenerate))
	assert.Equal(t, AxisY, degenerate.Axis)
}

func TestSetAxisInvalid(t *testing.T) {
	f := New(nil)
	assert.Panics(t, func() { f.SetAxis(Axis(2), DefaultXAxis()) })
}

func TestWriteSeries(t *testing.T) {
	f := newTestFrame(t)

	for _, slot := range []int{-1, MaxSeries, math.MaxInt} {
		err := f.WriteSeries(slot, []vec.Vec2{{X: 0, Y: 0}})
		var slotErr *SlotIndexError
		require.True(t, errors.As(err, &slotErr), "slot %d", slot)
		assert.Equal(t, slot, slotErr.Slot)
	}
	assert.Zero(t, f.NumSeries())

	// writing past the end adds empty slots
	pts := []vec.Vec2{{X: 0.1, Y: 10}, {X: 0.2, Y: 20}}
	require.NoError(t, f.WriteSeries(2, pts))
	assert.Equal(t, 3, f.NumSeries())
	assert.Empty(t, f.Series(0))
	assert.Empty(t, f.Series(1))
	assert.Equal(t, Series(pts), f.Series(2))
	assert.Nil(t, f.Series(3))
	assert.Nil(t, f.Series(-1))

	// the data is copied
	pts[0].X = 0.9
	assert.Equal(t, 0.1, f.Series(2)[0].X)

	paths := f.RenderPaths()
	require.Len(t, paths, 3)
	assert.Empty(t, paths[0])
	assert.Empty(t, paths[1])
	require.Len(t, paths[2], 1)
	assert.Len(t, paths[2][0], 2)
}

func TestWriteEmptySeries(t *testing.T) {
	f := newTestFrame(t)
	require.NoError(t, f.WriteSeries(0, []vec.Vec2{{X: 0.1, Y: 10}, {X: 0.2, Y: 20}}))
	require.Len(t, f.RenderPaths()[0], 1)

	require.NoError(t, f.WriteSeries(0, nil))
	paths := f.RenderPaths()
	require.Len(t, paths, 1)
	assert.Empty(t, paths[0])
}

func TestRenderPathsCache(t *testing.T) {
	f := newTestFrame(t)
	require.NoError(t, f.WriteSeries(0, []vec.Vec2{{X: 0.1, Y: 10}, {X: 0.2, Y: 20}}))
	require.NoError(t, f.WriteSeries(1, []vec.Vec2{{X: 0.3, Y: 30}}))

	first := f.RenderPaths()
	p0, p1 := &first[0][0][0], &first[1][0][0]

	// unchanged inputs reuse the cached paths
	again := f.RenderPaths()
	assert.Same(t, p0, &again[0][0][0])
	assert.Same(t, p1, &again[1][0][0])

	// writing slot 1 only invalidates slot 1
	require.NoError(t, f.WriteSeries(1, []vec.Vec2{{X: 0.4, Y: 40}}))
	again = f.RenderPaths()
	assert.Same(t, p0, &again[0][0][0])
	assert.NotSame(t, p1, &again[1][0][0])
	p1 = &again[1][0][0]

	// new transforms invalidate everything
	f.SetViewport(800, 600)
	require.NoError(t, f.Recompute())
	again = f.RenderPaths()
	assert.NotSame(t, p0, &again[0][0][0])
	assert.NotSame(t, p1, &again[1][0][0])
	assert.InDelta(t, f.Transform(AxisX).Apply(0.1), again[0][0][0].X, 1e-9)
}

func TestFrameLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := New(&Options{Logger: logger})
	f.SetViewport(640, 480)

	require.NoError(t, f.Recompute())
	assert.Contains(t, buf.String(), "chart: recomputed")

	buf.Reset()
	require.NoError(t, f.Recompute())
	assert.Contains(t, buf.String(), "recompute skipped")

	buf.Reset()
	require.NoError(t, f.WriteSeries(3, []vec.Vec2{{X: 0, Y: 0}}))
	assert.Contains(t, buf.String(), "slot=3")

	buf.Reset()
	f.SetMaxTicks(10)
	require.Error(t, f.Recompute())
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "too many ticks")
}

func TestTicksAreCopies(t *testing.T) {
	f := newTestFrame(t)
	want := f.Ticks(AxisX)

	ts := f.Ticks(AxisX)
	ts.Major[0] = 42
	ts.Labels[0] = "42"
	ts.Minor[0] = 42
	major, labels := f.MajorTicks(AxisX)
	major[1] = 43
	labels[1] = "43"
	f.MinorTicks(AxisX)[1] = 43

	assert.Equal(t, want, f.Ticks(AxisX))
	assert.Equal(t, "0", f.Labels(AxisX)[0].Text)

	// gridlines come from the unmodified ticks
	majorLines, _ := f.GridLines()
	assert.InDelta(t, 50, majorLines[0].A.X, 1e-9)
}
