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
	"errors"
	"log/slog"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// State describes whether a Frame's transforms and ticks match its
// current inputs.
type State int

const (
	// Stale means that Recompute must be called before ticks and
	// transforms reflect the current inputs.
	Stale State = iota

	// Fresh means that the derived state matches the inputs.
	Fresh
)

func (s State) String() string {
	if s == Fresh {
		return "fresh"
	}
	return "stale"
}

// Options configures a new Frame.  The zero value of every field selects
// the default.
type Options struct {
	X, Y AxisConfig

	// Padding is reserved around the plot area.
	// Nil selects DefaultPadding.
	Padding *Padding

	// MaxTicks limits the number of major and of minor ticks per axis.
	MaxTicks int

	// Logger receives debug messages about recomputation and data
	// updates.  Nil discards all messages.
	Logger *slog.Logger
}

// MaxSeries is the number of series slots a Frame provides.
const MaxSeries = 1 << 16

// frameKey collects every input the derived state depends on.
type frameKey struct {
	x, y          AxisConfig
	width, height int
	pad           Padding
	maxTicks      int
}

// derived is the cached result of Recompute for one frameKey.
type derived struct {
	key    frameKey
	tx, ty Transform
	xt, yt TickSet
}

// Frame holds the inputs of one chart and the state derived from them.
//
// Transforms and ticks depend only on the axis configurations, the
// viewport size, the padding and the tick limit.  They are rebuilt by
// Recompute when one of these changes.  Series data only affects the
// clipped paths, which are cached per slot.
//
// A Frame is not safe for concurrent use.
type Frame struct {
	key frameKey
	cur *derived // nil until the first successful Recompute

	series []Series
	paths  [][]ClippedPath
	valid  []bool

	log *slog.Logger
}

// New returns a Frame with the given options and an empty viewport.
// A nil opts selects the defaults for all fields.
func New(opts *Options) *Frame {
	if opts == nil {
		opts = &Options{}
	}

	key := frameKey{
		x:        opts.X,
		y:        opts.Y,
		pad:      DefaultPadding(),
		maxTicks: opts.MaxTicks,
	}
	if key.x == (AxisConfig{}) {
		key.x = DefaultXAxis()
	}
	if key.y == (AxisConfig{}) {
		key.y = DefaultYAxis()
	}
	if opts.Padding != nil {
		key.pad = *opts.Padding
	}
	if key.maxTicks <= 0 {
		key.maxTicks = DefaultMaxTicks
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Frame{key: key, log: logger}
}

// SetViewport sets the size of the drawing area in pixels.
func (f *Frame) SetViewport(width, height int) {
	f.key.width = width
	f.key.height = height
}

// Viewport returns the size of the drawing area in pixels.
func (f *Frame) Viewport() (width, height int) {
	return f.key.width, f.key.height
}

// SetAxis replaces the configuration of one axis.  The configuration is
// checked by the next call to Recompute.
func (f *Frame) SetAxis(a Axis, cfg AxisConfig) {
	switch a {
	case AxisX:
		f.key.x = cfg
	case AxisY:
		f.key.y = cfg
	default:
		panic("chart: invalid axis " + a.String())
	}
}

// AxisConfig returns the current configuration of one axis.
func (f *Frame) AxisConfig(a Axis) AxisConfig {
	if a == AxisY {
		return f.key.y
	}
	return f.key.x
}

// SetPadding changes the space reserved around the plot area.
func (f *Frame) SetPadding(p Padding) {
	f.key.pad = p
}

// SetMaxTicks changes the tick limit.  Values <= 0 select
// DefaultMaxTicks.
func (f *Frame) SetMaxTicks(n int) {
	if n <= 0 {
		n = DefaultMaxTicks
	}
	f.key.maxTicks = n
}

// State reports whether the derived state matches the current inputs.
func (f *Frame) State() State {
	if f.cur != nil && f.cur.key == f.key {
		return Fresh
	}
	return Stale
}

// Recompute rebuilds both transforms and both tick sets if the inputs
// have changed since the last successful call.
//
// On error the previous transforms and ticks stay in place, so that a
// renderer can keep showing the last valid chart.  The error is a
// *DegenerateAxisError or a *TickOverflowError.
func (f *Frame) Recompute() error {
	if f.State() == Fresh {
		f.log.Debug("chart: recompute skipped, inputs unchanged")
		return nil
	}

	key := f.key
	xSpan := ViewportSpan{
		PixelEnd:    float64(key.width),
		PaddingLow:  key.pad.Left,
		PaddingHigh: key.pad.Right,
	}
	ySpan := ViewportSpan{
		PixelEnd:    float64(key.height),
		PaddingLow:  key.pad.Top,
		PaddingHigh: key.pad.Bottom,
	}

	d := &derived{key: key}
	var err error
	if d.tx, err = NewTransform(key.x, xSpan); err != nil {
		return f.fail(withAxis(err, AxisX))
	}
	if d.ty, err = NewInvertedTransform(key.y, ySpan); err != nil {
		return f.fail(withAxis(err, AxisY))
	}
	if d.xt, err = GenerateTicks(key.x, key.maxTicks); err != nil {
		return f.fail(withAxis(err, AxisX))
	}
	if d.yt, err = GenerateTicks(key.y, key.maxTicks); err != nil {
		return f.fail(withAxis(err, AxisY))
	}

	f.cur = d
	clear(f.valid)
	f.log.Debug("chart: recomputed",
		"width", key.width, "height", key.height,
		"xMajor", len(d.xt.Major), "xMinor", len(d.xt.Minor),
		"yMajor", len(d.yt.Major), "yMinor", len(d.yt.Minor))
	return nil
}

func (f *Frame) fail(err error) error {
	var overflow *TickOverflowError
	if errors.As(err, &overflow) {
		f.log.Warn("chart: too many ticks", "err", err)
	} else {
		f.log.Debug("chart: recompute failed", "err", err)
	}
	return err
}

// Ticks returns a copy of the tick set of one axis from the last
// successful Recompute.  Before the first successful Recompute the
// result is empty.
func (f *Frame) Ticks(a Axis) TickSet {
	if f.cur == nil {
		return TickSet{}
	}
	ts := f.cur.xt
	if a == AxisY {
		ts = f.cur.yt
	}
	return TickSet{
		Major:  slices.Clone(ts.Major),
		Labels: slices.Clone(ts.Labels),
		Minor:  slices.Clone(ts.Minor),
	}
}

// MajorTicks returns the major tick positions and labels of one axis.
func (f *Frame) MajorTicks(a Axis) ([]float64, []string) {
	ts := f.Ticks(a)
	return ts.Major, ts.Labels
}

// MinorTicks returns the minor tick positions of one axis.
func (f *Frame) MinorTicks(a Axis) []float64 {
	return f.Ticks(a).Minor
}

// Transform returns the transform of one axis from the last successful
// Recompute.  Before the first successful Recompute the zero Transform
// is returned.
func (f *Frame) Transform(a Axis) Transform {
	if f.cur == nil {
		return Transform{}
	}
	if a == AxisY {
		return f.cur.ty
	}
	return f.cur.tx
}

// Window returns the visible domain of the last successful Recompute.
func (f *Frame) Window() Window {
	if f.cur == nil {
		return Window{}
	}
	return WindowOf(f.cur.key.x, f.cur.key.y)
}

// WriteSeries replaces the data in one slot.  The points are copied.
// Writing past the last slot adds empty slots as needed.  Only the
// cached path of this slot is invalidated; transforms and ticks are not
// affected.
func (f *Frame) WriteSeries(slot int, points []vec.Vec2) error {
	if slot < 0 || slot >= MaxSeries {
		return &SlotIndexError{Slot: slot}
	}
	f.log.Debug("chart: writing series", "slot", slot, "points", len(points))

	if extra := slot + 1 - len(f.series); extra > 0 {
		f.series = append(f.series, make([]Series, extra)...)
		f.paths = append(f.paths, make([][]ClippedPath, extra)...)
		f.valid = append(f.valid, make([]bool, extra)...)
	}
	f.series[slot] = slices.Clone(Series(points))
	f.paths[slot] = nil
	f.valid[slot] = false
	return nil
}

// Series returns the data in one slot, or nil if the slot is unused.
// The returned slice must not be modified.
func (f *Frame) Series(slot int) Series {
	if slot < 0 || slot >= len(f.series) {
		return nil
	}
	return f.series[slot]
}

// NumSeries returns the number of series slots.
func (f *Frame) NumSeries() int {
	return len(f.series)
}

// RenderPaths returns the clipped pixel paths of all series, indexed by
// slot.  Slots with an empty series have no paths.  Paths are cached per
// slot until the slot is written or the transforms change.
//
// Before the first successful Recompute the result is nil.
// The result is shared with the cache and must not be modified.
func (f *Frame) RenderPaths() [][]ClippedPath {
	if f.cur == nil {
		return nil
	}
	w := f.Window()
	for i, s := range f.series {
		if f.valid[i] {
			continue
		}
		f.paths[i] = Clip(s, f.cur.tx, f.cur.ty, w)
		f.valid[i] = true
		f.log.Debug("chart: clipped series", "slot", i, "paths", len(f.paths[i]))
	}
	return f.paths
}
