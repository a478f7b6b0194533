// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

import "github.com/gogpu/flowchart/surface"

// Default option values.
const (
	DefaultGap     = 50.0
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultBackend = "image"
)

// Options is the rendering configuration of a chart.
type Options struct {
	// Gap is the number of pixels per grid unit.
	Gap float64

	// Width and Height are the surface size in pixels. Zero takes the size
	// of a surface supplied with WithSurface, or DefaultWidth and
	// DefaultHeight when the chart creates its own surface.
	Width  int
	Height int

	// Background is the color painted under the grid. Empty means none.
	Background string

	// ShowGrid draws grid lines every Gap pixels.
	ShowGrid bool

	// RepaintAfterMutation repaints after every Add, Remove and Clear.
	RepaintAfterMutation bool

	// PixelRatio is the device pixel ratio of a surface created by the
	// chart. Values <= 0 mean 1.
	PixelRatio float64

	// Backend names the surface backend used when no surface is supplied.
	Backend string
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Gap:                  DefaultGap,
		ShowGrid:             true,
		RepaintAfterMutation: true,
		PixelRatio:           1,
		Backend:              DefaultBackend,
	}
}

// Option configures a Chart during creation.
//
// Example:
//
//	c := flowchart.New(
//	    flowchart.WithGap(40),
//	    flowchart.WithSize(640, 480),
//	    flowchart.WithBackground("white"),
//	)
type Option func(*chartConfig)

type chartConfig struct {
	opts    Options
	surface surface.Surface
}

// WithGap sets the number of pixels per grid unit.
func WithGap(gap float64) Option {
	return func(c *chartConfig) {
		c.opts.Gap = gap
	}
}

// WithSize sets the surface size in pixels.
func WithSize(width, height int) Option {
	return func(c *chartConfig) {
		c.opts.Width = width
		c.opts.Height = height
	}
}

// WithBackground sets the background color. Any color accepted by
// ParseColor works; "" disables the background fill.
func WithBackground(color string) Option {
	return func(c *chartConfig) {
		c.opts.Background = color
	}
}

// WithGrid enables or disables the grid.
func WithGrid(show bool) Option {
	return func(c *chartConfig) {
		c.opts.ShowGrid = show
	}
}

// WithRepaintAfterMutation controls whether Add, Remove and Clear repaint.
func WithRepaintAfterMutation(repaint bool) Option {
	return func(c *chartConfig) {
		c.opts.RepaintAfterMutation = repaint
	}
}

// WithPixelRatio sets the device pixel ratio of the created surface.
func WithPixelRatio(ratio float64) Option {
	return func(c *chartConfig) {
		c.opts.PixelRatio = ratio
	}
}

// WithBackend selects the surface backend by registry name, such as
// "image" or "svg".
func WithBackend(name string) Option {
	return func(c *chartConfig) {
		c.opts.Backend = name
	}
}

// WithSurface draws onto s instead of creating a surface. The chart does
// not close a supplied surface.
func WithSurface(s surface.Surface) Option {
	return func(c *chartConfig) {
		c.surface = s
	}
}

// WithOptions replaces the whole configuration. Later options still apply
// on top of it.
func WithOptions(o Options) Option {
	return func(c *chartConfig) {
		c.opts = o
	}
}
