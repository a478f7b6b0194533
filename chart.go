// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/flowchart/surface"
)

var (
	// ErrNoSurface is returned by output methods of a chart whose surface
	// could not be created.
	ErrNoSurface = errors.New("flowchart: no surface")

	// ErrNotWritable is returned by WriteTo when the surface has no
	// serialized form.
	ErrNotWritable = errors.New("flowchart: surface cannot be written")
)

// Chart is a drawing session. It owns its options, its scene and its
// surface.
//
// A Chart is not safe for concurrent use.
type Chart struct {
	opts    Options
	scene   Scene
	surface surface.Surface
	owned   bool
	err     error
}

// New creates a chart and paints the empty scene.
//
// Unless WithSurface is given, the surface is created from the backend
// registry using Options.Backend. If that fails the error is logged, the
// chart keeps working without a surface and Err reports the failure.
func New(opts ...Option) *Chart {
	cfg := chartConfig{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Chart{opts: cfg.opts}

	if cfg.surface != nil {
		c.surface = cfg.surface
		if c.opts.Width <= 0 {
			c.opts.Width = cfg.surface.Width()
		}
		if c.opts.Height <= 0 {
			c.opts.Height = cfg.surface.Height()
		}
	} else {
		if c.opts.Width <= 0 {
			c.opts.Width = DefaultWidth
		}
		if c.opts.Height <= 0 {
			c.opts.Height = DefaultHeight
		}
		s, err := surface.NewSurfaceByName(c.opts.Backend, surface.Options{
			Width:      c.opts.Width,
			Height:     c.opts.Height,
			PixelRatio: c.opts.PixelRatio,
		})
		if err != nil {
			c.err = fmt.Errorf("flowchart: surface setup: %w", err)
			Logger().Error("surface setup failed", "backend", c.opts.Backend, "err", err)
		} else {
			c.surface = s
			c.owned = true
		}
	}

	Logger().Debug("chart created",
		"width", c.opts.Width, "height", c.opts.Height, "gap", c.opts.Gap,
		"backend", c.opts.Backend, "surface", c.surface != nil)

	c.Repaint()
	return c
}

// Err returns the surface setup error, if any.
func (c *Chart) Err() error {
	return c.err
}

// Options returns the current options.
func (c *Chart) Options() Options {
	return c.opts
}

// Surface returns the chart's surface, or nil if setup failed.
func (c *Chart) Surface() surface.Surface {
	return c.surface
}

// Gap returns the number of pixels per grid unit.
func (c *Chart) Gap() float64 {
	return c.opts.Gap
}

// SetGap changes the number of pixels per grid unit. It does not repaint.
func (c *Chart) SetGap(gap float64) {
	c.opts.Gap = gap
}

// Shapes returns the scene's shapes in paint order.
func (c *Chart) Shapes() []Shape {
	return c.scene.Shapes()
}

// Len returns the number of shapes in the scene.
func (c *Chart) Len() int {
	return c.scene.Len()
}

// Add appends shapes to the scene.
func (c *Chart) Add(shapes ...Shape) {
	c.scene.Add(shapes...)
	c.mutated()
}

// Remove deletes shapes from the scene. Shapes not in the scene are
// ignored.
func (c *Chart) Remove(shapes ...Shape) {
	c.scene.Remove(shapes...)
	c.mutated()
}

// Clear empties the scene.
func (c *Chart) Clear() {
	c.scene.Clear()
	c.mutated()
}

func (c *Chart) mutated() {
	if c.opts.RepaintAfterMutation {
		c.Repaint()
	}
}

// Repaint redraws the whole scene.
func (c *Chart) Repaint() {
	if c.surface == nil {
		return
	}
	Repaint(c.surface, c.scene.shapes, c.opts)
}

// Image returns the rendered pixels when the surface is a raster surface,
// and nil otherwise.
func (c *Chart) Image() image.Image {
	if is, ok := c.surface.(surface.ImageSurface); ok {
		return is.Image()
	}
	return nil
}

// WriteTo writes the surface in its native format: PNG for the "image"
// backend, an SVG document for "svg".
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	if c.surface == nil {
		return 0, ErrNoSurface
	}
	ws, ok := c.surface.(surface.WriterSurface)
	if !ok {
		return 0, ErrNotWritable
	}
	return ws.WriteTo(w)
}

// Close releases the surface if the chart created it.
func (c *Chart) Close() error {
	if c.surface == nil || !c.owned {
		return nil
	}
	err := c.surface.Close()
	c.surface = nil
	return err
}
