// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster provides the pixel surface backend, drawn with gg.
//
// Importing the package registers the "image" backend:
//
//	import _ "github.com/gogpu/flowchart/surface/raster"
//
// The backing gg.Context is PixelRatio times the logical size and carries a
// base transform of Scale(ratio) followed by Translate(0.5, 0.5), so one
// pixel wide lines land on pixel centers.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/flowchart/fonts"
	"github.com/gogpu/flowchart/surface"
	"github.com/gogpu/gg"
)

// Name is the registry name of this backend.
const Name = "image"

// Priority is the registry priority; raster is preferred over vector output.
const Priority = 10

// pixelOffset is the half pixel shift applied before any drawing.
const pixelOffset = 0.5

func init() {
	surface.Register(Name, Priority, func(opts surface.Options) (surface.Surface, error) {
		return New(opts)
	}, nil)
}

// Option configures a Surface.
type Option func(*Surface)

// WithFonts sets the font resolver used for text. The default is
// fonts.Default().
func WithFonts(r *fonts.Resolver) Option {
	return func(s *Surface) {
		if r != nil {
			s.fonts = r
		}
	}
}

// Surface renders into an RGBA pixel buffer.
type Surface struct {
	dc     *gg.Context
	width  int
	height int
	ratio  float64
	fonts  *fonts.Resolver
	err    error
	closed bool
}

var (
	_ surface.Surface       = (*Surface)(nil)
	_ surface.ImageSurface  = (*Surface)(nil)
	_ surface.WriterSurface = (*Surface)(nil)
)

// New creates a raster surface of opts.Width x opts.Height logical pixels.
func New(opts surface.Options, options ...Option) (*Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, surface.ErrInvalidDimensions
	}

	ratio := opts.Ratio()
	s := &Surface{
		width:  opts.Width,
		height: opts.Height,
		ratio:  ratio,
		fonts:  fonts.Default(),
	}
	for _, opt := range options {
		opt(s)
	}

	dw := int(math.Ceil(float64(opts.Width) * ratio))
	dh := int(math.Ceil(float64(opts.Height) * ratio))
	s.dc = gg.NewContext(dw, dh)
	s.dc.Scale(ratio, ratio)
	s.dc.Translate(pixelOffset, pixelOffset)

	surface.Logger().Debug("raster surface created",
		"width", opts.Width, "height", opts.Height, "ratio", ratio,
		"device_width", dw, "device_height", dh)
	return s, nil
}

// Width returns the logical width.
func (s *Surface) Width() int { return s.width }

// Height returns the logical height.
func (s *Surface) Height() int { return s.height }

// PixelRatio returns the device pixel ratio.
func (s *Surface) PixelRatio() float64 { return s.ratio }

// Err returns the first rendering error reported by gg, if any.
func (s *Surface) Err() error { return s.err }

func (s *Surface) record(err error) {
	if err == nil {
		return
	}
	surface.Logger().Warn("raster draw failed", "err", err)
	if s.err == nil {
		s.err = err
	}
}

// Clear makes the rectangle fully transparent. Clearing an area that covers
// the whole surface resets every device pixel.
func (s *Surface) Clear(x, y, w, h float64) {
	if s.closed {
		return
	}
	if x <= 0 && y <= 0 && x+w >= float64(s.width) && y+h >= float64(s.height) {
		s.dc.Clear()
		return
	}

	x0, y0 := s.device(x, y)
	x1, y1 := s.device(x+w, y+h)
	ix0 := clampInt(int(math.Floor(math.Min(x0, x1))), 0, s.dc.Width())
	iy0 := clampInt(int(math.Floor(math.Min(y0, y1))), 0, s.dc.Height())
	ix1 := clampInt(int(math.Ceil(math.Max(x0, x1))), 0, s.dc.Width())
	iy1 := clampInt(int(math.Ceil(math.Max(y0, y1))), 0, s.dc.Height())
	for py := iy0; py < iy1; py++ {
		for px := ix0; px < ix1; px++ {
			s.dc.SetPixel(px, py, gg.Transparent)
		}
	}
}

// FillRect fills an axis aligned rectangle.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if s.closed || w == 0 || h == 0 {
		return
	}
	s.dc.SetColor(orBlack(c))
	s.dc.DrawRectangle(x, y, w, h)
	s.record(s.dc.Fill())
}

// Stroke strokes path. Widths that are not positive draw nothing.
func (s *Surface) Stroke(path *surface.Path, style surface.StrokeStyle) {
	if s.closed || path.IsEmpty() || !(style.Width > 0) {
		return
	}
	path.Walk(pathSink{s.dc})
	s.dc.SetColor(orBlack(style.Color))
	s.dc.SetLineWidth(style.Width)
	s.record(s.dc.Stroke())
}

// Fill fills path with the non-zero rule.
func (s *Surface) Fill(path *surface.Path, style surface.FillStyle) {
	if s.closed || path.IsEmpty() {
		return
	}
	path.Walk(pathSink{s.dc})
	s.dc.SetColor(orBlack(style.Color))
	s.record(s.dc.Fill())
}

// MeasureText returns the advance width of str in logical pixels.
func (s *Surface) MeasureText(str string, font surface.Font) float64 {
	return s.fonts.Measure(str, font.Family, font.Size)
}

// DrawText draws str anchored at (x, y) according to the style alignment.
//
// gg draws glyphs straight into the pixel buffer, so text is positioned in
// device space here. A constrained width that the text exceeds shrinks the
// face until the advance fits. gg ignores the transform for text, so the
// label shrinks in both directions, not only horizontally as canvas
// fillText does.
func (s *Surface) DrawText(str string, x, y float64, style surface.TextStyle) {
	if s.closed || str == "" || !(style.Font.Size > 0) {
		return
	}

	size := style.Font.Size
	w := s.fonts.Measure(str, style.Font.Family, size)
	if style.Constrained() && w > style.MaxWidth {
		size *= style.MaxWidth / w
		w = style.MaxWidth
	}

	switch style.AlignX {
	case surface.AlignCenter:
		x -= w / 2
	case surface.AlignRight:
		x -= w
	}

	m := s.fonts.Metrics(style.Font.Family, size)
	switch style.AlignY {
	case surface.AlignTop:
		y += m.Ascent
	case surface.AlignMiddle:
		y += (m.Ascent - m.Descent) / 2
	case surface.AlignBottom:
		y -= m.Descent
	}

	dx, dy := s.device(x, y)
	s.dc.SetFont(s.fonts.Face(style.Font.Family, size*s.ratio))
	s.dc.SetColor(orBlack(style.Color))
	s.dc.DrawString(str, dx, dy)
}

// Save pushes the drawing state.
func (s *Surface) Save() { s.dc.Push() }

// Restore pops the drawing state. Unbalanced calls are ignored.
func (s *Surface) Restore() { s.dc.Pop() }

// Image returns the rendered pixels at device resolution.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// WriteTo writes the surface as PNG and implements io.WriterTo.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// Close releases the gg context. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

// device maps a logical point through the base transform.
func (s *Surface) device(x, y float64) (float64, float64) {
	return (x + pixelOffset) * s.ratio, (y + pixelOffset) * s.ratio
}

// pathSink replays a surface.Path into a gg.Context.
type pathSink struct {
	dc *gg.Context
}

func (p pathSink) MoveTo(x, y float64)         { p.dc.MoveTo(x, y) }
func (p pathSink) LineTo(x, y float64)         { p.dc.LineTo(x, y) }
func (p pathSink) QuadTo(cx, cy, x, y float64) { p.dc.QuadraticTo(cx, cy, x, y) }
func (p pathSink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}
func (p pathSink) Close() { p.dc.ClosePath() }

func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
