// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"io"
)

// Surface is the drawing target used by the flowchart painter.
//
// Example usage:
//
//	s, _ := surface.NewSurfaceByName("image", surface.Options{Width: 400, Height: 300})
//	defer s.Close()
//
//	p := surface.NewPath()
//	p.Rectangle(50, 50, 100, 50)
//	s.Stroke(p, surface.StrokeStyle{Color: color.Black, Width: 2.5})
type Surface interface {
	// Width returns the surface width in logical pixels.
	Width() int

	// Height returns the surface height in logical pixels.
	Height() int

	// Clear resets the given rectangle to transparent.
	Clear(x, y, w, h float64)

	// FillRect fills an axis-aligned rectangle with a solid color.
	FillRect(x, y, w, h float64, c color.Color)

	// Stroke strokes the path. The path is not modified.
	Stroke(path *Path, style StrokeStyle)

	// Fill fills the path using the non-zero rule. The path is not modified.
	Fill(path *Path, style FillStyle)

	// MeasureText returns the advance width of s in pixels.
	MeasureText(s string, font Font) float64

	// DrawText draws s anchored at (x, y) according to the style alignment.
	// A positive style.MaxWidth compresses the glyph run to that width.
	DrawText(s string, x, y float64, style TextStyle)

	// Save pushes the current drawing state.
	Save()

	// Restore pops the drawing state pushed by the matching Save.
	// Restore on an empty stack is a no-op.
	Restore()

	// Close releases the surface. Close is idempotent.
	Close() error
}

// ImageSurface is implemented by surfaces backed by a pixel buffer.
type ImageSurface interface {
	Surface

	// Image returns the current contents at device resolution.
	Image() image.Image
}

// WriterSurface is implemented by surfaces that serialize to a document.
type WriterSurface interface {
	Surface

	// WriteTo writes the document produced so far.
	WriteTo(w io.Writer) (int64, error)
}
