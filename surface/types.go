// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image/color"
)

// Point is a 2D point in logical pixels.
type Point struct {
	X, Y float64
}

// StrokeStyle defines how to stroke a path.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in pixels.
	Width float64
}

// DefaultStrokeStyle returns a black 1px stroke.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Color: color.Black, Width: 1}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// FillStyle defines how to fill a path.
type FillStyle struct {
	// Color is the fill color.
	Color color.Color
}

// Font selects a font family at a pixel size.
type Font struct {
	// Family is a font family name such as "Arial".
	// Backends fall back to a built-in face when the family is unknown.
	Family string

	// Size is the font size in pixels.
	Size float64
}

// String returns the font in CSS shorthand form, e.g. "25px Arial".
func (f Font) String() string {
	return fmt.Sprintf("%gpx %s", f.Size, f.Family)
}

// HAlign selects which point of the text run sits on the anchor x.
type HAlign uint8

const (
	// AlignLeft puts the start of the run on the anchor.
	AlignLeft HAlign = iota

	// AlignCenter centers the run on the anchor.
	AlignCenter

	// AlignRight puts the end of the run on the anchor.
	AlignRight
)

// String returns the alignment name.
func (a HAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// VAlign selects which line of the text box sits on the anchor y.
type VAlign uint8

const (
	// AlignTop puts the top of the em box on the anchor.
	AlignTop VAlign = iota

	// AlignMiddle puts the middle of the em box on the anchor.
	AlignMiddle

	// AlignBottom puts the bottom of the em box on the anchor.
	AlignBottom
)

// String returns the alignment name.
func (a VAlign) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// TextStyle defines how to draw a text run.
type TextStyle struct {
	Font   Font
	Color  color.Color
	AlignX HAlign
	AlignY VAlign

	// MaxWidth, when positive, is the width in pixels the run is
	// horizontally compressed to. Zero draws the run unconstrained.
	MaxWidth float64
}

// Constrained reports whether the run must be compressed to MaxWidth.
func (t TextStyle) Constrained() bool {
	return t.MaxWidth > 0
}

// Options configures surface creation through the registry.
type Options struct {
	// Width is the surface width in logical pixels.
	Width int

	// Height is the surface height in logical pixels.
	Height int

	// PixelRatio is the number of device pixels per logical pixel.
	// Zero is treated as 1.
	PixelRatio float64
}

// Ratio returns the effective pixel ratio.
func (o Options) Ratio() float64 {
	if o.PixelRatio <= 0 {
		return 1
	}
	return o.PixelRatio
}
