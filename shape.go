// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

// ShapeType is the discriminant of a shape record.
type ShapeType string

// Shape types understood by Repaint.
const (
	TypeCircle  ShapeType = "CIRCLE"
	TypeRect    ShapeType = "RECTANGLE"
	TypeRhombus ShapeType = "RHOMBUS"
	TypeText    ShapeType = "TEXT"
	TypeArrow   ShapeType = "ARROW"
)

// Shape is a declarative shape record in grid units.
//
// The records in this package are the closed set Repaint knows how to
// draw. Other implementations may be stored in a Scene; Repaint skips them.
type Shape interface {
	Type() ShapeType
}

// Point is a position in grid units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Style holds the outline and fill settings shared by closed shapes.
type Style struct {
	IsFill      bool
	FillColor   string
	StrokeColor string

	// LineWidth is the outline width in grid units.
	LineWidth float64
}

func (s *Style) style() *Style { return s }

// Corners holds per-corner radii of a rounded rectangle, in grid units.
type Corners struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// Circle is a circle centered at (X, Y).
type Circle struct {
	Style
	X, Y   float64
	Radius float64
}

// Type implements Shape.
func (*Circle) Type() ShapeType { return TypeCircle }

// Rect is an axis aligned rectangle with its top-left corner at (X, Y).
// A non-nil Corners makes it a rounded rectangle.
type Rect struct {
	Style
	X, Y          float64
	Width, Height float64
	Corners       *Corners
}

// Type implements Shape.
func (*Rect) Type() ShapeType { return TypeRect }

// Rhombus is the diamond inscribed in the box at (X, Y) of the given size.
type Rhombus struct {
	Style
	X, Y          float64
	Width, Height float64
}

// Type implements Shape.
func (*Rhombus) Type() ShapeType { return TypeRhombus }

// HAlign is the horizontal anchor of a text label.
type HAlign string

// Horizontal alignments. Unrecognized values behave as AlignLeft.
const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"
)

// VAlign is the vertical anchor of a text label.
type VAlign string

// Vertical alignments. "middle" is accepted as a synonym of AlignMiddle.
// Unrecognized values behave as AlignTop.
const (
	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "center"
	AlignBottom VAlign = "bottom"
)

// Text is a single line label anchored at (X, Y).
type Text struct {
	X, Y       float64
	Content    string
	FontSize   float64 // grid units
	FontFamily string
	Color      string

	// MaxWidth, when positive, is the width in grid units the label is
	// compressed to if it would otherwise be wider. Zero or negative means
	// unset.
	MaxWidth float64

	AlignX HAlign
	AlignY VAlign
}

// Type implements Shape.
func (*Text) Type() ShapeType { return TypeText }

// HeadStyle describes the chevrons drawn at the ends of an arrow.
type HeadStyle struct {
	Length    float64 // wing length in grid units
	LineWidth float64 // grid units
	Theta     float64 // half-angle between wing and shaft, degrees
	Color     string
}

// Arrow is a polyline through Points with optional arrowheads.
type Arrow struct {
	Points    []Point
	LineWidth float64
	Color     string

	// Arrowhead draws a chevron at the last point.
	Arrowhead bool

	// TwoHead also draws a chevron at the first point. It has no effect
	// unless Arrowhead is set.
	TwoHead bool

	Head HeadStyle
}

// Type implements Shape.
func (*Arrow) Type() ShapeType { return TypeArrow }
