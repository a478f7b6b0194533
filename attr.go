// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

import "math"

// Attr overrides a default of a shape record. Attrs that do not apply to
// a record type are ignored, so one attr list can be shared between
// factories.
type Attr interface {
	apply(Shape)
}

type attrFunc func(Shape)

func (f attrFunc) apply(s Shape) { f(s) }

// HeadAttr overrides a default of an arrow's HeadStyle.
type HeadAttr func(*HeadStyle)

// headAttrs carries HeadAttr values through an Attr list to NewArrow.
type headAttrs []HeadAttr

func (headAttrs) apply(Shape) {}

type styled interface {
	style() *Style
}

func baseStyle() Style {
	return Style{
		FillColor:   "gray",
		StrokeColor: "#000",
		LineWidth:   0.05,
	}
}

func applyAll(s Shape, attrs []Attr) {
	for _, a := range attrs {
		if a != nil {
			a.apply(s)
		}
	}
}

// NewCircle returns a circle record. Defaults: radius 0.5, unfilled, gray
// fill color, "#000" outline, line width 0.05.
func NewCircle(attrs ...Attr) *Circle {
	c := &Circle{Style: baseStyle(), Radius: 0.5}
	applyAll(c, attrs)
	return c
}

// NewRect returns a rectangle record. Defaults as NewCircle, with zero
// size and no corner radius.
func NewRect(attrs ...Attr) *Rect {
	r := &Rect{Style: baseStyle()}
	applyAll(r, attrs)
	return r
}

// NewRhombus returns a rhombus record with the same defaults as NewRect.
func NewRhombus(attrs ...Attr) *Rhombus {
	r := &Rhombus{Style: baseStyle()}
	applyAll(r, attrs)
	return r
}

// NewText returns a text record. Defaults: font size 0.5, "Arial", black,
// no max width, left/top alignment.
func NewText(attrs ...Attr) *Text {
	t := &Text{
		FontSize:   0.5,
		FontFamily: "Arial",
		Color:      "black",
		AlignX:     AlignLeft,
		AlignY:     AlignTop,
	}
	applyAll(t, attrs)
	return t
}

// DefaultHeadStyle returns the default arrowhead: length 0.2, line width
// 0.05, 30 degrees, black.
func DefaultHeadStyle() HeadStyle {
	return HeadStyle{
		Length:    0.2,
		LineWidth: 0.05,
		Theta:     30,
		Color:     "black",
	}
}

// NewArrow returns an arrow record. Defaults: no points, line width 0.05,
// black, single arrowhead with DefaultHeadStyle.
//
// Head attrs are applied after all other attrs, on top of a fresh
// DefaultHeadStyle.
func NewArrow(attrs ...Attr) *Arrow {
	a := &Arrow{
		LineWidth: 0.05,
		Color:     "black",
		Arrowhead: true,
	}

	var head []HeadAttr
	for _, at := range attrs {
		switch v := at.(type) {
		case nil:
		case headAttrs:
			head = append(head, v...)
		default:
			v.apply(a)
		}
	}

	a.Head = DefaultHeadStyle()
	for _, h := range head {
		if h != nil {
			h(&a.Head)
		}
	}
	return a
}

// At sets the position of a circle center, a box's top-left corner or a
// text anchor.
func At(x, y float64) Attr {
	return attrFunc(func(s Shape) {
		switch v := s.(type) {
		case *Circle:
			v.X, v.Y = x, y
		case *Rect:
			v.X, v.Y = x, y
		case *Rhombus:
			v.X, v.Y = x, y
		case *Text:
			v.X, v.Y = x, y
		}
	})
}

// Size sets the width and height of a rectangle or rhombus.
func Size(w, h float64) Attr {
	return attrFunc(func(s Shape) {
		switch v := s.(type) {
		case *Rect:
			v.Width, v.Height = w, h
		case *Rhombus:
			v.Width, v.Height = w, h
		}
	})
}

// Radius sets a circle's radius, or all four corner radii of a rectangle.
// On a rectangle a zero or NaN radius removes the rounding.
func Radius(r float64) Attr {
	return attrFunc(func(s Shape) {
		switch v := s.(type) {
		case *Circle:
			v.Radius = r
		case *Rect:
			if r == 0 || math.IsNaN(r) {
				v.Corners = nil
				return
			}
			v.Corners = &Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
		}
	})
}

// CornerRadii sets individual corner radii of a rectangle. The rectangle
// is always drawn with rounded-corner geometry, even when every radius is
// zero.
func CornerRadii(c Corners) Attr {
	return attrFunc(func(s Shape) {
		if r, ok := s.(*Rect); ok {
			cc := c
			r.Corners = &cc
		}
	})
}

// Filled sets whether a closed shape is filled.
func Filled(fill bool) Attr {
	return attrFunc(func(s Shape) {
		if v, ok := s.(styled); ok {
			v.style().IsFill = fill
		}
	})
}

// FillColor sets the fill color of a closed shape. It does not turn
// filling on; see Filled.
func FillColor(c string) Attr {
	return attrFunc(func(s Shape) {
		if v, ok := s.(styled); ok {
			v.style().FillColor = c
		}
	})
}

// StrokeColor sets the outline color of a closed shape.
func StrokeColor(c string) Attr {
	return attrFunc(func(s Shape) {
		if v, ok := s.(styled); ok {
			v.style().StrokeColor = c
		}
	})
}

// LineWidth sets the outline width of a closed shape or the shaft width
// of an arrow, in grid units.
func LineWidth(w float64) Attr {
	return attrFunc(func(s Shape) {
		switch v := s.(type) {
		case styled:
			v.style().LineWidth = w
		case *Arrow:
			v.LineWidth = w
		}
	})
}

// Color sets the color of a text label or an arrow shaft.
func Color(c string) Attr {
	return attrFunc(func(s Shape) {
		switch v := s.(type) {
		case *Text:
			v.Color = c
		case *Arrow:
			v.Color = c
		}
	})
}

// Content sets the string of a text label.
func Content(text string) Attr {
	return attrFunc(func(s Shape) {
		if t, ok := s.(*Text); ok {
			t.Content = text
		}
	})
}

// Font sets the size, in grid units, and family of a text label. An empty
// family keeps the current one.
func Font(size float64, family string) Attr {
	return attrFunc(func(s Shape) {
		if t, ok := s.(*Text); ok {
			t.FontSize = size
			if family != "" {
				t.FontFamily = family
			}
		}
	})
}

// MaxWidth sets the width, in grid units, a text label is compressed to.
func MaxWidth(w float64) Attr {
	return attrFunc(func(s Shape) {
		if t, ok := s.(*Text); ok {
			t.MaxWidth = w
		}
	})
}

// Align sets the anchor of a text label.
func Align(x HAlign, y VAlign) Attr {
	return attrFunc(func(s Shape) {
		if t, ok := s.(*Text); ok {
			t.AlignX, t.AlignY = x, y
		}
	})
}

// Points sets the waypoints of an arrow.
func Points(pts ...Point) Attr {
	return attrFunc(func(s Shape) {
		if a, ok := s.(*Arrow); ok {
			a.Points = append([]Point(nil), pts...)
		}
	})
}

// Arrowhead sets whether an arrow ends in a chevron.
func Arrowhead(on bool) Attr {
	return attrFunc(func(s Shape) {
		if a, ok := s.(*Arrow); ok {
			a.Arrowhead = on
		}
	})
}

// TwoHead sets whether an arrow also starts with a chevron.
func TwoHead(on bool) Attr {
	return attrFunc(func(s Shape) {
		if a, ok := s.(*Arrow); ok {
			a.TwoHead = on
		}
	})
}

// Head overrides arrowhead defaults. The overrides are merged with
// DefaultHeadStyle independently of the arrow's own attrs.
func Head(attrs ...HeadAttr) Attr {
	return headAttrs(attrs)
}

// HeadLength sets the wing length in grid units.
func HeadLength(l float64) HeadAttr {
	return func(h *HeadStyle) { h.Length = l }
}

// HeadLineWidth sets the chevron line width in grid units.
func HeadLineWidth(w float64) HeadAttr {
	return func(h *HeadStyle) { h.LineWidth = w }
}

// HeadTheta sets the half-angle between wing and shaft, in degrees.
func HeadTheta(deg float64) HeadAttr {
	return func(h *HeadStyle) { h.Theta = deg }
}

// HeadColor sets the chevron color.
func HeadColor(c string) HeadAttr {
	return func(h *HeadStyle) { h.Color = c }
}
