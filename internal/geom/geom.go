// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geom computes the path geometry of chart shapes.
//
// All functions work in pixel space and are free of side effects other than
// the segments they emit into a Builder.
package geom

import "math"

// Point is a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Builder receives path segments.
// surface.Path implements Builder.
type Builder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	Close()
}

// Corners holds one radius per rectangle corner, in pixels.
type Corners struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// Uniform returns Corners with the same radius on every corner.
func Uniform(r float64) Corners {
	return Corners{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Scale returns the corners multiplied by k.
func (c Corners) Scale(k float64) Corners {
	return Corners{
		TopLeft:     c.TopLeft * k,
		TopRight:    c.TopRight * k,
		BottomRight: c.BottomRight * k,
		BottomLeft:  c.BottomLeft * k,
	}
}

// Normalize replaces zero and NaN radii with 0.
// Any other value, negative ones included, is kept as is.
func (c Corners) Normalize() Corners {
	return Corners{
		TopLeft:     orZero(c.TopLeft),
		TopRight:    orZero(c.TopRight),
		BottomRight: orZero(c.BottomRight),
		BottomLeft:  orZero(c.BottomLeft),
	}
}

func orZero(v float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Rect emits a closed axis-aligned rectangle starting at the top-left corner.
func Rect(b Builder, x, y, w, h float64) {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
}

// RoundRect emits a closed rectangle whose corners are rounded with
// quadratic curves. The path starts and ends on the top edge at x+TopLeft.
//
// Radii are not clamped: radii larger than half a side produce
// self-intersecting outlines.
func RoundRect(b Builder, x, y, w, h float64, c Corners) {
	b.MoveTo(x+c.TopLeft, y)
	b.LineTo(x+w-c.TopRight, y)
	b.QuadTo(x+w, y, x+w, y+c.TopRight)
	b.LineTo(x+w, y+h-c.BottomRight)
	b.QuadTo(x+w, y+h, x+w-c.BottomRight, y+h)
	b.LineTo(x+c.BottomLeft, y+h)
	b.QuadTo(x, y+h, x, y+h-c.BottomLeft)
	b.LineTo(x, y+c.TopLeft)
	b.QuadTo(x, y, x+c.TopLeft, y)
	b.Close()
}

// RhombusVertices returns the midpoints of the top, left, bottom and right
// edges of the bounding box, in drawing order.
func RhombusVertices(x, y, w, h float64) [4]Point {
	return [4]Point{
		{X: x + w/2, Y: y},
		{X: x, Y: y + h/2},
		{X: x + w/2, Y: y + h},
		{X: x + w, Y: y + h/2},
	}
}

// Rhombus emits the closed rhombus inscribed in the bounding box.
func Rhombus(b Builder, x, y, w, h float64) {
	v := RhombusVertices(x, y, w, h)
	b.MoveTo(v[0].X, v[0].Y)
	for _, p := range v[1:] {
		b.LineTo(p.X, p.Y)
	}
	b.Close()
}

// Polyline emits an open path through pts. It emits nothing for an empty slice.
func Polyline(b Builder, pts []Point) {
	for i, p := range pts {
		if i == 0 {
			b.MoveTo(p.X, p.Y)
			continue
		}
		b.LineTo(p.X, p.Y)
	}
}

// Arrowhead returns the two wing points of a chevron whose tip is at to,
// pointing along the direction from -> to. length is the wing length and
// theta the half-angle between each wing and the shaft, in degrees.
//
// A zero-length segment is not special-cased: the direction falls back to
// math.Atan2(0, 0), which is 0.
func Arrowhead(from, to Point, length, theta float64) (wing1, wing2 Point) {
	angle := math.Atan2(from.Y-to.Y, from.X-to.X) * 180 / math.Pi
	a1 := (angle + theta) * math.Pi / 180
	a2 := (angle - theta) * math.Pi / 180
	wing1 = Point{X: to.X + length*math.Cos(a1), Y: to.Y + length*math.Sin(a1)}
	wing2 = Point{X: to.X + length*math.Cos(a2), Y: to.Y + length*math.Sin(a2)}
	return wing1, wing2
}

// Chevron emits the open path wing1 -> to -> wing2 for an arrowhead.
func Chevron(b Builder, from, to Point, length, theta float64) {
	w1, w2 := Arrowhead(from, to, length, theta)
	b.MoveTo(w1.X, w1.Y)
	b.LineTo(to.X, to.Y)
	b.LineTo(w2.X, w2.Y)
}
