// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "math"

// Verb identifies a path segment.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath. One point.
	VerbMoveTo Verb = iota
	// VerbLineTo draws a straight line. One point.
	VerbLineTo
	// VerbQuadTo draws a quadratic curve. Control point, end point.
	VerbQuadTo
	// VerbCubicTo draws a cubic curve. Two control points, end point.
	VerbCubicTo
	// VerbClose closes the current subpath. No points.
	VerbClose
)

var verbNames = [...]string{
	VerbMoveTo:  "MoveTo",
	VerbLineTo:  "LineTo",
	VerbQuadTo:  "QuadTo",
	VerbCubicTo: "CubicTo",
	VerbClose:   "Close",
}

// String returns the verb name.
func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "Unknown"
}

// pointCount returns how many points the verb consumes.
func (v Verb) pointCount() int {
	switch v {
	case VerbMoveTo, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// Segment is one element of a Path as returned by Path.Segments.
type Segment struct {
	Verb   Verb
	Points []Point
}

// Path represents a vector path for drawing operations.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	verbs  []Verb
	points []Point
	start  Point
	cur    Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]Point, 0, 32),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.start = Point{X: x, Y: y}
	p.cur = p.start
}

// LineTo adds a line from the current point to (x, y).
// On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// QuadTo adds a quadratic Bezier curve from the current point.
// (cx, cy) is the control point, (x, y) is the endpoint.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(cx, cy)
	}
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{X: cx, Y: cy}, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// CubicTo adds a cubic Bezier curve from the current point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{X: c1x, Y: c1y}, Point{X: c2x, Y: c2y}, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start, p.cur = Point{}, Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.verbs) == 0
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.verbs)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.cur
}

// Segments returns the path as a list of segments.
// The returned point slices alias a fresh copy and may be retained.
func (p *Path) Segments() []Segment {
	segs := make([]Segment, 0, len(p.verbs))
	pts := append([]Point(nil), p.points...)
	i := 0
	for _, v := range p.verbs {
		n := v.pointCount()
		segs = append(segs, Segment{Verb: v, Points: pts[i : i+n : i+n]})
		i += n
	}
	return segs
}

// Walk replays the path segments into sink.
func (p *Path) Walk(sink PathSink) {
	i := 0
	for _, v := range p.verbs {
		switch v {
		case VerbMoveTo:
			sink.MoveTo(p.points[i].X, p.points[i].Y)
		case VerbLineTo:
			sink.LineTo(p.points[i].X, p.points[i].Y)
		case VerbQuadTo:
			sink.QuadTo(p.points[i].X, p.points[i].Y, p.points[i+1].X, p.points[i+1].Y)
		case VerbCubicTo:
			sink.CubicTo(p.points[i].X, p.points[i].Y, p.points[i+1].X, p.points[i+1].Y, p.points[i+2].X, p.points[i+2].Y)
		case VerbClose:
			sink.Close()
		}
		i += v.pointCount()
	}
}

// PathSink receives the segments of a path during Walk.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	return &Path{
		verbs:  append(make([]Verb, 0, len(p.verbs)), p.verbs...),
		points: append(make([]Point, 0, len(p.points)), p.points...),
		start:  p.start,
		cur:    p.cur,
	}
}

// Equal reports whether two paths have identical segments.
func (p *Path) Equal(q *Path) bool {
	if p.IsEmpty() || q.IsEmpty() {
		return p.IsEmpty() && q.IsEmpty()
	}
	if len(p.verbs) != len(q.verbs) || len(p.points) != len(q.points) {
		return false
	}
	for i := range p.verbs {
		if p.verbs[i] != q.verbs[i] {
			return false
		}
	}
	for i := range p.points {
		if p.points[i] != q.points[i] {
			return false
		}
	}
	return true
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a closed full circle to the path.
func (p *Path) Circle(cx, cy, r float64) {
	p.MoveTo(cx+r, cy)
	p.Arc(cx, cy, r, 0, 2*math.Pi)
	p.Close()
}

// Arc adds a circular arc to the path, clockwise in screen space from
// angle1 to angle2 (radians) around (cx, cy). The arc is approximated with
// at most 90 degree cubic segments.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}
	if angle2 == angle1 {
		return
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil((angle2 - angle1) / maxAngle))
	step := (angle2 - angle1) / float64(n)

	for i := 0; i < n; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step)
	}
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	if len(p.verbs) == 0 {
		p.MoveTo(x1, y1)
	}
	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2)
}

// Bounds returns the axis-aligned bounding box of all path points,
// control points included. An empty path returns zeros.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p.points[0].X, p.points[0].Y
	maxX, maxY = minX, minY
	for _, pt := range p.points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}
