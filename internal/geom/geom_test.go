// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

type segment struct {
	verb string
	pts  []Point
}

// pathLog is a Builder that keeps every segment it receives.
type pathLog struct {
	segs []segment
}

func (l *pathLog) MoveTo(x, y float64) {
	l.segs = append(l.segs, segment{"M", []Point{{x, y}}})
}

func (l *pathLog) LineTo(x, y float64) {
	l.segs = append(l.segs, segment{"L", []Point{{x, y}}})
}

func (l *pathLog) QuadTo(cx, cy, x, y float64) {
	l.segs = append(l.segs, segment{"Q", []Point{{cx, cy}, {x, y}}})
}

func (l *pathLog) Close() {
	l.segs = append(l.segs, segment{"Z", nil})
}

// vertices returns the end points of all segments with consecutive
// duplicates and the closing repeat of the start point removed.
func (l *pathLog) vertices() []Point {
	var out []Point
	for _, s := range l.segs {
		if len(s.pts) == 0 {
			continue
		}
		p := s.pts[len(s.pts)-1]
		if n := len(out); n > 0 && samePoint(out[n-1], p) {
			continue
		}
		out = append(out, p)
	}
	if n := len(out); n > 1 && samePoint(out[0], out[n-1]) {
		out = out[:n-1]
	}
	return out
}

func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestRect(t *testing.T) {
	var l pathLog
	Rect(&l, 50, 50, 100, 50)

	want := []Point{{50, 50}, {150, 50}, {150, 100}, {50, 100}}
	got := l.vertices()
	if len(got) != len(want) {
		t.Fatalf("vertices = %v, want %v", got, want)
	}
	for i := range want {
		if !samePoint(got[i], want[i]) {
			t.Errorf("vertex %d = %v, want %v", i, got[i], want[i])
		}
	}
	if last := l.segs[len(l.segs)-1]; last.verb != "Z" {
		t.Errorf("last verb = %q, want Z", last.verb)
	}
}

func TestRoundRectSegments(t *testing.T) {
	var l pathLog
	RoundRect(&l, 0, 0, 100, 60, Uniform(10))

	verbs := ""
	for _, s := range l.segs {
		verbs += s.verb
	}
	if verbs != "MLQLQLQLQZ" {
		t.Errorf("verbs = %q, want MLQLQLQLQZ", verbs)
	}

	start := l.segs[0].pts[0]
	if !samePoint(start, Point{10, 0}) {
		t.Errorf("start = %v, want (10, 0)", start)
	}
	end := l.segs[len(l.segs)-2].pts[1]
	if !samePoint(start, end) {
		t.Errorf("path ends at %v, want start point %v", end, start)
	}

	// The top-right corner is controlled by the rectangle corner itself.
	q := l.segs[2]
	if !samePoint(q.pts[0], Point{100, 0}) || !samePoint(q.pts[1], Point{100, 10}) {
		t.Errorf("top-right corner = %v, want ctrl (100,0) end (100,10)", q.pts)
	}
}

func TestRoundRectZeroMatchesRect(t *testing.T) {
	var plain, round pathLog
	Rect(&plain, 50, 50, 100, 50)
	RoundRect(&round, 50, 50, 100, 50, Corners{})

	a, b := plain.vertices(), round.vertices()
	if len(a) != len(b) {
		t.Fatalf("vertex count: rect %d, round rect %d", len(a), len(b))
	}
	for i := range a {
		if !samePoint(a[i], b[i]) {
			t.Errorf("vertex %d: rect %v, round rect %v", i, a[i], b[i])
		}
	}
}

func TestRoundRectPerCorner(t *testing.T) {
	var l pathLog
	RoundRect(&l, 0, 0, 100, 100, Corners{TopLeft: 5, BottomRight: 20})

	if got := l.segs[0].pts[0]; !samePoint(got, Point{5, 0}) {
		t.Errorf("start = %v, want (5, 0)", got)
	}
	// Right edge runs down to the bottom-right radius.
	if got := l.segs[3].pts[0]; !samePoint(got, Point{100, 80}) {
		t.Errorf("right edge end = %v, want (100, 80)", got)
	}
}

func TestCornersNormalize(t *testing.T) {
	c := Corners{TopLeft: math.NaN(), TopRight: 0, BottomRight: -3, BottomLeft: 4}.Normalize()
	want := Corners{TopLeft: 0, TopRight: 0, BottomRight: -3, BottomLeft: 4}
	if c != want {
		t.Errorf("Normalize() = %+v, want %+v", c, want)
	}
}

func TestCornersScale(t *testing.T) {
	c := Uniform(0.2).Scale(50)
	if math.Abs(c.TopLeft-10) > eps || math.Abs(c.BottomLeft-10) > eps {
		t.Errorf("Scale() = %+v, want all 10", c)
	}
}

func TestRhombusVertices(t *testing.T) {
	v := RhombusVertices(0, 0, 100, 50)
	want := [4]Point{{50, 0}, {0, 25}, {50, 50}, {100, 25}}
	if v != want {
		t.Errorf("RhombusVertices() = %v, want %v", v, want)
	}

	var l pathLog
	Rhombus(&l, 0, 0, 100, 50)
	if len(l.segs) != 5 || l.segs[4].verb != "Z" {
		t.Errorf("Rhombus emitted %d segments, want 4 + close", len(l.segs))
	}
}

func TestPolyline(t *testing.T) {
	tests := []struct {
		name  string
		pts   []Point
		verbs string
	}{
		{"empty", nil, ""},
		{"single", []Point{{1, 1}}, "M"},
		{"three", []Point{{0, 0}, {10, 0}, {10, 10}}, "MLL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l pathLog
			Polyline(&l, tt.pts)
			verbs := ""
			for _, s := range l.segs {
				verbs += s.verb
			}
			if verbs != tt.verbs {
				t.Errorf("verbs = %q, want %q", verbs, tt.verbs)
			}
		})
	}
}

func TestArrowheadHorizontal(t *testing.T) {
	// Segment (0,0) -> (1,0) in units at gap 50, theta 30, length 0.2 units.
	from, to := Point{0, 0}, Point{50, 0}
	w1, w2 := Arrowhead(from, to, 0.2*50, 30)

	dx := 0.2 * 50 * math.Cos(30*math.Pi/180)
	dy := 0.2 * 50 * math.Sin(30*math.Pi/180)

	// Wings point back towards "from", at 180±30 degrees.
	want1 := Point{50 - dx, -dy}
	want2 := Point{50 - dx, dy}
	if !samePoint(w1, want1) && !samePoint(w1, want2) {
		t.Errorf("wing1 = %v, want one of %v %v", w1, want1, want2)
	}
	if !samePoint(w2, want1) && !samePoint(w2, want2) {
		t.Errorf("wing2 = %v, want one of %v %v", w2, want1, want2)
	}
	if samePoint(w1, w2) {
		t.Error("wings must be distinct")
	}
}

func TestArrowheadWingLength(t *testing.T) {
	dirs := []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {3, 4}, {-7, 2}}
	for _, d := range dirs {
		to := Point{100, 100}
		from := Point{to.X - d.X*10, to.Y - d.Y*10}
		w1, w2 := Arrowhead(from, to, 12, 25)
		for _, w := range []Point{w1, w2} {
			if l := math.Hypot(w.X-to.X, w.Y-to.Y); math.Abs(l-12) > 1e-6 {
				t.Errorf("dir %v: wing length = %v, want 12", d, l)
			}
		}
	}
}

func TestArrowheadZeroLengthSegment(t *testing.T) {
	p := Point{10, 10}
	w1, w2 := Arrowhead(p, p, 10, 30)
	// atan2(0, 0) == 0, so wings sit at +-30 degrees from the positive x axis.
	want1 := Point{10 + 10*math.Cos(math.Pi/6), 10 + 10*math.Sin(math.Pi/6)}
	want2 := Point{10 + 10*math.Cos(-math.Pi/6), 10 + 10*math.Sin(-math.Pi/6)}
	if !samePoint(w1, want1) || !samePoint(w2, want2) {
		t.Errorf("wings = %v %v, want %v %v", w1, w2, want1, want2)
	}
}

func TestChevronIsOpen(t *testing.T) {
	var l pathLog
	Chevron(&l, Point{0, 0}, Point{50, 0}, 10, 30)

	verbs := ""
	for _, s := range l.segs {
		verbs += s.verb
	}
	if verbs != "MLL" {
		t.Errorf("verbs = %q, want MLL", verbs)
	}
	if tip := l.segs[1].pts[0]; !samePoint(tip, Point{50, 0}) {
		t.Errorf("tip = %v, want (50, 0)", tip)
	}
}
