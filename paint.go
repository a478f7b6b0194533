// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/flowchart/internal/geom"
	"github.com/gogpu/flowchart/surface"
)

// Grid line appearance.
const (
	GridColor     = "#D3D3D3"
	GridLineWidth = 0.05
)

// Repaint clears s and draws the background, the grid and then every shape
// in order. Each shape is drawn between Save and Restore. Shapes of
// unknown type are skipped.
//
// Width and height come from opt, or from s when opt leaves them zero.
// Repaint with a nil surface does nothing.
func Repaint(s surface.Surface, shapes []Shape, opt Options) {
	if s == nil {
		return
	}

	w, h := float64(opt.Width), float64(opt.Height)
	if opt.Width <= 0 {
		w = float64(s.Width())
	}
	if opt.Height <= 0 {
		h = float64(s.Height())
	}

	s.Clear(0, 0, w, h)
	if opt.Background != "" {
		s.FillRect(0, 0, w, h, resolveColor(opt.Background))
	}
	if opt.ShowGrid {
		paintGrid(s, w, h, opt.Gap)
	}

	p := painter{s: s, gap: opt.Gap}
	for i, sh := range shapes {
		draw := p.dispatch(sh)
		if draw == nil {
			Logger().Debug("skipping shape", "index", i, "type", fmt.Sprintf("%T", sh))
			continue
		}
		s.Save()
		draw()
		s.Restore()
	}
}

// paintGrid strokes vertical lines every gap pixels across the width and
// horizontal lines every gap pixels down the height.
func paintGrid(s surface.Surface, w, h, gap float64) {
	if !(gap > 0) {
		return
	}

	path := surface.NewPath()
	for x := 0.0; x < w; x += gap {
		path.MoveTo(round(x), 0)
		path.LineTo(round(x), round(h))
	}
	for y := 0.0; y < h; y += gap {
		path.MoveTo(0, round(y))
		path.LineTo(round(w), round(y))
	}

	s.Save()
	s.Stroke(path, surface.StrokeStyle{Color: resolveColor(GridColor), Width: GridLineWidth})
	s.Restore()
}

// painter converts grid units to pixels and draws single shapes.
type painter struct {
	s   surface.Surface
	gap float64
}

// dispatch returns the drawing routine for sh, or nil for shapes that
// cannot be drawn.
func (p painter) dispatch(sh Shape) func() {
	switch v := sh.(type) {
	case *Circle:
		if v != nil {
			return func() { p.circle(v) }
		}
	case *Rect:
		if v != nil {
			return func() { p.rect(v) }
		}
	case *Rhombus:
		if v != nil {
			return func() { p.rhombus(v) }
		}
	case *Text:
		if v != nil {
			return func() { p.text(v) }
		}
	case *Arrow:
		if v != nil {
			return func() { p.arrow(v) }
		}
	}
	return nil
}

// px converts grid units to whole pixels, rounding halves up.
func (p painter) px(v float64) float64 {
	return round(v * p.gap)
}

func (p painter) point(pt Point) geom.Point {
	return geom.Point{X: p.px(pt.X), Y: p.px(pt.Y)}
}

// outline strokes path with the style's outline, then fills it when the
// style asks for a fill.
func (p painter) outline(path *surface.Path, st Style) {
	p.s.Stroke(path, surface.StrokeStyle{
		Color: resolveColor(st.StrokeColor),
		Width: st.LineWidth * p.gap,
	})
	if st.IsFill {
		p.s.Fill(path, surface.FillStyle{Color: resolveColor(st.FillColor)})
	}
}

func (p painter) circle(c *Circle) {
	path := surface.NewPath()
	path.Circle(p.px(c.X), p.px(c.Y), c.Radius*p.gap)
	p.outline(path, c.Style)
}

func (p painter) rect(r *Rect) {
	x, y := p.px(r.X), p.px(r.Y)
	w, h := p.px(r.Width), p.px(r.Height)

	path := surface.NewPath()
	if r.Corners == nil {
		geom.Rect(path, x, y, w, h)
	} else {
		c := geom.Corners{
			TopLeft:     r.Corners.TopLeft,
			TopRight:    r.Corners.TopRight,
			BottomRight: r.Corners.BottomRight,
			BottomLeft:  r.Corners.BottomLeft,
		}
		geom.RoundRect(path, x, y, w, h, c.Normalize().Scale(p.gap))
	}
	p.outline(path, r.Style)
}

func (p painter) rhombus(r *Rhombus) {
	path := surface.NewPath()
	geom.Rhombus(path, p.px(r.X), p.px(r.Y), p.px(r.Width), p.px(r.Height))
	p.outline(path, r.Style)
}

func (p painter) text(t *Text) {
	if t.Content == "" {
		return
	}
	content := norm.NFC.String(t.Content)

	style := surface.TextStyle{
		Font:   surface.Font{Family: t.FontFamily, Size: t.FontSize * p.gap},
		Color:  resolveColor(t.Color),
		AlignX: hAlign(t.AlignX),
		AlignY: vAlign(t.AlignY),
	}

	if t.MaxWidth > 0 {
		limit := t.MaxWidth * p.gap
		if limit < p.s.MeasureText(content, style.Font) {
			style.MaxWidth = limit
		}
	}
	p.s.DrawText(content, p.px(t.X), p.px(t.Y), style)
}

func (p painter) arrow(a *Arrow) {
	if len(a.Points) == 0 {
		return
	}

	pts := make([]geom.Point, len(a.Points))
	for i, pt := range a.Points {
		pts[i] = p.point(pt)
	}

	shaft := surface.NewPath()
	geom.Polyline(shaft, pts)
	p.s.Stroke(shaft, surface.StrokeStyle{
		Color: resolveColor(a.Color),
		Width: a.LineWidth * p.gap,
	})

	if !a.Arrowhead || len(pts) < 2 {
		return
	}
	n := len(pts)
	p.chevron(pts[n-2], pts[n-1], a.Head)
	if a.TwoHead {
		p.chevron(pts[1], pts[0], a.Head)
	}
}

// chevron strokes an arrowhead with its tip at to.
func (p painter) chevron(from, to geom.Point, h HeadStyle) {
	path := surface.NewPath()
	geom.Chevron(path, from, to, h.Length*p.gap, h.Theta)
	p.s.Stroke(path, surface.StrokeStyle{
		Color: resolveColor(h.Color),
		Width: h.LineWidth * p.gap,
	})
}

func hAlign(a HAlign) surface.HAlign {
	switch a {
	case AlignCenter:
		return surface.AlignCenter
	case AlignRight:
		return surface.AlignRight
	default:
		return surface.AlignLeft
	}
}

func vAlign(a VAlign) surface.VAlign {
	switch a {
	case AlignMiddle, "middle":
		return surface.AlignMiddle
	case AlignBottom:
		return surface.AlignBottom
	default:
		return surface.AlignTop
	}
}

func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
