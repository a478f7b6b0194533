// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/flowchart"
)

// Shape is one [[shape]] table. Type selects the record; keys that do not
// apply to that record are ignored. Unset optional keys keep the factory
// defaults.
type Shape struct {
	Type string `toml:"type"`

	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Radius is the circle radius or the uniform corner radius of a rect.
	Radius *float64 `toml:"radius"`
	// Corners are per-corner radii: top-left, top-right, bottom-right,
	// bottom-left.
	Corners *[4]float64 `toml:"corners"`

	Filled      *bool    `toml:"filled"`
	FillColor   string   `toml:"fill_color"`
	StrokeColor string   `toml:"stroke_color"`
	LineWidth   *float64 `toml:"line_width"`

	Content    string  `toml:"content"`
	FontSize   float64 `toml:"font_size"`
	FontFamily string  `toml:"font_family"`
	Color      string  `toml:"color"`
	MaxWidth   float64 `toml:"max_width"`
	AlignX     string  `toml:"align_x"`
	AlignY     string  `toml:"align_y"`

	Points    [][2]float64 `toml:"points"`
	Arrowhead *bool        `toml:"arrowhead"`
	TwoHead   *bool        `toml:"two_head"`
	Head      *Head        `toml:"head"`
}

// Head is the [shape.head] table of an arrow.
type Head struct {
	Length    *float64 `toml:"length"`
	LineWidth *float64 `toml:"line_width"`
	Theta     *float64 `toml:"theta"`
	Color     string   `toml:"color"`
}

var errUnknownType = errors.New("unknown shape type")

var shapeTypes = map[string]flowchart.ShapeType{
	"circle":    flowchart.TypeCircle,
	"rect":      flowchart.TypeRect,
	"rectangle": flowchart.TypeRect,
	"rhombus":   flowchart.TypeRhombus,
	"diamond":   flowchart.TypeRhombus,
	"text":      flowchart.TypeText,
	"arrow":     flowchart.TypeArrow,
}

func (s *Shape) kind() (flowchart.ShapeType, bool) {
	t, ok := shapeTypes[strings.ToLower(strings.TrimSpace(s.Type))]
	return t, ok
}

func (s *Shape) validate() error {
	if _, ok := s.kind(); !ok {
		return fmt.Errorf("%w %q", errUnknownType, s.Type)
	}

	colors := []struct{ key, val string }{
		{"fill_color", s.FillColor},
		{"stroke_color", s.StrokeColor},
		{"color", s.Color},
	}
	if s.Head != nil {
		colors = append(colors, struct{ key, val string }{"head.color", s.Head.Color})
	}
	for _, c := range colors {
		if c.val == "" {
			continue
		}
		if _, err := flowchart.ParseColor(c.val); err != nil {
			return fmt.Errorf("%s: %w", c.key, err)
		}
	}

	switch strings.ToLower(s.AlignX) {
	case "", "left", "center", "right":
	default:
		return fmt.Errorf("align_x: unknown alignment %q", s.AlignX)
	}
	switch strings.ToLower(s.AlignY) {
	case "", "top", "center", "middle", "bottom":
	default:
		return fmt.Errorf("align_y: unknown alignment %q", s.AlignY)
	}
	return nil
}

// Build returns the shape record. It panics if s has not been validated.
func (s *Shape) Build() flowchart.Shape {
	attrs := s.attrs()
	t, _ := s.kind()
	switch t {
	case flowchart.TypeCircle:
		return flowchart.NewCircle(attrs...)
	case flowchart.TypeRect:
		return flowchart.NewRect(attrs...)
	case flowchart.TypeRhombus:
		return flowchart.NewRhombus(attrs...)
	case flowchart.TypeText:
		return flowchart.NewText(attrs...)
	case flowchart.TypeArrow:
		return flowchart.NewArrow(attrs...)
	}
	panic(fmt.Sprintf("config: unvalidated shape type %q", s.Type))
}

// attrs lists overrides for every set key. Attrs that do not apply to
// the record type are ignored by the factories.
func (s *Shape) attrs() []flowchart.Attr {
	a := []flowchart.Attr{
		flowchart.At(s.X, s.Y),
		flowchart.Size(s.Width, s.Height),
	}

	if s.Radius != nil {
		a = append(a, flowchart.Radius(*s.Radius))
	}
	if c := s.Corners; c != nil {
		a = append(a, flowchart.CornerRadii(flowchart.Corners{
			TopLeft: c[0], TopRight: c[1], BottomRight: c[2], BottomLeft: c[3],
		}))
	}
	if s.Filled != nil {
		a = append(a, flowchart.Filled(*s.Filled))
	}
	if s.FillColor != "" {
		a = append(a, flowchart.FillColor(s.FillColor))
	}
	if s.StrokeColor != "" {
		a = append(a, flowchart.StrokeColor(s.StrokeColor))
	}
	if s.LineWidth != nil {
		a = append(a, flowchart.LineWidth(*s.LineWidth))
	}

	if s.Content != "" {
		a = append(a, flowchart.Content(s.Content))
	}
	if s.FontSize > 0 || s.FontFamily != "" {
		size := s.FontSize
		if size <= 0 {
			size = defaultText.FontSize
		}
		a = append(a, flowchart.Font(size, s.FontFamily))
	}
	if s.Color != "" {
		a = append(a, flowchart.Color(s.Color))
	}
	if s.MaxWidth > 0 {
		a = append(a, flowchart.MaxWidth(s.MaxWidth))
	}
	if s.AlignX != "" || s.AlignY != "" {
		x, y := defaultText.AlignX, defaultText.AlignY
		if s.AlignX != "" {
			x = flowchart.HAlign(strings.ToLower(s.AlignX))
		}
		if s.AlignY != "" {
			y = flowchart.VAlign(strings.ToLower(s.AlignY))
		}
		a = append(a, flowchart.Align(x, y))
	}

	if len(s.Points) > 0 {
		pts := make([]flowchart.Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = flowchart.Pt(p[0], p[1])
		}
		a = append(a, flowchart.Points(pts...))
	}
	if s.Arrowhead != nil {
		a = append(a, flowchart.Arrowhead(*s.Arrowhead))
	}
	if s.TwoHead != nil {
		a = append(a, flowchart.TwoHead(*s.TwoHead))
	}
	if h := s.Head; h != nil {
		var ha []flowchart.HeadAttr
		if h.Length != nil {
			ha = append(ha, flowchart.HeadLength(*h.Length))
		}
		if h.LineWidth != nil {
			ha = append(ha, flowchart.HeadLineWidth(*h.LineWidth))
		}
		if h.Theta != nil {
			ha = append(ha, flowchart.HeadTheta(*h.Theta))
		}
		if h.Color != "" {
			ha = append(ha, flowchart.HeadColor(h.Color))
		}
		a = append(a, flowchart.Head(ha...))
	}
	return a
}

var defaultText = flowchart.NewText()
