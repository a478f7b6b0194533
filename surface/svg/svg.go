// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package svg provides a vector surface backend that writes SVG documents
// with svgo.
//
// Importing the package registers the "svg" backend. Drawing calls append
// elements to an in-memory body; WriteTo wraps the body in an <svg> root.
// A Clear that covers the whole surface discards everything drawn so far,
// which is the only way to erase vector output. Smaller clears are ignored.
package svg

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/flowchart/fonts"
	"github.com/gogpu/flowchart/surface"
)

// Name is the registry name of this backend.
const Name = "svg"

// Priority is the registry priority.
const Priority = 5

func init() {
	surface.Register(Name, Priority, func(opts surface.Options) (surface.Surface, error) {
		return New(opts)
	}, nil)
}

// Option configures a Surface.
type Option func(*Surface)

// WithFonts sets the resolver used to measure text. The default is
// fonts.Default().
func WithFonts(r *fonts.Resolver) Option {
	return func(s *Surface) {
		if r != nil {
			s.fonts = r
		}
	}
}

// WithTitle sets the document <title>.
func WithTitle(title string) Option {
	return func(s *Surface) {
		s.title = title
	}
}

// Surface accumulates SVG elements.
type Surface struct {
	width  int
	height int
	fonts  *fonts.Resolver
	title  string

	body   bytes.Buffer
	canvas *svgo.SVG
	depth  int // open <g> elements
	groups int // ids handed out
	closed bool
}

var (
	_ surface.Surface       = (*Surface)(nil)
	_ surface.WriterSurface = (*Surface)(nil)
)

// New creates an SVG surface of opts.Width x opts.Height user units.
// PixelRatio does not apply to vector output.
func New(opts surface.Options, options ...Option) (*Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, surface.ErrInvalidDimensions
	}
	s := &Surface{
		width:  opts.Width,
		height: opts.Height,
		fonts:  fonts.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.canvas = svgo.New(&s.body)

	surface.Logger().Debug("svg surface created", "width", opts.Width, "height", opts.Height)
	return s, nil
}

// Width returns the document width.
func (s *Surface) Width() int { return s.width }

// Height returns the document height.
func (s *Surface) Height() int { return s.height }

// Clear discards all output when the rectangle covers the whole surface.
func (s *Surface) Clear(x, y, w, h float64) {
	if s.closed {
		return
	}
	if x > 0 || y > 0 || x+w < float64(s.width) || y+h < float64(s.height) {
		surface.Logger().Debug("svg: partial clear ignored", "x", x, "y", y, "w", w, "h", h)
		return
	}
	s.body.Reset()
	s.groups = 0
	// Groups opened by Save before the clear are still pending a Restore.
	for range s.depth {
		s.openGroup()
	}
}

// FillRect emits a <rect>. Coordinates are rounded to whole units.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if s.closed || w == 0 || h == 0 {
		return
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	s.canvas.Rect(round(x), round(y), round(w), round(h), paintAttrs("fill", c)...)
}

// Stroke emits a <path> outline. Widths that are not positive draw nothing.
func (s *Surface) Stroke(path *surface.Path, style surface.StrokeStyle) {
	if s.closed || path.IsEmpty() || !(style.Width > 0) {
		return
	}
	attrs := append([]string{`fill="none"`}, paintAttrs("stroke", style.Color)...)
	attrs = append(attrs, `stroke-width="`+num(style.Width)+`"`)
	s.canvas.Path(pathData(path), attrs...)
}

// Fill emits a filled <path>.
func (s *Surface) Fill(path *surface.Path, style surface.FillStyle) {
	if s.closed || path.IsEmpty() {
		return
	}
	s.canvas.Path(pathData(path), paintAttrs("fill", style.Color)...)
}

// MeasureText returns the advance width of str.
func (s *Surface) MeasureText(str string, font surface.Font) float64 {
	return s.fonts.Measure(str, font.Family, font.Size)
}

// DrawText emits a <text> element. Constrained text that would overflow
// gets a textLength so viewers compress it horizontally.
func (s *Surface) DrawText(str string, x, y float64, style surface.TextStyle) {
	if s.closed || str == "" || !(style.Font.Size > 0) {
		return
	}

	attrs := []string{
		`font-size="` + num(style.Font.Size) + `"`,
		`text-anchor="` + anchor(style.AlignX) + `"`,
		`dominant-baseline="` + baseline(style.AlignY) + `"`,
	}
	if style.Font.Family != "" {
		attrs = append(attrs, `font-family="`+escape(style.Font.Family)+`"`)
	}
	attrs = append(attrs, paintAttrs("fill", style.Color)...)
	if style.Constrained() && s.MeasureText(str, style.Font) > style.MaxWidth {
		attrs = append(attrs,
			`textLength="`+num(style.MaxWidth)+`"`,
			`lengthAdjust="spacingAndGlyphs"`)
	}
	s.canvas.Text(round(x), round(y), str, attrs...)
}

// Save opens a group.
func (s *Surface) Save() {
	if s.closed {
		return
	}
	s.openGroup()
	s.depth++
}

// Restore closes the innermost group. Unbalanced calls are ignored.
func (s *Surface) Restore() {
	if s.closed || s.depth == 0 {
		return
	}
	s.canvas.Gend()
	s.depth--
}

func (s *Surface) openGroup() {
	s.groups++
	s.canvas.Gid("g" + strconv.Itoa(s.groups))
}

// WriteTo writes the complete SVG document. Groups left open by unbalanced
// Save calls are closed in the output only.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var doc bytes.Buffer
	out := svgo.New(&doc)
	out.Start(s.width, s.height)
	if s.title != "" {
		out.Title(s.title)
	}
	doc.Write(s.body.Bytes())
	for range s.depth {
		out.Gend()
	}
	out.End()
	return doc.WriteTo(w)
}

// String returns the complete SVG document.
func (s *Surface) String() string {
	var sb strings.Builder
	_, _ = s.WriteTo(&sb)
	return sb.String()
}

// Close marks the surface closed. Output written so far remains available
// through WriteTo.
func (s *Surface) Close() error {
	s.closed = true
	return nil
}

// pathData renders a path as an SVG d attribute value.
func pathData(p *surface.Path) string {
	var d dWriter
	p.Walk(&d)
	return strings.TrimSpace(d.sb.String())
}

type dWriter struct {
	sb strings.Builder
}

func (d *dWriter) cmd(c byte, vals ...float64) {
	d.sb.WriteByte(c)
	for _, v := range vals {
		d.sb.WriteByte(' ')
		d.sb.WriteString(num(v))
	}
	d.sb.WriteByte(' ')
}

func (d *dWriter) MoveTo(x, y float64)         { d.cmd('M', x, y) }
func (d *dWriter) LineTo(x, y float64)         { d.cmd('L', x, y) }
func (d *dWriter) QuadTo(cx, cy, x, y float64) { d.cmd('Q', cx, cy, x, y) }
func (d *dWriter) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	d.cmd('C', c1x, c1y, c2x, c2y, x, y)
}
func (d *dWriter) Close() { d.cmd('Z') }

// paintAttrs returns the color attribute for prop ("fill" or "stroke") and,
// for translucent colors, the matching opacity attribute.
func paintAttrs(prop string, c color.Color) []string {
	if c == nil {
		c = color.Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	attrs := []string{fmt.Sprintf(`%s="#%02x%02x%02x"`, prop, n.R, n.G, n.B)}
	if n.A < 0xff {
		attrs = append(attrs, fmt.Sprintf(`%s-opacity="%s"`, prop, num(float64(n.A)/255)))
	}
	return attrs
}

func anchor(a surface.HAlign) string {
	switch a {
	case surface.AlignCenter:
		return "middle"
	case surface.AlignRight:
		return "end"
	default:
		return "start"
	}
}

func baseline(a surface.VAlign) string {
	switch a {
	case surface.AlignMiddle:
		return "central"
	case surface.AlignBottom:
		return "text-after-edge"
	default:
		return "text-before-edge"
	}
}

func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `"`, "&quot;")

func escape(s string) string {
	return attrEscaper.Replace(s)
}
