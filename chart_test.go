// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/gogpu/flowchart/recording"
	"github.com/gogpu/flowchart/surface"
)

func clears(rec *recording.Recorder) int {
	n := 0
	for _, c := range rec.Commands() {
		if c.Type() == recording.CmdClear {
			n++
		}
	}
	return n
}

func TestNewPaintsEmptyScene(t *testing.T) {
	rec := recording.NewRecorder(200, 100)
	c := New(WithSurface(rec), WithBackground("white"))
	defer c.Close()

	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if c.Options().Width != 200 || c.Options().Height != 100 {
		t.Errorf("size = %dx%d, want the surface size", c.Options().Width, c.Options().Height)
	}
	if c.Gap() != DefaultGap {
		t.Errorf("Gap = %v, want %v", c.Gap(), DefaultGap)
	}

	types := []recording.CommandType{recording.CmdClear, recording.CmdFillRect, recording.CmdSave, recording.CmdStrokePath, recording.CmdRestore}
	cmds := rec.Commands()
	if len(cmds) != len(types) {
		t.Fatalf("initial paint = %v", cmds)
	}
	for i, typ := range types {
		if cmds[i].Type() != typ {
			t.Errorf("command %d = %v, want %v", i, cmds[i].Type(), typ)
		}
	}
}

func TestChartRepaintAfterMutation(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	c := New(WithSurface(rec))
	a, b := NewCircle(), NewRect(Size(1, 1))

	c.Add(a, b)
	c.Remove(a)
	c.Clear()
	if got := clears(rec); got != 4 {
		t.Errorf("%d paints, want one per mutation plus the initial one", got)
	}
}

func TestChartNoRepaintAfterMutation(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	c := New(WithSurface(rec), WithRepaintAfterMutation(false))

	c.Add(NewCircle())
	c.Clear()
	if got := clears(rec); got != 1 {
		t.Errorf("%d paints, want only the initial one", got)
	}

	c.Add(NewCircle())
	c.Repaint()
	if got := clears(rec); got != 2 {
		t.Errorf("%d paints after Repaint, want 2", got)
	}
	if c.Len() != 1 || c.Shapes()[0].Type() != TypeCircle {
		t.Errorf("Shapes = %v", c.Shapes())
	}
}

func TestChartSetGap(t *testing.T) {
	rec := recording.NewRecorder(100, 100, recording.WithMeasurer(halfEm))
	c := New(WithSurface(rec), WithGrid(false))
	c.Add(NewCircle(At(1, 1)))
	before := rec.Len()

	c.SetGap(20)
	if rec.Len() != before {
		t.Error("SetGap repainted")
	}
	c.Repaint()

	last := rec.Commands()[rec.Len()-2].(recording.StrokePathCommand)
	seg := rec.Path(last.Path).Segments()[0]
	if seg.Points[0] != (surface.Point{X: 30, Y: 20}) {
		t.Errorf("circle starts at %v after SetGap(20), want (30,20)", seg.Points[0])
	}
}

func TestChartSuppliedSurfaceNotClosed(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	c := New(WithSurface(rec))
	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	n := rec.Len()
	rec.Save()
	if rec.Len() != n+1 {
		t.Error("chart closed a surface it does not own")
	}
	if c.Surface() != surface.Surface(rec) {
		t.Error("Surface() changed after Close")
	}
}

func TestChartOutputs(t *testing.T) {
	rec := recording.NewRecorder(100, 100)
	c := New(WithSurface(rec))
	if c.Image() != nil {
		t.Error("Image() of a recorder should be nil")
	}
	if _, err := c.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNotWritable) {
		t.Errorf("WriteTo = %v, want ErrNotWritable", err)
	}
}

func TestChartSetupFailure(t *testing.T) {
	c := New(WithBackend("no-such-backend"))

	var nf *surface.BackendNotFoundError
	if !errors.As(c.Err(), &nf) || nf.Name != "no-such-backend" {
		t.Fatalf("Err() = %v, want BackendNotFoundError", c.Err())
	}
	if c.Surface() != nil {
		t.Error("Surface() should be nil")
	}

	c.Add(NewCircle())
	c.Repaint()
	c.Remove(NewCircle())
	if c.Len() != 1 {
		t.Errorf("Len = %d, scene should still work", c.Len())
	}
	if c.Image() != nil {
		t.Error("Image() should be nil")
	}
	if _, err := c.WriteTo(&bytes.Buffer{}); !errors.Is(err, ErrNoSurface) {
		t.Errorf("WriteTo = %v, want ErrNoSurface", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestChartImageBackend(t *testing.T) {
	c := New(WithSize(120, 80), WithGrid(false), WithBackground("white"))
	defer c.Close()
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}

	img := c.Image()
	if img == nil {
		t.Fatal("Image() = nil")
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("bounds = %v, want 120x80", b)
	}
	if r, g, b, a := img.At(5, 5).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("background pixel = %v, want white", img.At(5, 5))
	}

	c.Add(NewRect(At(1, 0.5), Size(0.8, 0.6), Filled(true), FillColor("red")))
	img = c.Image()
	if r, g, b, _ := img.At(70, 40).RGBA(); r>>8 < 250 || g>>8 > 5 || b>>8 > 5 {
		t.Errorf("fill pixel = %v, want red", img.At(70, 40))
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("WriteTo did not write a PNG")
	}
}

func pixels(img image.Image) []uint32 {
	b := img.Bounds()
	out := make([]uint32, 0, 4*b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bb, a := img.At(x, y).RGBA()
			out = append(out, r, g, bb, a)
		}
	}
	return out
}

func TestChartRepaintPixelsIdempotent(t *testing.T) {
	c := New(WithSize(200, 150), WithBackground("white"))
	defer c.Close()
	c.Add(
		NewRect(At(1, 1), Size(2, 1), Radius(0.3), Filled(true), FillColor("lightblue")),
		NewText(At(2, 1.5), Content("Start"), Align(AlignCenter, AlignMiddle), MaxWidth(1.8)),
		NewArrow(Points(Pt(2, 2), Pt(2, 2.8)), TwoHead(true)),
	)

	first := pixels(c.Image())
	c.Repaint()
	second := pixels(c.Image())
	if len(first) != len(second) {
		t.Fatalf("image size changed between repaints")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pixel channel %d differs between repaints: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestChartSVGBackend(t *testing.T) {
	c := New(WithBackend("svg"), WithSize(200, 100), WithGrid(false))
	defer c.Close()
	if err := c.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	c.Add(NewRect(At(1, 1), Size(1, 1)), NewText(At(1, 1), Content("a < b")))

	if c.Image() != nil {
		t.Error("Image() of an SVG surface should be nil")
	}
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", `d="M 50 50 L 100 50 L 100 100 L 50 100 Z"`, "a &lt; b", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}
