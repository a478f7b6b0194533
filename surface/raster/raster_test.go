// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/flowchart/surface"
)

var red = color.RGBA{R: 255, A: 255}

func newSurface(t *testing.T, w, h int, ratio float64) *Surface {
	t.Helper()
	s, err := New(surface.Options{Width: w, Height: h, PixelRatio: ratio})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func countPainted(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) != 0 {
				n++
			}
		}
	}
	return n
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct{ w, h int }{{0, 10}, {10, 0}, {-1, -1}}
	for _, tt := range tests {
		if _, err := New(surface.Options{Width: tt.w, Height: tt.h}); !errors.Is(err, surface.ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) err = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
		}
	}
}

func TestRegistered(t *testing.T) {
	entry, ok := surface.Get(Name)
	if !ok {
		t.Fatalf("backend %q not registered", Name)
	}
	if entry.Priority != Priority {
		t.Errorf("Priority = %d, want %d", entry.Priority, Priority)
	}

	s, err := surface.NewSurfaceByName(Name, surface.Options{Width: 8, Height: 6})
	if err != nil {
		t.Fatalf("NewSurfaceByName() error = %v", err)
	}
	defer s.Close()
	if _, ok := s.(surface.ImageSurface); !ok {
		t.Error("raster surface should implement ImageSurface")
	}
}

func TestPixelRatio(t *testing.T) {
	s := newSurface(t, 40, 30, 2)
	if s.Width() != 40 || s.Height() != 30 {
		t.Errorf("logical size = %dx%d, want 40x30", s.Width(), s.Height())
	}
	b := s.Image().Bounds()
	if b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("device size = %dx%d, want 80x60", b.Dx(), b.Dy())
	}

	s.FillRect(10, 10, 10, 10, red)
	img := s.Image()
	if alphaAt(img, 30, 30) == 0 {
		t.Error("rect center at device (30,30) should be painted")
	}
	if alphaAt(img, 10, 10) != 0 {
		t.Error("device (10,10) lies outside the scaled rect")
	}
}

func TestFillRectAndClear(t *testing.T) {
	s := newSurface(t, 100, 100, 1)

	s.FillRect(0, 0, 100, 100, red)
	img := s.Image()
	if r, _, _, a := img.At(50, 50).RGBA(); a != 0xffff || r != 0xffff {
		t.Fatalf("pixel (50,50) = %v, want opaque red", img.At(50, 50))
	}

	s.Clear(0, 0, 50, 100)
	img = s.Image()
	if alphaAt(img, 10, 10) != 0 {
		t.Error("cleared area should be transparent")
	}
	if alphaAt(img, 80, 50) == 0 {
		t.Error("area outside the clear rect should keep its paint")
	}

	s.Clear(0, 0, 100, 100)
	if n := countPainted(s.Image()); n != 0 {
		t.Errorf("%d pixels painted after full clear, want 0", n)
	}
}

func TestStroke(t *testing.T) {
	s := newSurface(t, 100, 100, 1)

	p := surface.NewPath()
	p.MoveTo(10, 50)
	p.LineTo(90, 50)

	s.Stroke(p, surface.StrokeStyle{Color: color.Black, Width: 0})
	if n := countPainted(s.Image()); n != 0 {
		t.Errorf("zero width stroke painted %d pixels", n)
	}

	s.Stroke(p, surface.StrokeStyle{Color: color.Black, Width: 4})
	img := s.Image()
	if alphaAt(img, 50, 50) == 0 {
		t.Error("line pixel (50,50) should be painted")
	}
	if alphaAt(img, 50, 20) != 0 {
		t.Error("pixel (50,20) is far from the line")
	}
}

func TestFillPath(t *testing.T) {
	s := newSurface(t, 100, 100, 1)

	p := surface.NewPath()
	p.MoveTo(50, 10)
	p.LineTo(90, 90)
	p.LineTo(10, 90)
	p.Close()
	s.Fill(p, surface.FillStyle{Color: red})

	img := s.Image()
	if alphaAt(img, 50, 60) == 0 {
		t.Error("triangle interior should be painted")
	}
	if alphaAt(img, 5, 5) != 0 {
		t.Error("corner outside the triangle should stay clear")
	}

	s.Fill(surface.NewPath(), surface.FillStyle{Color: red})
	s.Fill(nil, surface.FillStyle{Color: red})
}

func TestText(t *testing.T) {
	s := newSurface(t, 200, 60, 1)

	font := surface.Font{Family: "Arial", Size: 20}
	w := s.MeasureText("Start", font)
	if w <= 0 {
		t.Fatalf("MeasureText() = %v, want > 0", w)
	}
	if s.MeasureText("", font) != 0 {
		t.Error("MeasureText of empty string should be 0")
	}

	s.DrawText("Start", 10, 10, surface.TextStyle{Font: font, Color: color.Black})
	if countPainted(s.Image()) == 0 {
		t.Error("DrawText painted nothing")
	}

	s.Clear(0, 0, 200, 60)
	s.DrawText("Start", 10, 10, surface.TextStyle{Font: surface.Font{Size: 0}, Color: color.Black})
	if n := countPainted(s.Image()); n != 0 {
		t.Errorf("zero size text painted %d pixels", n)
	}
}

func TestTextMaxWidth(t *testing.T) {
	font := surface.Font{Size: 30}

	wide := newSurface(t, 300, 60, 1)
	wide.DrawText("Decision", 0, 0, surface.TextStyle{Font: font, Color: color.Black})

	narrow := newSurface(t, 300, 60, 1)
	narrow.DrawText("Decision", 0, 0, surface.TextStyle{Font: font, Color: color.Black, MaxWidth: 40})

	rightmost := func(img image.Image) int {
		last := -1
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if alphaAt(img, x, y) != 0 && x > last {
					last = x
				}
			}
		}
		return last
	}

	if got := rightmost(narrow.Image()); got > 45 {
		t.Errorf("constrained text reaches x=%d, want <= 45", got)
	}
	if got := rightmost(wide.Image()); got <= 45 {
		t.Errorf("unconstrained text reaches x=%d, want wider than 45", got)
	}

	// The face shrinks as a whole, so the glyphs get shorter too.
	if n, w := inkHeight(narrow.Image()), inkHeight(wide.Image()); n <= 0 || n >= w {
		t.Errorf("ink height constrained = %d, unconstrained = %d, want 0 < constrained < unconstrained", n, w)
	}
}

// inkHeight returns the number of rows between the first and last painted
// row, inclusive, or 0 for a blank image.
func inkHeight(img image.Image) int {
	top, bottom := -1, -1
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) != 0 {
				if top < 0 {
					top = y
				}
				bottom = y
				break
			}
		}
	}
	if top < 0 {
		return 0
	}
	return bottom - top + 1
}

func TestWriteTo(t *testing.T) {
	s := newSurface(t, 10, 10, 1)
	s.FillRect(0, 0, 10, 10, red)

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestSaveRestoreAndClose(t *testing.T) {
	s := newSurface(t, 10, 10, 1)
	s.Save()
	s.Save()
	s.Restore()
	s.Restore()
	s.Restore()

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	s.FillRect(0, 0, 10, 10, red)
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil", s.Err())
	}
}
