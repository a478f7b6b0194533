// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/flowchart"
	"github.com/gogpu/flowchart/recording"
	"github.com/gogpu/flowchart/surface"
)

// upperHalf draws the top pixel in the foreground color and the bottom
// pixel in the background color, giving two pixels per cell.
const upperHalf = '▀'

// previewImage returns the pixels of s, or rasterizes rec when s is not a
// raster surface.
func previewImage(s surface.Surface, rec *recording.Recording, opts flowchart.Options) (image.Image, error) {
	if is, ok := s.(surface.ImageSurface); ok {
		return is.Image(), nil
	}

	rs, err := surface.NewSurfaceByName("image", surface.Options{Width: opts.Width, Height: opts.Height})
	if err != nil {
		return nil, err
	}
	defer rs.Close()
	if err := rec.Playback(rs); err != nil {
		return nil, err
	}
	is, ok := rs.(surface.ImageSurface)
	if !ok {
		return nil, flowchart.ErrNotWritable
	}
	return is.Image(), nil
}

// runPreview shows img until a key is pressed.
func runPreview(img image.Image) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	previewLoop(s, img)
	return nil
}

func previewLoop(s tcell.Screen, img image.Image) {
	drawPreview(s, img)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			s.Sync()
			drawPreview(s, img)
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' {
					return
				}
			}
		}
	}
}

// drawPreview scales img to fit the screen, keeping its aspect ratio.
func drawPreview(s tcell.Screen, img image.Image) {
	s.Clear()
	defer s.Show()

	cols, rows := s.Size()
	b := img.Bounds()
	if cols <= 0 || rows <= 0 || b.Empty() {
		return
	}

	scale := math.Max(float64(b.Dx())/float64(cols), float64(b.Dy())/float64(2*rows))
	w := int(float64(b.Dx()) / scale)
	h := int(float64(b.Dy()) / scale)

	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := sample(img, x, y, scale)
			bottom := top
			if y+1 < h {
				bottom = sample(img, x, y+1, scale)
			}
			st := tcell.StyleDefault.Foreground(top).Background(bottom)
			s.SetContent(x, y/2, upperHalf, nil, st)
		}
	}
}

// sample returns the color of the pixel under preview position (x, y),
// composited over white.
func sample(img image.Image, x, y int, scale float64) tcell.Color {
	b := img.Bounds()
	px := min(b.Min.X+int((float64(x)+0.5)*scale), b.Max.X-1)
	py := min(b.Min.Y+int((float64(y)+0.5)*scale), b.Max.Y-1)

	c := color.NRGBAModel.Convert(img.At(px, py)).(color.NRGBA)
	a := float64(c.A) / 255
	over := func(v uint8) int32 {
		return int32(float64(v)*a + 255*(1-a) + 0.5)
	}
	return tcell.NewRGBColor(over(c.R), over(c.G), over(c.B))
}
