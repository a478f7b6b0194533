// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestRunPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.png")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-output", out, "-width", "320", "-height", "240", "-gap", "20"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size = %v, want 320x240", b)
	}
	if stdout.Len() != 0 {
		t.Errorf("wrote %d bytes to stdout", stdout.Len())
	}
}

func TestRunSVGFromExtension(t *testing.T) {
	out := filepath.Join(t.TempDir(), "chart.svg")
	var stderr bytes.Buffer
	if err := run([]string{"-output", out}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{"<svg", "Start", "Valid?", "</svg>"} {
		if !strings.Contains(s, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestRunStdoutAndDump(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-backend", "svg", "-dump", "-grid=false"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "<?xml") {
		t.Errorf("stdout does not start with an SVG document: %.40q", stdout.String())
	}
	if !strings.Contains(stderr.String(), `DrawText "Start"`) {
		t.Errorf("dump missing the Start label:\n%s", stderr.String())
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "chart.toml")
	err := os.WriteFile(conf, []byte(`
[chart]
width = 200
height = 100
backend = "svg"

[output]
path = "`+filepath.ToSlash(filepath.Join(dir, "from-config.png"))+`"

[[shape]]
type = "text"
x = 1
y = 1
content = "from config"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	if err := run([]string{"-config", conf}, &bytes.Buffer{}, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	// The configured backend wins over the file extension.
	data, err := os.ReadFile(filepath.Join(dir, "from-config.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) || !bytes.Contains(data, []byte("from config")) {
		t.Errorf("output is not the configured SVG scene: %.80q", data)
	}
	if bytes.Contains(data, []byte("Valid?")) {
		t.Error("demo scene drawn although the config has shapes")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"missing config", []string{"-config", "does-not-exist.toml"}},
		{"unknown backend", []string{"-backend", "pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
				t.Error("run succeeded, want error")
			}
		})
	}
}

func TestBackendFor(t *testing.T) {
	tests := []struct {
		path, fallback, want string
	}{
		{"a.svg", "image", "svg"},
		{"A.SVG", "image", "svg"},
		{"a.png", "svg", "image"},
		{"a.out", "svg", "svg"},
		{"", "image", "image"},
	}
	for _, tt := range tests {
		if got := backendFor(tt.path, tt.fallback); got != tt.want {
			t.Errorf("backendFor(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
		}
	}
}

func TestDrawPreview(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if x >= 10 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}

	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()
	s.SetSize(20, 10)

	drawPreview(s, img)
	cells, w, _ := s.GetContents()

	tests := []struct {
		x, y    int
		r, g, b int32
	}{
		{0, 0, 255, 0, 0},
		{9, 9, 255, 0, 0},
		{10, 0, 0, 0, 255},
		{19, 9, 0, 0, 255},
	}
	for _, tt := range tests {
		cell := cells[tt.y*w+tt.x]
		if len(cell.Runes) == 0 || cell.Runes[0] != upperHalf {
			t.Errorf("cell (%d,%d) runes = %q", tt.x, tt.y, cell.Runes)
			continue
		}
		fg, bg, _ := cell.Style.Decompose()
		r, g, b := fg.RGB()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("cell (%d,%d) fg = (%d,%d,%d), want (%d,%d,%d)", tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
		}
		if bg != fg {
			t.Errorf("cell (%d,%d) bg = %v, want %v", tt.x, tt.y, bg, fg)
		}
	}
}

func TestSampleTransparentOverWhite(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	r, g, b := sample(img, 0, 0, 1).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("transparent pixel = (%d,%d,%d), want white", r, g, b)
	}
}

func TestPreviewLoopQuits(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	defer s.Fini()

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	previewLoop(s, image.NewNRGBA(image.Rect(0, 0, 4, 4)))
}
