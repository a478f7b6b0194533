// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command flowchart renders a flowchart to PNG or SVG.
//
// Without a configuration file, or when the file has no [[shape]] tables,
// a demonstration chart with every shape variant is drawn.
//
// Usage:
//
//	flowchart -output chart.png
//	flowchart -config chart.toml -output chart.svg -preview
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/flowchart"
	"github.com/gogpu/flowchart/config"
	"github.com/gogpu/flowchart/fonts"
	"github.com/gogpu/flowchart/recording"
	"github.com/gogpu/flowchart/surface"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("flowchart: %v", err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	defaults := config.Default()

	fs := flag.NewFlagSet("flowchart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML configuration file")
		output     = fs.String("output", "", "output file (default: stdout)")
		backend    = fs.String("backend", "", "surface backend: image or svg (default: from the -output extension)")
		width      = fs.Int("width", flowchart.DefaultWidth, "width in pixels")
		height     = fs.Int("height", flowchart.DefaultHeight, "height in pixels")
		gap        = fs.Float64("gap", defaults.Chart.Gap, "pixels per grid unit")
		ratio      = fs.Float64("ratio", defaults.Chart.PixelRatio, "device pixel ratio")
		grid       = fs.Bool("grid", defaults.Chart.Grid, "draw the grid")
		bg         = fs.String("bg", defaults.Chart.Background, "background color")
		preview    = fs.Bool("preview", false, "show a preview in the terminal")
		sysFonts   = fs.Bool("sysfonts", false, "look up font families among installed fonts")
		dump       = fs.Bool("dump", false, "write the recorded drawing commands to stderr")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	flowchart.SetLogger(logger)
	defer flowchart.SetLogger(nil)

	cfg := defaults
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	opts := cfg.ChartOptions()
	out := cfg.Output
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			out.Path = *output
		case "backend":
			opts.Backend = strings.ToLower(*backend)
		case "width":
			opts.Width = *width
		case "height":
			opts.Height = *height
		case "gap":
			opts.Gap = *gap
		case "ratio":
			opts.PixelRatio = *ratio
		case "grid":
			opts.ShowGrid = *grid
		case "bg":
			opts.Background = *bg
		case "preview":
			out.Preview = *preview
		case "sysfonts":
			out.SystemFonts = *sysFonts
		}
	})
	if *backend == "" && !cfg.IsDefined("chart", "backend") {
		opts.Backend = backendFor(out.Path, opts.Backend)
	}
	if opts.Width <= 0 {
		opts.Width = flowchart.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = flowchart.DefaultHeight
	}

	if out.SystemFonts {
		r, err := fonts.NewResolver(fonts.WithSystemFonts(out.FontCache))
		if err != nil {
			return fmt.Errorf("fonts: %w", err)
		}
		fonts.SetDefault(r)
		defer fonts.SetDefault(nil)
	}

	shapes := cfg.Scene()
	if len(shapes) == 0 {
		shapes = demoScene()
	}

	rec, err := record(shapes, opts)
	if err != nil {
		return err
	}
	if *dump {
		if _, err := rec.WriteTo(stderr); err != nil {
			return err
		}
	}

	s, err := surface.NewSurfaceByName(opts.Backend, surface.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		PixelRatio: opts.PixelRatio,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	if err := rec.Playback(s); err != nil {
		return fmt.Errorf("playback: %w", err)
	}
	if err := write(s, out.Path, stdout); err != nil {
		return err
	}
	logger.Info("rendered",
		"output", out.Path, "backend", opts.Backend,
		"shapes", len(shapes), "commands", len(rec.Commands()))

	if out.Preview {
		img, err := previewImage(s, rec, opts)
		if err != nil {
			return err
		}
		return runPreview(img)
	}
	return nil
}

// record paints shapes once into a recording.
func record(shapes []flowchart.Shape, opts flowchart.Options) (*recording.Recording, error) {
	rec := recording.NewRecorder(opts.Width, opts.Height)
	c := flowchart.New(
		flowchart.WithOptions(opts),
		flowchart.WithSurface(rec),
		flowchart.WithRepaintAfterMutation(false),
	)
	defer c.Close()
	if err := c.Err(); err != nil {
		return nil, err
	}

	c.Add(shapes...)
	rec.Reset()
	c.Repaint()
	return rec.Finish(), nil
}

// backendFor picks a backend from the output file extension.
func backendFor(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "svg"
	case ".png":
		return "image"
	}
	return fallback
}

func write(s surface.Surface, path string, stdout io.Writer) error {
	ws, ok := s.(surface.WriterSurface)
	if !ok {
		return flowchart.ErrNotWritable
	}
	if path == "" || path == "-" {
		_, err := ws.WriteTo(stdout)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := ws.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
