// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads flowchart settings and scenes from TOML files.
//
// A file has three parts, all optional:
//
//	[chart]
//	gap = 40
//	width = 640
//	height = 480
//	background = "white"
//	grid = true
//
//	[output]
//	path = "chart.svg"
//	preview = false
//
//	[[shape]]
//	type = "rect"
//	x = 1
//	y = 1
//	width = 2
//	height = 1
//	radius = 0.3
//
// Unknown keys are an error.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/flowchart"
)

// File is a decoded configuration file.
type File struct {
	Chart  Chart   `toml:"chart"`
	Output Output  `toml:"output"`
	Shapes []Shape `toml:"shape"`

	md toml.MetaData
}

// Chart holds the chart options. Zero width and height keep the chart
// defaults.
type Chart struct {
	Gap                  float64 `toml:"gap"`
	Width                int     `toml:"width"`
	Height               int     `toml:"height"`
	Background           string  `toml:"background"`
	Grid                 bool    `toml:"grid"`
	RepaintAfterMutation bool    `toml:"repaint_after_mutation"`
	PixelRatio           float64 `toml:"pixel_ratio"`
	Backend              string  `toml:"backend"`
}

// Output holds settings of the command-line renderer.
type Output struct {
	// Path is the output file. Empty means standard output.
	Path string `toml:"path"`

	// Preview prints a terminal preview after rendering.
	Preview bool `toml:"preview"`

	// SystemFonts resolves font families against installed fonts.
	SystemFonts bool `toml:"system_fonts"`

	// FontCache is the directory for the system font index. Empty uses the
	// user cache directory.
	FontCache string `toml:"font_cache"`
}

func newFile() *File {
	o := flowchart.DefaultOptions()
	return &File{
		Chart: Chart{
			Gap:                  o.Gap,
			Width:                o.Width,
			Height:               o.Height,
			Background:           o.Background,
			Grid:                 o.ShowGrid,
			RepaintAfterMutation: o.RepaintAfterMutation,
			PixelRatio:           o.PixelRatio,
			Backend:              o.Backend,
		},
	}
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return newFile()
}

// LoadFile loads a configuration file in TOML format. It will error if
// there are values in the file that were not parsed.
func LoadFile(fileName string) (*File, error) {
	return load(fileName, true)
}

// Load is like LoadFile but loads the configuration from a string.
func Load(conf string) (*File, error) {
	return load(conf, false)
}

func load(conf string, isFileName bool) (*File, error) {
	f := newFile()
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, f)
	} else {
		md, err = toml.Decode(conf, f)
	}
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("undecoded fields in configuration: %v", undecoded)
	}
	f.md = md

	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// IsDefined reports whether the key, given as its path components, was set
// in the decoded file.
func (f *File) IsDefined(key ...string) bool {
	return f.md.IsDefined(key...)
}

func (f *File) validate() error {
	c := f.Chart
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("chart: negative size %dx%d", c.Width, c.Height)
	}
	if !(c.Gap > 0) {
		return fmt.Errorf("chart: gap must be positive, got %v", c.Gap)
	}
	if c.Background != "" {
		if _, err := flowchart.ParseColor(c.Background); err != nil {
			return fmt.Errorf("chart: background: %w", err)
		}
	}
	for i := range f.Shapes {
		if err := f.Shapes[i].validate(); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return nil
}

// ChartOptions returns the chart section as flowchart options.
func (f *File) ChartOptions() flowchart.Options {
	c := f.Chart
	return flowchart.Options{
		Gap:                  c.Gap,
		Width:                c.Width,
		Height:               c.Height,
		Background:           c.Background,
		ShowGrid:             c.Grid,
		RepaintAfterMutation: c.RepaintAfterMutation,
		PixelRatio:           c.PixelRatio,
		Backend:              strings.ToLower(c.Backend),
	}
}

// Options returns the chart section as arguments for flowchart.New.
func (f *File) Options() []flowchart.Option {
	return []flowchart.Option{flowchart.WithOptions(f.ChartOptions())}
}

// Scene builds the shape records in file order.
func (f *File) Scene() []flowchart.Shape {
	out := make([]flowchart.Shape, 0, len(f.Shapes))
	for i := range f.Shapes {
		out = append(out, f.Shapes[i].Build())
	}
	return out
}
