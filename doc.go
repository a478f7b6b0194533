// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package flowchart draws flowchart diagrams from declarative shape records.
//
// # Overview
//
// Shapes are authored on a grid: every coordinate and size is in grid units
// and the chart's gap converts units to pixels at paint time. Changing the
// gap rescales the whole diagram.
//
// # Quick Start
//
//	import "github.com/gogpu/flowchart"
//
//	c := flowchart.New(flowchart.WithSize(400, 300), flowchart.WithBackground("white"))
//	defer c.Close()
//
//	start := flowchart.NewRect(flowchart.At(1, 1), flowchart.Size(2, 1), flowchart.Radius(0.3))
//	label := flowchart.NewText(
//	    flowchart.At(2, 1.5),
//	    flowchart.Content("Start"),
//	    flowchart.Align(flowchart.AlignCenter, flowchart.AlignMiddle),
//	)
//	next := flowchart.NewArrow(flowchart.Points(flowchart.Pt(2, 2), flowchart.Pt(2, 3)))
//	c.Add(start, label, next)
//
//	f, _ := os.Create("chart.png")
//	defer f.Close()
//	c.WriteTo(f)
//
// # Shapes
//
// Five record types are drawn: Circle, Rect (plain or with rounded
// corners), Rhombus, Text and Arrow. Records are plain structs; factories
// such as NewRect fill in defaults and apply Attr overrides. Fields may also
// be edited directly, followed by Chart.Repaint.
//
// # Painting
//
// Every repaint clears the surface and draws the background, the grid and
// then each shape in scene order. Positions are rounded to whole pixels so
// one pixel strokes stay crisp. Repaint is a free function and can draw any
// shape list onto any surface.Surface, including a recording.Recorder.
//
// # Surfaces
//
// A chart draws onto a surface from the surface registry. The "image"
// backend rasterizes with gg and the "svg" backend writes SVG. Both are
// registered when this package is imported.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arrowhead angles in degrees
package flowchart
