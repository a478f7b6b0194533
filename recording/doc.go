// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording captures surface drawing calls as typed commands.
//
// A Recorder implements surface.Surface. Everything drawn into it is kept as
// a list of Command values that can be inspected, printed, or replayed onto
// any other surface. Commands are plain structs, so tests can assert on the
// exact sequence a chart produced without rasterizing anything.
//
// Paths are cloned into a ResourcePool when recorded and referenced by
// PathRef, so later changes to a caller's path never alter a recording.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	flowchart.Repaint(rec, shapes, opts)
//	r := rec.Finish()
//
//	for _, cmd := range r.Commands() {
//		fmt.Println(cmd)
//	}
//
//	img, _ := raster.New(surface.Options{Width: 800, Height: 600})
//	_ = r.Playback(img)
//
// # Measuring text
//
// Painting code measures text to decide whether it must be compressed. A
// Recorder answers MeasureText with fonts.Default() unless a different
// Measurer is supplied with WithMeasurer.
package recording
