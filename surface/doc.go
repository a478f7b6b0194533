// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the drawing target a chart paints on.
//
// A Surface exposes the handful of primitives the flowchart painter needs:
// clearing, filling a rectangle, stroking and filling paths, measuring and
// drawing text, and scoped Save/Restore. Paths are built with Path, which
// records MoveTo, LineTo, QuadTo, CubicTo and Close segments.
//
// # Backends
//
// Backends register themselves with the package registry from init,
// following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/flowchart/surface/raster" // "image"
//	import _ "github.com/gogpu/flowchart/surface/svg"    // "svg"
//
//	s, err := surface.NewSurfaceByName("image", surface.Options{Width: 800, Height: 600})
//
// The recording package provides a Surface that captures every call as a
// typed command, which is how the painter is tested.
//
// # Coordinates
//
// All coordinates are logical pixels with the origin at the top-left corner.
// Backends with a pixel ratio other than 1 scale internally; Width and
// Height always report logical pixels.
//
// # Thread Safety
//
// Surfaces are NOT safe for concurrent use. The registry is.
package surface
