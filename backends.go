// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

// Register the built-in surface backends.
import (
	_ "github.com/gogpu/flowchart/surface/raster"
	_ "github.com/gogpu/flowchart/surface/svg"
)
