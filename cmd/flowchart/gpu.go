// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build gpu

package main

// GPU accelerated rasterization for the "image" backend. gg falls back to
// the CPU when no adapter is available.
import _ "github.com/gogpu/gg/gpu"
