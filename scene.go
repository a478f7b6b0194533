// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package flowchart

import (
	"reflect"
	"slices"
)

// Scene is an ordered list of shapes. Insertion order is paint order:
// later shapes are drawn over earlier ones.
//
// The zero value is an empty scene ready to use. Scene is not safe for
// concurrent use.
type Scene struct {
	shapes []Shape
}

// Add appends shapes. Nil shapes are ignored.
func (s *Scene) Add(shapes ...Shape) {
	for _, sh := range shapes {
		if sh != nil {
			s.shapes = append(s.shapes, sh)
		}
	}
}

// Remove deletes the first occurrence of each given shape, compared by
// identity. Shapes not in the scene are ignored.
func (s *Scene) Remove(shapes ...Shape) {
	for _, sh := range shapes {
		if i := s.Index(sh); i >= 0 {
			s.shapes = slices.Delete(s.shapes, i, i+1)
		}
	}
}

// Clear removes every shape.
func (s *Scene) Clear() {
	clear(s.shapes)
	s.shapes = s.shapes[:0]
}

// Index returns the position of the first occurrence of sh, or -1.
func (s *Scene) Index(sh Shape) int {
	for i, v := range s.shapes {
		if same(v, sh) {
			return i
		}
	}
	return -1
}

// Len returns the number of shapes.
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes returns a copy of the shapes in paint order.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// same reports whether a and b are the same shape. Values whose dynamic
// type cannot be compared are never the same.
func same(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}
