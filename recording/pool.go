// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import "github.com/gogpu/flowchart/surface"

// ResourcePool stores the paths referenced by recorded commands.
// Each added path is cloned so the recording is immutable.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths []*surface.Path
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths: make([]*surface.Path, 0, 64),
	}
}

// AddPath clones path into the pool and returns its reference.
func (p *ResourcePool) AddPath(path *surface.Path) PathRef {
	var cloned *surface.Path
	if path != nil {
		cloned = path.Clone()
	}
	p.paths = append(p.paths, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for ref, or nil when ref is out of range.
func (p *ResourcePool) GetPath(ref PathRef) *surface.Path {
	if !ref.IsValid() || int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of pooled paths.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// Clear removes all resources but keeps capacity.
func (p *ResourcePool) Clear() {
	clear(p.paths)
	p.paths = p.paths[:0]
}
