// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picker resolves render-assigned pick ids back to domain
// objects and 3D anchor positions, polymorphic over the kind of entity
// that was rendered (atom, bond, contact, clash, volume voxel, shape
// primitive, mesh, unit cell, axes).
//
// Pickers are pure request/response: resolving a pid has no side
// effects. Callers are expected to only query pids produced by the
// matching render pass; other pids yield best-effort results, never
// a panic.
package picker

import "cogentcore.org/core/math32"

// Picker resolves pick ids for one rendered buffer.
type Picker interface {

	// Type returns the entity kind tag ("atom", "bond", "sphere", ...).
	Type() string

	// GetIndex returns the data index for the given pick id, applying
	// the optional index remapping table.
	GetIndex(pid int) int

	// Object returns the kind-specific descriptor of the picked entity.
	Object(pid int) any

	// Position returns the 3D anchor position of the picked entity,
	// in the coordinates of the rendered data.
	Position(pid int) math32.Vector3
}

// GetPosition returns the anchor position for the given pick id with
// the instance transform applied first and the component transform
// second. Either transform may be nil for identity.
func GetPosition(p Picker, pid int, instance, component *math32.Matrix4) math32.Vector3 {
	pos := p.Position(pid)
	if instance != nil {
		pos = pos.MulMatrix4(instance)
	}
	if component != nil {
		pos = pos.MulMatrix4(component)
	}
	return pos
}

// Base provides the index remapping shared by all pickers.
type Base struct {

	// IndexMap is the optional remapping table from pick id to data
	// index; identity if empty.
	IndexMap []int
}

// GetIndex returns the data index for the given pick id. Pids outside
// the remapping table are clamped rather than panicking.
func (b *Base) GetIndex(pid int) int {
	if len(b.IndexMap) == 0 {
		return pid
	}
	return b.IndexMap[clamp(pid, len(b.IndexMap))]
}

// clamp restricts i to [0, n), returning 0 for n <= 0.
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Ignore is the sentinel picker for geometry that has no pickable
// identity and should be skipped by selection logic.
type Ignore struct {
	Base
}

func (p *Ignore) Type() string                    { return "ignore" }
func (p *Ignore) Object(pid int) any              { return nil }
func (p *Ignore) Position(pid int) math32.Vector3 { return math32.Vector3{} }

// Unknown is the sentinel picker for geometry whose identity is not
// known to the picking system.
type Unknown struct {
	Base
}

func (p *Unknown) Type() string                    { return "unknown" }
func (p *Unknown) Object(pid int) any              { return nil }
func (p *Unknown) Position(pid int) math32.Vector3 { return math32.Vector3{} }
