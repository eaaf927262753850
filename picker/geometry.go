// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/shape"
	"cogentcore.org/molscene/volume"
)

// VolumeObject is the descriptor returned when a volume voxel is picked.
type VolumeObject struct {
	Volume *volume.Volume

	// Index is the flat voxel index in the volume's grid.
	Index int

	// Value is the scalar value of the voxel.
	Value float32
}

// Volume resolves pick ids to voxels of a volumetric dataset.
// The index remap is typically set to the subset of voxels that were
// actually rendered (e.g., those over a threshold).
type Volume struct {
	Base
	Volume *volume.Volume
}

func (p *Volume) Type() string { return "volume" }

func (p *Volume) voxel(pid int) int {
	return clamp(p.GetIndex(pid), p.Volume.Count())
}

func (p *Volume) Object(pid int) any {
	idx := p.voxel(pid)
	return VolumeObject{Volume: p.Volume, Index: idx, Value: p.Volume.Value(idx)}
}

func (p *Volume) Position(pid int) math32.Vector3 {
	return p.Volume.Position(p.voxel(pid))
}

// MeshObject is the descriptor returned when an arbitrary mesh is
// picked; the mesh has identity but no per-pid structure.
type MeshObject struct {
	Name   string
	Serial int
}

// Mesh is the singleton picker for an arbitrary triangle mesh; every
// pid resolves to the mesh itself, anchored at its cached centroid.
type Mesh struct {
	Base
	Name   string
	Serial int

	centroid math32.Vector3
}

// NewMesh returns a mesh picker with the centroid precomputed from the
// given flat vertex position array (xyz triples).
func NewMesh(name string, serial int, positions []float32) *Mesh {
	m := &Mesh{Name: name, Serial: serial}
	n := len(positions) / 3
	if n == 0 {
		return m
	}
	var sum math32.Vector3
	for i := 0; i < n; i++ {
		sum = sum.Add(math32.Vec3(positions[i*3], positions[i*3+1], positions[i*3+2]))
	}
	m.centroid = sum.DivScalar(float32(n))
	return m
}

func (p *Mesh) Type() string { return "mesh" }

func (p *Mesh) Object(pid int) any {
	return MeshObject{Name: p.Name, Serial: p.Serial}
}

func (p *Mesh) Position(pid int) math32.Vector3 {
	return p.centroid
}

// AxesObject is the descriptor returned when a principal-axes rendering
// is picked.
type AxesObject struct {
	Name string
}

// Axes is the singleton picker for a principal-axes rendering.
type Axes struct {
	Base
	Name   string
	Center math32.Vector3
}

func (p *Axes) Type() string { return "axes" }

func (p *Axes) Object(pid int) any { return AxesObject{Name: p.Name} }

func (p *Axes) Position(pid int) math32.Vector3 { return p.Center }

// ShapeSource is the narrow view of a geometric primitive kind needed
// by [Shape] pickers: it reconstructs objects and anchor positions from
// the columnar data a shape holds for that kind. Adding a new primitive
// kind requires no new picker logic beyond implementing this.
type ShapeSource interface {

	// PrimitiveType returns the primitive kind tag ("sphere", ...).
	PrimitiveType() string

	// ObjectFromShape reconstructs the structured object for the given
	// primitive instance of the shape.
	ObjectFromShape(sh *shape.Shape, pid int) map[string]any

	// PositionFromShape returns the anchor position for the given
	// primitive instance of the shape.
	PositionFromShape(sh *shape.Shape, pid int) math32.Vector3
}

// Shape resolves pick ids for one primitive kind of a [shape.Shape],
// delegating type, object, and position entirely to the kind.
type Shape struct {
	Base
	Source ShapeSource
	Shape  *shape.Shape
}

// NewShape returns a shape picker for the given primitive kind and shape.
func NewShape(src ShapeSource, sh *shape.Shape) *Shape {
	return &Shape{Source: src, Shape: sh}
}

func (p *Shape) Type() string { return p.Source.PrimitiveType() }

func (p *Shape) row(pid int) int {
	return clamp(p.GetIndex(pid), p.Shape.Count(p.Source.PrimitiveType()))
}

func (p *Shape) Object(pid int) any {
	return p.Source.ObjectFromShape(p.Shape, p.row(pid))
}

func (p *Shape) Position(pid int) math32.Vector3 {
	return p.Source.PositionFromShape(p.Shape, p.row(pid))
}
