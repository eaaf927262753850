// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package volume provides a volumetric scalar dataset backed by
// [grid.Grid], with voxel-index to world-position conversion for
// volume representations and pickers.
package volume

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/grid"
)

// Volume is a scalar field sampled on a regular lattice.
// The backing grid must have ElemSize 1.
type Volume struct {
	Name string

	// Grid is the dense voxel lattice holding one value per cell.
	Grid *grid.Grid

	// Origin is the world position of voxel (0, 0, 0).
	Origin math32.Vector3

	// VoxelSize is the world-space spacing between adjacent voxels
	// along each lattice axis.
	VoxelSize math32.Vector3
}

// New returns a new [Volume] over the given grid with unit voxel
// spacing at the world origin.
func New(name string, g *grid.Grid) *Volume {
	return &Volume{Name: name, Grid: g, VoxelSize: math32.Vec3(1, 1, 1)}
}

// Value returns the scalar value of the voxel with the given flat index.
func (v *Volume) Value(i int) float32 {
	return v.Grid.Data[i]
}

// Coord returns the lattice coordinate of the voxel with the given
// flat index.
func (v *Volume) Coord(i int) (x, y, z int) {
	z = i % v.Grid.Height
	y = (i / v.Grid.Height) % v.Grid.Width
	x = i / (v.Grid.Height * v.Grid.Width)
	return
}

// Position returns the world position of the voxel with the given
// flat index.
func (v *Volume) Position(i int) math32.Vector3 {
	x, y, z := v.Coord(i)
	return v.Origin.Add(math32.Vec3(
		float32(x)*v.VoxelSize.X,
		float32(y)*v.VoxelSize.Y,
		float32(z)*v.VoxelSize.Z))
}

// Count returns the number of voxels.
func (v *Volume) Count() int {
	return v.Grid.Length * v.Grid.Width * v.Grid.Height
}
