// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid provides a dense 3D array with a fixed number of values
// per cell, used as backing storage for volumetric and lattice data.
package grid

// Grid is a dense 3D array of float32 cells, each holding ElemSize values,
// stored row-major in a single flat backing slice.
// Coordinate accesses assume 0 <= x < Length, 0 <= y < Width,
// 0 <= z < Height; out-of-range coordinates are not checked.
type Grid struct {

	// Length is the extent of the first (x) dimension.
	Length int

	// Width is the extent of the second (y) dimension.
	Width int

	// Height is the extent of the third (z) dimension.
	Height int

	// ElemSize is the number of values stored per cell.
	ElemSize int

	// Data is the flat backing array, of size Length*Width*Height*ElemSize.
	Data []float32
}

// New returns a new [Grid] with the given dimensions and values per cell,
// with a zeroed backing array.
func New(length, width, height, elemSize int) *Grid {
	return &Grid{
		Length:   length,
		Width:    width,
		Height:   height,
		ElemSize: elemSize,
		Data:     make([]float32, length*width*height*elemSize),
	}
}

// NewFromData returns a new [Grid] using the given flat slice as its
// backing array, which must be of size length*width*height*elemSize.
func NewFromData(length, width, height, elemSize int, data []float32) *Grid {
	return &Grid{
		Length:   length,
		Width:    width,
		Height:   height,
		ElemSize: elemSize,
		Data:     data,
	}
}

// Index returns the flat offset of cell (x, y, z) in [Grid.Data].
func (g *Grid) Index(x, y, z int) int {
	return (((x*g.Width)+y)*g.Height + z) * g.ElemSize
}

// ToArray copies the ElemSize values of cell (x, y, z) into array
// starting at offset.
func (g *Grid) ToArray(x, y, z int, array []float32, offset int) {
	idx := g.Index(x, y, z)
	for i := 0; i < g.ElemSize; i++ {
		array[offset+i] = g.Data[idx+i]
	}
}

// FromArray copies ElemSize values from array starting at offset into
// cell (x, y, z).
func (g *Grid) FromArray(x, y, z int, array []float32, offset int) {
	idx := g.Index(x, y, z)
	for i := 0; i < g.ElemSize; i++ {
		g.Data[idx+i] = array[offset+i]
	}
}

// Set writes a full cell at (x, y, z) from the given values.
// Values beyond ElemSize are ignored.
func (g *Grid) Set(x, y, z int, values ...float32) {
	idx := g.Index(x, y, z)
	n := min(len(values), g.ElemSize)
	for i := 0; i < n; i++ {
		g.Data[idx+i] = values[i]
	}
}

// CopyFrom copies the dimensions and data of the other grid into this one,
// reallocating the backing array if the sizes differ.
func (g *Grid) CopyFrom(other *Grid) {
	g.Length = other.Length
	g.Width = other.Width
	g.Height = other.Height
	g.ElemSize = other.ElemSize
	if len(g.Data) != len(other.Data) {
		g.Data = make([]float32, len(other.Data))
	}
	copy(g.Data, other.Data)
}

// Clone returns a new [Grid] that is a deep copy of this one.
func (g *Grid) Clone() *Grid {
	ng := &Grid{}
	ng.CopyFrom(g)
	return ng
}
