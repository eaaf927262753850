// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mol provides the minimal molecular data model consumed by
// pickers and structure representations: atoms, bonds, contacts,
// clashes, and unit cells. Parsing of structure file formats is not
// part of this package.
package mol

import (
	"image/color"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Atom is one atom in a [Structure].
type Atom struct {

	// Serial is the author-assigned atom serial number, unique within
	// the structure.
	Serial int

	// Name is the atom name (e.g., "CA").
	Name string

	// Element is the chemical element symbol (e.g., "C", "Fe").
	Element string

	// Pos is the atom position in world coordinates.
	Pos math32.Vector3

	// Radius is the display radius.
	Radius float32
}

// Bond connects two atoms in a [Structure], by atom index.
type Bond struct {
	Atom1, Atom2 int
}

// Structure is a molecular structure: an ordered list of atoms and the
// bonds between them.
type Structure struct {
	Name  string
	Atoms []Atom
	Bonds []Bond

	// Cell is the crystallographic unit cell, if known.
	Cell *UnitCell

	serialIndex map[int]int
}

// AtomBySerial returns the index of the atom with the given serial
// number, or -1 if there is none. The lookup index is built lazily on
// first use and is invalidated by [Structure.SetAtoms].
func (st *Structure) AtomBySerial(serial int) int {
	if st.serialIndex == nil {
		st.serialIndex = make(map[int]int, len(st.Atoms))
		for i := range st.Atoms {
			st.serialIndex[st.Atoms[i].Serial] = i
		}
	}
	idx, ok := st.serialIndex[serial]
	if !ok {
		return -1
	}
	return idx
}

// SetAtoms replaces the atom list and invalidates the serial lookup index.
func (st *Structure) SetAtoms(atoms []Atom) {
	st.Atoms = atoms
	st.serialIndex = nil
}

// BoundingBox returns the bounding box of all atom positions.
func (st *Structure) BoundingBox() math32.Box3 {
	bb := math32.B3Empty()
	for i := range st.Atoms {
		bb.ExpandByPoint(st.Atoms[i].Pos)
	}
	return bb
}

// Center returns the center of the structure's bounding box.
func (st *Structure) Center() math32.Vector3 {
	return st.BoundingBox().Center()
}

// AtomProxy refers to one atom of a structure by index.
type AtomProxy struct {
	Structure *Structure
	Index     int
}

// Atom returns the referenced atom.
func (ap AtomProxy) Atom() *Atom {
	return &ap.Structure.Atoms[ap.Index]
}

// Position returns the referenced atom's position.
func (ap AtomProxy) Position() math32.Vector3 {
	return ap.Structure.Atoms[ap.Index].Pos
}

// BondProxy refers to one bond of a structure by index.
type BondProxy struct {
	Structure *Structure
	Index     int
}

// Bond returns the referenced bond.
func (bp BondProxy) Bond() Bond {
	return bp.Structure.Bonds[bp.Index]
}

// Atom1 returns a proxy for the bond's first atom.
func (bp BondProxy) Atom1() AtomProxy {
	return AtomProxy{bp.Structure, bp.Bond().Atom1}
}

// Atom2 returns a proxy for the bond's second atom.
func (bp BondProxy) Atom2() AtomProxy {
	return AtomProxy{bp.Structure, bp.Bond().Atom2}
}

// Center returns the midpoint of the bond's two atom positions.
func (bp BondProxy) Center() math32.Vector3 {
	return bp.Atom1().Position().Add(bp.Atom2().Position()).MulScalar(0.5)
}

// elementColors is the CPK-style display color per element symbol.
var elementColors = map[string]color.RGBA{
	"H":  colors.FromRGB(255, 255, 255),
	"C":  colors.FromRGB(144, 144, 144),
	"N":  colors.FromRGB(48, 80, 248),
	"O":  colors.FromRGB(255, 13, 13),
	"S":  colors.FromRGB(255, 255, 48),
	"P":  colors.FromRGB(255, 128, 0),
	"CL": colors.FromRGB(31, 240, 31),
	"FE": colors.FromRGB(224, 102, 51),
	"MG": colors.FromRGB(138, 255, 0),
	"ZN": colors.FromRGB(125, 128, 176),
}

// ElementColor returns the CPK-style display color for the given element
// symbol (case-insensitive), or pink for unknown elements.
func ElementColor(element string) color.RGBA {
	if c, ok := elementColors[strings.ToUpper(element)]; ok {
		return c
	}
	return colors.FromRGB(255, 20, 147)
}
