// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func testStructure() *Structure {
	return &Structure{
		Name: "test",
		Atoms: []Atom{
			{Serial: 10, Name: "N", Element: "N", Pos: math32.Vec3(0, 0, 0)},
			{Serial: 11, Name: "CA", Element: "C", Pos: math32.Vec3(2, 0, 0)},
			{Serial: 12, Name: "O", Element: "O", Pos: math32.Vec3(2, 2, 0)},
		},
		Bonds: []Bond{{0, 1}, {1, 2}},
	}
}

func TestAtomBySerial(t *testing.T) {
	st := testStructure()
	assert.Equal(t, 1, st.AtomBySerial(11))
	assert.Equal(t, -1, st.AtomBySerial(99))

	st.SetAtoms([]Atom{{Serial: 7}})
	assert.Equal(t, 0, st.AtomBySerial(7))
	assert.Equal(t, -1, st.AtomBySerial(11))
}

func TestBondProxy(t *testing.T) {
	st := testStructure()
	bp := BondProxy{st, 0}
	assert.Equal(t, math32.Vec3(1, 0, 0), bp.Center())
	assert.Equal(t, "N", bp.Atom1().Atom().Name)
	assert.Equal(t, "CA", bp.Atom2().Atom().Name)
}

func TestStructureBounds(t *testing.T) {
	st := testStructure()
	bb := st.BoundingBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(2, 2, 0), bb.Max)
	assert.Equal(t, math32.Vec3(1, 1, 0), st.Center())
}

func TestContactTypeNames(t *testing.T) {
	assert.Equal(t, "hydrogen bond", ContactHydrogenBond.String())
	assert.Equal(t, "unknown", ContactType(999).String())
}

func TestClashResolve(t *testing.T) {
	st := testStructure()
	cs := &ClashSet{Structure: st, Clashes: []Clash{
		{Serial1: "10", Serial2: "12", Magnitude: 0.6},
		{Serial1: "10", Serial2: "99"},
		{Serial1: "x", Serial2: "10"},
	}}
	a1, a2, ok := cs.Atoms(0)
	assert.True(t, ok)
	assert.Equal(t, "N", a1.Atom().Name)
	assert.Equal(t, "O", a2.Atom().Name)

	_, _, ok = cs.Atoms(1)
	assert.False(t, ok)
	_, _, ok = cs.Atoms(2)
	assert.False(t, ok)
}

func TestElementColor(t *testing.T) {
	assert.Equal(t, ElementColor("C"), ElementColor("c"))
	assert.NotEqual(t, ElementColor("C"), ElementColor("O"))
	assert.Equal(t, ElementColor("??"), ElementColor("Xx"))
}
