// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/molscene/grid"
	"cogentcore.org/molscene/mol"
	"cogentcore.org/molscene/volume"
)

func testStructure() *mol.Structure {
	return &mol.Structure{
		Name: "test",
		Atoms: []mol.Atom{
			{Serial: 1, Name: "N", Element: "N", Pos: math32.Vec3(0, 0, 0)},
			{Serial: 2, Name: "CA", Element: "C", Pos: math32.Vec3(2, 0, 0)},
			{Serial: 3, Name: "O", Element: "O", Pos: math32.Vec3(2, 2, 2)},
		},
		Bonds: []mol.Bond{{Atom1: 0, Atom2: 1}, {Atom1: 1, Atom2: 2}},
	}
}

func TestIndexRemap(t *testing.T) {
	b := &Base{}
	assert.Equal(t, 7, b.GetIndex(7))

	b.IndexMap = []int{4, 9}
	assert.Equal(t, 4, b.GetIndex(0))
	assert.Equal(t, 9, b.GetIndex(1))
	// out-of-range pids clamp rather than panic
	assert.Equal(t, 9, b.GetIndex(5))
	assert.Equal(t, 4, b.GetIndex(-1))
}

func TestAtomPicker(t *testing.T) {
	p := &Atom{Structure: testStructure()}
	obj := p.Object(1)
	ap, ok := obj.(mol.AtomProxy)
	require.True(t, ok)
	assert.Equal(t, "CA", ap.Atom().Name)
	assert.Equal(t, math32.Vec3(2, 0, 0), p.Position(1))
	assert.Equal(t, "atom", p.Type())
}

func TestBondPickerMidpoint(t *testing.T) {
	p := &Bond{Structure: testStructure()}
	assert.Equal(t, math32.Vec3(1, 0, 0), p.Position(0))
	bp := p.Object(0).(mol.BondProxy)
	assert.Equal(t, "N", bp.Atom1().Atom().Name)
}

func TestContactPicker(t *testing.T) {
	st := testStructure()
	p := &Contact{Contacts: &mol.ContactSet{
		Structure: st,
		Contacts:  []mol.Contact{{Atom1: 0, Atom2: 1, Type: mol.ContactHydrogenBond}},
	}}
	obj := p.Object(0).(ContactObject)
	assert.Equal(t, "hydrogen bond", obj.Type)
	assert.Equal(t, math32.Vec3(1, 0, 0), p.Position(0))
}

func TestClashPicker(t *testing.T) {
	st := testStructure()
	p := &Clash{Clashes: &mol.ClashSet{
		Structure: st,
		Clashes:   []mol.Clash{{Serial1: "1", Serial2: "2", Magnitude: 0.4}},
	}}
	obj := p.Object(0).(ClashObject)
	assert.True(t, obj.Resolved)
	assert.Equal(t, "N", obj.Atom1.Atom().Name)
	assert.Equal(t, math32.Vec3(1, 0, 0), p.Position(0))
}

func TestVolumePicker(t *testing.T) {
	g := grid.New(2, 2, 2, 1)
	g.Set(1, 1, 1, 3.5)
	v := volume.New("density", g)
	p := &Volume{Volume: v}
	p.IndexMap = []int{g.Index(1, 1, 1)}

	obj := p.Object(0).(VolumeObject)
	assert.Equal(t, float32(3.5), obj.Value)
	assert.Equal(t, math32.Vec3(1, 1, 1), p.Position(0))
}

func TestMeshPickerCentroid(t *testing.T) {
	p := NewMesh("surface", 1, []float32{0, 0, 0, 2, 0, 0, 1, 3, 0})
	assert.Equal(t, math32.Vec3(1, 1, 0), p.Position(99))
	assert.Equal(t, MeshObject{Name: "surface", Serial: 1}, p.Object(0))
}

func TestUnitcellPicker(t *testing.T) {
	st := testStructure()
	p := &Unitcell{Structure: st}
	// no cell: falls back to structure center
	assert.Equal(t, st.Center(), p.Position(0))

	st.Cell = &mol.UnitCell{A: 2, B: 4, C: 6}
	assert.Equal(t, math32.Vec3(1, 2, 3), p.Position(0))
}

func TestSentinels(t *testing.T) {
	for _, p := range []Picker{&Ignore{}, &Unknown{}} {
		assert.Nil(t, p.Object(12))
		assert.Equal(t, math32.Vector3{}, p.Position(12))
	}
	assert.Equal(t, "ignore", (&Ignore{}).Type())
	assert.Equal(t, "unknown", (&Unknown{}).Type())
}

func TestGetPositionTransforms(t *testing.T) {
	p := &Atom{Structure: testStructure()}

	assert.Equal(t, math32.Vec3(2, 0, 0), GetPosition(p, 1, nil, nil))

	var q math32.Quat
	q.SetIdentity()
	one := math32.Vec3(1, 1, 1)
	var instance, component math32.Matrix4
	instance.SetTransform(math32.Vec3(0, 1, 0), q, one)
	component.SetTransform(math32.Vec3(0, 0, 5), q, one)
	got := GetPosition(p, 1, &instance, &component)
	assert.Equal(t, math32.Vec3(2, 1, 5), got)
}
