// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/molscene/picker"
	"cogentcore.org/molscene/shape"
)

func TestSphereRoundTrip(t *testing.T) {
	sh := shape.New("demo")
	pid := Sphere.ObjectToShape(sh, Values{
		"position": math32.Vec3(1, 2, 3),
		"color":    []float32{0, 1, 0},
		"radius":   2,
	})
	assert.Equal(t, 0, pid)

	v := Sphere.ObjectFromShape(sh, pid)
	assert.Equal(t, math32.Vec3(1, 2, 3), v["position"])
	assert.Equal(t, math32.Vec3(0, 1, 0), v["color"])
	assert.Equal(t, float32(2), v["radius"])
	assert.Equal(t, "sphere: 0 (demo)", v["name"])
}

func TestRecordedName(t *testing.T) {
	sh := shape.New("demo")
	pid := Sphere.ObjectToShape(sh, Values{
		"position": math32.Vec3(0, 0, 0),
		"radius":   1,
		"name":     "active site",
	})
	v := Sphere.ObjectFromShape(sh, pid)
	assert.Equal(t, "active site", v["name"])
}

func TestBoundsExpansion(t *testing.T) {
	sh := shape.New("demo")
	Sphere.ObjectToShape(sh, Values{"position": math32.Vec3(5, 0, 0)})
	assert.Equal(t, math32.Vec3(5, 0, 0), sh.BoundingBox.Min)
	assert.Equal(t, math32.Vec3(5, 0, 0), sh.BoundingBox.Max)

	// cylinder expands by both endpoints
	Cylinder.ObjectToShape(sh, Values{
		"position1": math32.Vec3(-1, -2, 0),
		"position2": math32.Vec3(0, 3, 1),
	})
	assert.Equal(t, math32.Vec3(-1, -2, 0), sh.BoundingBox.Min)
	assert.Equal(t, math32.Vec3(5, 3, 1), sh.BoundingBox.Max)
}

func TestColumnWidthInvariant(t *testing.T) {
	sh := shape.New("demo")
	for i := 0; i < 3; i++ {
		Text.ObjectToShape(sh, Values{
			"position": math32.Vec3(float32(i), 0, 0),
			"size":     1.5,
			"text":     "label",
		})
	}
	d := sh.Data("text")
	assert.Equal(t, 3, d.Count)
	for _, f := range Text.Fields {
		if f.Kind == FieldString {
			assert.Len(t, d.Strings[f.Name], d.Count)
			continue
		}
		assert.Len(t, d.Floats[f.Name], d.Count*f.Kind.Width())
	}
}

func TestDataFromShape(t *testing.T) {
	sh := shape.New("demo")
	Sphere.ObjectToShape(sh, Values{"position": math32.Vec3(1, 0, 0), "radius": 1})
	Sphere.ObjectToShape(sh, Values{"position": math32.Vec3(2, 0, 0), "radius": 2})

	bd := Sphere.DataFromShape(sh)
	assert.Equal(t, 2, bd.Count)
	assert.Equal(t, math32.ArrayF32{1, 0, 0, 2, 0, 0}, bd.Arrays["position"])
	assert.Equal(t, math32.ArrayF32{1, 2}, bd.Arrays["radius"])
	require.NotNil(t, bd.Picker)
	assert.Equal(t, "sphere", bd.Picker.Type())
	assert.Equal(t, math32.Vec3(2, 0, 0), bd.Picker.Position(1))
}

func TestCylinderPickerMidpoint(t *testing.T) {
	sh := shape.New("demo")
	Cylinder.ObjectToShape(sh, Values{
		"position1": math32.Vec3(0, 0, 0),
		"position2": math32.Vec3(2, 0, 0),
		"radius":    0.5,
	})
	bd := Cylinder.DataFromShape(sh)
	assert.Equal(t, math32.Vec3(1, 0, 0), bd.Picker.Position(0))
}

func TestDashTransform(t *testing.T) {
	sh := shape.New("demo")
	sh.DashedCylinder = true
	sh.DashLength = 1
	Cylinder.ObjectToShape(sh, Values{
		"position1": math32.Vec3(0, 0, 0),
		"position2": math32.Vec3(4, 0, 0),
		"color":     []float32{1, 0, 0},
		"radius":    0.2,
	})
	bd := Cylinder.DataFromShape(sh)
	// length 4, dash length 1: subsegments [0,1] and [2,3] are drawn
	assert.Equal(t, 2, bd.Count)
	assert.Equal(t, math32.ArrayF32{0, 0, 0, 2, 0, 0}, bd.Arrays["position1"])
	assert.Equal(t, math32.ArrayF32{1, 0, 0, 3, 0, 0}, bd.Arrays["position2"])
	assert.Equal(t, math32.ArrayF32{0.2, 0.2}, bd.Arrays["radius"])
	assert.Equal(t, math32.ArrayF32{1, 0, 0, 1, 0, 0}, bd.Arrays["color"])

	// every dash picks back to the source segment
	sp := bd.Picker.(*picker.Shape)
	assert.Equal(t, []int{0, 0}, sp.IndexMap)
	assert.Equal(t, 0, bd.Picker.GetIndex(1))
	assert.Equal(t, math32.Vec3(2, 0, 0), bd.Picker.Position(1))
}

func TestShortSegmentNotDashed(t *testing.T) {
	sh := shape.New("demo")
	sh.DashedCylinder = true
	sh.DashLength = 10
	Cylinder.ObjectToShape(sh, Values{
		"position1": math32.Vec3(0, 0, 0),
		"position2": math32.Vec3(1, 0, 0),
	})
	bd := Cylinder.DataFromShape(sh)
	assert.Equal(t, 1, bd.Count)
	assert.Equal(t, math32.ArrayF32{1, 0, 0}, bd.Arrays["position2"])
}

func TestKindByType(t *testing.T) {
	assert.Equal(t, Torus, KindByType("torus"))
	assert.Nil(t, KindByType("nonagon"))
	// aliases share schema
	assert.Equal(t, Box.Fields, Octahedron.Fields)
	assert.Equal(t, Cylinder.Fields, Arrow.Fields)
}
