// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestDataOnDemand(t *testing.T) {
	sh := New("test")
	assert.Nil(t, sh.DataIfPresent("sphere"))
	assert.Equal(t, 0, sh.Count("sphere"))
	assert.Empty(t, sh.Kinds())

	d := sh.Data("sphere")
	assert.NotNil(t, d)
	assert.Same(t, d, sh.Data("sphere"))
	assert.Same(t, d, sh.DataIfPresent("sphere"))

	sh.Data("cylinder")
	sh.Data("sphere")
	assert.Equal(t, []string{"sphere", "cylinder"}, sh.Kinds())
}

func TestRows(t *testing.T) {
	sh := New("test")
	d := sh.Data("sphere")
	d.AppendFloats("position", 1, 2, 3)
	d.AppendFloats("radius", 0.5)
	assert.Equal(t, 0, d.AddRow("first"))
	d.AppendFloats("position", 4, 5, 6)
	d.AppendFloats("radius", 1.5)
	assert.Equal(t, 1, d.AddRow(""))

	assert.Equal(t, 2, sh.Count("sphere"))
	assert.Equal(t, math32.Vec3(4, 5, 6), d.Vec3("position", 1))
	assert.Equal(t, float32(0.5), d.Float("radius", 0))
	assert.Equal(t, []string{"first", ""}, d.Names)
}

func TestStringColumns(t *testing.T) {
	sh := New("test")
	d := sh.Data("text")
	d.AppendString("text", "hello")
	d.AddRow("")
	assert.Equal(t, []string{"hello"}, d.Strings["text"])
}

func TestBoundingBoxStartsEmpty(t *testing.T) {
	sh := New("test")
	assert.Equal(t, math32.B3Empty(), sh.BoundingBox)
	sh.BoundingBox.ExpandByPoint(math32.Vec3(1, 2, 3))
	assert.Equal(t, math32.Vec3(1, 2, 3), sh.BoundingBox.Min)
	assert.Equal(t, math32.Vec3(1, 2, 3), sh.BoundingBox.Max)
}
