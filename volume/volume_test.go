// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package volume

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"

	"cogentcore.org/molscene/grid"
)

func TestVolume(t *testing.T) {
	g := grid.New(2, 3, 4, 1)
	g.Set(1, 2, 3, 42)
	v := New("density", g)
	assert.Equal(t, 24, v.Count())

	i := g.Index(1, 2, 3)
	assert.Equal(t, float32(42), v.Value(i))

	x, y, z := v.Coord(i)
	assert.Equal(t, [3]int{1, 2, 3}, [3]int{x, y, z})

	assert.Equal(t, math32.Vec3(1, 2, 3), v.Position(i))

	v.Origin = math32.Vec3(10, 0, 0)
	v.VoxelSize = math32.Vec3(2, 2, 2)
	assert.Equal(t, math32.Vec3(12, 4, 6), v.Position(i))
}
