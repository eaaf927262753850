// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	g := New(2, 3, 4, 1)
	assert.Equal(t, 23, g.Index(1, 2, 3))
	assert.Equal(t, 0, g.Index(0, 0, 0))

	g2 := New(2, 3, 4, 2)
	assert.Equal(t, 46, g2.Index(1, 2, 3))
}

func TestSetToArray(t *testing.T) {
	g := New(2, 3, 4, 1)
	g.Set(1, 2, 3, 42)
	out := make([]float32, 1)
	g.ToArray(1, 2, 3, out, 0)
	assert.Equal(t, []float32{42}, out)
}

func TestFromArray(t *testing.T) {
	g := New(2, 2, 2, 3)
	g.FromArray(1, 1, 1, []float32{0, 7, 8, 9}, 1)
	out := make([]float32, 5)
	g.ToArray(1, 1, 1, out, 2)
	assert.Equal(t, []float32{0, 0, 7, 8, 9}, out)
}

func TestClone(t *testing.T) {
	g := New(2, 2, 2, 1)
	g.Set(0, 1, 0, 3)
	ng := g.Clone()
	assert.Equal(t, g.Data, ng.Data)
	ng.Set(0, 1, 0, 5)
	assert.Equal(t, float32(3), g.Data[g.Index(0, 1, 0)])

	og := New(1, 1, 1, 1)
	og.CopyFrom(g)
	assert.Equal(t, 2, og.Length)
	assert.Equal(t, g.Data, og.Data)
}
