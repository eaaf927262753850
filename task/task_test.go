// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := &Counter{}
	assert.Equal(t, 0, c.Count())
	c.Increment()
	c.Increment()
	assert.Equal(t, 2, c.Count())
	c.Change(-1)
	assert.Equal(t, 1, c.Count())
	c.Decrement()
	c.Decrement() // clamps, does not go negative
	assert.Equal(t, 0, c.Count())
}

func TestCounterDispose(t *testing.T) {
	c := &Counter{}
	c.Increment()
	c.Dispose()
	c.Increment()
	assert.Equal(t, 1, c.Count())
	c.Dispose() // idempotent
}

func TestSlotCoalesce(t *testing.T) {
	s := &Slot{}
	ran := 0
	for i := 0; i < 5; i++ {
		s.Submit(func() { ran++ })
	}
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.RunPending())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.RunPending())
}

func TestSlotKill(t *testing.T) {
	s := &Slot{}
	ran := false
	s.Submit(func() { ran = true })
	s.Kill()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.RunPending())
	assert.False(t, ran)
}

func TestSlotKillDuringRun(t *testing.T) {
	s := &Slot{}
	order := []string{}
	s.Submit(func() {
		order = append(order, "first")
		s.Kill() // no pending job; the running job is unaffected
		order = append(order, "second")
	})
	assert.True(t, s.RunPending())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSlotResubmitDuringRun(t *testing.T) {
	s := &Slot{}
	n := 0
	s.Submit(func() {
		n++
		if n < 3 {
			s.Submit(func() { n++ })
		}
	})
	assert.True(t, s.RunPending())
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.RunPending())
	assert.Equal(t, 2, n)
}
