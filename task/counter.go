// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package task provides the cooperative scheduling primitives used by
// representations: an outstanding-work counter and a single-slot
// coalescing job queue. Everything here runs on one logical thread;
// there is no locking.
package task

import "log/slog"

// Counter tracks outstanding asynchronous work. The count never goes
// below zero: a decrement past zero is clamped and logged, as it
// indicates a bookkeeping error in the caller.
type Counter struct {
	count    int
	disposed bool
}

// Count returns the current number of outstanding tasks.
func (c *Counter) Count() int {
	return c.count
}

// Increment adds one outstanding task.
func (c *Counter) Increment() {
	c.Change(1)
}

// Decrement removes one outstanding task.
func (c *Counter) Decrement() {
	c.Change(-1)
}

// Change adjusts the count by the given delta, clamping at zero.
// It is a no-op after [Counter.Dispose].
func (c *Counter) Change(delta int) {
	if c.disposed {
		return
	}
	c.count += delta
	if c.count < 0 {
		slog.Error("task.Counter: count below zero", "count", c.count)
		c.count = 0
	}
}

// Dispose freezes the counter; all subsequent changes are ignored.
// Safe to call more than once.
func (c *Counter) Dispose() {
	c.disposed = true
}
