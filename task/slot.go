// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package task

// Slot is a single-slot coalescing job queue: at most one job is pending
// at any time. Submitting a new job replaces any not-yet-started pending
// job. Jobs run when the owner's event loop calls [Slot.RunPending];
// killing the pending job has no effect on a job that has already
// started executing.
type Slot struct {
	pending func()
	running bool
}

// Submit queues the given job, replacing any pending job.
// It reports whether a previously pending job was replaced.
func (s *Slot) Submit(job func()) bool {
	replaced := s.pending != nil
	s.pending = job
	return replaced
}

// Len returns the number of pending jobs: 0 or 1.
func (s *Slot) Len() int {
	if s.pending != nil {
		return 1
	}
	return 0
}

// Kill drops the pending job, if any. A job that is currently executing
// is unaffected.
func (s *Slot) Kill() {
	s.pending = nil
}

// RunPending executes the pending job, if any, clearing the slot before
// the job starts so that the job itself may submit a successor.
// It reports whether a job ran.
func (s *Slot) RunPending() bool {
	job := s.pending
	if job == nil {
		return false
	}
	s.pending = nil
	s.running = true
	job()
	s.running = false
	return true
}

// Running reports whether a job is currently executing.
func (s *Slot) Running() bool {
	return s.running
}
