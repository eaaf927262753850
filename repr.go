// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package molscene turns molecular data (atoms, bonds, contacts,
// volumes, shapes) into renderable buffers, manages their lifecycle
// under a lazy, visibility-aware scheduling policy, and supports
// mapping rendered pixels back to the originating domain objects.
//
// The rendering engine itself is external: representations consume it
// through the narrow [Viewer] and [Buffer] interfaces. Everything runs
// on one logical thread; "asynchronous" steps are continuation-style
// callbacks driven by the owner's event loop via
// [RepresentationBase.RunPending].
package molscene

import (
	"maps"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"

	"cogentcore.org/molscene/registry"
	"cogentcore.org/molscene/task"
)

// Representation is one visual layer of a rendered domain object,
// owning a set of GPU-facing buffers and the parameters controlling
// their appearance. [RepresentationBase] provides the whole lifecycle
// engine; concrete kinds supply buffer construction and attribute
// extraction.
type Representation interface {

	// AsBase returns the [RepresentationBase] for this representation.
	AsBase() *RepresentationBase

	// CreateBuffers constructs this representation's buffers from its
	// current parameters.
	CreateBuffers() ([]Buffer, error)

	// UpdateAttributes pushes fresh data for the marked attributes
	// ("color", "radius", "position", ...) to the existing buffers.
	UpdateAttributes(what map[string]bool)
}

// Preparer is implemented by representation kinds with an expensive
// preparation step (e.g., surface computation) that must run before
// buffer construction. Builds of such kinds are funneled through a
// single-slot coalescing queue instead of running synchronously.
type Preparer interface {

	// Prepare runs the preparation step and calls done when finished.
	Prepare(done func())
}

// lazyProps records work deferred while a lazy representation is
// invisible or fully transparent.
type lazyProps struct {
	build        bool
	bufferParams map[string]any
	what         map[string]bool
}

// RepresentationBase implements the representation lifecycle engine:
// parameter diffing, rebuild vs. incremental-update arbitration, lazy
// deferral, and task-counted, coalesced asynchronous builds.
type RepresentationBase struct {

	// Name is the display name of this representation.
	Name string

	// Viewer is the scene viewer this representation renders into.
	Viewer Viewer

	// Schemes is the color scheme registry used to normalize color
	// parameter input; [NewColorSchemes] is used when unset.
	Schemes *registry.Registry[Scheme]

	// Visible is whether this representation is displayed.
	Visible bool

	// Lazy defers buffer (re)construction and updates while the
	// representation is invisible or fully transparent.
	Lazy bool

	// Quality is the geometric detail level.
	Quality Quality

	// Buffers is the ordered list of owned renderer buffers. It only
	// ever contains buffers created by the current build cycle and is
	// fully cleared before any rebuild.
	Buffers []Buffer

	this     Representation
	specs    map[string]*ParamSpec
	values   map[string]any
	tasks    task.Counter
	queue    task.Slot
	lazy     lazyProps
	disposed bool
}

// AsBase returns this base; it implements [Representation].
func (rb *RepresentationBase) AsBase() *RepresentationBase {
	return rb
}

// InitBase performs the one-time parameter defaulting pass: it merges
// the kind's parameter specs over the shared base table, derives
// sphereDetail and radialSegments from the quality level where the
// kind declares them, fills in defaults for everything not supplied,
// and normalizes any "color" input. It must be called exactly once,
// before any other method.
func (rb *RepresentationBase) InitBase(this Representation, vw Viewer, name string, specs map[string]*ParamSpec, params map[string]any) {
	rb.this = this
	rb.Viewer = vw
	rb.Name = name
	rb.Visible = true
	rb.specs = mergeSpecs(baseParamSpecs(), specs)
	rb.values = map[string]any{}
	rb.lazy.bufferParams = map[string]any{}
	rb.lazy.what = map[string]bool{}
	if rb.Schemes == nil {
		rb.Schemes = NewColorSchemes()
	}
	if params == nil {
		params = map[string]any{}
	}
	if v, ok := params["visible"]; ok {
		rb.Visible, _ = reflectx.ToBool(v)
	}
	if v, ok := params["lazy"]; ok {
		rb.Lazy, _ = reflectx.ToBool(v)
	}
	if v, ok := params["quality"]; ok {
		rb.Quality = QualityFromString(reflectx.ToString(v))
	}
	rb.applyQuality(params)
	_, _, qualityFixed := rb.Quality.Detail()
	for nm, spec := range rb.specs {
		// a named quality level fixes the derived detail pair; explicit
		// values only apply under auto
		if qualityFixed && (nm == "sphereDetail" || nm == "radialSegments") {
			continue
		}
		if v, ok := params[nm]; ok && v != nil {
			if nv, ok := coerceParam(spec, v); ok {
				rb.values[nm] = nv
				continue
			}
		}
		if rb.values[nm] == nil {
			rb.values[nm] = spec.Default
		}
	}
	if cv, ok := params["color"]; ok {
		maps.Copy(rb.values, rb.NormalizeColor(cv))
	}
}

// applyQuality derives the sphereDetail and radialSegments values from
// the quality lookup table, for kinds declaring those parameters.
// Auto quality keeps explicitly supplied values.
func (rb *RepresentationBase) applyQuality(params map[string]any) {
	sd, rs, fixed := rb.Quality.Detail()
	for name, derived := range map[string]int{"sphereDetail": sd, "radialSegments": rs} {
		if _, declared := rb.specs[name]; !declared {
			continue
		}
		if !fixed {
			if v, ok := params[name]; ok {
				if i, err := reflectx.ToInt(v); err == nil {
					rb.values[name] = int(i)
					continue
				}
			}
		}
		rb.values[name] = derived
	}
}

// Disposed reports whether [RepresentationBase.Dispose] has been called.
func (rb *RepresentationBase) Disposed() bool {
	return rb.disposed
}

// Tasks returns the number of outstanding build tasks.
func (rb *RepresentationBase) Tasks() int {
	return rb.tasks.Count()
}

// QueueLen returns the number of pending coalesced build jobs (0 or 1).
func (rb *RepresentationBase) QueueLen() int {
	return rb.queue.Len()
}

// Param returns the current value of the named parameter, or nil for
// undeclared names.
func (rb *RepresentationBase) Param(name string) any {
	return rb.values[name]
}

// FloatParam returns the named parameter as a float32.
func (rb *RepresentationBase) FloatParam(name string) float32 {
	f, _ := reflectx.ToFloat(rb.values[name])
	return float32(f)
}

// IntParam returns the named parameter as an int.
func (rb *RepresentationBase) IntParam(name string) int {
	i, _ := reflectx.ToInt(rb.values[name])
	return int(i)
}

// BoolParam returns the named parameter as a bool.
func (rb *RepresentationBase) BoolParam(name string) bool {
	b, _ := reflectx.ToBool(rb.values[name])
	return b
}

// StringParam returns the named parameter as a string.
func (rb *RepresentationBase) StringParam(name string) string {
	return reflectx.ToString(rb.values[name])
}

// displayed reports whether the representation is visible with nonzero
// opacity, the gate for lazy deferral.
func (rb *RepresentationBase) displayed() bool {
	return rb.Visible && rb.FloatParam("opacity") > 0
}

// Build triggers buffer (re)construction, or an attribute-only refresh
// when what is non-nil. While lazy and not displayed, the request is
// recorded and deferred until visibility is restored. Kinds without a
// preparation step build synchronously; others are funneled through
// the single-slot coalescing queue. Replacing a queued job transfers
// its task count to the replacement, so the counter reaches zero only
// when no build is in flight.
func (rb *RepresentationBase) Build(what map[string]bool) {
	if rb.disposed {
		return
	}
	if rb.Lazy && !rb.displayed() {
		rb.lazy.build = true
		return
	}
	prep, async := rb.this.(Preparer)
	if !async {
		rb.tasks.Increment()
		rb.make(what, nil)
		return
	}
	if rb.queue.Len() > 0 {
		// the killed queued job's count carries over to its replacement;
		// builds already executing keep theirs
		rb.tasks.Change(1 - rb.queue.Len())
		rb.queue.Kill()
	} else {
		rb.tasks.Increment()
	}
	rb.queue.Submit(func() {
		prep.Prepare(func() {
			rb.make(what, nil)
		})
	})
}

// RunPending executes the queued build job, if any. The owning
// viewer's event loop calls this once per frame; it reports whether a
// job ran.
func (rb *RepresentationBase) RunPending() bool {
	return rb.queue.RunPending()
}

// make performs the actual construction: the incremental update path
// when what is non-nil, otherwise a full clear/create/attach cycle.
// A build resolving after disposal must not attach buffers; the ones
// it constructed are released instead.
func (rb *RepresentationBase) make(what map[string]bool, callback func()) {
	if what != nil {
		if rb.disposed {
			return
		}
		rb.this.UpdateAttributes(what)
		rb.Viewer.RequestRender()
		rb.tasks.Decrement()
		if callback != nil {
			callback()
		}
		return
	}
	if !rb.disposed {
		rb.Clear()
	}
	bufs, err := rb.this.CreateBuffers()
	if err != nil {
		errors.Log(err)
		rb.tasks.Decrement()
		return
	}
	if rb.disposed {
		for _, b := range bufs {
			b.Dispose()
		}
		return
	}
	rb.Buffers = bufs
	rb.attach(func() {
		rb.tasks.Decrement()
		if callback != nil {
			callback()
		}
	})
}

// attach adds the owned buffers to the viewer, propagates current
// visibility, requests a render, and runs the continuation.
func (rb *RepresentationBase) attach(done func()) {
	rb.Viewer.Add(rb.Buffers...)
	for _, b := range rb.Buffers {
		b.SetVisibility(rb.Visible)
	}
	rb.Viewer.RequestRender()
	done()
}

// SetVisibility toggles visibility. On becoming displayed, a deferred
// build is triggered, or deferred buffer-parameter and attribute
// updates are applied. Visibility is propagated to every owned buffer
// and a render is requested unless noRequest is set.
func (rb *RepresentationBase) SetVisibility(vis bool, noRequest bool) {
	rb.Visible = vis
	if vis && rb.FloatParam("opacity") > 0 {
		lp := &rb.lazy
		if lp.build {
			lp.build = false
			rb.Build(nil)
			return
		}
		if len(lp.bufferParams) > 0 || len(lp.what) > 0 {
			bp, w := lp.bufferParams, lp.what
			lp.bufferParams = map[string]any{}
			lp.what = map[string]bool{}
			rb.UpdateParameters(bp, w)
		}
	}
	for _, b := range rb.Buffers {
		b.SetVisibility(vis)
	}
	if !noRequest {
		rb.Viewer.RequestRender()
	}
}

// SetParameters applies a set of parameter changes, classifying each
// recognized change as a buffer-level parameter, an attribute update,
// or a full-rebuild trigger. Unrecognized names and unchanged values
// have no effect. A full rebuild takes precedence over incremental
// updates.
func (rb *RepresentationBase) SetParameters(params map[string]any) {
	rb.setParameters(params, map[string]bool{}, false)
}

func (rb *RepresentationBase) setParameters(params map[string]any, what map[string]bool, rebuild bool) {
	if rb.disposed || params == nil {
		return
	}
	bufferParams := map[string]any{}
	if what == nil {
		what = map[string]bool{}
	}

	// becoming opaque flushes work deferred while fully transparent
	if v, ok := params["opacity"]; ok && rb.FloatParam("opacity") == 0 {
		if f, err := reflectx.ToFloat(v); err == nil && f > 0 {
			lp := &rb.lazy
			if lp.build {
				lp.build = false
				rebuild = true
			} else {
				maps.Copy(bufferParams, lp.bufferParams)
				maps.Copy(what, lp.what)
				lp.bufferParams = map[string]any{}
				lp.what = map[string]bool{}
			}
		}
	}

	if cv, ok := params["color"]; ok {
		params = maps.Clone(params)
		delete(params, "color")
		maps.Copy(params, rb.NormalizeColor(cv))
	}
	if v, ok := params["lazy"]; ok {
		rb.Lazy, _ = reflectx.ToBool(v)
	}
	if v, ok := params["quality"]; ok {
		q := QualityFromString(reflectx.ToString(v))
		if q != rb.Quality {
			rb.Quality = q
			rb.applyQuality(params)
			rebuild = true
		}
	}

	for name, value := range params {
		spec := rb.specs[name]
		if spec == nil || value == nil {
			continue // permissive: unrecognized names are ignored
		}
		nv, ok := coerceParam(spec, value)
		if !ok {
			continue
		}
		if equalParams(rb.values[name], nv) {
			continue
		}
		rb.values[name] = nv
		if spec.Buffer != "" {
			bufferParams[spec.Buffer] = nv
		}
		if spec.Update != "" {
			what[spec.Update] = true
		}
		switch spec.Rebuild {
		case RebuildAlways:
			rebuild = true
		case RebuildImpostor:
			if rb.impostorRebuild() {
				rebuild = true
			}
		}
	}

	if rebuild {
		rb.Build(nil)
		return
	}
	rb.UpdateParameters(bufferParams, what)
}

// impostorRebuild is the policy hook deciding whether a parameter
// tagged [RebuildImpostor] escalates to a full rebuild: only when the
// viewer reports impostor rendering support.
func (rb *RepresentationBase) impostorRebuild() bool {
	return rb.Viewer != nil && rb.Viewer.SupportsImpostors()
}

// UpdateParameters applies buffer-level parameter changes and
// attribute updates to every owned buffer. While lazy and not
// displayed, changes other than opacity itself are deferred by merging
// into the pending lazy state.
func (rb *RepresentationBase) UpdateParameters(bufferParams map[string]any, what map[string]bool) {
	if rb.disposed {
		return
	}
	if rb.Lazy && !rb.displayed() {
		if _, isOpacity := bufferParams["opacity"]; !isOpacity {
			maps.Copy(rb.lazy.bufferParams, bufferParams)
			maps.Copy(rb.lazy.what, what)
			return
		}
	}
	for _, b := range rb.Buffers {
		b.SetParameters(bufferParams)
	}
	if len(what) > 0 {
		rb.this.UpdateAttributes(what)
	}
	rb.Viewer.RequestRender()
}

// Parameters returns a snapshot of lazy, visible, and quality combined
// with the current value of every declared parameter.
func (rb *RepresentationBase) Parameters() map[string]any {
	out := map[string]any{
		"lazy":    rb.Lazy,
		"visible": rb.Visible,
		"quality": rb.Quality.String(),
	}
	maps.Copy(out, rb.values)
	return out
}

// Clear detaches and disposes every owned buffer, empties the owned
// list, and requests a render.
func (rb *RepresentationBase) Clear() {
	for _, b := range rb.Buffers {
		rb.Viewer.Remove(b)
		b.Dispose()
	}
	rb.Buffers = nil
	rb.Viewer.RequestRender()
}

// Dispose terminates the representation: it cancels any queued build,
// freezes the task counter, and releases every owned buffer. Safe to
// call more than once; builds resolving afterward attach nothing.
func (rb *RepresentationBase) Dispose() {
	if rb.disposed {
		return
	}
	rb.disposed = true
	rb.queue.Kill()
	rb.tasks.Dispose()
	rb.Clear()
}
