// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/primitive"
	"cogentcore.org/molscene/registry"
)

// Buffer is a renderer-managed GPU geometry object owned by a
// representation. Buffers are constructed by a [BufferConstructor]
// registered for their kind and are disposed by the owning
// representation when it rebuilds or is itself disposed.
type Buffer interface {

	// SetVisibility shows or hides the buffer.
	SetVisibility(vis bool)

	// SetParameters applies a partial set of display parameters.
	SetParameters(params map[string]any)

	// Dispose releases the GPU resources. The buffer must not be used
	// afterward.
	Dispose()
}

// AttributeUpdater is implemented by buffers that support in-place
// attribute updates, avoiding a full rebuild when only attribute data
// (colors, radii, positions) changed.
type AttributeUpdater interface {

	// SetAttributes replaces the named attribute arrays.
	SetAttributes(attrs map[string]math32.ArrayF32)
}

// Viewer is the scene viewer that representations render into.
// It is a shared external resource; the only mutations made on it here
// are adding and removing buffers and requesting renders.
type Viewer interface {

	// RequestRender schedules a render pass.
	RequestRender()

	// Add attaches the given buffers to the scene.
	Add(bufs ...Buffer)

	// Remove detaches the given buffers from the scene. It must
	// tolerate buffers that were already removed.
	Remove(bufs ...Buffer)

	// SupportsImpostors reports whether the rendering backend can draw
	// impostor geometry (shader-based spheres and cylinders).
	SupportsImpostors() bool
}

// BufferConstructor builds one renderer buffer from extracted primitive
// data and display parameters.
type BufferConstructor func(data *primitive.BufferData, params map[string]any) (Buffer, error)

// NewBufferRegistry returns an empty registry associating buffer kind
// names ("sphere", "cylinder", ...) with their constructors. The
// application's composition root populates it with the constructors of
// its rendering backend and passes it to the representations needing it.
func NewBufferRegistry() *registry.Registry[BufferConstructor] {
	return registry.New[BufferConstructor]("buffer")
}
