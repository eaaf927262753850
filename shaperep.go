// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/primitive"
	"cogentcore.org/molscene/registry"
	"cogentcore.org/molscene/shape"
)

// ShapeRepresentation renders every primitive kind recorded on a
// [shape.Shape], one buffer per kind present, with shape pickers
// attached so rendered primitives resolve back to their structured
// objects.
type ShapeRepresentation struct {
	RepresentationBase

	// Shape is the rendered shape.
	Shape *shape.Shape

	// BufferCtors is the buffer constructor registry of the rendering
	// backend.
	BufferCtors *registry.Registry[BufferConstructor]
}

// NewShapeRepresentation returns a shape representation bound to the
// given viewer, rendering via the given buffer constructors.
func NewShapeRepresentation(vw Viewer, sh *shape.Shape, ctors *registry.Registry[BufferConstructor], params map[string]any) *ShapeRepresentation {
	sr := &ShapeRepresentation{Shape: sh, BufferCtors: ctors}
	sr.InitBase(sr, vw, sh.Name, map[string]*ParamSpec{
		"sphereDetail":   {Kind: ParamInt, Min: 0, Max: 3, Default: 1, Rebuild: RebuildAlways},
		"radialSegments": {Kind: ParamInt, Min: 1, Max: 60, Default: 10, Rebuild: RebuildAlways},
		"useImpostor":    {Kind: ParamBool, Default: false, Rebuild: RebuildImpostor},
	}, params)
	return sr
}

// bufferParams collects the current values of every buffer-routed
// parameter plus the detail values buffer constructors need.
func (sr *ShapeRepresentation) bufferParams() map[string]any {
	out := map[string]any{
		"sphereDetail":   sr.IntParam("sphereDetail"),
		"radialSegments": sr.IntParam("radialSegments"),
		"useImpostor":    sr.BoolParam("useImpostor"),
	}
	for nm, spec := range sr.specs {
		if spec.Buffer != "" {
			out[spec.Buffer] = sr.values[nm]
		}
	}
	return out
}

// presentKinds returns the primitive kinds recorded on the shape, in
// extraction order. Buffer list order follows this.
func (sr *ShapeRepresentation) presentKinds() []*primitive.Kind {
	var ks []*primitive.Kind
	for _, k := range primitive.Kinds {
		if sr.Shape.Count(k.Type) > 0 {
			ks = append(ks, k)
		}
	}
	return ks
}

func (sr *ShapeRepresentation) CreateBuffers() ([]Buffer, error) {
	params := sr.bufferParams()
	var bufs []Buffer
	for _, k := range sr.presentKinds() {
		ctor, err := sr.BufferCtors.Get(k.Buffer)
		if err != nil {
			return nil, err
		}
		b, err := ctor(k.DataFromShape(sr.Shape), params)
		if err != nil {
			return nil, err
		}
		bufs = append(bufs, b)
	}
	return bufs, nil
}

func (sr *ShapeRepresentation) UpdateAttributes(what map[string]bool) {
	if !what["color"] {
		return
	}
	kinds := sr.presentKinds()
	for i, k := range kinds {
		if i >= len(sr.Buffers) {
			break
		}
		au, ok := sr.Buffers[i].(AttributeUpdater)
		if !ok {
			continue
		}
		d := sr.Shape.DataIfPresent(k.Type)
		col := d.Floats["color"]
		au.SetAttributes(map[string]math32.ArrayF32{
			"color": append(math32.ArrayF32{}, col...),
		})
	}
}
