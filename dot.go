// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

import (
	"image/color"

	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/picker"
	"cogentcore.org/molscene/primitive"
	"cogentcore.org/molscene/registry"
	"cogentcore.org/molscene/volume"
)

// DotRepresentation draws the voxels of a volume above a threshold as
// points. Selecting the voxel subset happens in Prepare, so builds go
// through the coalescing queue.
type DotRepresentation struct {
	RepresentationBase

	// Volume is the rendered volume.
	Volume *volume.Volume

	// BufferCtors is the buffer constructor registry of the rendering
	// backend.
	BufferCtors *registry.Registry[BufferConstructor]

	// dots are the volume indexes above thresholdMin, set by Prepare.
	dots []int
}

// NewDotRepresentation returns a dot representation of the given volume.
func NewDotRepresentation(vw Viewer, vol *volume.Volume, ctors *registry.Registry[BufferConstructor], params map[string]any) *DotRepresentation {
	dr := &DotRepresentation{Volume: vol, BufferCtors: ctors}
	dr.InitBase(dr, vw, vol.Name, map[string]*ParamSpec{
		"thresholdMin": {Kind: ParamFloat, Min: -1000, Max: 1000, Default: float32(0), Rebuild: RebuildAlways},
		"dotSize":      {Kind: ParamFloat, Min: 0.1, Max: 100, Default: float32(1), Buffer: "pointSize"},
	}, params)
	return dr
}

// Prepare selects the voxels above thresholdMin and then reports
// completion.
func (dr *DotRepresentation) Prepare(done func()) {
	thr := dr.FloatParam("thresholdMin")
	dr.dots = dr.dots[:0]
	for i := 0; i < dr.Volume.Count(); i++ {
		if dr.Volume.Value(i) > thr {
			dr.dots = append(dr.dots, i)
		}
	}
	done()
}

func (dr *DotRepresentation) pointData() *primitive.BufferData {
	pos := make(math32.ArrayF32, 0, len(dr.dots)*3)
	cols := make(math32.ArrayF32, 0, len(dr.dots)*3)
	c, _ := dr.values["colorValue"].(color.RGBA)
	for _, i := range dr.dots {
		p := dr.Volume.Position(i)
		pos = append(pos, p.X, p.Y, p.Z)
		cols = append(cols, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	}
	return &primitive.BufferData{
		Type:  "point",
		Count: len(dr.dots),
		Arrays: map[string]math32.ArrayF32{
			"position": pos,
			"color":    cols,
		},
		Picker: &picker.Volume{Volume: dr.Volume, Base: picker.Base{IndexMap: dr.dots}},
	}
}

func (dr *DotRepresentation) bufferParams() map[string]any {
	out := map[string]any{}
	for nm, spec := range dr.specs {
		if spec.Buffer != "" {
			out[spec.Buffer] = dr.values[nm]
		}
	}
	return out
}

func (dr *DotRepresentation) CreateBuffers() ([]Buffer, error) {
	ctor, err := dr.BufferCtors.Get("point")
	if err != nil {
		return nil, err
	}
	buf, err := ctor(dr.pointData(), dr.bufferParams())
	if err != nil {
		return nil, err
	}
	return []Buffer{buf}, nil
}

func (dr *DotRepresentation) UpdateAttributes(what map[string]bool) {
	if !what["color"] || len(dr.Buffers) == 0 {
		return
	}
	au, ok := dr.Buffers[0].(AttributeUpdater)
	if !ok {
		return
	}
	cols := make(math32.ArrayF32, 0, len(dr.dots)*3)
	c, _ := dr.values["colorValue"].(color.RGBA)
	for range dr.dots {
		cols = append(cols, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	}
	au.SetAttributes(map[string]math32.ArrayF32{"color": cols})
}
