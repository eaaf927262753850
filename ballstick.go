// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

import (
	"image/color"

	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/mol"
	"cogentcore.org/molscene/picker"
	"cogentcore.org/molscene/primitive"
	"cogentcore.org/molscene/registry"
)

// BallStickRepresentation draws a structure's atoms as spheres and its
// bonds as cylinders, with atom and bond pickers attached.
type BallStickRepresentation struct {
	RepresentationBase

	// Structure is the rendered structure.
	Structure *mol.Structure

	// BufferCtors is the buffer constructor registry of the rendering
	// backend.
	BufferCtors *registry.Registry[BufferConstructor]
}

// NewBallStickRepresentation returns a ball-and-stick representation of
// the given structure.
func NewBallStickRepresentation(vw Viewer, st *mol.Structure, ctors *registry.Registry[BufferConstructor], params map[string]any) *BallStickRepresentation {
	br := &BallStickRepresentation{Structure: st, BufferCtors: ctors}
	br.InitBase(br, vw, st.Name, map[string]*ParamSpec{
		"sphereDetail":   {Kind: ParamInt, Min: 0, Max: 3, Default: 1, Rebuild: RebuildAlways},
		"radialSegments": {Kind: ParamInt, Min: 1, Max: 60, Default: 10, Rebuild: RebuildAlways},
		"useImpostor":    {Kind: ParamBool, Default: false, Rebuild: RebuildImpostor},
		"radius":         {Kind: ParamFloat, Min: 0.01, Max: 10, Default: float32(0.15), Update: "radius"},
		"aspectRatio":    {Kind: ParamFloat, Min: 1, Max: 10, Default: float32(2), Update: "radius"},
	}, params)
	return br
}

// atomColors returns one rgb triple per atom, per the current color
// scheme: uniform uses colorValue, element the per-element table.
func (br *BallStickRepresentation) atomColors() math32.ArrayF32 {
	scheme := br.StringParam("colorScheme")
	out := make(math32.ArrayF32, 0, len(br.Structure.Atoms)*3)
	for i := range br.Structure.Atoms {
		var c color.RGBA
		switch scheme {
		case "element":
			c = mol.ElementColor(br.Structure.Atoms[i].Element)
		default:
			c, _ = br.values["colorValue"].(color.RGBA)
		}
		out = append(out, float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
	}
	return out
}

// bondColors returns one rgb triple per bond, taken from the bond's
// first atom so sticks match their ball at one end.
func (br *BallStickRepresentation) bondColors() math32.ArrayF32 {
	ac := br.atomColors()
	out := make(math32.ArrayF32, 0, len(br.Structure.Bonds)*3)
	for _, b := range br.Structure.Bonds {
		out = append(out, ac[b.Atom1*3], ac[b.Atom1*3+1], ac[b.Atom1*3+2])
	}
	return out
}

// sphereRadii returns one radius per atom: the bond radius scaled by
// the aspect ratio.
func (br *BallStickRepresentation) sphereRadii() math32.ArrayF32 {
	r := br.FloatParam("radius") * br.FloatParam("aspectRatio")
	out := make(math32.ArrayF32, len(br.Structure.Atoms))
	for i := range out {
		out[i] = r
	}
	return out
}

// bondRadii returns one radius per bond.
func (br *BallStickRepresentation) bondRadii() math32.ArrayF32 {
	r := br.FloatParam("radius")
	out := make(math32.ArrayF32, len(br.Structure.Bonds))
	for i := range out {
		out[i] = r
	}
	return out
}

func (br *BallStickRepresentation) sphereData() *primitive.BufferData {
	st := br.Structure
	pos := make(math32.ArrayF32, 0, len(st.Atoms)*3)
	for i := range st.Atoms {
		p := st.Atoms[i].Pos
		pos = append(pos, p.X, p.Y, p.Z)
	}
	return &primitive.BufferData{
		Type:  "sphere",
		Count: len(st.Atoms),
		Arrays: map[string]math32.ArrayF32{
			"position": pos,
			"color":    br.atomColors(),
			"radius":   br.sphereRadii(),
		},
		Picker: &picker.Atom{Structure: st},
	}
}

func (br *BallStickRepresentation) cylinderData() *primitive.BufferData {
	st := br.Structure
	p1 := make(math32.ArrayF32, 0, len(st.Bonds)*3)
	p2 := make(math32.ArrayF32, 0, len(st.Bonds)*3)
	for _, b := range st.Bonds {
		a1 := st.Atoms[b.Atom1].Pos
		a2 := st.Atoms[b.Atom2].Pos
		p1 = append(p1, a1.X, a1.Y, a1.Z)
		p2 = append(p2, a2.X, a2.Y, a2.Z)
	}
	return &primitive.BufferData{
		Type:  "cylinder",
		Count: len(st.Bonds),
		Arrays: map[string]math32.ArrayF32{
			"position1": p1,
			"position2": p2,
			"color":     br.bondColors(),
			"radius":    br.bondRadii(),
		},
		Picker: &picker.Bond{Structure: st},
	}
}

func (br *BallStickRepresentation) bufferParams() map[string]any {
	out := map[string]any{
		"sphereDetail":   br.IntParam("sphereDetail"),
		"radialSegments": br.IntParam("radialSegments"),
		"useImpostor":    br.BoolParam("useImpostor"),
	}
	for nm, spec := range br.specs {
		if spec.Buffer != "" {
			out[spec.Buffer] = br.values[nm]
		}
	}
	return out
}

func (br *BallStickRepresentation) CreateBuffers() ([]Buffer, error) {
	params := br.bufferParams()
	sphereCtor, err := br.BufferCtors.Get("sphere")
	if err != nil {
		return nil, err
	}
	spheres, err := sphereCtor(br.sphereData(), params)
	if err != nil {
		return nil, err
	}
	bufs := []Buffer{spheres}
	if len(br.Structure.Bonds) > 0 {
		cylCtor, err := br.BufferCtors.Get("cylinder")
		if err != nil {
			return nil, err
		}
		cyls, err := cylCtor(br.cylinderData(), params)
		if err != nil {
			return nil, err
		}
		bufs = append(bufs, cyls)
	}
	return bufs, nil
}

func (br *BallStickRepresentation) UpdateAttributes(what map[string]bool) {
	spheres := map[string]math32.ArrayF32{}
	cyls := map[string]math32.ArrayF32{}
	if what["color"] {
		spheres["color"] = br.atomColors()
		cyls["color"] = br.bondColors()
	}
	if what["radius"] {
		spheres["radius"] = br.sphereRadii()
		cyls["radius"] = br.bondRadii()
	}
	if len(spheres) == 0 && len(cyls) == 0 {
		return
	}
	if len(br.Buffers) > 0 {
		if au, ok := br.Buffers[0].(AttributeUpdater); ok {
			au.SetAttributes(spheres)
		}
	}
	if len(br.Buffers) > 1 {
		if au, ok := br.Buffers[1].(AttributeUpdater); ok {
			au.SetAttributes(cyls)
		}
	}
}
