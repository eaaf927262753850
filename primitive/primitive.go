// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package primitive provides the declarative schema and conversion
// logic for the geometric kinds used to build shape-derived buffers:
// each [Kind] declares a typed field set and converts structured
// objects to and from the flat columnar storage of a [shape.Shape].
package primitive

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/picker"
	"cogentcore.org/molscene/shape"
)

// FieldKind is the value kind of one primitive field.
type FieldKind int32

const (
	// FieldVector3 is a 3D position or axis: 3 floats per row.
	FieldVector3 FieldKind = iota

	// FieldColor is an RGB color: 3 floats per row, each in [0, 1].
	FieldColor

	// FieldFloat is a scalar: 1 float per row.
	FieldFloat

	// FieldString is a string: 1 string per row.
	FieldString
)

// Width returns the number of array elements one row of this field
// kind occupies.
func (fk FieldKind) Width() int {
	if fk == FieldVector3 || fk == FieldColor {
		return 3
	}
	return 1
}

// Field is one named, typed field of a primitive kind's schema.
type Field struct {
	Name string
	Kind FieldKind
}

// Values is a structured primitive instance: field name to value.
// Vector fields accept [math32.Vector3], [3]float32, or []float32;
// color fields additionally accept [color.Color]; scalar fields accept
// any numeric type.
type Values = map[string]any

// Kind is the immutable descriptor of one geometric primitive kind.
// Kinds are a closed set (see [Kinds]); aliases such as box/octahedron
// share schema and behavior through the same function values.
type Kind struct {

	// Type is the primitive kind tag, e.g. "sphere".
	Type string

	// Buffer is the name of the buffer constructor that renders this
	// kind, looked up in the application's buffer registry.
	Buffer string

	// Fields is the declared field schema, in storage order.
	Fields []Field

	// expand grows a shape's bounding box by the anchor point(s) of
	// one instance, per this kind's expansion rule.
	expand func(sh *shape.Shape, v Values)

	// position extracts the anchor position of one stored row.
	position func(d *shape.Data, row int) math32.Vector3

	// transform optionally rewrites extracted buffer data before
	// construction (the cylinder-family dash transform).
	transform func(bd *BufferData, sh *shape.Shape) *BufferData
}

// PrimitiveType returns the kind tag; it implements [picker.ShapeSource].
func (k *Kind) PrimitiveType() string {
	return k.Type
}

// ObjectToShape appends one structured instance onto the shape's
// columnar storage for this kind, expands the shape's bounding box by
// the kind's anchor rule, and returns the new instance's pick id.
// Missing fields are stored as zero values.
func (k *Kind) ObjectToShape(sh *shape.Shape, v Values) int {
	d := sh.Data(k.Type)
	for _, f := range k.Fields {
		if f.Kind == FieldString {
			s := ""
			if fv, ok := v[f.Name]; ok {
				s = reflectx.ToString(fv)
			}
			d.AppendString(f.Name, s)
			continue
		}
		d.AppendFloats(f.Name, fieldFloats(f.Kind, v[f.Name])...)
	}
	k.expand(sh, v)
	name, _ := v["name"].(string)
	return d.AddRow(name)
}

// ObjectFromShape reconstructs the structured instance stored at the
// given pick id, including a "name" value, synthesized as
// "<type>: <pid> (<shape name>)" when none was recorded.
func (k *Kind) ObjectFromShape(sh *shape.Shape, pid int) Values {
	d := sh.Data(k.Type)
	v := Values{}
	for _, f := range k.Fields {
		switch f.Kind {
		case FieldVector3, FieldColor:
			v[f.Name] = d.Vec3(f.Name, pid)
		case FieldFloat:
			v[f.Name] = d.Float(f.Name, pid)
		case FieldString:
			v[f.Name] = d.Strings[f.Name][pid]
		}
	}
	name := d.Names[pid]
	if name == "" {
		name = fmt.Sprintf("%s: %d (%s)", k.Type, pid, sh.Name)
	}
	v["name"] = name
	return v
}

// PositionFromShape returns the anchor position of the instance stored
// at the given pick id; it implements [picker.ShapeSource].
func (k *Kind) PositionFromShape(sh *shape.Shape, pid int) math32.Vector3 {
	return k.position(sh.Data(k.Type), pid)
}

// BufferData is the renderer-ready extraction of all instances of one
// kind on a shape: flat arrays per field plus the picker that resolves
// the rendered instances.
type BufferData struct {

	// Type is the primitive kind tag the data was extracted from.
	Type string

	// Count is the number of instances.
	Count int

	// Arrays holds one flat float array per non-string field.
	Arrays map[string]math32.ArrayF32

	// Strings holds one string column per string field.
	Strings map[string][]string

	// Picker resolves pick ids for the rendered instances.
	Picker picker.Picker
}

// DataFromShape extracts renderer-ready flat arrays for every instance
// of this kind on the shape, attaching a shape picker. The cylinder
// family applies its dash transform when the shape requests it.
func (k *Kind) DataFromShape(sh *shape.Shape) *BufferData {
	d := sh.Data(k.Type)
	bd := &BufferData{
		Type:    k.Type,
		Count:   d.Count,
		Arrays:  map[string]math32.ArrayF32{},
		Strings: map[string][]string{},
		Picker:  picker.NewShape(k, sh),
	}
	for _, f := range k.Fields {
		if f.Kind == FieldString {
			bd.Strings[f.Name] = append([]string{}, d.Strings[f.Name]...)
			continue
		}
		bd.Arrays[f.Name] = append(math32.ArrayF32{}, d.Floats[f.Name]...)
	}
	if k.transform != nil && sh.DashedCylinder {
		bd = k.transform(bd, sh)
	}
	return bd
}

// fieldFloats converts a structured field value to its flat float
// representation, zero-filled when the value is absent or unusable.
func fieldFloats(fk FieldKind, v any) []float32 {
	switch fk {
	case FieldVector3, FieldColor:
		switch tv := v.(type) {
		case math32.Vector3:
			return []float32{tv.X, tv.Y, tv.Z}
		case *math32.Vector3:
			return []float32{tv.X, tv.Y, tv.Z}
		case [3]float32:
			return tv[:]
		case []float32:
			if len(tv) >= 3 {
				return tv[:3]
			}
		case []float64:
			if len(tv) >= 3 {
				return []float32{float32(tv[0]), float32(tv[1]), float32(tv[2])}
			}
		case color.Color:
			if fk == FieldColor {
				c := colors.AsRGBA(tv)
				return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
			}
		}
		return []float32{0, 0, 0}
	default:
		f, err := reflectx.ToFloat(v)
		if err != nil {
			return []float32{0}
		}
		return []float32{float32(f)}
	}
}

// fieldVec3 converts a structured field value to a Vector3, for
// bounding-box expansion rules.
func fieldVec3(v any) math32.Vector3 {
	fs := fieldFloats(FieldVector3, v)
	return math32.Vec3(fs[0], fs[1], fs[2])
}
