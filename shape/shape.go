// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides a named collection of columnar geometric
// primitive data. Primitive kinds append one row per instance to the
// per-kind columns; a running bounding box covers everything added.
package shape

import "cogentcore.org/core/math32"

// Shape is a named collection of geometric primitives of assorted kinds,
// stored as flat columnar arrays per kind, ready for buffer extraction.
type Shape struct {

	// Name is the display name of the shape; it appears in the labels
	// of picked primitives.
	Name string

	// BoundingBox is expanded as primitives are added, using each
	// kind's own expansion rule.
	BoundingBox math32.Box3

	// DashedCylinder requests the dash transform on cylinder-family
	// primitive data extracted from this shape.
	DashedCylinder bool

	// DashLength is the world-space length of one dash segment when
	// DashedCylinder is set; 0 selects the default.
	DashLength float32

	data  map[string]*Data
	kinds []string
}

// New returns a new empty [Shape] with the given display name.
func New(name string) *Shape {
	return &Shape{
		Name:        name,
		BoundingBox: math32.B3Empty(),
		data:        map[string]*Data{},
	}
}

// SetDashed requests dashed rendering of cylinder-family primitives
// with the given dash length (0 selects the default); it returns the
// shape for chaining.
func (sh *Shape) SetDashed(length float32) *Shape {
	sh.DashedCylinder = true
	sh.DashLength = length
	return sh
}

// Data is the columnar storage for all primitives of one kind on a
// shape: one row per primitive instance. Every float column holds
// Count * field-width values; every string column and Names hold
// Count values.
type Data struct {

	// Floats holds the flat numeric columns, keyed by field name.
	Floats map[string]math32.ArrayF32

	// Strings holds the string columns, keyed by field name.
	Strings map[string][]string

	// Names holds the optional display name per row; "" if unset.
	Names []string

	// Count is the number of rows (primitive instances).
	Count int
}

// Data returns the columnar storage for the given primitive kind,
// creating it on first use.
func (sh *Shape) Data(kind string) *Data {
	d, ok := sh.data[kind]
	if !ok {
		d = &Data{Floats: map[string]math32.ArrayF32{}, Strings: map[string][]string{}}
		sh.data[kind] = d
		sh.kinds = append(sh.kinds, kind)
	}
	return d
}

// DataIfPresent returns the columnar storage for the given primitive
// kind, or nil if nothing of that kind has been added.
func (sh *Shape) DataIfPresent(kind string) *Data {
	return sh.data[kind]
}

// Kinds returns the primitive kinds present on this shape, in
// first-use order.
func (sh *Shape) Kinds() []string {
	return sh.kinds
}

// Count returns the number of primitives of the given kind.
func (sh *Shape) Count(kind string) int {
	if d := sh.data[kind]; d != nil {
		return d.Count
	}
	return 0
}

// AppendFloats appends values onto the named float column.
func (d *Data) AppendFloats(field string, values ...float32) {
	d.Floats[field] = append(d.Floats[field], values...)
}

// AppendString appends a value onto the named string column.
func (d *Data) AppendString(field, value string) {
	d.Strings[field] = append(d.Strings[field], value)
}

// AddRow completes one primitive row with the given optional display
// name, returning the row's index (the pick id within this kind).
func (d *Data) AddRow(name string) int {
	d.Names = append(d.Names, name)
	d.Count++
	return d.Count - 1
}

// Vec3 returns the row'th vector of the named 3-wide float column.
func (d *Data) Vec3(field string, row int) math32.Vector3 {
	col := d.Floats[field]
	i := row * 3
	return math32.Vec3(col[i], col[i+1], col[i+2])
}

// Float returns the row'th value of the named 1-wide float column.
func (d *Data) Float(field string, row int) float32 {
	return d.Floats[field][row]
}
