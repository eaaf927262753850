// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/shape"
)

// shared expansion and extraction rules, composed into the kinds below.

func expandByPosition(sh *shape.Shape, v Values) {
	sh.BoundingBox.ExpandByPoint(fieldVec3(v["position"]))
}

func expandByEndpoints(sh *shape.Shape, v Values) {
	sh.BoundingBox.ExpandByPoint(fieldVec3(v["position1"]))
	sh.BoundingBox.ExpandByPoint(fieldVec3(v["position2"]))
}

func positionAt(d *shape.Data, row int) math32.Vector3 {
	return d.Vec3("position", row)
}

func midpoint(d *shape.Data, row int) math32.Vector3 {
	return d.Vec3("position1", row).Add(d.Vec3("position2", row)).MulScalar(0.5)
}

var sphereFields = []Field{
	{"position", FieldVector3},
	{"color", FieldColor},
	{"radius", FieldFloat},
}

var boxFields = []Field{
	{"position", FieldVector3},
	{"color", FieldColor},
	{"size", FieldFloat},
	{"heightAxis", FieldVector3},
	{"depthAxis", FieldVector3},
}

var cylinderFields = []Field{
	{"position1", FieldVector3},
	{"position2", FieldVector3},
	{"color", FieldColor},
	{"radius", FieldFloat},
}

var ellipsoidFields = []Field{
	{"position", FieldVector3},
	{"color", FieldColor},
	{"radius", FieldFloat},
	{"majorAxis", FieldVector3},
	{"minorAxis", FieldVector3},
}

// The closed set of primitive kinds. Aliases (box/octahedron/
// tetrahedron, cylinder/arrow/cone, ellipsoid/torus) differ only in
// type tag and target buffer; schema and behavior are shared.
var (
	Sphere = &Kind{Type: "sphere", Buffer: "sphere", Fields: sphereFields,
		expand: expandByPosition, position: positionAt}

	Box = &Kind{Type: "box", Buffer: "box", Fields: boxFields,
		expand: expandByPosition, position: positionAt}

	Octahedron = &Kind{Type: "octahedron", Buffer: "octahedron", Fields: boxFields,
		expand: expandByPosition, position: positionAt}

	Tetrahedron = &Kind{Type: "tetrahedron", Buffer: "tetrahedron", Fields: boxFields,
		expand: expandByPosition, position: positionAt}

	Cylinder = &Kind{Type: "cylinder", Buffer: "cylinder", Fields: cylinderFields,
		expand: expandByEndpoints, position: midpoint, transform: dashTransform}

	Arrow = &Kind{Type: "arrow", Buffer: "arrow", Fields: cylinderFields,
		expand: expandByEndpoints, position: midpoint, transform: dashTransform}

	Cone = &Kind{Type: "cone", Buffer: "cone", Fields: cylinderFields,
		expand: expandByEndpoints, position: midpoint, transform: dashTransform}

	Ellipsoid = &Kind{Type: "ellipsoid", Buffer: "ellipsoid", Fields: ellipsoidFields,
		expand: expandByPosition, position: positionAt}

	Torus = &Kind{Type: "torus", Buffer: "torus", Fields: ellipsoidFields,
		expand: expandByPosition, position: positionAt}

	Point = &Kind{Type: "point", Buffer: "point",
		Fields: []Field{{"position", FieldVector3}, {"color", FieldColor}},
		expand: expandByPosition, position: positionAt}

	Wideline = &Kind{Type: "wideline", Buffer: "wideline",
		Fields: []Field{{"position1", FieldVector3}, {"position2", FieldVector3}, {"color", FieldColor}},
		expand: expandByEndpoints, position: midpoint}

	Text = &Kind{Type: "text", Buffer: "text",
		Fields: []Field{{"position", FieldVector3}, {"color", FieldColor}, {"size", FieldFloat}, {"text", FieldString}},
		expand: expandByPosition, position: positionAt}
)

// Kinds lists every primitive kind, in buffer extraction order.
var Kinds = []*Kind{
	Sphere, Box, Octahedron, Tetrahedron, Cylinder, Arrow, Cone,
	Ellipsoid, Torus, Point, Wideline, Text,
}

// KindByType returns the primitive kind with the given type tag, or
// nil if there is none.
func KindByType(typ string) *Kind {
	for _, k := range Kinds {
		if k.Type == typ {
			return k
		}
	}
	return nil
}
