// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"image/color"

	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/shape"
)

// Convenience adders for populating shapes with the common kinds.
// Each returns the new instance's pick id within its kind.

// AddSphere adds a sphere primitive to the shape.
func AddSphere(sh *shape.Shape, pos math32.Vector3, clr color.Color, radius float32) int {
	return Sphere.ObjectToShape(sh, Values{"position": pos, "color": clr, "radius": radius})
}

// AddBox adds an axis-aligned box primitive to the shape.
func AddBox(sh *shape.Shape, pos math32.Vector3, clr color.Color, size float32, heightAxis, depthAxis math32.Vector3) int {
	return Box.ObjectToShape(sh, Values{
		"position": pos, "color": clr, "size": size,
		"heightAxis": heightAxis, "depthAxis": depthAxis,
	})
}

// AddCylinder adds a cylinder primitive between the two endpoints.
func AddCylinder(sh *shape.Shape, p1, p2 math32.Vector3, clr color.Color, radius float32) int {
	return Cylinder.ObjectToShape(sh, Values{
		"position1": p1, "position2": p2, "color": clr, "radius": radius,
	})
}

// AddArrow adds an arrow primitive from p1 to p2.
func AddArrow(sh *shape.Shape, p1, p2 math32.Vector3, clr color.Color, radius float32) int {
	return Arrow.ObjectToShape(sh, Values{
		"position1": p1, "position2": p2, "color": clr, "radius": radius,
	})
}

// AddEllipsoid adds an ellipsoid primitive with the given semi-axes.
func AddEllipsoid(sh *shape.Shape, pos math32.Vector3, clr color.Color, radius float32, majorAxis, minorAxis math32.Vector3) int {
	return Ellipsoid.ObjectToShape(sh, Values{
		"position": pos, "color": clr, "radius": radius,
		"majorAxis": majorAxis, "minorAxis": minorAxis,
	})
}

// AddPoint adds a point primitive to the shape.
func AddPoint(sh *shape.Shape, pos math32.Vector3, clr color.Color) int {
	return Point.ObjectToShape(sh, Values{"position": pos, "color": clr})
}

// AddText adds a text label primitive to the shape.
func AddText(sh *shape.Shape, pos math32.Vector3, clr color.Color, size float32, text string) int {
	return Text.ObjectToShape(sh, Values{
		"position": pos, "color": clr, "size": size, "text": text,
	})
}
