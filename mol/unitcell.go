// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

import "cogentcore.org/core/math32"

// UnitCell is a crystallographic unit cell. Only the orthogonal extents
// and origin are needed by this layer; angles are carried through for
// display labels.
type UnitCell struct {

	// A, B, C are the cell edge lengths in Angstroms.
	A, B, C float32

	// Alpha, Beta, Gamma are the cell angles in degrees.
	Alpha, Beta, Gamma float32

	// Origin is the cell origin in world coordinates.
	Origin math32.Vector3
}

// Center returns the center of the cell, treating the edges as
// orthogonal. This is the anchor position used when the cell is picked.
func (uc *UnitCell) Center() math32.Vector3 {
	return uc.Origin.Add(math32.Vec3(uc.A, uc.B, uc.C).MulScalar(0.5))
}
