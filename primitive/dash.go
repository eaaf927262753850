// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primitive

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/picker"
	"cogentcore.org/molscene/shape"
)

// DefaultDashLength is the dash segment length used when a shape
// requests dashed cylinders without specifying one.
const DefaultDashLength = 0.5

// dashTransform rewrites cylinder-family buffer data so that each
// segment is drawn as a series of fixed-length dashes: alternating
// drawn and skipped subsegments of the shape's dash length. Segments
// shorter than two dash lengths pass through unchanged. The picker's
// index map is set so every dash resolves to its source segment.
func dashTransform(bd *BufferData, sh *shape.Shape) *BufferData {
	dl := sh.DashLength
	if dl <= 0 {
		dl = DefaultDashLength
	}
	out := &BufferData{
		Type:    bd.Type,
		Arrays:  map[string]math32.ArrayF32{},
		Strings: bd.Strings,
		Picker:  bd.Picker,
	}
	p1s := bd.Arrays["position1"]
	p2s := bd.Arrays["position2"]
	var idxMap []int
	for row := 0; row < bd.Count; row++ {
		p1 := math32.Vec3(p1s[row*3], p1s[row*3+1], p1s[row*3+2])
		p2 := math32.Vec3(p2s[row*3], p2s[row*3+1], p2s[row*3+2])
		length := p2.Sub(p1).Length()
		m := int(length / dl)
		if m < 2 {
			appendDash(out, bd, row, p1, p2)
			idxMap = append(idxMap, row)
			continue
		}
		for j := 0; j < m; j += 2 {
			t0 := float32(j) * dl / length
			t1 := min(float32(j+1)*dl/length, 1)
			appendDash(out, bd, row, p1.Lerp(p2, t0), p1.Lerp(p2, t1))
			idxMap = append(idxMap, row)
		}
	}
	out.Count = len(idxMap)
	if sp, ok := out.Picker.(*picker.Shape); ok {
		sp.IndexMap = idxMap
	}
	return out
}

// appendDash emits one output segment from p1 to p2, copying every
// field other than the endpoints from the source row.
func appendDash(out, src *BufferData, row int, p1, p2 math32.Vector3) {
	out.Arrays["position1"] = append(out.Arrays["position1"], p1.X, p1.Y, p1.Z)
	out.Arrays["position2"] = append(out.Arrays["position2"], p2.X, p2.Y, p2.Z)
	for name, col := range src.Arrays {
		if name == "position1" || name == "position2" {
			continue
		}
		w := len(col) / max(src.Count, 1)
		out.Arrays[name] = append(out.Arrays[name], col[row*w:(row+1)*w]...)
	}
}
