// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

import (
	"image/color"

	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
)

// SetColor normalizes a color-like value into colorScheme and
// colorValue parameter changes and applies them. See [RepresentationBase.NormalizeColor].
func (rb *RepresentationBase) SetColor(value any) {
	rb.SetParameters(rb.NormalizeColor(value))
}

// NormalizeColor resolves a color-like value into parameter changes:
// the name of a registered color scheme selects that scheme; any other
// string, [color.Color], or 0xRRGGBB numeric value is treated as a
// literal color, forcing the uniform scheme with the resolved value.
// The input is not modified; a nil or unusable value yields no changes.
func (rb *RepresentationBase) NormalizeColor(value any) map[string]any {
	out := map[string]any{}
	switch v := value.(type) {
	case nil:
	case string:
		if rb.Schemes.Has(v) {
			out["colorScheme"] = v
			break
		}
		if c, err := colors.FromString(v); err == nil {
			out["colorScheme"] = "uniform"
			out["colorValue"] = c
		}
	case color.Color:
		out["colorScheme"] = "uniform"
		out["colorValue"] = colors.AsRGBA(v)
	default:
		if i, err := reflectx.ToInt(value); err == nil {
			out["colorScheme"] = "uniform"
			out["colorValue"] = hexColor(uint32(i))
		}
	}
	return out
}
