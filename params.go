// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

import (
	"image/color"
	"reflect"

	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// ParamKind is the value kind of one representation parameter.
type ParamKind int32

const (
	ParamBool ParamKind = iota
	ParamInt
	ParamFloat
	ParamString
	ParamColor
	ParamVector3
)

// RebuildPolicy states whether changing a parameter requires discarding
// and recreating the representation's buffers.
type RebuildPolicy int32

const (
	// RebuildNever: the change is applied to existing buffers.
	RebuildNever RebuildPolicy = iota

	// RebuildAlways: the change always triggers a full rebuild.
	RebuildAlways

	// RebuildImpostor: the change triggers a full rebuild only when the
	// viewer reports impostor rendering support; without it the value
	// is recorded but nothing is rendered differently.
	RebuildImpostor
)

// ParamSpec describes one representation parameter. Representations
// resolve their spec table once at construction and iterate it
// generically in SetParameters.
type ParamSpec struct {

	// Kind is the value kind; incoming values are coerced to it.
	Kind ParamKind

	// Min and Max bound numeric parameters, for choosers.
	Min, Max float32

	// Default is the value used when none is supplied at construction.
	Default any

	// Buffer, when non-empty, routes changes of this parameter to
	// every owned buffer as a buffer-level parameter of that name.
	Buffer string

	// Update, when non-empty, marks the named buffer attribute for an
	// in-place update when this parameter changes.
	Update string

	// Rebuild states whether a change requires a full rebuild.
	Rebuild RebuildPolicy
}

// baseParamSpecs returns the parameter table shared by every
// representation; kind-specific tables are merged over it.
func baseParamSpecs() map[string]*ParamSpec {
	return map[string]*ParamSpec{
		"opacity":        {Kind: ParamFloat, Min: 0, Max: 1, Default: float32(1), Buffer: "opacity"},
		"side":           {Kind: ParamString, Default: "double", Buffer: "side"},
		"wireframe":      {Kind: ParamBool, Default: false, Buffer: "wireframe"},
		"depthWrite":     {Kind: ParamBool, Default: true, Buffer: "depthWrite"},
		"colorScheme":    {Kind: ParamString, Default: "uniform", Update: "color"},
		"colorValue":     {Kind: ParamColor, Default: colors.FromRGB(128, 128, 128), Update: "color"},
		"colorReverse":   {Kind: ParamBool, Default: false, Update: "color"},
		"disablePicking": {Kind: ParamBool, Default: false, Rebuild: RebuildAlways},
	}
}

// mergeSpecs returns base with over merged on top.
func mergeSpecs(base, over map[string]*ParamSpec) map[string]*ParamSpec {
	for name, spec := range over {
		base[name] = spec
	}
	return base
}

// coerceParam converts an incoming parameter value to the spec's kind.
// It reports false when the value cannot be converted; such values are
// silently ignored by SetParameters.
func coerceParam(spec *ParamSpec, value any) (any, bool) {
	switch spec.Kind {
	case ParamBool:
		b, err := reflectx.ToBool(value)
		return b, err == nil
	case ParamInt:
		i, err := reflectx.ToInt(value)
		return int(i), err == nil
	case ParamFloat:
		f, err := reflectx.ToFloat(value)
		return float32(f), err == nil
	case ParamString:
		return reflectx.ToString(value), true
	case ParamColor:
		return coerceColor(value)
	case ParamVector3:
		switch v := value.(type) {
		case math32.Vector3:
			return v, true
		case *math32.Vector3:
			return *v, true
		case [3]float32:
			return math32.Vec3(v[0], v[1], v[2]), true
		case []float32:
			if len(v) >= 3 {
				return math32.Vec3(v[0], v[1], v[2]), true
			}
		}
	}
	return nil, false
}

// coerceColor accepts a [color.Color], a color name or hex string, or
// a 0xRRGGBB numeric value.
func coerceColor(value any) (any, bool) {
	switch v := value.(type) {
	case color.Color:
		return colors.AsRGBA(v), true
	case string:
		c, err := colors.FromString(v)
		return c, err == nil
	default:
		i, err := reflectx.ToInt(value)
		if err != nil {
			return nil, false
		}
		return hexColor(uint32(i)), true
	}
}

// hexColor converts a 0xRRGGBB value to an opaque RGBA color.
func hexColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// equalParams reports whether a committed parameter value equals an
// incoming coerced one, so unchanged values are no-ops.
func equalParams(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
