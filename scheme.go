// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

import "cogentcore.org/molscene/registry"

// Scheme describes one registered color scheme, used to validate and
// normalize color parameter input. How a scheme maps data to colors is
// up to the representation interpreting it.
type Scheme struct {

	// Name is the scheme key ("uniform", "element", ...).
	Name string

	// Label is the human-readable scheme name for choosers.
	Label string
}

// NewColorSchemes returns a registry holding the standard color
// schemes. Applications may register additional schemes on it.
func NewColorSchemes() *registry.Registry[Scheme] {
	r := registry.New[Scheme]("color scheme")
	r.Add("uniform", Scheme{Name: "uniform", Label: "Uniform"})
	r.Add("element", Scheme{Name: "element", Label: "By Element"})
	r.Add("random", Scheme{Name: "random", Label: "Random"})
	return r
}
