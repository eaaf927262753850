// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry provides an ordered, name-keyed registry with
// deterministic errors on missing keys. Registries are explicit values
// owned by the composition root and passed to whatever needs lookup;
// there are no package-level globals.
package registry

import (
	"fmt"

	"cogentcore.org/core/base/keylist"
)

// Registry is an ordered mapping from names to values of type V.
// The zero value is not usable; see [New].
type Registry[V any] struct {
	// Kind is a short noun for the registered values ("picker", "buffer",
	// "color scheme"), used in error messages.
	Kind string

	list *keylist.List[string, V]
}

// New returns a new [Registry] for values described by the given kind noun.
func New[V any](kind string) *Registry[V] {
	return &Registry[V]{Kind: kind, list: keylist.New[string, V]()}
}

// Add registers the value under the given name, replacing any existing
// entry of the same name.
func (r *Registry[V]) Add(name string, v V) {
	r.list.Set(name, v)
}

// Get returns the value registered under the given name, or an error
// naming the missing key.
func (r *Registry[V]) Get(name string) (V, error) {
	v, ok := r.list.AtTry(name)
	if !ok {
		return v, fmt.Errorf("registry: no %s named %q", r.Kind, name)
	}
	return v, nil
}

// Lookup returns the value registered under the given name, and whether
// it was present.
func (r *Registry[V]) Lookup(name string) (V, bool) {
	return r.list.AtTry(name)
}

// Has reports whether a value is registered under the given name.
func (r *Registry[V]) Has(name string) bool {
	_, ok := r.list.AtTry(name)
	return ok
}

// Names returns the registered names, in registration order.
func (r *Registry[V]) Names() []string {
	return r.list.Keys
}

// Len returns the number of registered values.
func (r *Registry[V]) Len() int {
	return r.list.Len()
}
