// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picker

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/molscene/mol"
)

// Atom resolves pick ids to atoms of a structure.
type Atom struct {
	Base
	Structure *mol.Structure
}

func (p *Atom) Type() string { return "atom" }

func (p *Atom) atom(pid int) mol.AtomProxy {
	idx := clamp(p.GetIndex(pid), len(p.Structure.Atoms))
	return mol.AtomProxy{Structure: p.Structure, Index: idx}
}

func (p *Atom) Object(pid int) any { return p.atom(pid) }

func (p *Atom) Position(pid int) math32.Vector3 {
	return p.atom(pid).Position()
}

// Bond resolves pick ids to bonds of a structure; the anchor position
// is the midpoint of the two bonded atoms.
type Bond struct {
	Base
	Structure *mol.Structure
}

func (p *Bond) Type() string { return "bond" }

func (p *Bond) bond(pid int) mol.BondProxy {
	idx := clamp(p.GetIndex(pid), len(p.Structure.Bonds))
	return mol.BondProxy{Structure: p.Structure, Index: idx}
}

func (p *Bond) Object(pid int) any { return p.bond(pid) }

func (p *Bond) Position(pid int) math32.Vector3 {
	return p.bond(pid).Center()
}

// ContactObject is the descriptor returned when a contact is picked.
type ContactObject struct {
	Atom1, Atom2 mol.AtomProxy

	// Type is the human-readable interaction name translated from the
	// contact's numeric type code.
	Type string
}

// Contact resolves pick ids to noncovalent contacts.
type Contact struct {
	Base
	Contacts *mol.ContactSet
}

func (p *Contact) Type() string { return "contact" }

func (p *Contact) contact(pid int) (mol.AtomProxy, mol.AtomProxy, mol.ContactType) {
	idx := clamp(p.GetIndex(pid), len(p.Contacts.Contacts))
	ct := p.Contacts.Contacts[idx]
	st := p.Contacts.Structure
	return mol.AtomProxy{Structure: st, Index: ct.Atom1},
		mol.AtomProxy{Structure: st, Index: ct.Atom2}, ct.Type
}

func (p *Contact) Object(pid int) any {
	a1, a2, typ := p.contact(pid)
	return ContactObject{Atom1: a1, Atom2: a2, Type: typ.String()}
}

func (p *Contact) Position(pid int) math32.Vector3 {
	a1, a2, _ := p.contact(pid)
	return a1.Position().Add(a2.Position()).MulScalar(0.5)
}

// ClashObject is the descriptor returned when a validation clash is
// picked. Atom proxies are only valid when Resolved is true.
type ClashObject struct {
	Clash        mol.Clash
	Atom1, Atom2 mol.AtomProxy
	Resolved     bool
}

// Clash resolves pick ids to steric clashes from a validation report.
// Clash atoms are referenced by serial selection strings and resolved
// against the structure on each lookup.
type Clash struct {
	Base
	Clashes *mol.ClashSet
}

func (p *Clash) Type() string { return "clash" }

func (p *Clash) Object(pid int) any {
	idx := clamp(p.GetIndex(pid), len(p.Clashes.Clashes))
	a1, a2, ok := p.Clashes.Atoms(idx)
	return ClashObject{Clash: p.Clashes.Clashes[idx], Atom1: a1, Atom2: a2, Resolved: ok}
}

func (p *Clash) Position(pid int) math32.Vector3 {
	idx := clamp(p.GetIndex(pid), len(p.Clashes.Clashes))
	a1, a2, ok := p.Clashes.Atoms(idx)
	if !ok {
		return math32.Vector3{}
	}
	return a1.Position().Add(a2.Position()).MulScalar(0.5)
}

// UnitcellObject is the descriptor returned when a unit cell is picked.
type UnitcellObject struct {
	Structure *mol.Structure
	Cell      *mol.UnitCell
}

// Unitcell is the singleton picker for a structure's unit cell
// rendering; every pid resolves to the same cell.
type Unitcell struct {
	Base
	Structure *mol.Structure
}

func (p *Unitcell) Type() string { return "unitcell" }

func (p *Unitcell) Object(pid int) any {
	return UnitcellObject{Structure: p.Structure, Cell: p.Structure.Cell}
}

func (p *Unitcell) Position(pid int) math32.Vector3 {
	if p.Structure.Cell != nil {
		return p.Structure.Cell.Center()
	}
	return p.Structure.Center()
}
