// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mol

import "strconv"

// ContactType is the numeric code of a noncovalent interaction kind.
type ContactType int32

const (
	ContactUnknown ContactType = iota
	ContactIonic
	ContactCationPi
	ContactPiStacking
	ContactHydrogenBond
	ContactHalogenBond
	ContactHydrophobic
	ContactMetalCoordination
	ContactWeakHydrogenBond
	ContactWaterHydrogenBond
	ContactBackboneHydrogenBond
)

var contactTypeNames = map[ContactType]string{
	ContactUnknown:              "unknown",
	ContactIonic:                "ionic interaction",
	ContactCationPi:             "cation-pi interaction",
	ContactPiStacking:           "pi-pi stacking",
	ContactHydrogenBond:         "hydrogen bond",
	ContactHalogenBond:          "halogen bond",
	ContactHydrophobic:          "hydrophobic contact",
	ContactMetalCoordination:    "metal coordination",
	ContactWeakHydrogenBond:     "weak hydrogen bond",
	ContactWaterHydrogenBond:    "water-mediated hydrogen bond",
	ContactBackboneHydrogenBond: "backbone hydrogen bond",
}

// String returns the human-readable name of the contact type;
// codes outside the known set render as "unknown".
func (ct ContactType) String() string {
	if nm, ok := contactTypeNames[ct]; ok {
		return nm
	}
	return contactTypeNames[ContactUnknown]
}

// Contact is one noncovalent interaction between two atoms of a
// structure, by atom index.
type Contact struct {
	Atom1, Atom2 int
	Type         ContactType
}

// ContactSet is the set of contacts computed for one structure.
type ContactSet struct {
	Structure *Structure
	Contacts  []Contact
}

// Clash is one steric clash reported by a validation run. Atoms are
// referenced by serial selection strings (e.g., "1284"), as reported
// by external validation tooling.
type Clash struct {
	Serial1, Serial2 string

	// Magnitude is the clash overlap distance in Angstroms.
	Magnitude float32
}

// ClashSet is the set of clashes reported for one structure.
type ClashSet struct {
	Structure *Structure
	Clashes   []Clash
}

// Atoms resolves the clash at the given index to a pair of atom proxies
// via serial lookup. The second return value is false if either serial
// string does not parse or does not name an atom of the structure.
func (cs *ClashSet) Atoms(i int) (AtomProxy, AtomProxy, bool) {
	cl := cs.Clashes[i]
	s1, err1 := strconv.Atoi(cl.Serial1)
	s2, err2 := strconv.Atoi(cl.Serial2)
	if err1 != nil || err2 != nil {
		return AtomProxy{}, AtomProxy{}, false
	}
	i1 := cs.Structure.AtomBySerial(s1)
	i2 := cs.Structure.AtomBySerial(s2)
	if i1 < 0 || i2 < 0 {
		return AtomProxy{}, AtomProxy{}, false
	}
	return AtomProxy{cs.Structure, i1}, AtomProxy{cs.Structure, i2}, true
}
