// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molscene

// Quality selects the geometric detail level of a representation.
type Quality int32

const (
	// QualityAuto keeps explicitly supplied detail parameters, falling
	// back to medium-level defaults.
	QualityAuto Quality = iota

	QualityLow
	QualityMedium
	QualityHigh
)

var qualityNames = []string{"auto", "low", "medium", "high"}

func (q Quality) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return "auto"
	}
	return qualityNames[q]
}

// QualityFromString returns the quality named by s, defaulting to auto.
func QualityFromString(s string) Quality {
	for i, nm := range qualityNames {
		if nm == s {
			return Quality(i)
		}
	}
	return QualityAuto
}

// qualityDetail is the fixed lookup from quality level to the derived
// (sphereDetail, radialSegments) values.
var qualityDetail = map[Quality][2]int{
	QualityLow:    {0, 5},
	QualityMedium: {1, 10},
	QualityHigh:   {2, 20},
}

// Detail returns the (sphereDetail, radialSegments) pair for this
// quality level and whether the level fixes them; auto reports false,
// leaving explicit values or the (1, 10) defaults in effect.
func (q Quality) Detail() (sphereDetail, radialSegments int, fixed bool) {
	d, ok := qualityDetail[q]
	if !ok {
		return 1, 10, false
	}
	return d[0], d[1], true
}
