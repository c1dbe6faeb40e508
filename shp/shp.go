// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements cross-section shapes: generic solids, standard AISC
// sections and weld groups
package shp

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gosteel/props"
)

// Section holds the evaluated geometric properties shared by all shapes.
// CxLeft and CyLow carry the sign of their fibre position and are therefore
// negative for shapes extending left of / below the centroid
type Section struct {
	Label   string  // shape label; e.g. "Rectangle", "W" or "line"
	A       float64 // cross-sectional area
	Ix      float64 // second moment of area about x-x
	Iy      float64 // second moment of area about y-y
	J       float64 // torsion constant
	CxLeft  float64 // signed distance from centroid to left extreme fibre
	CxRight float64 // distance from centroid to right extreme fibre
	CyLow   float64 // signed distance from centroid to bottom extreme fibre
	CyHigh  float64 // distance from centroid to top extreme fibre
}

// CxMax returns the largest horizontal fibre distance
func (o *Section) CxMax() float64 {
	return math.Max(math.Abs(o.CxLeft), o.CxRight)
}

// CyMax returns the largest vertical fibre distance
func (o *Section) CyMax() float64 {
	return math.Max(o.CyHigh, math.Abs(o.CyLow))
}

// CrMax returns the radial distance to the extreme corner fibre, used by
// torsional stress calculations
func (o *Section) CrMax() float64 {
	return math.Sqrt(o.CxLeft*o.CxLeft + o.CyHigh*o.CyHigh)
}

// Shaper defines cross-sections that structural objects can be built upon
type Shaper interface {
	Sec() *Section                     // evaluated section properties
	Value(name string) (float64, bool) // named property lookup; tolerant to subscripts
	Record() *props.Record             // ordered property record for reports
}

// allocators maps generic shape kinds to allocation functions
var allocators = make(map[string]func(prms dbf.Params) (Shaper, error))

// IsGenericKind tells whether kind names a generic shape; e.g. "circle",
// "rectangle" or "hollow rectangle"
func IsGenericKind(kind string) bool {
	_, ok := allocators[strings.ToLower(strings.TrimSpace(kind))]
	return ok
}

// GenericKinds returns the names of all generic shape kinds, sorted
func GenericKinds() (kinds []string) {
	for kind := range allocators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return
}

// New allocates a generic shape by kind name given named dimensions; e.g.
//  New("rectangle", dbf.Params{
//      &fun.P{N: "w", V: 4},
//      &fun.P{N: "h", V: 2},
//  })
func New(kind string, prms dbf.Params) (Shaper, error) {
	alloc, ok := allocators[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, chk.Err("name %q is not a valid shape kind", kind)
	}
	return alloc(prms)
}

// Resolve allocates a shape from a free-form name: standard labels are read
// from the AISC tables, generic kind names go to their allocators with prms
// holding the dimensions
func Resolve(name string, prms dbf.Params) (Shaper, error) {
	if IsStandardLabel(ValidateLabel(name)) {
		return NewStandard(name)
	}
	if IsGenericKind(name) {
		return New(name, prms)
	}
	return nil, chk.Err("cannot find source for shape %q", name)
}

// secValue resolves the section and fibre property names shared by all
// shapes. The name must be standardized already
func secValue(sec *Section, name string) (float64, bool) {
	switch name {
	case "A":
		return sec.A, true
	case "Ix":
		return sec.Ix, true
	case "Iy":
		return sec.Iy, true
	case "J":
		return sec.J, true
	case "cxleft":
		return sec.CxLeft, true
	case "cxright":
		return sec.CxRight, true
	case "cylow":
		return sec.CyLow, true
	case "cyhigh":
		return sec.CyHigh, true
	case "cxmax":
		return sec.CxMax(), true
	case "cymax":
		return sec.CyMax(), true
	case "crmax", "cr":
		return sec.CrMax(), true
	}
	return 0, false
}

// CompressionClass returns the AISC B4.1a classification of a plate element
// under uniform compression given its width-to-thickness ratio and the
// slenderness limit λr
func CompressionClass(widthToThickness, lambdaR float64) string {
	if widthToThickness <= lambdaR {
		return "nonslender-element"
	}
	return "slender-element"
}

// FlexureClass returns the AISC B4.1b classification of a plate element in
// flexure given its width-to-thickness ratio and the limits λp and λr
func FlexureClass(widthToThickness, lambdaP, lambdaR float64) string {
	if widthToThickness <= lambdaP {
		return "compact"
	}
	if widthToThickness <= lambdaR {
		return "noncompact"
	}
	return "slender-element"
}
