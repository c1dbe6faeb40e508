// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"regexp"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/props"
)

// labelRE matches standard shape labels such as "W8X31" or "HSS6X6X.375"
var labelRE = regexp.MustCompile(`(HSS|W|L|WT|C|2L|HP|M|MC|MT|S|ST|PIPE)[0-9./xX]+`)

// IsStandardLabel tells whether name has the format of a standard shape
// label. Only the format is checked, not whether the shape exists
func IsStandardLabel(name string) bool {
	return labelRE.MatchString(name)
}

// ValidateLabel converts a user-supplied shape name to table form: trimmed,
// uppercased and with spaces removed
func ValidateLabel(name string) string {
	return strings.Replace(strings.ToUpper(strings.TrimSpace(name)), " ", "", -1)
}

// Standard is a section built from the embedded AISC shape tables
type Standard struct {
	Name   string // full table label; e.g. "W8X31"
	Family string // family key; e.g. "W"
	width  float64
	height float64
	data   *inp.Section
	sec    Section
}

// NewStandard returns a standard section given a full label such as "W8X31",
// "L4X4X1/2" or "HSS6X6X.375"
func NewStandard(label string) (*Standard, error) {
	name := ValidateLabel(label)
	m := labelRE.FindStringSubmatch(name)
	if m == nil {
		return nil, chk.Err("input %q is not a valid shape label", label)
	}
	family := m[1]
	switch family {
	case "W", "L", "HSS":
	default:
		return nil, chk.Err("shapes of family %q cannot be constructed yet", family)
	}
	data, err := inp.FindSection(family, name)
	if err != nil {
		return nil, err
	}
	o := &Standard{Name: name, Family: family, data: data}
	switch family {
	case "W":
		o.fillW()
	case "L":
		o.fillL()
	case "HSS":
		o.fillHSS()
	}
	return o, nil
}

// val returns one table column; columns are guaranteed by the table check
func (o *Standard) val(name string) float64 {
	v, _ := o.data.Value(name)
	return v
}

func (o *Standard) fillW() {
	o.width, o.height = o.val("bf"), o.val("d")
	o.sec = Section{
		Label: "W",
		A:     o.val("A"),
		Ix:    o.val("Ix"),
		Iy:    o.val("Iy"),
		J:     o.val("J"),
		CxLeft: -o.width / 2, CxRight: o.width / 2,
		CyLow: -o.height / 2, CyHigh: o.height / 2,
	}
}

// fillL uses the angle orientation with the long leg vertical on the left;
// x and y are the centroid distances tabulated by AISC
func (o *Standard) fillL() {
	o.width, o.height = o.val("b"), o.val("d")
	x, y := o.val("x"), o.val("y")
	o.sec = Section{
		Label: "L",
		A:     o.val("A"),
		Ix:    o.val("Ix"),
		Iy:    o.val("Iy"),
		J:     o.val("J"),
		CxLeft: -x, CxRight: o.val("d") - x,
		CyLow: -y, CyHigh: o.val("b") - y,
	}
}

func (o *Standard) fillHSS() {
	o.width, o.height = o.val("B"), o.val("Ht")
	o.sec = Section{
		Label: "HSS",
		A:     o.val("A"),
		Ix:    o.val("Ix"),
		Iy:    o.val("Iy"),
		J:     o.val("J"),
		CxLeft: -o.width / 2, CxRight: o.width / 2,
		CyLow: -o.height / 2, CyHigh: o.height / 2,
	}
}

// Sec returns the evaluated section properties
func (o *Standard) Sec() *Section { return &o.sec }

// Width returns the overall width of this section
func (o *Standard) Width() float64 { return o.width }

// Height returns the overall depth of this section
func (o *Standard) Height() float64 { return o.height }

// Value returns a named property, either from the shape table or computed.
// Lookups are tolerant to subscripts so that "t_f" finds the "tf" column
func (o *Standard) Value(name string) (float64, bool) {
	if v, ok := o.data.Value(name); ok {
		return v, true
	}
	name = props.Standardized(name)
	if v, ok := secValue(&o.sec, name); ok {
		return v, true
	}
	switch name {
	case "width":
		return o.width, true
	case "height":
		return o.height, true
	}
	if o.Family == "HSS" {
		switch name {
		case "t":
			return o.val("tdes"), true
		case "hx":
			hx, _ := o.Hx()
			return hx, true
		case "hy":
			hy, _ := o.Hy()
			return hy, true
		}
	}
	return 0, false
}

// Record returns the ordered property record of this section
func (o *Standard) Record() *props.Record {
	rec := baseRecord(&o.sec, o.height, o.width)
	switch o.Family {
	case "W":
		rec.SetNum("tf", o.val("tf"))
		rec.SetNum("tw", o.val("tw"))
	case "L":
		rec.SetNum("t", o.val("t"))
	case "HSS":
		rec.SetNum("tnom", o.val("tnom"))
		rec.SetNum("tdes", o.val("tdes"))
	}
	return rec
}

// WidthToThickness returns the governing plate slenderness ratio of this
// section per AISC Table B4.1
func (o *Standard) WidthToThickness() float64 {
	switch o.Family {
	case "W":
		return (o.val("bf") / 2) / o.val("tf")
	case "L":
		return o.val("b") / o.val("t")
	}
	return math.Max(o.val("b"), o.val("h")) / o.val("tnom")
}

func (o *Standard) lambdaP(e, fy float64) float64 {
	switch o.Family {
	case "W":
		return 0.38 * math.Sqrt(e/fy)
	case "L":
		return 0.54 * math.Sqrt(e/fy)
	}
	return 2.42 * math.Sqrt(e/fy)
}

func (o *Standard) lambdaRComp(e, fy float64) float64 {
	switch o.Family {
	case "W":
		return 0.56 * math.Sqrt(e/fy)
	case "L":
		return 0.45 * math.Sqrt(e/fy)
	}
	return 1.4 * math.Sqrt(e/fy)
}

func (o *Standard) lambdaRFlex(e, fy float64) float64 {
	switch o.Family {
	case "W":
		return math.Sqrt(e / fy)
	case "L":
		return 0.91 * math.Sqrt(e/fy)
	}
	return 5.7 * math.Sqrt(e/fy)
}

// IsCompact tells whether the width-to-thickness ratio of this section does
// not exceed λp for the given Young's modulus and yield strength
func (o *Standard) IsCompact(e, fy float64) bool {
	return o.WidthToThickness() <= o.lambdaP(e, fy)
}

// IsSlender tells whether the width-to-thickness ratio of this section
// exceeds λr. loadType must be "compression" or "flexure"
func (o *Standard) IsSlender(e, fy float64, loadType string) (bool, error) {
	switch loadType {
	case "compression":
		return o.WidthToThickness() > o.lambdaRComp(e, fy), nil
	case "flexure":
		return o.WidthToThickness() > o.lambdaRFlex(e, fy), nil
	}
	return false, chk.Err("load type %q is invalid; must be \"compression\" or \"flexure\"", loadType)
}

// CompressionClass classifies this section under uniform compression
func (o *Standard) CompressionClass(e, fy float64) string {
	return CompressionClass(o.WidthToThickness(), o.lambdaRComp(e, fy))
}

// FlexureClass classifies this section in flexure
func (o *Standard) FlexureClass(e, fy float64) string {
	return FlexureClass(o.WidthToThickness(), o.lambdaP(e, fy), o.lambdaRFlex(e, fy))
}

// Hx returns the flat wall width resisting shear along x per AISC G4.
// Defined for HSS only
func (o *Standard) Hx() (float64, error) {
	if o.Family != "HSS" {
		return 0, chk.Err("h_x is defined for HSS shapes only; shape is %q", o.Name)
	}
	return o.width - 3*o.val("tdes"), nil
}

// Hy returns the flat wall depth resisting shear along y per AISC G4.
// Defined for HSS only
func (o *Standard) Hy() (float64, error) {
	if o.Family != "HSS" {
		return 0, chk.Err("h_y is defined for HSS shapes only; shape is %q", o.Name)
	}
	return o.height - 3*o.val("tdes"), nil
}
