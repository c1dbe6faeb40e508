// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosteel/props"
)

// WeldShaper extends Shaper with the dimensions needed by weld stress checks
type WeldShaper interface {
	Shaper
	Kind() string    // group geometry; "line", "box" or "double line"
	Size() float64   // leg or groove size s
	Throat() float64 // effective throat t
}

// Throat returns the effective weld throat given the weld type, the leg or
// groove size s and, for flare welds, the bend radius and the flare groove
// factor per AISC Table J2.2
func Throat(weldType string, s, radius, factor float64) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(weldType)) {
	case "cjp":
		if s <= 0 {
			return 0, chk.Err("cjp weld needs a positive groove size: s=%g", s)
		}
		return s, nil
	case "pjp":
		if s <= 0.125 {
			return 0, chk.Err("pjp weld needs a groove size greater than 1/8 in: s=%g", s)
		}
		return s - 0.125, nil
	case "fillet":
		if s <= 0 {
			return 0, chk.Err("fillet weld needs a positive leg size: s=%g", s)
		}
		return 0.707 * s, nil
	case "flare bevel", "flare v-groove":
		if radius <= 0 {
			return 0, chk.Err("flare welds need a positive bend radius: radius=%g", radius)
		}
		if factor <= 0 {
			return 0, chk.Err("flare welds need a positive groove factor: factor=%g", factor)
		}
		return factor * radius, nil
	}
	return 0, chk.Err("weld type %q is invalid", weldType)
}

// LineWeld is a single straight weld line of length d
type LineWeld struct {
	D    float64 // weld length
	S    float64 // leg or groove size
	T    float64 // effective throat
	Type string  // weld type; e.g. "fillet"
	sec  Section
}

// NewLineWeld returns a line weld given its length d, size s and weld type.
// radius and factor are used by flare weld types only
func NewLineWeld(d, s float64, weldType string, radius, factor float64) (*LineWeld, error) {
	if d <= 0 {
		return nil, chk.Err("weld length must be positive: d=%g", d)
	}
	t, err := Throat(weldType, s, radius, factor)
	if err != nil {
		return nil, err
	}
	o := &LineWeld{D: d, S: s, T: t, Type: strings.ToLower(strings.TrimSpace(weldType))}
	o.sec = Section{
		Label: "line",
		A:     d * t,
		Ix:    d * d * d * t / 12.0,
		Iy:    d * t * t * t / 12.0,
		J:     d * d * d * t / 12.0,
		CxLeft: -t / 2, CxRight: t / 2,
		CyLow: -d / 2, CyHigh: d / 2,
	}
	return o, nil
}

// Sec returns the evaluated section properties
func (o *LineWeld) Sec() *Section { return &o.sec }

// Kind returns the weld group geometry name
func (o *LineWeld) Kind() string { return "line" }

// Size returns the leg or groove size
func (o *LineWeld) Size() float64 { return o.S }

// Throat returns the effective throat
func (o *LineWeld) Throat() float64 { return o.T }

// Value returns a named property of this weld group
func (o *LineWeld) Value(name string) (float64, bool) {
	name = props.Standardized(name)
	if v, ok := secValue(&o.sec, name); ok {
		return v, true
	}
	switch name {
	case "d", "height":
		return o.D, true
	case "s":
		return o.S, true
	case "t", "width":
		return o.T, true
	}
	return 0, false
}

// Record returns the ordered property record of this weld group. A line weld
// has no width, hence b is null
func (o *LineWeld) Record() *props.Record {
	return weldRecord(&o.sec, o.D, math.NaN(), o.S, o.T)
}

// BoxWeld is a closed rectangular weld group of height d and width b.
// The second moments and the torsion constant are per unit throat, treated
// as line properties
type BoxWeld struct {
	D    float64 // height
	B    float64 // width
	S    float64 // leg or groove size
	T    float64 // effective throat
	Type string  // weld type; e.g. "fillet"
	sec  Section
}

// NewBoxWeld returns a box weld given its height d, width b, size s and weld
// type. radius and factor are used by flare weld types only
func NewBoxWeld(d, b, s float64, weldType string, radius, factor float64) (*BoxWeld, error) {
	if d <= 0 {
		return nil, chk.Err("weld height must be positive: d=%g", d)
	}
	if b <= 0 || math.IsNaN(b) {
		return nil, chk.Err("box welds need a positive width: b=%v", b)
	}
	t, err := Throat(weldType, s, radius, factor)
	if err != nil {
		return nil, err
	}
	o := &BoxWeld{D: d, B: b, S: s, T: t, Type: strings.ToLower(strings.TrimSpace(weldType))}
	o.sec = Section{
		Label: "box",
		A:     2 * (b + d) * t,
		Ix:    d * d / 6.0 * (d + 3*b),
		Iy:    b * b / 6.0 * (b + 3*d),
		J:     math.Pow(b+d, 3) / 6.0,
		CxLeft: -b / 2, CxRight: b / 2,
		CyLow: -d / 2, CyHigh: d / 2,
	}
	return o, nil
}

// Sec returns the evaluated section properties
func (o *BoxWeld) Sec() *Section { return &o.sec }

// Kind returns the weld group geometry name
func (o *BoxWeld) Kind() string { return "box" }

// Size returns the leg or groove size
func (o *BoxWeld) Size() float64 { return o.S }

// Throat returns the effective throat
func (o *BoxWeld) Throat() float64 { return o.T }

// Value returns a named property of this weld group
func (o *BoxWeld) Value(name string) (float64, bool) {
	name = props.Standardized(name)
	if v, ok := secValue(&o.sec, name); ok {
		return v, true
	}
	switch name {
	case "d", "height":
		return o.D, true
	case "b", "width":
		return o.B, true
	case "s":
		return o.S, true
	case "t":
		return o.T, true
	}
	return 0, false
}

// Record returns the ordered property record of this weld group
func (o *BoxWeld) Record() *props.Record {
	return weldRecord(&o.sec, o.D, o.B, o.S, o.T)
}

// DoubleLineWeld is a pair of parallel weld lines of length d spaced b apart
type DoubleLineWeld struct {
	D    float64 // weld length
	B    float64 // spacing between the lines
	S    float64 // leg or groove size
	T    float64 // effective throat
	Type string  // weld type; e.g. "fillet"
	sec  Section
}

// NewDoubleLineWeld returns a double-line weld given its length d, spacing b,
// size s and weld type. radius and factor are used by flare weld types only
func NewDoubleLineWeld(d, b, s float64, weldType string, radius, factor float64) (*DoubleLineWeld, error) {
	if d <= 0 {
		return nil, chk.Err("weld length must be positive: d=%g", d)
	}
	if b <= 0 || math.IsNaN(b) {
		return nil, chk.Err("double line welds need a positive spacing: b=%v", b)
	}
	t, err := Throat(weldType, s, radius, factor)
	if err != nil {
		return nil, err
	}
	o := &DoubleLineWeld{D: d, B: b, S: s, T: t, Type: strings.ToLower(strings.TrimSpace(weldType))}
	o.sec = Section{
		Label: "double line",
		A:     2 * d * t,
		Ix:    d * d * d / 6.0 * t,
		Iy:    d * b * b / 2.0 * t,
		J:     d * (3*b*b + d*d) / 6.0 * t,
		CxLeft: -b / 2, CxRight: b / 2,
		CyLow: -d / 2, CyHigh: d / 2,
	}
	return o, nil
}

// Sec returns the evaluated section properties
func (o *DoubleLineWeld) Sec() *Section { return &o.sec }

// Kind returns the weld group geometry name
func (o *DoubleLineWeld) Kind() string { return "double line" }

// Size returns the leg or groove size
func (o *DoubleLineWeld) Size() float64 { return o.S }

// Throat returns the effective throat
func (o *DoubleLineWeld) Throat() float64 { return o.T }

// Value returns a named property of this weld group
func (o *DoubleLineWeld) Value(name string) (float64, bool) {
	name = props.Standardized(name)
	if v, ok := secValue(&o.sec, name); ok {
		return v, true
	}
	switch name {
	case "d", "height":
		return o.D, true
	case "b", "width":
		return o.B, true
	case "s":
		return o.S, true
	case "t":
		return o.T, true
	}
	return 0, false
}

// Record returns the ordered property record of this weld group
func (o *DoubleLineWeld) Record() *props.Record {
	return weldRecord(&o.sec, o.D, o.B, o.S, o.T)
}

// IsWeldKind tells whether kind names a weld group geometry
func IsWeldKind(kind string) bool {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "line", "box", "double line":
		return true
	}
	return false
}

// NewWeldShape allocates a weld group by kind name: "line", "box" or
// "double line". b must be zero or NaN for line welds
func NewWeldShape(kind string, d, b, s float64, weldType string, radius, factor float64) (WeldShaper, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "line":
		if b != 0 && !math.IsNaN(b) {
			return nil, chk.Err("line welds take no width: b=%g", b)
		}
		return NewLineWeld(d, s, weldType, radius, factor)
	case "box":
		return NewBoxWeld(d, b, s, weldType, radius, factor)
	case "double line":
		return NewDoubleLineWeld(d, b, s, weldType, radius, factor)
	}
	return nil, chk.Err("name %q is not a valid weld shape", kind)
}

// weldRecord returns the default property record shared by weld groups
func weldRecord(sec *Section, d, b, s, t float64) *props.Record {
	rec := props.NewRecord()
	rec.SetNum("d", d)
	rec.SetNum("b", b)
	rec.SetNum("s", s)
	rec.SetNum("t", t)
	rec.SetNum("A", sec.A)
	rec.SetNum("Ix", sec.Ix)
	rec.SetNum("Iy", sec.Iy)
	rec.SetNum("J", sec.J)
	rec.SetNum("cx_max", sec.CxMax())
	rec.SetNum("cy_max", sec.CyMax())
	return rec
}
