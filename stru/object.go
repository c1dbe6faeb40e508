// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stru implements structural objects: members, bolts and welds whose
// component and resultant stresses are evaluated at construction time
package stru

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosteel/lod"
	"github.com/cpmech/gosteel/mat"
	"github.com/cpmech/gosteel/props"
	"github.com/cpmech/gosteel/shp"
	"github.com/cpmech/gosteel/stress"
)

// Object is the common core of structural objects: one cross-section
// carrying one load, with an optional material. All stresses are derived
// once, at construction time; objects are immutable afterwards.
//
// Shear and torsion components are averaged values: Svx and Svy are direct
// shear over the full area and the four Txy values are torsional shear at
// the corner fibres. Degenerate sections make components go to ±Inf or NaN.
type Object struct {

	// input
	Name      string        // object name
	Desc      string        // description
	Shape     shp.Shaper    // cross-section
	Loads     *lod.Load     // applied loads, in the local orientation
	Material  *mat.Material // material; may be nil
	Allowable float64       // allowable stress override; 0 when not given

	// component stresses
	Sa       float64 // direct axial stress: fz/A
	Svx      float64 // direct shear stress in x: fx/A
	Svy      float64 // direct shear stress in y: fy/A
	TxyLR    float64 // torsional shear at the lower-right corner
	TxyLL    float64 // torsional shear at the lower-left corner
	TxyUR    float64 // torsional shear at the upper-right corner
	TxyUL    float64 // torsional shear at the upper-left corner
	SbxLow   float64 // bending about x-x at the bottom fibre
	SbxHigh  float64 // bending about x-x at the top fibre
	SbyLeft  float64 // bending about y-y at the left fibre
	SbyRight float64 // bending about y-y at the right fibre

	// corner stress elements
	Sll *stress.Element // lower-left corner
	Slr *stress.Element // lower-right corner
	Sul *stress.Element // upper-left corner
	Sur *stress.Element // upper-right corner

	// resultant stresses
	VonMises               float64 // largest von Mises stress of the four corners
	MaxTensile             float64 // largest signed normal stress component
	MaxShear               float64 // largest magnitude among shear components
	MaxBending             float64 // largest magnitude among bending components
	MembranePlusBendingMin float64 // smallest Sa+Sb combination
	MembranePlusBendingMax float64 // largest Sa+Sb combination

	// info entries prepended to records by specializations
	info *props.Record
}

// init fills the input fields and evaluates all stresses. A nil loads means
// an unloaded object.
func (o *Object) init(name string, shape shp.Shaper, loads *lod.Load, material *mat.Material) error {
	if name == "" {
		name = "<unnamed>"
	}
	if shape == nil {
		return chk.Err("object %q has no shape", name)
	}
	if loads == nil {
		loads = lod.New(0, 0, 0, 0, 0, 0)
	}
	o.Name = name
	o.Shape = shape
	o.Loads = loads
	o.Material = material
	o.info = props.NewRecord()
	return o.evaluate()
}

// evaluate computes component stresses, corner stress elements and resultants
func (o *Object) evaluate() (err error) {
	sec := o.Shape.Sec()
	o.Sa = o.Loads.Fz() / sec.A
	o.Svx = o.Loads.Fx() / sec.A
	o.Svy = o.Loads.Fy() / sec.A
	mx, my, mz := o.Loads.Mx(), o.Loads.My(), o.Loads.Mz()
	o.TxyLR = mz * math.Hypot(sec.CyLow, sec.CxRight) / sec.J
	o.TxyLL = mz * math.Hypot(sec.CyLow, sec.CxLeft) / sec.J
	o.TxyUR = mz * math.Hypot(sec.CyHigh, sec.CxRight) / sec.J
	o.TxyUL = mz * math.Hypot(sec.CyHigh, sec.CxLeft) / sec.J
	o.SbxLow = mx * sec.CyLow / sec.Ix
	o.SbxHigh = mx * sec.CyHigh / sec.Ix
	o.SbyLeft = my * sec.CxLeft / sec.Iy
	o.SbyRight = my * sec.CxRight / sec.Iy
	if o.Sll, err = o.corner(o.TxyLL, o.SbxLow, o.SbyLeft); err != nil {
		return
	}
	if o.Slr, err = o.corner(o.TxyLR, o.SbxLow, o.SbyRight); err != nil {
		return
	}
	if o.Sul, err = o.corner(o.TxyUL, o.SbxHigh, o.SbyLeft); err != nil {
		return
	}
	if o.Sur, err = o.corner(o.TxyUR, o.SbxHigh, o.SbyRight); err != nil {
		return
	}
	o.VonMises = maxOf(o.Sll.VonMises, o.Slr.VonMises, o.Sul.VonMises, o.Sur.VonMises)
	o.MaxTensile = maxOf(o.Sa, o.SbxHigh, o.SbxLow, o.SbyLeft, o.SbyRight)
	o.MaxShear = maxAbs(o.Svx, o.Svy, o.TxyLR, o.TxyLL, o.TxyUR, o.TxyUL)
	o.MaxBending = maxAbs(o.SbxHigh, o.SbxLow, o.SbyLeft, o.SbyRight)
	o.MembranePlusBendingMax = maxOf(o.Sa+o.SbxHigh, o.Sa+o.SbxLow, o.Sa+o.SbyLeft, o.Sa+o.SbyRight)
	o.MembranePlusBendingMin = minOf(o.Sa+o.SbxHigh, o.Sa+o.SbxLow, o.Sa+o.SbyLeft, o.Sa+o.SbyRight)
	return
}

// corner builds the full stress element at one corner of the section given
// the torsional shear and the two bending components acting there
func (o *Object) corner(txy, sbx, sby float64) (*stress.Element, error) {
	return stress.NewElement(0, 0, o.Sa+sbx+sby, txy, o.Svx, o.Svy)
}

// Sbx returns the governing bending stress magnitude about x-x
func (o *Object) Sbx() float64 {
	return math.Max(math.Abs(o.SbxHigh), math.Abs(o.SbxLow))
}

// Sby returns the governing bending stress magnitude about y-y
func (o *Object) Sby() float64 {
	return math.Max(math.Abs(o.SbyRight), math.Abs(o.SbyLeft))
}

// Get returns a named property by dispatching on its category: shape, load
// and material properties and the object's own stress values. Unrecognised
// names fall back to the info entries; ok is false when nothing answers.
func (o *Object) Get(name string) (interface{}, bool) {
	std := props.Standardized(name)
	switch props.Lookup(name) {
	case props.Shape:
		if std == "label" {
			return o.Shape.Sec().Label, true
		}
		if v, ok := o.Shape.Value(name); ok {
			return v, true
		}
	case props.Load:
		switch std {
		case "fx":
			return o.Loads.Fx(), true
		case "fy":
			return o.Loads.Fy(), true
		case "fz":
			return o.Loads.Fz(), true
		case "mx":
			return o.Loads.Mx(), true
		case "my":
			return o.Loads.My(), true
		case "mz":
			return o.Loads.Mz(), true
		case "primary":
			return o.Loads.Primary, true
		case "secondary":
			return o.Loads.Secondary, true
		}
	case props.Material:
		if o.Material != nil {
			if v, ok := o.Material.Prop(name); ok {
				return v, true
			}
		}
	case props.Component:
		if v, ok := o.component(std); ok {
			return v, true
		}
	case props.Resultant:
		if v, ok := o.resultant(std); ok {
			return v, true
		}
	}
	if std == "allowable" && o.Allowable != 0 {
		return o.Allowable, true
	}
	return o.info.Get(name)
}

// component returns one component stress given its standardized name
func (o *Object) component(std string) (float64, bool) {
	switch std {
	case "Sa":
		return o.Sa, true
	case "Svx":
		return o.Svx, true
	case "Svy":
		return o.Svy, true
	case "Txylr":
		return o.TxyLR, true
	case "Txyll":
		return o.TxyLL, true
	case "Txyur":
		return o.TxyUR, true
	case "Txyul":
		return o.TxyUL, true
	case "Sbxlow":
		return o.SbxLow, true
	case "Sbxhigh":
		return o.SbxHigh, true
	case "Sbyleft":
		return o.SbyLeft, true
	case "Sbyright":
		return o.SbyRight, true
	}
	return 0, false
}

// resultant returns one resultant stress given its standardized name
func (o *Object) resultant(std string) (float64, bool) {
	switch std {
	case "vonmises":
		return o.VonMises, true
	case "maxtensile":
		return o.MaxTensile, true
	case "maxshear":
		return o.MaxShear, true
	case "maxbending":
		return o.MaxBending, true
	case "membraneplusbendingmin":
		return o.MembranePlusBendingMin, true
	case "membraneplusbendingmax":
		return o.MembranePlusBendingMax, true
	}
	return 0, false
}

// Record returns this object's report row: name and info entries first, then
// component stresses, resultant stresses and the shape, load and material
// records. Clashing names keep their first value.
func (o *Object) Record() *props.Record {
	r := props.NewRecord()
	r.Set("Name", o.Name)
	if o.Desc != "" {
		r.Set("desc", o.Desc)
	}
	r.Merge(o.info)
	r.SetNum("Sa", o.Sa)
	r.SetNum("Svx", o.Svx)
	r.SetNum("Svy", o.Svy)
	r.SetNum("Txy_lr", o.TxyLR)
	r.SetNum("Txy_ll", o.TxyLL)
	r.SetNum("Txy_ur", o.TxyUR)
	r.SetNum("Txy_ul", o.TxyUL)
	r.SetNum("Sbx_low", o.SbxLow)
	r.SetNum("Sbx_high", o.SbxHigh)
	r.SetNum("Sby_left", o.SbyLeft)
	r.SetNum("Sby_right", o.SbyRight)
	r.SetNum("von_mises", o.VonMises)
	r.SetNum("max_tensile", o.MaxTensile)
	r.SetNum("max_shear", o.MaxShear)
	r.SetNum("max_bending", o.MaxBending)
	r.SetNum("membrane_plus_bending_min", o.MembranePlusBendingMin)
	r.SetNum("membrane_plus_bending_max", o.MembranePlusBendingMax)
	r.Merge(o.Shape.Record())
	r.Merge(o.Loads.Record())
	if o.Material != nil {
		r.Merge(o.Material.Record())
	}
	return r
}

// String returns an aligned listing of this object's record
func (o *Object) String() string {
	return o.Record().String()
}

// maxOf returns the largest argument; NaN propagates
func maxOf(vals ...float64) (res float64) {
	res = vals[0]
	for _, v := range vals[1:] {
		res = math.Max(res, v)
	}
	return
}

// minOf returns the smallest argument; NaN propagates
func minOf(vals ...float64) (res float64) {
	res = vals[0]
	for _, v := range vals[1:] {
		res = math.Min(res, v)
	}
	return
}

// maxAbs returns the largest magnitude among the arguments
func maxAbs(vals ...float64) (res float64) {
	res = math.Abs(vals[0])
	for _, v := range vals[1:] {
		res = math.Max(res, math.Abs(v))
	}
	return
}
