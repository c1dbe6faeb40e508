// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stru

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosteel/lod"
	"github.com/cpmech/gosteel/mat"
	"github.com/cpmech/gosteel/shp"
	"github.com/cpmech/gosteel/stress"
)

// WeldInput collects the data defining one weld group. Shape names a weld
// shape kind ("line", "box" or "double line"); B stays zero for line welds.
// Flare weld types need both Radius and FlareGrooveFactor. The allowables
// are optional; ratio queries fail while their allowable is missing.
type WeldInput struct {
	Name              string  // weld name
	Shape             string  // weld shape kind
	D                 float64 // depth of the weld group
	B                 float64 // width of box and double-line groups
	S                 float64 // weld size
	WeldType          string  // "fillet", "cjp", "pjp", "flare bevel" or "flare v-groove"; default fillet
	Radius            float64 // bend radius of flare welds
	FlareGrooveFactor float64 // effective throat factor of flare welds
	NormalAllowable   float64 // allowable for the combined normal stress
	TensileAllowable  float64 // allowable for max tensile comparisons
	ShearAllowable    float64 // allowable for shear comparisons
}

// Weld is a weld group evaluated on its throat area, with combined normal
// and shear stresses resolved at the extreme fibres
type Weld struct {
	Object
	WeldType string  // weld type after lowering
	Tx       float64 // torsional shear acting in x at the extreme vertical fibre
	Ty       float64 // torsional shear acting in y at the extreme horizontal fibre
	SNormal  float64 // combined normal stress: |Sa|+Sbx+Sby
	SShearX  float64 // combined shear in x: √(Svx²+Tx²)
	SShearY  float64 // combined shear in y: √(Svy²+Ty²)

	normalAllowable  float64
	tensileAllowable float64
	shearAllowable   float64
}

// NewWeld returns an evaluated weld group
func NewWeld(in *WeldInput, loads *lod.Load, material *mat.Material) (*Weld, error) {
	o := new(Weld)
	o.WeldType = strings.ToLower(strings.TrimSpace(in.WeldType))
	if o.WeldType == "" {
		o.WeldType = "fillet"
	}
	shape, err := shp.NewWeldShape(in.Shape, in.D, in.B, in.S, o.WeldType, in.Radius, in.FlareGrooveFactor)
	if err != nil {
		return nil, err
	}
	if err = o.init(in.Name, shape, loads, material); err != nil {
		return nil, err
	}
	sec := shape.Sec()
	mz := o.Loads.Mz()
	o.Tx = mz * sec.CyMax() / sec.J
	o.Ty = mz * sec.CxMax() / sec.J
	o.SNormal = math.Abs(o.Sa) + o.Sbx() + o.Sby()
	o.SShearX = stress.SRSS(o.Svx, o.Tx)
	o.SShearY = stress.SRSS(o.Svy, o.Ty)
	o.normalAllowable = in.NormalAllowable
	o.tensileAllowable = in.TensileAllowable
	o.shearAllowable = in.ShearAllowable
	o.info.Set("weld_type", o.WeldType)
	o.info.Set("label", sec.Label)
	return o, nil
}

// NormalStressRatio returns the combined normal stress over its allowable
func (o *Weld) NormalStressRatio() (float64, error) {
	if o.normalAllowable <= 0 {
		return 0, chk.Err("weld %q has no normal allowable stress", o.Name)
	}
	return o.SNormal / o.normalAllowable, nil
}

// ShearStressRatio returns the governing combined shear stress over the
// allowable shear stress
func (o *Weld) ShearStressRatio() (float64, error) {
	if o.shearAllowable <= 0 {
		return 0, chk.Err("weld %q has no allowable shear stress", o.Name)
	}
	return math.Max(o.SShearX, o.SShearY) / o.shearAllowable, nil
}

// TensileRatio returns |max tensile| over the allowable tensile stress
func (o *Weld) TensileRatio() (float64, error) {
	if o.tensileAllowable <= 0 {
		return 0, chk.Err("weld %q has no allowable tensile stress", o.Name)
	}
	return math.Abs(o.MaxTensile / o.tensileAllowable), nil
}

// ShearRatio returns |max shear| over the allowable shear stress
func (o *Weld) ShearRatio() (float64, error) {
	if o.shearAllowable <= 0 {
		return 0, chk.Err("weld %q has no allowable shear stress", o.Name)
	}
	return math.Abs(o.MaxShear / o.shearAllowable), nil
}
