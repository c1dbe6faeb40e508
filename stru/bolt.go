// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stru

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/lod"
	"github.com/cpmech/gosteel/mat"
	"github.com/cpmech/gosteel/shp"
)

// boltOmega is the ASD safety factor Ω of AISC 360-16 J3
const boltOmega = 2.0

// BoltInput collects the data defining one bolt. The size may be given as a
// designation (Number; e.g. "#10" or "3/4"), as the basic major diameter D,
// or as the radius R; the resolved diameter snaps to the nearest tabulated
// size of the thread class. Strengths come either from FU (deriving nominal
// stresses per AISC table J3.2) or from explicit FNT/FNV.
type BoltInput struct {
	Name            string  // bolt name
	Number          string  // size designation
	D               float64 // basic major diameter
	R               float64 // radius; d = 2r
	ThreadClass     string  // "coarse" (UNC) or "fine" (UNF); default coarse
	FU              float64 // nominal tensile strength of the bolt material
	FNT             float64 // explicit nominal tensile stress
	FNV             float64 // explicit nominal shear stress
	ThreadsExcluded bool    // threads excluded from the shear planes
}

// Bolt is a threaded fastener evaluated on its tensile stress area
type Bolt struct {
	Object
	ThreadClass string  // thread class: "coarse" or "fine"
	Size        string  // tabulated size designation after snapping
	D           float64 // snapped basic major diameter
	TPI         float64 // threads per inch
	At          float64 // tensile stress area
	Dt          float64 // diameter of the circle with area At
	Fnt         float64 // nominal tensile stress; 0 when not derivable
	Fnv         float64 // nominal shear stress; 0 when not derivable
}

// NewBolt returns an evaluated bolt. The cross-section is the equivalent
// tensile circle per AISC 360-16 Eq. A-3-7:
//  At = π/4 ⋅ (d − 0.9743/n)²   dt = √(4⋅At/π)
func NewBolt(in *BoltInput, loads *lod.Load, material *mat.Material) (*Bolt, error) {
	o := new(Bolt)
	o.ThreadClass = strings.ToLower(strings.TrimSpace(in.ThreadClass))
	if o.ThreadClass == "" {
		o.ThreadClass = "coarse"
	}

	// resolve and snap the diameter
	d := in.D
	switch {
	case in.Number != "":
		t, err := inp.ThreadBySize(o.ThreadClass, in.Number)
		if err != nil {
			return nil, err
		}
		d = t.D
	case in.D > 0:
	case in.R > 0:
		d = 2 * in.R
	default:
		return nil, chk.Err("bolt %q needs a size given by number, d or r", in.Name)
	}
	t, err := inp.ThreadByDiameter(o.ThreadClass, d)
	if err != nil {
		return nil, err
	}
	o.Size = t.Size
	o.D = t.D
	o.TPI = t.TPI

	// tensile stress area and the equivalent circle
	o.At = math.Pi / 4 * math.Pow(o.D-0.9743/o.TPI, 2)
	o.Dt = math.Sqrt(4 * o.At / math.Pi)
	shape, err := shp.NewCircle(0, o.Dt)
	if err != nil {
		return nil, err
	}

	// nominal stresses per AISC table J3.2
	if in.FU > 0 {
		o.Fnt = 0.75 * in.FU
		if in.ThreadsExcluded {
			o.Fnv = 0.563 * in.FU
		} else {
			o.Fnv = 0.450 * in.FU
		}
	} else {
		o.Fnt = in.FNT
		o.Fnv = in.FNV
	}

	if err = o.init(in.Name, shape, loads, material); err != nil {
		return nil, err
	}
	o.info.Set("thread_class", o.ThreadClass)
	o.info.Set("size", o.Size)
	return o, nil
}

// AllowableTensile returns the allowable tensile stress F'nt/Ω per AISC
// 360-16 J3.2. Shear above 1 psi triggers the J3-3b interaction:
//  F'nt = min(1.3⋅Fnt − Ω⋅Fnt/Fnv ⋅ frv, Fnt)
func (o *Bolt) AllowableTensile() (float64, error) {
	if o.Fnt <= 0 {
		return 0, chk.Err("bolt %q has no nominal tensile stress: give F_u or F_nt", o.Name)
	}
	if math.Abs(o.Svx) > 1 || math.Abs(o.Svy) > 1 {
		if o.Fnv <= 0 {
			return 0, chk.Err("bolt %q has no nominal shear stress: give F_u or F_nv", o.Name)
		}
		frv := math.Hypot(o.Svx, o.Svy)
		f := 1.3*o.Fnt - boltOmega*o.Fnt/o.Fnv*frv
		return math.Min(f, o.Fnt) / boltOmega, nil
	}
	return o.Fnt / boltOmega, nil
}

// AllowableShear returns the allowable shear stress Fnv/Ω per AISC 360-16 J3.2
func (o *Bolt) AllowableShear() (float64, error) {
	if o.Fnv <= 0 {
		return 0, chk.Err("bolt %q has no nominal shear stress: give F_u or F_nv", o.Name)
	}
	return o.Fnv / boltOmega, nil
}
