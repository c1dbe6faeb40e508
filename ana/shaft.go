// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Shaft implements the elastic torsion solution for a circular shaft with a
// constant torque T. The torsion constant J defaults to the polar moment
// π⋅r⁴/2 of the solid section but may be given explicitly to match a section
// library convention.
type Shaft struct {

	// input
	T float64 // applied torque
	R float64 // outer radius
	G float64 // shear modulus
	J float64 // torsion constant
}

// Init initialises this structure. Parameters: T, r, G, J
func (o *Shaft) Init(prms dbf.Params) error {

	// default values
	o.T = 1
	o.R = 1
	o.G = 11.2e6
	o.J = 0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "T":
			o.T = p.V
		case "r":
			o.R = p.V
		case "G":
			o.G = p.V
		case "J":
			o.J = p.V
		default:
			return chk.Err("shaft: parameter named %q is incorrect", p.N)
		}
	}

	// derived
	if o.J == 0 {
		o.J = math.Pi * math.Pow(o.R, 4) / 2
	}
	return nil
}

// Tau returns the shear stress at radial position ρ
func (o *Shaft) Tau(rho float64) float64 {
	return o.T * rho / o.J
}

// MaxShear returns the shear stress at the outer surface
func (o *Shaft) MaxShear() float64 {
	return o.T * o.R / o.J
}

// Twist returns the angle of twist over a length l
func (o *Shaft) Twist(l float64) float64 {
	return o.T * l / (o.G * o.J)
}
