// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form analytical solutions used to verify the
// stress evaluator
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Cantilever implements the engineering beam solution for a prismatic
// cantilever with a concentrated load P at the free end
//
//        P ↓
//   ||----------------
//   ||________________    x →
//   ||
//   x=0 (wall)      x=L
type Cantilever struct {

	// input
	P float64 // end load
	L float64 // beam length
	E float64 // Young's modulus
	I float64 // second moment of area about the bending axis
	C float64 // extreme fibre distance from the neutral axis
}

// Init initialises this structure. Parameters: P, L, E, I, c
func (o *Cantilever) Init(prms dbf.Params) error {

	// default values
	o.P = 1
	o.L = 1
	o.E = 29e6
	o.I = 1
	o.C = 1

	// parameters
	for _, p := range prms {
		switch p.N {
		case "P":
			o.P = p.V
		case "L":
			o.L = p.V
		case "E":
			o.E = p.V
		case "I":
			o.I = p.V
		case "c":
			o.C = p.V
		default:
			return chk.Err("cantilever: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// M returns the bending moment at station x measured from the wall
func (o *Cantilever) M(x float64) float64 {
	return o.P * (o.L - x)
}

// Sigma returns the extreme-fibre bending stress at station x
func (o *Cantilever) Sigma(x float64) float64 {
	return o.M(x) * o.C / o.I
}

// MaxStress returns the extreme-fibre bending stress at the wall
func (o *Cantilever) MaxStress() float64 {
	return o.P * o.L * o.C / o.I
}

// Deflection returns the transverse deflection at station x
func (o *Cantilever) Deflection(x float64) float64 {
	return o.P * x * x * (3*o.L - x) / (6 * o.E * o.I)
}

// EndDeflection returns the deflection at the free end
func (o *Cantilever) EndDeflection() float64 {
	return o.P * o.L * o.L * o.L / (3 * o.E * o.I)
}
