// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Bar implements the uniaxial solution for a prismatic bar under a constant
// axial load P
type Bar struct {

	// input
	P float64 // axial load
	A float64 // cross-section area
	E float64 // Young's modulus
	L float64 // bar length
}

// Init initialises this structure. Parameters: P, A, E, L
func (o *Bar) Init(prms dbf.Params) error {

	// default values
	o.P = 1
	o.A = 1
	o.E = 29e6
	o.L = 1

	// parameters
	for _, p := range prms {
		switch p.N {
		case "P":
			o.P = p.V
		case "A":
			o.A = p.V
		case "E":
			o.E = p.V
		case "L":
			o.L = p.V
		default:
			return chk.Err("bar: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// Sigma returns the axial stress
func (o *Bar) Sigma() float64 {
	return o.P / o.A
}

// Strain returns the axial strain
func (o *Bar) Strain() float64 {
	return o.P / (o.A * o.E)
}

// Elongation returns the total change in length
func (o *Bar) Elongation() float64 {
	return o.P * o.L / (o.A * o.E)
}
