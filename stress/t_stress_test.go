// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_stress01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stress01. uniaxial tension")

	e, err := NewElement(100, 0, 0, 0, 0, 0)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	io.Pforan("P = %v\n", e.Principals())
	chk.Float64(tst, "P1", 1e-13, e.P1, 100)
	chk.Float64(tst, "P2", 1e-13, e.P2, 0)
	chk.Float64(tst, "P3", 1e-13, e.P3, 0)
	chk.Float64(tst, "von Mises", 1e-13, e.VonMises, 100)
	chk.Float64(tst, "intensity", 1e-13, e.Intensity, 100)
	chk.Float64(tst, "tau1", 1e-13, e.Tau1, 50)
	chk.Float64(tst, "max shear", 1e-13, e.MaxShear(), 50)

	// direction of P1 is ±x
	chk.Float64(tst, "|V1·x|", 1e-13, math.Abs(e.V1[0]), 1)
}

func Test_stress02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stress02. hydrostatic and pure shear")

	e, err := NewElement(-25, -25, -25, 0, 0, 0)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Array(tst, "hydrostatic P", 1e-13, e.Principals(), []float64{-25, -25, -25})
	chk.Float64(tst, "hydrostatic von Mises", 1e-13, e.VonMises, 0)
	chk.Float64(tst, "hydrostatic intensity", 1e-13, e.Intensity, 0)

	e, err = NewElement(0, 0, 0, 10, 0, 0)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Array(tst, "shear P", 1e-13, e.Principals(), []float64{10, 0, -10})
	chk.Float64(tst, "shear von Mises", 1e-13, e.VonMises, 10*math.Sqrt(3))
	chk.Float64(tst, "shear max shear", 1e-13, e.MaxShear(), 10)
}

func Test_stress03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stress03. coupled tensor with known eigenvalues")

	// [[2 1 0] [1 2 0] [0 0 3]] has eigenvalues {3, 3, 1}
	e, err := NewElement(2, 2, 3, 1, 0, 0)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Array(tst, "P", 1e-13, e.Principals(), []float64{3, 3, 1})
	chk.Float64(tst, "von Mises", 1e-13, e.VonMises, 2)
	chk.Float64(tst, "intensity", 1e-13, e.Intensity, 2)
	chk.Float64(tst, "tau1", 1e-13, e.Tau1, 1)
	chk.Float64(tst, "tau2", 1e-13, e.Tau2, 0)
	chk.Float64(tst, "tau3", 1e-13, e.Tau3, 1)

	// P3 direction is ±z-orthogonal plane partner: eigenvector of value 1 is (1,-1,0)/√2
	io.Pforan("V3 = %v\n", e.V3)
	chk.Float64(tst, "V3 z-component", 1e-13, e.V3[2], 0)
	chk.Float64(tst, "|V3 x| = |V3 y|", 1e-13, math.Abs(e.V3[0]), math.Abs(e.V3[1]))
}

func Test_stress04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stress04. six components versus 3x3 matrix input")

	a, err := NewElement(1, 2, 3, 0.5, 0.25, 0.75)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	b, err := NewFromMatrix(a.Matrix())
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "Sxy", 1e-17, b.Sxy, 0.5)
	chk.Float64(tst, "Sxz", 1e-17, b.Sxz, 0.25)
	chk.Float64(tst, "Syz", 1e-17, b.Syz, 0.75)
	chk.Array(tst, "P equal", 1e-14, a.Principals(), b.Principals())
	chk.Float64(tst, "von Mises equal", 1e-14, a.VonMises, b.VonMises)

	// eigen-based von Mises matches the component formula
	d12, d23, d31 := a.Sx-a.Sy, a.Sy-a.Sz, a.Sz-a.Sx
	direct := math.Sqrt(0.5 * (d12*d12 + d23*d23 + d31*d31 + 6*(a.Sxy*a.Sxy+a.Syz*a.Syz+a.Sxz*a.Sxz)))
	io.Pforan("von Mises = %v  (direct = %v)\n", a.VonMises, direct)
	chk.Float64(tst, "von Mises direct", 1e-13, a.VonMises, direct)

	if _, err := NewFromMatrix([][]float64{{1, 2}, {3, 4}}); err == nil {
		tst.Errorf("non 3x3 matrix must fail")
	}
}

func Test_stress05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stress05. record, aliases and SRSS")

	e, err := NewElement(1, 2, 3, 4, 5, 6)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	r := e.Record()
	chk.Strings(tst, "keys", r.Keys(), []string{"Sx", "Sy", "Sz", "Sxy", "Syz", "Sxz"})
	sxz, _ := r.Num("Sxz")
	chk.Float64(tst, "record Sxz", 1e-17, sxz, 5)
	syz, _ := r.Num("Syz")
	chk.Float64(tst, "record Syz", 1e-17, syz, 6)

	chk.Float64(tst, "Syx alias", 1e-17, e.Syx(), 4)
	chk.Float64(tst, "Szx alias", 1e-17, e.Szx(), 5)
	chk.Float64(tst, "Szy alias", 1e-17, e.Szy(), 6)

	chk.Float64(tst, "SRSS(3,4)", 1e-17, SRSS(3, 4), 5)
	chk.Float64(tst, "SRSS()", 1e-17, SRSS(), 0)
	chk.Float64(tst, "SRSS(1,2,2)", 1e-17, SRSS(1, 2, 2), 3)
}
