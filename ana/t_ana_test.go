// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01. end-loaded cantilever")

	var sol Cantilever
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "P", V: 100},
		&dbf.P{N: "L", V: 60},
		&dbf.P{N: "E", V: 29e6},
		&dbf.P{N: "I", V: 30.8},
		&dbf.P{N: "c", V: 4},
	})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	chk.Float64(tst, "M(0)", 1e-12, sol.M(0), 6000)
	chk.Float64(tst, "M(L)", 1e-12, sol.M(60), 0)
	chk.Float64(tst, "MaxStress", 1e-10, sol.MaxStress(), 6000*4/30.8)
	chk.Float64(tst, "Sigma(0)", 1e-10, sol.Sigma(0), sol.MaxStress())
	chk.Float64(tst, "Deflection(0)", 1e-17, sol.Deflection(0), 0)
	chk.Float64(tst, "EndDeflection", 1e-12, sol.EndDeflection(), 100*math.Pow(60, 3)/(3*29e6*30.8))
	chk.Float64(tst, "Deflection(L)", 1e-12, sol.Deflection(60), sol.EndDeflection())

	if err = sol.Init([]*dbf.P{&dbf.P{N: "Q", V: 1}}); err == nil {
		tst.Errorf("unknown parameter must fail")
	}
}

func Test_shaft01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shaft01. circular shaft torsion")

	var sol Shaft
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "T", V: 500},
		&dbf.P{N: "r", V: 2},
		&dbf.P{N: "G", V: 11.2e6},
	})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	J := math.Pi * 16.0 / 2.0
	chk.Float64(tst, "J", 1e-14, sol.J, J)
	chk.Float64(tst, "MaxShear", 1e-12, sol.MaxShear(), 500*2/J)
	chk.Float64(tst, "Tau(0)", 1e-17, sol.Tau(0), 0)
	chk.Float64(tst, "Tau(r)", 1e-12, sol.Tau(2), sol.MaxShear())
	chk.Float64(tst, "Twist", 1e-15, sol.Twist(100), 500*100/(11.2e6*J))
}

func Test_bar01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bar01. axial bar")

	var sol Bar
	err := sol.Init([]*dbf.P{
		&dbf.P{N: "P", V: 100},
		&dbf.P{N: "A", V: 32},
		&dbf.P{N: "E", V: 29e6},
		&dbf.P{N: "L", V: 120},
	})
	if err != nil {
		tst.Errorf("Init failed: %v", err)
		return
	}

	chk.Float64(tst, "Sigma", 1e-15, sol.Sigma(), 3.125)
	chk.Float64(tst, "Strain", 1e-22, sol.Strain(), 3.125/29e6)
	chk.Float64(tst, "Elongation", 1e-20, sol.Elongation(), 3.125*120/29e6)
}
