// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stru

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosteel/ana"
	"github.com/cpmech/gosteel/lod"
	"github.com/cpmech/gosteel/mat"
	"github.com/cpmech/gosteel/shp"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_object01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("object01. axial member")

	shape, err := shp.NewRectangle(4, 8)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	m, err := NewMember("strut", shape, lod.New(0, 0, 100, 0, 0, 0), nil, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	io.Pforan("m = \n%v\n", m)

	chk.Float64(tst, "Sa", 1e-15, m.Sa, 3.125)
	chk.Float64(tst, "Svx", 1e-17, m.Svx, 0)
	chk.Float64(tst, "Svy", 1e-17, m.Svy, 0)
	chk.Float64(tst, "max_tensile", 1e-15, m.MaxTensile, 3.125)
	chk.Float64(tst, "max_shear", 1e-17, m.MaxShear, 0)
	chk.Float64(tst, "max_bending", 1e-17, m.MaxBending, 0)
	chk.Float64(tst, "von_mises", 1e-13, m.VonMises, 3.125)
	chk.Float64(tst, "m+b max", 1e-15, m.MembranePlusBendingMax, 3.125)
	chk.Float64(tst, "m+b min", 1e-15, m.MembranePlusBendingMin, 3.125)

	// only σzz is nonzero at every corner
	chk.Float64(tst, "ll P1", 1e-13, m.Sll.P1, 3.125)
	chk.Float64(tst, "ll P2", 1e-13, m.Sll.P2, 0)
	chk.Float64(tst, "ll P3", 1e-13, m.Sll.P3, 0)
	chk.Float64(tst, "ur intensity", 1e-13, m.Sur.Intensity, 3.125)

	// the same state from the analytical bar
	var bar ana.Bar
	if err = bar.Init([]*dbf.P{&dbf.P{N: "P", V: 100}, &dbf.P{N: "A", V: 32}}); err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "Sa vs bar", 1e-15, m.Sa, bar.Sigma())
}

func Test_object02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("object02. bending vs cantilever solution")

	// cantilever W-equivalent rectangle: end load 100 over length 60 gives
	// a wall moment of 6,000 applied here as m_x
	shape, err := shp.NewRectangle(4, 8)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	m, err := NewMember("beam", shape, lod.New(0, 0, 0, 6000, 0, 0), nil, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}

	var sol ana.Cantilever
	err = sol.Init([]*dbf.P{
		&dbf.P{N: "P", V: 100},
		&dbf.P{N: "L", V: 60},
		&dbf.P{N: "I", V: m.Shape.Sec().Ix},
		&dbf.P{N: "c", V: 4},
	})
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	io.Pforan("Sbx_high = %v\n", m.SbxHigh)
	chk.Float64(tst, "Sbx_high", 1e-12, m.SbxHigh, sol.MaxStress())
	chk.Float64(tst, "Sbx_low", 1e-12, m.SbxLow, -sol.MaxStress())
	chk.Float64(tst, "max_bending", 1e-12, m.MaxBending, sol.MaxStress())
	chk.Float64(tst, "max_tensile", 1e-12, m.MaxTensile, sol.MaxStress())
	chk.Float64(tst, "Sby_left", 1e-17, m.SbyLeft, 0)
	chk.Float64(tst, "m+b max", 1e-12, m.MembranePlusBendingMax, sol.MaxStress())
	chk.Float64(tst, "m+b min", 1e-12, m.MembranePlusBendingMin, -sol.MaxStress())
}

func Test_object03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("object03. torsion vs shaft solution")

	shape, err := shp.NewCircle(2, 0)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	m, err := NewMember("shaft", shape, lod.New(0, 0, 0, 0, 0, 500), nil, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}

	// the evaluator resolves torsional shear at the corner radius r√2 of the
	// bounding square; feed the section's own J to the shaft solution
	var sol ana.Shaft
	err = sol.Init([]*dbf.P{
		&dbf.P{N: "T", V: 500},
		&dbf.P{N: "r", V: 2},
		&dbf.P{N: "J", V: m.Shape.Sec().J},
	})
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	rc := 2 * math.Sqrt2
	io.Pforan("Txy_ur = %v\n", m.TxyUR)
	chk.Float64(tst, "Txy_ur", 1e-12, m.TxyUR, sol.Tau(rc))
	chk.Float64(tst, "Txy_ul", 1e-12, m.TxyUL, sol.Tau(rc))
	chk.Float64(tst, "Txy_lr", 1e-12, m.TxyLR, sol.Tau(rc))
	chk.Float64(tst, "Txy_ll", 1e-12, m.TxyLL, sol.Tau(rc))
	chk.Float64(tst, "max_shear", 1e-12, m.MaxShear, sol.Tau(rc))
	chk.Float64(tst, "Sa", 1e-17, m.Sa, 0)
}

func Test_object04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("object04. property dispatch and record")

	shape, err := shp.NewRectangle(4, 8)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	material, err := mat.Find("A36")
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	loads, err := lod.NewOriented("z", "-x", 10, 20, 100, 0, 0, 40)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	m, err := NewMember("post", shape, loads, material, []*dbf.P{&dbf.P{N: "allowable", V: 21600}})
	if err != nil {
		tst.Errorf("%v", err)
		return
	}

	get := func(name string) float64 {
		v, ok := m.Get(name)
		if !ok {
			tst.Errorf("property %q not found", name)
			return 0
		}
		f, ok := v.(float64)
		if !ok {
			tst.Errorf("property %q is not numeric", name)
			return 0
		}
		return f
	}
	chk.Float64(tst, "A", 1e-15, get("A"), 32)
	chk.Float64(tst, "Ix", 1e-12, get("Ix"), 4.0*8*8*8/12)
	chk.Float64(tst, "f_z", 1e-15, get("f_z"), loads.Fz())
	chk.Float64(tst, "Fy", 1e-15, get("Fy"), 36000)
	chk.Float64(tst, "E", 1e-15, get("E"), 29e6)
	chk.Float64(tst, "Sa", 1e-15, get("Sa"), m.Sa)
	chk.Float64(tst, "von_mises", 1e-15, get("von_mises"), m.VonMises)
	chk.Float64(tst, "allowable", 1e-15, get("allowable"), 21600)
	if _, ok := m.Get("frobnicate"); ok {
		tst.Errorf("unknown property must report ok=false")
	}

	// the record starts with the name and keeps categories together
	rec := m.Record()
	keys := rec.Keys()
	chk.String(tst, keys[0], "Name")
	for _, want := range []string{"Sa", "von_mises", "A", "f_z", "Fy", "primary"} {
		if !rec.Has(want) {
			tst.Errorf("record must contain %q", want)
		}
	}
	name, _ := rec.Str("Name")
	chk.String(tst, name, "post")
}

func Test_object05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("object05. invalid inputs")

	if _, err := NewMember("ghost", nil, nil, nil, nil); err == nil {
		tst.Errorf("member without shape must fail")
	}
	shape, err := shp.NewRectangle(1, 1)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	if _, err := NewMember("opt", shape, nil, nil, []*dbf.P{&dbf.P{N: "bogus", V: 1}}); err == nil {
		tst.Errorf("unknown member option must fail")
	}
}
