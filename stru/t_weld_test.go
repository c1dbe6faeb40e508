// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stru

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosteel/lod"
	"github.com/cpmech/gosteel/stress"
)

func Test_weld01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weld01. fillet line weld stresses")

	loads := lod.New(50, 0, 100, 0, 0, 200)
	w, err := NewWeld(&WeldInput{Name: "w1", Shape: "line", D: 10, S: 0.5}, loads, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	io.Pforan("w = \n%v\n", w)

	t := 0.707 * 0.5
	area := 10 * t
	j := 1000 * t / 12
	chk.String(tst, w.WeldType, "fillet")
	chk.Float64(tst, "A", 1e-14, w.Shape.Sec().A, area)
	chk.Float64(tst, "J", 1e-13, w.Shape.Sec().J, j)
	chk.Float64(tst, "Sa", 1e-12, w.Sa, 100/area)
	chk.Float64(tst, "Svx", 1e-12, w.Svx, 50/area)
	chk.Float64(tst, "Tx", 1e-12, w.Tx, 200*5/j)
	chk.Float64(tst, "Ty", 1e-12, w.Ty, 200*(t/2)/j)
	chk.Float64(tst, "S_normal", 1e-12, w.SNormal, 100/area)
	chk.Float64(tst, "S_shear_x", 1e-12, w.SShearX, stress.SRSS(50/area, 200*5/j))
	chk.Float64(tst, "S_shear_y", 1e-12, w.SShearY, 200*(t/2)/j)
}

func Test_weld02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weld02. throat rules and box groups")

	// pjp throat loses 1/8 in
	w, err := NewWeld(&WeldInput{Name: "w2", Shape: "box", D: 6, B: 4, S: 0.5, WeldType: "pjp"}, nil, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	t := 0.375
	chk.Float64(tst, "A", 1e-14, w.Shape.Sec().A, 2*(4+6)*t)
	chk.Float64(tst, "J", 1e-12, w.Shape.Sec().J, math.Pow(4+6, 3)*t/6)

	// cjp keeps the full groove size
	w, err = NewWeld(&WeldInput{Name: "w3", Shape: "double line", D: 6, B: 4, S: 0.5, WeldType: "cjp"}, nil, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "A cjp", 1e-14, w.Shape.Sec().A, 2*6*0.5)

	// flare welds need both the radius and the groove factor
	if _, err = NewWeld(&WeldInput{Name: "w4", Shape: "line", D: 6, S: 0.5, WeldType: "flare bevel"}, nil, nil); err == nil {
		tst.Errorf("flare weld without radius must fail")
	}
	w, err = NewWeld(&WeldInput{Name: "w5", Shape: "line", D: 6, S: 0.5, WeldType: "flare bevel",
		Radius: 0.5, FlareGrooveFactor: 0.3125}, nil, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "flare A", 1e-14, w.Shape.Sec().A, 6*0.3125*0.5)

	// line welds take no width
	if _, err = NewWeld(&WeldInput{Name: "w6", Shape: "line", D: 6, B: 2, S: 0.5}, nil, nil); err == nil {
		tst.Errorf("line weld with a width must fail")
	}
}

func Test_weld03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("weld03. stress ratios against allowables")

	loads := lod.New(0, 0, 100, 0, 0, 0)
	bare, err := NewWeld(&WeldInput{Name: "bare", Shape: "line", D: 10, S: 0.5}, loads, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	if _, err = bare.NormalStressRatio(); err == nil {
		tst.Errorf("normal ratio without allowable must fail")
	}
	if _, err = bare.ShearStressRatio(); err == nil {
		tst.Errorf("shear ratio without allowable must fail")
	}
	if _, err = bare.TensileRatio(); err == nil {
		tst.Errorf("tensile ratio without allowable must fail")
	}

	w, err := NewWeld(&WeldInput{
		Name: "rated", Shape: "line", D: 10, S: 0.5,
		NormalAllowable:  1000,
		TensileAllowable: 800,
		ShearAllowable:   600,
	}, loads, nil)
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	rn, err := w.NormalStressRatio()
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "normal ratio", 1e-13, rn, w.SNormal/1000)
	rt, err := w.TensileRatio()
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "tensile ratio", 1e-13, rt, math.Abs(w.MaxTensile)/800)
	rs, err := w.ShearStressRatio()
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "shear ratio", 1e-13, rs, math.Max(w.SShearX, w.SShearY)/600)

	// the info entries flow into the record
	rec := w.Record()
	wt, _ := rec.Str("weld_type")
	chk.String(tst, wt, "fillet")
}
