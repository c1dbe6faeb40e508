// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

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

func Test_lookup01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lookup01. property categories")

	cases := []struct {
		name string
		kind Kind
	}{
		{"A", Shape},
		{"Ix", Shape},
		{"cx_left", Shape},
		{"label", Shape},
		{"tnom", Shape},
		{"fx", Load},
		{"f_x", Load},
		{"primary", Load},
		{"Fy", Material},
		{"rho", Material},
		{"E", Material},
		{"Sa", Component},
		{"Txy_ul", Component},
		{"von_mises", Resultant},
		{"membrane_plus_bending_max", Resultant},
		{"banana", Unknown},
	}
	for _, c := range cases {
		kind := Lookup(c.name)
		io.Pforan("%-30q => %v\n", c.name, kind)
		if kind != c.kind {
			tst.Errorf("Lookup(%q) = %v, want %v", c.name, kind, c.kind)
		}
	}

	chk.String(tst, Standardized("f_x"), "fx")
	chk.String(tst, Standardized("m_minor"), "mminor")
	chk.String(tst, Standardized("Sa"), "Sa")
}

func Test_lookup02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lookup02. canonical ordering")

	cols := Canonical()
	io.Pforan("ncols = %v\n", len(cols))

	pos := make(map[string]int)
	for i, c := range cols {
		if _, ok := pos[c]; !ok {
			pos[c] = i
		}
	}
	if pos["A"] != 0 {
		tst.Errorf("first canonical column must be A")
	}
	if !(pos["Sx"] < pos["Sy"] && pos["Sy"] < pos["Sz"]) {
		tst.Errorf("section moduli out of order")
	}
	if !(pos["label"] < pos["Fy"] && pos["Fy"] < pos["fx"] && pos["fx"] < pos["Sa"] && pos["Sa"] < pos["von_mises"]) {
		tst.Errorf("category blocks out of order")
	}
}

func Test_record01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("record01. ordered record, first value wins")

	r := NewRecord()
	r.Set("Name", "plate")
	r.SetNum("A", 8)
	r.SetNum("Ix", 2.667)
	r.SetNum("A", 999) // ignored
	r.Set("label", "rectangle")
	r.SetNum("J", math.NaN())

	chk.Ints(tst, "len", []int{r.Len()}, []int{5})
	chk.Strings(tst, "keys", r.Keys(), []string{"Name", "A", "Ix", "label", "J"})

	a, ok := r.Num("A")
	if !ok {
		tst.Errorf("A must be present")
	}
	chk.Float64(tst, "A", 1e-17, a, 8)

	if _, ok := r.Num("label"); ok {
		tst.Errorf("label is a string, not a number")
	}
	lbl, ok := r.Str("label")
	if !ok {
		tst.Errorf("label must be present")
	}
	chk.String(tst, lbl, "rectangle")

	if !r.IsNull("J") {
		tst.Errorf("NaN entry must be null")
	}
	if !r.IsNull("missing") {
		tst.Errorf("missing entry must be null")
	}
	if r.IsNull("Name") {
		tst.Errorf("string entry must not be null")
	}

	s := NewRecord()
	s.SetNum("Ix", 123) // must not override
	s.SetNum("Iy", 10.667)
	r.Merge(s)
	ix, _ := r.Num("Ix")
	chk.Float64(tst, "Ix after merge", 1e-17, ix, 2.667)
	iy, _ := r.Num("Iy")
	chk.Float64(tst, "Iy after merge", 1e-17, iy, 10.667)

	io.Pf("%v\n", r)
}

func Test_format01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("format01. number formatting")

	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{0.0005, "0.000500"},
		{0.549494, "0.549"},
		{4.494, "4.49"},
		{-4.494, "-4.49"},
		{49.494, "49.5"},
		{324.23235, "324"},
		{999.4, "999"},
		{1000, "1,000"},
		{3498234.20394, "3,498,234"},
		{-3498234.20394, "-3,498,234"},
	}
	for _, c := range cases {
		got := Fnum(c.v)
		io.Pforan("%-16v => %q\n", c.v, got)
		chk.String(tst, got, c.want)
	}

	chk.String(tst, Format("hello"), "hello")
	chk.String(tst, Format(3), "3.00")
}

func Test_format02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("format02. rounding helpers")

	chk.Float64(tst, "RoundTo", 1e-15, RoundTo(7.3, 0.25), 7.25)
	chk.Float64(tst, "RoundTo", 1e-15, RoundTo(7.4, 0.5), 7.5)

	diams := []float64{0.125, 0.25, 0.375, 0.5}
	chk.Float64(tst, "NearestTo", 1e-17, NearestTo(0.24, diams), 0.25)
	chk.Float64(tst, "NearestTo", 1e-17, NearestTo(0.3, diams), 0.25)
	if !math.IsNaN(NearestTo(1, nil)) {
		tst.Errorf("NearestTo with empty list must be NaN")
	}
}
