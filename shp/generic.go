// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gosteel/props"
)

// Circle is a solid circular section defined by radius r or diameter d
type Circle struct {
	R   float64 // radius
	D   float64 // diameter
	sec Section
}

// add shape to factory
func init() {
	allocators["circle"] = func(prms dbf.Params) (Shaper, error) {
		var r, d float64
		for _, p := range prms {
			switch p.N {
			case "r":
				r = p.V
			case "d":
				d = p.V
			default:
				return nil, chk.Err("circle: parameter named %q is incorrect", p.N)
			}
		}
		return NewCircle(r, d)
	}
}

// NewCircle returns a circle given its radius r or diameter d; the radius
// takes precedence
func NewCircle(r, d float64) (*Circle, error) {
	if r <= 0 {
		if d <= 0 {
			return nil, chk.Err("circle needs a positive radius or diameter: r=%g, d=%g", r, d)
		}
		r = d / 2
	}
	o := &Circle{R: r, D: 2 * r}
	i := math.Pi * math.Pow(r, 4) / 4
	o.sec = Section{
		Label: "Circle",
		A:     math.Pi * r * r,
		Ix:    i,
		Iy:    i,
		J:     i,
		CxLeft: -r, CxRight: r,
		CyLow: -r, CyHigh: r,
	}
	return o, nil
}

// Sec returns the evaluated section properties
func (o *Circle) Sec() *Section { return &o.sec }

// Zx returns the plastic section modulus
func (o *Circle) Zx() float64 { return o.D * o.D * o.D / 6 }

// Sx returns the elastic section modulus
func (o *Circle) Sx() float64 { return o.sec.Ix / o.R }

// Value returns a named property of this circle
func (o *Circle) Value(name string) (float64, bool) {
	name = props.Standardized(name)
	if v, ok := secValue(&o.sec, name); ok {
		return v, true
	}
	switch name {
	case "r", "c":
		return o.R, true
	case "d", "width", "height":
		return o.D, true
	case "I":
		return o.sec.Ix, true
	case "Z", "Zx", "Zy":
		return o.Zx(), true
	case "S", "Sx", "Sy":
		return o.Sx(), true
	}
	return 0, false
}

// Record returns the ordered property record of this circle
func (o *Circle) Record() *props.Record {
	rec := props.NewRecord()
	rec.SetNum("d", o.D)
	rec.SetNum("r", o.R)
	rec.SetNum("A", o.sec.A)
	rec.SetNum("Ix", o.sec.Ix)
	rec.SetNum("Zx", o.Zx())
	rec.SetNum("J", o.sec.J)
	return rec
}

// Rectangle is a solid rectangular section defined by width w and height h
type Rectangle struct {
	W   float64 // width
	H   float64 // height
	sec Section
}

// add shape to factory
func init() {
	allocators["rectangle"] = func(prms dbf.Params) (Shaper, error) {
		var w, h float64
		for _, p := range prms {
			switch p.N {
			case "w":
				w = p.V
			case "h":
				h = p.V
			default:
				return nil, chk.Err("rectangle: parameter named %q is incorrect", p.N)
			}
		}
		return NewRectangle(w, h)
	}
}

// NewRectangle returns a rectangle given its width w and height h
func NewRectangle(w, h float64) (*Rectangle, error) {
	if w <= 0 || h <= 0 {
		return nil, chk.Err("rectangle needs positive dimensions: w=%g, h=%g", w, h)
	}
	o := &Rectangle{W: w, H: h}

	// torsion constant from Collins, Mechanical Design of Machine Elements
	// and Machines, 2nd Ed, Table 4.5
	a := math.Max(w, h) / 2
	b := math.Min(w, h) / 2
	j := a * math.Pow(b, 3) * (16.0/3.0 - 3.36*b/a*(1.0-math.Pow(b, 4)/(12.0*math.Pow(a, 4))))

	o.sec = Section{
		Label: "Rectangle",
		A:     w * h,
		Ix:    w * h * h * h / 12.0,
		Iy:    h * w * w * w / 12.0,
		J:     j,
		CxLeft: -w / 2, CxRight: w / 2,
		CyLow: -h / 2, CyHigh: h / 2,
	}
	return o, nil
}

// Sec returns the evaluated section properties
func (o *Rectangle) Sec() *Section { return &o.sec }

// Zx returns the plastic section modulus about x-x
func (o *Rectangle) Zx() float64 { return o.W * o.H * o.H / 4 }

// Zy returns the plastic section modulus about y-y
func (o *Rectangle) Zy() float64 { return o.H * o.W * o.W / 4 }

// Sx returns the elastic section modulus about x-x
func (o *Rectangle) Sx() float64 { return o.sec.Ix / (o.H / 2) }

// Sy returns the elastic section modulus about y-y
func (o *Rectangle) Sy() float64 { return o.sec.Iy / (o.W / 2) }

// Rx returns the radius of gyration about x-x
func (o *Rectangle) Rx() float64 { return math.Sqrt(o.sec.Ix / o.sec.A) }

// Ry returns the radius of gyration about y-y
func (o *Rectangle) Ry() float64 { return math.Sqrt(o.sec.Iy / o.sec.A) }

// Value returns a named property of this rectangle. The thickness t is an
// alias for the width, used by weld and bolt checks
func (o *Rectangle) Value(name string) (float64, bool) {
	name = props.Standardized(name)
	if v, ok := secValue(&o.sec, name); ok {
		return v, true
	}
	switch name {
	case "w", "width", "t":
		return o.W, true
	case "h", "height":
		return o.H, true
	case "cx":
		return o.W / 2, true
	case "cy":
		return o.H / 2, true
	case "Zx":
		return o.Zx(), true
	case "Zy":
		return o.Zy(), true
	case "Sx":
		return o.Sx(), true
	case "Sy":
		return o.Sy(), true
	case "rx":
		return o.Rx(), true
	case "ry":
		return o.Ry(), true
	}
	return 0, false
}

// Record returns the ordered property record of this rectangle
func (o *Rectangle) Record() *props.Record {
	return baseRecord(&o.sec, o.H, o.W)
}

// HollowRectangle is a hollow rectangular section defined by outside width w,
// outside height h and wall thickness t
type HollowRectangle struct {
	W   float64 // outside width
	H   float64 // outside height
	T   float64 // wall thickness
	sec Section
}

// add shape to factory
func init() {
	allocators["hollow rectangle"] = func(prms dbf.Params) (Shaper, error) {
		var w, h, t float64
		for _, p := range prms {
			switch p.N {
			case "w":
				w = p.V
			case "h":
				h = p.V
			case "t":
				t = p.V
			default:
				return nil, chk.Err("hollow rectangle: parameter named %q is incorrect", p.N)
			}
		}
		return NewHollowRectangle(w, h, t)
	}
}

// NewHollowRectangle returns a hollow rectangle given its outside width w,
// outside height h and wall thickness t
func NewHollowRectangle(w, h, t float64) (*HollowRectangle, error) {
	if w <= 0 || h <= 0 || t <= 0 {
		return nil, chk.Err("hollow rectangle needs positive dimensions: w=%g, h=%g, t=%g", w, h, t)
	}
	if 2*t >= math.Min(w, h) {
		return nil, chk.Err("hollow rectangle walls overlap: t=%g with w=%g, h=%g", t, w, h)
	}
	o := &HollowRectangle{W: w, H: h, T: t}

	// torsion constant from Bredt's formula for a closed thin-walled box
	j := 2 * t * math.Pow(w-t, 2) * math.Pow(h-t, 2) / (w + h - 2*t)

	o.sec = Section{
		Label: "Hollow Rectangle",
		A:     h*w - (h-2*t)*(w-2*t),
		Ix:    (w*math.Pow(h, 3) - (w-2*t)*math.Pow(h-2*t, 3)) / 12.0,
		Iy:    (h*math.Pow(w, 3) - (h-2*t)*math.Pow(w-2*t, 3)) / 12.0,
		J:     j,
		CxLeft: -w / 2, CxRight: w / 2,
		CyLow: -h / 2, CyHigh: h / 2,
	}
	return o, nil
}

// Sec returns the evaluated section properties
func (o *HollowRectangle) Sec() *Section { return &o.sec }

// Zx returns the plastic section modulus about x-x
func (o *HollowRectangle) Zx() float64 {
	return o.W*o.H*o.H/4 - (o.W-2*o.T)*math.Pow(o.H/2-o.T, 2)
}

// Zy returns the plastic section modulus about y-y
func (o *HollowRectangle) Zy() float64 {
	return o.H*o.W*o.W/4 - (o.H-2*o.T)*math.Pow(o.W/2-o.T, 2)
}

// Value returns a named property of this hollow rectangle
func (o *HollowRectangle) Value(name string) (float64, bool) {
	name = props.Standardized(name)
	if v, ok := secValue(&o.sec, name); ok {
		return v, true
	}
	switch name {
	case "w", "width":
		return o.W, true
	case "h", "height":
		return o.H, true
	case "t":
		return o.T, true
	case "cx":
		return o.W / 2, true
	case "cy":
		return o.H / 2, true
	case "Zx":
		return o.Zx(), true
	case "Zy":
		return o.Zy(), true
	}
	return 0, false
}

// Record returns the ordered property record of this hollow rectangle
func (o *HollowRectangle) Record() *props.Record {
	return baseRecord(&o.sec, o.H, o.W)
}

// baseRecord returns the default property record shared by rectangular and
// standard sections
func baseRecord(sec *Section, height, width float64) *props.Record {
	rec := props.NewRecord()
	rec.SetNum("A", sec.A)
	rec.SetNum("height", height)
	rec.SetNum("width", width)
	rec.SetNum("Ix", sec.Ix)
	rec.SetNum("Iy", sec.Iy)
	rec.SetNum("J", sec.J)
	rec.SetNum("cx_max", sec.CxMax())
	rec.SetNum("cy_max", sec.CyMax())
	return rec
}
