// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stress implements 3D stress elements providing principal stresses,
// von Mises stress and stress intensity
package stress

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosteel/props"
)

// Element is a stress element with 3 normal and 3 shear stress components.
// Principal stresses and the derived quantities are computed once, at
// construction time.
type Element struct {

	// input
	Name string  // name of this element
	Sx   float64 // σ11
	Sy   float64 // σ22
	Sz   float64 // σ33
	Sxy  float64 // σ12
	Sxz  float64 // σ13
	Syz  float64 // σ23

	// derived
	P1, P2, P3 float64   // principal stresses, P1 ≥ P2 ≥ P3
	V1, V2, V3 []float64 // corresponding principal directions
	VonMises   float64   // von Mises stress
	Intensity  float64   // stress intensity: max |Pi - Pj|
	Tau1       float64   // first principal shear stress: (P1 - P3) / 2
	Tau2       float64   // second principal shear stress: (P1 - P2) / 2
	Tau3       float64   // third principal shear stress: (P2 - P3) / 2
}

// NewElement returns a new element given the six independent components
func NewElement(sx, sy, sz, sxy, sxz, syz float64) (*Element, error) {
	o := &Element{Sx: sx, Sy: sy, Sz: sz, Sxy: sxy, Sxz: sxz, Syz: syz}
	if err := o.compute(); err != nil {
		return nil, err
	}
	return o, nil
}

// NewFromMatrix returns a new element given a full 3x3 tensor. Only the upper
// triangle is read; symmetry is assumed.
func NewFromMatrix(a [][]float64) (*Element, error) {
	if len(a) != 3 || len(a[0]) != 3 || len(a[1]) != 3 || len(a[2]) != 3 {
		return nil, chk.Err("stress tensor must be a 3x3 matrix")
	}
	return NewElement(a[0][0], a[1][1], a[2][2], a[0][1], a[0][2], a[1][2])
}

// compute performs the eigen-decomposition and fills the derived quantities
func (o *Element) compute() error {
	t := mat.NewSymDense(3, []float64{
		o.Sx, o.Sxy, o.Sxz,
		o.Sxy, o.Sy, o.Syz,
		o.Sxz, o.Syz, o.Sz,
	})
	var eig mat.EigenSym
	if !eig.Factorize(t, true) {
		return chk.Err("eigen-decomposition of stress tensor %v failed", o)
	}
	vals := eig.Values(nil) // ascending
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	o.P1, o.P2, o.P3 = vals[2], vals[1], vals[0]
	o.V1 = []float64{vecs.At(0, 2), vecs.At(1, 2), vecs.At(2, 2)}
	o.V2 = []float64{vecs.At(0, 1), vecs.At(1, 1), vecs.At(2, 1)}
	o.V3 = []float64{vecs.At(0, 0), vecs.At(1, 0), vecs.At(2, 0)}
	d12, d23, d31 := o.P1-o.P2, o.P2-o.P3, o.P3-o.P1
	o.VonMises = math.Sqrt(0.5 * (d12*d12 + d23*d23 + d31*d31))
	o.Intensity = math.Max(math.Abs(d12), math.Max(math.Abs(d23), math.Abs(d31)))
	o.Tau1 = (o.P1 - o.P3) / 2
	o.Tau2 = (o.P1 - o.P2) / 2
	o.Tau3 = (o.P2 - o.P3) / 2
	return nil
}

// Syx returns the σ12 component
func (o *Element) Syx() float64 { return o.Sxy }

// Szy returns the σ23 component
func (o *Element) Szy() float64 { return o.Syz }

// Szx returns the σ13 component
func (o *Element) Szx() float64 { return o.Sxz }

// MaxShear returns the maximum shear stress; i.e. the first principal shear
func (o *Element) MaxShear() float64 { return o.Tau1 }

// Principals returns the principal stresses as a list, P1 ≥ P2 ≥ P3
func (o *Element) Principals() []float64 {
	return []float64{o.P1, o.P2, o.P3}
}

// PrincipalDirs returns the principal direction vectors, in the same order as
// Principals
func (o *Element) PrincipalDirs() [][]float64 {
	return [][]float64{o.V1, o.V2, o.V3}
}

// Matrix returns the full 3x3 stress tensor
func (o *Element) Matrix() (a [][]float64) {
	a = utl.Alloc(3, 3)
	a[0][0], a[0][1], a[0][2] = o.Sx, o.Sxy, o.Sxz
	a[1][0], a[1][1], a[1][2] = o.Sxy, o.Sy, o.Syz
	a[2][0], a[2][1], a[2][2] = o.Sxz, o.Syz, o.Sz
	return
}

// Record returns the six components as an ordered record
func (o *Element) Record() *props.Record {
	r := props.NewRecord()
	r.SetNum("Sx", o.Sx)
	r.SetNum("Sy", o.Sy)
	r.SetNum("Sz", o.Sz)
	r.SetNum("Sxy", o.Sxy)
	r.SetNum("Syz", o.Syz)
	r.SetNum("Sxz", o.Sxz)
	return r
}

// String returns the components in the row-wise upper triangle order
func (o *Element) String() string {
	return io.Sf("[%6.0f,%6.0f,%6.0f,%6.0f,%6.0f,%6.0f]", o.Sx, o.Sxy, o.Sxz, o.Sy, o.Syz, o.Sz)
}

// SRSS returns the square root of the sum of squares of the arguments
func SRSS(vals ...float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v * v
	}
	return math.Sqrt(sum)
}
