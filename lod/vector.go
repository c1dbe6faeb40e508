// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lod

// Factor is a named scalar load multiplier
type Factor struct {
	Name  string
	Value float64
}

// NewFactor returns a named factor
func NewFactor(name string, value float64) *Factor {
	return &Factor{name, value}
}

// factorValue returns the multiplier of f, taking nil as unit
func factorValue(f *Factor) float64 {
	if f == nil {
		return 1
	}
	return f.Value
}

// cross returns the cross product a x b of two 3-vectors
func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Force is a 3-D force vector acting at position R relative to the point of
// interest; the position yields the moment of the force about that point
// and defaults to the origin so the moment is zero by default.
type Force struct {
	Name   string
	Fraw   []float64 // raw force components
	R      []float64 // position of application
	Factor *Factor   // optional scaling factor
}

// NewForce returns a force vector acting at position r
func NewForce(f, r []float64) *Force {
	if r == nil {
		r = []float64{0, 0, 0}
	}
	return &Force{Fraw: f, R: r}
}

// F returns the evaluated force components, raw times factor
func (o *Force) F() []float64 {
	s := factorValue(o.Factor)
	return []float64{s * o.Fraw[0], s * o.Fraw[1], s * o.Fraw[2]}
}

// M returns the moment of the force about the point of interest, R x F
func (o *Force) M() []float64 {
	return cross(o.R, o.F())
}

// X returns the evaluated x component
func (o *Force) X() float64 { return factorValue(o.Factor) * o.Fraw[0] }

// Y returns the evaluated y component
func (o *Force) Y() float64 { return factorValue(o.Factor) * o.Fraw[1] }

// Z returns the evaluated z component
func (o *Force) Z() float64 { return factorValue(o.Factor) * o.Fraw[2] }

// Add returns the sum of the raw components of two forces as a new force at
// the origin
func (o *Force) Add(b *Force) *Force {
	return NewForce([]float64{
		o.Fraw[0] + b.Fraw[0],
		o.Fraw[1] + b.Fraw[1],
		o.Fraw[2] + b.Fraw[2],
	}, nil)
}

// Scale returns this force scaled by s, preserving name, position and factor
func (o *Force) Scale(s float64) *Force {
	return &Force{
		Name:   o.Name,
		Fraw:   []float64{s * o.Fraw[0], s * o.Fraw[1], s * o.Fraw[2]},
		R:      o.R,
		Factor: o.Factor,
	}
}

// Moment is a 3-D moment vector
type Moment struct {
	Name   string
	Mraw   []float64 // raw moment components
	Factor *Factor   // optional scaling factor
}

// NewMoment returns a moment vector
func NewMoment(m []float64) *Moment {
	return &Moment{Mraw: m}
}

// M returns the evaluated moment components, raw times factor
func (o *Moment) M() []float64 {
	s := factorValue(o.Factor)
	return []float64{s * o.Mraw[0], s * o.Mraw[1], s * o.Mraw[2]}
}

// Add returns the sum of the raw components of two moments
func (o *Moment) Add(b *Moment) *Moment {
	return NewMoment([]float64{
		o.Mraw[0] + b.Mraw[0],
		o.Mraw[1] + b.Mraw[1],
		o.Mraw[2] + b.Mraw[2],
	})
}

// Scale returns this moment scaled by s, preserving name and factor
func (o *Moment) Scale(s float64) *Moment {
	return &Moment{
		Name:   o.Name,
		Mraw:   []float64{s * o.Mraw[0], s * o.Mraw[1], s * o.Mraw[2]},
		Factor: o.Factor,
	}
}

// CombinedLoad gathers forces and moments acting at a common point so force
// and moment summations can be performed
type CombinedLoad struct {
	Name    string
	Forces  []*Force
	Moments []*Moment
}

// F returns the sum of the evaluated force components
func (o *CombinedLoad) F() []float64 {
	sum := []float64{0, 0, 0}
	for _, force := range o.Forces {
		f := force.F()
		sum[0] += f[0]
		sum[1] += f[1]
		sum[2] += f[2]
	}
	return sum
}

// M returns the sum of the force moments and the applied moments
func (o *CombinedLoad) M() []float64 {
	sum := []float64{0, 0, 0}
	for _, force := range o.Forces {
		m := force.M()
		sum[0] += m[0]
		sum[1] += m[1]
		sum[2] += m[2]
	}
	for _, moment := range o.Moments {
		m := moment.M()
		sum[0] += m[0]
		sum[1] += m[1]
		sum[2] += m[2]
	}
	return sum
}

// Fx returns the x component of the force summation
func (o *CombinedLoad) Fx() float64 { return o.F()[0] }

// Fy returns the y component of the force summation
func (o *CombinedLoad) Fy() float64 { return o.F()[1] }

// Fz returns the z component of the force summation
func (o *CombinedLoad) Fz() float64 { return o.F()[2] }

// Mx returns the x component of the moment summation
func (o *CombinedLoad) Mx() float64 { return o.M()[0] }

// My returns the y component of the moment summation
func (o *CombinedLoad) My() float64 { return o.M()[1] }

// Mz returns the z component of the moment summation
func (o *CombinedLoad) Mz() float64 { return o.M()[2] }

// AsLoad returns the summations as a generic load in the canonical frame
func (o *CombinedLoad) AsLoad() *Load {
	f, m := o.F(), o.M()
	l := New(f[0], f[1], f[2], m[0], m[1], m[2])
	if o.Name != "" {
		l.Name = o.Name
	}
	return l
}
