// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lod implements generalized force/moment loads with right-angle
// frame reorientation, and vector loads acting at a point
package lod

import (
	"github.com/cpmech/gosteel/props"
)

// loadKeys are the record names of the six components, in order
var loadKeys = []string{"f_x", "f_y", "f_z", "m_x", "m_y", "m_z"}

// Load holds three force and three moment components in a declared local
// orientation. The orientation is given by two axis labels: primary is the
// global axis the element's local x-direction points along, secondary the
// axis the local y-direction points along. A load is immutable after
// construction.
type Load struct {

	// input
	Name      string // load case name
	Primary   string // axis of the local x-direction
	Secondary string // axis of the local y-direction

	// raw components as given, in the global frame
	fx, fy, fz float64
	mx, my, mz float64

	// derived
	rot *[6]int8 // component remapping; nil in the canonical frame
}

// New returns a load in the canonical (x,y) orientation
func New(fx, fy, fz, mx, my, mz float64) *Load {
	return &Load{
		Name:      "<unnamed>",
		Primary:   "x",
		Secondary: "y",
		fx:        fx, fy: fy, fz: fz,
		mx: mx, my: my, mz: mz,
	}
}

// NewOriented returns a load whose local frame is declared by the primary
// and secondary axis labels, e.g. ("z", "-x"). An error is returned for a
// malformed label or when both labels reference the same physical axis.
func NewOriented(primary, secondary string, fx, fy, fz, mx, my, mz float64) (o *Load, err error) {
	rot, err := orientation(primary, secondary)
	if err != nil {
		return nil, err
	}
	o = New(fx, fy, fz, mx, my, mz)
	o.Primary = primary
	o.Secondary = secondary
	o.rot = rot
	return
}

// Transformed tells whether the declared orientation differs from the
// canonical (x,y) frame
func (o *Load) Transformed() bool {
	return !(o.Primary == "x" && o.Secondary == "y")
}

// component returns the i-th local component (0..5 = fx..mz)
func (o *Load) component(i int) float64 {
	raw := [6]float64{o.fx, o.fy, o.fz, o.mx, o.my, o.mz}
	if o.rot == nil {
		return raw[i]
	}
	j := int(o.rot[i])
	if j < 0 {
		return -raw[-j-1]
	}
	return raw[j-1]
}

// Value returns the six load components as seen in the local orientation
func (o *Load) Value() []float64 {
	v := make([]float64, 6)
	for i := 0; i < 6; i++ {
		v[i] = o.component(i)
	}
	return v
}

// Fx returns the local x force component
func (o *Load) Fx() float64 { return o.component(0) }

// Fy returns the local y force component
func (o *Load) Fy() float64 { return o.component(1) }

// Fz returns the local z force component
func (o *Load) Fz() float64 { return o.component(2) }

// Mx returns the local moment about the x-axis
func (o *Load) Mx() float64 { return o.component(3) }

// My returns the local moment about the y-axis
func (o *Load) My() float64 { return o.component(4) }

// Mz returns the local moment about the z-axis
func (o *Load) Mz() float64 { return o.component(5) }

// Forces returns the raw, untransformed force components
func (o *Load) Forces() []float64 {
	return []float64{o.fx, o.fy, o.fz}
}

// Moments returns the raw, untransformed moment components
func (o *Load) Moments() []float64 {
	return []float64{o.mx, o.my, o.mz}
}

// Add returns the componentwise sum of the local values of two loads, as a
// new load in the canonical orientation
func (o *Load) Add(b *Load) *Load {
	va, vb := o.Value(), b.Value()
	return New(va[0]+vb[0], va[1]+vb[1], va[2]+vb[2], va[3]+vb[3], va[4]+vb[4], va[5]+vb[5])
}

// Scale returns the local values multiplied by s, as a new load in the
// canonical orientation
func (o *Load) Scale(s float64) *Load {
	v := o.Value()
	return New(s*v[0], s*v[1], s*v[2], s*v[3], s*v[4], s*v[5])
}

// Record returns the load properties as an ordered record with components
// given in the local orientation
func (o *Load) Record() *props.Record {
	r := props.NewRecord()
	v := o.Value()
	for i, key := range loadKeys {
		r.SetNum(key, v[i])
	}
	r.Set("primary", o.Primary)
	r.Set("secondary", o.Secondary)
	return r
}

// String returns the nonzero local components, e.g. "f_z=100   m_x=1,200"
func (o *Load) String() (l string) {
	v := o.Value()
	for i, key := range loadKeys {
		if v[i] != 0 {
			if l != "" {
				l += "   "
			}
			l += key + "=" + props.Fnum(v[i])
		}
	}
	return
}
