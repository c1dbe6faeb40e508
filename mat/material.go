// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mat implements materials: the embedded library of standard grades
// and custom materials defined by parameters
package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/props"
)

// Material holds the physical properties used by stress evaluations
type Material struct {
	Name string  // designation; e.g. "A36"
	E    float64 // modulus of elasticity
	Fy   float64 // minimum yield strength
	Fu   float64 // minimum ultimate tensile strength
	Rho  float64 // density

	data *inp.MatData // library document; nil for custom materials
}

// Find returns a material from the embedded library given its designation;
// e.g. "A36", "A992" or "A193-B7"
func Find(name string) (*Material, error) {
	d, err := inp.FindMaterial(name)
	if err != nil {
		return nil, err
	}
	return &Material{
		Name: d.Name,
		E:    d.Properties["modulus of elasticity"],
		Fy:   d.Properties["YS_min"],
		Fu:   d.Properties["UTS_min"],
		Rho:  d.Properties["density"],
		data: d,
	}, nil
}

// New returns a custom material given named parameters; e.g.
//  New("inconel 718", dbf.Params{
//      &fun.P{N: "E", V: 29e6},
//      &fun.P{N: "Fy", V: 150000},
//  })
func New(name string, prms dbf.Params) (*Material, error) {
	o := &Material{Name: name}
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "Fy", "YS":
			o.Fy = p.V
		case "Fu", "Futs", "UTS":
			o.Fu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return nil, chk.Err("material: parameter named %q is incorrect", p.N)
		}
	}
	return o, nil
}

// Prop returns a named property resolving the usual abbreviations, so that
// "Fy" and "YS" both find the minimum yield strength. Library materials also
// expose their raw document properties
func (o *Material) Prop(name string) (float64, bool) {
	if full, ok := props.MaterialAliases[name]; ok {
		name = full
	}
	switch name {
	case "modulus of elasticity":
		return o.E, true
	case "YS_min":
		return o.Fy, true
	case "UTS_min":
		return o.Fu, true
	case "density":
		return o.Rho, true
	}
	if o.data != nil {
		v, ok := o.data.Properties[name]
		return v, ok
	}
	return 0, false
}

// Composition returns one chemical composition limit of a library material;
// e.g. Composition("C_max") of A36 gives "0.26"
func (o *Material) Composition(element string) (string, bool) {
	if o.data == nil {
		return "", false
	}
	v, ok := o.data.Composition[element]
	return v, ok
}

// Meta returns one metadata entry of a library material; e.g. "standard",
// "category" or "forms"
func (o *Material) Meta(key string) (string, bool) {
	if o.data == nil {
		return "", false
	}
	v, ok := o.data.Meta[key]
	return v, ok
}

// Record returns the material contribution to result records
func (o *Material) Record() *props.Record {
	rec := props.NewRecord()
	rec.SetNum("E", o.E)
	rec.SetNum("Fy", o.Fy)
	rec.SetNum("Fu", o.Fu)
	rec.SetNum("rho", o.Rho)
	return rec
}

// String returns a one-line summary of this material
func (o *Material) String() string {
	return io.Sf("%s: E=%s Fy=%s Fu=%s rho=%s", o.Name,
		props.Fnum(o.E), props.Fnum(o.Fy), props.Fnum(o.Fu), props.Fnum(o.Rho))
}
