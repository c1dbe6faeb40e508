// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stru

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/lod"
	"github.com/cpmech/gosteel/mat"
	"github.com/cpmech/gosteel/out"
	"github.com/cpmech/gosteel/props"
	"github.com/cpmech/gosteel/shp"
)

// Objecter is an evaluated structural object that can report itself as a
// record row
type Objecter interface {
	Record() *props.Record
}

// Group is an ordered, non-unique collection of evaluated objects
type Group struct {
	Name    string     // group name; becomes the table name
	Objects []Objecter // evaluated objects, in insertion order
}

// NewGroup returns a group holding the given objects
func NewGroup(name string, objects ...Objecter) *Group {
	return &Group{Name: name, Objects: objects}
}

// Add appends one object
func (o *Group) Add(obj Objecter) {
	o.Objects = append(o.Objects, obj)
}

// Evaluate collects the record of every object into a table, one row per
// object in insertion order
func (o *Group) Evaluate() *out.Table {
	records := make([]*props.Record, len(o.Objects))
	for i, obj := range o.Objects {
		records[i] = obj.Record()
	}
	return out.NewTable(o.Name, records)
}

// FromCheck builds a group from a check definition, constructing one member,
// bolt or weld per item according to the check kind
func FromCheck(check *inp.Check) (*Group, error) {
	g := &Group{Name: check.Name}
	if g.Name == "" {
		g.Name = check.Key
	}
	for _, item := range check.Items {
		primary, secondary := item.Primary, item.Secondary
		if primary == "" {
			primary = "x"
		}
		if secondary == "" {
			secondary = "y"
		}
		loads, err := lod.NewOriented(primary, secondary, item.Fx, item.Fy, item.Fz, item.Mx, item.My, item.Mz)
		if err != nil {
			return nil, err
		}
		material, err := itemMaterial(item, check.Material)
		if err != nil {
			return nil, err
		}
		switch check.Kind {
		case "member":
			shape, err := shp.Resolve(item.Shape, shapeParams(item))
			if err != nil {
				return nil, err
			}
			m, err := NewMember(item.Name, shape, loads, material, nil)
			if err != nil {
				return nil, err
			}
			m.Desc = item.Desc
			g.Add(m)
		case "bolt":
			b, err := NewBolt(&BoltInput{
				Name:            item.Name,
				Number:          item.Number,
				D:               item.D,
				R:               item.R,
				ThreadClass:     item.ThreadClass,
				FU:              item.FU,
				FNT:             item.FNT,
				FNV:             item.FNV,
				ThreadsExcluded: item.ThreadsExcl,
			}, loads, material)
			if err != nil {
				return nil, err
			}
			b.Desc = item.Desc
			g.Add(b)
		case "weld":
			w, err := NewWeld(&WeldInput{
				Name:              item.Name,
				Shape:             item.Shape,
				D:                 item.D,
				B:                 item.B,
				S:                 item.S,
				WeldType:          item.WeldType,
				Radius:            item.Radius,
				FlareGrooveFactor: item.FlareGrooveFactor,
				NormalAllowable:   item.NormalAllowable,
				TensileAllowable:  item.TensileAllowable,
				ShearAllowable:    item.ShearAllowable,
			}, loads, material)
			if err != nil {
				return nil, err
			}
			w.Desc = item.Desc
			g.Add(w)
		default:
			return nil, chk.Err("check kind %q is invalid", check.Kind)
		}
	}
	return g, nil
}

// shapeParams maps the dimensions of a check item to shape parameters,
// skipping absent ones
func shapeParams(item *inp.CheckItem) (prms dbf.Params) {
	add := func(n string, v float64) {
		if v != 0 {
			prms = append(prms, &dbf.P{N: n, V: v})
		}
	}
	add("w", item.W)
	add("h", item.H)
	add("t", item.T)
	add("r", item.R)
	add("d", item.D)
	return
}

// itemMaterial resolves the material of a check item: a library name when
// given (falling back to the check default), explicit properties otherwise,
// or nil when the item has neither
func itemMaterial(item *inp.CheckItem, fallback string) (*mat.Material, error) {
	name := item.Material
	if name == "" {
		name = fallback
	}
	if name != "" {
		return mat.Find(name)
	}
	var prms dbf.Params
	add := func(n string, v float64) {
		if v != 0 {
			prms = append(prms, &dbf.P{N: n, V: v})
		}
	}
	add("E", item.E)
	add("Fy", item.MatFy)
	add("Fu", item.MatFu)
	add("rho", item.Rho)
	if len(prms) == 0 {
		return nil, nil
	}
	return mat.New("custom", prms)
}
