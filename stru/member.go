// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stru

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/cpmech/gosteel/lod"
	"github.com/cpmech/gosteel/mat"
	"github.com/cpmech/gosteel/shp"
)

// Member is a structural member: a plain Object with no specialization
type Member struct {
	Object
}

// NewMember returns an evaluated member. The material may be nil and a nil
// loads means an unloaded member. opts may carry:
//  "allowable" -- allowable stress for later comparisons
func NewMember(name string, shape shp.Shaper, loads *lod.Load, material *mat.Material, opts dbf.Params) (*Member, error) {
	o := new(Member)
	if err := o.init(name, shape, loads, material); err != nil {
		return nil, err
	}
	for _, p := range opts {
		switch p.N {
		case "allowable":
			o.Allowable = p.V
		default:
			return nil, chk.Err("member: parameter named %q is incorrect", p.N)
		}
	}
	return o, nil
}
