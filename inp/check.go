// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckItem defines one structural object to be evaluated within a check
type CheckItem struct {

	// identification
	Name string `json:"name"` // name of this item
	Desc string `json:"desc"` // description

	// geometry: a standard label, a generic shape kind, or a weld shape kind
	Shape string  `json:"shape"` // e.g. "W8X31", "rectangle", "circle", "line", "box"
	W     float64 `json:"w"`     // width of generic shapes
	H     float64 `json:"h"`     // height of generic shapes
	T     float64 `json:"t"`     // wall thickness of hollow rectangles
	R     float64 `json:"r"`     // radius of circles
	D     float64 `json:"d"`     // diameter of circles, depth of weld shapes, bolt diameter
	B     float64 `json:"b"`     // width of box and double-line weld shapes

	// loads
	Fx        float64 `json:"f_x"`       // force in x
	Fy        float64 `json:"f_y"`       // force in y
	Fz        float64 `json:"f_z"`       // force in z
	Mx        float64 `json:"m_x"`       // moment about x
	My        float64 `json:"m_y"`       // moment about y
	Mz        float64 `json:"m_z"`       // moment about z
	Primary   string  `json:"primary"`   // axis the local +x points in; default "x"
	Secondary string  `json:"secondary"` // axis the local +y points in; default "y"

	// material: either a library name or explicit properties
	Material string  `json:"material"` // library material name; e.g. "A36"
	E        float64 `json:"E"`        // modulus of elasticity
	MatFy    float64 `json:"Fy"`       // minimum yield strength
	MatFu    float64 `json:"Fu"`       // minimum ultimate tensile strength
	Rho      float64 `json:"rho"`      // density

	// bolts
	Number      string  `json:"number"`       // number size; e.g. "#10" or "1/4"
	ThreadClass string  `json:"thread_class"` // "coarse" or "fine"; default "coarse"
	FU          float64 `json:"F_u"`          // nominal tensile strength for allowables
	FNT         float64 `json:"F_nt"`         // explicit nominal tensile stress
	FNV         float64 `json:"F_nv"`         // explicit nominal shear stress
	ThreadsExcl bool    `json:"threads_excluded_from_shear_planes"`

	// welds
	S                 float64 `json:"s"`                        // weld size
	WeldType          string  `json:"weld_type"`                // "fillet", "cjp", "pjp", "flare bevel", "flare v-groove"
	Radius            float64 `json:"radius"`                   // bend radius of flare welds
	FlareGrooveFactor float64 `json:"flare_groove_factor"`      // effective throat factor of flare welds
	NormalAllowable   float64 `json:"normal_allowable"`         // allowable for the combined normal stress
	TensileAllowable  float64 `json:"allowable_tensile_stress"` // allowable for max tensile comparisons
	ShearAllowable    float64 `json:"allowable_shear_stress"`   // allowable for shear comparisons
}

// Check holds all data defining a batch stress check read from a (.json) file
type Check struct {

	// input
	Name     string       `json:"name"`     // title of this check
	Kind     string       `json:"kind"`     // kind of items: "member", "bolt" or "weld"
	Desc     string       `json:"desc"`     // description
	Material string       `json:"material"` // default library material for all items
	Items    []*CheckItem `json:"items"`    // objects to evaluate

	// derived
	Key string // check key; e.g. lugs.json => lugs
}

// ReadCheck reads a check definition from a JSON file and fills in defaults
func ReadCheck(filename string) (*Check, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("cannot read check file %q", filename)
	}
	var o Check
	if err = json.Unmarshal(b, &o); err != nil {
		return nil, chk.Err("cannot unmarshal check file %q: %v", filename, err)
	}
	o.Key = io.FnKey(filepath.Base(filename))
	if o.Kind == "" {
		o.Kind = "member"
	}
	o.Kind = strings.ToLower(o.Kind)
	switch o.Kind {
	case "member", "bolt", "weld":
	default:
		return nil, chk.Err("check kind must be \"member\", \"bolt\" or \"weld\": %q is invalid", o.Kind)
	}
	if len(o.Items) == 0 {
		return nil, chk.Err("check file %q has no items", filename)
	}
	for _, it := range o.Items {
		if it.Primary == "" {
			it.Primary = "x"
		}
		if it.Secondary == "" {
			it.Secondary = "y"
		}
		if it.Material == "" {
			it.Material = o.Material
		}
		if it.ThreadClass == "" {
			it.ThreadClass = "coarse"
		}
		if it.WeldType == "" {
			it.WeldType = "fillet"
		}
	}
	return &o, nil
}

// GetInfo returns formatted information
func (o *Check) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
