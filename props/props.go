// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package props defines the canonical property names, categories and aliases
// shared by cross-sections, loads, materials and structural objects
package props

import "strings"

// Kind identifies the category that owns a property name
type Kind int

// property categories
const (
	Unknown   Kind = iota // not a canonical property
	Shape                 // cross-section property
	Load                  // load component or orientation
	Material              // material property
	Component             // component stress
	Resultant             // resultant stress
)

// ShapeProps lists the canonical cross-section property names, in report order
var ShapeProps = []string{
	"A", "w", "h", "b", "d", "bf", "bfdet", "t", "tf", "tw",
	"twdet", "tdes", "tnom", "x", "y", "eo", "xp", "yp", "zA", "zB", "zC",
	"wA", "wB", "wC", "Ix", "Iy", "Iz", "Iw", "Sx", "Sy", "Sz", "Zx", "Zy",
	"rx", "ry", "rz", "r", "Zw", "Zz", "J", "Cw", "C", "Wno", "Sw1", "Sw2",
	"Sw3", "H", "cx_left", "cx_right", "cy_high", "cy_low", "cr_max", "cr",
	"A_g", "A_e", "Ag", "Ae", "Aw", "A_w", "label", "cw", "cz", "h_x", "h_y",
	"hx", "hy", "height", "width", "s", "cx_max", "cy_max",
}

// LoadProps lists the canonical load property names, in report order
var LoadProps = []string{
	"fx", "fy", "fz", "mx", "my", "mz", "mw", "m_minor", "m_major",
	"primary", "secondary", "f_x", "f_y", "f_z", "m_x", "m_y", "m_z",
}

// MaterialProps lists the canonical material property names, in report order
var MaterialProps = []string{"Fy", "YS", "Fu", "Futs", "UTS", "rho", "E"}

// ComponentStresses lists the component stresses computed by evaluators
var ComponentStresses = []string{
	"Sa",        // direct axial stress
	"Svx",       // direct shear stress in x
	"Svy",       // direct shear stress in y
	"Txy_lr",    // torsional stress at lower-right corner
	"Txy_ll",    // torsional stress at lower-left corner
	"Txy_ur",    // torsional stress at upper-right corner
	"Txy_ul",    // torsional stress at upper-left corner
	"Sbx_low",   // bending stress about x-x, lower fiber
	"Sbx_high",  // bending stress about x-x, upper fiber
	"Sby_left",  // bending stress about y-y, left fiber
	"Sby_right", // bending stress about y-y, right fiber
}

// ResultantStresses lists the resultant stresses computed by evaluators
var ResultantStresses = []string{
	"von_mises",
	"max_tensile",
	"max_shear",
	"max_bending",
	"membrane_plus_bending_min",
	"membrane_plus_bending_max",
}

// MaterialAliases maps material property abbreviations to the keys used by
// the material library records
var MaterialAliases = map[string]string{
	"Fy":   "YS_min",
	"YS":   "YS_min",
	"Fu":   "UTS_min",
	"Futs": "UTS_min",
	"UTS":  "UTS_min",
	"rho":  "density",
	"E":    "modulus of elasticity",
}

// kinds maps every canonical name, raw and standardized, to its category
var kinds map[string]Kind

func init() {
	kinds = make(map[string]Kind)
	add := func(names []string, kind Kind) {
		for _, name := range names {
			if _, ok := kinds[name]; !ok {
				kinds[name] = kind
			}
			std := Standardized(name)
			if _, ok := kinds[std]; !ok {
				kinds[std] = kind
			}
		}
	}
	add(ShapeProps, Shape)
	add(LoadProps, Load)
	add(MaterialProps, Material)
	add(ComponentStresses, Component)
	add(ResultantStresses, Resultant)
}

// Standardized returns a property name with subscript underscores removed;
// e.g. "f_x" => "fx"
func Standardized(name string) string {
	return strings.Replace(name, "_", "", -1)
}

// Lookup returns the category owning the given property name. Raw names win
// over standardized ones so that e.g. "cx_left" resolves directly.
func Lookup(name string) Kind {
	if kind, ok := kinds[name]; ok {
		return kind
	}
	if kind, ok := kinds[Standardized(name)]; ok {
		return kind
	}
	return Unknown
}

// Canonical returns the full canonical column ordering used by result tables:
// shape, material, load, component stresses, resultant stresses
func Canonical() (cols []string) {
	n := len(ShapeProps) + len(MaterialProps) + len(LoadProps) + len(ComponentStresses) + len(ResultantStresses)
	cols = make([]string, 0, n)
	cols = append(cols, ShapeProps...)
	cols = append(cols, MaterialProps...)
	cols = append(cols, LoadProps...)
	cols = append(cols, ComponentStresses...)
	cols = append(cols, ResultantStresses...)
	return
}
