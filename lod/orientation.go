// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lod

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// axis table indices
const (
	axX    = iota // +x
	axNegX        // -x
	axY           // +y
	axNegY        // -y
	axZ           // +z
	axNegZ        // -z
)

// axisIndex validates an axis label and returns its table index
func axisIndex(label string) (int, error) {
	switch label {
	case "x":
		return axX, nil
	case "-x":
		return axNegX, nil
	case "y":
		return axY, nil
	case "-y":
		return axNegY, nil
	case "z":
		return axZ, nil
	case "-z":
		return axNegZ, nil
	}
	return -1, chk.Err("load axis label %q is invalid; must match one of x, -x, y, -y, z, -z", label)
}

// sameAxis tells whether two valid labels reference the same physical axis,
// ignoring direction
func sameAxis(a, b string) bool {
	return strings.TrimPrefix(a, "-") == strings.TrimPrefix(b, "-")
}

// frames encodes the reorientation of loads from the global frame into a
// local frame rotated by multiples of 90 degrees. Rows are keyed by
// (primary, secondary): primary is the global axis the local x-direction
// points along, secondary the axis the local y-direction points along.
// Entry k of a row holds the signed 1-based index of the raw component
// supplying local component k, components ordered fx, fy, fz, mx, my, mz.
// Pairs naming the same physical axis are invalid and hold nil.
var frames = [6][6]*[6]int8{
	axX: {
		axY:    {1, 2, 3, 4, 5, 6},
		axNegY: {1, -2, -3, 4, -5, -6},
		axZ:    {1, -3, 2, 4, -6, 5},
		axNegZ: {1, 3, -2, 4, 6, -5},
	},
	axNegX: {
		axY:    {-1, 2, -3, -4, 5, -6},
		axNegY: {-1, -2, 3, -4, -5, 6},
		axZ:    {-1, -3, 2, -4, -6, 5},
		axNegZ: {-1, 3, -2, -4, 6, -5},
	},
	axY: {
		axX:    {2, 1, -3, 5, 4, -6},
		axNegX: {-2, 1, 3, -5, 4, 6},
		axZ:    {2, 3, 1, 5, 6, 4},
		axNegZ: {-2, 3, -1, -5, 6, -4},
	},
	axNegY: {
		axX:    {2, 1, 3, 5, 4, 6},
		axNegX: {-2, 1, -3, -5, 4, -6},
		axZ:    {-2, 3, -1, -5, 6, -4},
		axNegZ: {2, 3, 1, 5, 6, 4},
	},
	axZ: {
		axX:    {3, 1, 2, 6, 4, 5},
		axNegX: {-3, -1, 2, -6, -4, 5},
		axY:    {3, 2, -1, 6, 5, -4},
		axNegY: {-3, -2, -1, -6, -5, -4},
	},
	axNegZ: {
		axX:    {-3, 1, -2, -6, 4, -5},
		axNegX: {3, -1, -2, 6, -4, -5},
		axY:    {-3, 2, 1, -6, 5, 4},
		axNegY: {3, -2, 1, 6, -5, 4},
	},
}

// orientation validates an axis pair and returns its component remapping
func orientation(primary, secondary string) (rot *[6]int8, err error) {
	p, err := axisIndex(primary)
	if err != nil {
		return
	}
	q, err := axisIndex(secondary)
	if err != nil {
		return
	}
	if sameAxis(primary, secondary) {
		return nil, chk.Err("load orientations are not a valid combination (primary=%s, secondary=%s)", primary, secondary)
	}
	return frames[p][q], nil
}

// Pairs returns all valid (primary, secondary) axis label pairs
func Pairs() (pairs [][]string) {
	labels := []string{"x", "-x", "y", "-y", "z", "-z"}
	for _, p := range labels {
		for _, q := range labels {
			if !sameAxis(p, q) {
				pairs = append(pairs, []string{p, q})
			}
		}
	}
	return
}
