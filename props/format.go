// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Format returns a compact representation of a record value. Strings pass
// through unchanged; numbers go through Fnum.
func Format(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case int:
		return Fnum(float64(v))
	case float64:
		return Fnum(v)
	}
	return io.Sf("%v", val)
}

// Fnum formats a number keeping more decimals at small magnitudes and
// inserting thousands separators at large ones:
//   3498234.20394  =>  3,498,234
//   324.23235      =>  324
//   49.494         =>  49.5
//   4.494          =>  4.49
//   0.549494       =>  0.549
func Fnum(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	a := math.Abs(v)
	switch {
	case a < 0.001:
		return io.Sf("%.6f", v)
	case a < 1:
		return io.Sf("%.3f", v)
	case a < 10:
		return io.Sf("%.2f", v)
	case a < 100:
		return io.Sf("%.1f", v)
	case a < 1000:
		return io.Sf("%.0f", v)
	}
	return commas(io.Sf("%.0f", v))
}

// commas inserts thousands separators into a plain integer string
func commas(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			if neg {
				return "-" + s
			}
			return s
		}
	}
	n := len(s)
	if n > 3 {
		out := make([]byte, 0, n+n/3)
		lead := n % 3
		if lead > 0 {
			out = append(out, s[:lead]...)
		}
		for i := lead; i < n; i += 3 {
			if len(out) > 0 {
				out = append(out, ',')
			}
			out = append(out, s[i:i+3]...)
		}
		s = string(out)
	}
	if neg {
		return "-" + s
	}
	return s
}

// RoundTo rounds v to the closest multiple of m
func RoundTo(v, m float64) float64 {
	return m * math.Round(v/m)
}

// NearestTo returns the entry of list closest to v; ties keep the first
// entry. NaN is returned for an empty list.
func NearestTo(v float64, list []float64) float64 {
	if len(list) == 0 {
		return math.NaN()
	}
	best := list[0]
	dmin := math.Abs(list[0] - v)
	for _, x := range list[1:] {
		if d := math.Abs(x - v); d < dmin {
			dmin = d
			best = x
		}
	}
	return best
}
