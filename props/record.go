// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Record holds one evaluation result as an ordered name => value mapping.
// Values are float64 or string; NaN marks a null numeric entry. Setting a
// name twice keeps the first value.
type Record struct {
	keys []string
	vals map[string]interface{}
}

// NewRecord returns a new empty record
func NewRecord() *Record {
	return &Record{vals: make(map[string]interface{})}
}

// Set adds one entry. Duplicate names are ignored: the first value wins.
func (o *Record) Set(name string, val interface{}) {
	if _, ok := o.vals[name]; ok {
		return
	}
	o.keys = append(o.keys, name)
	o.vals[name] = val
}

// SetNum adds one numeric entry
func (o *Record) SetNum(name string, val float64) {
	o.Set(name, val)
}

// Get returns the value bound to name
func (o *Record) Get(name string) (val interface{}, ok bool) {
	val, ok = o.vals[name]
	return
}

// Num returns the numeric value bound to name; ok is false for missing
// entries and for string values
func (o *Record) Num(name string) (val float64, ok bool) {
	v, has := o.vals[name]
	if !has {
		return 0, false
	}
	val, ok = v.(float64)
	return
}

// Str returns the string value bound to name; ok is false for missing
// entries and for numeric values
func (o *Record) Str(name string) (val string, ok bool) {
	v, has := o.vals[name]
	if !has {
		return "", false
	}
	val, ok = v.(string)
	return
}

// Has tells whether name is present
func (o *Record) Has(name string) bool {
	_, ok := o.vals[name]
	return ok
}

// IsNull tells whether name is missing or bound to NaN
func (o *Record) IsNull(name string) bool {
	v, ok := o.vals[name]
	if !ok {
		return true
	}
	if f, isnum := v.(float64); isnum {
		return math.IsNaN(f)
	}
	return false
}

// Len returns the number of entries
func (o *Record) Len() int {
	return len(o.keys)
}

// Keys returns the entry names in insertion order
func (o *Record) Keys() []string {
	return o.keys
}

// Merge appends all entries of another record; existing names keep their
// first value
func (o *Record) Merge(other *Record) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		o.Set(key, other.vals[key])
	}
}

// String returns an aligned name = value listing
func (o *Record) String() (l string) {
	maxlen := 0
	for _, key := range o.keys {
		if len(key) > maxlen {
			maxlen = len(key)
		}
	}
	for _, key := range o.keys {
		l += io.Sf("%*s = %s\n", maxlen, key, Format(o.vals[key]))
	}
	return
}
