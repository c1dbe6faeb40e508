// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements access to the embedded libraries with standard
// section, thread and material data, and the input data read from check
// (.json) files
package inp

import (
	"embed"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosteel/props"
)

//go:embed data/*.json data/materials/*.json
var dataFS embed.FS

// SectionTable holds tabulated properties for one family of standard sections
type SectionTable struct {
	Family  string               `json:"family"`  // family key; e.g. "W", "L", "HSS"
	Columns []string             `json:"columns"` // names of the numeric columns
	Shapes  map[string][]float64 `json:"shapes"`  // maps label to column values
}

// Section holds the tabulated properties of one standard section
type Section struct {
	Label   string // section label; e.g. "W8X31"
	Family  string // family key; e.g. "W"
	columns []string
	vals    map[string]float64
}

// Thread is one row of a standard thread series table
type Thread struct {
	Size string  `json:"size"` // size designation; e.g. "#10" or "1/2"
	D    float64 `json:"d"`    // basic major diameter
	TPI  float64 `json:"tpi"`  // threads per inch
}

// MatData holds one material document from the library
type MatData struct {
	Name        string             `json:"name"`        // material designation; e.g. "A36"
	Properties  map[string]float64 `json:"properties"`  // physical properties
	Composition map[string]string  `json:"composition"` // chemical composition limits
	Meta        map[string]string  `json:"meta"`        // standard, category, product forms
}

type threadTable struct {
	Class   string    `json:"class"`
	Threads []*Thread `json:"threads"`
}

// embedded libraries are decoded once, on first use
var (
	loadOnce sync.Once
	tables   map[string]*SectionTable
	threads  map[string][]*Thread
	matNames []string
)

func load() {
	loadOnce.Do(func() {
		tables = make(map[string]*SectionTable)
		for _, family := range Families() {
			b, err := dataFS.ReadFile("data/" + family + ".json")
			if err != nil {
				chk.Panic("cannot read embedded section table %q: %v", family, err)
			}
			var t SectionTable
			if err = json.Unmarshal(b, &t); err != nil {
				chk.Panic("cannot unmarshal embedded section table %q: %v", family, err)
			}
			if err = t.check(); err != nil {
				chk.Panic("embedded section table %q is inconsistent: %v", family, err)
			}
			tables[family] = &t
		}
		threads = make(map[string][]*Thread)
		for _, class := range []string{"coarse", "fine"} {
			b, err := dataFS.ReadFile("data/" + class + ".json")
			if err != nil {
				chk.Panic("cannot read embedded thread table %q: %v", class, err)
			}
			var t threadTable
			if err = json.Unmarshal(b, &t); err != nil {
				chk.Panic("cannot unmarshal embedded thread table %q: %v", class, err)
			}
			threads[class] = t.Threads
		}
		entries, err := dataFS.ReadDir("data/materials")
		if err != nil {
			chk.Panic("cannot list embedded material library: %v", err)
		}
		for _, e := range entries {
			matNames = append(matNames, strings.TrimSuffix(e.Name(), ".json"))
		}
		sort.Strings(matNames)
	})
}

// sections ////////////////////////////////////////////////////////////////////////////////////////

// Families returns the standard section families shipped with the library
func Families() []string {
	return []string{"W", "L", "HSS"}
}

// FindSection returns the data row of a standard section given its family and
// full label; e.g. ("W", "W8X31")
func FindSection(family, label string) (*Section, error) {
	load()
	t, ok := tables[family]
	if !ok {
		return nil, chk.Err("unknown section family %q", family)
	}
	vals, ok := t.Shapes[label]
	if !ok {
		return nil, chk.Err("section %q not found in %s table", label, family)
	}
	s := &Section{Label: label, Family: family, columns: t.Columns, vals: make(map[string]float64)}
	for i, name := range t.Columns {
		s.vals[name] = vals[i]
	}
	return s, nil
}

// SectionLabels returns the sorted labels available in one family
func SectionLabels(family string) ([]string, error) {
	load()
	t, ok := tables[family]
	if !ok {
		return nil, chk.Err("unknown section family %q", family)
	}
	labels := make([]string, 0, len(t.Shapes))
	for label := range t.Shapes {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}

// Value returns a named column of this section. Lookups are tolerant to
// subscripts so that "t_f" finds the "tf" column
func (o *Section) Value(name string) (float64, bool) {
	if v, ok := o.vals[name]; ok {
		return v, true
	}
	v, ok := o.vals[props.Standardized(name)]
	return v, ok
}

// Columns returns the column names in table order
func (o *Section) Columns() []string {
	return o.columns
}

// ReadSectionTable reads an extra table of sections from a JSON file so user
// data can supplement the embedded libraries
func ReadSectionTable(filename string) (*SectionTable, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("cannot read section table %q", filename)
	}
	var t SectionTable
	if err = json.Unmarshal(b, &t); err != nil {
		return nil, chk.Err("cannot unmarshal section table %q: %v", filename, err)
	}
	if err = t.check(); err != nil {
		return nil, chk.Err("section table %q is inconsistent: %v", filename, err)
	}
	return &t, nil
}

// AddSections registers an extra table. A table of a known family must carry
// the same columns and has its rows merged in, overriding clashing labels; a
// table of a new family is registered as a whole
func AddSections(t *SectionTable) error {
	if err := t.check(); err != nil {
		return err
	}
	load()
	cur, ok := tables[t.Family]
	if !ok {
		tables[t.Family] = t
		return nil
	}
	if len(cur.Columns) != len(t.Columns) {
		return chk.Err("table %q has %d columns but the loaded one has %d", t.Family, len(t.Columns), len(cur.Columns))
	}
	for i, name := range cur.Columns {
		if t.Columns[i] != name {
			return chk.Err("table %q column %d is %q but the loaded one has %q", t.Family, i, t.Columns[i], name)
		}
	}
	for label, vals := range t.Shapes {
		cur.Shapes[label] = vals
	}
	return nil
}

func (o *SectionTable) check() error {
	if o.Family == "" {
		return chk.Err("section table must name its family")
	}
	for label, vals := range o.Shapes {
		if len(vals) != len(o.Columns) {
			return chk.Err("section %q has %d values for %d columns", label, len(vals), len(o.Columns))
		}
	}
	return nil
}

// threads /////////////////////////////////////////////////////////////////////////////////////////

// Threads returns the thread series table for the given class, one of
// "coarse" (UNC) or "fine" (UNF)
func Threads(class string) ([]*Thread, error) {
	load()
	rows, ok := threads[strings.ToLower(class)]
	if !ok {
		return nil, chk.Err("thread class must be either \"coarse\" or \"fine\": %q is invalid", class)
	}
	return rows, nil
}

// ThreadBySize returns the thread row with the given size designation. The
// leading '#' of numbered sizes may be omitted
func ThreadBySize(class, size string) (*Thread, error) {
	rows, err := Threads(class)
	if err != nil {
		return nil, err
	}
	key := strings.TrimPrefix(strings.TrimSpace(size), "#")
	for _, t := range rows {
		if strings.TrimPrefix(t.Size, "#") == key {
			return t, nil
		}
	}
	return nil, chk.Err("size %q not found in %s thread table", size, class)
}

// ThreadByDiameter returns the thread row whose basic major diameter is
// nearest to d
func ThreadByDiameter(class string, d float64) (*Thread, error) {
	rows, err := Threads(class)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, chk.Err("%s thread table is empty", class)
	}
	ds := make([]float64, len(rows))
	for i, t := range rows {
		ds[i] = t.D
	}
	nearest := props.NearestTo(d, ds)
	for _, t := range rows {
		if t.D == nearest {
			return t, nil
		}
	}
	return nil, chk.Err("size with diameter %g not found in %s thread table", d, class)
}

// materials ///////////////////////////////////////////////////////////////////////////////////////

// FindMaterial returns a material document from the embedded library
func FindMaterial(name string) (*MatData, error) {
	b, err := dataFS.ReadFile("data/materials/" + strings.TrimSpace(name) + ".json")
	if err != nil {
		return nil, chk.Err("material %q not found in library", name)
	}
	var m MatData
	if err = json.Unmarshal(b, &m); err != nil {
		chk.Panic("embedded material %q is malformed: %v", name, err)
	}
	return &m, nil
}

// MaterialNames returns the sorted names available in the material library
func MaterialNames() []string {
	load()
	return matNames
}
