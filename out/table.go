// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out assembles evaluation records into tables and writes them as
// text, CSV, XLSX spreadsheets and PDF reports
package out

import (
	"bytes"
	"encoding/csv"
	goio "io"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosteel/props"
)

// Table gathers evaluation records as rows under a shared set of columns.
// Columns are the union of the record keys, with all-null columns dropped
// and the rest in canonical report order.
type Table struct {
	Name string          // table name; used as sheet/section title
	Cols []string        // sorted column names
	Rows []*props.Record // one record per row, order preserved
}

// NewTable builds a table from evaluation records. Columns holding no value
// at all (missing or NaN in every record) are dropped.
func NewTable(name string, records []*props.Record) (o *Table) {
	o = &Table{Name: name, Rows: records}
	var union []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, key := range r.Keys() {
			if !seen[key] {
				seen[key] = true
				union = append(union, key)
			}
		}
	}
	var keep []string
	for _, key := range union {
		null := true
		for _, r := range records {
			if !r.IsNull(key) {
				null = false
				break
			}
		}
		if !null {
			keep = append(keep, key)
		}
	}
	o.Cols = SortColumns(keep)
	return
}

// SortColumns returns column names in canonical report order: "Name" first,
// then shape, material, load, component and resultant properties, and
// finally unrecognised names in their given order
func SortColumns(cols []string) (sorted []string) {
	present := make(map[string]bool)
	for _, name := range cols {
		present[name] = true
	}
	sorted = make([]string, 0, len(cols))
	if present["Name"] {
		sorted = append(sorted, "Name")
	}
	canonical := make(map[string]bool)
	canonical["Name"] = true
	for _, name := range props.Canonical() {
		canonical[name] = true
		if present[name] && name != "Name" {
			sorted = append(sorted, name)
		}
	}
	for _, name := range cols {
		if !canonical[name] {
			sorted = append(sorted, name)
		}
	}
	return
}

// Nrows returns the number of rows
func (o *Table) Nrows() int {
	return len(o.Rows)
}

// Value returns the formatted cell at row i, column name; null cells come
// out empty
func (o *Table) Value(i int, name string) string {
	if i < 0 || i >= len(o.Rows) {
		return ""
	}
	r := o.Rows[i]
	if r.IsNull(name) {
		return ""
	}
	val, _ := r.Get(name)
	return props.Format(val)
}

// String renders a fixed-width text table
func (o *Table) String() string {
	widths := make([]int, len(o.Cols))
	for j, name := range o.Cols {
		widths[j] = len(name)
		for i := range o.Rows {
			if n := len(o.Value(i, name)); n > widths[j] {
				widths[j] = n
			}
		}
	}
	var buf bytes.Buffer
	if o.Name != "" {
		io.Ff(&buf, "%s\n", o.Name)
	}
	for j, name := range o.Cols {
		if j > 0 {
			io.Ff(&buf, "  ")
		}
		io.Ff(&buf, "%*s", widths[j], name)
	}
	io.Ff(&buf, "\n")
	for i := range o.Rows {
		for j, name := range o.Cols {
			if j > 0 {
				io.Ff(&buf, "  ")
			}
			io.Ff(&buf, "%*s", widths[j], o.Value(i, name))
		}
		io.Ff(&buf, "\n")
	}
	return buf.String()
}

// WriteCSV writes the table in CSV form: one header row with the column
// names followed by one row per record
func (o *Table) WriteCSV(w goio.Writer) (err error) {
	writer := csv.NewWriter(w)
	if err = writer.Write(o.Cols); err != nil {
		return chk.Err("cannot write CSV header: %v", err)
	}
	row := make([]string, len(o.Cols))
	for i := range o.Rows {
		for j, name := range o.Cols {
			row[j] = o.Value(i, name)
		}
		if err = writer.Write(row); err != nil {
			return chk.Err("cannot write CSV row %d: %v", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the table to a CSV file
func (o *Table) SaveCSV(filename string) (err error) {
	var buf bytes.Buffer
	if err = o.WriteCSV(&buf); err != nil {
		return
	}
	io.WriteFile(filename, &buf)
	return
}
