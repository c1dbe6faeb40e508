// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"
)

// SaveXLSX writes tables to an XLSX workbook, one sheet per table
func SaveXLSX(filename string, tables ...*Table) (err error) {
	f := excelize.NewFile()
	defer f.Close()
	for _, table := range tables {
		name := table.Name
		if name == "" {
			name = "Results"
		}
		index, e := f.NewSheet(name)
		if e != nil {
			return chk.Err("cannot create sheet %q: %v", name, e)
		}
		f.SetActiveSheet(index)
		for j, col := range table.Cols {
			cell, e := excelize.CoordinatesToCellName(j+1, 1)
			if e != nil {
				return chk.Err("cannot locate header cell: %v", e)
			}
			f.SetCellValue(name, cell, col)
		}
		for i, r := range table.Rows {
			for j, col := range table.Cols {
				if r.IsNull(col) {
					continue
				}
				cell, e := excelize.CoordinatesToCellName(j+1, i+2)
				if e != nil {
					return chk.Err("cannot locate cell: %v", e)
				}
				val, _ := r.Get(col)
				f.SetCellValue(name, cell, val)
			}
		}
	}
	f.DeleteSheet("Sheet1")
	if err = f.SaveAs(filename); err != nil {
		return chk.Err("cannot save %q: %v", filename, err)
	}
	return
}

// SaveXLSX writes this table alone to an XLSX workbook
func (o *Table) SaveXLSX(filename string) error {
	return SaveXLSX(filename, o)
}
