// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/phpdave11/gofpdf"
)

// Report collects result tables under a title block for PDF rendering
type Report struct {
	Title  string   // report title
	Author string   // author name
	Date   string   // report date
	Notes  string   // free text printed under the title block
	Tables []*Table // one section per table
}

// NewReport returns a report with the given title block
func NewReport(title, author, date string) *Report {
	return &Report{Title: title, Author: author, Date: date}
}

// Add appends one table section
func (o *Report) Add(table *Table) {
	o.Tables = append(o.Tables, table)
}

// SaveReport renders this report to a PDF file: a title page followed by
// one page per table
func (o *Report) SaveReport(filename string) (err error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	title := o.Title
	if title == "" {
		title = "Stress Report"
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if o.Author != "" {
		pdf.Cell(0, 6, "Author: "+o.Author)
		pdf.Ln(6)
	}
	if o.Date != "" {
		pdf.Cell(0, 6, "Date: "+o.Date)
		pdf.Ln(6)
	}
	if o.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, o.Notes, "", "L", false)
	}
	for _, table := range o.Tables {
		tableSection(pdf, table)
	}
	if err = pdf.OutputFileAndClose(filename); err != nil {
		return chk.Err("cannot save %q: %v", filename, err)
	}
	return
}

// tableSection renders one table as a heading plus a bordered grid. Column
// widths follow the content and are scaled down when the grid would not fit
// the page.
func tableSection(pdf *gofpdf.Fpdf, table *Table) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 13)
	name := table.Name
	if name == "" {
		name = "Results"
	}
	pdf.Cell(0, 8, name)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 8)
	widths := make([]float64, len(table.Cols))
	total := 0.0
	for j, col := range table.Cols {
		w := pdf.GetStringWidth(col)
		for i := range table.Rows {
			if cw := pdf.GetStringWidth(table.Value(i, col)); cw > w {
				w = cw
			}
		}
		widths[j] = w + 3
		total += widths[j]
	}
	pageW, _ := pdf.GetPageSize()
	usable := pageW - 20
	if total > usable {
		scale := usable / total
		for j := range widths {
			widths[j] *= scale
		}
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for j, col := range table.Cols {
		pdf.CellFormat(widths[j], 7, col, "1", lastLn(j, len(table.Cols)), "C", true, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8)
	for i := range table.Rows {
		for j, col := range table.Cols {
			align := "C"
			if col == "Name" {
				align = "L"
			}
			pdf.CellFormat(widths[j], 6, table.Value(i, col), "1", lastLn(j, len(table.Cols)), align, false, 0, "")
		}
	}
}

// lastLn returns the gofpdf line-break flag: 1 on the last column, 0 before
func lastLn(j, ncols int) int {
	if j == ncols-1 {
		return 1
	}
	return 0
}
