// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/out"
	"github.com/cpmech/gosteel/stru"
)

var (
	checkCSV    bool
	checkXLSX   bool
	checkPDF    bool
	checkQuiet  bool
	checkAuthor string
)

var checkCmd = &cobra.Command{
	Use:   "check <file.json>...",
	Short: "Evaluate the structural objects of check files",
	Long: `Read check definition files, build and evaluate their members,
bolts or welds, and print one result table per file. Tables can also be
saved as CSV, XLSX or a PDF report in the configured output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tables []*out.Table
		for _, fname := range args {
			c, err := inp.ReadCheck(fname)
			if err != nil {
				return err
			}
			g, err := stru.FromCheck(c)
			if err != nil {
				return err
			}
			tbl := g.Evaluate()
			tables = append(tables, tbl)
			if !checkQuiet {
				io.PfBlue("%s\n", tbl.Name)
				io.Pf("%v\n", tbl)
			}
		}
		key := io.FnKey(filepath.Base(args[0]))
		if checkCSV {
			for _, tbl := range tables {
				fname := filepath.Join(env.OutDir, io.Sf("%s.csv", io.FnKey(tbl.Name)))
				if err := tbl.SaveCSV(fname); err != nil {
					return err
				}
				io.Pf("file <%s> written\n", fname)
			}
		}
		if checkXLSX {
			fname := filepath.Join(env.OutDir, key+".xlsx")
			if err := out.SaveXLSX(fname, tables...); err != nil {
				return err
			}
			io.Pf("file <%s> written\n", fname)
		}
		if checkPDF {
			report := out.NewReport(key, checkAuthor, time.Now().Format("2006-01-02"))
			for _, tbl := range tables {
				report.Add(tbl)
			}
			fname := filepath.Join(env.OutDir, key+".pdf")
			if err := report.SaveReport(fname); err != nil {
				return err
			}
			io.Pf("file <%s> written\n", fname)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkCSV, "csv", false, "save one CSV file per table")
	checkCmd.Flags().BoolVar(&checkXLSX, "xlsx", false, "save all tables to an XLSX workbook")
	checkCmd.Flags().BoolVar(&checkPDF, "pdf", false, "save all tables to a PDF report")
	checkCmd.Flags().BoolVar(&checkQuiet, "quiet", false, "do not print tables")
	checkCmd.Flags().StringVar(&checkAuthor, "author", "", "author shown on the PDF report")
	rootCmd.AddCommand(checkCmd)
}
