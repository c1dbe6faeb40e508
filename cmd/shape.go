// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/shp"
)

var shapeCmd = &cobra.Command{
	Use:   "shape <label>",
	Short: "Print the section properties of a standard AISC shape",
	Long: `Print the section properties of a standard AISC shape given its
label; e.g. "W8X31", "L4X4X1/2" or "HSS6X6X.375". Without a label the
available labels of every family are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, family := range inp.Families() {
				labels, err := inp.SectionLabels(family)
				if err != nil {
					return err
				}
				io.PfBlue("%s sections:\n", family)
				for _, label := range labels {
					io.Pf("  %s\n", label)
				}
			}
			return nil
		}
		shape, err := shp.NewStandard(args[0])
		if err != nil {
			return err
		}
		io.Pf("%v", shape.Record())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shapeCmd)
}
