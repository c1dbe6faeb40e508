// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/gosteel/inp"
	"github.com/cpmech/gosteel/mat"
)

var materialCmd = &cobra.Command{
	Use:   "material <name>",
	Short: "Print the properties of a library material",
	Long: `Print the properties of a material from the embedded library given
its designation; e.g. "A36", "A992" or "A193-B7". Without a name the
available materials are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			io.PfBlue("library materials:\n")
			for _, name := range inp.MaterialNames() {
				io.Pf("  %s\n", name)
			}
			return nil
		}
		m, err := mat.Find(args[0])
		if err != nil {
			return err
		}
		io.Pf("%s\n", m)
		io.Pf("%v", m.Record())
		if std, ok := m.Meta("standard"); ok {
			io.Pf("standard = %s\n", std)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(materialCmd)
}
