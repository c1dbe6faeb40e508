// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the gosteel command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/cpmech/gosteel/inp"
)

// env holds the runtime configuration shared by all commands
var env *inp.Env

var envFile string

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Stress checks of structural steel components",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		env, err = inp.LoadEnv(envFile)
		return
	},
	Run: func(cmd *cobra.Command, args []string) {
		io.PfWhite("\nGosteel -- Go Structural Steel Checks\n\n")
		io.Pf("Copyright 2016 The Gosteel Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("Commands:\n")
		io.Pf("  shape <label>      properties of a standard AISC section\n")
		io.Pf("  material <name>    properties of a library material\n")
		io.Pf("  check <file.json>  evaluate the members, bolts or welds of a check file\n\n")
		io.Pf("Use 'gosteel --help' for details.\n\n")
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "environment (.env) file to preload")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
