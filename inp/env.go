// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/joho/godotenv"
)

// Env holds the runtime configuration read from the process environment,
// optionally preloaded from a .env file
type Env struct {
	DataDir string // directory with extra user tables (GOSTEEL_DATA_DIR)
	OutDir  string // directory for saving results (GOSTEEL_OUT_DIR)
	Verbose bool   // enable verbose printing (GOSTEEL_VERBOSE)
}

// LoadEnv reads the runtime configuration. With a filename given, that .env
// file must exist; otherwise a .env file in the working directory is loaded
// when present
func LoadEnv(filename string) (*Env, error) {
	if filename != "" {
		if err := godotenv.Load(filename); err != nil {
			return nil, chk.Err("cannot load environment file %q", filename)
		}
	} else {
		godotenv.Load()
	}
	e := &Env{
		DataDir: os.Getenv("GOSTEEL_DATA_DIR"),
		OutDir:  os.Getenv("GOSTEEL_OUT_DIR"),
	}
	if e.OutDir == "" {
		e.OutDir = "/tmp/gosteel"
	}
	verb := os.Getenv("GOSTEEL_VERBOSE")
	e.Verbose = verb == "1" || strings.EqualFold(verb, "true")
	return e, nil
}
