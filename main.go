// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gosteel computes stresses on structural steel members, bolts and welds
// following AISC design conventions.
package main

import "github.com/cpmech/gosteel/cmd"

func main() {
	cmd.Execute()
}
