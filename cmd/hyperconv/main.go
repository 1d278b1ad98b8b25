// SPDX-License-Identifier: MIT

// Command hyperconv normalizes hypergraph files (YAML, HCL, CSV) and prints
// the result as YAML.
//
//	hyperconv convert teams.csv --node-col person --edge-col club
//	hyperconv validate graph.hcl
package main

import (
	"os"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
