// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Command polyseed is a small CLI front end over the polyseed library:
// it can mint new mnemonic seeds, decode existing ones, derive keys from
// them, and list the languages available for encoding.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
