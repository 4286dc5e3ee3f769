// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyseed-go/polyseed"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages available for encoding",
	RunE: func(cmd *cobra.Command, args []string) error {
		numLangs := polyseed.GetNumLangs()
		for i := 0; i < numLangs; i++ {
			l := polyseed.GetLang(i)
			if l == nil {
				continue
			}
			fmt.Printf("%-24s %s\n", l.GetLangNameEn(), l.GetLangName())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
