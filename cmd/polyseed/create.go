// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/polyseed-go/polyseed"
)

var (
	createLang     string
	createCoin     string
	createPassword string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a new mnemonic seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := findLang(createLang)
		if err != nil {
			return errors.Wrap(err, "resolving language")
		}
		coin, err := parseCoin(createCoin)
		if err != nil {
			return errors.Wrap(err, "resolving coin")
		}

		seed, err := polyseed.Create(0)
		if err != nil {
			return errors.Wrap(err, "creating seed")
		}
		defer seed.Free()

		if createPassword != "" {
			seed.Crypt(createPassword)
		}

		phrase := seed.Encode(l, coin)
		log.Debug().Str("language", l.GetLangNameEn()).Str("coin", createCoin).Msg("seed created")
		fmt.Println(phrase)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createLang, "lang", "English", "language to encode the mnemonic in")
	createCmd.Flags().StringVar(&createCoin, "coin", "monero", "coin to derive the checksum for (monero, aeon, wownero)")
	createCmd.Flags().StringVar(&createPassword, "password", "", "optional password to encrypt the seed with")
	rootCmd.AddCommand(createCmd)
}
