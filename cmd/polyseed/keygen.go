// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/polyseed-go/polyseed"
)

var (
	keygenCoin     string
	keygenLang     string
	keygenPassword string
	keygenKeySize  int
)

var keygenCmd = &cobra.Command{
	Use:   "keygen [phrase words...]",
	Short: "Derive a key from a mnemonic phrase",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coin, err := parseCoin(keygenCoin)
		if err != nil {
			return errors.Wrap(err, "resolving coin")
		}

		phrase := strings.Join(args, " ")

		var seed *polyseed.Seed
		if keygenLang != "" {
			l, err := findLang(keygenLang)
			if err != nil {
				return errors.Wrap(err, "resolving language")
			}
			seed, err = polyseed.DecodeExplicit(phrase, coin, l)
			if err != nil {
				return errors.Wrap(err, "decoding phrase")
			}
		} else {
			seed, _, err = polyseed.Decode(phrase, coin)
			if err != nil {
				return errors.Wrap(err, "decoding phrase")
			}
		}
		defer seed.Free()

		if keygenPassword != "" {
			seed.Crypt(keygenPassword)
		}
		if seed.IsEncrypted() {
			return errors.New("seed is still encrypted; pass --password")
		}

		key := seed.Keygen(coin, keygenKeySize)
		fmt.Println(hex.EncodeToString(key))
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenCoin, "coin", "monero", "coin the checksum was computed for")
	keygenCmd.Flags().StringVar(&keygenLang, "lang", "", "decode using this language explicitly instead of auto-detecting")
	keygenCmd.Flags().StringVar(&keygenPassword, "password", "", "password the seed was encrypted with")
	keygenCmd.Flags().IntVar(&keygenKeySize, "key-size", 32, "derived key size in bytes")
	rootCmd.AddCommand(keygenCmd)
}
