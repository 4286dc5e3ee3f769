// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/polyseed-go/polyseed"
	pslang "github.com/polyseed-go/polyseed/lang"
)

var (
	decodeCoin     string
	decodeLang     string
	decodePassword string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [phrase words...]",
	Short: "Decode a mnemonic phrase and print what it encodes",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coin, err := parseCoin(decodeCoin)
		if err != nil {
			return errors.Wrap(err, "resolving coin")
		}

		phrase := strings.Join(args, " ")

		var seed *polyseed.Seed
		var foundLang *pslang.Language

		if decodeLang != "" {
			l, err := findLang(decodeLang)
			if err != nil {
				return errors.Wrap(err, "resolving language")
			}
			seed, err = polyseed.DecodeExplicit(phrase, coin, l)
			if err != nil {
				return errors.Wrap(err, "decoding phrase")
			}
			foundLang = l
		} else {
			seed, foundLang, err = polyseed.Decode(phrase, coin)
			if err == polyseed.StatusErrMultLang {
				return errors.New("phrase matches multiple languages, pass --lang to disambiguate")
			}
			if err != nil {
				return errors.Wrap(err, "decoding phrase")
			}
		}
		defer seed.Free()

		if decodePassword != "" {
			seed.Crypt(decodePassword)
		}

		fmt.Printf("language: %s\n", foundLang.GetLangNameEn())
		fmt.Printf("birthday: %d\n", seed.GetBirthday())
		fmt.Printf("encrypted: %t\n", seed.IsEncrypted())
		return nil
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeCoin, "coin", "monero", "coin the checksum was computed for")
	decodeCmd.Flags().StringVar(&decodeLang, "lang", "", "decode using this language explicitly instead of auto-detecting")
	decodeCmd.Flags().StringVar(&decodePassword, "password", "", "password to decrypt the seed with")
	rootCmd.AddCommand(decodeCmd)
}
