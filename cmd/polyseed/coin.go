// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"strings"

	"github.com/polyseed-go/polyseed"
)

var coinNames = map[string]polyseed.Coin{
	"monero":  polyseed.CoinMonero,
	"aeon":    polyseed.CoinAeon,
	"wownero": polyseed.CoinWownero,
}

func parseCoin(name string) (polyseed.Coin, error) {
	coin, ok := coinNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown coin %q (expected one of monero, aeon, wownero)", name)
	}
	return coin, nil
}
