// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"
	"strings"

	"github.com/polyseed-go/polyseed"
	pslang "github.com/polyseed-go/polyseed/lang"
)

func findLang(name string) (*pslang.Language, error) {
	numLangs := polyseed.GetNumLangs()
	for i := 0; i < numLangs; i++ {
		l := polyseed.GetLang(i)
		if l == nil {
			continue
		}
		if strings.EqualFold(l.GetLangNameEn(), name) || l.GetLangName() == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("unknown language %q", name)
}
