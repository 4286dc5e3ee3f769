// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package wordlist adapts real-world BIP-39 mnemonic wordlists into
// polyseed language descriptors.
//
// spec.md §1 places "the actual wordlist content for each language" out
// of scope for the core library — it is supplied by the host. This
// package is one such host-supplied source: it sources the ten
// 2048-word tables from github.com/tyler-smith/go-bip39/wordlists (the
// same languages spec.md's wordlist-data component enumerates) and
// registers them as polyseed lang.Language values with the
// sorted/prefix/accent/compose/separator flags worked out in DESIGN.md.
//
// A host that ships the canonical polyseed wordlist data instead can
// ignore this package entirely and register its own lang.Language
// values directly.
package wordlist

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/tyler-smith/go-bip39/wordlists"

	"github.com/polyseed-go/polyseed/lang"
)

// spaceSeparator is used by languages whose native text is written with
// ASCII spaces between words.
const spaceSeparator = " "

// ideographicSeparator NFKD-decomposes to a single ASCII space (it is
// Unicode's compatibility decomposition for U+3000 IDEOGRAPHIC SPACE),
// so it satisfies the language-descriptor invariant in spec.md §3 while
// still looking native for CJK text.
const ideographicSeparator = "　"

// descriptor is the per-language metadata this package applies on top
// of a raw 2048-word BIP-39 table. See DESIGN.md for the reasoning
// behind each flag.
type descriptor struct {
	name      string
	nameEn    string
	separator string
	sorted    bool
	prefix    bool
	accents   bool
	compose   bool
	words     []string
}

func descriptors() []descriptor {
	return []descriptor{
		{
			name: "English", nameEn: "English", separator: spaceSeparator,
			sorted: true, prefix: true, accents: false, compose: false,
			words: wordlists.English,
		},
		{
			name: "한국어", nameEn: "Korean", separator: spaceSeparator,
			sorted: true, prefix: false, accents: false, compose: true,
			words: wordlists.Korean,
		},
		{
			name: "Français", nameEn: "French", separator: spaceSeparator,
			sorted: true, prefix: true, accents: true, compose: true,
			words: wordlists.French,
		},
		{
			name: "Italiano", nameEn: "Italian", separator: spaceSeparator,
			sorted: true, prefix: true, accents: true, compose: true,
			words: wordlists.Italian,
		},
		{
			name: "Português", nameEn: "Portuguese", separator: spaceSeparator,
			sorted: true, prefix: true, accents: true, compose: true,
			words: wordlists.Portuguese,
		},
		{
			name: "日本語", nameEn: "Japanese", separator: ideographicSeparator,
			sorted: true, prefix: false, accents: false, compose: true,
			words: wordlists.Japanese,
		},
		{
			name: "Español", nameEn: "Spanish", separator: spaceSeparator,
			sorted: true, prefix: true, accents: true, compose: true,
			words: wordlists.Spanish,
		},
		{
			// Open Question (spec.md §9): marked unsorted, same as the
			// reference implementation — Han-character collation order
			// isn't reliably monotone under byte/codepoint comparison,
			// so lookups fall back to a linear scan.
			name: "简体中文", nameEn: "Chinese (simplified)", separator: ideographicSeparator,
			sorted: false, prefix: false, accents: false, compose: false,
			words: wordlists.ChineseSimplified,
		},
		{
			name: "繁體中文", nameEn: "Chinese (traditional)", separator: ideographicSeparator,
			sorted: false, prefix: false, accents: false, compose: false,
			words: wordlists.ChineseTraditional,
		},
		{
			// Open Question (spec.md §9): marked unsorted, same as the
			// reference implementation.
			name: "Čeština", nameEn: "Czech", separator: spaceSeparator,
			sorted: false, prefix: true, accents: true, compose: true,
			words: wordlists.Czech,
		},
	}
}

// Register builds the ten bip39-backed languages and adds them to r, in
// the "sorted wordlists first" order original_source/src/lang.c uses:
// English, Korean, French, Italian, Portuguese, Japanese, Spanish, then
// the three registry-declared-unsorted lists (Chinese simplified,
// Chinese traditional, Czech) last.
func Register(r *lang.Registry) error {
	for _, d := range descriptors() {
		l, err := build(d)
		if err != nil {
			return err
		}
		r.Register(l)
	}
	return nil
}

// RegisterDefault registers the bip39-backed languages into
// lang.DefaultRegistry. Call it once at process startup, before using
// the polyseed package's Encode/Decode, if you want these wordlists
// available; nothing in the polyseed or lang packages does this for you
// implicitly.
func RegisterDefault() error {
	return Register(lang.DefaultRegistry)
}

func build(d descriptor) (*lang.Language, error) {
	if len(d.words) != lang.LangSize {
		return nil, &wordCountError{lang: d.nameEn, got: len(d.words)}
	}

	l := &lang.Language{
		Name:       d.name,
		NameEn:     d.nameEn,
		Separator:  d.separator,
		IsSorted:   d.sorted,
		HasPrefix:  d.prefix,
		HasAccents: d.accents,
		Compose:    d.compose,
	}

	// Store every word in NFKD form (spec.md §9: "Wordlists are stored
	// in NFKD form"), then re-sort if the un-normalized list's order
	// doesn't survive normalization verbatim — NFKD is order-preserving
	// for these scripts in the overwhelming common case, but we don't
	// assume it.
	normalized := make([]string, lang.LangSize)
	for i, w := range d.words {
		normalized[i] = norm.NFKD.String(w)
	}
	if d.sorted {
		sort.Strings(normalized)
	}
	copy(l.Words[:], normalized)

	return l, nil
}

type wordCountError struct {
	lang string
	got  int
}

func (e *wordCountError) Error() string {
	return "wordlist: " + e.lang + " wordlist does not have 2048 words"
}
