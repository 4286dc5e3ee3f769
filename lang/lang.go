// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package lang

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrLang indicates unknown language or unsupported words
	ErrLang = errors.New("unknown language or unsupported words")
	// ErrMultLang indicates phrase matches more than one language
	ErrMultLang = errors.New("phrase matches more than one language")
)

const (
	numCharsPrefix = 4
	// LangSize is the number of words in each language wordlist
	LangSize = 2048
	// NumWords is the number of words in the mnemonic phrase
	NumWords = 16
)

// Language represents a language wordlist and the lookup rules that
// apply to it (spec.md §3 "Language descriptor").
type Language struct {
	Name       string
	NameEn     string
	Separator  string
	IsSorted   bool
	HasPrefix  bool
	HasAccents bool
	Compose    bool
	Words      [LangSize]string
}

// Registry holds the set of languages a decode attempt will be tried
// against, in registration order. A Registry is not safe for concurrent
// Register calls; per spec.md §5 it is write-once state set up at
// startup.
type Registry struct {
	languages []*Language
}

// NewRegistry returns an empty language registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a language to the registry. Languages are tried, on
// decode, in the order they were registered.
func (r *Registry) Register(l *Language) {
	r.languages = append(r.languages, l)
}

// NumLangs returns the number of registered languages.
func (r *Registry) NumLangs() int {
	return len(r.languages)
}

// Lang returns the language at index i, or nil if i is out of range.
func (r *Registry) Lang(i int) *Language {
	if i < 0 || i >= len(r.languages) {
		return nil
	}
	return r.languages[i]
}

// DefaultRegistry is the registry consulted by the package-level
// PhraseDecode/GetLang helpers and, transitively, by the polyseed
// package. Hosts that want to supply their own wordlist data instead of
// importing the wordlist package can call DefaultRegistry.Register
// directly, or build an independent *Registry and bypass the
// package-level helpers entirely.
var DefaultRegistry = NewRegistry()

// GetNumLangs returns the number of supported languages in the default registry.
func GetNumLangs() int {
	return DefaultRegistry.NumLangs()
}

// GetLang returns a language by its index in the default registry.
func GetLang(i int) *Language {
	return DefaultRegistry.Lang(i)
}

// GetLangName returns the native name of a language
func (l *Language) GetLangName() string {
	return l.Name
}

// GetLangNameEn returns the English name of a language
func (l *Language) GetLangNameEn() string {
	return l.NameEn
}

// compareStr compares two strings
func compareStr(key, elm string) int {
	return strings.Compare(key, elm)
}

// comparePrefix compares strings using prefix matching (first 4 runes).
// Ported rune-for-rune from original_source/src/lang.c's compare_prefix:
// walk both strings in lockstep, 1-indexed, stopping when the key runs
// out, when i >= numCharsPrefix and the key has exactly one rune left, or
// on the first mismatch.
func comparePrefix(key, elm string) int {
	keyRunes := []rune(key)
	elmRunes := []rune(elm)

	for i := 1; ; i++ {
		if len(keyRunes) == 0 {
			break
		}
		if i >= numCharsPrefix && len(keyRunes) == 1 {
			break
		}
		if len(elmRunes) == 0 {
			break
		}
		if keyRunes[0] != elmRunes[0] {
			break
		}
		keyRunes = keyRunes[1:]
		elmRunes = elmRunes[1:]
	}

	if len(keyRunes) == 0 && len(elmRunes) == 0 {
		return 0
	}
	if len(keyRunes) == 0 {
		return -1
	}
	if len(elmRunes) == 0 {
		return 1
	}
	if keyRunes[0] < elmRunes[0] {
		return -1
	}
	if keyRunes[0] > elmRunes[0] {
		return 1
	}
	return 0
}

// removeAccents drops every non-ASCII rune, matching
// original_source/src/lang.c's "skip bytes with the high bit set".
func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range s {
		if r < 128 {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// compareStrNoAccent compares strings ignoring accents
func compareStrNoAccent(key, elm string) int {
	return strings.Compare(removeAccents(key), removeAccents(elm))
}

// comparePrefixNoAccent compares strings using prefix matching, ignoring accents
func comparePrefixNoAccent(key, elm string) int {
	return comparePrefix(removeAccents(key), removeAccents(elm))
}

func comparerFor(l *Language) func(string, string) int {
	switch {
	case l.HasPrefix && l.HasAccents:
		return comparePrefixNoAccent
	case l.HasPrefix:
		return comparePrefix
	case l.HasAccents:
		return compareStrNoAccent
	default:
		return compareStr
	}
}

// langSearch searches for a word in a language wordlist using the
// comparator implied by the language's flags: sorted lists binary
// search, unsorted lists (spec.md §9: zh_s, zh_t, cs) fall back to a
// linear scan.
func langSearch(l *Language, word string) int {
	cmp := comparerFor(l)

	if l.IsSorted {
		idx := sort.Search(LangSize, func(i int) bool {
			return cmp(word, l.Words[i]) <= 0
		})
		if idx < LangSize && cmp(word, l.Words[idx]) == 0 {
			return idx
		}
		return -1
	}

	for i := 0; i < LangSize; i++ {
		if cmp(word, l.Words[i]) == 0 {
			return i
		}
	}
	return -1
}

// FindWord finds a word in a language wordlist
func (l *Language) FindWord(word string) int {
	return langSearch(l, word)
}

// PhraseDecode decodes a phrase into word indices, auto-detecting the
// language by trying every registered language in order and requiring
// that all NumWords words resolve (spec.md §4.5).
func (r *Registry) PhraseDecode(phrase []string) ([]uint16, *Language, error) {
	var foundLang *Language
	var foundIndices []uint16

	for _, l := range r.languages {
		indices := make([]uint16, NumWords)
		success := true

		for i, word := range phrase {
			idx := l.FindWord(word)
			if idx < 0 {
				success = false
				break
			}
			indices[i] = uint16(idx)
		}

		if success {
			if foundLang != nil {
				return nil, nil, ErrMultLang
			}
			foundLang = l
			foundIndices = indices
		}
	}

	if foundLang == nil {
		return nil, nil, ErrLang
	}

	return foundIndices, foundLang, nil
}

// PhraseDecodeExplicit decodes a phrase using a specific, caller-chosen
// language (spec.md §4.5's decode_explicit, used after a MULT_LANG result).
func (r *Registry) PhraseDecodeExplicit(phrase []string, l *Language) ([]uint16, error) {
	indices := make([]uint16, NumWords)

	for i, word := range phrase {
		idx := l.FindWord(word)
		if idx < 0 {
			return nil, ErrLang
		}
		indices[i] = uint16(idx)
	}

	return indices, nil
}

// PhraseDecode decodes a phrase using the default registry.
func PhraseDecode(phrase []string) ([]uint16, *Language, error) {
	return DefaultRegistry.PhraseDecode(phrase)
}

// PhraseDecodeExplicit decodes a phrase using the default registry and a
// specific language.
func PhraseDecodeExplicit(phrase []string, l *Language) ([]uint16, error) {
	return DefaultRegistry.PhraseDecodeExplicit(phrase, l)
}

// utf8NFKDLazy only normalizes strings that contain non-ASCII characters
func utf8NFKDLazy(str string) string {
	for _, r := range str {
		if r > 127 {
			return norm.NFKD.String(str)
		}
	}
	return str
}

// SplitPhrase splits a mnemonic string into words. It NFKD-normalizes
// the string first (lazily, skipping pure-ASCII input) and then splits
// on any run of ASCII whitespace, which is what every legal language
// separator decomposes to (spec.md §4.5).
func SplitPhrase(str string) []string {
	normalized := utf8NFKDLazy(str)
	return strings.Fields(normalized)
}

// SelfCheck validates the registry's internal consistency per spec.md
// §4.4: each sorted list must be monotone under its own comparator,
// every word must equal its own NFKD normalization, every has_accents
// language must set needs_compose, and every separator must NFKD to a
// single ASCII space. It is meant to run once, at injection time, in
// debug builds — never on the hot path.
func (r *Registry) SelfCheck() error {
	for _, l := range r.languages {
		if err := l.selfCheck(); err != nil {
			return fmt.Errorf("language %s: %w", l.NameEn, err)
		}
	}
	return nil
}

func (l *Language) selfCheck() error {
	if norm.NFKD.String(l.Separator) != " " {
		return fmt.Errorf("separator %q does not NFKD-normalize to a single space", l.Separator)
	}
	if l.HasAccents && !l.Compose {
		return errors.New("has_accents is set but needs_compose is not")
	}

	cmp := comparerFor(l)
	for i, w := range l.Words {
		if norm.NFKD.String(w) != w {
			return fmt.Errorf("word %q at index %d is not stored in NFKD form", w, i)
		}
		if l.IsSorted && i > 0 && cmp(l.Words[i-1], w) > 0 {
			return fmt.Errorf("word list is not monotone under its comparator at index %d (%q > %q)", i, l.Words[i-1], w)
		}
	}
	return nil
}
