// Package token normalizes raw search queries into matchable tokens.
package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinLength is the minimum rune count of a valid token. Shorter tokens match
// nearly everything and are dropped.
const MinLength = 2

// foldTransformer strips combining marks after NFD decomposition, so that
// "vibratör" and "vibrator" normalize to the same bytes.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and removes diacritics. Dotless ı (which has no Unicode
// decomposition) is mapped to i explicitly; dotted İ decomposes to I plus a
// combining mark and is handled by the transformer.
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	if !strings.ContainsRune(folded, 'ı') {
		return folded
	}
	return strings.Map(func(r rune) rune {
		if r == 'ı' {
			return 'i'
		}
		return r
	}, folded)
}

// Tokenize splits a raw query into folded tokens, dropping tokens shorter than
// MinLength. An empty result means "no results", never "match everything";
// callers must not treat it as a wildcard.
func Tokenize(raw string) []string {
	fields := strings.FieldsFunc(Fold(raw), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= MinLength {
			tokens = append(tokens, f)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
