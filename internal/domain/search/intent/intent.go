// Package intent derives an audience class from a product's text fields.
// Classification is a pure keyword heuristic recomputed on every read; it is
// meant for narrowing an already-fetched page client-side, never for issuing
// a new catalog query.
package intent

import (
	"github.com/muratgulerr33/katalog-api/internal/domain/search/token"
)

// Class is a closed audience-affinity label plus the All wildcard.
type Class string

const (
	// All matches every product.
	All Class = "all"
	// Women marks products aimed at a female audience.
	Women Class = "women"
	// Men marks products aimed at a male audience.
	Men Class = "men"
	// Couples marks products aimed at couples.
	Couples Class = "couples"
)

// IsValid reports whether c is a known class.
func (c Class) IsValid() bool {
	switch c {
	case All, Women, Men, Couples:
		return true
	}
	return false
}

// Keyword sets are folded whole tokens, so "men" never trips on "women".
var (
	womenKeywords   = []string{"kadin", "kadinlara", "bayan", "women", "woman"}
	menKeywords     = []string{"erkek", "erkeklere", "men", "man"}
	couplesKeywords = []string{"cift", "ciftler", "ciftlere", "couple", "couples", "partner"}
)

// Classify labels a product from its slug, name and category slugs. Given
// identical inputs it always returns the identical class; unmatched products
// fall back to All. Fields are checked in slug, name, category order and the
// first hit wins.
func Classify(slug, name string, categorySlugs []string) Class {
	fields := make([][]string, 0, 2+len(categorySlugs))
	fields = append(fields, token.Tokenize(slug), token.Tokenize(name))
	for _, cs := range categorySlugs {
		fields = append(fields, token.Tokenize(cs))
	}

	for _, tokens := range fields {
		if c, ok := classOf(tokens); ok {
			return c
		}
	}
	return All
}

// Matches reports whether a product classified as got is visible under want.
func Matches(want, got Class) bool {
	return want == All || want == got
}

func classOf(tokens []string) (Class, bool) {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	for _, pair := range []struct {
		class    Class
		keywords []string
	}{
		{Women, womenKeywords},
		{Men, menKeywords},
		{Couples, couplesKeywords},
	} {
		for _, kw := range pair.keywords {
			if _, ok := set[kw]; ok {
				return pair.class, true
			}
		}
	}
	return All, false
}
