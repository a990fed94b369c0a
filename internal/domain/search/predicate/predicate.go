// Package predicate implements multi-token AND-matching over searchable fields.
package predicate

import (
	"strings"

	"github.com/muratgulerr33/katalog-api/internal/domain/search/token"
)

// Predicate matches an entity iff every token appears as a folded substring of
// at least one of its searchable fields.
type Predicate struct {
	tokens []string
}

// New creates a predicate from already-folded tokens (see token.Tokenize).
func New(tokens []string) Predicate {
	return Predicate{tokens: tokens}
}

// Tokens returns the predicate's tokens.
func (p Predicate) Tokens() []string { return p.tokens }

// IsEmpty reports whether the predicate carries no valid tokens. An empty
// predicate matches nothing.
func (p Predicate) IsEmpty() bool { return len(p.tokens) == 0 }

// Matches reports whether every token is a substring of at least one field.
// Fields are folded before comparison; an empty predicate never matches.
func (p Predicate) Matches(fields ...string) bool {
	if p.IsEmpty() {
		return false
	}

	folded := make([]string, len(fields))
	for i, f := range fields {
		folded[i] = token.Fold(f)
	}

	for _, t := range p.tokens {
		found := false
		for _, f := range folded {
			if strings.Contains(f, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
