package score

import (
	"testing"

	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	"github.com/muratgulerr33/katalog-api/internal/domain/search/token"
)

func fieldsFor(name, slug, query string) float64 {
	return Fields(name, slug, token.Fold(query), token.Tokenize(query))
}

func TestFields_NameTiers(t *testing.T) {
	exact := fieldsFor("Vibratör", "x", "vibratör")
	prefix := fieldsFor("Vibratör Seti", "x", "vibratör")
	substr := fieldsFor("Modern Vibratör", "x", "vibratör")
	miss := fieldsFor("Masaj Yağı", "x", "vibratör")

	if !(exact > prefix && prefix > substr && substr > miss) {
		t.Errorf("want exact > prefix > substring > miss, got %v > %v > %v > %v",
			exact, prefix, substr, miss)
	}
	if miss != 0 {
		t.Errorf("no-match score = %v, want 0", miss)
	}
}

func TestFields_NameOutranksSlug(t *testing.T) {
	nameHit := fieldsFor("Vibratör", "other-slug", "vibratör")
	slugHit := fieldsFor("Other Name", "vibrator", "vibratör")
	if nameHit <= slugHit {
		t.Errorf("name hit %v should outrank slug hit %v", nameHit, slugHit)
	}
}

func TestFields_ExtraTokensAdd(t *testing.T) {
	one := Fields("Modern Vibratör Seti", "s", "", []string{"modern"})
	two := Fields("Modern Vibratör Seti", "s", "", []string{"modern", "seti"})
	if two <= one {
		t.Errorf("two matched tokens %v should score above one %v", two, one)
	}
}

func TestFields_TokenCountedOnce(t *testing.T) {
	// A token present in both name and slug only earns the name bonus.
	both := Fields("seti", "seti", "", []string{"seti"})
	nameOnly := Fields("seti", "x", "", []string{"seti"})
	if both != nameOnly {
		t.Errorf("token in name and slug = %v, want same as name only %v", both, nameOnly)
	}
}

func TestFields_Deterministic(t *testing.T) {
	a := fieldsFor("Modern Vibratör Seti", "modern-vibrator-seti", "vibratör seti")
	b := fieldsFor("Modern Vibratör Seti", "modern-vibrator-seti", "vibratör seti")
	if a != b {
		t.Errorf("same inputs scored %v then %v", a, b)
	}
}

func TestRankProducts_OrderAndTruncate(t *testing.T) {
	candidates := []catalog.Product{
		{ID: "p1", Name: "Modern Vibratör", Slug: "modern-vibrator"},
		{ID: "p2", Name: "Vibratör", Slug: "vibrator"},
		{ID: "p3", Name: "Vibratör Seti", Slug: "vibrator-seti"},
		{ID: "p4", Name: "Masaj Yağı", Slug: "masaj-yagi"},
	}

	ranked := RankProducts(candidates, "vibratör", token.Tokenize("vibratör"), 3)
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	wantOrder := []string{"p2", "p3", "p1"}
	for i, want := range wantOrder {
		if got := ranked[i].Product().ID; got != want {
			t.Errorf("ranked[%d] = %s, want %s", i, got, want)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score() > ranked[i-1].Score() {
			t.Errorf("scores not descending at %d: %v > %v", i, ranked[i].Score(), ranked[i-1].Score())
		}
	}
}

func TestRankProducts_StableTies(t *testing.T) {
	candidates := []catalog.Product{
		{ID: "a", Name: "Vibratör Seti", Slug: "s1"},
		{ID: "b", Name: "Vibratör Seti", Slug: "s2"},
		{ID: "c", Name: "Vibratör Seti", Slug: "s3"},
	}

	ranked := RankProducts(candidates, "vibratör", token.Tokenize("vibratör"), 0)
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if ranked[i].Product().ID != id {
			t.Errorf("tie order broken at %d: got %s, want %s", i, ranked[i].Product().ID, id)
		}
	}
}

func TestRankCategories(t *testing.T) {
	candidates := []catalog.Category{
		{ID: "c1", Name: "Masaj", Slug: "masaj"},
		{ID: "c2", Name: "Vibratörler", Slug: "vibratorler"},
	}

	ranked := RankCategories(candidates, "vibratör", token.Tokenize("vibratör"), 0)
	if ranked[0].Category().ID != "c2" {
		t.Errorf("top category = %s, want c2", ranked[0].Category().ID)
	}
	if ranked[0].Score() <= ranked[1].Score() {
		t.Errorf("matching category %v should outscore miss %v", ranked[0].Score(), ranked[1].Score())
	}
}
