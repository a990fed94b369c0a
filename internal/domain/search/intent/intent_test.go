package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		prodName  string
		catSlugs  []string
		want      Class
	}{
		{"women slug", "kadinlara-ozel-jel", "Özel Jel", nil, Women},
		{"men slug", "erkeklere-ozel-sprey", "Özel Sprey", nil, Men},
		{"couples slug", "ciftlere-ozel-set", "Özel Set", nil, Couples},
		{"english women", "women-massage-oil", "Massage Oil", nil, Women},
		{"name fallback", "ozel-jel", "Kadın Jel", nil, Women},
		{"category fallback", "ozel-jel", "Jel", []string{"erkek-urunleri"}, Men},
		{"slug beats category", "kadinlara-jel", "Jel", []string{"erkek-urunleri"}, Women},
		{"no keyword", "masaj-yagi", "Masaj Yağı", []string{"masaj"}, All},
		{"empty product", "", "", nil, All},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.slug, tt.prodName, tt.catSlugs); got != tt.want {
				t.Errorf("Classify(%q, %q, %v) = %q, want %q", tt.slug, tt.prodName, tt.catSlugs, got, tt.want)
			}
		})
	}
}

func TestClassify_MenDoesNotMatchInsideWomen(t *testing.T) {
	if got := Classify("women-set", "Women Set", nil); got != Women {
		t.Errorf("Classify(women-set) = %q, want %q", got, Women)
	}
	if got := Classify("for-women", "For Women", nil); got == Men {
		t.Error("'women' token must not classify as men")
	}
}

func TestClassify_FoldsTurkishText(t *testing.T) {
	// "Kadın" folds to "kadin" and "Çift" to "cift" before keyword lookup.
	if got := Classify("", "Kadın Ürünü", nil); got != Women {
		t.Errorf("Classify(Kadın) = %q, want %q", got, Women)
	}
	if got := Classify("", "Çiftlere Özel", nil); got != Couples {
		t.Errorf("Classify(Çiftlere) = %q, want %q", got, Couples)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := Classify("kadinlara-jel", "Jel", []string{"erkek"}); got != Women {
			t.Fatalf("run %d: Classify = %q, want %q", i, got, Women)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		want Class
		got  Class
		ok   bool
	}{
		{All, Women, true},
		{All, All, true},
		{Women, Women, true},
		{Women, Men, false},
		{Men, All, false},
		{Couples, Couples, true},
	}

	for _, tt := range tests {
		if got := Matches(tt.want, tt.got); got != tt.ok {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.want, tt.got, got, tt.ok)
		}
	}
}

func TestIsValid(t *testing.T) {
	for _, c := range []Class{All, Women, Men, Couples} {
		if !c.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", c)
		}
	}
	if Class("everyone").IsValid() {
		t.Error("IsValid(everyone) = true, want false")
	}
}
