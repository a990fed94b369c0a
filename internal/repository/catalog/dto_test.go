package catalog

import (
	"testing"

	domcat "github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	"github.com/muratgulerr33/katalog-api/internal/store"
)

func TestParseImageRef(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domcat.ImageRef
	}{
		{"quoted url", `"https://cdn.example.com/a.jpg"`, domcat.ImageRef{Src: "https://cdn.example.com/a.jpg"}},
		{"object", `{"src":"https://cdn.example.com/a.jpg","alt":"Masaj Yağı"}`,
			domcat.ImageRef{Src: "https://cdn.example.com/a.jpg", Alt: "Masaj Yağı"}},
		{"object without alt", `{"src":"https://cdn.example.com/a.jpg"}`,
			domcat.ImageRef{Src: "https://cdn.example.com/a.jpg"}},
		{"plain unquoted url", `https://cdn.example.com/a.jpg`, domcat.ImageRef{Src: "https://cdn.example.com/a.jpg"}},
		{"null", `null`, domcat.ImageRef{}},
		{"empty", ``, domcat.ImageRef{}},
		{"whitespace", `   `, domcat.ImageRef{}},
		{"broken object", `{"src":`, domcat.ImageRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseImageRef([]byte(tt.raw))
			if got != tt.want {
				t.Errorf("parseImageRef(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseStock(t *testing.T) {
	tests := []struct {
		in   string
		want domcat.StockStatus
	}{
		{"instock", domcat.InStock},
		{"outofstock", domcat.OutOfStock},
		{"", domcat.OutOfStock},
		{"backorder", domcat.OutOfStock},
	}

	for _, tt := range tests {
		if got := parseStock(tt.in); got != tt.want {
			t.Errorf("parseStock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProductFromRow(t *testing.T) {
	price := int64(29900)
	row := store.ProductRow{
		ID:            "p1",
		Name:          "Masaj Yağı",
		Slug:          "masaj-yagi",
		PriceMinor:    &price,
		ImageJSON:     []byte(`{"src":"https://cdn.example.com/a.jpg","alt":"yağ"}`),
		Stock:         "instock",
		CategorySlugs: []string{"masaj"},
		CreatedAtMs:   1700000000000,
	}

	p := productFromRow(row)
	if p.ID != "p1" || p.Slug != "masaj-yagi" {
		t.Errorf("identity fields = %+v", p)
	}
	if p.PriceMinor == nil || *p.PriceMinor != 29900 {
		t.Errorf("PriceMinor = %v, want 29900", p.PriceMinor)
	}
	if p.Image.Src != "https://cdn.example.com/a.jpg" || p.Image.Alt != "yağ" {
		t.Errorf("Image = %+v", p.Image)
	}
	if !p.InStock() {
		t.Error("InStock() = false, want true")
	}
	if p.CreatedAtMs != 1700000000000 {
		t.Errorf("CreatedAtMs = %d", p.CreatedAtMs)
	}
}

func TestCategoryFromRow(t *testing.T) {
	row := store.CategoryRow{
		ID:        "c1",
		Name:      "Masaj",
		Slug:      "masaj",
		ImageJSON: []byte(`"https://cdn.example.com/c.jpg"`),
	}

	c := categoryFromRow(row)
	if c.ID != "c1" || c.Slug != "masaj" {
		t.Errorf("identity fields = %+v", c)
	}
	if c.Image.Src != "https://cdn.example.com/c.jpg" {
		t.Errorf("Image = %+v", c.Image)
	}
}
