package catalog

import (
	"encoding/json"
	"strings"

	domcat "github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	"github.com/muratgulerr33/katalog-api/internal/store"
)

// imageObject is the structured variant of the store's image payload.
type imageObject struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// parseImageRef normalizes the two image payload shapes, a bare URL string or
// a {src, alt} object, into the canonical ImageRef once at this boundary.
// Unrecognized payloads normalize to the zero ref instead of failing the row.
func parseImageRef(raw []byte) domcat.ImageRef {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return domcat.ImageRef{}
	}

	if strings.HasPrefix(trimmed, "{") {
		var obj imageObject
		if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
			return domcat.ImageRef{}
		}
		return domcat.ImageRef{Src: obj.Src, Alt: obj.Alt}
	}

	var s string
	if err := json.Unmarshal([]byte(trimmed), &s); err != nil {
		// Plain unquoted URL.
		return domcat.ImageRef{Src: trimmed}
	}
	return domcat.ImageRef{Src: s}
}

func parseStock(s string) domcat.StockStatus {
	if s == string(domcat.InStock) {
		return domcat.InStock
	}
	return domcat.OutOfStock
}

func productFromRow(row store.ProductRow) domcat.Product {
	return domcat.Product{
		ID:            row.ID,
		Name:          row.Name,
		Slug:          row.Slug,
		PriceMinor:    row.PriceMinor,
		Image:         parseImageRef(row.ImageJSON),
		Stock:         parseStock(row.Stock),
		CategorySlugs: row.CategorySlugs,
		CreatedAtMs:   row.CreatedAtMs,
	}
}

func categoryFromRow(row store.CategoryRow) domcat.Category {
	return domcat.Category{
		ID:    row.ID,
		Name:  row.Name,
		Slug:  row.Slug,
		Image: parseImageRef(row.ImageJSON),
	}
}
