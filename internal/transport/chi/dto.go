package chi

import (
	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	browseuc "github.com/muratgulerr33/katalog-api/internal/usecase/browse"
	healthuc "github.com/muratgulerr33/katalog-api/internal/usecase/health"
	searchuc "github.com/muratgulerr33/katalog-api/internal/usecase/search"
)

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type imageJSON struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type productJSON struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	PriceMinor    *int64     `json:"price_minor"`
	Image         *imageJSON `json:"image"`
	Stock         string     `json:"stock"`
	CategorySlugs []string   `json:"category_slugs"`
}

type scoredProductJSON struct {
	productJSON
	Score float64 `json:"score"`
}

type categoryJSON struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Slug  string     `json:"slug"`
	Image *imageJSON `json:"image"`
}

type scoredCategoryJSON struct {
	categoryJSON
	Score float64 `json:"score"`
}

// searchJSON is the search response envelope. Slices marshal as [] and the
// fallback category as null when absent, never as missing fields.
type searchJSON struct {
	Items            []scoredProductJSON  `json:"items"`
	Categories       []scoredCategoryJSON `json:"categories"`
	FallbackCategory *categoryJSON        `json:"fallback_category"`
	FallbackItems    []productJSON        `json:"fallback_items"`
}

type pageJSON struct {
	Items      []productJSON `json:"items"`
	NextCursor *string       `json:"next_cursor"`
}

type categoryListJSON struct {
	Items []categoryJSON `json:"items"`
}

type healthJSON struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func imageToJSON(i catalog.ImageRef) *imageJSON {
	if i.IsZero() {
		return nil
	}
	return &imageJSON{Src: i.Src, Alt: i.Alt}
}

func productToJSON(p catalog.Product) productJSON {
	slugs := p.CategorySlugs
	if slugs == nil {
		slugs = []string{}
	}
	return productJSON{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		PriceMinor:    p.PriceMinor,
		Image:         imageToJSON(p.Image),
		Stock:         string(p.Stock),
		CategorySlugs: slugs,
	}
}

func categoryToJSON(c catalog.Category) categoryJSON {
	return categoryJSON{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Image: imageToJSON(c.Image),
	}
}

func searchResponseToJSON(resp searchuc.Response) searchJSON {
	out := searchJSON{
		Items:         make([]scoredProductJSON, 0, len(resp.Items)),
		Categories:    make([]scoredCategoryJSON, 0, len(resp.Categories)),
		FallbackItems: make([]productJSON, 0, len(resp.FallbackItems)),
	}
	for _, it := range resp.Items {
		out.Items = append(out.Items, scoredProductJSON{
			productJSON: productToJSON(it.Product()),
			Score:       it.Score(),
		})
	}
	for _, c := range resp.Categories {
		out.Categories = append(out.Categories, scoredCategoryJSON{
			categoryJSON: categoryToJSON(c.Category()),
			Score:        c.Score(),
		})
	}
	if resp.FallbackCategory != nil {
		fc := categoryToJSON(*resp.FallbackCategory)
		out.FallbackCategory = &fc
	}
	for _, p := range resp.FallbackItems {
		out.FallbackItems = append(out.FallbackItems, productToJSON(p))
	}
	return out
}

func pageToJSON(page browseuc.Page) pageJSON {
	out := pageJSON{Items: make([]productJSON, 0, len(page.Items))}
	for _, p := range page.Items {
		out.Items = append(out.Items, productToJSON(p))
	}
	if page.NextCursor != "" {
		c := page.NextCursor
		out.NextCursor = &c
	}
	return out
}

func healthToJSON(report healthuc.Report) healthJSON {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return healthJSON{Status: string(report.Status), Checks: checks}
}
