package katalog

import (
	"github.com/muratgulerr33/katalog-api/internal/domain/catalog"
	browseuc "github.com/muratgulerr33/katalog-api/internal/usecase/browse"
	searchuc "github.com/muratgulerr33/katalog-api/internal/usecase/search"
)

func productFromInternal(p catalog.Product) Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		PriceMinor:    p.PriceMinor,
		Image:         Image{Src: p.Image.Src, Alt: p.Image.Alt},
		Stock:         string(p.Stock),
		CategorySlugs: p.CategorySlugs,
	}
}

func categoryFromInternal(c catalog.Category) Category {
	return Category{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Image: Image{Src: c.Image.Src, Alt: c.Image.Alt},
	}
}

func searchResultFromInternal(resp searchuc.Response) SearchResult {
	out := SearchResult{
		Items:         make([]ScoredProduct, 0, len(resp.Items)),
		Categories:    make([]ScoredCategory, 0, len(resp.Categories)),
		FallbackItems: make([]Product, 0, len(resp.FallbackItems)),
	}
	for _, it := range resp.Items {
		out.Items = append(out.Items, ScoredProduct{
			Product: productFromInternal(it.Product()),
			Score:   it.Score(),
		})
	}
	for _, cat := range resp.Categories {
		out.Categories = append(out.Categories, ScoredCategory{
			Category: categoryFromInternal(cat.Category()),
			Score:    cat.Score(),
		})
	}
	if resp.FallbackCategory != nil {
		c := categoryFromInternal(*resp.FallbackCategory)
		out.FallbackCategory = &c
	}
	for _, p := range resp.FallbackItems {
		out.FallbackItems = append(out.FallbackItems, productFromInternal(p))
	}
	return out
}

func pageFromInternal(page browseuc.Page) Page {
	items := make([]Product, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, productFromInternal(p))
	}
	return Page{Items: items, NextCursor: page.NextCursor}
}
