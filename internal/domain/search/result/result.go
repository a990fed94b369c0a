// Package result holds scored search hits.
package result

import "github.com/muratgulerr33/katalog-api/internal/domain/catalog"

// Item is a scored product hit.
type Item struct {
	product catalog.Product
	score   float64
}

// NewItem creates a scored product hit.
func NewItem(p catalog.Product, score float64) Item {
	return Item{product: p, score: score}
}

// Product returns the product projection.
func (i Item) Product() catalog.Product { return i.product }

// Score returns the relevance score.
func (i Item) Score() float64 { return i.score }

// Category is a scored category hit.
type Category struct {
	category catalog.Category
	score    float64
}

// NewCategory creates a scored category hit.
func NewCategory(c catalog.Category, score float64) Category {
	return Category{category: c, score: score}
}

// Category returns the category projection.
func (c Category) Category() catalog.Category { return c.category }

// Score returns the relevance score.
func (c Category) Score() float64 { return c.score }
