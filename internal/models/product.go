// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Product is an affiliate catalog entry, one JSON document per product.
// Products are authored offline (bectl) and loaded read-only at serve time.
type Product struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Image       string   `json:"image"`
	Link        string   `json:"link"` // raw affiliate URL, UTM tags added at render time
	Price       string   `json:"price,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Source      string   `json:"source,omitempty"` // marketplace label derived from Link
}

// HasCategory reports whether the product belongs to the given category slug.
func (p *Product) HasCategory(slug string) bool {
	for _, c := range p.Categories {
		if c == slug {
			return true
		}
	}
	return false
}

// PrimaryCategory returns the first listed category, or "" when the product
// has none. Related-product selection keys off this value.
func (p *Product) PrimaryCategory() string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[0]
}

// CategoryCount is the derived per-category aggregate shown on the store
// category grid. Never persisted; recomputed from the product set.
type CategoryCount struct {
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}
