// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "brincareducando/internal/models"

// PerPage is the fixed store grid page size.
const PerPage = 6

// Page is one window of the filtered product grid. Index is always in
// range: out-of-range requests are clamped, never an error or a blank grid.
type Page struct {
	Items      []models.Product
	Index      int // zero-based, clamped
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate slices the filtered product set into the requested page.
// An empty set yields a single empty page (TotalPages 0, Index 0).
func Paginate(filtered []models.Product, page int) Page {
	totalPages := (len(filtered) + PerPage - 1) / PerPage

	if page < 0 {
		page = 0
	}
	if totalPages > 0 && page > totalPages-1 {
		page = totalPages - 1
	}
	if totalPages == 0 {
		page = 0
	}

	start := page * PerPage
	end := start + PerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Items:      filtered[start:end],
		Index:      page,
		TotalPages: totalPages,
		HasPrev:    page > 0,
		HasNext:    page < totalPages-1,
	}
}

// FilterByCategory returns the subset of products in the active category,
// or the whole set when no filter is active.
func FilterByCategory(products []models.Product, active string) []models.Product {
	if active == "" {
		return products
	}
	var out []models.Product
	for _, p := range products {
		if p.HasCategory(active) {
			out = append(out, p)
		}
	}
	return out
}

// ToggleCategory implements the single-select click-to-clear filter: picking
// the already-active category clears the filter, anything else replaces it.
// Every toggle resets the grid to page zero, which callers encode by
// dropping the page parameter from the generated link.
func ToggleCategory(active, selected string) string {
	if active == selected {
		return ""
	}
	return selected
}

// RelatedProducts picks up to limit products sharing the product's first
// listed category, excluding the product itself, in the given iteration
// order. A product without categories has no related items.
func RelatedProducts(all []models.Product, p *models.Product, limit int) []models.Product {
	primary := p.PrimaryCategory()
	if primary == "" {
		return nil
	}
	var out []models.Product
	for _, candidate := range all {
		if candidate.Slug == p.Slug || !candidate.HasCategory(primary) {
			continue
		}
		out = append(out, candidate)
		if len(out) == limit {
			break
		}
	}
	return out
}
