// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"log/slog"
	"sort"

	"brincareducando/internal/models"
)

// categoryNames is the static slug→display-name registry for the store.
// Category membership on products is free-form: a slug missing here still
// filters and counts normally, it just displays as the raw slug.
var categoryNames = map[string]string{
	"montessori":        "Montessori",
	"sensorial":         "Sensorial",
	"livro":             "Livros",
	"primeira-infancia": "Primeira infância",
	"acessorios":        "Acessórios",
	"alimentacao":       "Alimentação",
	"tapetes":           "Tapetes",
	"educativos":        "Educativos",
	"eletronicos":       "Eletrônicos",
	"construcao":        "Construção",
	"bem-estar":         "Bem-estar",
	"rotina":            "Rotina",
}

// CategoryName resolves a category slug to its display name. On a miss it
// returns the slug unchanged and logs a diagnostic; it never fails.
func CategoryName(slug string) string {
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	slog.Warn("category not in display-name registry", "slug", slug)
	return slug
}

// CountsByCategory derives the per-category product counts from the full
// product set, sorted by slug ascending (byte order, deterministic).
// Counts are memberships, not exclusive assignments: a product with two
// categories contributes to both, so the counts always sum to the total
// number of category memberships.
func CountsByCategory(products []models.Product) []models.CategoryCount {
	bySlug := make(map[string]int)
	for _, p := range products {
		for _, c := range p.Categories {
			bySlug[c]++
		}
	}

	counts := make([]models.CategoryCount, 0, len(bySlug))
	for slug, count := range bySlug {
		counts = append(counts, models.CategoryCount{Slug: slug, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Slug < counts[j].Slug })
	return counts
}
