// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package extractor scrapes product pages (Amazon, Mercado Livre) to
// prefill catalog entries. Best-effort: any field a page does not expose
// comes back empty for the operator to fill in by hand.
package extractor

import (
	"fmt"
	"strings"

	"github.com/gocolly/colly/v2"
)

// ProductData holds what could be read from a product page.
type ProductData struct {
	Title       string
	Image       string
	Description string
	Category    string
	URL         string
}

// Extractor scrapes product data from store pages.
type Extractor struct {
	userAgent string
}

// New creates an extractor with a desktop browser user agent, which
// both supported stores require to serve full pages.
func New() *Extractor {
	return &Extractor{
		userAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
	}
}

// Extract fetches url and pulls the product fields out of its markup.
// It returns an error only when the page cannot be fetched at all.
func (e *Extractor) Extract(url string) (*ProductData, error) {
	data := &ProductData{URL: url}

	c := colly.NewCollector(colly.UserAgent(e.userAgent))

	c.OnHTML("h1", func(h *colly.HTMLElement) {
		if data.Title == "" {
			data.Title = strings.TrimSpace(h.Text)
		}
	})

	// Main image: Mercado Livre gallery first, then the generic
	// itemprop, then Open Graph as a last resort.
	c.OnHTML(".ui-pdp-gallery__figure img", func(h *colly.HTMLElement) {
		if data.Image == "" {
			data.Image = h.Attr("data-zoom")
			if data.Image == "" {
				data.Image = h.Attr("src")
			}
		}
	})
	c.OnHTML("img[itemprop=image]", func(h *colly.HTMLElement) {
		if data.Image == "" {
			data.Image = h.Attr("src")
		}
	})
	c.OnHTML(`meta[property="og:image"]`, func(h *colly.HTMLElement) {
		if data.Image == "" {
			data.Image = h.Attr("content")
		}
	})

	c.OnHTML("p[data-testid=content]", func(h *colly.HTMLElement) {
		if data.Description == "" {
			data.Description = strings.TrimSpace(h.Text)
		}
	})
	c.OnHTML(`meta[name="description"]`, func(h *colly.HTMLElement) {
		if data.Description == "" {
			data.Description = strings.TrimSpace(h.Attr("content"))
		}
	})

	// Breadcrumb trail: the last link is the most specific category.
	c.OnHTML(".andes-breadcrumb a, #wayfinding-breadcrumbs_feature_div a", func(h *colly.HTMLElement) {
		if text := strings.TrimSpace(h.Text); text != "" {
			data.Category = text
		}
	})

	if err := c.Visit(url); err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}
	c.Wait()

	return data, nil
}
