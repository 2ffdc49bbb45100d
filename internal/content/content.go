// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content loads and serves the static content families of the site:
// blog posts and landing pages (markdown documents with YAML frontmatter)
// and affiliate products (one JSON document per product plus an index
// manifest). Content is immutable for the process lifetime; each family is
// read once on first use and memoized. Invalidate drops the memoized data
// so tests (or a reload signal) can force a fresh read.
//
// A missing or unreadable content family degrades to an empty set with a
// logged diagnostic — a broken catalog must never take the page down.
package content

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"brincareducando/internal/models"
)

// Directory names inside the content root.
const (
	postsDir    = "posts"
	landingsDir = "landings"
	productsDir = "produtos"

	// manifestName is the product index listing the member JSON files.
	manifestName = "index.json"
)

// Store is the read-only content store. Construct one per process with
// NewStore and inject it where content is needed; there is no package-level
// singleton.
type Store struct {
	fsys fs.FS

	mu       sync.Mutex
	posts    []models.Post
	landings []models.Landing
	products []models.Product

	postsLoaded    bool
	landingsLoaded bool
	productsLoaded bool
}

// NewStore creates a content store reading from the given filesystem,
// whose root contains the posts/, landings/ and produtos/ directories.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// NewDirStore creates a content store rooted at a directory on disk.
func NewDirStore(dir string) *Store {
	return NewStore(os.DirFS(dir))
}

// Invalidate drops all memoized content so the next read hits the source
// again. Intended for tests and explicit reload hooks.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts, s.landings, s.products = nil, nil, nil
	s.postsLoaded, s.landingsLoaded, s.productsLoaded = false, false, false
}

// Posts returns all blog posts, unsorted. Callers that need chronological
// order use SortByDateDesc. Never fails: an unreadable posts directory
// yields an empty slice.
func (s *Store) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.postsLoaded {
		s.posts = s.loadDocuments(postsDir)
		s.postsLoaded = true
	}
	return s.posts
}

// PostBySlug returns the post with the given slug, or nil if absent.
func (s *Store) PostBySlug(slug string) *models.Post {
	for i, p := range s.Posts() {
		if p.Slug == slug {
			return &s.posts[i]
		}
	}
	return nil
}

// Landings returns all landing-page documents, unsorted.
func (s *Store) Landings() []models.Landing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.landingsLoaded {
		s.landings = s.loadDocuments(landingsDir)
		s.landingsLoaded = true
	}
	return s.landings
}

// LandingBySlug returns the landing page with the given slug, or nil.
func (s *Store) LandingBySlug(slug string) *models.Landing {
	for i, l := range s.Landings() {
		if l.Slug == slug {
			return &s.landings[i]
		}
	}
	return nil
}

// Products returns all catalog products that have a title, sorted by title.
// Records without a title are incomplete drafts and are silently excluded.
// On a manifest read failure the catalog degrades to empty.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.productsLoaded {
		s.products = s.loadProducts()
		s.productsLoaded = true
	}
	return s.products
}

// ProductBySlug returns the product with the given slug, or nil if absent.
func (s *Store) ProductBySlug(slug string) *models.Product {
	for i, p := range s.Products() {
		if p.Slug == slug {
			return &s.products[i]
		}
	}
	return nil
}

// ProductsByCategory returns all products whose category set contains slug,
// in store iteration order.
func (s *Store) ProductsByCategory(slug string) []models.Product {
	var out []models.Product
	for _, p := range s.Products() {
		if p.HasCategory(slug) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns up to limit products flagged for the highlight carousel.
func (s *Store) Featured(limit int) []models.Product {
	var out []models.Product
	for _, p := range s.Products() {
		if p.Featured {
			out = append(out, p)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// SortByDateDesc returns a copy of posts sorted newest first. The sort is
// stable, so posts sharing a date keep their load order.
func SortByDateDesc(posts []models.Post) []models.Post {
	sorted := make([]models.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ParsedDate().After(sorted[j].ParsedDate())
	})
	return sorted
}

// loadDocuments reads every *.md file in dir into a Post. Per-file parse
// failures skip that file; a missing directory yields an empty set.
func (s *Store) loadDocuments(dir string) []models.Post {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		slog.Warn("content directory unreadable", "dir", dir, "error", err)
		return nil
	}

	var docs []models.Post
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		raw, err := fs.ReadFile(s.fsys, path.Join(dir, name))
		if err != nil {
			slog.Warn("content file unreadable", "dir", dir, "file", name, "error", err)
			continue
		}
		doc, err := parseDocument(name, raw)
		if err != nil {
			slog.Warn("content file invalid", "dir", dir, "file", name, "error", err)
			continue
		}
		docs = append(docs, doc)
	}

	slog.Info("content loaded", "dir", dir, "count", len(docs))
	return docs
}

// loadProducts reads the product manifest and each member JSON file.
func (s *Store) loadProducts() []models.Product {
	raw, err := fs.ReadFile(s.fsys, path.Join(productsDir, manifestName))
	if err != nil {
		slog.Warn("product manifest unreadable", "error", err)
		return nil
	}

	var files []string
	if err := json.Unmarshal(raw, &files); err != nil {
		slog.Warn("product manifest invalid", "error", err)
		return nil
	}

	var products []models.Product
	for _, file := range files {
		data, err := fs.ReadFile(s.fsys, path.Join(productsDir, file))
		if err != nil {
			slog.Warn("product file unreadable", "file", file, "error", err)
			continue
		}
		var p models.Product
		if err := json.Unmarshal(data, &p); err != nil {
			slog.Warn("product file invalid", "file", file, "error", err)
			continue
		}
		// Incomplete records (no title) never reach the storefront.
		if p.Title == "" {
			continue
		}
		if p.Slug == "" {
			p.Slug = p.ID
		}
		products = append(products, p)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Title < products[j].Title
	})

	slog.Info("products loaded", "count", len(products))
	return products
}
