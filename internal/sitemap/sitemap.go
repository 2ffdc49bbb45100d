// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sitemap generates the sitemap.xml consumed by search engines.
// It is a one-shot batch job (bectl sitemap), not part of the served
// application: it enumerates the fixed static routes plus every post and
// landing-page document, stamping content entries with the file's
// modification date.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// xmlns is the sitemap protocol namespace.
const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// StaticRoute is a fixed application route with its crawl hints.
type StaticRoute struct {
	Path       string
	ChangeFreq string
	Priority   string
}

// StaticRoutes lists the site's fixed pages in sitemap order.
var StaticRoutes = []StaticRoute{
	{"/", "weekly", "1.0"},
	{"/blog", "daily", "0.9"},
	{"/loja", "daily", "0.9"},
	{"/sobre", "monthly", "0.7"},
	{"/produtos-recomendados", "weekly", "0.8"},
	{"/politica-privacidade", "yearly", "0.3"},
	{"/termos-de-uso", "yearly", "0.3"},
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// contentEntry is a content document discovered on disk.
type contentEntry struct {
	slug    string
	lastMod string // YYYY-MM-DD from the file mtime
}

// scanDocuments lists the *.md documents in dir with their modification
// dates. A missing or unreadable directory contributes zero entries rather
// than aborting the run.
func scanDocuments(dir string) []contentEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Warn("sitemap: content directory skipped", "dir", dir, "error", err)
		return nil
	}

	var out []contentEntry
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			slog.Warn("sitemap: file skipped", "file", name, "error", err)
			continue
		}
		out = append(out, contentEntry{
			slug:    strings.TrimSuffix(name, ".md"),
			lastMod: info.ModTime().Format("2006-01-02"),
		})
	}
	return out
}

// Generate builds the sitemap XML for the site. baseURL must not end with a
// slash; postsDir and landingsDir point at the content directories on disk.
func Generate(baseURL, postsDir, landingsDir string) ([]byte, error) {
	set := urlSet{Xmlns: xmlns}

	for _, r := range StaticRoutes {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        baseURL + r.Path,
			ChangeFreq: r.ChangeFreq,
			Priority:   r.Priority,
		})
	}

	for _, post := range scanDocuments(postsDir) {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        baseURL + "/blog/" + post.slug,
			LastMod:    post.lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}

	for _, landing := range scanDocuments(landingsDir) {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        baseURL + "/landings/" + landing.slug,
			LastMod:    landing.lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap marshal: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// WriteFile generates the sitemap and writes it to outPath.
func WriteFile(outPath, baseURL, postsDir, landingsDir string) error {
	data, err := Generate(baseURL, postsDir, landingsDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("sitemap output dir: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("sitemap write: %w", err)
	}
	return nil
}
