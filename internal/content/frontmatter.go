// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"brincareducando/internal/markdown"
	"brincareducando/internal/models"
)

var frontmatterDelim = []byte("---")

// documentMeta is the raw frontmatter shape. The optional flags live here
// so they are validated exactly once at load time and carried as an
// explicit PostOptions value afterwards.
type documentMeta struct {
	Title     string `yaml:"title"`
	Slug      string `yaml:"slug"`
	Date      string `yaml:"date"`
	Excerpt   string `yaml:"excerpt"`
	Category  string `yaml:"category"`
	ReadTime  string `yaml:"readTime"`
	Thumbnail string `yaml:"thumbnail"`
	HideShare bool   `yaml:"hideShare"`
	Landing   bool   `yaml:"landing"`
	NoIndex   bool   `yaml:"noindex"`
}

// parseDocument splits a markdown file into YAML frontmatter and body,
// renders the body to HTML, and builds the Post. The slug falls back to
// the filename stem when the frontmatter does not set one.
func parseDocument(filename string, raw []byte) (models.Post, error) {
	meta, body, err := splitFrontmatter(raw)
	if err != nil {
		return models.Post{}, err
	}

	var fm documentMeta
	if len(meta) > 0 {
		if err := yaml.Unmarshal(meta, &fm); err != nil {
			return models.Post{}, fmt.Errorf("frontmatter: %w", err)
		}
	}

	rendered, err := markdown.ToHTML(string(body))
	if err != nil {
		return models.Post{}, fmt.Errorf("render body: %w", err)
	}

	post := models.Post{
		Slug:      fm.Slug,
		Title:     fm.Title,
		Excerpt:   fm.Excerpt,
		Category:  fm.Category,
		ReadTime:  fm.ReadTime,
		Thumbnail: fm.Thumbnail,
		Date:      fm.Date,
		Options: models.PostOptions{
			HideShare: fm.HideShare,
			Landing:   fm.Landing,
			NoIndex:   fm.NoIndex,
		},
		Body: rendered,
	}
	if post.Slug == "" {
		post.Slug = strings.TrimSuffix(filename, ".md")
	}
	return post, nil
}

// splitFrontmatter separates the leading "---" YAML block from the body.
// A document without frontmatter is all body.
func splitFrontmatter(raw []byte) (meta, body []byte, err error) {
	trimmed := bytes.TrimPrefix(raw, []byte("\uFEFF")) // tolerate a BOM

	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return nil, trimmed, nil
	}

	rest := trimmed[len(frontmatterDelim):]
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	if !bytes.HasPrefix(rest, []byte("\n")) {
		// "---something" is a horizontal rule or text, not frontmatter.
		return nil, trimmed, nil
	}
	rest = rest[1:]

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated frontmatter block")
	}

	meta = rest[:end]
	body = rest[end+len("\n---"):]
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))
	return meta, body, nil
}
