// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// PostOptions holds the optional per-document flags that authors can set in
// frontmatter. All fields default to false; unknown keys in the frontmatter
// are ignored. Validated once at load time, never probed per render.
type PostOptions struct {
	HideShare bool `yaml:"hideShare"` // suppress the social share bar
	Landing   bool `yaml:"landing"`   // render without the blog chrome
	NoIndex   bool `yaml:"noindex"`   // emit robots noindex,nofollow
}

// Post is a blog article loaded from a markdown document. The slug is
// derived from the filename and is the stable identity; everything else
// comes from frontmatter. Posts are immutable after load.
type Post struct {
	Slug      string      `yaml:"slug"`
	Title     string      `yaml:"title"`
	Excerpt   string      `yaml:"excerpt"`
	Category  string      `yaml:"category"`
	ReadTime  string      `yaml:"readTime"`
	Thumbnail string      `yaml:"thumbnail"`
	Date      string      `yaml:"date"` // YYYY-MM-DD
	Options   PostOptions `yaml:"-"`

	// Body is the rendered HTML produced by the markdown pipeline.
	Body string `yaml:"-"`
}

// ParsedDate returns the post date as a time.Time. A malformed or empty
// date sorts as the zero time (oldest).
func (p *Post) ParsedDate() time.Time {
	t, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayDate formats the post date the Brazilian way (dd/mm/yyyy).
// Malformed dates are shown as-is rather than hidden.
func (p *Post) DisplayDate() string {
	t, err := time.Parse("2006-01-02", p.Date)
	if err != nil {
		return p.Date
	}
	return t.Format("02/01/2006")
}

// Landing is a standalone landing-page document rendered at /landings/{slug}.
// It shares the Post document shape but lives in its own content family.
type Landing = Post
