// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts post and landing bodies into HTML using goldmark.
// Post authors use a small set of semantic callout tags (<Info>, <Tip>,
// <Warning>, <Callout>, <Checklist>) and an <Image> wrapper inside their
// markdown; these are rewritten to styled HTML before conversion, and the
// unsafe pass-through keeps the resulting raw HTML intact.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"regexp"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // tables, strikethrough, autolinks, task lists
		extension.Typographer, // smart quotes and dashes
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // heading IDs double as scroll anchors
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(), // keep the rewritten callout/figure HTML
	),
)

// calloutTones maps the semantic tag names authors write to the CSS tone
// class used by the stylesheet. Tag matching is exact (capitalized), the
// same fixed set the original posts were written against.
var calloutTones = map[string]string{
	"Info":      "info",
	"Tip":       "tip",
	"Warning":   "warning",
	"Callout":   "callout",
	"Checklist": "checklist",
}

var (
	calloutOpen  = regexp.MustCompile(`<(Info|Tip|Warning|Callout|Checklist)(?:\s+title="([^"]*)")?\s*>`)
	calloutClose = regexp.MustCompile(`</(Info|Tip|Warning|Callout|Checklist)>`)
	imageTag     = regexp.MustCompile(`<Image\s+src="([^"]*)"(?:\s+alt="([^"]*)")?\s*/?>`)
)

// ToHTML converts a post body into HTML. Callout and image tags are
// rewritten first so goldmark passes them through as raw HTML blocks.
func ToHTML(source string) (string, error) {
	rewritten := rewriteComponents(source)

	var buf bytes.Buffer
	if err := md.Convert([]byte(rewritten), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

// rewriteComponents replaces the semantic component tags with plain HTML.
// Unknown tags are left alone and end up escaped by goldmark.
func rewriteComponents(source string) string {
	out := calloutOpen.ReplaceAllStringFunc(source, func(m string) string {
		groups := calloutOpen.FindStringSubmatch(m)
		tone := calloutTones[groups[1]]
		if groups[2] != "" {
			return fmt.Sprintf(`<div class="callout callout-%s"><p class="callout-title">%s</p>`,
				tone, html.EscapeString(groups[2]))
		}
		return fmt.Sprintf(`<div class="callout callout-%s">`, tone)
	})

	out = calloutClose.ReplaceAllString(out, `</div>`)

	out = imageTag.ReplaceAllStringFunc(out, func(m string) string {
		groups := imageTag.FindStringSubmatch(m)
		src := html.EscapeString(groups[1])
		alt := html.EscapeString(groups[2])
		return fmt.Sprintf(`<figure class="post-image"><img src="%s" alt="%s" loading="lazy"></figure>`, src, alt)
	})

	return out
}
