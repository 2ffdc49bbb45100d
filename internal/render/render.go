// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the theme console. Page templates pair with the shared base layout; the
// console is standalone with its own document shell.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"brincareducando/internal/catalog"
)

//go:embed templates/site/*.html templates/admin/*.html
var templateFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title       string         // page title, composed with the site name in <title>
	Description string         // meta description
	Path        string         // current request path, for canonical URL and nav state
	NoIndex     bool           // emit <meta name="robots" content="noindex">
	SiteName    string
	SiteURL     string
	Data        map[string]any // page-specific data
}

// Canonical returns the absolute canonical URL of the page.
func (d *PageData) Canonical() string {
	return d.SiteURL + d.Path
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	siteName  string
	siteURL   string
}

// standaloneTemplates render as full HTML documents without the site layout.
var standaloneTemplates = map[string]bool{
	"temas": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each site page template is paired with the base layout.
func New(siteName, siteURL string) (*Renderer, error) {
	funcMap := template.FuncMap{
		// afiliado builds the tagged outbound link for a product URL.
		"afiliado": func(link, campaign string) string {
			return catalog.BuildAffiliateLink(link, campaign)
		},
		// categoria resolves a category slug to its display name.
		"categoria": catalog.CategoryName,
		// ate yields 1..n for pagination links.
		"ate": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i + 1
			}
			return out
		},
		"add": func(a, b int) int { return a + b },
		// html marks pre-rendered markdown output as safe. Only content
		// from the repository's own content directory passes through here.
		"html": func(s string) template.HTML {
			return template.HTML(s)
		},
		"ano": func() int { return time.Now().Year() },
	}

	r := &Renderer{
		templates: make(map[string]*template.Template),
		siteName:  siteName,
		siteURL:   siteURL,
	}

	for _, group := range []string{"site", "admin"} {
		entries, err := templateFS.ReadDir("templates/" + group)
		if err != nil {
			return nil, fmt.Errorf("read embedded templates: %w", err)
		}

		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || name == "base.html" {
				continue
			}

			tmplName := name[:len(name)-len(".html")]

			var tmpl *template.Template
			var parseErr error
			if standaloneTemplates[tmplName] {
				tmpl, parseErr = template.New(name).Funcs(funcMap).ParseFS(
					templateFS, "templates/"+group+"/"+name,
				)
			} else {
				tmpl, parseErr = template.New("base.html").Funcs(funcMap).ParseFS(
					templateFS, "templates/site/base.html", "templates/"+group+"/"+name,
				)
			}
			if parseErr != nil {
				return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
			}

			r.templates[tmplName] = tmpl
		}
	}

	return r, nil
}

// Page renders the named template with the site layout (or standalone for
// console pages) and writes it to w with the HTML content type.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data *PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := rn.Render(w, name, data); err != nil {
		// Status is already on the wire; all we can do is log-free degrade.
		fmt.Fprint(w, "<!-- render error -->")
	}
}

// Render executes the named template into w, filling in site identity.
// Exported separately so handlers can render into a buffer for caching.
func (rn *Renderer) Render(w io.Writer, name string, data *PageData) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	if data == nil {
		data = &PageData{}
	}
	data.SiteName = rn.siteName
	data.SiteURL = rn.siteURL

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	return tmpl.ExecuteTemplate(w, execName, data)
}
