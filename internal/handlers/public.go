// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"brincareducando/internal/cache"
	"brincareducando/internal/catalog"
	"brincareducando/internal/content"
	"brincareducando/internal/models"
	"brincareducando/internal/render"
)

// Public groups handlers for the public-facing site. Rendered pages are
// checked against the Valkey page cache first and stored there on miss;
// every page is a pure function of the content directory and the query
// string, so route+query is a sufficient cache key.
type Public struct {
	renderer  *render.Renderer
	content   *content.Store
	carousel  *catalog.Carousel
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. carousel may be nil when
// the homepage has no featured products.
func NewPublic(renderer *render.Renderer, contentStore *content.Store, carousel *catalog.Carousel, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		content:   contentStore,
		carousel:  carousel,
		pageCache: pageCache,
	}
}

// homeLatestPosts is how many recent posts the homepage shows.
const homeLatestPosts = 4

// servePage renders the named template, serving from and filling the page
// cache keyed by route+query. Status is always 200 here; error pages skip
// the cache entirely.
func (p *Public) servePage(w http.ResponseWriter, r *http.Request, name string, data *render.PageData) {
	ctx := r.Context()
	key := cache.RouteKey(r.URL.Path, r.URL.RawQuery)

	if cached, ok := p.pageCache.Get(ctx, key); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, name, data); err != nil {
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, key, buf.Bytes())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Home renders the homepage: latest posts plus the featured-product
// carousel's current window.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	posts := content.SortByDateDesc(p.content.Posts())
	if len(posts) > homeLatestPosts {
		posts = posts[:homeLatestPosts]
	}

	// All featured cards go into the markup; the carousel script hides
	// everything outside the current window, so no-script visitors just
	// see the whole selection.
	featured := p.content.Featured(0)
	data := map[string]any{"Posts": posts}
	if len(featured) > 0 {
		data["Destaques"] = featured
		data["CarrosselTotal"] = len(featured)
		data["CarrosselInicio"] = 0
		if p.carousel != nil {
			data["CarrosselInicio"] = p.carousel.Start()
		}
	}

	p.servePage(w, r, "home", &render.PageData{
		Title:       "Atividades e produtos para a primeira infância",
		Description: "Ideias de atividades, rotinas e produtos escolhidos a dedo para brincar e educar.",
		Path:        "/",
		Data:        data,
	})
}

// Blog renders the post listing, newest first.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "blog", &render.PageData{
		Title:       "Blog",
		Description: "Todos os posts sobre atividades, rotina e desenvolvimento infantil.",
		Path:        "/blog",
		Data: map[string]any{
			"Posts": content.SortByDateDesc(p.content.Posts()),
		},
	})
}

// Post renders a single blog post. The optional "de" query parameter names
// the listing the reader came from, so the back link returns there.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post := p.content.PostBySlug(slug)
	if post == nil {
		p.NotFound(w, r)
		return
	}

	var related []models.Product
	if post.Category != "" {
		related = catalog.FilterByCategory(p.content.Products(), post.Category)
		if len(related) > 3 {
			related = related[:3]
		}
	}

	p.servePage(w, r, "post", &render.PageData{
		Title:       post.Title,
		Description: post.Excerpt,
		Path:        "/blog/" + post.Slug,
		NoIndex:     post.Options.NoIndex,
		Data: map[string]any{
			"Post":         post,
			"Relacionados": related,
			"Voltar":       backTarget(r, "/"),
		},
	})
}

// Loja renders the product catalog with category filter and pagination.
// "categoria" selects a filter (clicking the active one again clears it,
// which the filter links encode); "pagina" selects the page.
func (p *Public) Loja(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("categoria")
	// URLs are 1-based; the paginator is 0-based and clamps whatever
	// nonsense arrives in the query string.
	pagina, _ := strconv.Atoi(r.URL.Query().Get("pagina"))

	all := p.content.Products()
	filtered := catalog.FilterByCategory(all, active)
	page := catalog.Paginate(filtered, pagina-1)

	campaign := catalog.DefaultCampaign
	if active != "" {
		campaign = active
	}

	p.servePage(w, r, "loja", &render.PageData{
		Title:       "Loja",
		Description: "Produtos testados e pesquisados para brincar e aprender.",
		Path:        "/loja",
		Data: map[string]any{
			"Pagina":     page,
			"Categorias": catalog.CountsByCategory(all),
			"Ativa":      active,
			"Campanha":   campaign,
		},
	})
}

// Produto renders a product detail page with related products from the
// same category.
func (p *Public) Produto(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	produto := p.content.ProductBySlug(slug)
	if produto == nil {
		p.notFound(w, r, "Produto não encontrado",
			"Este produto não está mais na nossa seleção.",
			"/loja", "Voltar à loja")
		return
	}

	p.servePage(w, r, "produto", &render.PageData{
		Title:       produto.Title,
		Description: produto.Excerpt,
		Path:        "/loja/produto/" + produto.Slug,
		Data: map[string]any{
			"Produto":      produto,
			"Relacionados": catalog.RelatedProducts(p.content.Products(), produto, 4),
			"Campanha":     "produto",
			"Voltar":       backTarget(r, "/loja"),
		},
	})
}

// Landing renders a landing page document.
func (p *Public) Landing(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	landing := p.content.LandingBySlug(slug)
	if landing == nil {
		p.NotFound(w, r)
		return
	}

	p.servePage(w, r, "landing", &render.PageData{
		Title:       landing.Title,
		Description: landing.Excerpt,
		Path:        "/landings/" + landing.Slug,
		NoIndex:     landing.Options.NoIndex,
		Data: map[string]any{
			"Landing": landing,
		},
	})
}

// Sobre renders the about page.
func (p *Public) Sobre(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "sobre", &render.PageData{
		Title:       "Sobre",
		Description: "Quem faz o Brincar Educando e por quê.",
		Path:        "/sobre",
	})
}

// Recomendados renders the featured-product selection page.
func (p *Public) Recomendados(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "recomendados", &render.PageData{
		Title:       "Produtos recomendados",
		Description: "A seleção de produtos que mais indicamos.",
		Path:        "/produtos-recomendados",
		Data: map[string]any{
			"Produtos": p.content.Featured(0),
			"Campanha": "recomendados",
		},
	})
}

// Politica renders the privacy policy.
func (p *Public) Politica(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "politica", &render.PageData{
		Title: "Política de Privacidade",
		Path:  "/politica-privacidade",
	})
}

// Termos renders the terms of use.
func (p *Public) Termos(w http.ResponseWriter, r *http.Request) {
	p.servePage(w, r, "termos", &render.PageData{
		Title: "Termos de Uso",
		Path:  "/termos-de-uso",
	})
}

// NotFound renders the generic 404 page. Never cached.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.notFound(w, r, "Página não encontrada",
		"O endereço que você procurou não existe ou foi movido.",
		"/", "Voltar para o início")
}

func (p *Public) notFound(w http.ResponseWriter, r *http.Request, title, msg, voltar, label string) {
	p.renderer.Page(w, http.StatusNotFound, "404", &render.PageData{
		Title:   title,
		Path:    r.URL.Path,
		NoIndex: true,
		Data: map[string]any{
			"Mensagem":    msg,
			"Voltar":      voltar,
			"VoltarLabel": label,
		},
	})
}

// backTarget returns the "de" query parameter when it names a local path,
// or fallback otherwise. Only same-site paths are accepted so the back
// link can never leave the site.
func backTarget(r *http.Request, fallback string) string {
	de := r.URL.Query().Get("de")
	if strings.HasPrefix(de, "/") && !strings.HasPrefix(de, "//") {
		return de
	}
	return fallback
}
