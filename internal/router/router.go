// Package router sets up all HTTP routes and middleware chains for the
// Brincar Educando server. It organizes routes into public, scroll API
// and theme console groups with appropriate middleware stacks.
package router

import (
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"brincareducando/internal/handlers"
	"brincareducando/internal/middleware"
	"brincareducando/web"
)

// Options carries the router's non-handler configuration.
type Options struct {
	AdminToken string
	PublicDir  string // where bectl sitemap writes sitemap.xml
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, scrollAPI *handlers.Scroll, admin *handlers.Admin, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	// Embedded static assets (CSS, scroll script).
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Sitemap is a build artifact written by bectl into the public dir.
	r.Get("/sitemap.xml", sitemapHandler(opts.PublicDir))

	// Scroll API. The beacon fires on every route change, so it gets its
	// own generous per-IP budget instead of the page routes' none.
	scrollLimiter := middleware.NewRateLimiter(120, time.Minute)
	r.Route("/api/scroll", func(r chi.Router) {
		r.Use(scrollLimiter.Middleware)
		r.Post("/registrar", scrollAPI.Record)
		r.Post("/resolver", scrollAPI.Resolve)
	})

	// Theme console, gated by the shared admin token.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminToken(opts.AdminToken))
		r.Get("/temas", admin.TemasPage)
		r.Post("/temas", admin.TemaAdd)
		r.Post("/temas/{id}/usar", admin.TemaUsar)
		r.Post("/temas/{id}/excluir", admin.TemaExcluir)
	})

	// Public site.
	r.Get("/", public.Home)
	r.Get("/blog", public.Blog)
	r.Get("/blog/{slug}", public.Post)
	r.Get("/loja", public.Loja)
	r.Get("/loja/produto/{slug}", public.Produto)
	r.Get("/landings/{slug}", public.Landing)
	r.Get("/sobre", public.Sobre)
	r.Get("/produtos-recomendados", public.Recomendados)
	r.Get("/politica-privacidade", public.Politica)
	r.Get("/termos-de-uso", public.Termos)

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// sitemapHandler serves the generated sitemap.xml, 404 when it has not
// been generated yet.
func sitemapHandler(publicDir string) http.HandlerFunc {
	path := filepath.Join(publicDir, "sitemap.xml")
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(path); err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		http.ServeFile(w, r, path)
	}
}
