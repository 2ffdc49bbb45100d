package router

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"brincareducando/internal/cache"
	"brincareducando/internal/catalog"
	"brincareducando/internal/content"
	"brincareducando/internal/handlers"
	"brincareducando/internal/render"
	"brincareducando/internal/scroll"
	"brincareducando/internal/session"
	"brincareducando/internal/store"
	"brincareducando/internal/webhook"
)

// testRouter wires the full route table. The theme store gets a lazy DB
// handle that never connects; console pages degrade to empty lists, which
// is enough to exercise routing and the token gate.
func testRouter(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	renderer, err := render.New("Brincar Educando", "https://brincareducando.com.br")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	cs := content.NewStore(fstest.MapFS{})
	carousel := catalog.NewCarousel(nil)
	t.Cleanup(carousel.Stop)

	db, err := sql.Open("pgx", "postgres://nobody@localhost:1/none")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	public := handlers.NewPublic(renderer, cs, carousel, cache.NewPageCache(client, time.Minute))
	scrollAPI := handlers.NewScroll(session.NewStore(client, false), scroll.NewStore(client, 0))
	admin := handlers.NewAdmin(renderer, store.NewThemeStore(db), webhook.NewClient(""))

	return New(public, scrollAPI, admin, Options{
		AdminToken: "token-teste",
		PublicDir:  t.TempDir(),
	})
}

func TestHealthRoute(t *testing.T) {
	h := testRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestPublicRoutesRespond(t *testing.T) {
	h := testRouter(t)

	for _, path := range []string{"/", "/blog", "/loja", "/sobre", "/produtos-recomendados", "/politica-privacidade", "/termos-de-uso"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, w.Code)
		}
	}
}

func TestUnknownRouteRenders404Page(t *testing.T) {
	h := testRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nada-aqui", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Página não encontrada") {
		t.Error("404 should render the site's not-found page")
	}
}

func TestAdminRequiresToken(t *testing.T) {
	h := testRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/temas", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("without token: status = %d, want 401", w.Code)
	}

	r := httptest.NewRequest(http.MethodGet, "/admin/temas", nil)
	r.Header.Set("Authorization", "Bearer token-teste")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("with token: status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Fila de temas") {
		t.Error("console page not rendered")
	}
}

func TestSitemapMissingIs404(t *testing.T) {
	h := testRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 before generation", w.Code)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	h := testRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/js/scroll.js", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "scroll") {
		t.Error("scroll script not served")
	}
}
