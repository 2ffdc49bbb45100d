package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brincareducando/internal/database"
	"brincareducando/internal/models"
	"brincareducando/internal/render"
	"brincareducando/internal/store"
	"brincareducando/internal/webhook"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func adminTestDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "brincareducando")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "brincareducando")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := database.Connect(dsn)
	if err != nil {
		t.Skipf("skipping: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testConsole wires the theme console over a real database and a stub
// webhook endpoint, returning the router and the number of webhook calls.
func testConsole(t *testing.T, webhookStatus int) (http.Handler, *store.ThemeStore, *int) {
	t.Helper()

	db := adminTestDB(t)
	themes := store.NewThemeStore(db)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(webhookStatus)
	}))
	t.Cleanup(srv.Close)

	renderer, err := render.New("Brincar Educando", "https://brincareducando.com.br")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	admin := NewAdmin(renderer, themes, webhook.NewClient(srv.URL))

	r := chi.NewRouter()
	r.Get("/admin/temas", admin.TemasPage)
	r.Post("/admin/temas", admin.TemaAdd)
	r.Post("/admin/temas/{id}/usar", admin.TemaUsar)
	r.Post("/admin/temas/{id}/excluir", admin.TemaExcluir)

	return r, themes, &calls
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestTemaAddAndListed(t *testing.T) {
	h, themes, _ := testConsole(t, http.StatusOK)

	titulo := "tema-teste-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanupTema(t, themes, titulo) })

	w := postForm(t, h, "/admin/temas", url.Values{"titulo": {titulo}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}

	page := httptest.NewRecorder()
	h.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/admin/temas", nil))
	if !strings.Contains(page.Body.String(), titulo) {
		t.Error("added theme not listed on the console")
	}
}

func TestTemaAddRejectsEmpty(t *testing.T) {
	h, _, _ := testConsole(t, http.StatusOK)

	w := postForm(t, h, "/admin/temas", url.Values{"titulo": {"   "}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.Contains(loc, "erro=") {
		t.Errorf("expected rejection message in redirect, got %q", loc)
	}
}

func TestTemaUsarTriggersWebhook(t *testing.T) {
	h, themes, calls := testConsole(t, http.StatusOK)

	titulo := "tema-teste-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanupTema(t, themes, titulo) })

	tema, err := themes.Add(titulo)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	w := postForm(t, h, "/admin/temas/"+tema.ID.String()+"/usar", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}
	if *calls != 1 {
		t.Errorf("webhook calls = %d, want 1", *calls)
	}

	after, err := themes.FindByID(tema.ID)
	if err != nil || after == nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !after.IsUsed() {
		t.Error("theme should be marked used")
	}
}

func TestTemaUsarKeepsMarkOnWebhookFailure(t *testing.T) {
	h, themes, _ := testConsole(t, http.StatusInternalServerError)

	titulo := "tema-teste-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanupTema(t, themes, titulo) })

	tema, err := themes.Add(titulo)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	w := postForm(t, h, "/admin/temas/"+tema.ID.String()+"/usar", nil)
	loc := w.Header().Get("Location")
	if !strings.Contains(loc, "erro=") {
		t.Errorf("expected webhook failure to be reported, got %q", loc)
	}

	// Optimistic mark: the automation may have fired despite the error,
	// so the theme stays used.
	after, _ := themes.FindByID(tema.ID)
	if after == nil || !after.IsUsed() {
		t.Error("theme should stay marked used after webhook failure")
	}
}

func TestTemaUsarRejectsUsedTheme(t *testing.T) {
	h, themes, calls := testConsole(t, http.StatusOK)

	titulo := "tema-teste-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanupTema(t, themes, titulo) })

	tema, err := themes.Add(titulo)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := themes.MarkUsed(tema.ID); err != nil {
		t.Fatalf("MarkUsed: %v", err)
	}

	w := postForm(t, h, "/admin/temas/"+tema.ID.String()+"/usar", nil)
	loc := w.Header().Get("Location")
	if !strings.Contains(loc, "erro=") {
		t.Errorf("expected rejection, got %q", loc)
	}
	if *calls != 0 {
		t.Errorf("webhook should not fire for a used theme, calls = %d", *calls)
	}
}

func TestTemaExcluir(t *testing.T) {
	h, themes, _ := testConsole(t, http.StatusOK)

	titulo := "tema-teste-" + uuid.NewString()[:8]
	tema, err := themes.Add(titulo)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	t.Cleanup(func() { cleanupTema(t, themes, titulo) })

	w := postForm(t, h, "/admin/temas/"+tema.ID.String()+"/excluir", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d", w.Code)
	}

	after, err := themes.FindByID(tema.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if after != nil {
		t.Error("theme should be gone after delete")
	}
}

// cleanupTema removes test themes regardless of which state they ended in.
func cleanupTema(t *testing.T, themes *store.ThemeStore, titulo string) {
	t.Helper()
	for _, status := range []models.ThemeStatus{models.ThemeStatusQueued, models.ThemeStatusUsed} {
		list, err := themes.ListByStatus(status)
		if err != nil {
			continue
		}
		for _, tema := range list {
			if store.NormalizeTheme(tema.Title) == store.NormalizeTheme(titulo) {
				themes.Delete(tema.ID)
			}
		}
	}
}
