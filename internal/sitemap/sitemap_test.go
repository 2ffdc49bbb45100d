package sitemap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeDoc(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("---\ntitle: x\n---\ncorpo"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateCounts(t *testing.T) {
	posts := t.TempDir()
	landings := t.TempDir()
	writeDoc(t, posts, "post-um.md")
	writeDoc(t, posts, "post-dois.md")
	writeDoc(t, posts, "notas.txt") // non-markdown, ignored
	writeDoc(t, landings, "guia.md")

	data, err := Generate("https://brincareducando.com.br", posts, landings)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := string(data)

	// 7 static routes + 2 posts + 1 landing = 10 URL entries.
	if got := strings.Count(out, "<url>"); got != 10 {
		t.Errorf("got %d <url> entries, want 10", got)
	}

	// Every loc carries the base URL prefix.
	if got := strings.Count(out, "<loc>https://brincareducando.com.br"); got != 10 {
		t.Errorf("got %d prefixed <loc> entries, want 10", got)
	}

	for _, want := range []string{
		"<loc>https://brincareducando.com.br/</loc>",
		"<loc>https://brincareducando.com.br/blog/post-um</loc>",
		"<loc>https://brincareducando.com.br/landings/guia</loc>",
		`xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`,
		"<changefreq>daily</changefreq>",
		"<priority>0.7</priority>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in sitemap:\n%s", want, out)
		}
	}
}

func TestGenerateLastMod(t *testing.T) {
	posts := t.TempDir()
	writeDoc(t, posts, "post.md")

	data, err := Generate("https://example.com", posts, filepath.Join(posts, "missing"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	if !strings.Contains(string(data), "<lastmod>"+today+"</lastmod>") {
		t.Errorf("expected lastmod %s in output:\n%s", today, data)
	}
}

func TestGenerateMissingDirsDegrade(t *testing.T) {
	data, err := Generate("https://example.com", "/nonexistent/posts", "/nonexistent/landings")
	if err != nil {
		t.Fatalf("Generate must not fail on missing dirs: %v", err)
	}
	// Static routes only.
	if got := strings.Count(string(data), "<url>"); got != len(StaticRoutes) {
		t.Errorf("got %d entries, want %d static-only", got, len(StaticRoutes))
	}
}

func TestWriteFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public", "sitemap.xml")

	if err := WriteFile(out, "https://example.com", "/none", "/none"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "<?xml") {
		t.Errorf("expected XML declaration, got %q", data[:20])
	}
}
