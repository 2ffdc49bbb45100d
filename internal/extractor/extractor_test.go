package extractor

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const mercadoLivrePage = `<!DOCTYPE html>
<html><head>
<meta property="og:image" content="https://example.com/og.jpg">
</head><body>
<nav class="andes-breadcrumb">
  <a href="/brinquedos">Brinquedos</a>
  <a href="/brinquedos/educativos">Brinquedos Educativos</a>
</nav>
<h1>Blocos de Montar Coloridos 100 Peças</h1>
<figure class="ui-pdp-gallery__figure">
  <img src="https://example.com/thumb.jpg" data-zoom="https://example.com/full.jpg">
</figure>
<p data-testid="content">Blocos de encaixe para estimular a coordenação motora.</p>
</body></html>`

const amazonPage = `<!DOCTYPE html>
<html><head>
<meta name="description" content="Livro sobre disciplina positiva.">
</head><body>
<div id="wayfinding-breadcrumbs_feature_div">
  <a href="/livros">Livros</a>
  <a href="/livros/familia">Família</a>
</div>
<h1>Disciplina Positiva</h1>
<img itemprop="image" src="https://example.com/capa.jpg">
</body></html>`

func serve(t *testing.T, html string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestExtractMercadoLivre(t *testing.T) {
	url := serve(t, mercadoLivrePage)

	data, err := New().Extract(url)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if data.Title != "Blocos de Montar Coloridos 100 Peças" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.Image != "https://example.com/full.jpg" {
		t.Errorf("Image = %q, want gallery zoom image", data.Image)
	}
	if data.Description != "Blocos de encaixe para estimular a coordenação motora." {
		t.Errorf("Description = %q", data.Description)
	}
	if data.Category != "Brinquedos Educativos" {
		t.Errorf("Category = %q, want last breadcrumb", data.Category)
	}
}

func TestExtractAmazon(t *testing.T) {
	url := serve(t, amazonPage)

	data, err := New().Extract(url)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if data.Title != "Disciplina Positiva" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.Image != "https://example.com/capa.jpg" {
		t.Errorf("Image = %q", data.Image)
	}
	if data.Description != "Livro sobre disciplina positiva." {
		t.Errorf("Description = %q", data.Description)
	}
	if data.Category != "Família" {
		t.Errorf("Category = %q", data.Category)
	}
}

func TestExtractSparsePage(t *testing.T) {
	url := serve(t, `<html><body><h1>Só Título</h1></body></html>`)

	data, err := New().Extract(url)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if data.Title != "Só Título" {
		t.Errorf("Title = %q", data.Title)
	}
	if data.Image != "" || data.Description != "" || data.Category != "" {
		t.Errorf("expected empty optional fields, got %+v", data)
	}
}

func TestExtractUnreachable(t *testing.T) {
	if _, err := New().Extract("http://127.0.0.1:1/produto"); err == nil {
		t.Fatal("expected error for unreachable URL")
	}
}
