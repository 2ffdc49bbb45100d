package markdown

import (
	"strings"
	"testing"
)

func TestToHTML_BasicMarkdown(t *testing.T) {
	out, err := ToHTML("# Título\n\nUm parágrafo com **negrito**.")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, "<h1") {
		t.Errorf("expected heading in output, got %q", out)
	}
	if !strings.Contains(out, "<strong>negrito</strong>") {
		t.Errorf("expected bold text in output, got %q", out)
	}
}

func TestToHTML_Callouts(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		tone string
	}{
		{"info box", "Info", "info"},
		{"tip box", "Tip", "tip"},
		{"warning box", "Warning", "warning"},
		{"generic callout", "Callout", "callout"},
		{"checklist", "Checklist", "checklist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "<" + tt.tag + ">\n\nConteúdo da caixa.\n\n</" + tt.tag + ">"
			out, err := ToHTML(src)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			want := `<div class="callout callout-` + tt.tone + `">`
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output, got %q", want, out)
			}
			if !strings.Contains(out, "</div>") {
				t.Errorf("expected closing div in output, got %q", out)
			}
		})
	}
}

func TestToHTML_CalloutTitle(t *testing.T) {
	out, err := ToHTML(`<Info title="Dica de ouro">corpo</Info>`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, `<p class="callout-title">Dica de ouro</p>`) {
		t.Errorf("expected callout title in output, got %q", out)
	}
}

func TestToHTML_CalloutTitleEscaped(t *testing.T) {
	out, err := ToHTML(`<Info title="a <b> ampersand &">corpo</Info>`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(out, `<p class="callout-title">a <b>`) {
		t.Errorf("title was not escaped: %q", out)
	}
}

func TestToHTML_ImageWrapper(t *testing.T) {
	out, err := ToHTML(`<Image src="/images/tapete.png" alt="Tapete sensorial" />`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, `<figure class="post-image">`) {
		t.Errorf("expected figure wrapper, got %q", out)
	}
	if !strings.Contains(out, `src="/images/tapete.png"`) {
		t.Errorf("expected image src, got %q", out)
	}
	if !strings.Contains(out, `alt="Tapete sensorial"`) {
		t.Errorf("expected alt text, got %q", out)
	}
	if !strings.Contains(out, `loading="lazy"`) {
		t.Errorf("expected lazy loading attribute, got %q", out)
	}
}

func TestToHTML_ImageWithoutAlt(t *testing.T) {
	out, err := ToHTML(`<Image src="/images/x.png">`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, `alt=""`) {
		t.Errorf("expected empty alt attribute, got %q", out)
	}
}

func TestToHTML_UnknownTagLeftAlone(t *testing.T) {
	out, err := ToHTML(`<Banner>texto</Banner>`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(out, `class="callout`) {
		t.Errorf("unknown tag should not become a callout: %q", out)
	}
}

func TestToHTML_HeadingAnchors(t *testing.T) {
	out, err := ToHTML("## Categorias")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, `id="categorias"`) {
		t.Errorf("expected auto heading id, got %q", out)
	}
}
