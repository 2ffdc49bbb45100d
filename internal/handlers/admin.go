// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Brincar Educando
// server. Handlers are grouped by concern (public site, scroll API, theme
// console) and receive their dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"brincareducando/internal/models"
	"brincareducando/internal/render"
	"brincareducando/internal/store"
	"brincareducando/internal/webhook"
)

// Admin groups the theme console handlers. The console manages the queue
// of post themes feeding the n8n drafting automation.
type Admin struct {
	renderer *render.Renderer
	themes   *store.ThemeStore
	webhook  *webhook.Client
}

// NewAdmin creates the Admin handler group.
func NewAdmin(renderer *render.Renderer, themes *store.ThemeStore, wh *webhook.Client) *Admin {
	return &Admin{renderer: renderer, themes: themes, webhook: wh}
}

// TemasPage renders the theme console: the queue, the used list, and any
// one-shot message carried in the query string by a preceding redirect.
func (a *Admin) TemasPage(w http.ResponseWriter, r *http.Request) {
	fila, err := a.themes.ListByStatus(models.ThemeStatusQueued)
	if err != nil {
		slog.Error("list queued themes failed", "error", err)
	}
	usados, err := a.themes.ListByStatus(models.ThemeStatusUsed)
	if err != nil {
		slog.Error("list used themes failed", "error", err)
	}

	a.renderer.Page(w, http.StatusOK, "temas", &render.PageData{
		Data: map[string]any{
			"Fila":   fila,
			"Usados": usados,
			"Erro":   r.URL.Query().Get("erro"),
			"Msg":    r.URL.Query().Get("msg"),
		},
	})
}

// TemaAdd queues a new theme. Validation runs against a snapshot of the
// current list so the rejection messages can distinguish an exact queue
// duplicate from a theme already used in a post.
func (a *Admin) TemaAdd(w http.ResponseWriter, r *http.Request) {
	titulo := strings.TrimSpace(r.FormValue("titulo"))

	snapshot, err := a.themes.List()
	if err != nil {
		slog.Error("list themes failed", "error", err)
		a.redirect(w, r, "", "Não foi possível carregar a fila. Tente novamente.")
		return
	}

	if msg := store.CanAddTheme(titulo, snapshot); msg != "" {
		a.redirect(w, r, "", msg)
		return
	}

	if _, err := a.themes.Add(titulo); err != nil {
		slog.Error("add theme failed", "error", err, "title", titulo)
		a.redirect(w, r, "", "Não foi possível adicionar o tema.")
		return
	}

	a.redirect(w, r, "Tema adicionado à fila.", "")
}

// TemaUsar marks a theme used and triggers the drafting automation. The
// state change is optimistic: a webhook failure is reported but does not
// roll the theme back, since the automation may have fired anyway.
func (a *Admin) TemaUsar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.redirect(w, r, "", "Tema inválido.")
		return
	}

	tema, err := a.themes.FindByID(id)
	if err != nil {
		slog.Error("find theme failed", "error", err, "id", id)
		a.redirect(w, r, "", "Não foi possível carregar o tema.")
		return
	}
	if tema == nil {
		a.redirect(w, r, "", "Tema não encontrado.")
		return
	}
	if tema.IsUsed() {
		a.redirect(w, r, "", "Tema já foi usado em um post.")
		return
	}

	if err := a.themes.MarkUsed(id); err != nil {
		slog.Error("mark theme used failed", "error", err, "id", id)
		a.redirect(w, r, "", "Não foi possível atualizar o tema.")
		return
	}

	if err := a.webhook.Trigger(r.Context(), tema.Title); err != nil {
		slog.Error("webhook trigger failed", "error", err, "theme", tema.Title)
		a.redirect(w, r, "", "Tema marcado como usado, mas a automação não respondeu. Verifique o n8n.")
		return
	}

	a.redirect(w, r, "Post em geração para \""+tema.Title+"\".", "")
}

// TemaExcluir removes a theme from either list.
func (a *Admin) TemaExcluir(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		a.redirect(w, r, "", "Tema inválido.")
		return
	}

	if err := a.themes.Delete(id); err != nil {
		slog.Error("delete theme failed", "error", err, "id", id)
		a.redirect(w, r, "", "Não foi possível excluir o tema.")
		return
	}

	a.redirect(w, r, "Tema excluído.", "")
}

// redirect sends the browser back to the console, carrying at most one
// message in the query string.
func (a *Admin) redirect(w http.ResponseWriter, r *http.Request, msg, erro string) {
	target := "/admin/temas"
	if msg != "" {
		target += "?msg=" + url.QueryEscape(msg)
	} else if erro != "" {
		target += "?erro=" + url.QueryEscape(erro)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
