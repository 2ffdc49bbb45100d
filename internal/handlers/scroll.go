// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"brincareducando/internal/scroll"
	"brincareducando/internal/session"
)

// Scroll groups the JSON endpoints backing the client-side scroll
// restoration script. Positions are scoped to the anonymous browsing
// session, so two visitors never see each other's reading position.
type Scroll struct {
	sessions *session.Store
	store    *scroll.Store
}

// NewScroll creates the scroll API handler group.
func NewScroll(sessions *session.Store, store *scroll.Store) *Scroll {
	return &Scroll{sessions: sessions, store: store}
}

// recordRequest is the beacon sent right before leaving a path.
type recordRequest struct {
	Path   string `json:"path"`
	Offset int    `json:"offset"`
}

// resolveRequest describes an arrival; AnchorExists reports whether the
// hash names an element actually present on the new page.
type resolveRequest struct {
	Path         string `json:"path"`
	Hash         string `json:"hash"`
	Nav          string `json:"nav"` // "push", "replace" or "pop"
	AnchorExists bool   `json:"anchor_exists"`
}

// Record stores the scroll offset of the path being left.
func (s *Scroll) Record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validPath(req.Path) {
		http.Error(w, `{"error":"invalid request"}`, http.StatusBadRequest)
		return
	}

	sid, err := s.sessions.Ensure(r.Context(), w, r)
	if err != nil {
		http.Error(w, `{"error":"session unavailable"}`, http.StatusServiceUnavailable)
		return
	}

	s.store.Record(r.Context(), sid, req.Path, req.Offset)
	w.WriteHeader(http.StatusNoContent)
}

// Resolve answers where the viewport should land after a navigation.
func (s *Scroll) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !validPath(req.Path) {
		http.Error(w, `{"error":"invalid request"}`, http.StatusBadRequest)
		return
	}

	sid, err := s.sessions.Ensure(r.Context(), w, r)
	if err != nil {
		http.Error(w, `{"error":"session unavailable"}`, http.StatusServiceUnavailable)
		return
	}

	nav := scroll.Navigation{
		Path: req.Path,
		Hash: req.Hash,
		Type: scroll.NavType(req.Nav),
	}
	action := s.store.Arrive(r.Context(), sid, nav, func(string) bool {
		return req.AnchorExists
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(action)
}

// validPath accepts only local absolute paths.
func validPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}
