// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package scroll restores per-path scroll positions across route changes.
// Offsets are recorded right before leaving a path and kept per browsing
// session in Valkey; the resolution policy on arrival is a pure function so
// it can be tested without a client or a store.
package scroll

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NavType is how the user reached the current path.
type NavType string

const (
	NavPush    NavType = "push"    // fresh forward navigation
	NavReplace NavType = "replace" // in-place replacement
	NavPop     NavType = "pop"     // browser back/forward
)

// Navigation describes an arrival at a path.
type Navigation struct {
	Path string
	Hash string // in-page anchor name, without the leading '#'
	Type NavType
}

// ActionKind tells the client what to do with the viewport on arrival.
type ActionKind string

const (
	// ActionAnchor scrolls a named in-page element into view.
	ActionAnchor ActionKind = "anchor"
	// ActionRestore jumps to a previously recorded offset.
	ActionRestore ActionKind = "restore"
	// ActionTop jumps to the top of the page.
	ActionTop ActionKind = "top"
)

// Action is the resolved scroll behavior. All jumps are instant; smooth
// scrolling on route change reads as lag.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Offset int        `json:"offset,omitempty"`
	Anchor string     `json:"anchor,omitempty"`
}

// Resolve applies the arrival policy, first match wins:
//  1. a hash naming an existing anchor scrolls that anchor into view;
//  2. back/forward navigation restores the saved offset, top if none;
//  3. any fresh navigation lands at the top, listing and detail routes alike.
//
// saved is the recorded offset for the arriving path (nil when absent);
// hasAnchor reports whether the named anchor exists on the target page.
func Resolve(nav Navigation, saved *int, hasAnchor func(string) bool) Action {
	if nav.Hash != "" && hasAnchor != nil && hasAnchor(nav.Hash) {
		return Action{Kind: ActionAnchor, Anchor: nav.Hash}
	}

	if nav.Type == NavPop {
		if saved != nil {
			return Action{Kind: ActionRestore, Offset: *saved}
		}
		return Action{Kind: ActionTop}
	}

	return Action{Kind: ActionTop}
}

// DefaultTTL is how long scroll records outlive their last write. It
// matches the browsing-session lifetime: records are session-scoped state,
// not durable data.
const DefaultTTL = 24 * time.Hour

// keyPrefix namespaces scroll records in Valkey.
const keyPrefix = "scroll:"

// Store keeps per-session, per-path scroll offsets in Valkey.
// Last write wins; there is at most one record per (session, path).
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a scroll-record store backed by the given Valkey client.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

func key(session, path string) string {
	return fmt.Sprintf("%s%s:%s", keyPrefix, session, path)
}

// Record persists the offset of the path being left. Negative offsets are
// clamped to zero. Store errors are logged, not surfaced: losing a scroll
// position must never break navigation.
func (s *Store) Record(ctx context.Context, session, path string, offset int) {
	if offset < 0 {
		offset = 0
	}
	if err := s.client.Set(ctx, key(session, path), offset, s.ttl).Err(); err != nil {
		slog.Warn("scroll record failed", "path", path, "error", err)
	}
}

// Lookup returns the recorded offset for the arriving path, or nil when no
// record exists (or the store is unreachable, which degrades the same way).
func (s *Store) Lookup(ctx context.Context, session, path string) *int {
	val, err := s.client.Get(ctx, key(session, path)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		slog.Warn("scroll lookup failed", "path", path, "error", err)
		return nil
	}
	offset, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &offset
}

// Arrive resolves the scroll action for a navigation using this store's
// records for the session.
func (s *Store) Arrive(ctx context.Context, session string, nav Navigation, hasAnchor func(string) bool) Action {
	return Resolve(nav, s.Lookup(ctx, session, nav.Path), hasAnchor)
}
