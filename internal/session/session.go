// Package session provides anonymous browsing-session identity. The site
// has no public login; a session exists only to scope transient per-visitor
// state (scroll records) and expires with its Valkey TTL when the visitor
// goes away.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the name of the browsing-session cookie.
	CookieName = "be_session"

	// DefaultTTL is how long a session lives in Valkey past its last touch.
	DefaultTTL = 24 * time.Hour

	// keyPrefix namespaces session keys in Valkey.
	keyPrefix = "session:"

	// idLength is the byte length of the random session ID (16 bytes = 32 hex chars).
	idLength = 16
)

// Store manages browsing-session lifecycle in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store backed by the given Valkey client.
// secure marks the cookie HTTPS-only (set outside development).
func NewStore(client *redis.Client, secure bool) *Store {
	return &Store{client: client, ttl: DefaultTTL, secure: secure}
}

// Ensure returns the request's session ID, creating a new session and
// setting the cookie when none exists. The session TTL is refreshed on
// every call, so the session lives as long as the visitor keeps browsing.
func (s *Store) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		exists, err := s.client.Exists(ctx, keyPrefix+cookie.Value).Result()
		if err == nil && exists > 0 {
			s.client.Expire(ctx, keyPrefix+cookie.Value, s.ttl)
			return cookie.Value, nil
		}
		// Expired or unknown ID: fall through and mint a fresh one.
	}

	id, err := generateID()
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+id, time.Now().Unix(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return id, nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
