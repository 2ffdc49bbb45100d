// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the database-backed stores. The only relational data
// the site owns is the editorial theme queue driven from the admin console.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"brincareducando/internal/models"
)

// NormalizeTheme produces the canonical form used for duplicate detection:
// trimmed and lowercased. "Rotina do Sono " and "rotina do sono" are the
// same theme.
func NormalizeTheme(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// CanAddTheme checks a candidate title against a snapshot of existing
// themes. It returns a user-facing rejection message, or "" when the theme
// may be added. Pure: usable in tests and form validation without a DB.
func CanAddTheme(title string, snapshot []models.Theme) string {
	norm := NormalizeTheme(title)
	if norm == "" {
		return "Digite um tema antes de adicionar."
	}
	for _, t := range snapshot {
		if NormalizeTheme(t.Title) != norm {
			continue
		}
		if t.IsUsed() {
			return "Tema já foi usado em um post."
		}
		return "Tema já está na lista de 'A usar'."
	}
	return ""
}

// ThemeStore handles all theme-queue database operations.
type ThemeStore struct {
	db *sql.DB
}

// NewThemeStore creates a new ThemeStore with the given database connection.
func NewThemeStore(db *sql.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

const themeColumns = `id, title, status, created_at, updated_at`

// List returns all themes, newest first.
func (s *ThemeStore) List() ([]models.Theme, error) {
	rows, err := s.db.Query(`SELECT ` + themeColumns + ` FROM themes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()
	return scanThemes(rows)
}

// ListByStatus returns the themes in one lifecycle state, newest first.
func (s *ThemeStore) ListByStatus(status models.ThemeStatus) ([]models.Theme, error) {
	rows, err := s.db.Query(`
		SELECT `+themeColumns+` FROM themes
		WHERE status = $1
		ORDER BY created_at DESC
	`, status)
	if err != nil {
		return nil, fmt.Errorf("list themes by status: %w", err)
	}
	defer rows.Close()
	return scanThemes(rows)
}

// FindByID retrieves a theme by ID. Returns nil if not found.
func (s *ThemeStore) FindByID(id uuid.UUID) (*models.Theme, error) {
	t := &models.Theme{}
	err := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE id = $1`, id).Scan(
		&t.ID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by id: %w", err)
	}
	return t, nil
}

// Add inserts a new queued theme and returns it. The unique index on the
// normalized title is the backstop for races past CanAddTheme.
func (s *ThemeStore) Add(title string) (*models.Theme, error) {
	t := &models.Theme{}
	err := s.db.QueryRow(`
		INSERT INTO themes (title, title_norm, status)
		VALUES ($1, $2, $3)
		RETURNING `+themeColumns,
		strings.TrimSpace(title), NormalizeTheme(title), models.ThemeStatusQueued,
	).Scan(&t.ID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("add theme: %w", err)
	}
	return t, nil
}

// MarkUsed transitions a theme to the used state. Marking an already-used
// theme is a no-op, not an error.
func (s *ThemeStore) MarkUsed(id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE themes SET status = $1, updated_at = NOW() WHERE id = $2
	`, models.ThemeStatusUsed, id)
	if err != nil {
		return fmt.Errorf("mark theme used: %w", err)
	}
	return nil
}

// Delete removes a theme by ID.
func (s *ThemeStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM themes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	return nil
}

func scanThemes(rows *sql.Rows) ([]models.Theme, error) {
	var items []models.Theme
	for rows.Next() {
		var t models.Theme
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
