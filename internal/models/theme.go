// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ThemeStatus is the lifecycle state of a post theme in the editorial queue.
type ThemeStatus string

const (
	ThemeStatusQueued ThemeStatus = "queued" // "a usar"
	ThemeStatusUsed   ThemeStatus = "used"   // "usados"
)

// Theme is a post-topic idea managed in the admin theme console. A theme is
// marked used when it is sent to the n8n automation flow, before the webhook
// response comes back — a failed call does not roll the mark back.
type Theme struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Status    ThemeStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// IsUsed returns true once the theme has been consumed by a post.
func (t *Theme) IsUsed() bool {
	return t.Status == ThemeStatusUsed
}
