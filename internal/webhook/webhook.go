// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package webhook posts theme-console events to the n8n automation that
// drafts a post for a chosen theme.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client triggers the post-drafting automation over HTTP.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a webhook client for the given n8n endpoint URL.
// An empty URL yields a disabled client whose Trigger reports an error.
func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// payload mirrors what the n8n workflow expects. The duplicated
// "edit fields1" key is what the workflow's field-mapper node reads.
type payload struct {
	Theme      string `json:"theme"`
	EditFields string `json:"edit fields1"`
	Source     string `json:"source"`
	Timestamp  string `json:"timestamp"`
}

// Trigger asks the automation to draft a post for theme. Any non-2xx
// response is an error; callers decide whether the theme's state change
// stands regardless.
func (c *Client) Trigger(ctx context.Context, theme string) error {
	if c.url == "" {
		return fmt.Errorf("webhook trigger: no URL configured")
	}

	body, err := json.Marshal(payload{
		Theme:      theme,
		EditFields: theme,
		Source:     "be-theme-console",
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("webhook encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("webhook trigger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook trigger: unexpected status %d", resp.StatusCode)
	}

	return nil
}
