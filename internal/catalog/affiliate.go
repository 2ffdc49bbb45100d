// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the pure storefront logic: affiliate link tagging,
// the derived category index, grid pagination, and the featured carousel
// state machine. Nothing here performs I/O beyond slog diagnostics.
package catalog

import (
	"net/url"
	"strings"
)

// DefaultCampaign tags outbound links that have no more specific campaign.
const DefaultCampaign = "geral"

// BuildAffiliateLink appends the store UTM parameters to an outbound product
// URL. An empty URL yields "#" so the UI still renders a clickable-but-inert
// element instead of failing.
func BuildAffiliateLink(rawURL, campaign string) string {
	if rawURL == "" {
		return "#"
	}
	if campaign == "" {
		campaign = DefaultCampaign
	}

	utm := "utm_source=loja&utm_medium=afiliado&utm_campaign=" + url.QueryEscape(campaign)
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + utm
	}
	return rawURL + "?" + utm
}

// DetectSource derives the provenance label for a product from the host in
// its affiliate link. Known marketplaces get their fixed label; anything
// else is "Outro".
func DetectSource(link string) string {
	if link == "" {
		return "Outro"
	}
	if strings.Contains(link, "amazon.com") || strings.Contains(link, "amzn.to") {
		return "Amazon"
	}
	if strings.Contains(link, "mercadolivre.com.br") {
		return "Mercado Livre"
	}
	return "Outro"
}
