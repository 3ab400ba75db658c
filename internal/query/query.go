// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query derives search questions and Google search URLs from name
// pairs. Everything here is pure: link construction, never link resolution.
package query

import (
	"fmt"
	"net/url"

	"github.com/pdiddy/subsearch/pkg/types"
)

// searchBase is the Google search endpoint the encoded query is appended to.
const searchBase = "https://www.google.com/search?q="

// Format returns the natural-language question for a pair. Fields are
// substituted verbatim, with no escaping or case normalization.
func Format(p types.NamePair) string {
	return fmt.Sprintf("Is %s a subsidiary of the %s?", p.AccountName, p.ParentName)
}

// SearchURL percent-encodes q in form style (spaces become "+") and
// appends it to the Google search endpoint.
func SearchURL(q string) string {
	return searchBase + url.QueryEscape(q)
}

// Links derives the question and search URL for every pair, preserving
// dataset order.
func Links(pairs []types.NamePair) []types.Link {
	links := make([]types.Link, len(pairs))
	for i, p := range pairs {
		q := Format(p)
		links[i] = types.Link{NamePair: p, Query: q, URL: SearchURL(q)}
	}
	return links
}

// URLs projects the search URLs out of links, in order.
func URLs(links []types.Link) []string {
	urls := make([]string, len(links))
	for i, l := range links {
		urls[i] = l.URL
	}
	return urls
}
