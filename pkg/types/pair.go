// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the subsearch pipeline.
package types

// NamePair is a cleaned (account, parent) row from the input dataset.
// Both fields are non-empty after trimming; rows that fail this are
// dropped during load.
type NamePair struct {
	// AccountName is the subsidiary candidate, from the "Account Name" column.
	AccountName string `json:"account_name" yaml:"account_name"`

	// ParentName is the parent company, from the "Parent Name" column.
	ParentName string `json:"parent_name" yaml:"parent_name"`
}

// Link pairs a NamePair with its derived question and search URL. Query
// and URL are computed from the pair, never stored independently of it.
type Link struct {
	NamePair `yaml:",inline"`

	// Query is the natural-language question built from the pair.
	Query string `json:"query" yaml:"query"`

	// URL is the fully encoded Google search URL for Query.
	URL string `json:"url" yaml:"url"`
}
