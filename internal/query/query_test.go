// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/pdiddy/subsearch/pkg/types"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		pair types.NamePair
		want string
	}{
		{
			name: "basic",
			pair: types.NamePair{AccountName: "Acme Sub", ParentName: "Acme Corp"},
			want: "Is Acme Sub a subsidiary of the Acme Corp?",
		},
		{
			name: "fields substituted verbatim",
			pair: types.NamePair{AccountName: "A&B (UK) Ltd.", ParentName: "C/D Holdings"},
			want: "Is A&B (UK) Ltd. a subsidiary of the C/D Holdings?",
		},
		{
			name: "no case normalization",
			pair: types.NamePair{AccountName: "acme sub", ParentName: "ACME CORP"},
			want: "Is acme sub a subsidiary of the ACME CORP?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.pair); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchURL(t *testing.T) {
	pair := types.NamePair{AccountName: "Acme Sub", ParentName: "Acme Corp"}
	want := "https://www.google.com/search?q=Is+Acme+Sub+a+subsidiary+of+the+Acme+Corp%3F"

	if got := SearchURL(Format(pair)); got != want {
		t.Errorf("SearchURL() = %q, want %q", got, want)
	}
}

func TestSearchURLDeterministic(t *testing.T) {
	pair := types.NamePair{AccountName: "Beta LLC", ParentName: "Beta Holdings"}

	first := SearchURL(Format(pair))
	second := SearchURL(Format(pair))
	if first != second {
		t.Errorf("SearchURL not deterministic: %q vs %q", first, second)
	}
}

// The decoded query parameter of the produced URL must equal the original
// question exactly.
func TestSearchURLDecodesBack(t *testing.T) {
	pairs := []types.NamePair{
		{AccountName: "Acme Sub", ParentName: "Acme Corp"},
		{AccountName: "A&B + C", ParentName: "D=E?F"},
		{AccountName: "Café", ParentName: "Société Générale"},
	}
	for _, p := range pairs {
		q := Format(p)
		u, err := url.Parse(SearchURL(q))
		if err != nil {
			t.Fatalf("parsing URL: %v", err)
		}
		if got := u.Query().Get("q"); got != q {
			t.Errorf("decoded query = %q, want %q", got, q)
		}
	}
}

func TestLinksPreservesOrder(t *testing.T) {
	pairs := []types.NamePair{
		{AccountName: "First", ParentName: "P1"},
		{AccountName: "Second", ParentName: "P2"},
		{AccountName: "Third", ParentName: "P3"},
	}

	links := Links(pairs)
	if len(links) != 3 {
		t.Fatalf("len(links) = %d, want 3", len(links))
	}
	for i, l := range links {
		if l.NamePair != pairs[i] {
			t.Errorf("links[%d].NamePair = %+v, want %+v", i, l.NamePair, pairs[i])
		}
		if l.Query != Format(pairs[i]) {
			t.Errorf("links[%d].Query = %q", i, l.Query)
		}
		if !strings.HasPrefix(l.URL, "https://www.google.com/search?q=") {
			t.Errorf("links[%d].URL = %q, missing search prefix", i, l.URL)
		}
	}

	urls := URLs(links)
	for i := range links {
		if urls[i] != links[i].URL {
			t.Errorf("URLs()[%d] = %q, want %q", i, urls[i], links[i].URL)
		}
	}
}
