// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/subsearch/internal/dataset"
)

func loadDataset(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Load([]byte(csv), ',')
	require.NoError(t, err)
	return d
}

func TestReplaceDerivesLinks(t *testing.T) {
	s := New()
	assert.False(t, s.Loaded())

	d := loadDataset(t, "Account Name,Parent Name\nAcme Sub,Acme Corp\nBeta LLC,Beta Holdings\n")
	s.Replace(d, []string{"Account Name,Parent Name"})

	require.True(t, s.Loaded())
	links := s.Links()
	require.Len(t, links, 2)
	assert.Equal(t, "Is Acme Sub a subsidiary of the Acme Corp?", links[0].Query)
	assert.Contains(t, links[0].URL, "Acme+Sub")
	assert.Equal(t, []string{"Account Name,Parent Name"}, s.Preview())

	s.WithSelection(func(sel *Selection) {
		assert.Equal(t, 2, sel.Size())
	})
}

func TestReplaceSameSizeKeepsSelection(t *testing.T) {
	s := New()
	s.Replace(loadDataset(t, "Account Name,Parent Name\nA,B\nC,D\n"), nil)

	s.WithSelection(func(sel *Selection) {
		require.NoError(t, sel.Toggle(1, true))
	})

	// Same row count: user toggles persist.
	s.Replace(loadDataset(t, "Account Name,Parent Name\nE,F\nG,H\n"), nil)
	s.WithSelection(func(sel *Selection) {
		assert.True(t, sel.Flag(1))
	})

	// Different row count: full reset.
	s.Replace(loadDataset(t, "Account Name,Parent Name\nE,F\nG,H\nI,J\n"), nil)
	s.WithSelection(func(sel *Selection) {
		assert.Equal(t, 3, sel.Size())
		assert.False(t, sel.Flag(1))
	})
}
