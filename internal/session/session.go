// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package session

import (
	"sync"

	"github.com/pdiddy/subsearch/internal/dataset"
	"github.com/pdiddy/subsearch/internal/query"
	"github.com/pdiddy/subsearch/pkg/types"
)

// Session is the explicit context object passed into every operation on
// the active upload. Replacing the dataset re-derives links and applies
// the reset-on-size-change rule to the selection.
//
// The model is single-session: the mutex only guards against the HTTP
// server's concurrent request handling, there is never more than one
// dataset live.
type Session struct {
	mu        sync.Mutex
	dataset   *dataset.Dataset
	links     []types.Link
	preview   []string
	selection Selection
}

// New returns an empty session with no dataset loaded.
func New() *Session { return &Session{} }

// Replace installs a freshly loaded dataset, recomputes its links, and
// syncs the selection. Preview holds the raw input lines shown alongside
// the parsed table.
func (s *Session) Replace(d *dataset.Dataset, preview []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataset = d
	s.links = query.Links(d.Pairs)
	s.preview = preview
	s.selection.Sync(d.Size())
}

// Loaded reports whether a dataset is currently installed.
func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset != nil
}

// Dataset returns the active dataset, or nil before the first upload.
func (s *Session) Dataset() *dataset.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataset
}

// Links returns the derived links in dataset order.
func (s *Session) Links() []types.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.links
}

// Preview returns the raw input lines captured at upload time.
func (s *Session) Preview() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

// WithSelection runs fn with the selection locked. All selection mutations
// from handlers go through here so flag updates stay atomic per request.
func (s *Session) WithSelection(fn func(sel *Selection)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.selection)
}
