// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler returns the UI router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.indexHandler)
	r.Get("/healthz", healthzHandler)

	r.Post("/upload", s.uploadHandler)
	r.Post("/select-all", s.setAllHandler(true))
	r.Post("/deselect-all", s.setAllHandler(false))
	r.Post("/open/selected", s.openSelectedHandler)
	r.Post("/open/range", s.openRangeHandler)

	return r
}

func healthzHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
