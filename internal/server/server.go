// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server hosts the web UI: upload a delimited file, preview it,
// and open generated search links in browser tabs via script injection.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pdiddy/subsearch/internal/session"
	"github.com/pdiddy/subsearch/pkg/types"
)

// Server serves the hosted UI for one session.
type Server struct {
	cfg  types.PipelineConfig
	sess *session.Session
}

// New builds a server around sess using cfg for upload limits, preview
// length, and the default delimiter.
func New(cfg types.PipelineConfig, sess *session.Session) *Server {
	if cfg.Server.MaxUploadBytes <= 0 {
		cfg.Server.MaxUploadBytes = types.DefaultConfig().Server.MaxUploadBytes
	}
	if cfg.Loader.PreviewLines <= 0 {
		cfg.Loader.PreviewLines = types.DefaultConfig().Loader.PreviewLines
	}
	return &Server{cfg: cfg, sess: sess}
}

// Run serves the UI on cfg.Server.Addr until ctx is cancelled, then shuts
// down gracefully.
func Run(ctx context.Context, cfg types.PipelineConfig) error {
	addr := cfg.Server.Addr
	if addr == "" {
		addr = types.DefaultConfig().Server.Addr
	}

	s := New(cfg, session.New())
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("subsearch UI listening on %s", addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		log.Println("subsearch UI stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
