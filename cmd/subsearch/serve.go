// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/subsearch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the interactive web UI",
	Long: `Serve hosts the web UI: upload a delimited file, preview it, toggle
individual links or pick a contiguous range, and open the chosen links in
new browser tabs. Links open in the visitor's own browser via script
injection; pop-ups must be allowed for the site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Run(ctx, cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8501)")

	rootCmd.AddCommand(serveCmd)
}
