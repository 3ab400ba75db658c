// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the subsearch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/subsearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the subsearch CLI.
var rootCmd = &cobra.Command{
	Use:   "subsearch",
	Short: "Turn company/parent name lists into Google search links",
	Long: `subsearch reads a delimited file with "Account Name" and "Parent Name"
columns and generates one Google search link per row, asking whether the
account is a subsidiary of the parent.

Use generate to inspect the links, open to launch a subset in a local
browser, or serve to host the interactive web UI.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./subsearch.yaml or ~/.config/subsearch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("subsearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "subsearch"))
		}
	}

	viper.SetEnvPrefix("SUBSEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig resolves the effective configuration: defaults overlaid
// with values from the config file and environment.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultConfig()
	if v := viper.GetString("loader.delimiter"); v != "" {
		cfg.Loader.Delimiter = v
	}
	if v := viper.GetInt("loader.preview_lines"); v > 0 {
		cfg.Loader.PreviewLines = v
	}
	if v := viper.GetDuration("dispatch.open_delay"); v > 0 {
		cfg.Dispatch.OpenDelay = v
	}
	if v := viper.GetString("dispatch.browser"); v != "" {
		cfg.Dispatch.Browser = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetInt64("server.max_upload_bytes"); v > 0 {
		cfg.Server.MaxUploadBytes = v
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
