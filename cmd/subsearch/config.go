// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/subsearch/pkg/types"
)

const configFileName = "subsearch.yaml"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage subsearch configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter subsearch.yaml with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(configFileName); err == nil && !force {
			return fmt.Errorf("%s already exists: use --force to overwrite", configFileName)
		}

		data, err := yaml.Marshal(types.DefaultConfig())
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		if err := os.WriteFile(configFileName, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", configFileName, err)
		}
		fmt.Printf("Wrote %s\n", configFileName)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(pipelineConfig())
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing subsearch.yaml")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
