// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/subsearch/internal/dataset"
	"github.com/pdiddy/subsearch/internal/query"
	"github.com/pdiddy/subsearch/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Parse a delimited file and print the generated search links",
	Long: `Generate loads a delimited file, drops rows missing either required
column, and prints the Google search link derived from each remaining row.
By default the first 10 rows are shown as a table; use --all for the full
enumerated list or --json for machine-readable output.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	delim, err := delimiterFromFlags(cmd, cfg.Loader)
	if err != nil {
		return err
	}

	if showPreview, _ := cmd.Flags().GetBool("preview"); showPreview {
		fmt.Printf("Preview of uploaded file (first %d lines):\n", cfg.Loader.PreviewLines)
		for _, line := range dataset.Preview(raw, cfg.Loader.PreviewLines) {
			fmt.Println("  " + line)
		}
		fmt.Println()
	}

	d, err := dataset.Load(raw, delim.Rune)
	if err != nil {
		return err
	}
	links := query.Links(d.Pairs)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(links)
	}

	fmt.Printf("CSV loaded successfully! %d queries found.\n", len(links))
	if n := len(d.DroppedRows); n > 0 {
		fmt.Fprintf(os.Stderr, "warning: dropped %d row(s) missing a required column: rows %s\n",
			n, joinInts(d.DroppedRows))
	}
	fmt.Println()

	if all, _ := cmd.Flags().GetBool("all"); all {
		for i, l := range links {
			fmt.Printf("%d. %s\n   %s\n", i+1, l.Query, l.URL)
		}
		return nil
	}

	head := links
	if len(head) > 10 {
		head = head[:10]
	}
	formatTable(head, os.Stdout)
	if len(links) > len(head) {
		fmt.Printf("\n…and %d more. Use --all to list every link.\n", len(links)-len(head))
	}
	return nil
}

// formatTable writes links as a human-readable fixed-width table.
func formatTable(links []types.Link, w io.Writer) {
	if len(links) == 0 {
		fmt.Fprintln(w, "No links generated.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-28s  %-28s  %s\n", "#", "Account Name", "Parent Name", "Search URL")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i, l := range links {
		fmt.Fprintf(w, "%-4d  %-28s  %-28s  %s\n",
			i+1, truncate(l.AccountName, 28), truncate(l.ParentName, 28), l.URL)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

// delimiterFromFlags resolves the --delimiter flag, falling back to the
// configured default.
func delimiterFromFlags(cmd *cobra.Command, cfg types.LoaderConfig) (dataset.Delimiter, error) {
	name, _ := cmd.Flags().GetString("delimiter")
	if name == "" {
		name = cfg.Delimiter
	}
	return dataset.ParseDelimiter(name)
}

func init() {
	generateCmd.Flags().String("delimiter", "", "field delimiter: comma, semicolon, tab, or pipe")
	generateCmd.Flags().Bool("preview", false, "show the first raw lines of the file before parsing")
	generateCmd.Flags().Bool("all", false, "list every generated link, not just the first 10")
	generateCmd.Flags().Bool("json", false, "output links as JSON")

	rootCmd.AddCommand(generateCmd)
}
