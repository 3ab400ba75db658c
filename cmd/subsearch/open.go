// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/subsearch/internal/dataset"
	"github.com/pdiddy/subsearch/internal/dispatch"
	"github.com/pdiddy/subsearch/internal/query"
	"github.com/pdiddy/subsearch/internal/session"
)

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open generated search links in a local browser",
	Long: `Open loads a delimited file, generates the search links, and launches a
subset of them in a locally installed browser. Choose the subset with
--range (a contiguous 1-based span like 2:5), --select (a comma-separated
list of 1-based link numbers), or --all.

A Chrome install is preferred when one is found at a well-known location;
otherwise the system default browser opener is used. Each link failure is
reported individually and never aborts the remaining opens.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	delim, err := delimiterFromFlags(cmd, cfg.Loader)
	if err != nil {
		return err
	}
	d, err := dataset.Load(raw, delim.Rune)
	if err != nil {
		return err
	}
	urls := query.URLs(query.Links(d.Pairs))

	var sel session.Selection
	sel.Sync(d.Size())

	rangeSpec, _ := cmd.Flags().GetString("range")
	selectSpec, _ := cmd.Flags().GetString("select")
	all, _ := cmd.Flags().GetBool("all")

	var chosen []string
	switch {
	case rangeSpec != "":
		start, end, err := parseRange(rangeSpec, d.Size())
		if err != nil {
			return err
		}
		sel.SetRange(start, end)
		chosen, err = dispatch.ByRange(urls, start, end)
		if err != nil {
			return err
		}
		if len(chosen) == 0 {
			fmt.Println("No links in range.")
			return nil
		}
	case selectSpec != "":
		for _, part := range strings.Split(selectSpec, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("invalid link number %q in --select", part)
			}
			if err := sel.Toggle(n-1, true); err != nil {
				return fmt.Errorf("link number %d out of range [1, %d]", n, d.Size())
			}
		}
		chosen = dispatch.BySelection(urls, sel.Flags())
	case all:
		sel.SetAll(true)
		chosen = dispatch.BySelection(urls, sel.Flags())
	default:
		return fmt.Errorf("choose links to open with --range, --select, or --all")
	}

	if len(chosen) == 0 {
		fmt.Println("No links were selected to open.")
		return nil
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		for _, u := range chosen {
			fmt.Println(u)
		}
		return nil
	}

	if v, _ := cmd.Flags().GetDuration("delay"); cmd.Flags().Changed("delay") {
		cfg.Dispatch.OpenDelay = v
	}
	if v, _ := cmd.Flags().GetString("browser"); v != "" {
		cfg.Dispatch.Browser = v
	}

	opener := dispatch.NewBrowserOpener(cfg.Dispatch)
	out := dispatch.Open(cmd.Context(), opener, chosen, os.Stdout)
	if out.Failed > 0 {
		return fmt.Errorf("%d link(s) failed to open", out.Failed)
	}
	return nil
}

// parseRange parses "from:to" and clamps both bounds to [1, size]. Order
// validation happens later in dispatch.ByRange.
func parseRange(spec string, size int) (start, end int, err error) {
	from, to, ok := strings.Cut(spec, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --range %q: expected from:to (e.g. 2:5)", spec)
	}
	start, err = strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --range start %q", from)
	}
	end, err = strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --range end %q", to)
	}
	return clampInt(start, 1, size), clampInt(end, 1, size), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	openCmd.Flags().String("delimiter", "", "field delimiter: comma, semicolon, tab, or pipe")
	openCmd.Flags().String("range", "", "contiguous 1-based span of links to open (from:to)")
	openCmd.Flags().String("select", "", "comma-separated 1-based link numbers to open")
	openCmd.Flags().Bool("all", false, "open every generated link")
	openCmd.Flags().Bool("dry-run", false, "print the chosen URLs instead of opening them")
	openCmd.Flags().Duration("delay", 500*time.Millisecond, "pause between consecutive opens")
	openCmd.Flags().String("browser", "", "browser executable to use instead of probing")

	rootCmd.AddCommand(openCmd)
}
