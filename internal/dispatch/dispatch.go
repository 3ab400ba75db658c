// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dispatch selects the subset of search URLs to open and hands
// them to an opening mechanism. Two mechanisms exist: a local browser
// process launch and a script fragment executed by the hosted UI.
package dispatch

import (
	"context"
	"fmt"
	"io"
)

// Opener opens a batch of URLs through some mechanism. Each open is
// attempted independently; one failure never aborts the remaining opens.
type Opener interface {
	Name() string
	OpenLinks(ctx context.Context, urls []string) Outcome
}

// Outcome summarizes a dispatch attempt.
type Outcome struct {
	Opened int
	Failed int

	// Errors holds one message per failed link.
	Errors []string
}

// RangeOrderError reports a range whose start is not below its end. It is
// a user input error: the range open is blocked, the session stays usable.
type RangeOrderError struct {
	Start int
	End   int
}

func (e *RangeOrderError) Error() string {
	return fmt.Sprintf("range start %d must be smaller than end %d", e.Start, e.End)
}

// BySelection returns the URLs whose flag is set, preserving original
// dataset order. An empty result is not an error; callers report it as
// nothing to open.
func BySelection(urls []string, flags []bool) []string {
	var selected []string
	for i, url := range urls {
		if i < len(flags) && flags[i] {
			selected = append(selected, url)
		}
	}
	return selected
}

// ByRange returns the half-open slice urls[start-1:end] for 1-based
// inclusive bounds. Bounds must already be clamped to [1, len(urls)] by
// the caller.
func ByRange(urls []string, start, end int) ([]string, error) {
	if start >= end {
		return nil, &RangeOrderError{Start: start, End: end}
	}
	return urls[start-1 : end], nil
}

// Open hands urls to the opener and writes a human-readable summary to w.
func Open(ctx context.Context, opener Opener, urls []string, w io.Writer) Outcome {
	out := opener.OpenLinks(ctx, urls)
	for _, msg := range out.Errors {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
	if out.Failed > 0 {
		fmt.Fprintf(w, "Opened %d link(s), %d failed.\n", out.Opened, out.Failed)
	} else {
		fmt.Fprintf(w, "Opened %d link(s).\n", out.Opened)
	}
	return out
}
