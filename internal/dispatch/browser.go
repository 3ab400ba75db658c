// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pdiddy/subsearch/pkg/types"
)

// chromeCandidates lists well-known Chrome install locations per OS.
// Discovery is inherently install-dependent, so it stays behind the
// Opener interface and never leaks into the pipeline.
var chromeCandidates = map[string][]string{
	"linux": {
		"google-chrome",
		"google-chrome-stable",
		"chromium",
		"chromium-browser",
	},
	"darwin": {
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	},
	"windows": {
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	},
}

// BrowserOpener launches each URL in a locally installed browser process.
// It prefers a discoverable Chrome install and falls back to the system
// default opener (xdg-open / open / rundll32).
type BrowserOpener struct {
	// Delay is the pause between consecutive launches.
	Delay time.Duration

	// Browser, when set, is used as the browser executable without probing.
	Browser string

	// launch starts the process for one URL. Tests substitute this to
	// avoid spawning real browsers.
	launch func(name string, args ...string) error
}

// NewBrowserOpener builds an opener from the dispatch configuration.
func NewBrowserOpener(cfg types.DispatchConfig) *BrowserOpener {
	return &BrowserOpener{
		Delay:   cfg.OpenDelay,
		Browser: cfg.Browser,
		launch:  startProcess,
	}
}

// Name returns the mechanism identifier.
func (o *BrowserOpener) Name() string { return "browser" }

// OpenLinks launches urls one at a time, pausing Delay between launches.
// Failures are per-link and non-fatal.
func (o *BrowserOpener) OpenLinks(ctx context.Context, urls []string) Outcome {
	var out Outcome
	name, args := o.command()
	for i, raw := range urls {
		if i > 0 && o.Delay > 0 {
			select {
			case <-ctx.Done():
				out.Failed += len(urls) - i
				out.Errors = append(out.Errors, fmt.Sprintf("cancelled with %d link(s) remaining", len(urls)-i))
				return out
			case <-time.After(o.Delay):
			}
		}
		if _, err := url.ParseRequestURI(raw); err != nil {
			out.Failed++
			out.Errors = append(out.Errors, fmt.Sprintf("invalid URL %q: %v", raw, err))
			continue
		}
		if err := o.launcher()(name, append(args, raw)...); err != nil {
			out.Failed++
			out.Errors = append(out.Errors, fmt.Sprintf("opening %s: %v", raw, err))
			continue
		}
		out.Opened++
	}
	return out
}

func (o *BrowserOpener) launcher() func(string, ...string) error {
	if o.launch != nil {
		return o.launch
	}
	return startProcess
}

// command resolves the browser executable and any leading arguments.
func (o *BrowserOpener) command() (string, []string) {
	if o.Browser != "" {
		return o.Browser, nil
	}
	for _, candidate := range chromeCandidates[runtime.GOOS] {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return defaultOpener()
}

// defaultOpener returns the platform's generic URL opener.
func defaultOpener() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// startProcess launches the command fire-and-forget. The browser keeps
// running after subsearch exits, so the process is never waited on.
func startProcess(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
