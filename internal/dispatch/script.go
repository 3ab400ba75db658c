// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dispatch

import (
	"context"
	"html/template"
	"strings"
)

// ScriptOpener turns a URL batch into a window.open script fragment. The
// hosted UI embeds the fragment in its response so the visitor's browser
// performs the actual opens; nothing can fail server-side.
type ScriptOpener struct {
	fragment string
}

// Name returns the mechanism identifier.
func (o *ScriptOpener) Name() string { return "script" }

// OpenLinks records a script fragment opening each URL in a new tab.
func (o *ScriptOpener) OpenLinks(_ context.Context, urls []string) Outcome {
	var b strings.Builder
	b.WriteString("<script>")
	for _, u := range urls {
		b.WriteString("window.open('")
		b.WriteString(template.JSEscapeString(u))
		b.WriteString("', '_blank');")
	}
	b.WriteString("</script>")
	o.fragment = b.String()
	return Outcome{Opened: len(urls)}
}

// Fragment returns the script produced by the last OpenLinks call, ready
// for direct inclusion in a rendered page.
func (o *ScriptOpener) Fragment() template.HTML {
	return template.HTML(o.fragment)
}
