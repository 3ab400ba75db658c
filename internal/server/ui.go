// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"html/template"
	"net/http"

	"github.com/pdiddy/subsearch/internal/dataset"
	"github.com/pdiddy/subsearch/pkg/types"
)

// headRows is the number of cleaned rows shown in the parsed-table preview.
const headRows = 10

// banner is a status message rendered at the top of the page.
// Kind is one of "success", "info", "warning", or "error".
type banner struct {
	Kind string
	Text string
}

// linkRow is one entry of the enumerated link list.
type linkRow struct {
	// Index is the 0-based row index used as the checkbox value.
	Index   int
	Query   string
	URL     string
	Checked bool
}

// pageData feeds the single-page template.
type pageData struct {
	Delimiter  string
	Delimiters []dataset.Delimiter
	Banners    []banner

	Preview []string
	Loaded  bool
	Total   int
	Dropped int

	Head  []types.Link
	Links []linkRow

	RangeStart int
	RangeEnd   int

	// Script is the window.open fragment injected after an open action.
	Script template.HTML
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(pageHTML))

const pageHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Subsidiary Search Automation</title>
<style>
body { font-family: sans-serif; max-width: 54rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
pre { background: #f4f4f4; padding: 0.75rem; overflow-x: auto; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 0.35rem 0.5rem; text-align: left; font-size: 0.9rem; }
.banner { padding: 0.6rem 0.8rem; border-radius: 4px; margin: 0.4rem 0; }
.success { background: #e6f4ea; } .info { background: #e8f0fe; }
.warning { background: #fef7e0; } .error { background: #fce8e6; }
.row-actions form { display: inline; margin-right: 0.5rem; }
ol li { margin: 0.25rem 0; }
</style>
</head>
<body>
<h1>&#128269; Subsidiary Search Automation</h1>
<p>Upload your CSV file with columns <strong>Account Name</strong> and <strong>Parent Name</strong>.
The application will generate Google search links for you.</p>

{{range .Banners}}<p class="banner {{.Kind}}">{{.Text}}</p>{{end}}

<form action="/upload" method="post" enctype="multipart/form-data">
  <input type="file" name="file" required>
  <label>Separator:
    <select name="delimiter">
      {{range .Delimiters}}<option value="{{.Name}}"{{if eq .Name $.Delimiter}} selected{{end}}>{{.Label}}</option>{{end}}
    </select>
  </label>
  <button type="submit">Upload</button>
</form>

{{if .Preview}}
<h2>Preview of uploaded file (first {{len .Preview}} lines)</h2>
<pre>{{range .Preview}}{{.}}
{{end}}</pre>
{{end}}

{{if .Loaded}}
<h2>Parsed rows</h2>
{{if .Dropped}}<p class="banner info">{{.Dropped}} row(s) dropped for missing Account Name or Parent Name.</p>{{end}}
<table>
  <tr><th>#</th><th>Account Name</th><th>Parent Name</th><th>Search URL</th></tr>
  {{range $i, $l := .Head}}<tr><td>{{inc $i}}</td><td>{{$l.AccountName}}</td><td>{{$l.ParentName}}</td><td><a href="{{$l.URL}}" target="_blank">{{$l.URL}}</a></td></tr>
  {{end}}
</table>

<h2>Manage and Open Links</h2>
<div class="row-actions">
  <form action="/select-all" method="post"><button>Select All</button></form>
  <form action="/deselect-all" method="post"><button>Deselect All</button></form>
</div>

<form action="/open/range" method="post">
  <label>From link # <input type="number" name="start" min="1" max="{{.Total}}" value="{{.RangeStart}}"></label>
  <label>To link # <input type="number" name="end" min="1" max="{{.Total}}" value="{{.RangeEnd}}"></label>
  <button>Open Range</button>
</form>

<h2>Generated Search Links</h2>
<form action="/open/selected" method="post">
  <button type="submit">Open Selected Links</button>
  <ol>
    {{range .Links}}<li><label><input type="checkbox" name="sel" value="{{.Index}}"{{if .Checked}} checked{{end}}>
      <a href="{{.URL}}" target="_blank">Search for: {{.Query}}</a></label></li>
    {{end}}
  </ol>
</form>
{{end}}
{{.Script}}
</body>
</html>
`
