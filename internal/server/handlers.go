// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/pdiddy/subsearch/internal/dataset"
	"github.com/pdiddy/subsearch/internal/dispatch"
	"github.com/pdiddy/subsearch/internal/query"
	"github.com/pdiddy/subsearch/internal/session"
)

const popupHint = "If new tabs did not open, please check if your browser is blocking pop-ups and allow them for this site."

// indexHandler renders the current session state.
func (s *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	s.render(w, s.page(nil))
}

// uploadHandler loads a new dataset from the posted file and replaces the
// session wholesale. Selection state resets only when the row count
// changes; the comparison happens inside Selection.Sync.
func (s *Server) uploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.Server.MaxUploadBytes); err != nil {
		s.render(w, s.page([]banner{{"error", fmt.Sprintf("Upload failed: %v", err)}}))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.render(w, s.page([]banner{{"error", "Please choose a file to upload."}}))
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		s.render(w, s.page([]banner{{"error", fmt.Sprintf("Reading upload: %v", err)}}))
		return
	}

	delimName := r.FormValue("delimiter")
	delim, err := dataset.ParseDelimiter(delimName)
	if err != nil {
		s.render(w, s.page([]banner{{"error", err.Error()}}))
		return
	}

	preview := dataset.Preview(raw, s.cfg.Loader.PreviewLines)
	d, err := dataset.Load(raw, delim.Rune)
	if err != nil {
		banners := []banner{{"error", loadErrorText(err)}}
		var le *dataset.LoadError
		if errors.As(err, &le) && le.Kind == dataset.KindEmpty {
			banners = append(banners, banner{"warning",
				"Check the file preview above and make sure you selected the correct separator and that the file is not empty."})
		}
		data := s.page(banners)
		data.Preview = preview
		data.Delimiter = delim.Name
		s.render(w, data)
		return
	}

	s.sess.Replace(d, preview)
	data := s.page([]banner{{"success", fmt.Sprintf("CSV loaded successfully! %d queries found.", d.Size())}})
	data.Delimiter = delim.Name
	s.render(w, data)
}

// setAllHandler returns a handler that sets every selection flag to v.
func (s *Server) setAllHandler(v bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sess.WithSelection(func(sel *session.Selection) { sel.SetAll(v) })
		s.render(w, s.page(nil))
	}
}

// openSelectedHandler stores the posted checkbox state, then dispatches
// the flagged subset through the script-injection opener.
func (s *Server) openSelectedHandler(w http.ResponseWriter, r *http.Request) {
	if !s.sess.Loaded() {
		s.render(w, s.page([]banner{{"info", "Please upload a CSV file to begin."}}))
		return
	}
	if err := r.ParseForm(); err != nil {
		s.render(w, s.page([]banner{{"error", fmt.Sprintf("Bad form: %v", err)}}))
		return
	}

	// Checked boxes arrive as 0-based indices; unchecked boxes are absent,
	// so the posted set is the complete new flag state.
	var flags []bool
	s.sess.WithSelection(func(sel *session.Selection) {
		sel.SetAll(false)
		for _, v := range r.PostForm["sel"] {
			if i, err := strconv.Atoi(v); err == nil {
				_ = sel.Toggle(i, true)
			}
		}
		flags = sel.Flags()
	})

	selected := dispatch.BySelection(query.URLs(s.sess.Links()), flags)
	if len(selected) == 0 {
		s.render(w, s.page([]banner{{"warning", "No links were selected to open."}}))
		return
	}

	opener := &dispatch.ScriptOpener{}
	out := opener.OpenLinks(r.Context(), selected)
	data := s.page([]banner{
		{"success", fmt.Sprintf("Attempting to open %d selected links.", out.Opened)},
		{"info", popupHint},
	})
	data.Script = opener.Fragment()
	s.render(w, data)
}

// openRangeHandler opens a contiguous 1-based inclusive range of links.
func (s *Server) openRangeHandler(w http.ResponseWriter, r *http.Request) {
	if !s.sess.Loaded() {
		s.render(w, s.page([]banner{{"info", "Please upload a CSV file to begin."}}))
		return
	}

	total := s.sess.Dataset().Size()
	start, err1 := strconv.Atoi(r.FormValue("start"))
	end, err2 := strconv.Atoi(r.FormValue("end"))
	if err1 != nil || err2 != nil {
		s.render(w, s.page([]banner{{"warning", "Range bounds must be numbers."}}))
		return
	}
	start = clamp(start, 1, total)
	end = clamp(end, 1, total)
	s.sess.WithSelection(func(sel *session.Selection) { sel.SetRange(start, end) })

	urls, err := dispatch.ByRange(query.URLs(s.sess.Links()), start, end)
	if err != nil {
		s.render(w, s.page([]banner{{"warning", "The 'From' value must be smaller than the 'To' value."}}))
		return
	}
	if len(urls) == 0 {
		s.render(w, s.page([]banner{{"error", "Could not find links for the specified range."}}))
		return
	}

	opener := &dispatch.ScriptOpener{}
	opener.OpenLinks(r.Context(), urls)
	data := s.page([]banner{
		{"success", fmt.Sprintf("Attempting to open links %d through %d.", start, end)},
		{"info", "If pop-ups are blocked, please enable them for this site."},
	})
	data.Script = opener.Fragment()
	s.render(w, data)
}

// page assembles the template data from the current session.
func (s *Server) page(banners []banner) pageData {
	data := pageData{
		Delimiter:  s.cfg.Loader.Delimiter,
		Delimiters: dataset.Delimiters,
		Banners:    banners,
	}

	if !s.sess.Loaded() {
		if len(banners) == 0 {
			data.Banners = []banner{{"info", "Please upload a CSV file to begin."}}
		}
		return data
	}

	d := s.sess.Dataset()
	links := s.sess.Links()
	data.Preview = s.sess.Preview()
	data.Loaded = true
	data.Total = d.Size()
	data.Dropped = len(d.DroppedRows)

	data.Head = links
	if len(data.Head) > headRows {
		data.Head = data.Head[:headRows]
	}

	s.sess.WithSelection(func(sel *session.Selection) {
		data.RangeStart, data.RangeEnd = sel.Range()
		for i, l := range links {
			data.Links = append(data.Links, linkRow{
				Index:   i,
				Query:   l.Query,
				URL:     l.URL,
				Checked: sel.Flag(i),
			})
		}
	})
	return data
}

// loadErrorText maps loader failures to the messages shown in the UI.
func loadErrorText(err error) string {
	var le *dataset.LoadError
	if !errors.As(err, &le) {
		return fmt.Sprintf("Error reading CSV file: %v", err)
	}
	switch le.Kind {
	case dataset.KindSchemaMissing:
		return fmt.Sprintf("CSV must contain %q and %q columns.", dataset.AccountColumn, dataset.ParentColumn)
	case dataset.KindAllRowsInvalid:
		return "No valid data found after cleaning. Please ensure your file has rows with both 'Account Name' and 'Parent Name' populated."
	case dataset.KindEncoding:
		return fmt.Sprintf("Could not decode file: %v", le.Err)
	default:
		return fmt.Sprintf("Error reading CSV file: %v", le.Err)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
