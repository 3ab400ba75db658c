// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset parses uploaded delimited text into a cleaned, ordered
// collection of (account, parent) name pairs.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/pdiddy/subsearch/pkg/types"
)

// Required column headers. Matching is exact: case- and whitespace-sensitive.
const (
	AccountColumn = "Account Name"
	ParentColumn  = "Parent Name"
)

// ErrorKind classifies why a load attempt failed. Every loader failure is
// terminal for the current upload; the user must fix the file and re-upload.
type ErrorKind string

const (
	// KindEncoding means the bytes decoded under neither UTF-8 nor windows-1252.
	KindEncoding ErrorKind = "encoding"
	// KindEmpty means the file produced no rows or fewer than two columns.
	KindEmpty ErrorKind = "empty"
	// KindSchemaMissing means the required columns are absent.
	KindSchemaMissing ErrorKind = "schema_missing"
	// KindAllRowsInvalid means cleaning removed every row.
	KindAllRowsInvalid ErrorKind = "all_rows_invalid"
)

// LoadError reports a failed load attempt with its classification.
type LoadError struct {
	Kind ErrorKind
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loading dataset (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("loading dataset (%s)", e.Kind)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Dataset is the cleaned, ordered sequence of name pairs from one upload.
// Row order follows the source file; it drives both link numbering and
// range semantics downstream.
type Dataset struct {
	Pairs []types.NamePair

	// DroppedRows lists the 1-based data row numbers (header excluded)
	// removed by the cleaning pass.
	DroppedRows []int
}

// Size returns the number of cleaned rows.
func (d *Dataset) Size() int { return len(d.Pairs) }

// Load decodes raw as text, splits it into rows on delim, validates the
// schema, and applies the cleaning pass. Decoding tries UTF-8 first and
// falls back to windows-1252. The input bytes are never mutated.
func Load(raw []byte, delim rune) (*Dataset, error) {
	text, err := decode(raw)
	if err != nil {
		return nil, &LoadError{Kind: KindEncoding, Err: err}
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Kind: KindEmpty, Err: err}
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, &LoadError{Kind: KindEmpty, Err: fmt.Errorf("no columns to parse from file or file is empty")}
	}

	accountIdx, parentIdx := -1, -1
	for i, col := range records[0] {
		switch col {
		case AccountColumn:
			accountIdx = i
		case ParentColumn:
			parentIdx = i
		}
	}
	if accountIdx < 0 || parentIdx < 0 {
		return nil, &LoadError{
			Kind: KindSchemaMissing,
			Err:  fmt.Errorf("file must contain %q and %q columns", AccountColumn, ParentColumn),
		}
	}

	d := &Dataset{}
	for i, row := range records[1:] {
		account := strings.TrimSpace(field(row, accountIdx))
		parent := strings.TrimSpace(field(row, parentIdx))
		if account == "" || parent == "" {
			d.DroppedRows = append(d.DroppedRows, i+1)
			continue
		}
		d.Pairs = append(d.Pairs, types.NamePair{AccountName: account, ParentName: parent})
	}
	if len(d.Pairs) == 0 {
		return nil, &LoadError{
			Kind: KindAllRowsInvalid,
			Err:  fmt.Errorf("no rows with both %q and %q populated", AccountColumn, ParentColumn),
		}
	}
	return d, nil
}

// field returns row[i], or "" when the row is too short.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

// decode interprets raw as UTF-8 (after stripping a BOM, if present) and
// retries as windows-1252 when the bytes are not valid UTF-8.
func decode(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decoding as windows-1252: %w", err)
	}
	// Windows-1252 leaves a handful of code points undefined; the decoder
	// maps those to U+FFFD.
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("file is neither valid UTF-8 nor windows-1252")
	}
	return string(decoded), nil
}

// Preview returns up to n raw input lines for display. Undecodable bytes
// are replaced rather than rejected, so a preview is available even for
// files that fail to load.
func Preview(raw []byte, n int) []string {
	text, err := decode(raw)
	if err != nil {
		text = strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > n {
		lines = lines[:n]
	}
	return lines
}
