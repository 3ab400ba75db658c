// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import "fmt"

// Delimiter is one entry of the fixed delimiter menu. There is no
// auto-detection; the caller always picks one.
type Delimiter struct {
	// Name is the flag/config value (e.g. "comma").
	Name string
	// Label is the human-readable menu label (e.g. ", (comma)").
	Label string
	// Rune is the field separator handed to the CSV reader.
	Rune rune
}

// Delimiters is the fixed menu of supported field separators, in display order.
var Delimiters = []Delimiter{
	{Name: "comma", Label: ", (comma)", Rune: ','},
	{Name: "semicolon", Label: "; (semicolon)", Rune: ';'},
	{Name: "tab", Label: "\\t (tab)", Rune: '\t'},
	{Name: "pipe", Label: "| (pipe)", Rune: '|'},
}

// ParseDelimiter resolves a menu entry by name, label, or the literal
// separator character itself.
func ParseDelimiter(s string) (Delimiter, error) {
	for _, d := range Delimiters {
		if s == d.Name || s == d.Label || s == string(d.Rune) {
			return d, nil
		}
	}
	return Delimiter{}, fmt.Errorf("unsupported delimiter %q: use comma, semicolon, tab, or pipe", s)
}
