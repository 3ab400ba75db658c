// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/subsearch/pkg/types"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delim     rune
		wantPairs []types.NamePair
		wantDrops []int
		wantKind  ErrorKind
	}{
		{
			name:  "comma separated",
			input: "Account Name,Parent Name\nAcme Sub,Acme Corp\nBeta LLC,Beta Holdings\n",
			delim: ',',
			wantPairs: []types.NamePair{
				{AccountName: "Acme Sub", ParentName: "Acme Corp"},
				{AccountName: "Beta LLC", ParentName: "Beta Holdings"},
			},
		},
		{
			name:  "semicolon separated",
			input: "Account Name;Parent Name\nAcme Sub;Acme Corp\n",
			delim: ';',
			wantPairs: []types.NamePair{
				{AccountName: "Acme Sub", ParentName: "Acme Corp"},
			},
		},
		{
			name:  "tab separated",
			input: "Account Name\tParent Name\nAcme Sub\tAcme Corp\n",
			delim: '\t',
			wantPairs: []types.NamePair{
				{AccountName: "Acme Sub", ParentName: "Acme Corp"},
			},
		},
		{
			name:  "pipe separated",
			input: "Account Name|Parent Name\nAcme Sub|Acme Corp\n",
			delim: '|',
			wantPairs: []types.NamePair{
				{AccountName: "Acme Sub", ParentName: "Acme Corp"},
			},
		},
		{
			name:  "drops rows missing either column",
			input: "Account Name,Parent Name\nAcme Sub,Acme Corp\n,Missing Parent\nBeta LLC,Beta Holdings\n",
			delim: ',',
			wantPairs: []types.NamePair{
				{AccountName: "Acme Sub", ParentName: "Acme Corp"},
				{AccountName: "Beta LLC", ParentName: "Beta Holdings"},
			},
			wantDrops: []int{2},
		},
		{
			name:  "whitespace-only fields count as missing",
			input: "Account Name,Parent Name\nAcme Sub,   \nBeta LLC,Beta Holdings\n",
			delim: ',',
			wantPairs: []types.NamePair{
				{AccountName: "Beta LLC", ParentName: "Beta Holdings"},
			},
			wantDrops: []int{1},
		},
		{
			name:  "trims surrounding whitespace",
			input: "Account Name,Parent Name\n  Acme Sub  ,\tAcme Corp \n",
			delim: ',',
			wantPairs: []types.NamePair{
				{AccountName: "Acme Sub", ParentName: "Acme Corp"},
			},
		},
		{
			name:  "short rows treated as missing",
			input: "Account Name,Parent Name\nAcme Sub\nBeta LLC,Beta Holdings\n",
			delim: ',',
			wantPairs: []types.NamePair{
				{AccountName: "Beta LLC", ParentName: "Beta Holdings"},
			},
			wantDrops: []int{1},
		},
		{
			name:  "extra columns ignored",
			input: "Region,Account Name,Parent Name\nEMEA,Acme Sub,Acme Corp\n",
			delim: ',',
			wantPairs: []types.NamePair{
				{AccountName: "Acme Sub", ParentName: "Acme Corp"},
			},
		},
		{
			name:     "empty file",
			input:    "",
			delim:    ',',
			wantKind: KindEmpty,
		},
		{
			name:     "header only",
			input:    "Account Name,Parent Name\n",
			delim:    ',',
			wantKind: KindEmpty,
		},
		{
			name:     "single column",
			input:    "Account Name\nAcme Sub\n",
			delim:    ',',
			wantKind: KindEmpty,
		},
		{
			name:     "wrong delimiter collapses to one column",
			input:    "Account Name,Parent Name\nAcme Sub,Acme Corp\n",
			delim:    ';',
			wantKind: KindEmpty,
		},
		{
			name:     "required columns absent",
			input:    "Company,Owner\nAcme Sub,Acme Corp\n",
			delim:    ',',
			wantKind: KindSchemaMissing,
		},
		{
			name:     "column match is case sensitive",
			input:    "account name,parent name\nAcme Sub,Acme Corp\n",
			delim:    ',',
			wantKind: KindSchemaMissing,
		},
		{
			name:     "column match is whitespace sensitive",
			input:    " Account Name ,Parent Name\nAcme Sub,Acme Corp\n",
			delim:    ',',
			wantKind: KindSchemaMissing,
		},
		{
			name:     "cleaning removes every row",
			input:    "Account Name,Parent Name\n,Acme Corp\nBeta LLC,\n",
			delim:    ',',
			wantKind: KindAllRowsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load([]byte(tt.input), tt.delim)
			if tt.wantKind != "" {
				require.Error(t, err)
				var le *LoadError
				require.ErrorAs(t, err, &le)
				assert.Equal(t, tt.wantKind, le.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPairs, d.Pairs)
			assert.Equal(t, tt.wantDrops, d.DroppedRows)
		})
	}
}

func TestLoadWindows1252Fallback(t *testing.T) {
	// "Café,Société Générale" in windows-1252: é is 0xE9, invalid UTF-8.
	input := []byte("Account Name,Parent Name\nCaf\xe9,Soci\xe9t\xe9 G\xe9n\xe9rale\n")

	d, err := Load(input, ',')
	require.NoError(t, err)
	require.Equal(t, 1, d.Size())
	assert.Equal(t, "Café", d.Pairs[0].AccountName)
	assert.Equal(t, "Société Générale", d.Pairs[0].ParentName)
}

func TestLoadEncodingFailure(t *testing.T) {
	// 0x81 is invalid UTF-8 and undefined in windows-1252.
	input := []byte("Account Name,Parent Name\nAcme\x81,Corp\n")

	_, err := Load(input, ',')
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, KindEncoding, le.Kind)
}

func TestLoadStripsBOM(t *testing.T) {
	input := []byte("\xef\xbb\xbfAccount Name,Parent Name\nAcme Sub,Acme Corp\n")

	d, err := Load(input, ',')
	require.NoError(t, err)
	assert.Equal(t, "Acme Sub", d.Pairs[0].AccountName)
}

func TestLoadDoesNotMutateInput(t *testing.T) {
	input := []byte("Account Name,Parent Name\nAcme Sub,Acme Corp\n")
	before := string(input)

	_, err := Load(input, ',')
	require.NoError(t, err)
	assert.Equal(t, before, string(input))
}

// Re-serializing the cleaned pairs with the same delimiter and reloading
// must reproduce the same pairs in the same order.
func TestLoadRoundTrip(t *testing.T) {
	input := "Account Name,Parent Name\nAcme Sub,Acme Corp\n , \nBeta LLC,Beta Holdings\n"

	for _, d := range Delimiters {
		t.Run(d.Name, func(t *testing.T) {
			first, err := Load([]byte(strings.ReplaceAll(input, ",", string(d.Rune))), d.Rune)
			require.NoError(t, err)

			var b strings.Builder
			b.WriteString(AccountColumn + string(d.Rune) + ParentColumn + "\n")
			for _, p := range first.Pairs {
				b.WriteString(p.AccountName + string(d.Rune) + p.ParentName + "\n")
			}

			second, err := Load([]byte(b.String()), d.Rune)
			require.NoError(t, err)
			assert.Equal(t, first.Pairs, second.Pairs)
		})
	}
}

func TestPreview(t *testing.T) {
	lines := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		lines = append(lines, "line")
	}
	input := strings.Join(lines, "\n") + "\n"

	got := Preview([]byte(input), 10)
	assert.Len(t, got, 10)

	got = Preview([]byte("a\r\nb\r\n"), 10)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestPreviewUndecodableBytes(t *testing.T) {
	// Preview never fails: undecodable bytes are replaced.
	got := Preview([]byte("ok\n\x81bad\n"), 10)
	require.Len(t, got, 2)
	assert.Equal(t, "ok", got[0])
	assert.Contains(t, got[1], "�")
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: "comma", want: ','},
		{in: ",", want: ','},
		{in: ", (comma)", want: ','},
		{in: "semicolon", want: ';'},
		{in: "tab", want: '\t'},
		{in: "\t", want: '\t'},
		{in: "pipe", want: '|'},
		{in: "space", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		d, err := ParseDelimiter(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDelimiter(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDelimiter(%q): %v", tt.in, err)
			continue
		}
		if d.Rune != tt.want {
			t.Errorf("ParseDelimiter(%q) = %q, want %q", tt.in, d.Rune, tt.want)
		}
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &LoadError{Kind: KindEmpty, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "empty")
}
