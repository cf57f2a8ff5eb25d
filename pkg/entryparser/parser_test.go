package entryparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"council-archive/pkg/entryparser"
)

func TestNewParser(t *testing.T) {
	p, err := entryparser.NewParser(entryparser.Options{})
	require.NoError(t, err)
	assert.Equal(t, entryparser.Options{
		Style:      entryparser.StyleMultiLine,
		BlankLines: entryparser.BlankLineDrop,
	}, p.Options())

	_, err = entryparser.NewParser(entryparser.Options{Style: "paragraph"})
	assert.ErrorIs(t, err, entryparser.ErrUnknownStyle)

	_, err = entryparser.NewParser(entryparser.Options{BlankLines: "keep-ish"})
	assert.ErrorIs(t, err, entryparser.ErrUnknownBlankLinePolicy)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []entryparser.Entry
	}{
		{
			name: "One entry per line",
			raw:  "0:02 キャッシュレス対応の質問\n2:01 導入状況の回答",
			want: []entryparser.Entry{
				{Timestamp: "0:02", Summary: "キャッシュレス対応の質問"},
				{Timestamp: "2:01", Summary: "導入状況の回答"},
			},
		},
		{
			name: "Parentheses are stripped",
			raw:  "(0:02) hello",
			want: []entryparser.Entry{{Timestamp: "0:02", Summary: "hello"}},
		},
		{
			name: "Continuation lines attach to the preceding entry",
			raw:  "0:02 first\nmore text\n2:01 second",
			want: []entryparser.Entry{
				{Timestamp: "0:02", Summary: "first\nmore text"},
				{Timestamp: "2:01", Summary: "second"},
			},
		},
		{
			name: "Stray line before first timestamp is discarded",
			raw:  "stray\n0:05 ok",
			want: []entryparser.Entry{{Timestamp: "0:05", Summary: "ok"}},
		},
		{
			name: "Full-width space separator",
			raw:  "12:30　町長答弁",
			want: []entryparser.Entry{{Timestamp: "12:30", Summary: "町長答弁"}},
		},
		{
			name: "Surrounding whitespace and CRLF",
			raw:  "  1:05   indented  \r\n\t(10:00)\tnext\r\n",
			want: []entryparser.Entry{
				{Timestamp: "1:05", Summary: "indented"},
				{Timestamp: "10:00", Summary: "next"},
			},
		},
		{
			name: "Timestamp without summary is a continuation line",
			raw:  "0:10 question\n0:20\n0:30 answer",
			want: []entryparser.Entry{
				{Timestamp: "0:10", Summary: "question\n0:20"},
				{Timestamp: "0:30", Summary: "answer"},
			},
		},
		{
			name: "Timestamp glued to text does not start an entry",
			raw:  "0:10 question\n0:20text",
			want: []entryparser.Entry{{Timestamp: "0:10", Summary: "question\n0:20text"}},
		},
		{
			name: "Blank lines are dropped by default",
			raw:  "\n\n0:10 question\n\nsecond line\n\n",
			want: []entryparser.Entry{{Timestamp: "0:10", Summary: "question\nsecond line"}},
		},
		{
			name: "Empty input",
			raw:  "",
			want: []entryparser.Entry{},
		},
		{
			name: "No matching lines",
			raw:  "just some notes\nwithout any timestamps",
			want: []entryparser.Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := entryparser.Parse(tt.raw)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_SingleLineStyle(t *testing.T) {
	p, err := entryparser.NewParser(entryparser.Options{Style: entryparser.StyleSingleLine})
	require.NoError(t, err)

	got := p.Parse("header\n0:02 first\nmore text\n2:01 second")
	assert.Equal(t, []entryparser.Entry{
		{Timestamp: "0:02", Summary: "first"},
		{Timestamp: "2:01", Summary: "second"},
	}, got)
}

func TestParse_BlankLinePolicies(t *testing.T) {
	raw := "0:02 first\n\nafter blank\n\n\n2:01 second\ntail\n\n"

	tests := []struct {
		policy entryparser.BlankLinePolicy
		want   []entryparser.Entry
	}{
		{
			policy: entryparser.BlankLineDrop,
			want: []entryparser.Entry{
				{Timestamp: "0:02", Summary: "first\nafter blank"},
				{Timestamp: "2:01", Summary: "second\ntail"},
			},
		},
		{
			policy: entryparser.BlankLinePreserve,
			want: []entryparser.Entry{
				{Timestamp: "0:02", Summary: "first\n\nafter blank"},
				{Timestamp: "2:01", Summary: "second\ntail"},
			},
		},
		{
			policy: entryparser.BlankLineTerminate,
			want: []entryparser.Entry{
				{Timestamp: "0:02", Summary: "first"},
				{Timestamp: "2:01", Summary: "second\ntail"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			p, err := entryparser.NewParser(entryparser.Options{BlankLines: tt.policy})
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Parse(raw))
		})
	}
}

func TestParse_WellFormedCount(t *testing.T) {
	raw := "0:01 a\n\n0:02 b\n(0:03) c\n\n\n1:00 d"
	got := entryparser.Parse(raw)
	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(got))
	}
	for i, want := range []string{"0:01", "0:02", "0:03", "1:00"} {
		if got[i].Timestamp != want {
			t.Errorf("entry %d: expected timestamp %s, got %s", i, want, got[i].Timestamp)
		}
	}
}

func TestParse_Idempotent(t *testing.T) {
	raw := "intro\n0:02 first\nmore text\n\n2:01 second"
	assert.Equal(t, entryparser.Parse(raw), entryparser.Parse(raw))
}

func TestParseOptionStrings(t *testing.T) {
	style, err := entryparser.ParseStyle(" Single_Line ")
	require.NoError(t, err)
	assert.Equal(t, entryparser.StyleSingleLine, style)

	style, err = entryparser.ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, entryparser.StyleMultiLine, style)

	_, err = entryparser.ParseStyle("csv")
	assert.ErrorIs(t, err, entryparser.ErrUnknownStyle)

	policy, err := entryparser.ParseBlankLinePolicy("PRESERVE")
	require.NoError(t, err)
	assert.Equal(t, entryparser.BlankLinePreserve, policy)

	_, err = entryparser.ParseBlankLinePolicy("squash")
	assert.ErrorIs(t, err, entryparser.ErrUnknownBlankLinePolicy)
}
