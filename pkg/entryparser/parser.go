package entryparser

import (
	"regexp"
	"strings"
)

// timestampLine matches a trimmed line such as "0:02 text", "(12:30)　text".
// \s is ASCII-only in RE2, so the ideographic space is listed explicitly.
var timestampLine = regexp.MustCompile(`^\(?(\d+:\d+)\)?[\s\x{3000}]+(\S.*)$`)

// Parser converts pasted multi-line text into ordered entries.
// A Parser holds only its options and is safe for concurrent use.
type Parser struct {
	opts Options
}

// NewParser validates opts and returns a Parser.
func NewParser(opts Options) (*Parser, error) {
	if opts.Style == "" {
		opts.Style = StyleMultiLine
	}
	if opts.BlankLines == "" {
		opts.BlankLines = BlankLineDrop
	}

	switch opts.Style {
	case StyleMultiLine, StyleSingleLine:
	default:
		return nil, ErrUnknownStyle
	}
	switch opts.BlankLines {
	case BlankLineDrop, BlankLinePreserve, BlankLineTerminate:
	default:
		return nil, ErrUnknownBlankLinePolicy
	}

	return &Parser{opts: opts}, nil
}

// Options returns the effective options of the parser.
func (p *Parser) Options() Options {
	return p.opts
}

// Parse returns the entries found in raw, in input order. It never fails:
// text without any timestamp line yields an empty, non-nil slice.
func (p *Parser) Parse(raw string) []Entry {
	st := state{entries: []Entry{}}
	for _, line := range splitLines(raw) {
		st = p.step(st, line)
	}
	return st.flush().entries
}

// Parse parses raw with the default options (multi-line, blank lines dropped).
func Parse(raw string) []Entry {
	p, _ := NewParser(Options{})
	return p.Parse(raw)
}

// draft is the entry currently being accumulated.
type draft struct {
	timestamp string
	lines     []string
}

type state struct {
	entries []Entry
	open    *draft
}

func (p *Parser) step(st state, line string) state {
	trimmed := strings.TrimSpace(line)

	if ts, summary, ok := matchTimestampLine(trimmed); ok {
		st = st.flush()
		st.open = &draft{timestamp: ts, lines: []string{summary}}
		return st
	}

	if st.open == nil || p.opts.Style == StyleSingleLine {
		return st
	}

	if trimmed == "" {
		switch p.opts.BlankLines {
		case BlankLinePreserve:
			st.open.lines = append(st.open.lines, "")
		case BlankLineTerminate:
			st = st.flush()
		}
		return st
	}

	st.open.lines = append(st.open.lines, trimmed)
	return st
}

// flush closes the open draft, if any. Trailing blank lines kept by
// BlankLinePreserve are dropped so a summary never ends with a line break.
func (st state) flush() state {
	if st.open == nil {
		return st
	}

	lines := st.open.lines
	for len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	st.entries = append(st.entries, Entry{
		Timestamp: st.open.timestamp,
		Summary:   strings.Join(lines, "\n"),
	})
	st.open = nil
	return st
}

// matchTimestampLine reports whether a trimmed line starts an entry.
func matchTimestampLine(trimmed string) (timestamp, summary string, ok bool) {
	m := timestampLine.FindStringSubmatch(trimmed)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(raw, "\n")
}

// ParseStyle converts a configuration string into a Style.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleMultiLine:
		return StyleMultiLine, nil
	case StyleSingleLine:
		return StyleSingleLine, nil
	}
	return "", ErrUnknownStyle
}

// ParseBlankLinePolicy converts a configuration string into a BlankLinePolicy.
func ParseBlankLinePolicy(s string) (BlankLinePolicy, error) {
	switch BlankLinePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", BlankLineDrop:
		return BlankLineDrop, nil
	case BlankLinePreserve:
		return BlankLinePreserve, nil
	case BlankLineTerminate:
		return BlankLineTerminate, nil
	}
	return "", ErrUnknownBlankLinePolicy
}
