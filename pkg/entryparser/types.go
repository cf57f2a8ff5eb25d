package entryparser

import "errors"

// Entry is one (timestamp, summary) pair extracted from pasted text.
type Entry struct {
	Timestamp string `json:"timestamp"` // "M:S", parentheses stripped
	Summary   string `json:"summary"`   // one or more lines joined with "\n"
}

// Style selects how lines that do not start with a timestamp are treated.
type Style string

const (
	// StyleMultiLine appends non-timestamp lines to the open entry.
	StyleMultiLine Style = "multiline"
	// StyleSingleLine skips every non-timestamp line.
	StyleSingleLine Style = "single_line"
)

// BlankLinePolicy decides what a blank line inside an open multi-line entry does.
type BlankLinePolicy string

const (
	BlankLineDrop      BlankLinePolicy = "drop"
	BlankLinePreserve  BlankLinePolicy = "preserve"
	BlankLineTerminate BlankLinePolicy = "terminate"
)

// Options configures a Parser. Zero values mean StyleMultiLine and BlankLineDrop.
type Options struct {
	Style      Style
	BlankLines BlankLinePolicy
}

var (
	ErrUnknownStyle           = errors.New("entryparser: unknown input style")
	ErrUnknownBlankLinePolicy = errors.New("entryparser: unknown blank line policy")
	ErrInvalidTimestamp       = errors.New("entryparser: invalid timestamp")
)
