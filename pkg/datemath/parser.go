package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser formats and normalizes calendar dates in the archive's timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Tokyo"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar date of baseTime in the parser's timezone as YYYY-MM-DD.
func (p *Parser) Today(baseTime time.Time) string {
	return baseTime.In(p.location).Format(DateLayout)
}

// DateOf returns the YYYY-MM-DD part of an RFC3339 timestamp such as a video's
// publishedAt, converted to the parser's timezone. Unparseable input falls back
// to the text before "T"; empty input stays empty.
func (p *Parser) DateOf(rfc3339 string) string {
	rfc3339 = strings.TrimSpace(rfc3339)
	if rfc3339 == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		date, _, _ := strings.Cut(rfc3339, "T")
		return date
	}
	return t.In(p.location).Format(DateLayout)
}
