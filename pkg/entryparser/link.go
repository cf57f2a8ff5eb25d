package entryparser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Offset converts "M:S" into whole seconds (M*60 + S). Seconds are not
// normalized: "1:90" is 150. An offset that does not fit in an int is
// ErrInvalidTimestamp. Surrounding parentheses are tolerated.
func Offset(timestamp string) (int, error) {
	ts := strings.Trim(strings.TrimSpace(timestamp), "()")
	minPart, secPart, ok := strings.Cut(ts, ":")
	if !ok || !isDigits(minPart) || !isDigits(secPart) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}

	minutes, err := strconv.Atoi(minPart)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}
	seconds, err := strconv.Atoi(secPart)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, timestamp)
	}

	if minutes > (math.MaxInt-seconds)/60 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidTimestamp, timestamp)
	}

	return minutes*60 + seconds, nil
}

// Link appends a "t=<offset>s" seek parameter to a video URL.
func Link(baseURL, timestamp string) (string, error) {
	offset, err := Offset(timestamp)
	if err != nil {
		return "", err
	}

	sep := "?"
	switch {
	case strings.HasSuffix(baseURL, "?"), strings.HasSuffix(baseURL, "&"):
		sep = ""
	case strings.Contains(baseURL, "?"):
		sep = "&"
	}

	return fmt.Sprintf("%s%st=%ds", baseURL, sep, offset), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
