package datemath_test

import (
	"testing"
	"time"

	"council-archive/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestToday(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Tokyo")

	// 2025-06-11 20:00 UTC is already June 12 in Tokyo.
	base := time.Date(2025, 6, 11, 20, 0, 0, 0, time.UTC)
	if got := parser.Today(base); got != "2025-06-12" {
		t.Errorf("Today = %s, want 2025-06-12", got)
	}

	utc, _ := datemath.NewParser("UTC")
	if got := utc.Today(base); got != "2025-06-11" {
		t.Errorf("Today (UTC) = %s, want 2025-06-11", got)
	}
}

func TestDateOf(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Tokyo")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "RFC3339 UTC crosses midnight", input: "2025-06-11T16:30:00Z", want: "2025-06-12"},
		{name: "RFC3339 same day", input: "2025-06-11T01:00:00Z", want: "2025-06-11"},
		{name: "Fallback split", input: "2025-06-11Tgarbage", want: "2025-06-11"},
		{name: "Date only", input: "2025-06-11", want: "2025-06-11"},
		{name: "Empty", input: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parser.DateOf(tt.input); got != tt.want {
				t.Errorf("DateOf(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
