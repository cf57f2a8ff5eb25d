package usecase

import (
	"strings"

	"council-archive/internal/question"
)

// orDefault returns the trimmed name, or the placeholder when it is blank.
func orDefault(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return question.DefaultPerson
}
