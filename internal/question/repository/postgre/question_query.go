package postgre

import (
	"fmt"
	"strings"

	repo "council-archive/internal/question/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListQuestions.
func buildListQuery(opt repo.ListQuestionsOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	if opt.Author != "" {
		parts = append(parts, fmt.Sprintf("WHERE author = $%d", idx))
		args = append(args, opt.Author)
	}
	parts = append(parts, "ORDER BY created_at DESC, id")

	return strings.Join(parts, " "), args
}
