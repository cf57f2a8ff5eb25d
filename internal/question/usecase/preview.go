package usecase

import (
	"context"
	"strings"

	"council-archive/internal/question"
	"council-archive/pkg/entryparser"
)

// Preview parses the pasted text without writing anything.
func (uc *implUseCase) Preview(ctx context.Context, input question.PreviewInput) (question.PreviewOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return question.PreviewOutput{}, question.ErrEmptyInput
	}

	parser, err := uc.parserFor(input.Style)
	if err != nil {
		return question.PreviewOutput{}, err
	}

	entries := parser.Parse(input.RawText)
	out := question.PreviewOutput{Entries: make([]question.PreviewEntry, 0, len(entries))}
	for _, e := range entries {
		pe := question.PreviewEntry{Entry: e}
		pe.Offset, _ = entryparser.Offset(e.Timestamp)
		if input.VideoURL != "" {
			pe.Link, _ = entryparser.Link(input.VideoURL, e.Timestamp)
		}
		out.Entries = append(out.Entries, pe)
	}
	return out, nil
}

// parserFor returns the configured parser, or one with the requested style.
func (uc *implUseCase) parserFor(style string) (*entryparser.Parser, error) {
	if style == "" {
		return uc.parser, nil
	}
	s, err := entryparser.ParseStyle(style)
	if err != nil {
		return nil, question.ErrInvalidStyle
	}
	opts := uc.parser.Options()
	opts.Style = s
	return entryparser.NewParser(opts)
}
