package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"council-archive/internal/question"
	repo "council-archive/internal/question/repository"
)

const selectColumns = `id, date, meeting, speaker, questioner, summary, video_timestamp,
	youtube_url, title, published_at, author, created_at`

// CreateQuestion inserts a new Question row and returns the created entity.
func (r *implRepository) CreateQuestion(ctx context.Context, opt repo.CreateQuestionOptions) (question.Question, error) {
	query := fmt.Sprintf(`INSERT INTO questions (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, selectColumns)

	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, query,
		id, opt.Date, opt.Meeting, opt.Speaker, opt.Questioner, opt.Summary, opt.Timestamp,
		opt.YoutubeURL, opt.Title, opt.PublishedAt, opt.Author, formatCreatedAt(opt.CreatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateQuestion"), err)
		return question.Question{}, repo.ErrFailedToInsert
	}

	return question.Question{
		ID:          id,
		Date:        opt.Date,
		Meeting:     opt.Meeting,
		Speaker:     opt.Speaker,
		Questioner:  opt.Questioner,
		Summary:     opt.Summary,
		Timestamp:   opt.Timestamp,
		YoutubeURL:  opt.YoutubeURL,
		Title:       opt.Title,
		PublishedAt: opt.PublishedAt,
		Author:      opt.Author,
		CreatedAt:   opt.CreatedAt.UTC(),
	}, nil
}

// GetOneQuestion retrieves a single Question by ID.
// Returns zero-value Question (ID == "") when not found.
func (r *implRepository) GetOneQuestion(ctx context.Context, opt repo.GetOneQuestionOptions) (question.Question, error) {
	query := fmt.Sprintf(`SELECT %s FROM questions WHERE id = ? LIMIT 1`, selectColumns)

	q, err := scanQuestion(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return question.Question{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneQuestion"), err)
		return question.Question{}, repo.ErrFailedToGet
	}
	return q, nil
}

// ListQuestions returns every Question, newest first.
func (r *implRepository) ListQuestions(ctx context.Context, opt repo.ListQuestionsOptions) ([]question.Question, error) {
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM questions %s`, selectColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListQuestions"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var qs []question.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListQuestions"), err)
			return nil, repo.ErrFailedToList
		}
		qs = append(qs, q)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListQuestions"), err)
		return nil, repo.ErrFailedToList
	}
	return qs, nil
}

// DeleteQuestion removes a Question by ID.
func (r *implRepository) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteQuestion"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (question.Question, error) {
	var q question.Question
	var createdAt string
	err := row.Scan(
		&q.ID, &q.Date, &q.Meeting, &q.Speaker, &q.Questioner, &q.Summary, &q.Timestamp,
		&q.YoutubeURL, &q.Title, &q.PublishedAt, &q.Author, &createdAt,
	)
	if err != nil {
		return question.Question{}, err
	}
	q.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return question.Question{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return q, nil
}

// buildListQuery builds the WHERE + ORDER clause for ListQuestions.
func buildListQuery(opt repo.ListQuestionsOptions) (string, []any) {
	var parts []string
	var args []any

	if opt.Author != "" {
		parts = append(parts, "WHERE author = ?")
		args = append(args, opt.Author)
	}
	parts = append(parts, "ORDER BY created_at DESC, id")

	return strings.Join(parts, " "), args
}
