package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"council-archive/internal/question"
	repo "council-archive/internal/question/repository"
)

const selectColumns = `id, date, meeting, speaker, questioner, summary, video_timestamp,
	youtube_url, title, published_at, author, created_at`

// CreateQuestion inserts a new Question row and returns the created entity.
func (r *implRepository) CreateQuestion(ctx context.Context, opt repo.CreateQuestionOptions) (question.Question, error) {
	query := fmt.Sprintf(`
		INSERT INTO questions (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s`, selectColumns, selectColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.NewString(), opt.Date, opt.Meeting, opt.Speaker, opt.Questioner, opt.Summary, opt.Timestamp,
		opt.YoutubeURL, opt.Title, opt.PublishedAt, opt.Author, opt.CreatedAt,
	)
	q, err := scanQuestion(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateQuestion"), err)
		return question.Question{}, repo.ErrFailedToInsert
	}
	return q, nil
}

// GetOneQuestion retrieves a single Question by ID.
// Returns zero-value Question (ID == "") when not found.
func (r *implRepository) GetOneQuestion(ctx context.Context, opt repo.GetOneQuestionOptions) (question.Question, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return question.Question{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM questions WHERE id = $1 LIMIT 1`, selectColumns)
	q, err := scanQuestion(r.db.QueryRow(ctx, query, opt.ID))
	if errors.Is(err, pgx.ErrNoRows) {
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

	rows, err := r.db.Query(ctx, query, args...)
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
	if _, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteQuestion"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func scanQuestion(row pgx.Row) (question.Question, error) {
	var q question.Question
	err := row.Scan(
		&q.ID, &q.Date, &q.Meeting, &q.Speaker, &q.Questioner, &q.Summary, &q.Timestamp,
		&q.YoutubeURL, &q.Title, &q.PublishedAt, &q.Author, &q.CreatedAt,
	)
	return q, err
}
