package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	repo "council-archive/internal/question/repository"
	"council-archive/pkg/log"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "questions.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	r := New(db, log.NewNop())
	require.NoError(t, r.Migrate(context.Background()))
	return r
}

func sampleOptions(summary string, createdAt time.Time) repo.CreateQuestionOptions {
	return repo.CreateQuestionOptions{
		Date:       "2026-10-18",
		Meeting:    "令和8年9月定例会",
		Speaker:    "山田議員",
		Questioner: "",
		Summary:    summary,
		Timestamp:  "2:01",
		YoutubeURL: "https://www.youtube.com/watch?v=abcdefghijk",
		Author:     "clerk@example.jp",
		CreatedAt:  createdAt,
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	r := newTestRepo(t)
	assert.NoError(t, r.Migrate(context.Background()))
}

func TestCreateAndGetQuestion(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	createdAt := time.Date(2026, 10, 18, 1, 2, 3, 456, time.UTC)
	created, err := r.CreateQuestion(ctx, sampleOptions("防災について\n避難所の整備", createdAt))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := r.GetOneQuestion(ctx, repo.GetOneQuestionOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.True(t, got.CreatedAt.Equal(createdAt))
}

func TestGetOneQuestion_NotFound(t *testing.T) {
	r := newTestRepo(t)

	got, err := r.GetOneQuestion(context.Background(), repo.GetOneQuestionOptions{ID: "missing"})
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestListQuestions_NewestFirst(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	base := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	for i, summary := range []string{"first", "second", "third"} {
		opt := sampleOptions(summary, base.Add(time.Duration(i)*time.Minute))
		if summary == "second" {
			opt.Author = "other@example.jp"
		}
		_, err := r.CreateQuestion(ctx, opt)
		require.NoError(t, err)
	}

	all, err := r.ListQuestions(ctx, repo.ListQuestionsOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Summary)
	assert.Equal(t, "second", all[1].Summary)
	assert.Equal(t, "first", all[2].Summary)

	mine, err := r.ListQuestions(ctx, repo.ListQuestionsOptions{Author: "clerk@example.jp"})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestDeleteQuestion(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	created, err := r.CreateQuestion(ctx, sampleOptions("to delete", time.Now()))
	require.NoError(t, err)

	require.NoError(t, r.DeleteQuestion(ctx, created.ID))

	got, err := r.GetOneQuestion(ctx, repo.GetOneQuestionOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	// Deleting a missing row is not an error.
	assert.NoError(t, r.DeleteQuestion(ctx, created.ID))
}
