package postgre

import (
	"context"

	repo "council-archive/internal/question/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
	id              TEXT PRIMARY KEY,
	date            TEXT NOT NULL,
	meeting         TEXT NOT NULL,
	speaker         TEXT NOT NULL,
	questioner      TEXT NOT NULL DEFAULT '',
	summary         TEXT NOT NULL,
	video_timestamp TEXT NOT NULL,
	youtube_url     TEXT NOT NULL,
	title           TEXT NOT NULL DEFAULT '',
	published_at    TEXT NOT NULL DEFAULT '',
	author          TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS questions_created_at_idx ON questions (created_at DESC);`

// Migrate creates the questions table if it doesn't exist.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
		return repo.ErrFailedToMigrate
	}
	return nil
}
