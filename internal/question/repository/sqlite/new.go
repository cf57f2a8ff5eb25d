package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"council-archive/internal/question/repository"
	"council-archive/pkg/log"
)

// createdAtLayout keeps text ordering equal to time ordering.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the question domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("question/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("question/repository/sqlite.%s", method)
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
