package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"council-archive/internal/question"
	repo "council-archive/internal/question/repository"
	"council-archive/internal/video"
	"council-archive/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo is an in-memory Repository. failOn makes CreateQuestion fail for a summary.
type mockRepo struct {
	mu      sync.Mutex
	seq     int
	items   []question.Question
	failOn  string
	listErr error
	gotList repo.ListQuestionsOptions
}

func (m *mockRepo) Migrate(ctx context.Context) error { return nil }

func (m *mockRepo) CreateQuestion(ctx context.Context, opt repo.CreateQuestionOptions) (question.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != "" && opt.Summary == m.failOn {
		return question.Question{}, repo.ErrFailedToInsert
	}
	m.seq++
	q := question.Question{
		ID:          string(rune('a'+m.seq-1)) + "-id",
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
		CreatedAt:   opt.CreatedAt,
	}
	m.items = append(m.items, q)
	return q, nil
}

func (m *mockRepo) GetOneQuestion(ctx context.Context, opt repo.GetOneQuestionOptions) (question.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.items {
		if q.ID == opt.ID {
			return q, nil
		}
	}
	return question.Question{}, nil
}

func (m *mockRepo) ListQuestions(ctx context.Context, opt repo.ListQuestionsOptions) ([]question.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gotList = opt
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]question.Question, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0; i-- {
		if opt.Author != "" && m.items[i].Author != opt.Author {
			continue
		}
		out = append(out, m.items[i])
	}
	return out, nil
}

func (m *mockRepo) DeleteQuestion(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, q := range m.items {
		if q.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockVideoUC struct {
	calls int
	meta  video.Metadata
	err   error
}

func (m *mockVideoUC) GetMetadata(ctx context.Context, videoURL string) (video.Metadata, error) {
	m.calls++
	return m.meta, m.err
}

var errVideoDown = errors.New("video service down")

var fixedNow = time.Date(2026, 10, 18, 16, 30, 0, 0, time.UTC) // 2026-10-19 01:30 in Tokyo

func newTestUseCase(t interface{ Fatalf(string, ...any) }, r *mockRepo, v video.UseCase, cfg Config) *implUseCase {
	dm, err := datemath.NewParser("Asia/Tokyo")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}
	u, err := New(&mockLogger{}, r, v, dm, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	impl := u.(*implUseCase)
	impl.now = func() time.Time { return fixedNow }
	return impl
}
