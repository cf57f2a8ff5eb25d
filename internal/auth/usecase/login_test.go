package usecase_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"council-archive/internal/auth"
	"council-archive/internal/auth/usecase"
	"council-archive/pkg/googleauth"
	"council-archive/pkg/scope"
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

type mockGoogle struct {
	identity googleauth.Identity
	err      error
}

func (m *mockGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example/auth?state=" + url.QueryEscape(state)
}

func (m *mockGoogle) Exchange(ctx context.Context, code string) (googleauth.Identity, error) {
	return m.identity, m.err
}

func loginState(t *testing.T, uc auth.UseCase) string {
	t.Helper()
	out, err := uc.Login(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := url.Parse(out.URL)
	if u.Query().Get("state") != out.State || out.State == "" {
		t.Fatalf("state not embedded in url: %s", out.URL)
	}
	return out.State
}

func TestCallback(t *testing.T) {
	ctx := context.Background()
	jm := scope.New("secret", time.Hour, "test")
	verified := googleauth.Identity{ID: "1", Email: "Clerk@Example.jp", VerifiedEmail: true, Name: "Clerk"}

	t.Run("Success with allowlist", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGoogle{identity: verified}, jm, time.Hour, []string{"clerk@example.jp"})
		state := loginState(t, uc)

		out, err := uc.Callback(ctx, auth.CallbackInput{State: state, Code: "code"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.User.IsAdmin {
			t.Errorf("expected admin")
		}
		payload, err := jm.Verify(out.Token)
		if err != nil || payload.Email != "Clerk@Example.jp" || !payload.IsAdmin {
			t.Errorf("unexpected token payload: %+v, %v", payload, err)
		}

		// State is one-time.
		if _, err := uc.Callback(ctx, auth.CallbackInput{State: state, Code: "code"}); !errors.Is(err, auth.ErrInvalidState) {
			t.Errorf("expected ErrInvalidState on replay, got %v", err)
		}
	})

	t.Run("Not on allowlist", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGoogle{identity: verified}, jm, time.Hour, []string{"mayor@example.jp"})
		out, err := uc.Callback(ctx, auth.CallbackInput{State: loginState(t, uc), Code: "code"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.IsAdmin {
			t.Errorf("expected non-admin")
		}
	})

	t.Run("Empty allowlist admits everyone", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGoogle{identity: verified}, jm, time.Hour, nil)
		out, _ := uc.Callback(ctx, auth.CallbackInput{State: loginState(t, uc), Code: "code"})
		if !out.User.IsAdmin {
			t.Errorf("expected admin")
		}
	})

	t.Run("Unknown state", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGoogle{identity: verified}, jm, time.Hour, nil)
		if _, err := uc.Callback(ctx, auth.CallbackInput{State: "forged", Code: "code"}); !errors.Is(err, auth.ErrInvalidState) {
			t.Errorf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("Missing code", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGoogle{identity: verified}, jm, time.Hour, nil)
		if _, err := uc.Callback(ctx, auth.CallbackInput{State: loginState(t, uc)}); !errors.Is(err, auth.ErrMissingCode) {
			t.Errorf("expected ErrMissingCode, got %v", err)
		}
	})

	t.Run("Exchange failure", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockGoogle{err: errors.New("invalid_grant")}, jm, time.Hour, nil)
		if _, err := uc.Callback(ctx, auth.CallbackInput{State: loginState(t, uc), Code: "code"}); !errors.Is(err, auth.ErrExchangeFailed) {
			t.Errorf("expected ErrExchangeFailed, got %v", err)
		}
	})

	t.Run("Unverified email", func(t *testing.T) {
		unverified := verified
		unverified.VerifiedEmail = false
		uc := usecase.New(&mockLogger{}, &mockGoogle{identity: unverified}, jm, time.Hour, nil)
		if _, err := uc.Callback(ctx, auth.CallbackInput{State: loginState(t, uc), Code: "code"}); !errors.Is(err, auth.ErrUnverifiedEmail) {
			t.Errorf("expected ErrUnverifiedEmail, got %v", err)
		}
	})
}
