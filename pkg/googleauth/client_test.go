package googleauth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"council-archive/pkg/googleauth"
)

func newGoogleServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			r.ParseForm()
			if r.Form.Get("code") != "good-code" {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid_grant"}`))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
		case "/oauth2/v2/userinfo":
			if r.Header.Get("Authorization") != "Bearer at-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"1001","email":"clerk@example.jp","verified_email":true,"name":"Clerk"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestAuthCodeURL(t *testing.T) {
	c := googleauth.NewClient("client-id", "secret", "http://localhost:8080/auth/google/callback")

	raw := c.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := u.Query()
	if q.Get("state") != "state-123" {
		t.Errorf("unexpected state: %s", q.Get("state"))
	}
	if q.Get("client_id") != "client-id" {
		t.Errorf("unexpected client id: %s", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != "http://localhost:8080/auth/google/callback" {
		t.Errorf("unexpected redirect uri: %s", q.Get("redirect_uri"))
	}
	if !strings.Contains(q.Get("scope"), "email") {
		t.Errorf("expected email scope, got %s", q.Get("scope"))
	}
}

func TestExchange(t *testing.T) {
	ts := newGoogleServer(t)
	defer ts.Close()

	c := googleauth.NewClient("client-id", "secret", "http://localhost/cb")
	c.SetEndpoints(ts.Client(), ts.URL+"/token", ts.URL+"/")

	t.Run("Success", func(t *testing.T) {
		id, err := c.Exchange(context.Background(), "good-code")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id.Email != "clerk@example.jp" || !id.VerifiedEmail || id.ID != "1001" {
			t.Errorf("unexpected identity: %+v", id)
		}
	})

	t.Run("Bad code", func(t *testing.T) {
		if _, err := c.Exchange(context.Background(), "bad-code"); err == nil {
			t.Fatalf("expected exchange error")
		}
	})

	t.Run("Empty code", func(t *testing.T) {
		if _, err := c.Exchange(context.Background(), ""); !errors.Is(err, googleauth.ErrMissingCode) {
			t.Fatalf("expected ErrMissingCode, got %v", err)
		}
	})
}

func TestNewClientFromCredentialsFile(t *testing.T) {
	creds := `{
		"web": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost:8080/auth/google/callback"]
		}
	}`

	tmpFile, _ := os.CreateTemp("", "creds-*.json")
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString(creds)
	tmpFile.Close()

	c, err := googleauth.NewClientFromCredentialsFile(tmpFile.Name(), "https://archive.example.jp/auth/google/callback")
	if err != nil {
		t.Fatalf("expected parsing to succeed: %v", err)
	}
	if c.RedirectURL() != "https://archive.example.jp/auth/google/callback" {
		t.Errorf("redirect url not overridden: %s", c.RedirectURL())
	}

	if _, err := googleauth.NewClientFromCredentialsFile("non-existent-file-path-12345.json", ""); err == nil {
		t.Errorf("expected reading file error")
	}

	broken, _ := os.CreateTemp("", "broken-*.json")
	defer os.Remove(broken.Name())
	broken.WriteString(`{"broken":true}`)
	broken.Close()
	if _, err := googleauth.NewClientFromCredentialsFile(broken.Name(), ""); err == nil {
		t.Errorf("expected failure loading broken file")
	}
}
