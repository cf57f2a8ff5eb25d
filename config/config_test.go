package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestSplitList(t *testing.T) {
	got := splitList(" a@example.jp, ,b@example.jp,")
	if len(got) != 2 || got[0] != "a@example.jp" || got[1] != "b@example.jp" {
		t.Errorf("unexpected list: %#v", got)
	}
	if splitList("") != nil {
		t.Errorf("expected nil for empty input")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Storage: StorageConfig{Driver: "sqlite"},
			SQLite:  SQLiteConfig{Path: "data/archive.db"},
			Auth:    AuthConfig{JWTSecret: "secret"},
			Archive: ArchiveConfig{WriteConcurrency: 4},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid sqlite", func(c *Config) {}, false},
		{"Postgre without url", func(c *Config) { c.Storage.Driver = "postgre" }, true},
		{"Postgre with url", func(c *Config) {
			c.Storage.Driver = "postgre"
			c.Postgres.URL = "postgres://localhost/archive"
		}, false},
		{"Unknown driver", func(c *Config) { c.Storage.Driver = "firestore" }, true},
		{"Missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"Zero concurrency", func(c *Config) { c.Archive.WriteConcurrency = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := validate(c)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	t.Run("Default trusts no proxy", func(t *testing.T) {
		viper.Reset()
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(cfg.HTTPServer.TrustedProxies) != 0 {
			t.Errorf("expected no trusted proxies, got %v", cfg.HTTPServer.TrustedProxies)
		}
	})

	t.Run("From environment", func(t *testing.T) {
		viper.Reset()
		t.Setenv("HTTP_SERVER_TRUSTED_PROXIES", "10.0.0.1, 10.0.0.0/8")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		got := cfg.HTTPServer.TrustedProxies
		if len(got) != 2 || got[0] != "10.0.0.1" || got[1] != "10.0.0.0/8" {
			t.Errorf("unexpected trusted proxies: %#v", got)
		}
	})
}
