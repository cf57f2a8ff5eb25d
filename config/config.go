package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Storage  StorageConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig

	// External collaborators
	YouTube     YouTubeConfig
	GoogleOAuth GoogleOAuthConfig

	// Sessions
	Auth   AuthConfig
	Cookie CookieConfig

	// Archive behaviour
	Archive   ArchiveConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig.TrustedProxies lists the proxies allowed to set X-Forwarded-For.
// Empty means none: the client IP is always the peer address.
type HTTPServerConfig struct {
	Port           int
	Mode           string
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects the question repository driver: "postgre" or "sqlite".
type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	URL string
}

type SQLiteConfig struct {
	Path string
}

// RedisConfig is optional. Metadata is cached in memory when Addr is empty.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type YouTubeConfig struct {
	APIKey string
}

type GoogleOAuthConfig struct {
	ClientID        string
	ClientSecret    string
	CredentialsPath string
	RedirectURL     string
	PostLoginURL    string
	NgrokAPIBase    string
}

type AuthConfig struct {
	JWTSecret   string
	Issuer      string
	SessionTTL  time.Duration
	AdminEmails []string
}

type CookieConfig struct {
	Name     string
	Domain   string
	Path     string
	Secure   bool
	HTTPOnly bool
	MaxAge   int
}

type ArchiveConfig struct {
	Timezone            string
	InputStyle          string
	BlankLines          string
	SearchCaseSensitive bool
	WriteConcurrency    int
	DefaultPageSize     int
}

type RateLimitConfig struct {
	PerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(viper.GetString("http_server.trusted_proxies"))
	if len(cfg.HTTPServer.TrustedProxies) == 0 {
		cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.TTL = viper.GetDuration("redis.ttl")

	// External collaborators
	cfg.YouTube.APIKey = viper.GetString("youtube.api_key")
	if ytKey := viper.GetString("youtube_api_key"); ytKey != "" {
		cfg.YouTube.APIKey = ytKey
	}
	cfg.GoogleOAuth.ClientID = viper.GetString("google_oauth.client_id")
	cfg.GoogleOAuth.ClientSecret = viper.GetString("google_oauth.client_secret")
	cfg.GoogleOAuth.CredentialsPath = viper.GetString("google_oauth.credentials_path")
	cfg.GoogleOAuth.RedirectURL = viper.GetString("google_oauth.redirect_url")
	cfg.GoogleOAuth.PostLoginURL = viper.GetString("google_oauth.post_login_url")
	cfg.GoogleOAuth.NgrokAPIBase = viper.GetString("google_oauth.ngrok_api_base")

	// Sessions
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.Issuer = viper.GetString("auth.issuer")
	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")
	cfg.Auth.AdminEmails = splitList(viper.GetString("auth.admin_emails"))
	if len(cfg.Auth.AdminEmails) == 0 {
		cfg.Auth.AdminEmails = viper.GetStringSlice("auth.admin_emails")
	}

	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Path = viper.GetString("cookie.path")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.HTTPOnly = viper.GetBool("cookie.http_only")
	cfg.Cookie.MaxAge = int(cfg.Auth.SessionTTL / time.Second)

	// Archive behaviour
	cfg.Archive.Timezone = viper.GetString("archive.timezone")
	cfg.Archive.InputStyle = viper.GetString("archive.input_style")
	cfg.Archive.BlankLines = viper.GetString("archive.blank_lines")
	cfg.Archive.SearchCaseSensitive = viper.GetBool("archive.search_case_sensitive")
	cfg.Archive.WriteConcurrency = viper.GetInt("archive.write_concurrency")
	cfg.Archive.DefaultPageSize = viper.GetInt("archive.default_page_size")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("sqlite.path", "data/archive.db")
	viper.SetDefault("redis.ttl", "24h")
	viper.SetDefault("google_oauth.ngrok_api_base", "http://ngrok:4040")

	viper.SetDefault("auth.issuer", "council-archive")
	viper.SetDefault("auth.session_ttl", "168h")
	viper.SetDefault("cookie.name", "archive_session")
	viper.SetDefault("cookie.path", "/")
	viper.SetDefault("cookie.http_only", true)

	viper.SetDefault("archive.timezone", "Asia/Tokyo")
	viper.SetDefault("archive.input_style", "multiline")
	viper.SetDefault("archive.blank_lines", "drop")
	viper.SetDefault("archive.search_case_sensitive", false)
	viper.SetDefault("archive.write_concurrency", 4)
	viper.SetDefault("archive.default_page_size", 100)
	viper.SetDefault("rate_limit.per_min", 120)
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "postgre":
		if cfg.Postgres.URL == "" {
			return fmt.Errorf("postgres.url is required when storage.driver is postgre")
		}
	case "sqlite":
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required when storage.driver is sqlite")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}

	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Archive.WriteConcurrency <= 0 {
		return fmt.Errorf("archive.write_concurrency must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
