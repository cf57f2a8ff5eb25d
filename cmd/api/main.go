package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"council-archive/config"
	"council-archive/config/postgre"
	"council-archive/config/redis"
	"council-archive/config/sqlite"
	_ "council-archive/docs" // Swagger docs
	"council-archive/internal/httpserver"
	"council-archive/internal/model"
	"council-archive/pkg/datemath"
	"council-archive/pkg/googleauth"
	"council-archive/pkg/log"
	"council-archive/pkg/scope"
	"council-archive/pkg/youtube"
)

const callbackPath = "/auth/google/callback"

// @title       Council Question Archive API
// @description Archive of council general-question sessions with timestamped links into the session videos.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Council Question Archive...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Archive.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Archive.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	var (
		pgPool   *pgxpool.Pool
		sqliteDB *sql.DB
	)
	switch cfg.Storage.Driver {
	case "postgre":
		pgPool, err = postgre.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer pgPool.Close()
		logger.Info(ctx, "PostgreSQL connected")
	default:
		sqliteDB, err = sqlite.Connect(ctx, cfg.SQLite.Path)
		if err != nil {
			logger.Error(ctx, "Failed to open SQLite database: ", err)
			return
		}
		defer sqliteDB.Close()
		logger.Infof(ctx, "SQLite database opened at %s", cfg.SQLite.Path)
	}

	// 5. Metadata cache (optional)
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warnf(ctx, "Redis not available, using in-memory metadata cache: %v", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)
		}
	}

	// 6. YouTube client
	var ytClient youtube.IYouTube
	yt, err := youtube.NewClient(ctx, cfg.YouTube.APIKey)
	if err != nil {
		logger.Warnf(ctx, "YouTube client not available: %v", err)
	} else {
		ytClient = yt
		if cfg.YouTube.APIKey == "" {
			logger.Warn(ctx, "YOUTUBE_API_KEY not set, video metadata falls back to the watch page")
		}
	}

	// 7. Google sign-in (optional)
	var googleClient googleauth.IGoogleAuth
	if gc := newGoogleClient(ctx, logger, cfg); gc != nil {
		googleClient = gc
	}

	// 8. Session tokens
	jwtManager := scope.New(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.Issuer)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TrustedProxies:  cfg.HTTPServer.TrustedProxies,
		StorageDriver:   cfg.Storage.Driver,
		PostgresDB:      pgPool,
		SQLiteDB:        sqliteDB,
		RedisClient:     redisClient,
		MetadataTTL:     cfg.Redis.TTL,
		YouTube:         ytClient,
		GoogleAuth:      googleClient,
		JWTManager:      jwtManager,
		DateMath:        dateMathParser,
		Cookie:          cfg.Cookie,
		Auth:            cfg.Auth,
		Archive:         cfg.Archive,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
		PostLoginURL:    cfg.GoogleOAuth.PostLoginURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newGoogleClient builds the OAuth client from a credentials file or a client id/secret.
// Returns nil when neither is configured.
func newGoogleClient(ctx context.Context, logger log.Logger, cfg *config.Config) *googleauth.Client {
	oc := cfg.GoogleOAuth

	redirectURL := oc.RedirectURL
	if redirectURL == "" && cfg.Environment.Name == string(model.EnvironmentDevelopment) {
		ngrokURL, err := detectNgrokURL(ctx, oc.NgrokAPIBase)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			redirectURL = ngrokURL + callbackPath
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", redirectURL)
		}
	}
	if redirectURL == "" {
		redirectURL = fmt.Sprintf("http://localhost:%d%s", cfg.HTTPServer.Port, callbackPath)
	}

	switch {
	case oc.CredentialsPath != "":
		client, err := googleauth.NewClientFromCredentialsFile(oc.CredentialsPath, redirectURL)
		if err != nil {
			logger.Warnf(ctx, "Google sign-in not available: %v", err)
			return nil
		}
		logger.Infof(ctx, "Google sign-in initialized, redirect %s", client.RedirectURL())
		return client
	case oc.ClientID != "" && oc.ClientSecret != "":
		client := googleauth.NewClient(oc.ClientID, oc.ClientSecret, redirectURL)
		logger.Infof(ctx, "Google sign-in initialized, redirect %s", redirectURL)
		return client
	default:
		logger.Warn(ctx, "Google sign-in skipped: google_oauth.client_id/client_secret or credentials_path is missing")
		return nil
	}
}
