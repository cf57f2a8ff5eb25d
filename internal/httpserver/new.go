package httpserver

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"council-archive/config"
	"council-archive/pkg/datemath"
	"council-archive/pkg/googleauth"
	"council-archive/pkg/log"
	"council-archive/pkg/scope"
	"council-archive/pkg/youtube"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	trustedProxies []string

	// Storage
	storageDriver string
	postgresDB    *pgxpool.Pool
	sqliteDB      *sql.DB
	redisClient   *redis.Client
	metadataTTL   time.Duration

	// Clients
	youtube    youtube.IYouTube
	googleAuth googleauth.IGoogleAuth
	jwtManager scope.Manager
	dateMath   *datemath.Parser

	// Settings
	cookie       config.CookieConfig
	auth         config.AuthConfig
	archive      config.ArchiveConfig
	rateLimit    int
	corsOrigins  []string
	postLoginURL string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	TrustedProxies []string // nil trusts no proxy

	// Storage: exactly one of PostgresDB / SQLiteDB, matching StorageDriver.
	StorageDriver string
	PostgresDB    *pgxpool.Pool
	SQLiteDB      *sql.DB
	RedisClient   *redis.Client // optional
	MetadataTTL   time.Duration

	// Clients
	YouTube    youtube.IYouTube
	GoogleAuth googleauth.IGoogleAuth
	JWTManager scope.Manager
	DateMath   *datemath.Parser

	// Settings
	Cookie          config.CookieConfig
	Auth            config.AuthConfig
	Archive         config.ArchiveConfig
	RateLimitPerMin int
	CORSOrigins     []string
	PostLoginURL    string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		trustedProxies: cfg.TrustedProxies,
		storageDriver:  cfg.StorageDriver,
		postgresDB:     cfg.PostgresDB,
		sqliteDB:       cfg.SQLiteDB,
		redisClient:    cfg.RedisClient,
		metadataTTL:    cfg.MetadataTTL,
		youtube:        cfg.YouTube,
		googleAuth:     cfg.GoogleAuth,
		jwtManager:     cfg.JWTManager,
		dateMath:       cfg.DateMath,
		cookie:         cfg.Cookie,
		auth:           cfg.Auth,
		archive:        cfg.Archive,
		rateLimit:      cfg.RateLimitPerMin,
		corsOrigins:    cfg.CORSOrigins,
		postLoginURL:   cfg.PostLoginURL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("http_server.trusted_proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	switch srv.storageDriver {
	case "postgre":
		if srv.postgresDB == nil {
			return errors.New("postgres pool is required")
		}
	case "sqlite":
		if srv.sqliteDB == nil {
			return errors.New("sqlite db is required")
		}
	default:
		return errors.New("unknown storage driver")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
