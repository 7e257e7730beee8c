// Package server wires configuration, storage and the analysis engine into
// the HTTP API.
package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AthlasSoftware/leadmagnet/internal/analysis"
	googleauth "github.com/AthlasSoftware/leadmagnet/internal/auth"
	"github.com/AthlasSoftware/leadmagnet/internal/i18n"
	"github.com/AthlasSoftware/leadmagnet/internal/leads"
	"github.com/AthlasSoftware/leadmagnet/internal/page"
	"github.com/AthlasSoftware/leadmagnet/internal/pagespeed"
	sharedauth "github.com/AthlasSoftware/leadmagnet/internal/shared/auth"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/config"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/metrics"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/server/middleware"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/server/respond"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/storage/db"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/telemetry"
)

const analyzeRateGroup = "ANALYZE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Warn("server.db_unavailable", map[string]any{"error": err.Error()})
		} else if err := db.RunMigrations(context.Background(), conn); err != nil {
			telemetry.Warn("server.migrations_failed", map[string]any{"error": err.Error()})
			conn.Close()
		} else {
			sqlDB = conn
		}
	}

	var repo leads.Repo
	if sqlDB != nil {
		repo = &leads.PGRepo{DB: sqlDB}
	} else {
		telemetry.Info("server.memory_repo", nil)
		repo = leads.NewMemoryRepo()
	}

	var audit analysis.AuditProvider
	if cfg.DeepAnalysis {
		audit = pagespeed.NewClient(cfg.PSIAPIKey)
	}
	engine := analysis.NewEngine(
		page.NewFetcher(cfg.FetchTimeout),
		page.NewProbe(),
		audit,
		i18n.NewCatalog(),
	)

	leadsSvc := leads.NewService(repo, engine, cfg.DefaultLocale, cfg.DeepAnalysis)
	leadsHandler := leads.NewHandler(leadsSvc)

	verifier := sharedauth.NewVerifier(cfg.JWTSecret, 0)
	googleAuthSvc := googleauth.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL,
		cfg.UIRedirectURL, cfg.AdminEmails, verifier,
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)

	public := api.Group("")
	public.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			// A full analysis fetches the page and calls PSI; keep it slow.
			analyzeRateGroup: {Rate: 0.2, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return analyzeRateGroup
			}
			return ""
		},
	}))
	leadsHandler.RegisterPublicRoutes(public)

	admin := api.Group("")
	admin.Use(middleware.RequireAdmin(verifier))
	leadsHandler.RegisterAdminRoutes(admin)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
