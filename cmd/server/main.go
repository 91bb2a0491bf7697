package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codecompass/codecompass/internal/api"
	"github.com/codecompass/codecompass/internal/auth"
	"github.com/codecompass/codecompass/internal/config"
	"github.com/codecompass/codecompass/internal/db"
	"github.com/codecompass/codecompass/internal/flash"
	"github.com/codecompass/codecompass/internal/logger"
	"github.com/codecompass/codecompass/internal/repository/sqlite"
	"github.com/codecompass/codecompass/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Default().Error("failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Code Compass Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("base_url=%s", cfg.BaseURL)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("session_ttl=%s", cfg.SessionTTL)
	log.Debug("flash_ttl=%s", cfg.FlashTTL)
	log.Debug("github_enabled=%v", cfg.GitHubEnabled())

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load templates
	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	// Initialize repositories
	profileRepo := sqlite.NewProfileRepository(database.DB)
	teamRepo := sqlite.NewTeamRepository(database.DB)
	userRepo := sqlite.NewUserRepository(database.DB)

	// Initialize auth
	tokens, err := auth.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		log.Error("failed to initialize sessions: %v", err)
		os.Exit(1)
	}
	var github *auth.GitHubProvider
	if cfg.GitHubEnabled() {
		github = auth.NewGitHubProvider(cfg.GitHubClientID, cfg.GitHubClientSecret, cfg.BaseURL+"/auth/github/callback")
		log.Info("GitHub sign-in enabled")
	}

	srv := &api.Server{
		DirectoryService: services.NewDirectoryService(profileRepo),
		ProfileService:   services.NewProfileService(profileRepo),
		TeamService:      services.NewTeamService(teamRepo),
		AuthService:      services.NewAuthService(userRepo),
		Users:            userRepo,
		Tokens:           tokens,
		GitHub:           github,
		Flash:            flash.NewManager(cfg.FlashTTL),
		Templates:        tmpl,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Code Compass Server Stopped")
	log.Info("===========================================")
}
