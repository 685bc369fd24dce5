package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"promoadmin/internal/adapter/backend"
	adapthttp "promoadmin/internal/adapter/http"
	"promoadmin/internal/adapter/memory"
	"promoadmin/internal/adapter/postgres"
	"promoadmin/internal/app"
	"promoadmin/internal/config"
	"promoadmin/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var sessions domain.SessionRepository
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		sessions = postgres.NewSessionRepo(db)
	} else {
		log.Printf("DATABASE_URL not set, sessions are in-memory only")
		sessions = memory.NewSessionRepo()
	}
	go reapSessions(sessions)

	store := backend.New(cfg.BackendURL, cfg.BackendTimeout)
	guard := app.NewInflightGuard()

	authSvc := app.NewAuthService(cfg.AdminPassword, cfg.AdminPasswordHash, sessions, cfg.SessionTTL)
	moderationSvc := app.NewModerationService(store, guard)
	directorySvc := app.NewDirectoryService(store, store, store, store, store, store, guard)

	var oidcCfg *adapthttp.OIDCConfig
	if cfg.SSOEnabled() {
		oidcCfg, err = adapthttp.NewOIDC(context.Background(), cfg.OIDCIssuer, cfg.OIDCClientID, cfg.OIDCClientSecret, cfg.OIDCRedirectURL)
		if err != nil {
			log.Fatalf("oidc: %v", err)
		}
	}

	h := adapthttp.New(authSvc, moderationSvc, directorySvc, oidcCfg, cfg.WebDir, cfg.Production()).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func reapSessions(sessions domain.SessionRepository) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := sessions.DeleteExpired(ctx); err != nil {
			log.Printf("session cleanup: %v", err)
		}
		cancel()
	}
}
