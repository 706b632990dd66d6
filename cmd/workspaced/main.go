package main

import (
	"os"

	"github.com/joho/godotenv"

	credfile "github.com/archeteam/workspaced/internal/adapters/driven/credstore/file"
	credsqlite "github.com/archeteam/workspaced/internal/adapters/driven/credstore/sqlite"
	"github.com/archeteam/workspaced/internal/adapters/driven/oauth"
	"github.com/archeteam/workspaced/internal/adapters/driving/cli"
	"github.com/archeteam/workspaced/internal/config"
	"github.com/archeteam/workspaced/internal/connectors"
	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
	"github.com/archeteam/workspaced/internal/core/services"
	"github.com/archeteam/workspaced/internal/logger"
)

func main() {
	// .env is optional; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("WORKSPACED_CONFIG"))
	if err != nil {
		logger.Error("load configuration: %v", err)
		os.Exit(1)
	}

	store, closeStore, err := newCredentialStore(cfg)
	if err != nil {
		logger.Error("open credential store: %v", err)
		os.Exit(1)
	}
	defer closeStore()

	flow := oauth.NewGoogleFlow(cfg.OAuth.ClientID, cfg.OAuth.ClientSecret)
	auth := services.NewAuthenticator(store, flow, domain.AllScopes())

	resolver := services.NewResolver(cfg.Server.ResolveBudget)
	remote := connectors.NewGoogleRemote()

	cli.SetServices(&cli.Services{
		Auth:       auth,
		Mail:       services.NewMailService(auth, remote),
		Calendar:   services.NewCalendarService(auth, resolver, remote),
		Storage:    services.NewStorageService(auth, resolver, remote),
		ListenAddr: cfg.Server.ListenAddr,
	})

	if err := cli.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func newCredentialStore(cfg *config.Config) (driven.CredentialStore, func(), error) {
	switch cfg.Store.Backend {
	case "sqlite":
		s, err := credsqlite.NewStore(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	default:
		s, err := credfile.NewStore(cfg.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}
