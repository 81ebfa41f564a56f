package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/handler"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/server"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("token_issuer", cfg.App.TokenIssuer).
		Dur("token_duration", cfg.App.TokenDuration).
		Int("password_hash_cost", cfg.App.PasswordHashCost).
		Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	signer, err := crypto.NewTokenSigner(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token signer")
	}

	services, err := service.NewServices(
		store.NewStorages(db, log),
		crypto.NewPasswordHasher(cfg.App.PasswordHashCost),
		signer,
		cfg,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
