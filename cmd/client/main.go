package main

import (
	"context"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-auth-service/internal/adapter"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// clientConfig is read from the environment only.
type clientConfig struct {
	ServerAddress  string        `env:"AUTH_SERVER_ADDRESS" envDefault:"localhost:8080"`
	RequestTimeout time.Duration `env:"AUTH_REQUEST_TIMEOUT" envDefault:"10s"`
}

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stderr)

	log := logger.NewLogger("auth-client")

	var cfg clientConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPAuthClient(cfg.ServerAddress, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer cancel()

	if err = run(ctx, client, os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("command failed")
		cancel()
		os.Exit(1)
	}
}
