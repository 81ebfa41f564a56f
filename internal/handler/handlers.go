package handler

import (
	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/handler/http"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
)

// Handlers groups the transport handlers the server exposes.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.RequestTimeout, logger),
	}, nil
}
