package http

import (
	"time"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds a single request; zero disables the bound.
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: requestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
