package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/handler"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// ctx is canceled on a stop signal; replaceable in tests.
	notifyContext func() (context.Context, context.CancelFunc)
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:    newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:        logger,
		notifyContext: signalContext,
	}, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
}

// RunServer serves until a stop signal arrives, then shuts down gracefully.
// A listen failure ends it early with that error.
func (s *server) RunServer() error {
	ctx, stop := s.notifyContext()
	defer stop()

	s.logger.Info().Msg("Launching HTTP server")
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("error running HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	<-serveErr

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
