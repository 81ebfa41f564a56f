package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds every service. The auth service is wrapped with
// request validation.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, signer crypto.TokenSigner, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(storages.UserRepository, hasher, signer, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
