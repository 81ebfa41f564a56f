package store

import "github.com/MKhiriev/go-auth-service/internal/logger"

// Storages aggregates every repository the services depend on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds all repositories over db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
