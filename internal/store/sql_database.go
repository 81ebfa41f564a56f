package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/migrations"
)

// DB is a database handle bound to one SQL dialect. Queries are rendered with
// builder so that placeholders match the driver.
type DB struct {
	*sql.DB

	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database named by cfg.DSN and pings it.
//
// The driver is chosen from the DSN: "postgres://" and "postgresql://" use
// pgx, "sqlite://" and "file:" use SQLite.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(cfg.DSN, "sqlite://"), log)
	case strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg.DSN, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect returns the migrations dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}

	db.logger.Info().Str("dialect", db.dialect).Msg("database migrated")
	return nil
}
