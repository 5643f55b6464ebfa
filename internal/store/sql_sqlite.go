package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
)

// NewConnectSQLite opens the SQLite fallback database described by cfg.DSN,
// checks it with a ping and applies the embedded migrations.
//
// The pool is limited to one connection: an in-memory database lives exactly
// as long as a connection to it, and SQLite serializes writers anyway.
func NewConnectSQLite(ctx context.Context, cfg config.Fallback, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error applying migrations")
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}
