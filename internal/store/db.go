// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// the squirrel statement builder (placeholder format) and the classifier
// that turns driver errors into constraint kinds.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// dsnTarget is the result of parsing a DSN: which driver to open and with
// which data source name.
type dsnTarget struct {
	driver  string
	source  string
	dialect string
}

// NewConnectDB opens and pings the database selected by cfg.DSN:
//   - "postgres://..." and "postgresql://..." open PostgreSQL through pgx;
//   - "sqlite://path", "file:path" and "path.db" open SQLite with foreign
//     keys enforced.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	target, err := parseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error parsing database DSN")
		return nil, err
	}

	conn, err := sql.Open(target.driver, target.source)
	if err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	switch target.dialect {
	case migrations.DialectSQLite:
		// SQLite allows one writer at a time
		conn.SetMaxOpenConns(1)
	default:
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectDB").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectDB").Str("dialect", target.dialect).Msg("connected to database successfully")

	return newDB(conn, target.dialect, log), nil
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
	return migrations.Migrate(db.DB, db.dialect)
}

func parseDSN(dsn string) (dsnTarget, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return dsnTarget{driver: "pgx", source: dsn, dialect: migrations.DialectPostgres}, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqliteTarget("file:" + strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"):
		return sqliteTarget(dsn), nil
	case strings.HasSuffix(dsn, ".db"):
		return sqliteTarget("file:" + dsn), nil
	}

	return dsnTarget{}, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

func sqliteTarget(source string) dsnTarget {
	if !strings.Contains(source, "_foreign_keys=") {
		sep := "?"
		if strings.Contains(source, "?") {
			sep = "&"
		}
		source += sep + "_foreign_keys=on"
	}

	return dsnTarget{driver: "sqlite3", source: source, dialect: migrations.DialectSQLite}
}
