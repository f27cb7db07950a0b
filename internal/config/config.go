// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, password hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the server as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds settings of the terminal comment editor.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of the session cookie and credential checks.
type App struct {
	// CookieSecret is the secret the cookie encryption key is derived from.
	// It also signs the claims envelope sealed inside the cookie.
	// Env: APP_COOKIE_SECRET
	CookieSecret string `env:"COOKIE_SECRET"`

	// CookieName is the name of the encrypted session cookie.
	// Env: APP_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// CookieSecure marks the session cookie as HTTPS-only.
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// SessionIssuer is the "iss" claim of every session envelope.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration bounds how long an issued session stays valid.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// BcryptCost is the cost used when hashing new passwords.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database:
	//   - "postgres://..." or "postgresql://..." opens PostgreSQL through pgx;
	//   - "sqlite://path", "file:path" or a path ending in ".db" opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the listen address of the HTTP API in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the listen address of the gRPC health service.
	// The gRPC server is not started when it is empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single HTTP request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists origins allowed to call the API from a browser.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the base address of the blog HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings of the terminal comment editor.
type Client struct {
	// PostID is the post whose comments are listed and extended.
	// Env: CLIENT_POST_ID
	PostID int64 `env:"POST_ID"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources (see the package documentation for priority).
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
