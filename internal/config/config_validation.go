// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// minCookieSecretLen is the shortest accepted cookie secret.
const minCookieSecretLen = 16

// validate checks that the final merged [StructuredConfig] can start the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if len(cfg.App.CookieSecret) < minCookieSecretLen {
		return fmt.Errorf("%w: cookie secret must be at least %d bytes", ErrInvalidAppConfigs, minCookieSecretLen)
	}

	if cfg.App.CookieName == "" || cfg.App.SessionDuration <= 0 {
		return fmt.Errorf("%w: cookie name and session duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Client.PostID <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
