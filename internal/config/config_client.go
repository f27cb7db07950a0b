package config

import (
	"fmt"
)

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and the request timeout.
	Adapter Adapter
	// Client contains editor settings.
	Client Client
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Server-only settings are not validated.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Client:  cfg.Client,
	}

	return clientCfg, clientCfg.validate()
}
