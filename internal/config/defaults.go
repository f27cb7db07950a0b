package config

import "time"

const (
	defaultCookieName      = "user_id"
	defaultSessionIssuer   = "go-blog"
	defaultSessionDuration = 14 * 24 * time.Hour
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultAdapterTimeout  = 10 * time.Second
	defaultAdapterAddress  = "http://localhost:8080"
	defaultAppVersion      = "dev"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CookieName:      defaultCookieName,
			SessionIssuer:   defaultSessionIssuer,
			SessionDuration: defaultSessionDuration,
			Version:         defaultAppVersion,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}
