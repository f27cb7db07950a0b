package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/tui"
)

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run blocks in the UI. Quitting the UI is a normal exit; the server session
// is closed either way.
func (a *App) Run() error {
	ctx := context.Background()

	runErr := a.ui.Run(ctx)

	if err := a.services.AuthService.Logout(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("closing session on exit")
	}

	if runErr != nil && !errors.Is(runErr, tui.ErrUserQuit) {
		return fmt.Errorf("run ui: %w", runErr)
	}
	return nil
}
