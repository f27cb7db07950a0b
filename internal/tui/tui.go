package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

const (
	pageLogin    = "login"
	pageComments = "comments"
)

type TUI struct {
	services *service.ClientServices
	postID   int64
	logger   *logger.Logger
}

func New(services *service.ClientServices, postID int64, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are not provided")
	}
	if postID <= 0 {
		return nil, errors.New("post id must be positive")
	}
	return &TUI{services: services, postID: postID, logger: logger}, nil
}

// Run opens the login page and, once signed in, the comment section of the
// configured post. It blocks until the program exits.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageComments: NewCommentsListModel(ctx, t.services, t.postID, t.logger),
	}
	return NewRootModel(pages, pageLogin)
}
