package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientAuthService) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	app, err := NewApp(&service.ClientServices{AuthService: auth}, ui, logger.Nop())
	require.NoError(t, err)
	return app, auth
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_UserQuitIsNormalExit(t *testing.T) {
	ui := &fakeUI{err: tui.ErrUserQuit}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().Logout(gomock.Any()).Return(nil)

	assert.NoError(t, app.Run())
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_UIErrorIsReturned(t *testing.T) {
	boom := errors.New("tty lost")
	app, auth := newTestApp(t, &fakeUI{err: boom})
	auth.EXPECT().Logout(gomock.Any()).Return(nil)

	assert.ErrorIs(t, app.Run(), boom)
}

func TestApp_Run_LogoutFailureIsLogged(t *testing.T) {
	app, auth := newTestApp(t, &fakeUI{})
	auth.EXPECT().Logout(gomock.Any()).Return(service.ErrServerUnavailable)

	assert.NoError(t, app.Run())
}
