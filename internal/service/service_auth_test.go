package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher, *mock.MockSessionService) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	sessions := mock.NewMockSessionService(ctrl)

	return NewAuthService(users, hasher, sessions, logger.Nop()), users, hasher, sessions
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{UserID: 7, Email: "a@b.c", PasswordHash: "$2a$hash"}
	users.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(stored, nil)
	hasher.EXPECT().Compare("$2a$hash", "secret").Return(true)

	got, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Empty(t, got.PasswordHash, "hash must not leave the service")
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "ghost@b.c").Return(models.User{}, store.ErrNoUserWasFound)
	_, errUnknown := svc.Login(ctx, models.Credentials{Email: "ghost@b.c", Password: "secret"})

	users.EXPECT().FindUserByEmail(ctx, "a@b.c").Return(models.User{UserID: 7, PasswordHash: "h"}, nil)
	hasher.EXPECT().Compare("h", "wrong").Return(false)
	_, errWrong := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	for _, creds := range []models.Credentials{{}, {Email: "a@b.c"}, {Password: "x"}} {
		_, err := svc.Login(context.Background(), creds)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, _ := newTestAuthSvc(t, ctrl)
	boom := errors.New("connection reset")

	users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.c").Return(models.User{}, boom)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().Resolve(ctx, "sealed").Return(int64(7), nil)
	users.EXPECT().FindUserByID(ctx, int64(7)).Return(models.User{UserID: 7, PasswordHash: "h"}, nil)

	got, err := svc.Authenticate(ctx, "sealed")

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Empty(t, got.PasswordHash)
}

func TestAuthService_Authenticate_InvalidSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, sessions := newTestAuthSvc(t, ctrl)

	sessions.EXPECT().Resolve(gomock.Any(), "garbage").Return(int64(0), ErrSessionInvalid)

	_, err := svc.Authenticate(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestAuthService_Authenticate_UserGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, sessions := newTestAuthSvc(t, ctrl)

	sessions.EXPECT().Resolve(gomock.Any(), "sealed").Return(int64(9), nil)
	users.EXPECT().FindUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Authenticate(context.Background(), "sealed")

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}
