package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.adapter.Login(ctx, creds)
	if errors.Is(err, adapter.ErrUnauthorized) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	return mapAdapterError(a.adapter.Logout(ctx))
}
