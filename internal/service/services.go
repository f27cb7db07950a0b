package service

import (
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	UserService    UserService
	BlogService    BlogService
	PostService    PostService
	CommentService CommentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, codec crypto.SessionCodec, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRecordValidator()
	sessions := NewSessionService(codec, cfg)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, sessions, logger),
		SessionService: sessions,
		UserService:    NewUserService(storages.UserRepository, hasher, validator, logger),
		BlogService:    NewBlogService(storages.BlogRepository, validator, logger),
		PostService:    NewPostService(storages.PostRepository, storages.BlogRepository, validator, logger),
		CommentService: NewCommentService(storages.CommentRepository, storages.PostRepository, validator, logger),
		AppInfoService: appInfo,
	}, nil
}
