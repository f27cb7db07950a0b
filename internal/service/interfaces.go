package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService verifies credentials and resolves sessions to users.
type AuthService interface {
	// Login returns the user owning creds. Unknown email and wrong password
	// both yield ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Authenticate returns the user referenced by a session cookie value.
	Authenticate(ctx context.Context, sessionValue string) (models.User, error)
}

// SessionService seals user IDs into session cookie values and opens them.
type SessionService interface {
	Issue(ctx context.Context, user models.User) (string, error)
	Resolve(ctx context.Context, sessionValue string) (int64, error)
}

type UserService interface {
	SignUp(ctx context.Context, user models.User) (models.User, error)
	Get(ctx context.Context, userID int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, update models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, userID int64) error
}

type BlogService interface {
	Create(ctx context.Context, blog models.Blog) (models.Blog, error)
	Get(ctx context.Context, blogID int64) (models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Update(ctx context.Context, update models.BlogUpdate) (models.Blog, error)
	Delete(ctx context.Context, blogID int64) error
}

type PostService interface {
	Create(ctx context.Context, post models.Post) (models.Post, error)
	Get(ctx context.Context, postID int64) (models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListForBlog(ctx context.Context, blogID int64) ([]models.Post, error)
	Update(ctx context.Context, update models.PostUpdate) (models.Post, error)
	Delete(ctx context.Context, postID int64) error
}

// CommentService creates and edits comments. There is no delete.
type CommentService interface {
	// Save creates comment when it has no ID and replaces its body otherwise.
	Save(ctx context.Context, comment models.Comment) (models.Comment, error)
	Get(ctx context.Context, commentID int64) (models.Comment, error)
	// ListForPost returns the comments of postID in creation order.
	ListForPost(ctx context.Context, postID int64) ([]models.Comment, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
