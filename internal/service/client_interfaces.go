package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// ClientAuthService defines the client-side contract for opening and closing
// a session on the blog server.
type ClientAuthService interface {
	// Login signs in with creds. The session is kept by the adapter and
	// attached to every later request.
	// Returns ErrInvalidCredentials if the server rejects the credentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout ends the server session.
	Logout(ctx context.Context) error
}

// ClientCommentService defines the client-side contract used by the comment
// editor.
type ClientCommentService interface {
	// Post fetches the post whose comments are being edited.
	Post(ctx context.Context, postID int64) (models.Post, error)

	// List fetches the comments of postID in creation order.
	List(ctx context.Context, postID int64) ([]models.Comment, error)

	// Save creates comment when it has no ID and updates it otherwise.
	// Returns ErrNotAuthenticated when the server asks to sign in first.
	Save(ctx context.Context, comment models.Comment) (models.Comment, error)
}
