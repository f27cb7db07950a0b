package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// BlogRepository persists blogs in the "blogs" table.
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	FindBlogByID(ctx context.Context, blogID int64) (models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, update models.BlogUpdate) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID int64) error
}

// PostRepository persists posts in the "posts" table.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	FindPostByID(ctx context.Context, postID int64) (models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	ListPostsByBlog(ctx context.Context, blogID int64) ([]models.Post, error)
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID int64) error
}

// CommentRepository persists comments in the "comments" table.
// There is no delete: comments live as long as their post.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error)
	// ListCommentsByPost returns the comments of postID in creation order.
	ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error)
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}
