package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	blogRepository store.BlogRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, blogRepository store.BlogRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		blogRepository: blogRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *postService) Create(ctx context.Context, post models.Post) (models.Post, error) {
	if err := s.validator.Validate(ctx, post); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*postService.Create").Msg("invalid post provided")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.postRepository.CreatePost(ctx, post)
}

func (s *postService) Get(ctx context.Context, postID int64) (models.Post, error) {
	return s.postRepository.FindPostByID(ctx, postID)
}

func (s *postService) List(ctx context.Context) ([]models.Post, error) {
	return s.postRepository.ListPosts(ctx)
}

// ListForBlog returns the posts of blogID, or store.ErrBlogNotFound when the
// blog does not exist.
func (s *postService) ListForBlog(ctx context.Context, blogID int64) ([]models.Post, error) {
	if _, err := s.blogRepository.FindBlogByID(ctx, blogID); err != nil {
		return nil, err
	}
	return s.postRepository.ListPostsByBlog(ctx, blogID)
}

func (s *postService) Update(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*postService.Update").Msg("invalid post update provided")
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.postRepository.UpdatePost(ctx, update)
}

func (s *postService) Delete(ctx context.Context, postID int64) error {
	if err := s.validator.Validate(ctx, models.Post{PostID: postID}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.postRepository.DeletePost(ctx, postID)
}
