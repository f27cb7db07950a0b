package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type blogService struct {
	blogRepository store.BlogRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, validator validators.Validator, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		validator:      validator,
		logger:         logger,
	}
}

// Create stores blog. The owner must already be set by the caller.
func (s *blogService) Create(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if err := s.validator.Validate(ctx, blog); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*blogService.Create").Msg("invalid blog provided")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.blogRepository.CreateBlog(ctx, blog)
}

func (s *blogService) Get(ctx context.Context, blogID int64) (models.Blog, error) {
	return s.blogRepository.FindBlogByID(ctx, blogID)
}

func (s *blogService) List(ctx context.Context) ([]models.Blog, error) {
	return s.blogRepository.ListBlogs(ctx)
}

func (s *blogService) Update(ctx context.Context, update models.BlogUpdate) (models.Blog, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*blogService.Update").Msg("invalid blog update provided")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.blogRepository.UpdateBlog(ctx, update)
}

func (s *blogService) Delete(ctx context.Context, blogID int64) error {
	if err := s.validator.Validate(ctx, models.Blog{BlogID: blogID}, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.blogRepository.DeleteBlog(ctx, blogID)
}
