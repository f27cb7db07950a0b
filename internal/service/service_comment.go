// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// commentService persists comments. The body is stored as given, including
// the empty string.
type commentService struct {
	commentRepository store.CommentRepository
	postRepository    store.PostRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		postRepository:    postRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Save creates comment when it is new and replaces the body of the stored
// comment otherwise. A new comment pointing at an unknown post fails with
// store.ErrParentNotFound.
func (s *commentService) Save(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if comment.IsNew() {
		if err := s.validator.Validate(ctx, comment, validators.FieldPostID); err != nil {
			log.Debug().Err(err).Str("func", "*commentService.Save").Msg("invalid comment provided")
			return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

		created, err := s.commentRepository.CreateComment(ctx, comment)
		if err != nil {
			return models.Comment{}, err
		}
		log.Info().Int64("comment_id", created.CommentID).Int64("post_id", created.PostID).Msg("comment created")
		return created, nil
	}

	updated, err := s.commentRepository.UpdateComment(ctx, comment)
	if err != nil {
		return models.Comment{}, err
	}
	log.Info().Int64("comment_id", updated.CommentID).Msg("comment updated")
	return updated, nil
}

func (s *commentService) Get(ctx context.Context, commentID int64) (models.Comment, error) {
	return s.commentRepository.FindCommentByID(ctx, commentID)
}

// ListForPost returns the comments of postID in creation order, or
// store.ErrPostNotFound when the post does not exist.
func (s *commentService) ListForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	if _, err := s.postRepository.FindPostByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepository.ListCommentsByPost(ctx, postID)
}
