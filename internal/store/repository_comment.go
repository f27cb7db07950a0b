// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// commentRepository is the database/sql implementation of
// [CommentRepository]. Comments are only ever inserted and updated.
type commentRepository struct {
	db *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{db: db}
}

// CreateComment inserts comment and returns it with its store-assigned
// fields. The body is stored as given, including an empty body.
//
// Error handling:
//   - foreign-key violation on post_id → [ErrParentNotFound];
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCommentQuery(r.db.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error building insert query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Int64("post_id", comment.PostID).Msg("error inserting comment")
		return models.Comment{}, r.db.parentError(err)
	}

	return created, nil
}

// FindCommentByID returns the comment with the given ID or
// [ErrCommentNotFound].
func (r *commentRepository) FindCommentByID(ctx context.Context, commentID int64) (models.Comment, error) {
	comments, err := r.list(ctx, "*commentRepository.FindCommentByID", sq.Eq{"comment_id": commentID})
	if err != nil {
		return models.Comment{}, err
	}
	if len(comments) == 0 {
		return models.Comment{}, ErrCommentNotFound
	}

	return comments[0], nil
}

// ListCommentsByPost returns the comments of postID ordered by created_at,
// ties broken by comment_id.
func (r *commentRepository) ListCommentsByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return r.list(ctx, "*commentRepository.ListCommentsByPost", sq.Eq{"post_id": postID})
}

func (r *commentRepository) list(ctx context.Context, funcName string, where sq.Eq) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning comment")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// UpdateComment replaces the body of an existing comment. PostID of the
// argument is ignored: a comment never moves to another post.
func (r *commentRepository) UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCommentQuery(r.db.builder, comment)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error building update query")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Comment{}, ErrCommentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.UpdateComment").Msg("error updating comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}
