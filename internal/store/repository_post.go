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

type postRepository struct {
	db *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{db: db}
}

// CreatePost inserts post into its blog. An unknown blog yields
// [ErrParentNotFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building insert query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, r.db.parentError(err)
	}

	return created, nil
}

func (r *postRepository) FindPostByID(ctx context.Context, postID int64) (models.Post, error) {
	posts, err := r.list(ctx, "*postRepository.FindPostByID", sq.Eq{"post_id": postID})
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}

	return posts[0], nil
}

func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	return r.list(ctx, "*postRepository.ListPosts", nil)
}

func (r *postRepository) ListPostsByBlog(ctx context.Context, blogID int64) ([]models.Post, error) {
	return r.list(ctx, "*postRepository.ListPostsByBlog", sq.Eq{"blog_id": blogID})
}

func (r *postRepository) list(ctx context.Context, funcName string, where sq.Eq) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building update query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return post, nil
}

func (r *postRepository) DeletePost(ctx context.Context, postID int64) error {
	return r.db.deleteByID(ctx, "*postRepository.DeletePost", models.Post{}.TableName(), "post_id", postID, ErrPostNotFound)
}
