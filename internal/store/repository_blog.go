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

type blogRepository struct {
	db *DB
}

func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{db: db}
}

// CreateBlog inserts blog for its owner. An unknown owner yields
// [ErrParentNotFound].
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBlogQuery(r.db.builder, blog)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error building insert query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error inserting blog")
		return models.Blog{}, r.db.parentError(err)
	}

	return created, nil
}

func (r *blogRepository) FindBlogByID(ctx context.Context, blogID int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blogs, err := r.list(ctx, "*blogRepository.FindBlogByID", sq.Eq{"blog_id": blogID})
	if err != nil {
		return models.Blog{}, err
	}
	if len(blogs) == 0 {
		log.Debug().Str("func", "*blogRepository.FindBlogByID").Int64("blog_id", blogID).Msg("blog was not found")
		return models.Blog{}, ErrBlogNotFound
	}

	return blogs[0], nil
}

func (r *blogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return r.list(ctx, "*blogRepository.ListBlogs", nil)
}

func (r *blogRepository) list(ctx context.Context, funcName string, where sq.Eq) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBlogsQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0)
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning blog")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, nil
}

func (r *blogRepository) UpdateBlog(ctx context.Context, update models.BlogUpdate) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBlogQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("error building update query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	blog, err := scanBlog(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("error updating blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return blog, nil
}

func (r *blogRepository) DeleteBlog(ctx context.Context, blogID int64) error {
	return r.db.deleteByID(ctx, "*blogRepository.DeleteBlog", models.Blog{}.TableName(), "blog_id", blogID, ErrBlogNotFound)
}
