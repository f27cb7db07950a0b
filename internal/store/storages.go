package store

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages groups the repositories of one database connection.
type Storages struct {
	UserRepository    UserRepository
	BlogRepository    BlogRepository
	PostRepository    PostRepository
	CommentRepository CommentRepository

	db *DB
}

// NewStorages connects to the database selected by cfg, applies pending
// migrations and builds every repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		BlogRepository:    NewBlogRepository(db, log),
		PostRepository:    NewPostRepository(db, log),
		CommentRepository: NewCommentRepository(db, log),
		db:                db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
