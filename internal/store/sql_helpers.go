package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// deleteByID deletes the row of table whose idColumn equals id. It returns
// notFound when no row was affected.
func (db *DB) deleteByID(ctx context.Context, funcName, table, idColumn string, id int64, notFound error) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(db.builder, table, idColumn, id)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}

	return nil
}

// parentError maps a failed INSERT or UPDATE of a child row: a foreign-key
// violation becomes [ErrParentNotFound].
func (db *DB) parentError(err error) error {
	if db.errorClassificator.Classify(err) == ForeignKeyViolation {
		return ErrParentNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
