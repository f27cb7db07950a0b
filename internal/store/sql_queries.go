package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-blog/models"
)

var (
	userColumns    = []string{"user_id", "email", "name", "password_hash", "created_at", "updated_at"}
	blogColumns    = []string{"blog_id", "user_id", "name", "created_at", "updated_at"}
	postColumns    = []string{"post_id", "blog_id", "name", "body", "created_at", "updated_at"}
	commentColumns = []string{"comment_id", "post_id", "body", "created_at", "updated_at"}
)

// touch is the SET expression refreshing updated_at on every UPDATE.
var touch = sq.Expr("CURRENT_TIMESTAMP")

// returning renders a RETURNING clause for columns.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("email", "name", "password_hash").
		Values(user.Email, user.Name, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("user_id ASC").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	query := b.Update(models.User{}.TableName()).Set("updated_at", touch)

	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.PasswordHash != nil {
		query = query.Set("password_hash", *update.PasswordHash)
	}

	return query.
		Where(sq.Eq{"user_id": update.UserID}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, table, idColumn string, id int64) (string, []any, error) {
	return b.Delete(table).
		Where(sq.Eq{idColumn: id}).
		ToSql()
}

// ── blogs ─────────────────────────────────────────────────────────────────────

func buildInsertBlogQuery(b sq.StatementBuilderType, blog models.Blog) (string, []any, error) {
	return b.Insert(blog.TableName()).
		Columns("user_id", "name").
		Values(blog.UserID, blog.Name).
		Suffix(returning(blogColumns)).
		ToSql()
}

func buildSelectBlogsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query := b.Select(blogColumns...).From(models.Blog{}.TableName())
	if len(where) > 0 {
		query = query.Where(where)
	}
	return query.OrderBy("blog_id ASC").ToSql()
}

func buildUpdateBlogQuery(b sq.StatementBuilderType, update models.BlogUpdate) (string, []any, error) {
	query := b.Update(models.Blog{}.TableName()).Set("updated_at", touch)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}

	return query.
		Where(sq.Eq{"blog_id": update.BlogID}).
		Suffix(returning(blogColumns)).
		ToSql()
}

// ── posts ─────────────────────────────────────────────────────────────────────

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(post.TableName()).
		Columns("blog_id", "name", "body").
		Values(post.BlogID, post.Name, post.Body).
		Suffix(returning(postColumns)).
		ToSql()
}

func buildSelectPostsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	query := b.Select(postColumns...).From(models.Post{}.TableName())
	if len(where) > 0 {
		query = query.Where(where)
	}
	return query.OrderBy("created_at ASC", "post_id ASC").ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, update models.PostUpdate) (string, []any, error) {
	query := b.Update(models.Post{}.TableName()).Set("updated_at", touch)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Body != nil {
		query = query.Set("body", *update.Body)
	}

	return query.
		Where(sq.Eq{"post_id": update.PostID}).
		Suffix(returning(postColumns)).
		ToSql()
}

// ── comments ──────────────────────────────────────────────────────────────────

func buildInsertCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return b.Insert(comment.TableName()).
		Columns("post_id", "body").
		Values(comment.PostID, comment.Body).
		Suffix(returning(commentColumns)).
		ToSql()
}

func buildSelectCommentsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(commentColumns...).
		From(models.Comment{}.TableName()).
		Where(where).
		OrderBy("created_at ASC", "comment_id ASC").
		ToSql()
}

func buildUpdateCommentQuery(b sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return b.Update(comment.TableName()).
		Set("body", comment.Body).
		Set("updated_at", touch).
		Where(sq.Eq{"comment_id": comment.CommentID}).
		Suffix(returning(commentColumns)).
		ToSql()
}

// ── scanning ──────────────────────────────────────────────────────────────────

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// timestamp scans TIMESTAMPTZ values from pgx as well as the textual
// DATETIME values SQLite returns for RETURNING columns.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
		return nil
	}

	return fmt.Errorf("%w: unsupported timestamp type %T", ErrScanningRow, src)
}

func (ts timestamp) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return ErrScanningRow
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Email, &u.Name, &u.PasswordHash, timestamp{&u.CreatedAt}, timestamp{&u.UpdatedAt})
	return u, err
}

func scanBlog(row rowScanner) (models.Blog, error) {
	var b models.Blog
	err := row.Scan(&b.BlogID, &b.UserID, &b.Name, timestamp{&b.CreatedAt}, timestamp{&b.UpdatedAt})
	return b, err
}

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.PostID, &p.BlogID, &p.Name, &p.Body, timestamp{&p.CreatedAt}, timestamp{&p.UpdatedAt})
	return p, err
}

func scanComment(row rowScanner) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.CommentID, &c.PostID, &c.Body, timestamp{&c.CreatedAt}, timestamp{&c.UpdatedAt})
	return c, err
}
