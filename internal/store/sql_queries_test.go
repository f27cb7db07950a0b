// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func strPtr(s string) *string { return &s }

// ── users ─────────────────────────────────────────────────────────────────────

func Test_buildInsertUserQuery_ReturnsAllColumns(t *testing.T) {
	query, args, err := buildInsertUserQuery(dollar, models.User{Email: "a@b.c", Name: "A", PasswordHash: "hash"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into users"))
	require.Contains(t, q, "returning user_id, email, name, password_hash, created_at, updated_at")
	require.Contains(t, query, "$3")
	assert.Equal(t, []any{"a@b.c", "A", "hash"}, args)
}

func Test_buildInsertUserQuery_NeverStoresPlaintext(t *testing.T) {
	_, args, err := buildInsertUserQuery(dollar, models.User{Email: "a@b.c", Password: "plain", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotContains(t, args, "plain")
}

func Test_buildSelectUserQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres", builder: dollar, placeholder: "email = $1"},
		{name: "sqlite", builder: question, placeholder: "email = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserQuery(tt.builder, sq.Eq{"email": "a@b.c"})
			require.NoError(t, err)
			require.Contains(t, query, tt.placeholder)
			require.Contains(t, strings.ToLower(query), "from users")
			assert.Equal(t, []any{"a@b.c"}, args)
		})
	}
}

func Test_buildUpdateUserQuery(t *testing.T) {
	tests := []struct {
		name       string
		update     models.UserUpdate
		contains   []string
		absent     []string
		expectArgs []any
	}{
		{
			name:       "only touches updated_at",
			update:     models.UserUpdate{UserID: 7},
			contains:   []string{"updated_at = CURRENT_TIMESTAMP", "WHERE user_id = $1"},
			absent:     []string{"email =", "name =", "password_hash ="},
			expectArgs: []any{int64(7)},
		},
		{
			name:       "email and password hash",
			update:     models.UserUpdate{UserID: 7, Email: strPtr("n@b.c"), Password: strPtr("plain"), PasswordHash: strPtr("hash")},
			contains:   []string{"email = $1", "password_hash = $2", "WHERE user_id = $3"},
			absent:     []string{"name ="},
			expectArgs: []any{"n@b.c", "hash", int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(dollar, tt.update)
			require.NoError(t, err)
			for _, c := range tt.contains {
				require.Contains(t, query, c)
			}
			for _, a := range tt.absent {
				require.NotContains(t, query, a)
			}
			require.Contains(t, query, "RETURNING")
			assert.Equal(t, tt.expectArgs, args)
		})
	}
}

// ── blogs and posts ───────────────────────────────────────────────────────────

func Test_buildSelectBlogsQuery_WithoutFilter(t *testing.T) {
	query, args, err := buildSelectBlogsQuery(dollar, nil)
	require.NoError(t, err)
	require.NotContains(t, query, "WHERE")
	require.Contains(t, query, "ORDER BY blog_id ASC")
	assert.Empty(t, args)
}

func Test_buildSelectPostsQuery_ByBlog(t *testing.T) {
	query, args, err := buildSelectPostsQuery(question, sq.Eq{"blog_id": int64(3)})
	require.NoError(t, err)
	require.Contains(t, query, "WHERE blog_id = ?")
	require.Contains(t, query, "ORDER BY created_at ASC, post_id ASC")
	assert.Equal(t, []any{int64(3)}, args)
}

func Test_buildUpdatePostQuery_BodyOnly(t *testing.T) {
	query, args, err := buildUpdatePostQuery(dollar, models.PostUpdate{PostID: 2, Body: strPtr("new")})
	require.NoError(t, err)
	require.Contains(t, query, "body = $1")
	require.NotContains(t, query, "name =")
	assert.Equal(t, []any{"new", int64(2)}, args)
}

// ── comments ──────────────────────────────────────────────────────────────────

func Test_buildSelectCommentsQuery_CreationOrder(t *testing.T) {
	query, args, err := buildSelectCommentsQuery(dollar, sq.Eq{"post_id": int64(9)})
	require.NoError(t, err)
	require.Contains(t, query, "WHERE post_id = $1")
	require.True(t, strings.HasSuffix(query, "ORDER BY created_at ASC, comment_id ASC"))
	assert.Equal(t, []any{int64(9)}, args)
}

func Test_buildInsertCommentQuery_KeepsEmptyBody(t *testing.T) {
	_, args, err := buildInsertCommentQuery(dollar, models.Comment{PostID: 1, Body: ""})
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), ""}, args)
}

func Test_buildUpdateCommentQuery_ReplacesBodyOnly(t *testing.T) {
	query, args, err := buildUpdateCommentQuery(dollar, models.Comment{CommentID: 5, PostID: 1, Body: "edited"})
	require.NoError(t, err)
	require.Contains(t, query, "body = $1")
	require.NotContains(t, query, "post_id =")
	require.Contains(t, query, "WHERE comment_id = $2")
	assert.Equal(t, []any{"edited", int64(5)}, args)
}

// ── timestamp ─────────────────────────────────────────────────────────────────

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		src     any
		want    time.Time
		wantErr bool
	}{
		{name: "time", src: want, want: want},
		{name: "sqlite text", src: "2026-10-14 12:30:00", want: want},
		{name: "bytes", src: []byte("2026-10-14T12:30:00"), want: want},
		{name: "nil", src: nil, want: time.Time{}},
		{name: "garbage", src: "yesterday", wantErr: true},
		{name: "int", src: int64(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			err := timestamp{&got}.Scan(tt.src)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}
