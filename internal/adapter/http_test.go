// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "user_id"

// newTestAdapter returns an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// guarded mimics the server guard: without the session cookie it redirects
// to the login form.
func guarded(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(testCookie); err != nil {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func newBlogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			writeJSON(w, http.StatusUnauthorized, models.LoginForm{Error: "invalid email or password, please try again"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: testCookie, Value: "sealed", Path: "/"})
		http.Redirect(w, r, "/users/7", http.StatusSeeOther)
	})
	mux.HandleFunc("DELETE /sessions", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: testCookie, Path: "/", MaxAge: -1})
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /users/7", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.User{UserID: 7, Email: "a@b.c"})
	})
	mux.HandleFunc("GET /sessions/new", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.LoginForm{Fields: []string{"email", "password"}})
	})
	mux.HandleFunc("GET /posts/1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.Post{PostID: 1, BlogID: 1, Name: "first"})
	})
	mux.HandleFunc("GET /posts/1/comments", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Comment{{CommentID: 1, PostID: 1, Body: "a"}, {CommentID: 2, PostID: 1, Body: "b"}})
	})
	mux.HandleFunc("POST /comments", guarded(func(w http.ResponseWriter, r *http.Request) {
		var c models.Comment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		c.CommentID = 3
		writeJSON(w, http.StatusCreated, c)
	}))
	mux.HandleFunc("PATCH /comments/{id}", guarded(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "3" {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "comment not found"})
			return
		}
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, models.Comment{CommentID: 3, PostID: 1, Body: body["body"]})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	for _, addr := range []string{"", "   ", "http://"} {
		_, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: addr}, logger.Nop())
		assert.Error(t, err, addr)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://blog.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.com", got)
}

// ── Login / Logout ───────────────────────────────────────────────────────────

func TestLogin_FollowsRedirectToUser(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)

	user, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "a@b.c", user.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "nope"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLogout_NoContent(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)

	assert.NoError(t, a.Logout(context.Background()))
}

// ── Posts / Comments ─────────────────────────────────────────────────────────

func TestGetPost_Success(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)

	post, err := a.GetPost(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "first", post.Name)
}

func TestGetPost_NotFound(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)

	_, err := a.GetPost(context.Background(), 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListComments_Success(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)

	comments, err := a.ListComments(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "a", comments[0].Body)
	assert.Equal(t, "b", comments[1].Body)
}

func TestCreateComment_WithoutSession_Unauthorized(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)

	_, err := a.CreateComment(context.Background(), models.Comment{PostID: 1, Body: "hi"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateComment_WithSession(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)

	created, err := a.CreateComment(context.Background(), models.Comment{PostID: 1, Body: "hi"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.CommentID)
	assert.Equal(t, "hi", created.Body)
}

func TestUpdateComment_WithSession(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)

	updated, err := a.UpdateComment(context.Background(), models.Comment{CommentID: 3, PostID: 1, Body: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Body)

	_, err = a.UpdateComment(context.Background(), models.Comment{CommentID: 4, PostID: 1, Body: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateComment_AfterLogout_Unauthorized(t *testing.T) {
	srv := newBlogServer(t)
	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	require.NoError(t, a.Logout(context.Background()))

	_, err = a.UpdateComment(context.Background(), models.Comment{CommentID: 3, Body: "x"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}
