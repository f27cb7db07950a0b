// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticateFromSession(t *testing.T) {
	tests := []struct {
		name       string
		cookie     string
		authErr    error
		expectCall bool
		wantUser   bool
	}{
		{name: "no cookie", expectCall: false, wantUser: false},
		{name: "valid cookie", cookie: testSession, expectCall: true, wantUser: true},
		{name: "tampered cookie", cookie: "tampered", authErr: service.ErrSessionInvalid, expectCall: true},
		{name: "user deleted", cookie: testSession, authErr: fmt.Errorf("lookup: %w", store.ErrNoUserWasFound), expectCall: true},
		{name: "store outage", cookie: testSession, authErr: errors.New("connection refused"), expectCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMocks(t)
			if tt.expectCall {
				user := models.User{}
				if tt.authErr == nil {
					user = testUser
				}
				m.auth.EXPECT().Authenticate(gomock.Any(), tt.cookie).Return(user, tt.authErr)
			}

			h := &Handler{services: m.services(), logger: logger.Nop()}
			h.cookie.CookieName = "user_id"

			var (
				got    models.User
				gotOK  bool
				called bool
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, gotOK = utils.ActingUser(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/posts", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "user_id", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			h.authenticateFromSession(next).ServeHTTP(rec, req)

			require.True(t, called, "request must always proceed")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantUser, gotOK)
			if tt.wantUser {
				assert.Equal(t, testUser.UserID, got.UserID)
			}
		})
	}
}

func TestRequireUser_RedirectsAnonymousWrites(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/comments"},
		{http.MethodPatch, "/comments/1"},
		{http.MethodPost, "/blogs"},
		{http.MethodDelete, "/posts/1"},
		{http.MethodPut, "/users/1"},
	} {
		rec := serve(router, tc.method, tc.path, `{"body":"x"}`, false)

		assert.Equal(t, http.StatusSeeOther, rec.Code, tc.method+" "+tc.path)
		assert.Equal(t, loginFormPath, rec.Header().Get("Location"))
	}
}

func TestRequireUser_TamperedCookieIsRedirectedNotRejected(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Authenticate(gomock.Any(), testSession).Return(models.User{}, service.ErrSessionInvalid)

	rec := serve(router, http.MethodPost, "/comments", `{"post_id":1,"body":"x"}`, true)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, loginFormPath, rec.Header().Get("Location"))
}

func TestRequireUser_SignedInPassesThrough(t *testing.T) {
	router, m := newTestRouter(t)
	m.signedIn()
	m.comments.EXPECT().Save(gomock.Any(), models.Comment{PostID: 1, Body: "x"}).Return(models.Comment{CommentID: 3, PostID: 1, Body: "x"}, nil)

	rec := serve(router, http.MethodPost, "/comments", `{"post_id":1,"body":"x"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/comments/3", rec.Header().Get("Location"))
}
