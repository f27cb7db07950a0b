package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewSession_PresentsForm(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodGet, "/sessions/new", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	var form models.LoginForm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
	assert.Equal(t, []string{"email", "password"}, form.Fields)
	assert.Empty(t, form.Error)
}

func TestCreateSession_Success(t *testing.T) {
	router, m := newTestRouter(t)
	creds := models.Credentials{Email: "a@b.c", Password: "secret"}

	gomock.InOrder(
		m.auth.EXPECT().Login(gomock.Any(), creds).Return(testUser, nil),
		m.sessions.EXPECT().Issue(gomock.Any(), testUser).Return(testSession, nil),
	)

	rec := serve(router, http.MethodPost, "/sessions", `{"email":"a@b.c","password":"secret"}`, false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/users/7", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "user_id", cookies[0].Name)
	assert.Equal(t, testSession, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

	var notice models.SessionNotice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notice))
	assert.Equal(t, "Session was successfully created.", notice.Notice)
	assert.Equal(t, testUser.UserID, notice.User.UserID)
}

func TestCreateSession_FormEncoded(t *testing.T) {
	router, m := newTestRouter(t)

	m.auth.EXPECT().Login(gomock.Any(), models.Credentials{Email: "a@b.c", Password: "secret"}).Return(testUser, nil)
	m.sessions.EXPECT().Issue(gomock.Any(), testUser).Return(testSession, nil)

	form := url.Values{"email": {"a@b.c"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestCreateSession_InvalidCredentials(t *testing.T) {
	for _, body := range []string{
		`{"email":"ghost@b.c","password":"secret"}`,
		`{"email":"a@b.c","password":"wrong"}`,
	} {
		router, m := newTestRouter(t)
		m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

		rec := serve(router, http.MethodPost, "/sessions", body, false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Header().Values("Set-Cookie"), "no cookie on failure")

		var form models.LoginForm
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &form))
		assert.Equal(t, "invalid email or password, please try again", form.Error)
		assert.Equal(t, []string{"email", "password"}, form.Fields)
	}
}

func TestCreateSession_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, http.MethodPost, "/sessions", `{"email":`, false)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDestroySession_ExpiresCookie(t *testing.T) {
	for _, path := range []string{"/sessions", "/sessions/7"} {
		for _, withSession := range []bool{true, false} {
			router, m := newTestRouter(t)
			if withSession {
				m.signedIn()
			}

			rec := serve(router, http.MethodDelete, path, "", withSession)

			require.Equal(t, http.StatusNoContent, rec.Code)
			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "user_id", cookies[0].Name)
			assert.Empty(t, cookies[0].Value)
			assert.Less(t, cookies[0].MaxAge, 0)
		}
	}
}
