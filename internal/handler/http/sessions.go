// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func loginForm(message string) models.LoginForm {
	return models.LoginForm{
		Action: "/sessions",
		Method: http.MethodPost,
		Fields: []string{"email", "password"},
		Error:  message,
	}
}

// newSession presents the login form.
func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, loginForm(""), http.StatusOK)
}

// createSession signs a user in. On success the encrypted session cookie is
// set and the caller is redirected to the user's page. On failure the login
// form is presented again with 401 and no cookie is written.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := readCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if errors.Is(err, service.ErrInvalidCredentials) {
		log.Info().Msg("login attempt failed")
		utils.WriteJSON(w, loginForm(app.MsgLoginFailed), http.StatusUnauthorized)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	value, err := h.services.SessionService.Issue(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(value, 0))
	w.Header().Set("Location", fmt.Sprintf("/users/%d", user.UserID))

	log.Info().Int64("user_id", user.UserID).Msg("session created")
	utils.WriteJSON(w, models.SessionNotice{Notice: app.MsgSessionCreated, User: user}, http.StatusSeeOther)
}

// destroySession expires the session cookie. It answers the same with or
// without a session.
func (h *Handler) destroySession(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// readCredentials accepts a JSON body or an HTML form post.
func readCredentials(r *http.Request) (models.Credentials, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return models.Credentials{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}, nil
	}

	var creds models.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		return models.Credentials{}, err
	}
	return creds, nil
}
