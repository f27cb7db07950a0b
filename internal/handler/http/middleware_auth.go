package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// loginFormPath is where anonymous writes are redirected.
const loginFormPath = "/sessions/new"

// authenticateFromSession resolves the session cookie to the acting user
// before any handler runs.
//
// A missing, undecryptable, foreign or expired cookie and a user that no
// longer exists all leave the request anonymous: the request proceeds and
// nothing is written to the response. The user is stored with
// [utils.WithActingUser] and read back with [utils.ActingUser].
func (h *Handler) authenticateFromSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.cookie.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), cookie.Value)
		switch {
		case err == nil:
			r = r.WithContext(utils.WithActingUser(r.Context(), user))
		case errors.Is(err, service.ErrSessionInvalid), errors.Is(err, store.ErrNoUserWasFound):
			log.Debug().Err(err).Msg("session cookie ignored")
		default:
			log.Err(err).Msg("session user lookup failed")
		}

		next.ServeHTTP(w, r)
	})
}

// requireUser redirects requests without an acting user to the login form
// with 303 See Other. It never answers with an error status.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.ActingUser(r.Context()); !ok {
			logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("anonymous write redirected to login")
			http.Redirect(w, r, loginFormPath, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
