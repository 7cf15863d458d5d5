package server

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"sportreg/internal/domain"
)

const (
	sessionCookie    = "session"
	loginPath        = "/login"
	msgLoginRequired = "Please log in to access this page."
)

type routeKind int

const (
	pageRoute routeKind = iota
	jsonRoute
)

type userKey struct{}

func userFrom(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(domain.User)
	return u, ok
}

// currentUser resolves the session cookie. An absent or invalid token is not
// an error; only store failures are.
func (s *Server) currentUser(r *http.Request) (domain.User, bool, error) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || strings.TrimSpace(c.Value) == "" {
		return domain.User{}, false, nil
	}
	p, err := s.sessions.Verify(c.Value)
	if err != nil {
		s.log(r).Debug("session rejected", zap.Error(err))
		return domain.User{}, false, nil
	}
	return s.users.UserByID(r.Context(), p.UserID)
}

// requireUser runs next only for signed-in users. Others are sent to the
// login page, or get a 401 notification on JSON routes.
func (s *Server) requireUser(kind routeKind, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok, err := s.currentUser(r)
		if err != nil {
			s.reject(w, r, http.StatusInternalServerError, err)
			return
		}
		if !ok {
			if kind == jsonRoute {
				s.notify(w, r, http.StatusUnauthorized, domain.Error(msgLoginRequired))
				return
			}
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userKey{}, u)))
	})
}

func (s *Server) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
