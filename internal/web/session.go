package web

import (
	"net/http"
	"strings"

	"github.com/JonMunkholm/datazen/internal/i18n"
	"github.com/JonMunkholm/datazen/internal/logging"
)

// SessionCookie is the name of the cookie carrying the session ID.
const SessionCookie = "datazen_session"

// sessionMiddleware loads or creates the caller's session and stores its ID
// in the request context. New sessions start in the language negotiated
// from Accept-Language, or the configured default when the header is absent.
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil {
			id = c.Value
		}

		sess, created := s.service.Sessions().GetOrCreate(id, s.initialLanguage(r))
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.cfg.Session.CookieSecure,
				SameSite: http.SameSiteLaxMode,
			})
			logging.FromContext(r.Context()).Debug("session created",
				"session_id", sess.ID,
				"language", sess.Language,
			)
		}

		ctx := logging.ContextWithSession(r.Context(), sess.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) initialLanguage(r *http.Request) i18n.Code {
	header := r.Header.Get("Accept-Language")
	if strings.TrimSpace(header) == "" {
		if code, err := i18n.ParseCode(s.cfg.App.DefaultLanguage); err == nil {
			return code
		}
		return i18n.DefaultCode
	}
	return i18n.Negotiate(header)
}

// sessionID returns the ID stored by sessionMiddleware.
func sessionID(r *http.Request) string {
	return logging.SessionFromContext(r.Context())
}
