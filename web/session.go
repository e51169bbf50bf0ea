package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/unrolled/render"
	"github.com/zhaodong-liu/Fantasy-Sports-League/controller"
	"github.com/zhaodong-liu/Fantasy-Sports-League/model"
)

const sessionCookieName = "fsl_session"

type contextKey int

const identityKey contextKey = iota

// sessionMiddleware resolves the session cookie once per request and
// stores the resulting identity in the request context. Handlers never
// read the cookie themselves.
func sessionMiddleware(ctrl controller.C) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(sessionCookieName); err == nil {
				token = c.Value
			}

			ident, err := ctrl.ResolveSession(r.Context(), token)
			if err != nil {
				// Treat a resolution failure as anonymous rather than
				// failing the whole request.
				log.Printf("error resolving session: %v", err)
				ident = model.Identity{}
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// identityFrom returns the request identity, or the anonymous identity
// when the middleware has not run.
func identityFrom(r *http.Request) model.Identity {
	if ident, ok := r.Context().Value(identityKey).(model.Identity); ok {
		return ident
	}
	return model.Identity{}
}

func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identityFrom(r).Anonymous() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireAdmin(render *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident := identityFrom(r)
			if ident.Anonymous() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if !ident.Admin {
				render.HTML(w, http.StatusForbidden, "403", "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func setSessionCookie(w http.ResponseWriter, s *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.Expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
