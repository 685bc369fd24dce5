package adapthttp

import (
	"log"
	"net/http"
	"runtime/debug"
	"time"
)

const sessionCookie = "admin_session"

// hasSession reports whether the request carries a currently valid session
// token. A missing, malformed or expired token all read as "no session" —
// the gate fails closed.
func (s *Server) hasSession(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil || cookie.Value == "" {
		return false
	}
	return s.auth.ValidateSession(r.Context(), cookie.Value) == nil
}

// pageGate runs the session gate decision on every page navigation,
// including revisits.
func (s *Server) pageGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch DecideGate(s.hasSession(r), r.URL.Path) {
		case GateRedirectLogin:
			http.Redirect(w, r, loginPath, http.StatusFound)
		case GateRedirectDashboard:
			http.Redirect(w, r, "/", http.StatusFound)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// requireSession protects the console API. API callers are the console's
// own fetch layer, so a missing session answers 401 rather than a
// redirect; the shell turns that into a trip to the login view.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.hasSession(r) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs method, path, status and duration per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// recoverMiddleware converts handler panics into a 500 instead of tearing
// down the server.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
