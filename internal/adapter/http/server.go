package adapthttp

import (
	"net/http"

	"promoadmin/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth          *app.AuthService
	moderation    *app.ModerationService
	directory     *app.DirectoryService
	oidcConfig    *OIDCConfig
	webDir        string
	secureCookies bool
}

// New creates a Server wired to the given application services. oidcConfig
// may be a disabled config when SSO is not set up.
func New(auth *app.AuthService, moderation *app.ModerationService, directory *app.DirectoryService, oidcConfig *OIDCConfig, webDir string, secureCookies bool) *Server {
	if oidcConfig == nil {
		oidcConfig = &OIDCConfig{}
	}
	return &Server{
		auth:          auth,
		moderation:    moderation,
		directory:     directory,
		oidcConfig:    oidcConfig,
		webDir:        webDir,
		secureCookies: secureCookies,
	}
}

// Handler returns the root http.Handler for the console.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	api.HandleFunc("POST /auth/login", s.handleLogin)
	api.HandleFunc("POST /auth/logout", s.handleLogout)
	api.HandleFunc("GET /auth/config", s.handleAuthConfig)
	api.HandleFunc("GET /auth/sso/login", s.handleSSOLogin)
	api.HandleFunc("GET /auth/sso/callback", s.handleSSOCallback)

	protected := http.NewServeMux()
	protected.HandleFunc("GET /stats", s.handleStats)

	protected.HandleFunc("GET /promos", s.handleListPromos)
	protected.HandleFunc("POST /promos/{id}/approve", s.handleApprovePromo)
	protected.HandleFunc("POST /promos/{id}/reject", s.handleRejectPromo)
	protected.HandleFunc("POST /promos/{id}/broadcast", s.handleBroadcastPromo)

	protected.HandleFunc("GET /users", s.handleListUsers)
	protected.HandleFunc("POST /users/{id}/verify", s.handleVerifyUser)
	protected.HandleFunc("POST /users/{id}/reject_verification", s.handleRejectVerification)

	protected.HandleFunc("GET /payments", s.handleListPayments)
	protected.HandleFunc("POST /payments/{id}/confirm", s.handleConfirmPayment)

	protected.HandleFunc("GET /support", s.handleListTickets)
	protected.HandleFunc("POST /support/{id}/resolve", s.handleResolveTicket)

	protected.HandleFunc("GET /broadcasts", s.handleListBroadcasts)

	protected.HandleFunc("GET /settings/vendor-lock", s.handleGetVendorLock)
	protected.HandleFunc("POST /settings/vendor-lock", s.handleSetVendorLock)

	api.Handle("/", s.requireSession(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/", s.pageGate(consoleFromDisk(s.webDir)))

	return s.recoverMiddleware(s.loggingMiddleware(withNoCache(root)))
}
