package adapthttp

import "strings"

// GateOutcome is the session gate's decision for one navigation.
type GateOutcome int

const (
	// GateAdmit serves the requested view.
	GateAdmit GateOutcome = iota
	// GateRedirectLogin sends an unauthenticated request to the login view.
	GateRedirectLogin
	// GateRedirectDashboard sends an authenticated request away from the
	// login view.
	GateRedirectDashboard
)

const loginPath = "/login"

// DecideGate is the session gate: a pure function of (session presence,
// target path). Every page path except /login and static assets is
// protected; unknown paths are protected too, so the gate fails closed.
func DecideGate(hasSession bool, path string) GateOutcome {
	if staticAsset(path) {
		return GateAdmit
	}
	if path == loginPath {
		if hasSession {
			return GateRedirectDashboard
		}
		return GateAdmit
	}
	if !hasSession {
		return GateRedirectLogin
	}
	return GateAdmit
}

func staticAsset(path string) bool {
	return strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/assets/") || path == "/favicon.ico"
}
