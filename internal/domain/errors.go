package domain

import "errors"

var (
	// ErrIllegalTransition indicates the backend refused an action because
	// the entity's status already changed. The backend's answer is
	// authoritative; callers should re-fetch and show current truth.
	ErrIllegalTransition = errors.New("transition not permitted for current status")
	// ErrBackendUnavailable indicates the request could not complete. No
	// state changed; the action may be retried by the operator.
	ErrBackendUnavailable = errors.New("platform backend unavailable")
	// ErrNotFound indicates the backend has no entity with the given id.
	ErrNotFound = errors.New("not found")
)
