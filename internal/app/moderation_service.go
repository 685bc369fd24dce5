package app

import (
	"context"
	"errors"
	"strings"

	"promoadmin/internal/domain"

	"github.com/google/uuid"
)

var (
	// ErrEmptyReason indicates a rejection was submitted without a reason.
	// Caught before any network traffic.
	ErrEmptyReason = errors.New("rejection reason must not be empty")
	// ErrConfirmationRequired indicates a broadcast was requested without
	// the explicit confirmation step. Caught before any network traffic.
	ErrConfirmationRequired = errors.New("broadcast requires explicit confirmation")
	// ErrInvalidStatusFilter indicates a list filter outside the closed
	// moderation status set.
	ErrInvalidStatusFilter = errors.New("unknown moderation status")
)

const guardPromo = "promo"

// PromoView is a promotion enriched with the moderation actions legal for
// its current status, so the console renders affordances from the closed
// set instead of guessing.
type PromoView struct {
	domain.Promo
	Actions []domain.PromoAction `json:"actions"`
}

// ModerationService is the promotion lifecycle controller. It validates
// inputs, holds the per-id in-flight guard, and dispatches guarded actions
// to the promotion store. The backend remains authoritative: a refused
// transition is surfaced as domain.ErrIllegalTransition, never retried.
type ModerationService struct {
	promos domain.PromoStore
	guard  *InflightGuard
}

// NewModerationService creates a moderation service.
func NewModerationService(promos domain.PromoStore, guard *InflightGuard) *ModerationService {
	return &ModerationService{promos: promos, guard: guard}
}

// List fetches promotions, optionally filtered by status, and annotates
// each with its legal action set.
func (s *ModerationService) List(ctx context.Context, status domain.PromoStatus) ([]PromoView, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidStatusFilter
	}
	promos, err := s.promos.ListPromos(ctx, status)
	if err != nil {
		return nil, err
	}
	views := make([]PromoView, len(promos))
	for i, p := range promos {
		views[i] = PromoView{Promo: p, Actions: domain.LegalActions(p.Status)}
	}
	return views, nil
}

// Approve transitions a pending promotion to approved.
func (s *ModerationService) Approve(ctx context.Context, id int64) (*domain.Promo, error) {
	if !s.guard.Acquire(guardPromo, id) {
		return nil, ErrActionInFlight
	}
	defer s.guard.Release(guardPromo, id)
	return s.promos.ApprovePromo(ctx, id)
}

// Reject transitions a pending promotion to rejected. The reason is
// mandatory and validated before anything reaches the network.
func (s *ModerationService) Reject(ctx context.Context, id int64, reason string) (*domain.Promo, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if !s.guard.Acquire(guardPromo, id) {
		return nil, ErrActionInFlight
	}
	defer s.guard.Release(guardPromo, id)
	return s.promos.RejectPromo(ctx, id, reason)
}

// Broadcast dispatches the one-shot broadcast for an approved promotion.
// confirmed must be true: broadcasting is irreversible and reaches real
// recipients, so the operator's explicit confirmation travels with the
// request. On a success result the promotion is broadcasted; on a failure
// result its status is unchanged and the action stays retryable. Each
// attempt carries a fresh idempotency key for backend-side de-duplication.
func (s *ModerationService) Broadcast(ctx context.Context, id int64, confirmed bool) (*domain.BroadcastResult, error) {
	if !confirmed {
		return nil, ErrConfirmationRequired
	}
	if !s.guard.Acquire(guardPromo, id) {
		return nil, ErrActionInFlight
	}
	defer s.guard.Release(guardPromo, id)
	return s.promos.BroadcastPromo(ctx, id, uuid.NewString())
}
