// Package domain contains the core business entities and the ports the
// console drives the platform backend through.
package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PromoStatus is the closed moderation lifecycle set of a promotion.
type PromoStatus string

const (
	PromoPending     PromoStatus = "pending"
	PromoApproved    PromoStatus = "approved"
	PromoRejected    PromoStatus = "rejected"
	PromoBroadcasted PromoStatus = "broadcasted"
)

// Valid reports whether s is one of the known moderation statuses.
func (s PromoStatus) Valid() bool {
	switch s {
	case PromoPending, PromoApproved, PromoRejected, PromoBroadcasted:
		return true
	}
	return false
}

// PromoAction is a guarded moderation action on a promotion.
type PromoAction string

const (
	ActionApprove   PromoAction = "approve"
	ActionReject    PromoAction = "reject"
	ActionBroadcast PromoAction = "broadcast"
)

// LegalActions returns the moderation actions permitted for a promotion in
// status s. The switch is exhaustive over the closed status set; rejected and
// broadcasted are terminal and yield nothing.
func LegalActions(s PromoStatus) []PromoAction {
	switch s {
	case PromoPending:
		return []PromoAction{ActionApprove, ActionReject}
	case PromoApproved:
		return []PromoAction{ActionBroadcast}
	case PromoRejected, PromoBroadcasted:
		return nil
	}
	return nil
}

// Allows reports whether action is legal for status s.
func (s PromoStatus) Allows(action PromoAction) bool {
	for _, a := range LegalActions(s) {
		if a == action {
			return true
		}
	}
	return false
}

// Promo mirrors a promotion as the backend serves it. The console never
// owns a promotion; vendor details are denormalized by the backend for
// display only, and views/clicks are read-only counters.
type Promo struct {
	ID             int64           `json:"id"`
	VendorName     string          `json:"vendor_name"`
	VendorBusiness string          `json:"vendor_business"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	ContactInfo    string          `json:"contact_info"`
	MediaURL       string          `json:"media_url"`
	MediaType      string          `json:"media_type"`
	PromoType      string          `json:"promo_type"`
	Caption        string          `json:"ai_generated_caption"`
	Status         PromoStatus     `json:"status"`
	Category       string          `json:"category"`
	CreatedAt      time.Time       `json:"created_at"`
	ApprovedAt     *time.Time      `json:"approved_at"`
	BroadcastedAt  *time.Time      `json:"broadcasted_at"`
	Views          int64           `json:"views"`
	Clicks         int64           `json:"clicks"`
}

// Free reports whether the promotion costs nothing to run.
func (p *Promo) Free() bool {
	return p.Price.IsZero()
}

// BroadcastResult is the backend's response contract for a broadcast
// attempt. Counts are trusted as-is for display and for deciding the
// terminal status.
type BroadcastResult struct {
	Success         bool   `json:"success"`
	TotalRecipients int    `json:"total_recipients"`
	SentCount       int    `json:"sent_count"`
	FailedCount     int    `json:"failed_count"`
	Detail          string `json:"error,omitempty"`
}

// PromoStore is the port for the backend's promotion endpoints. A status
// of "" lists all promotions.
type PromoStore interface {
	ListPromos(ctx context.Context, status PromoStatus) ([]Promo, error)
	ApprovePromo(ctx context.Context, id int64) (*Promo, error)
	RejectPromo(ctx context.Context, id int64, reason string) (*Promo, error)
	BroadcastPromo(ctx context.Context, id int64, idempotencyKey string) (*BroadcastResult, error)
}
