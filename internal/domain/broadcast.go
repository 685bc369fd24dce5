package domain

import (
	"context"
	"time"
)

// BroadcastRecord is one row of the backend's delivery log.
type BroadcastRecord struct {
	ID              int64     `json:"id"`
	PromoID         int64     `json:"promo_id"`
	PromoTitle      string    `json:"promo_title"`
	TotalRecipients int       `json:"total_recipients"`
	SentCount       int       `json:"sent_count"`
	FailedCount     int       `json:"failed_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// BroadcastLog is the port for the backend's broadcast history endpoint.
type BroadcastLog interface {
	ListBroadcasts(ctx context.Context) ([]BroadcastRecord, error)
}
