package domain

import "context"

// Stats holds the dashboard counters the backend aggregates.
type Stats struct {
	TotalVendors     int `json:"total_vendors"`
	TotalSubscribers int `json:"total_subscribers"`
	PendingPromos    int `json:"pending_promos"`
	ActivePromos     int `json:"active_promos"`
	TotalBroadcasts  int `json:"total_broadcasts"`
	PendingPayments  int `json:"pending_payments"`
	OpenTickets      int `json:"open_tickets"`
}

// Settings is the port for the backend's platform settings. The vendor
// lock gates new vendor registrations on the bot side.
type Settings interface {
	VendorLock(ctx context.Context) (bool, error)
	SetVendorLock(ctx context.Context, locked bool) error
}

// StatsSource is the port for the backend's dashboard aggregates.
type StatsSource interface {
	Stats(ctx context.Context) (*Stats, error)
}
