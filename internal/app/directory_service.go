package app

import (
	"context"

	"promoadmin/internal/domain"
)

const (
	guardUser    = "user"
	guardPayment = "payment"
	guardTicket  = "ticket"
)

// DirectoryService serves the remaining console views: users, payments,
// support tickets, the broadcast log, dashboard stats and platform
// settings. Each guarded action follows the same pattern as promotion
// moderation: one in-flight call per entity id, backend authoritative,
// no automatic retry.
type DirectoryService struct {
	users      domain.UserDirectory
	payments   domain.PaymentLedger
	tickets    domain.TicketDesk
	broadcasts domain.BroadcastLog
	stats      domain.StatsSource
	settings   domain.Settings
	guard      *InflightGuard
}

// NewDirectoryService creates a directory service.
func NewDirectoryService(
	users domain.UserDirectory,
	payments domain.PaymentLedger,
	tickets domain.TicketDesk,
	broadcasts domain.BroadcastLog,
	stats domain.StatsSource,
	settings domain.Settings,
	guard *InflightGuard,
) *DirectoryService {
	return &DirectoryService{
		users:      users,
		payments:   payments,
		tickets:    tickets,
		broadcasts: broadcasts,
		stats:      stats,
		settings:   settings,
		guard:      guard,
	}
}

// ListUsers fetches platform users, optionally filtered by role.
func (s *DirectoryService) ListUsers(ctx context.Context, role string) ([]domain.PlatformUser, error) {
	return s.users.ListUsers(ctx, role)
}

// VerifyUser marks a vendor's pending identity document as verified.
func (s *DirectoryService) VerifyUser(ctx context.Context, id int64) (*domain.PlatformUser, error) {
	if !s.guard.Acquire(guardUser, id) {
		return nil, ErrActionInFlight
	}
	defer s.guard.Release(guardUser, id)
	return s.users.VerifyUser(ctx, id)
}

// RejectVerification marks a vendor's pending identity document as rejected
// so a new one can be uploaded.
func (s *DirectoryService) RejectVerification(ctx context.Context, id int64) (*domain.PlatformUser, error) {
	if !s.guard.Acquire(guardUser, id) {
		return nil, ErrActionInFlight
	}
	defer s.guard.Release(guardUser, id)
	return s.users.RejectVerification(ctx, id)
}

// ListPayments fetches the payment ledger.
func (s *DirectoryService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.ListPayments(ctx)
}

// ConfirmPayment marks a pending payment as completed.
func (s *DirectoryService) ConfirmPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	if !s.guard.Acquire(guardPayment, id) {
		return nil, ErrActionInFlight
	}
	defer s.guard.Release(guardPayment, id)
	return s.payments.ConfirmPayment(ctx, id)
}

// ListTickets fetches support tickets, optionally filtered by status.
func (s *DirectoryService) ListTickets(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) {
	return s.tickets.ListTickets(ctx, status)
}

// ResolveTicket closes an open support ticket.
func (s *DirectoryService) ResolveTicket(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	if !s.guard.Acquire(guardTicket, id) {
		return nil, ErrActionInFlight
	}
	defer s.guard.Release(guardTicket, id)
	return s.tickets.ResolveTicket(ctx, id)
}

// ListBroadcasts fetches the delivery log.
func (s *DirectoryService) ListBroadcasts(ctx context.Context) ([]domain.BroadcastRecord, error) {
	return s.broadcasts.ListBroadcasts(ctx)
}

// Stats fetches the dashboard counters.
func (s *DirectoryService) Stats(ctx context.Context) (*domain.Stats, error) {
	return s.stats.Stats(ctx)
}

// VendorLock reports whether new vendor registration is locked.
func (s *DirectoryService) VendorLock(ctx context.Context) (bool, error) {
	return s.settings.VendorLock(ctx)
}

// SetVendorLock flips the vendor registration lock.
func (s *DirectoryService) SetVendorLock(ctx context.Context, locked bool) error {
	return s.settings.SetVendorLock(ctx, locked)
}
