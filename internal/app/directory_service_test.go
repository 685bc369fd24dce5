package app

import (
	"context"
	"errors"
	"testing"

	"promoadmin/internal/domain"
)

type mockDirectory struct {
	listUsersFn  func(ctx context.Context, role string) ([]domain.PlatformUser, error)
	verifyFn     func(ctx context.Context, id int64) (*domain.PlatformUser, error)
	rejectFn     func(ctx context.Context, id int64) (*domain.PlatformUser, error)
	payFn        func(ctx context.Context) ([]domain.Payment, error)
	confirmFn    func(ctx context.Context, id int64) (*domain.Payment, error)
	ticketsFn    func(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error)
	resolveFn    func(ctx context.Context, id int64) (*domain.SupportTicket, error)
	broadcastsFn func(ctx context.Context) ([]domain.BroadcastRecord, error)
	statsFn      func(ctx context.Context) (*domain.Stats, error)
	lockFn       func(ctx context.Context) (bool, error)
	setLockFn    func(ctx context.Context, locked bool) error
}

func (m *mockDirectory) ListUsers(ctx context.Context, role string) ([]domain.PlatformUser, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx, role)
	}
	return nil, nil
}

func (m *mockDirectory) VerifyUser(ctx context.Context, id int64) (*domain.PlatformUser, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, id)
	}
	return &domain.PlatformUser{ID: id, VerificationStatus: domain.VerificationVerified}, nil
}

func (m *mockDirectory) RejectVerification(ctx context.Context, id int64) (*domain.PlatformUser, error) {
	if m.rejectFn != nil {
		return m.rejectFn(ctx, id)
	}
	return &domain.PlatformUser{ID: id, VerificationStatus: domain.VerificationRejected}, nil
}

func (m *mockDirectory) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	if m.payFn != nil {
		return m.payFn(ctx)
	}
	return nil, nil
}

func (m *mockDirectory) ConfirmPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	if m.confirmFn != nil {
		return m.confirmFn(ctx, id)
	}
	return &domain.Payment{ID: id, Status: domain.PaymentCompleted}, nil
}

func (m *mockDirectory) ListTickets(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) {
	if m.ticketsFn != nil {
		return m.ticketsFn(ctx, status)
	}
	return nil, nil
}

func (m *mockDirectory) ResolveTicket(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, id)
	}
	return &domain.SupportTicket{ID: id, Status: domain.TicketResolved}, nil
}

func (m *mockDirectory) ListBroadcasts(ctx context.Context) ([]domain.BroadcastRecord, error) {
	if m.broadcastsFn != nil {
		return m.broadcastsFn(ctx)
	}
	return nil, nil
}

func (m *mockDirectory) Stats(ctx context.Context) (*domain.Stats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx)
	}
	return &domain.Stats{}, nil
}

func (m *mockDirectory) VendorLock(ctx context.Context) (bool, error) {
	if m.lockFn != nil {
		return m.lockFn(ctx)
	}
	return false, nil
}

func (m *mockDirectory) SetVendorLock(ctx context.Context, locked bool) error {
	if m.setLockFn != nil {
		return m.setLockFn(ctx, locked)
	}
	return nil
}

func newDirectoryService(m *mockDirectory) *DirectoryService {
	return NewDirectoryService(m, m, m, m, m, m, NewInflightGuard())
}

func TestDirectoryService_ConfirmPayment_AlreadyCompleted(t *testing.T) {
	m := &mockDirectory{
		confirmFn: func(ctx context.Context, id int64) (*domain.Payment, error) {
			return nil, domain.ErrIllegalTransition
		},
	}
	svc := newDirectoryService(m)

	if _, err := svc.ConfirmPayment(context.Background(), 3); !errors.Is(err, domain.ErrIllegalTransition) {
		t.Errorf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestDirectoryService_GuardCoversAllActions(t *testing.T) {
	m := &mockDirectory{}
	svc := newDirectoryService(m)

	// Occupy the guard for each kind and check the matching action refuses.
	svc.guard.Acquire("user", 5)
	if _, err := svc.VerifyUser(context.Background(), 5); !errors.Is(err, ErrActionInFlight) {
		t.Errorf("VerifyUser: expected ErrActionInFlight, got %v", err)
	}
	if _, err := svc.RejectVerification(context.Background(), 5); !errors.Is(err, ErrActionInFlight) {
		t.Errorf("RejectVerification: expected ErrActionInFlight, got %v", err)
	}

	svc.guard.Acquire("payment", 5)
	if _, err := svc.ConfirmPayment(context.Background(), 5); !errors.Is(err, ErrActionInFlight) {
		t.Errorf("ConfirmPayment: expected ErrActionInFlight, got %v", err)
	}

	svc.guard.Acquire("ticket", 5)
	if _, err := svc.ResolveTicket(context.Background(), 5); !errors.Is(err, ErrActionInFlight) {
		t.Errorf("ResolveTicket: expected ErrActionInFlight, got %v", err)
	}

	// A different id is unaffected.
	if _, err := svc.ResolveTicket(context.Background(), 6); err != nil {
		t.Errorf("ResolveTicket other id: %v", err)
	}
}

func TestDirectoryService_ListUsers_PassesRole(t *testing.T) {
	var gotRole string
	m := &mockDirectory{
		listUsersFn: func(ctx context.Context, role string) ([]domain.PlatformUser, error) {
			gotRole = role
			return []domain.PlatformUser{{ID: 1, IsVendor: true}}, nil
		},
	}
	svc := newDirectoryService(m)

	users, err := svc.ListUsers(context.Background(), "vendor")
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if gotRole != "vendor" {
		t.Errorf("expected role 'vendor', got %q", gotRole)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user, got %d", len(users))
	}
}

func TestDirectoryService_VendorLock(t *testing.T) {
	var set *bool
	m := &mockDirectory{
		lockFn: func(ctx context.Context) (bool, error) { return true, nil },
		setLockFn: func(ctx context.Context, locked bool) error {
			set = &locked
			return nil
		},
	}
	svc := newDirectoryService(m)

	locked, err := svc.VendorLock(context.Background())
	if err != nil || !locked {
		t.Errorf("expected locked=true, got %v err=%v", locked, err)
	}
	if err := svc.SetVendorLock(context.Background(), false); err != nil {
		t.Fatalf("SetVendorLock: %v", err)
	}
	if set == nil || *set != false {
		t.Error("expected lock flipped to false")
	}
}
