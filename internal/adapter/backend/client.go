// Package backend implements the domain store ports against the platform
// backend's JSON-over-HTTP API. The backend owns all authoritative state;
// this client only reflects and mutates it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promoadmin/internal/domain"
)

// Client talks to the platform backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API rooted at baseURL. The timeout bounds
// every request so the console never hangs on an unresponsive backend.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure port interfaces are met.
var _ domain.PromoStore = (*Client)(nil)
var _ domain.UserDirectory = (*Client)(nil)
var _ domain.PaymentLedger = (*Client)(nil)
var _ domain.TicketDesk = (*Client)(nil)
var _ domain.BroadcastLog = (*Client)(nil)
var _ domain.StatsSource = (*Client)(nil)
var _ domain.Settings = (*Client)(nil)

// --- PromoStore ---

// ListPromos fetches promotions, optionally filtered by status.
func (c *Client) ListPromos(ctx context.Context, status domain.PromoStatus) ([]domain.Promo, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var out struct {
		Promos []domain.Promo `json:"promos"`
	}
	if err := c.get(ctx, "/api/promos", q, &out); err != nil {
		return nil, err
	}
	return out.Promos, nil
}

// ApprovePromo asks the backend to approve a pending promotion.
func (c *Client) ApprovePromo(ctx context.Context, id int64) (*domain.Promo, error) {
	var out struct {
		Promo domain.Promo `json:"promo"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/promos/%d/approve", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.Promo, nil
}

// RejectPromo asks the backend to reject a pending promotion with a reason.
func (c *Client) RejectPromo(ctx context.Context, id int64, reason string) (*domain.Promo, error) {
	body := map[string]string{"reason": reason}
	var out struct {
		Promo domain.Promo `json:"promo"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/promos/%d/reject", id), body, &out, nil); err != nil {
		return nil, err
	}
	return &out.Promo, nil
}

// BroadcastPromo triggers delivery of an approved promotion. The
// idempotency key lets the backend de-duplicate across independent
// clients; a failed attempt's result is returned as data, not an error.
func (c *Client) BroadcastPromo(ctx context.Context, id int64, idempotencyKey string) (*domain.BroadcastResult, error) {
	headers := map[string]string{"Idempotency-Key": idempotencyKey}
	var out domain.BroadcastResult
	if err := c.post(ctx, fmt.Sprintf("/api/promos/%d/broadcast", id), nil, &out, headers); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- UserDirectory ---

// ListUsers fetches platform users, optionally filtered by role.
func (c *Client) ListUsers(ctx context.Context, role string) ([]domain.PlatformUser, error) {
	q := url.Values{}
	if role != "" {
		q.Set("role", role)
	}
	var out struct {
		Users []domain.PlatformUser `json:"users"`
	}
	if err := c.get(ctx, "/api/users", q, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// VerifyUser marks a vendor as verified.
func (c *Client) VerifyUser(ctx context.Context, id int64) (*domain.PlatformUser, error) {
	var out struct {
		User domain.PlatformUser `json:"user"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/users/%d/verify", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// RejectVerification rejects a vendor's identity document.
func (c *Client) RejectVerification(ctx context.Context, id int64) (*domain.PlatformUser, error) {
	var out struct {
		User domain.PlatformUser `json:"user"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/users/%d/reject_verification", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// --- PaymentLedger ---

// ListPayments fetches the payment ledger.
func (c *Client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var out struct {
		Payments []domain.Payment `json:"payments"`
	}
	if err := c.get(ctx, "/api/payments", nil, &out); err != nil {
		return nil, err
	}
	return out.Payments, nil
}

// ConfirmPayment marks a pending payment as completed.
func (c *Client) ConfirmPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	var out struct {
		Payment domain.Payment `json:"payment"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/payments/%d/confirm", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.Payment, nil
}

// --- TicketDesk ---

// ListTickets fetches support tickets, optionally filtered by status.
func (c *Client) ListTickets(ctx context.Context, status domain.TicketStatus) ([]domain.SupportTicket, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var out struct {
		Tickets []domain.SupportTicket `json:"tickets"`
	}
	if err := c.get(ctx, "/api/support", q, &out); err != nil {
		return nil, err
	}
	return out.Tickets, nil
}

// ResolveTicket closes an open support ticket.
func (c *Client) ResolveTicket(ctx context.Context, id int64) (*domain.SupportTicket, error) {
	var out struct {
		Ticket domain.SupportTicket `json:"ticket"`
	}
	if err := c.post(ctx, fmt.Sprintf("/api/support/%d/resolve", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out.Ticket, nil
}

// --- BroadcastLog ---

// ListBroadcasts fetches the delivery log.
func (c *Client) ListBroadcasts(ctx context.Context) ([]domain.BroadcastRecord, error) {
	var out struct {
		Broadcasts []domain.BroadcastRecord `json:"broadcasts"`
	}
	if err := c.get(ctx, "/api/broadcasts", nil, &out); err != nil {
		return nil, err
	}
	return out.Broadcasts, nil
}

// --- StatsSource ---

// Stats fetches the dashboard counters.
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := c.get(ctx, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Settings ---

// VendorLock reads the vendor registration lock.
func (c *Client) VendorLock(ctx context.Context) (bool, error) {
	var out struct {
		Locked bool `json:"locked"`
	}
	if err := c.get(ctx, "/api/settings/vendor-lock", nil, &out); err != nil {
		return false, err
	}
	return out.Locked, nil
}

// SetVendorLock flips the vendor registration lock.
func (c *Client) SetVendorLock(ctx context.Context, locked bool) error {
	body := map[string]bool{"locked": locked}
	return c.post(ctx, "/api/settings/vendor-lock", body, nil, nil)
}

// --- transport ---

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any, headers map[string]string) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts, refused connections and cancelled navigations all
		// land here: nothing changed remotely, the operator may retry.
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrBackendUnavailable, err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrIllegalTransition, backendDetail(raw))
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, backendDetail(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func backendDetail(raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	detail := strings.TrimSpace(string(raw))
	if len(detail) > 200 {
		detail = detail[:200]
	}
	return detail
}
