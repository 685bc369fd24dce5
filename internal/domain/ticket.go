package domain

import (
	"context"
	"time"
)

// TicketStatus is the closed lifecycle set of a support ticket.
type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketResolved TicketStatus = "resolved"
)

// SupportTicket mirrors a ticket as the backend serves it.
type SupportTicket struct {
	ID          int64        `json:"id"`
	UserName    string       `json:"user_name"`
	PhoneNumber string       `json:"phone_number"`
	Message     string       `json:"message"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	ResolvedAt  *time.Time   `json:"resolved_at"`
}

// TicketDesk is the port for the backend's support endpoints. A status of
// "" lists all tickets.
type TicketDesk interface {
	ListTickets(ctx context.Context, status TicketStatus) ([]SupportTicket, error)
	ResolveTicket(ctx context.Context, id int64) (*SupportTicket, error)
}
