package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the closed lifecycle set of a payment record.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// Payment mirrors a payment row as the backend serves it.
type Payment struct {
	ID          int64           `json:"id"`
	UserName    string          `json:"user_name"`
	PhoneNumber string          `json:"phone_number"`
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference"`
	Status      PaymentStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at"`
}

// PaymentLedger is the port for the backend's payment endpoints.
type PaymentLedger interface {
	ListPayments(ctx context.Context) ([]Payment, error)
	ConfirmPayment(ctx context.Context, id int64) (*Payment, error)
}
