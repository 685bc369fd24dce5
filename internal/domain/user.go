package domain

import (
	"context"
	"time"
)

// VerificationStatus is the closed lifecycle set of a vendor's identity
// check. Only pending documents can be acted on by an operator.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationPending    VerificationStatus = "pending"
	VerificationVerified   VerificationStatus = "verified"
	VerificationRejected   VerificationStatus = "rejected"
)

// Actionable reports whether an operator may verify or reject the document.
func (s VerificationStatus) Actionable() bool {
	return s == VerificationPending
}

// PlatformUser is a vendor or subscriber as the backend serves it.
type PlatformUser struct {
	ID                 int64              `json:"id"`
	PhoneNumber        string             `json:"phone_number"`
	Name               string             `json:"name"`
	BusinessName       string             `json:"business_name"`
	IsVendor           bool               `json:"is_vendor"`
	IsSubscriber       bool               `json:"is_subscriber"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	VerificationDoc    string             `json:"verification_doc"`
	Categories         []string           `json:"categories"`
	CreatedAt          time.Time          `json:"created_at"`
}

// UserDirectory is the port for the backend's user endpoints. Role is
// "vendor", "subscriber" or "" for everyone.
type UserDirectory interface {
	ListUsers(ctx context.Context, role string) ([]PlatformUser, error)
	VerifyUser(ctx context.Context, id int64) (*PlatformUser, error)
	RejectVerification(ctx context.Context, id int64) (*PlatformUser, error)
}
