// Package domain defines the domain models shared by the gateway.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AmazonTransaction is the per-order provider state. It is created when an
// order enters checkout with Amazon Pay and mutated after each successful
// remote call. Records are never deleted; they are the audit trail linking an
// order to its provider-side identifiers.
type AmazonTransaction struct {
	ID               uuid.UUID
	OrderNumber      string
	PaymentNumber    string
	OrderReferenceID string

	AuthorizationID *string
	CaptureID       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Captured reports whether a capture has been recorded for this transaction.
func (t *AmazonTransaction) Captured() bool {
	return t.CaptureID != nil
}

// Authorized reports whether an open authorization has been recorded.
func (t *AmazonTransaction) Authorized() bool {
	return t.AuthorizationID != nil
}
