package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	RefundStatusPending  = "pending"
	RefundStatusApproved = "approved"
	RefundStatusRejected = "rejected"
)

// RefundRequest is terminal once resolved: pending is the only state an
// admin may act on.
type RefundRequest struct {
	ID              int64          `db:"id"`
	BookingID       uuid.UUID      `db:"booking_id"`
	UserID          int64          `db:"user_id"`
	Amount          float64        `db:"amount"`
	Status          string         `db:"status"`
	AdminID         sql.NullInt64  `db:"admin_id"`
	RejectionReason sql.NullString `db:"rejection_reason"`
	RequestedAt     time.Time      `db:"requested_at"`
	ResolvedAt      sql.NullTime   `db:"resolved_at"`
}
