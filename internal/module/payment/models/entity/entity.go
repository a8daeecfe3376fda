package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)

type Payment struct {
	ID            uuid.UUID    `db:"id"`
	BookingID     uuid.UUID    `db:"booking_id"`
	UserID        int64        `db:"user_id"`
	SourceID      int64        `db:"source_id"`
	Amount        float64      `db:"amount"`
	Method        string       `db:"method"`
	Status        string       `db:"status"`
	TransactionID string       `db:"transaction_id"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     sql.NullTime `db:"updated_at"`
}
