package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID               uuid.UUID    `db:"id"`
	UserID           int64        `db:"user_id"`
	ScheduleID       int64        `db:"schedule_id"`
	BookingReference string       `db:"booking_reference"`
	PassengerCount   int          `db:"passenger_count"`
	TotalAmount      float64      `db:"total_amount"`
	Status           string       `db:"status"`
	JourneyDateFrom  time.Time    `db:"journey_date_from"`
	JourneyDateTo    time.Time    `db:"journey_date_to"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        sql.NullTime `db:"updated_at"`
}

type Passenger struct {
	ID         int64          `db:"id"`
	BookingID  uuid.UUID      `db:"booking_id"`
	Name       string         `db:"name"`
	Age        int            `db:"age"`
	Gender     string         `db:"gender"`
	SeatNumber sql.NullString `db:"seat_number"`
}
