package request

type CreateBooking struct {
	ScheduleID    int64             `json:"schedule_id" validate:"required"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=WALLET CREDIT_CARD UPI"`
	Passengers    []PassengerDetail `json:"passengers" validate:"required,min=1,dive"`
}

type PassengerDetail struct {
	Name   string `json:"name" validate:"required"`
	Age    int    `json:"age" validate:"required,gt=0,lte=120"`
	Gender string `json:"gender" validate:"required,oneof=male female other"`
}

type UpdatePassengers struct {
	Passengers []PassengerDetail `json:"passengers" validate:"required,min=1,dive"`
}

type CompleteBooking struct {
	BookingID string `json:"booking_id" validate:"required"`
}

// Event names pushed to the notification sink, one per state transition.
const (
	EventBookingConfirmed = "BookingConfirmed"
	EventBookingFailed    = "BookingFailed"
	EventBookingCancelled = "BookingCancelled"
)

type BookingEvent struct {
	Event      string  `json:"event" validate:"required"`
	BookingID  string  `json:"booking_id"`
	UserID     int64   `json:"user_id"`
	ScheduleID int64   `json:"schedule_id"`
	Amount     float64 `json:"amount,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}
