package response

type UserServiceValidate struct {
	IsValid bool   `json:"is_valid"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
	Email   string `json:"email"`
}

// ScheduleDetail is the catalog service's point-in-time answer for a
// schedule. The fare captured here is what the booking pays; it is never
// re-read later.
type ScheduleDetail struct {
	ScheduleID   int64   `json:"schedule_id"`
	TotalSeats   int     `json:"total_seats"`
	BaseFare     float64 `json:"base_fare"`
	DistanceKm   int     `json:"distance_km"`
	ScheduleDate string  `json:"schedule_date"`
	IsActive     bool    `json:"is_active"`
}

type BookingDetail struct {
	ID               string          `json:"id"`
	BookingReference string          `json:"booking_reference"`
	ScheduleID       int64           `json:"schedule_id"`
	PassengerCount   int             `json:"passenger_count"`
	TotalAmount      float64         `json:"total_amount"`
	Status           string          `json:"status"`
	JourneyDateFrom  string          `json:"journey_date_from"`
	JourneyDateTo    string          `json:"journey_date_to"`
	Passengers       []PassengerInfo `json:"passengers,omitempty"`
}

type PassengerInfo struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SeatNumber string `json:"seat_number,omitempty"`
}

type CancellationResult struct {
	BookingID    string  `json:"booking_id"`
	RefundAmount float64 `json:"refund_amount"`
	RefundMode   string  `json:"refund_mode"`
}
