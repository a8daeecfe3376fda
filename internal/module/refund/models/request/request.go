package request

type RejectRefund struct {
	Reason string `json:"reason" validate:"required"`
}

const (
	EventRefundApproved = "RefundApproved"
	EventRefundRejected = "RefundRejected"
)

type RefundEvent struct {
	Event     string  `json:"event" validate:"required"`
	RequestID int64   `json:"request_id"`
	BookingID string  `json:"booking_id"`
	UserID    int64   `json:"user_id"`
	Amount    float64 `json:"amount,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}
