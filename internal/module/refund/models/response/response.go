package response

type RefundRequestInfo struct {
	RequestID       int64   `json:"request_id"`
	BookingID       string  `json:"booking_id"`
	UserID          int64   `json:"user_id"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	AdminID         int64   `json:"admin_id,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
	RequestedAt     string  `json:"requested_at"`
	ResolvedAt      string  `json:"resolved_at,omitempty"`
}
