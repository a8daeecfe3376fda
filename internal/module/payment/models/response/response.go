package response

// PaymentRecord is what the booking orchestrator and refund workflow see
// of a completed charge.
type PaymentRecord struct {
	PaymentID     string  `json:"payment_id"`
	BookingID     string  `json:"booking_id"`
	SourceID      int64   `json:"source_id"`
	Method        string  `json:"method"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transaction_id"`
}

type FundingSourceInfo struct {
	SourceID int64   `json:"source_id"`
	Kind     string  `json:"kind"`
	Label    string  `json:"label"`
	Balance  float64 `json:"balance"`
	IsActive bool    `json:"is_active"`
}

type TransactionInfo struct {
	TransactionID string  `json:"transaction_id"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	ReferenceID   string  `json:"reference_id"`
	CreatedAt     string  `json:"created_at"`
}
