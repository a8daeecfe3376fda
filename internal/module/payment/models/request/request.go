package request

type AddFundingSource struct {
	Kind           string `json:"kind" validate:"required,oneof=CREDIT_CARD UPI"`
	CardNumber     string `json:"card_number" validate:"required_if=Kind CREDIT_CARD,omitempty,len=16,numeric"`
	CardholderName string `json:"cardholder_name" validate:"required_if=Kind CREDIT_CARD"`
	ExpiryMonth    int    `json:"expiry_month" validate:"required_if=Kind CREDIT_CARD,omitempty,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year" validate:"required_if=Kind CREDIT_CARD,omitempty,gte=2024"`
	Cvv            string `json:"cvv" validate:"required_if=Kind CREDIT_CARD,omitempty,len=3,numeric"`
	UpiHandle      string `json:"upi_handle" validate:"required_if=Kind UPI,omitempty,contains=@"`
}

type WalletTopUp struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}
