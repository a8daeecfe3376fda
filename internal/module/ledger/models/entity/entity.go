package entity

import "time"

const (
	SourceKindWallet     = "WALLET"
	SourceKindCreditCard = "CREDIT_CARD"
	SourceKindUpi        = "UPI"
)

const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// FundingSource is the uniform shape behind wallet, card and UPI handle.
// The kind column tags the variant; balance and is_active behave the same
// for all of them.
type FundingSource struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Kind      string    `db:"kind"`
	Label     string    `db:"label"`
	Balance   float64   `db:"balance"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

// Transaction is append-only. Balance on FundingSource is a cached value
// that must always equal the sum of credits minus debits recorded here.
type Transaction struct {
	ID          string    `db:"id"`
	SourceID    int64     `db:"source_id"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	ReferenceID string    `db:"reference_id"`
	CreatedAt   time.Time `db:"created_at"`
}
