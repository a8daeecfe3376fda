package usecases

import (
	"context"
	"fmt"

	ledgerentity "railway-booking/internal/module/ledger/models/entity"
	ledger "railway-booking/internal/module/ledger/repositories"
	"railway-booking/internal/module/payment/models/entity"
	"railway-booking/internal/module/payment/models/request"
	"railway-booking/internal/module/payment/models/response"
	"railway-booking/internal/module/payment/repositories"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/google/uuid"
)

type usecase struct {
	repo   repositories.Repositories
	ledger ledger.Repositories
	log    log.Logger
}

type Usecase interface {
	// charge & refund, used by the booking orchestrator and refund workflow
	Charge(ctx context.Context, userID int64, amount float64, method string, bookingID uuid.UUID) (response.PaymentRecord, error)
	Refund(ctx context.Context, paymentID uuid.UUID) (string, error)
	FindPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (response.PaymentRecord, error)
	// funding source management
	GetWallet(ctx context.Context, userID int64) (response.FundingSourceInfo, error)
	TopUpWallet(ctx context.Context, userID int64, payload *request.WalletTopUp) (response.FundingSourceInfo, error)
	AddSource(ctx context.Context, userID int64, payload *request.AddFundingSource) (response.FundingSourceInfo, error)
	ListSources(ctx context.Context, userID int64) ([]response.FundingSourceInfo, error)
	DeactivateSource(ctx context.Context, userID int64, sourceID int64) error
	SourceTransactions(ctx context.Context, userID int64, sourceID int64) ([]response.TransactionInfo, error)
	ListPayments(ctx context.Context, userID int64) ([]response.PaymentRecord, error)
}

func New(repo repositories.Repositories, ledger ledger.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo:   repo,
		ledger: ledger,
		log:    log,
	}
}

// Charge resolves the preferred method to one of the user's active funding
// sources and debits it. Insufficient balance and inactive source come back
// as distinct errors so the orchestrator can tell a user-correctable
// failure from a dead source.
func (u *usecase) Charge(ctx context.Context, userID int64, amount float64, method string, bookingID uuid.UUID) (response.PaymentRecord, error) {
	if amount <= 0 {
		return response.PaymentRecord{}, errors.ValidationError("charge amount must be positive")
	}

	source, err := u.ledger.FindSourceForUser(ctx, userID, method)
	if err != nil {
		return response.PaymentRecord{}, err
	}
	if source.ID == 0 {
		return response.PaymentRecord{}, errors.SourceNotFound(fmt.Sprintf("no %s funding source for user", method))
	}

	transactionID, err := u.ledger.Debit(ctx, source.ID, amount, bookingID.String(),
		fmt.Sprintf("payment for booking %s", bookingID))
	if err != nil {
		return response.PaymentRecord{}, err
	}

	payment := entity.Payment{
		ID:            uuid.New(),
		BookingID:     bookingID,
		UserID:        userID,
		SourceID:      source.ID,
		Amount:        amount,
		Method:        method,
		Status:        entity.PaymentStatusCompleted,
		TransactionID: transactionID,
	}

	if err := u.repo.CreatePayment(ctx, payment); err != nil {
		// the debit went through; reverse it so no money is stranded
		if _, creditErr := u.ledger.Credit(ctx, source.ID, amount, payment.ID.String(),
			fmt.Sprintf("reversal for failed payment %s", payment.ID)); creditErr != nil {
			u.log.Error(ctx, fmt.Sprintf("error reversing debit for failed payment %s: %v", payment.ID, creditErr))
		}
		return response.PaymentRecord{}, err
	}

	return toPaymentRecord(payment), nil
}

// Refund credits the original source for the original amount. Calling it
// twice for the same payment is a no-op: an existing credit transaction
// referencing the payment short-circuits before any money moves.
func (u *usecase) Refund(ctx context.Context, paymentID uuid.UUID) (string, error) {
	payment, err := u.repo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return "", err
	}
	if payment.ID == uuid.Nil {
		return "", errors.NotFoundError("payment not found")
	}

	existing, err := u.ledger.FindCreditByReference(ctx, payment.ID.String())
	if err != nil {
		return "", err
	}
	if existing.ID != "" {
		return existing.ID, nil
	}

	transactionID, err := u.ledger.Credit(ctx, payment.SourceID, payment.Amount, payment.ID.String(),
		fmt.Sprintf("refund for booking %s", payment.BookingID))
	if err != nil {
		return "", err
	}

	if err := u.repo.UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusRefunded); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error marking payment %s refunded: %v", payment.ID, err))
	}

	return transactionID, nil
}

func (u *usecase) FindPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (response.PaymentRecord, error) {
	payment, err := u.repo.FindPaymentByBookingID(ctx, bookingID)
	if err != nil {
		return response.PaymentRecord{}, err
	}
	if payment.ID == uuid.Nil {
		return response.PaymentRecord{}, errors.NotFoundError("payment not found for booking")
	}
	return toPaymentRecord(payment), nil
}

// GetWallet returns the user's wallet, creating an empty one on first use.
func (u *usecase) GetWallet(ctx context.Context, userID int64) (response.FundingSourceInfo, error) {
	source, err := u.ledger.FindSourceForUser(ctx, userID, ledgerentity.SourceKindWallet)
	if err != nil {
		return response.FundingSourceInfo{}, err
	}
	if source.ID == 0 {
		source, err = u.ledger.CreateSource(ctx, ledgerentity.FundingSource{
			UserID:   userID,
			Kind:     ledgerentity.SourceKindWallet,
			Label:    "wallet",
			Balance:  0,
			IsActive: true,
		})
		if err != nil {
			return response.FundingSourceInfo{}, err
		}
	}
	return toSourceInfo(source), nil
}

func (u *usecase) TopUpWallet(ctx context.Context, userID int64, payload *request.WalletTopUp) (response.FundingSourceInfo, error) {
	wallet, err := u.GetWallet(ctx, userID)
	if err != nil {
		return response.FundingSourceInfo{}, err
	}

	if _, err := u.ledger.Credit(ctx, wallet.SourceID, payload.Amount, uuid.NewString(), "wallet top-up"); err != nil {
		return response.FundingSourceInfo{}, err
	}

	balance, err := u.ledger.BalanceOf(ctx, wallet.SourceID)
	if err != nil {
		return response.FundingSourceInfo{}, err
	}
	wallet.Balance = balance
	return wallet, nil
}

func (u *usecase) AddSource(ctx context.Context, userID int64, payload *request.AddFundingSource) (response.FundingSourceInfo, error) {
	var label string
	switch payload.Kind {
	case ledgerentity.SourceKindCreditCard:
		// only the masked number is ever stored
		label = "**** **** **** " + payload.CardNumber[len(payload.CardNumber)-4:]
	case ledgerentity.SourceKindUpi:
		label = payload.UpiHandle
	default:
		return response.FundingSourceInfo{}, errors.ValidationError("unsupported funding source kind")
	}

	source, err := u.ledger.CreateSource(ctx, ledgerentity.FundingSource{
		UserID:   userID,
		Kind:     payload.Kind,
		Label:    label,
		Balance:  10000,
		IsActive: true,
	})
	if err != nil {
		return response.FundingSourceInfo{}, err
	}
	return toSourceInfo(source), nil
}

func (u *usecase) ListSources(ctx context.Context, userID int64) ([]response.FundingSourceInfo, error) {
	sources, err := u.ledger.FindSourcesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]response.FundingSourceInfo, 0, len(sources))
	for _, source := range sources {
		infos = append(infos, toSourceInfo(source))
	}
	return infos, nil
}

func (u *usecase) DeactivateSource(ctx context.Context, userID int64, sourceID int64) error {
	return u.ledger.DeactivateSource(ctx, userID, sourceID)
}

func (u *usecase) SourceTransactions(ctx context.Context, userID int64, sourceID int64) ([]response.TransactionInfo, error) {
	source, err := u.ledger.FindSource(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	if source.ID == 0 || source.UserID != userID {
		return nil, errors.SourceNotFound("funding source not found")
	}

	transactions, err := u.ledger.TransactionsOf(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	infos := make([]response.TransactionInfo, 0, len(transactions))
	for _, transaction := range transactions {
		infos = append(infos, response.TransactionInfo{
			TransactionID: transaction.ID,
			Type:          transaction.Type,
			Amount:        transaction.Amount,
			Description:   transaction.Description,
			ReferenceID:   transaction.ReferenceID,
			CreatedAt:     transaction.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return infos, nil
}

func (u *usecase) ListPayments(ctx context.Context, userID int64) ([]response.PaymentRecord, error) {
	payments, err := u.repo.FindPaymentsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([]response.PaymentRecord, 0, len(payments))
	for _, payment := range payments {
		records = append(records, toPaymentRecord(payment))
	}
	return records, nil
}

func toPaymentRecord(payment entity.Payment) response.PaymentRecord {
	return response.PaymentRecord{
		PaymentID:     payment.ID.String(),
		BookingID:     payment.BookingID.String(),
		SourceID:      payment.SourceID,
		Method:        payment.Method,
		Amount:        payment.Amount,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
	}
}

func toSourceInfo(source ledgerentity.FundingSource) response.FundingSourceInfo {
	return response.FundingSourceInfo{
		SourceID: source.ID,
		Kind:     source.Kind,
		Label:    source.Label,
		Balance:  source.Balance,
		IsActive: source.IsActive,
	}
}
