package usecases_test

import (
	"context"
	"testing"

	ledgerentity "railway-booking/internal/module/ledger/models/entity"
	ledgermocks "railway-booking/internal/module/ledger/mocks"
	"railway-booking/internal/module/payment/mocks"
	"railway-booking/internal/module/payment/models/entity"
	"railway-booking/internal/module/payment/models/request"
	"railway-booking/internal/module/payment/usecases"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc         usecases.Usecase
	repoMock   *mocks.Repositories
	ledgerMock *ledgermocks.Repositories
	logMock    log.Logger
)

func setup() {
	repoMock = new(mocks.Repositories)
	ledgerMock = new(ledgermocks.Repositories)
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
	uc = usecases.New(repoMock, ledgerMock, logMock)
}

func teardown() {
	repoMock = nil
	ledgerMock = nil
	uc = nil
}

func TestCharge(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success", func(t *testing.T) {
		sourceMock := ledgerentity.FundingSource{
			ID:       1,
			UserID:   1,
			Kind:     ledgerentity.SourceKindWallet,
			Balance:  2000,
			IsActive: true,
		}

		ledgerMock.On("FindSourceForUser", ctx, int64(1), ledgerentity.SourceKindWallet).Return(sourceMock, nil).Once()
		ledgerMock.On("Debit", ctx, int64(1), float64(1000), bookingID.String(), mock.AnythingOfType("string")).Return("txn-1", nil).Once()
		repoMock.On("CreatePayment", ctx, mock.AnythingOfType("entity.Payment")).Return(nil).Once()

		record, err := uc.Charge(ctx, 1, 1000, ledgerentity.SourceKindWallet, bookingID)
		assert.NoError(t, err)
		assert.Equal(t, bookingID.String(), record.BookingID)
		assert.Equal(t, entity.PaymentStatusCompleted, record.Status)
		assert.Equal(t, "txn-1", record.TransactionID)
	})

	t.Run("no funding source for method", func(t *testing.T) {
		ledgerMock.On("FindSourceForUser", ctx, int64(1), ledgerentity.SourceKindUpi).Return(ledgerentity.FundingSource{}, nil).Once()

		_, err := uc.Charge(ctx, 1, 1000, ledgerentity.SourceKindUpi, bookingID)
		assert.True(t, errors.HasCode(err, errors.CodeSourceNotFound))
	})

	t.Run("insufficient balance passes through", func(t *testing.T) {
		sourceMock := ledgerentity.FundingSource{ID: 1, UserID: 1, Kind: ledgerentity.SourceKindWallet, Balance: 100, IsActive: true}

		ledgerMock.On("FindSourceForUser", ctx, int64(1), ledgerentity.SourceKindWallet).Return(sourceMock, nil).Once()
		ledgerMock.On("Debit", ctx, int64(1), float64(1000), bookingID.String(), mock.AnythingOfType("string")).
			Return("", errors.InsufficientBalance("insufficient balance on funding source")).Once()

		_, err := uc.Charge(ctx, 1, 1000, ledgerentity.SourceKindWallet, bookingID)
		assert.True(t, errors.HasCode(err, errors.CodeInsufficientBalance))
	})

	t.Run("persist failure reverses the debit", func(t *testing.T) {
		sourceMock := ledgerentity.FundingSource{ID: 1, UserID: 1, Kind: ledgerentity.SourceKindWallet, Balance: 2000, IsActive: true}

		ledgerMock.On("FindSourceForUser", ctx, int64(1), ledgerentity.SourceKindWallet).Return(sourceMock, nil).Once()
		ledgerMock.On("Debit", ctx, int64(1), float64(1000), bookingID.String(), mock.AnythingOfType("string")).Return("txn-2", nil).Once()
		repoMock.On("CreatePayment", ctx, mock.AnythingOfType("entity.Payment")).
			Return(errors.InternalServerError("error create payment")).Once()
		ledgerMock.On("Credit", ctx, int64(1), float64(1000), mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return("txn-3", nil).Once()

		_, err := uc.Charge(ctx, 1, 1000, ledgerentity.SourceKindWallet, bookingID)
		assert.Error(t, err)
		ledgerMock.AssertCalled(t, "Credit", ctx, int64(1), float64(1000), mock.AnythingOfType("string"), mock.AnythingOfType("string"))
	})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := uc.Charge(ctx, 1, 0, ledgerentity.SourceKindWallet, bookingID)
		assert.True(t, errors.HasCode(err, errors.CodeValidationError))
	})
}

func TestRefund(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	paymentID := uuid.New()
	bookingID := uuid.New()

	t.Run("success", func(t *testing.T) {
		paymentMock := entity.Payment{
			ID:        paymentID,
			BookingID: bookingID,
			UserID:    1,
			SourceID:  1,
			Amount:    1000,
			Status:    entity.PaymentStatusCompleted,
		}

		repoMock.On("FindPaymentByID", ctx, paymentID).Return(paymentMock, nil).Once()
		ledgerMock.On("FindCreditByReference", ctx, paymentID.String()).Return(ledgerentity.Transaction{}, nil).Once()
		ledgerMock.On("Credit", ctx, int64(1), float64(1000), paymentID.String(), mock.AnythingOfType("string")).Return("txn-9", nil).Once()
		repoMock.On("UpdatePaymentStatus", ctx, paymentID, entity.PaymentStatusRefunded).Return(nil).Once()

		transactionID, err := uc.Refund(ctx, paymentID)
		assert.NoError(t, err)
		assert.Equal(t, "txn-9", transactionID)
	})

	t.Run("second refund is a no-op", func(t *testing.T) {
		paymentMock := entity.Payment{
			ID:        paymentID,
			BookingID: bookingID,
			UserID:    1,
			SourceID:  1,
			Amount:    1000,
			Status:    entity.PaymentStatusRefunded,
		}
		existingCredit := ledgerentity.Transaction{
			ID:          "txn-9",
			SourceID:    1,
			Type:        ledgerentity.TransactionTypeCredit,
			Amount:      1000,
			ReferenceID: paymentID.String(),
		}

		repoMock.On("FindPaymentByID", ctx, paymentID).Return(paymentMock, nil).Once()
		ledgerMock.On("FindCreditByReference", ctx, paymentID.String()).Return(existingCredit, nil).Once()

		transactionID, err := uc.Refund(ctx, paymentID)
		assert.NoError(t, err)
		assert.Equal(t, "txn-9", transactionID)
		// no second credit may be posted
		ledgerMock.AssertNotCalled(t, "Credit", ctx, int64(1), float64(1000), paymentID.String(), mock.AnythingOfType("string"))
	})

	t.Run("payment not found", func(t *testing.T) {
		repoMock.On("FindPaymentByID", ctx, paymentID).Return(entity.Payment{}, nil).Once()

		_, err := uc.Refund(ctx, paymentID)
		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestGetWallet(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("existing wallet", func(t *testing.T) {
		walletMock := ledgerentity.FundingSource{ID: 1, UserID: 1, Kind: ledgerentity.SourceKindWallet, Balance: 500, IsActive: true}

		ledgerMock.On("FindSourceForUser", ctx, int64(1), ledgerentity.SourceKindWallet).Return(walletMock, nil).Once()

		wallet, err := uc.GetWallet(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), wallet.SourceID)
		assert.Equal(t, float64(500), wallet.Balance)
	})

	t.Run("wallet auto-created empty on first use", func(t *testing.T) {
		created := ledgerentity.FundingSource{ID: 2, UserID: 2, Kind: ledgerentity.SourceKindWallet, Balance: 0, IsActive: true}

		ledgerMock.On("FindSourceForUser", ctx, int64(2), ledgerentity.SourceKindWallet).Return(ledgerentity.FundingSource{}, nil).Once()
		ledgerMock.On("CreateSource", ctx, mock.AnythingOfType("entity.FundingSource")).Return(created, nil).Once()

		wallet, err := uc.GetWallet(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), wallet.SourceID)
		assert.Equal(t, float64(0), wallet.Balance)
	})
}

func TestAddSource(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("card number is masked", func(t *testing.T) {
		created := ledgerentity.FundingSource{
			ID:       3,
			UserID:   1,
			Kind:     ledgerentity.SourceKindCreditCard,
			Label:    "**** **** **** 1111",
			Balance:  10000,
			IsActive: true,
		}

		ledgerMock.On("CreateSource", ctx, mock.MatchedBy(func(source ledgerentity.FundingSource) bool {
			return source.Label == "**** **** **** 1111" && source.Balance == 10000
		})).Return(created, nil).Once()

		info, err := uc.AddSource(ctx, 1, &request.AddFundingSource{
			Kind:           ledgerentity.SourceKindCreditCard,
			CardNumber:     "4111111111111111",
			CardholderName: "John Doe",
			ExpiryMonth:    12,
			ExpiryYear:     2030,
			Cvv:            "123",
		})
		assert.NoError(t, err)
		assert.Equal(t, "**** **** **** 1111", info.Label)
	})

	t.Run("unsupported kind", func(t *testing.T) {
		_, err := uc.AddSource(ctx, 1, &request.AddFundingSource{Kind: "CASH"})
		assert.True(t, errors.HasCode(err, errors.CodeValidationError))
	})
}
