package usecases_test

import (
	"context"
	"testing"
	"time"

	paymentmocks "railway-booking/internal/module/payment/mocks"
	paymentresponse "railway-booking/internal/module/payment/models/response"
	"railway-booking/internal/module/refund/mocks"
	"railway-booking/internal/module/refund/models/entity"
	"railway-booking/internal/module/refund/models/request"
	"railway-booking/internal/module/refund/usecases"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc          usecases.Usecase
	repoMock    *mocks.Repositories
	paymentMock *paymentmocks.Usecase
	logMock     log.Logger
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	paymentMock = new(paymentmocks.Usecase)
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
	uc = usecases.New(repoMock, paymentMock, logMock, &mockPublisher{})
}

func teardown() {
	repoMock = nil
	paymentMock = nil
	uc = nil
}

func pendingRequest(bookingID uuid.UUID) entity.RefundRequest {
	return entity.RefundRequest{
		ID:          1,
		BookingID:   bookingID,
		UserID:      1,
		Amount:      1000,
		Status:      entity.RefundStatusPending,
		RequestedAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	paymentID := uuid.New()

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindRequestByID", ctx, int64(1)).Return(pendingRequest(bookingID), nil).Once()
		paymentMock.On("FindPaymentByBookingID", ctx, bookingID).
			Return(paymentresponse.PaymentRecord{PaymentID: paymentID.String(), Amount: 1000}, nil).Once()
		paymentMock.On("Refund", ctx, paymentID).Return("txn-refund", nil).Once()
		repoMock.On("ResolveRequest", ctx, int64(1), entity.RefundStatusApproved, int64(9), "").Return(nil).Once()

		info, err := uc.Approve(ctx, 9, 1)
		assert.NoError(t, err)
		assert.Equal(t, entity.RefundStatusApproved, info.Status)
	})

	t.Run("refund failure keeps the request pending", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindRequestByID", ctx, int64(1)).Return(pendingRequest(bookingID), nil).Once()
		paymentMock.On("FindPaymentByBookingID", ctx, bookingID).
			Return(paymentresponse.PaymentRecord{PaymentID: paymentID.String(), Amount: 1000}, nil).Once()
		paymentMock.On("Refund", ctx, paymentID).
			Return("", errors.SourceInactive("funding source is inactive")).Once()

		_, err := uc.Approve(ctx, 9, 1)
		assert.True(t, errors.HasCode(err, errors.CodeSourceInactive))
		repoMock.AssertNotCalled(t, "ResolveRequest", ctx, int64(1), entity.RefundStatusApproved, int64(9), "")
	})

	t.Run("already resolved", func(t *testing.T) {
		setup()
		defer teardown()

		resolved := pendingRequest(bookingID)
		resolved.Status = entity.RefundStatusApproved

		repoMock.On("FindRequestByID", ctx, int64(1)).Return(resolved, nil).Once()

		_, err := uc.Approve(ctx, 9, 1)
		assert.True(t, errors.HasCode(err, errors.CodeInvalidStateTransition))
		paymentMock.AssertNotCalled(t, "Refund", ctx, mock.AnythingOfType("uuid.UUID"))
	})

	t.Run("unknown request", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindRequestByID", ctx, int64(1)).Return(entity.RefundRequest{}, nil).Once()

		_, err := uc.Approve(ctx, 9, 1)
		assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindRequestByID", ctx, int64(1)).Return(pendingRequest(bookingID), nil).Once()
		repoMock.On("ResolveRequest", ctx, int64(1), entity.RefundStatusRejected, int64(9), "journey already started").Return(nil).Once()

		info, err := uc.Reject(ctx, 9, 1, &request.RejectRefund{Reason: "journey already started"})
		assert.NoError(t, err)
		assert.Equal(t, entity.RefundStatusRejected, info.Status)
		assert.Equal(t, "journey already started", info.RejectionReason)
		// rejection never moves money
		paymentMock.AssertNotCalled(t, "Refund", ctx, mock.AnythingOfType("uuid.UUID"))
	})

	t.Run("already resolved", func(t *testing.T) {
		setup()
		defer teardown()

		resolved := pendingRequest(bookingID)
		resolved.Status = entity.RefundStatusRejected

		repoMock.On("FindRequestByID", ctx, int64(1)).Return(resolved, nil).Once()

		_, err := uc.Reject(ctx, 9, 1, &request.RejectRefund{Reason: "duplicate"})
		assert.True(t, errors.HasCode(err, errors.CodeInvalidStateTransition))
	})
}

func TestPendingRequests(t *testing.T) {
	ctx := context.Background()

	setup()
	defer teardown()

	bookingID := uuid.New()
	repoMock.On("FindPendingRequests", ctx).Return([]entity.RefundRequest{pendingRequest(bookingID)}, nil).Once()

	infos, err := uc.PendingRequests(ctx)
	assert.NoError(t, err)
	assert.Len(t, infos, 1)
	assert.Equal(t, entity.RefundStatusPending, infos[0].Status)
	assert.Equal(t, bookingID.String(), infos[0].BookingID)
}
