package usecases

import (
	"context"
	"fmt"
	"time"

	payment "railway-booking/internal/module/payment/usecases"
	"railway-booking/internal/module/refund/models/entity"
	"railway-booking/internal/module/refund/models/request"
	"railway-booking/internal/module/refund/models/response"
	"railway-booking/internal/module/refund/repositories"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const refundEventsTopic = "refund_events"

type usecase struct {
	repo      repositories.Repositories
	payment   payment.Usecase
	log       log.Logger
	publisher message.Publisher
}

type Usecase interface {
	PendingRequests(ctx context.Context) ([]response.RefundRequestInfo, error)
	Approve(ctx context.Context, adminID, requestID int64) (response.RefundRequestInfo, error)
	Reject(ctx context.Context, adminID, requestID int64, payload *request.RejectRefund) (response.RefundRequestInfo, error)
}

func New(repo repositories.Repositories, payment payment.Usecase, log log.Logger, publisher message.Publisher) Usecase {
	return &usecase{
		repo:      repo,
		payment:   payment,
		log:       log,
		publisher: publisher,
	}
}

func (u *usecase) PendingRequests(ctx context.Context) ([]response.RefundRequestInfo, error) {
	requests, err := u.repo.FindPendingRequests(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]response.RefundRequestInfo, 0, len(requests))
	for _, r := range requests {
		infos = append(infos, toRefundRequestInfo(r))
	}
	return infos, nil
}

// Approve moves the money first and flips the request only once the credit
// landed. A failed refund therefore leaves the request pending and
// retryable.
func (u *usecase) Approve(ctx context.Context, adminID, requestID int64) (response.RefundRequestInfo, error) {
	refundRequest, err := u.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return response.RefundRequestInfo{}, err
	}
	if refundRequest.ID == 0 {
		return response.RefundRequestInfo{}, errors.NotFoundError("refund request not found")
	}
	if refundRequest.Status != entity.RefundStatusPending {
		return response.RefundRequestInfo{}, errors.InvalidStateTransition("refund request is already resolved")
	}

	paymentRecord, err := u.payment.FindPaymentByBookingID(ctx, refundRequest.BookingID)
	if err != nil {
		return response.RefundRequestInfo{}, err
	}

	if _, err := u.payment.Refund(ctx, uuid.MustParse(paymentRecord.PaymentID)); err != nil {
		return response.RefundRequestInfo{}, err
	}

	if err := u.repo.ResolveRequest(ctx, requestID, entity.RefundStatusApproved, adminID, ""); err != nil {
		return response.RefundRequestInfo{}, err
	}

	u.publishRefundEvent(ctx, request.RefundEvent{
		Event:     request.EventRefundApproved,
		RequestID: requestID,
		BookingID: refundRequest.BookingID.String(),
		UserID:    refundRequest.UserID,
		Amount:    refundRequest.Amount,
	})

	refundRequest.Status = entity.RefundStatusApproved
	return toRefundRequestInfo(refundRequest), nil
}

func (u *usecase) Reject(ctx context.Context, adminID, requestID int64, payload *request.RejectRefund) (response.RefundRequestInfo, error) {
	refundRequest, err := u.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return response.RefundRequestInfo{}, err
	}
	if refundRequest.ID == 0 {
		return response.RefundRequestInfo{}, errors.NotFoundError("refund request not found")
	}
	if refundRequest.Status != entity.RefundStatusPending {
		return response.RefundRequestInfo{}, errors.InvalidStateTransition("refund request is already resolved")
	}

	if err := u.repo.ResolveRequest(ctx, requestID, entity.RefundStatusRejected, adminID, payload.Reason); err != nil {
		return response.RefundRequestInfo{}, err
	}

	u.publishRefundEvent(ctx, request.RefundEvent{
		Event:     request.EventRefundRejected,
		RequestID: requestID,
		BookingID: refundRequest.BookingID.String(),
		UserID:    refundRequest.UserID,
		Reason:    payload.Reason,
	})

	refundRequest.Status = entity.RefundStatusRejected
	refundRequest.RejectionReason.String = payload.Reason
	refundRequest.RejectionReason.Valid = true
	return toRefundRequestInfo(refundRequest), nil
}

func (u *usecase) publishRefundEvent(ctx context.Context, event request.RefundEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error marshal refund event: %v", err))
		return
	}
	if err := u.publisher.Publish(refundEventsTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error publish refund event %s: %v", event.Event, err))
	}
}

func toRefundRequestInfo(r entity.RefundRequest) response.RefundRequestInfo {
	info := response.RefundRequestInfo{
		RequestID:   r.ID,
		BookingID:   r.BookingID.String(),
		UserID:      r.UserID,
		Amount:      r.Amount,
		Status:      r.Status,
		RequestedAt: r.RequestedAt.Format(time.RFC3339),
	}
	if r.AdminID.Valid {
		info.AdminID = r.AdminID.Int64
	}
	if r.RejectionReason.Valid {
		info.RejectionReason = r.RejectionReason.String
	}
	if r.ResolvedAt.Valid {
		info.ResolvedAt = r.ResolvedAt.Time.Format(time.RFC3339)
	}
	return info
}
