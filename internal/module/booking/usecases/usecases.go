package usecases

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"railway-booking/config"
	"railway-booking/internal/module/booking/models/entity"
	"railway-booking/internal/module/booking/models/request"
	"railway-booking/internal/module/booking/models/response"
	"railway-booking/internal/module/booking/repositories"
	inventory "railway-booking/internal/module/inventory/repositories"
	payment "railway-booking/internal/module/payment/usecases"
	refundentity "railway-booking/internal/module/refund/models/entity"
	refund "railway-booking/internal/module/refund/repositories"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"
	"railway-booking/internal/pkg/scheduler"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const bookingEventsTopic = "booking_events"

type usecase struct {
	repo         repositories.Repositories
	inventory    inventory.Repositories
	payment      payment.Usecase
	refundRepo   refund.Repositories
	log          log.Logger
	publisher    message.Publisher
	taskClient   scheduler.TaskEnqueuer
	refundPolicy string
}

type Usecase interface {
	CreateBooking(ctx context.Context, userID int64, payload *request.CreateBooking) (response.BookingDetail, error)
	CancelBooking(ctx context.Context, userID int64, bookingID uuid.UUID) (response.CancellationResult, error)
	ShowBookings(ctx context.Context, userID int64) ([]response.BookingDetail, error)
	FindBooking(ctx context.Context, userID int64, bookingID uuid.UUID) (response.BookingDetail, error)
	UpdatePassengers(ctx context.Context, userID int64, bookingID uuid.UUID, payload *request.UpdatePassengers) error
	CompleteBooking(ctx context.Context, bookingID uuid.UUID) error
}

func New(
	repo repositories.Repositories,
	inventory inventory.Repositories,
	payment payment.Usecase,
	refundRepo refund.Repositories,
	log log.Logger,
	publisher message.Publisher,
	taskClient scheduler.TaskEnqueuer,
	refundPolicy string,
) Usecase {
	return &usecase{
		repo:         repo,
		inventory:    inventory,
		payment:      payment,
		refundRepo:   refundRepo,
		log:          log,
		publisher:    publisher,
		taskClient:   taskClient,
		refundPolicy: refundPolicy,
	}
}

// CreateBooking runs the reserve -> charge -> persist saga. Inventory and
// ledger are never held under one lock; every failure after the seat
// reservation releases it before the error goes back to the caller.
func (u *usecase) CreateBooking(ctx context.Context, userID int64, payload *request.CreateBooking) (response.BookingDetail, error) {
	if len(payload.Passengers) == 0 {
		return response.BookingDetail{}, errors.ValidationError("at least one passenger is required")
	}

	schedule, err := u.repo.GetScheduleDetail(ctx, payload.ScheduleID)
	if err != nil {
		return response.BookingDetail{}, err
	}
	if !schedule.IsActive {
		return response.BookingDetail{}, errors.ValidationError("schedule is not open for booking")
	}

	count := len(payload.Passengers)
	if err := u.inventory.Reserve(ctx, payload.ScheduleID, count); err != nil {
		u.publishBookingEvent(ctx, request.BookingEvent{
			Event:      request.EventBookingFailed,
			UserID:     userID,
			ScheduleID: payload.ScheduleID,
			Reason:     err.Error(),
		})
		return response.BookingDetail{}, err
	}

	// fare is locked at request time
	totalAmount := schedule.BaseFare * float64(count)
	bookingID := uuid.New()

	paymentRecord, err := u.payment.Charge(ctx, userID, totalAmount, payload.PaymentMethod, bookingID)
	if err != nil {
		// mandatory compensation: the reservation must not outlive the failed charge
		if releaseErr := u.inventory.Release(ctx, payload.ScheduleID, count); releaseErr != nil {
			u.log.Error(ctx, fmt.Sprintf("error releasing seats after failed charge for schedule %d: %v", payload.ScheduleID, releaseErr))
		}
		u.publishBookingEvent(ctx, request.BookingEvent{
			Event:      request.EventBookingFailed,
			BookingID:  bookingID.String(),
			UserID:     userID,
			ScheduleID: payload.ScheduleID,
			Reason:     err.Error(),
		})
		return response.BookingDetail{}, err
	}

	journeyFrom, journeyTo := journeyDates(schedule)

	booking := entity.Booking{
		ID:               bookingID,
		UserID:           userID,
		ScheduleID:       payload.ScheduleID,
		BookingReference: generateBookingReference(),
		PassengerCount:   count,
		TotalAmount:      totalAmount,
		Status:           entity.BookingStatusConfirmed,
		JourneyDateFrom:  journeyFrom,
		JourneyDateTo:    journeyTo,
	}

	passengers := make([]entity.Passenger, 0, count)
	for _, p := range payload.Passengers {
		passengers = append(passengers, entity.Passenger{
			BookingID: bookingID,
			Name:      p.Name,
			Age:       p.Age,
			Gender:    p.Gender,
		})
	}

	if err := u.repo.CreateBooking(ctx, booking, passengers); err != nil {
		if _, refundErr := u.payment.Refund(ctx, uuid.MustParse(paymentRecord.PaymentID)); refundErr != nil {
			u.log.Error(ctx, fmt.Sprintf("error refunding payment %s after failed persist: %v", paymentRecord.PaymentID, refundErr))
		}
		if releaseErr := u.inventory.Release(ctx, payload.ScheduleID, count); releaseErr != nil {
			u.log.Error(ctx, fmt.Sprintf("error releasing seats after failed persist for schedule %d: %v", payload.ScheduleID, releaseErr))
		}
		u.publishBookingEvent(ctx, request.BookingEvent{
			Event:      request.EventBookingFailed,
			BookingID:  bookingID.String(),
			UserID:     userID,
			ScheduleID: payload.ScheduleID,
			Reason:     err.Error(),
		})
		return response.BookingDetail{}, err
	}

	u.publishBookingEvent(ctx, request.BookingEvent{
		Event:      request.EventBookingConfirmed,
		BookingID:  bookingID.String(),
		UserID:     userID,
		ScheduleID: payload.ScheduleID,
		Amount:     totalAmount,
	})

	u.scheduleCompletion(ctx, booking)

	return toBookingDetail(booking, passengers), nil
}

// CancelBooking reverses a confirmed booking: status flips first, then
// seats go back, then money moves according to the configured policy.
func (u *usecase) CancelBooking(ctx context.Context, userID int64, bookingID uuid.UUID) (response.CancellationResult, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.CancellationResult{}, err
	}
	if booking.ID == uuid.Nil || booking.UserID != userID {
		return response.CancellationResult{}, errors.NotFoundError("booking not found")
	}
	if booking.Status == entity.BookingStatusCancelled {
		return response.CancellationResult{}, errors.AlreadyCancelled("booking is already cancelled")
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return response.CancellationResult{}, errors.InvalidStateTransition("only confirmed bookings can be cancelled")
	}

	if err := u.repo.UpdateBookingStatus(ctx, bookingID, entity.BookingStatusConfirmed, entity.BookingStatusCancelled); err != nil {
		return response.CancellationResult{}, err
	}

	if err := u.inventory.Release(ctx, booking.ScheduleID, booking.PassengerCount); err != nil {
		// release past capacity means an upstream accounting bug; the counter
		// was clamped, so log loudly and keep the cancellation going
		u.log.Error(ctx, fmt.Sprintf("error releasing seats for cancelled booking %s: %v", bookingID, err))
	}

	result := response.CancellationResult{
		BookingID:    bookingID.String(),
		RefundAmount: booking.TotalAmount,
	}

	switch u.refundPolicy {
	case config.RefundPolicyDirect:
		if err := u.refundDirect(ctx, booking); err != nil {
			// the booking is already cancelled, so a retried cancel would
			// bounce off the AlreadyCancelled guard and never reach the
			// refund again; park a request so the money stays reachable
			// through the admin surface
			u.log.Error(ctx, fmt.Sprintf("error refunding cancelled booking %s directly, queueing refund request: %v", bookingID, err))
			_, reqErr := u.refundRepo.CreateRequest(ctx, refundentity.RefundRequest{
				BookingID: bookingID,
				UserID:    userID,
				Amount:    booking.TotalAmount,
			})
			if reqErr != nil {
				return response.CancellationResult{}, reqErr
			}
			result.RefundMode = "refund request submitted for admin approval"
			break
		}
		result.RefundMode = "refunded"
	default:
		_, err := u.refundRepo.CreateRequest(ctx, refundentity.RefundRequest{
			BookingID: bookingID,
			UserID:    userID,
			Amount:    booking.TotalAmount,
		})
		if err != nil {
			return response.CancellationResult{}, err
		}
		result.RefundMode = "refund request submitted for admin approval"
	}

	u.publishBookingEvent(ctx, request.BookingEvent{
		Event:      request.EventBookingCancelled,
		BookingID:  bookingID.String(),
		UserID:     userID,
		ScheduleID: booking.ScheduleID,
		Amount:     booking.TotalAmount,
	})

	return result, nil
}

func (u *usecase) refundDirect(ctx context.Context, booking entity.Booking) error {
	paymentRecord, err := u.payment.FindPaymentByBookingID(ctx, booking.ID)
	if err != nil {
		return err
	}
	paymentID, err := uuid.Parse(paymentRecord.PaymentID)
	if err != nil {
		return errors.InternalServerError(fmt.Sprintf("malformed payment id for booking %s", booking.ID))
	}
	_, err = u.payment.Refund(ctx, paymentID)
	return err
}

func (u *usecase) ShowBookings(ctx context.Context, userID int64) ([]response.BookingDetail, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	details := make([]response.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, toBookingDetail(booking, nil))
	}
	return details, nil
}

func (u *usecase) FindBooking(ctx context.Context, userID int64, bookingID uuid.UUID) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}
	if booking.ID == uuid.Nil || booking.UserID != userID {
		return response.BookingDetail{}, errors.NotFoundError("booking not found")
	}

	passengers, err := u.repo.FindPassengersByBookingID(ctx, bookingID)
	if err != nil {
		return response.BookingDetail{}, err
	}

	return toBookingDetail(booking, passengers), nil
}

func (u *usecase) UpdatePassengers(ctx context.Context, userID int64, bookingID uuid.UUID, payload *request.UpdatePassengers) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.ID == uuid.Nil || booking.UserID != userID {
		return errors.NotFoundError("booking not found")
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return errors.InvalidStateTransition("only confirmed bookings can be edited")
	}

	passengers := make([]entity.Passenger, 0, len(payload.Passengers))
	for _, p := range payload.Passengers {
		passengers = append(passengers, entity.Passenger{
			BookingID: bookingID,
			Name:      p.Name,
			Age:       p.Age,
			Gender:    p.Gender,
		})
	}

	return u.repo.UpdatePassengers(ctx, bookingID, passengers)
}

// CompleteBooking marks a confirmed booking completed once the journey is
// over. Cancelled bookings are left alone.
func (u *usecase) CompleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.ID == uuid.Nil {
		return errors.NotFoundError("booking not found")
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil
	}
	return u.repo.UpdateBookingStatus(ctx, bookingID, entity.BookingStatusConfirmed, entity.BookingStatusCompleted)
}

// publishBookingEvent is best-effort: the notification sink never vetoes a
// booking.
func (u *usecase) publishBookingEvent(ctx context.Context, event request.BookingEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error marshal booking event: %v", err))
		return
	}
	if err := u.publisher.Publish(bookingEventsTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error publish booking event %s: %v", event.Event, err))
	}
}

func (u *usecase) scheduleCompletion(ctx context.Context, booking entity.Booking) {
	payload, err := json.Marshal(request.CompleteBooking{BookingID: booking.ID.String()})
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error marshal complete booking task: %v", err))
		return
	}

	task := asynq.NewTask(scheduler.TypeCompleteBooking, payload)
	processAt := booking.JourneyDateTo.Add(24 * time.Hour)
	if _, err := u.taskClient.Enqueue(task, asynq.ProcessAt(processAt)); err != nil {
		u.log.Error(ctx, fmt.Sprintf("error enqueue complete booking task for %s: %v", booking.ID, err))
	}
}

func journeyDates(schedule response.ScheduleDetail) (time.Time, time.Time) {
	from, err := time.Parse("2006-01-02", schedule.ScheduleDate)
	if err != nil {
		from = time.Now().Truncate(24 * time.Hour)
	}
	// one journey day per 500km, minimum one
	days := (schedule.DistanceKm + 499) / 500
	if days < 1 {
		days = 1
	}
	to := from.AddDate(0, 0, days-1)
	return from, to
}

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func generateBookingReference() string {
	reference := make([]byte, 8)
	for i := range reference {
		reference[i] = referenceCharset[rand.Intn(len(referenceCharset))]
	}
	return string(reference)
}

func toBookingDetail(booking entity.Booking, passengers []entity.Passenger) response.BookingDetail {
	detail := response.BookingDetail{
		ID:               booking.ID.String(),
		BookingReference: booking.BookingReference,
		ScheduleID:       booking.ScheduleID,
		PassengerCount:   booking.PassengerCount,
		TotalAmount:      booking.TotalAmount,
		Status:           booking.Status,
		JourneyDateFrom:  booking.JourneyDateFrom.Format("2006-01-02"),
		JourneyDateTo:    booking.JourneyDateTo.Format("2006-01-02"),
	}
	for _, passenger := range passengers {
		detail.Passengers = append(detail.Passengers, response.PassengerInfo{
			Name:       passenger.Name,
			Age:        passenger.Age,
			Gender:     passenger.Gender,
			SeatNumber: passenger.SeatNumber.String,
		})
	}
	return detail
}
