package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"railway-booking/config"
	"railway-booking/internal/module/booking/models/entity"
	"railway-booking/internal/module/booking/models/response"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	circuit "github.com/rubyist/circuitbreaker"
)

type repositories struct {
	db         *sqlx.DB
	log        log.Logger
	httpClient *circuit.HTTPClient
	cfgUser    *config.UserServiceConfig
	cfgCatalog *config.CatalogServiceConfig
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	GetScheduleDetail(ctx context.Context, scheduleID int64) (response.ScheduleDetail, error)
	// db
	CreateBooking(ctx context.Context, booking entity.Booking, passengers []entity.Passenger) error
	FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error)
	FindPassengersByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Passenger, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, fromStatus, toStatus string) error
	UpdatePassengers(ctx context.Context, bookingID uuid.UUID, passengers []entity.Passenger) error
}

func New(db *sqlx.DB, log log.Logger, httpClient *circuit.HTTPClient, cfgUser *config.UserServiceConfig, cfgCatalog *config.CatalogServiceConfig) Repositories {
	return &repositories{
		db:         db,
		log:        log,
		httpClient: httpClient,
		cfgUser:    cfgUser,
		cfgCatalog: cfgCatalog,
	}
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUser.Host, r.cfgUser.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	return respData, nil
}

// GetScheduleDetail implements Repositories. Point-in-time read from the
// catalog service; fare and capacity are captured here, not subscribed to.
func (r *repositories) GetScheduleDetail(ctx context.Context, scheduleID int64) (response.ScheduleDetail, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/schedules/%d", r.cfgCatalog.Host, r.cfgCatalog.Port, scheduleID)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.ScheduleDetail{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == 404 {
		return response.ScheduleDetail{}, errors.NotFoundError("schedule not found")
	}
	if resp.StatusCode != 200 {
		r.log.Error(ctx, "error get schedule detail", resp.StatusCode)
		return response.ScheduleDetail{}, errors.InternalServerError("error get schedule detail")
	}

	var respData response.ScheduleDetail
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.ScheduleDetail{}, err
	}

	return respData, nil
}

// CreateBooking implements Repositories. Booking and its passengers are
// inserted in one transaction; a booking row never exists without them.
func (r *repositories) CreateBooking(ctx context.Context, booking entity.Booking, passengers []entity.Passenger) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, user_id, schedule_id, booking_reference, passenger_count, total_amount, status, journey_date_from, journey_date_to)
		VALUES (:id, :user_id, :schedule_id, :booking_reference, :passenger_count, :total_amount, :status, :journey_date_from, :journey_date_to)
	`, booking)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error insert booking")
	}

	for _, passenger := range passengers {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO passengers (booking_id, name, age, gender) VALUES ($1, $2, $3, $4)
		`, booking.ID, passenger.Name, passenger.Age, passenger.Gender)
		if err != nil {
			tx.Rollback()
			return errors.InternalServerError("error insert passenger")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID uuid.UUID) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, nil
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	var bookings []entity.Booking
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// FindPassengersByBookingID implements Repositories.
func (r *repositories) FindPassengersByBookingID(ctx context.Context, bookingID uuid.UUID) ([]entity.Passenger, error) {
	query := `SELECT * FROM passengers WHERE booking_id = $1 ORDER BY id`
	var passengers []entity.Passenger
	err := r.db.SelectContext(ctx, &passengers, query, bookingID)
	if err != nil {
		return nil, errors.InternalServerError("error find passengers by booking id")
	}
	return passengers, nil
}

// UpdateBookingStatus implements Repositories. The fromStatus guard makes
// the transition conditional, so two concurrent cancellations cannot both
// observe a confirmed booking.
func (r *repositories) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, fromStatus, toStatus string) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`
	result, err := r.db.ExecContext(ctx, query, toStatus, bookingID, fromStatus)
	if err != nil {
		return errors.InternalServerError("error update booking status")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error update booking status")
	}
	if rows == 0 {
		return errors.InvalidStateTransition(fmt.Sprintf("booking is not in %s state", fromStatus))
	}
	return nil
}

// UpdatePassengers implements Repositories. Replaces passenger details
// in place; the count is fixed at booking time and never changes here.
func (r *repositories) UpdatePassengers(ctx context.Context, bookingID uuid.UUID, passengers []entity.Passenger) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.InternalServerError("error starting transaction")
	}

	var existing []entity.Passenger
	err = tx.SelectContext(ctx, &existing, `SELECT * FROM passengers WHERE booking_id = $1 ORDER BY id FOR UPDATE`, bookingID)
	if err != nil {
		tx.Rollback()
		return errors.InternalServerError("error locking passengers")
	}
	if len(passengers) != len(existing) {
		tx.Rollback()
		return errors.ValidationError("passenger count cannot change")
	}

	for i, passenger := range passengers {
		_, err = tx.ExecContext(ctx, `UPDATE passengers SET name = $1, age = $2, gender = $3 WHERE id = $4`,
			passenger.Name, passenger.Age, passenger.Gender, existing[i].ID)
		if err != nil {
			tx.Rollback()
			return errors.InternalServerError("error update passenger")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.InternalServerError("error committing transaction")
	}

	return nil
}
