package repositories

import (
	"context"
	"database/sql"

	"railway-booking/internal/module/payment/models/entity"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	CreatePayment(ctx context.Context, payment entity.Payment) error
	FindPaymentByID(ctx context.Context, paymentID uuid.UUID) (entity.Payment, error)
	FindPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Payment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status string) error
	FindPaymentsByUserID(ctx context.Context, userID int64) ([]entity.Payment, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreatePayment implements Repositories.
func (r *repositories) CreatePayment(ctx context.Context, payment entity.Payment) error {
	query := `INSERT INTO payments (id, booking_id, user_id, source_id, amount, method, status, transaction_id)
		VALUES (:id, :booking_id, :user_id, :source_id, :amount, :method, :status, :transaction_id)`
	_, err := r.db.NamedExecContext(ctx, query, payment)
	if err != nil {
		return errors.InternalServerError("error create payment")
	}
	return nil
}

// FindPaymentByID implements Repositories.
func (r *repositories) FindPaymentByID(ctx context.Context, paymentID uuid.UUID) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, paymentID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by id")
	}
	return payment, nil
}

// FindPaymentByBookingID implements Repositories.
func (r *repositories) FindPaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE booking_id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, nil
	}
	if err != nil {
		return entity.Payment{}, errors.InternalServerError("error find payment by booking id")
	}
	return payment, nil
}

// UpdatePaymentStatus implements Repositories.
func (r *repositories) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status string) error {
	query := `UPDATE payments SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, paymentID)
	if err != nil {
		return errors.InternalServerError("error update payment status")
	}
	return nil
}

// FindPaymentsByUserID implements Repositories.
func (r *repositories) FindPaymentsByUserID(ctx context.Context, userID int64) ([]entity.Payment, error) {
	query := `SELECT * FROM payments WHERE user_id = $1 ORDER BY created_at DESC`
	var payments []entity.Payment
	err := r.db.SelectContext(ctx, &payments, query, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find payments by user id")
	}
	return payments, nil
}
