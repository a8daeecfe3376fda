package repositories

import (
	"context"
	"database/sql"

	"railway-booking/internal/module/refund/models/entity"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	CreateRequest(ctx context.Context, request entity.RefundRequest) (entity.RefundRequest, error)
	FindRequestByID(ctx context.Context, requestID int64) (entity.RefundRequest, error)
	FindPendingRequests(ctx context.Context) ([]entity.RefundRequest, error)
	ResolveRequest(ctx context.Context, requestID int64, status string, adminID int64, reason string) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreateRequest implements Repositories. At most one pending request per
// booking: a second cancellation attempt must not queue a second refund.
func (r *repositories) CreateRequest(ctx context.Context, request entity.RefundRequest) (entity.RefundRequest, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.RefundRequest{}, errors.InternalServerError("error starting transaction")
	}

	var existing entity.RefundRequest
	err = tx.GetContext(ctx, &existing,
		`SELECT * FROM refund_requests WHERE booking_id = $1 AND status = $2 FOR UPDATE`,
		request.BookingID, entity.RefundStatusPending)
	if err != nil && err != sql.ErrNoRows {
		tx.Rollback()
		return entity.RefundRequest{}, errors.InternalServerError("error locking refund requests")
	}
	if err == nil {
		tx.Rollback()
		return entity.RefundRequest{}, errors.Conflict("a pending refund request already exists for this booking")
	}

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO refund_requests (booking_id, user_id, amount, status) VALUES ($1, $2, $3, $4) RETURNING id, requested_at`,
		request.BookingID, request.UserID, request.Amount, entity.RefundStatusPending).
		Scan(&request.ID, &request.RequestedAt)
	if err != nil {
		tx.Rollback()
		return entity.RefundRequest{}, errors.InternalServerError("error create refund request")
	}
	request.Status = entity.RefundStatusPending

	if err := tx.Commit(); err != nil {
		return entity.RefundRequest{}, errors.InternalServerError("error committing transaction")
	}

	return request, nil
}

// FindRequestByID implements Repositories.
func (r *repositories) FindRequestByID(ctx context.Context, requestID int64) (entity.RefundRequest, error) {
	query := `SELECT * FROM refund_requests WHERE id = $1`
	var request entity.RefundRequest
	err := r.db.GetContext(ctx, &request, query, requestID)
	if err == sql.ErrNoRows {
		return entity.RefundRequest{}, nil
	}
	if err != nil {
		return entity.RefundRequest{}, errors.InternalServerError("error find refund request by id")
	}
	return request, nil
}

// FindPendingRequests implements Repositories.
func (r *repositories) FindPendingRequests(ctx context.Context) ([]entity.RefundRequest, error) {
	query := `SELECT * FROM refund_requests WHERE status = $1 ORDER BY requested_at`
	var requests []entity.RefundRequest
	err := r.db.SelectContext(ctx, &requests, query, entity.RefundStatusPending)
	if err != nil {
		return nil, errors.InternalServerError("error find pending refund requests")
	}
	return requests, nil
}

// ResolveRequest implements Repositories. The pending guard in the WHERE
// clause rejects a second resolution of the same request.
func (r *repositories) ResolveRequest(ctx context.Context, requestID int64, status string, adminID int64, reason string) error {
	query := `UPDATE refund_requests
		SET status = $1, admin_id = $2, rejection_reason = NULLIF($3, ''), resolved_at = NOW()
		WHERE id = $4 AND status = $5`
	result, err := r.db.ExecContext(ctx, query, status, adminID, reason, requestID, entity.RefundStatusPending)
	if err != nil {
		return errors.InternalServerError("error resolve refund request")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error resolve refund request")
	}
	if rows == 0 {
		return errors.InvalidStateTransition("refund request is not pending")
	}
	return nil
}
