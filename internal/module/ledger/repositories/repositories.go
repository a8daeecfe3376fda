package repositories

import (
	"context"
	"database/sql"

	"railway-booking/internal/module/ledger/models/entity"
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
	CreateSource(ctx context.Context, source entity.FundingSource) (entity.FundingSource, error)
	FindSource(ctx context.Context, sourceID int64) (entity.FundingSource, error)
	FindSourceForUser(ctx context.Context, userID int64, kind string) (entity.FundingSource, error)
	FindSourcesByUser(ctx context.Context, userID int64) ([]entity.FundingSource, error)
	DeactivateSource(ctx context.Context, userID int64, sourceID int64) error
	Debit(ctx context.Context, sourceID int64, amount float64, referenceID string, description string) (string, error)
	Credit(ctx context.Context, sourceID int64, amount float64, referenceID string, description string) (string, error)
	BalanceOf(ctx context.Context, sourceID int64) (float64, error)
	TransactionsOf(ctx context.Context, sourceID int64) ([]entity.Transaction, error)
	FindCreditByReference(ctx context.Context, referenceID string) (entity.Transaction, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreateSource implements Repositories.
func (r *repositories) CreateSource(ctx context.Context, source entity.FundingSource) (entity.FundingSource, error) {
	query := `INSERT INTO funding_sources (user_id, kind, label, balance, is_active)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.db.QueryRowxContext(ctx, query, source.UserID, source.Kind, source.Label, source.Balance, source.IsActive).
		Scan(&source.ID, &source.CreatedAt)
	if err != nil {
		return entity.FundingSource{}, errors.InternalServerError("error create funding source")
	}
	return source, nil
}

// FindSource implements Repositories.
func (r *repositories) FindSource(ctx context.Context, sourceID int64) (entity.FundingSource, error) {
	query := `SELECT * FROM funding_sources WHERE id = $1`
	var source entity.FundingSource
	err := r.db.GetContext(ctx, &source, query, sourceID)
	if err == sql.ErrNoRows {
		return entity.FundingSource{}, nil
	}
	if err != nil {
		return entity.FundingSource{}, errors.InternalServerError("error find funding source")
	}
	return source, nil
}

// FindSourceForUser implements Repositories.
func (r *repositories) FindSourceForUser(ctx context.Context, userID int64, kind string) (entity.FundingSource, error) {
	query := `SELECT * FROM funding_sources WHERE user_id = $1 AND kind = $2 ORDER BY created_at LIMIT 1`
	var source entity.FundingSource
	err := r.db.GetContext(ctx, &source, query, userID, kind)
	if err == sql.ErrNoRows {
		return entity.FundingSource{}, nil
	}
	if err != nil {
		return entity.FundingSource{}, errors.InternalServerError("error find funding source for user")
	}
	return source, nil
}

// FindSourcesByUser implements Repositories.
func (r *repositories) FindSourcesByUser(ctx context.Context, userID int64) ([]entity.FundingSource, error) {
	query := `SELECT * FROM funding_sources WHERE user_id = $1 ORDER BY created_at`
	var sources []entity.FundingSource
	err := r.db.SelectContext(ctx, &sources, query, userID)
	if err != nil {
		return nil, errors.InternalServerError("error find funding sources by user")
	}
	return sources, nil
}

// DeactivateSource implements Repositories.
func (r *repositories) DeactivateSource(ctx context.Context, userID int64, sourceID int64) error {
	query := `UPDATE funding_sources SET is_active = false WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, sourceID, userID)
	if err != nil {
		return errors.InternalServerError("error deactivate funding source")
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.InternalServerError("error deactivate funding source")
	}
	if rows == 0 {
		return errors.SourceNotFound("funding source not found")
	}
	return nil
}

// Debit implements Repositories. The source row is locked for the duration
// of the check-and-decrement so concurrent debits serialize per source.
func (r *repositories) Debit(ctx context.Context, sourceID int64, amount float64, referenceID string, description string) (string, error) {
	if amount <= 0 {
		return "", errors.ValidationError("debit amount must be positive")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", errors.InternalServerError("error starting transaction")
	}

	var source entity.FundingSource
	err = tx.GetContext(ctx, &source, `SELECT * FROM funding_sources WHERE id = $1 FOR UPDATE`, sourceID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return "", errors.SourceNotFound("funding source not found")
	}
	if err != nil {
		tx.Rollback()
		return "", errors.InternalServerError("error locking funding source")
	}

	if !source.IsActive {
		tx.Rollback()
		return "", errors.SourceInactive("funding source is inactive")
	}
	if source.Balance < amount {
		tx.Rollback()
		return "", errors.InsufficientBalance("insufficient balance on funding source")
	}

	transactionID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `UPDATE funding_sources SET balance = balance - $1 WHERE id = $2`, amount, sourceID)
	if err != nil {
		tx.Rollback()
		return "", errors.InternalServerError("error debit funding source")
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, source_id, type, amount, description, reference_id) VALUES ($1, $2, $3, $4, $5, $6)`,
		transactionID, sourceID, entity.TransactionTypeDebit, amount, description, referenceID)
	if err != nil {
		tx.Rollback()
		return "", errors.InternalServerError("error append debit transaction")
	}

	if err := tx.Commit(); err != nil {
		return "", errors.InternalServerError("error committing transaction")
	}

	return transactionID, nil
}

// Credit implements Repositories.
func (r *repositories) Credit(ctx context.Context, sourceID int64, amount float64, referenceID string, description string) (string, error) {
	if amount <= 0 {
		return "", errors.ValidationError("credit amount must be positive")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", errors.InternalServerError("error starting transaction")
	}

	var source entity.FundingSource
	err = tx.GetContext(ctx, &source, `SELECT * FROM funding_sources WHERE id = $1 FOR UPDATE`, sourceID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return "", errors.SourceNotFound("funding source not found")
	}
	if err != nil {
		tx.Rollback()
		return "", errors.InternalServerError("error locking funding source")
	}

	if !source.IsActive {
		tx.Rollback()
		return "", errors.SourceInactive("funding source is inactive")
	}

	transactionID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `UPDATE funding_sources SET balance = balance + $1 WHERE id = $2`, amount, sourceID)
	if err != nil {
		tx.Rollback()
		return "", errors.InternalServerError("error credit funding source")
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, source_id, type, amount, description, reference_id) VALUES ($1, $2, $3, $4, $5, $6)`,
		transactionID, sourceID, entity.TransactionTypeCredit, amount, description, referenceID)
	if err != nil {
		tx.Rollback()
		return "", errors.InternalServerError("error append credit transaction")
	}

	if err := tx.Commit(); err != nil {
		return "", errors.InternalServerError("error committing transaction")
	}

	return transactionID, nil
}

// BalanceOf implements Repositories.
func (r *repositories) BalanceOf(ctx context.Context, sourceID int64) (float64, error) {
	query := `SELECT balance FROM funding_sources WHERE id = $1`
	var balance float64
	err := r.db.GetContext(ctx, &balance, query, sourceID)
	if err == sql.ErrNoRows {
		return 0, errors.SourceNotFound("funding source not found")
	}
	if err != nil {
		return 0, errors.InternalServerError("error read balance")
	}
	return balance, nil
}

// TransactionsOf implements Repositories.
func (r *repositories) TransactionsOf(ctx context.Context, sourceID int64) ([]entity.Transaction, error) {
	query := `SELECT * FROM transactions WHERE source_id = $1 ORDER BY created_at DESC`
	var transactions []entity.Transaction
	err := r.db.SelectContext(ctx, &transactions, query, sourceID)
	if err != nil {
		return nil, errors.InternalServerError("error find transactions by source")
	}
	return transactions, nil
}

// FindCreditByReference implements Repositories. Used as the idempotency
// probe before refunds: a credit already referencing the payment means the
// refund happened.
func (r *repositories) FindCreditByReference(ctx context.Context, referenceID string) (entity.Transaction, error) {
	query := `SELECT * FROM transactions WHERE type = $1 AND reference_id = $2 LIMIT 1`
	var transaction entity.Transaction
	err := r.db.GetContext(ctx, &transaction, query, entity.TransactionTypeCredit, referenceID)
	if err == sql.ErrNoRows {
		return entity.Transaction{}, nil
	}
	if err != nil {
		return entity.Transaction{}, errors.InternalServerError("error find credit by reference")
	}
	return transaction, nil
}
