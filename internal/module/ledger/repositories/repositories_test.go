package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"railway-booking/internal/module/ledger/models/entity"
	"railway-booking/internal/module/ledger/repositories"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
}

func sourceRows(id int64, balance float64, isActive bool) *sqlxmock.Rows {
	return sqlxmock.NewRows([]string{"id", "user_id", "kind", "label", "balance", "is_active", "created_at"}).
		AddRow(id, int64(1), entity.SourceKindWallet, "wallet", balance, isActive, time.Time{})
}

func TestDebitSql(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	lockQuery := regexp.QuoteMeta(`SELECT * FROM funding_sources WHERE id = $1 FOR UPDATE`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(int64(1)).WillReturnRows(sourceRows(1, 1000, true))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE funding_sources SET balance = balance - $1 WHERE id = $2`)).
			WithArgs(float64(400), int64(1)).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO transactions").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		transactionID, err := repo.Debit(context.Background(), 1, 400, "booking-1", "payment for booking")
		assert.NoError(t, err)
		assert.NotEmpty(t, transactionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient balance rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(int64(1)).WillReturnRows(sourceRows(1, 100, true))
		mock.ExpectRollback()

		_, err := repo.Debit(context.Background(), 1, 400, "booking-1", "payment for booking")
		assert.True(t, errors.HasCode(err, errors.CodeInsufficientBalance))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inactive source rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(int64(1)).WillReturnRows(sourceRows(1, 1000, false))
		mock.ExpectRollback()

		_, err := repo.Debit(context.Background(), 1, 400, "booking-1", "payment for booking")
		assert.True(t, errors.HasCode(err, errors.CodeSourceInactive))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown source", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		_, err := repo.Debit(context.Background(), 7, 400, "booking-1", "payment for booking")
		assert.True(t, errors.HasCode(err, errors.CodeSourceNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non positive amount never touches the db", func(t *testing.T) {
		_, err := repo.Debit(context.Background(), 1, -10, "booking-1", "payment for booking")
		assert.True(t, errors.HasCode(err, errors.CodeValidationError))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreditSql(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	lockQuery := regexp.QuoteMeta(`SELECT * FROM funding_sources WHERE id = $1 FOR UPDATE`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).WithArgs(int64(1)).WillReturnRows(sourceRows(1, 100, true))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE funding_sources SET balance = balance + $1 WHERE id = $2`)).
			WithArgs(float64(500), int64(1)).
			WillReturnResult(sqlxmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO transactions").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		transactionID, err := repo.Credit(context.Background(), 1, 500, "topup-1", "wallet top-up")
		assert.NoError(t, err)
		assert.NotEmpty(t, transactionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindCreditByReferenceSql(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	query := regexp.QuoteMeta(`SELECT * FROM transactions WHERE type = $1 AND reference_id = $2 LIMIT 1`)

	t.Run("existing credit", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entity.TransactionTypeCredit, "payment-1").
			WillReturnRows(sqlxmock.NewRows([]string{"id", "source_id", "type", "amount", "description", "reference_id", "created_at"}).
				AddRow("txn-1", int64(1), entity.TransactionTypeCredit, float64(300), "refund for booking", "payment-1", time.Time{}))

		transaction, err := repo.FindCreditByReference(context.Background(), "payment-1")
		assert.NoError(t, err)
		assert.Equal(t, "txn-1", transaction.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no credit yet", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(entity.TransactionTypeCredit, "payment-2").
			WillReturnError(sql.ErrNoRows)

		transaction, err := repo.FindCreditByReference(context.Background(), "payment-2")
		assert.NoError(t, err)
		assert.Empty(t, transaction.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeactivateSourceSql(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	query := regexp.QuoteMeta(`UPDATE funding_sources SET is_active = false WHERE id = $1 AND user_id = $2`)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), int64(1)).
			WillReturnResult(sqlxmock.NewResult(0, 1))

		assert.NoError(t, repo.DeactivateSource(context.Background(), 1, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.DeactivateSource(context.Background(), 2, 1)
		assert.True(t, errors.HasCode(err, errors.CodeSourceNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
