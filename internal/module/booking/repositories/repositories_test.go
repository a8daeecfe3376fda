package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"railway-booking/internal/module/booking/models/entity"
	"railway-booking/internal/module/booking/repositories"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/google/uuid"
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

func TestFindBookingByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	bookingID := uuid.New()

	testCases := []struct {
		name            string
		rows            *sqlxmock.Rows
		queryError      error
		expectedError   error
		expectedBooking entity.Booking
	}{
		{
			name: "booking found",
			rows: sqlxmock.NewRows([]string{
				"id", "user_id", "schedule_id", "booking_reference", "passenger_count", "total_amount", "status", "journey_date_from", "journey_date_to", "created_at", "updated_at",
			}).AddRow(bookingID, int64(1), int64(10), "AB12CD34", 2, float64(1000), "confirmed", time.Time{}, time.Time{}, time.Time{}, sql.NullTime{}),
			expectedBooking: entity.Booking{
				ID:               bookingID,
				UserID:           1,
				ScheduleID:       10,
				BookingReference: "AB12CD34",
				PassengerCount:   2,
				TotalAmount:      1000,
				Status:           "confirmed",
			},
		},
		{
			name:            "booking not found",
			queryError:      sql.ErrNoRows,
			expectedError:   nil,
			expectedBooking: entity.Booking{},
		},
		{
			name:            "database error",
			queryError:      sql.ErrConnDone,
			expectedError:   errors.InternalServerError("error find booking by id"),
			expectedBooking: entity.Booking{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expect := mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE id = $1`)).
				WithArgs(bookingID)
			if tc.queryError != nil {
				expect.WillReturnError(tc.queryError)
			} else {
				expect.WillReturnRows(tc.rows)
			}

			booking, err := repo.FindBookingByID(context.Background(), bookingID)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectedBooking, booking)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateBooking(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	bookingID := uuid.New()
	booking := entity.Booking{
		ID:               bookingID,
		UserID:           1,
		ScheduleID:       10,
		BookingReference: "AB12CD34",
		PassengerCount:   1,
		TotalAmount:      500,
		Status:           "confirmed",
	}
	passengers := []entity.Passenger{
		{BookingID: bookingID, Name: "John Doe", Age: 30, Gender: "male"},
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO passengers").
			WithArgs(bookingID, "John Doe", 30, "male").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreateBooking(context.Background(), booking, passengers)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("passenger insert failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO passengers").
			WithArgs(bookingID, "John Doe", 30, "male").
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.CreateBooking(context.Background(), booking, passengers)
		assert.Equal(t, errors.InternalServerError("error insert passenger"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	bookingID := uuid.New()
	query := regexp.QuoteMeta(`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`)

	t.Run("transition applies", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("cancelled", bookingID, "confirmed").
			WillReturnResult(sqlxmock.NewResult(0, 1))

		err := repo.UpdateBookingStatus(context.Background(), bookingID, "confirmed", "cancelled")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale state is rejected", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs("cancelled", bookingID, "confirmed").
			WillReturnResult(sqlxmock.NewResult(0, 0))

		err := repo.UpdateBookingStatus(context.Background(), bookingID, "confirmed", "cancelled")
		assert.True(t, errors.HasCode(err, errors.CodeInvalidStateTransition))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindBookingsByUserID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock, nil, nil, nil)

	bookingID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlxmock.NewRows([]string{
			"id", "user_id", "schedule_id", "booking_reference", "passenger_count", "total_amount", "status", "journey_date_from", "journey_date_to", "created_at", "updated_at",
		}).AddRow(bookingID, int64(1), int64(10), "AB12CD34", 2, float64(1000), "confirmed", time.Time{}, time.Time{}, time.Time{}, sql.NullTime{}))

	bookings, err := repo.FindBookingsByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, bookingID, bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
