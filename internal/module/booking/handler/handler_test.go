package handler_test

import (
	"testing"

	"railway-booking/internal/module/booking/handler"
	"railway-booking/internal/module/booking/mocks"
	"railway-booking/internal/module/booking/models/request"
	"railway-booking/internal/module/booking/models/response"
	"railway-booking/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	logMock       log.Logger
	app           *fiber.App
	validatorTest *validator.Validate
)

func setup() {
	ucm = &mocks.Usecase{}
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
	validatorTest = validator.New()
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	validatorTest = nil
	h = nil
	app = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("success", func(t *testing.T) {
		payload := request.CreateBooking{
			ScheduleID:    10,
			PaymentMethod: "WALLET",
			Passengers: []request.PassengerDetail{
				{Name: "John Doe", Age: 30, Gender: "male"},
			},
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(1))

		ucm.On("CreateBooking", ctx.Context(), int64(1), &payload).
			Return(response.BookingDetail{ID: uuid.NewString(), Status: "confirmed"}, nil)

		err := h.CreateBooking(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
	})

	t.Run("invalid payment method fails validation", func(t *testing.T) {
		payload := request.CreateBooking{
			ScheduleID:    10,
			PaymentMethod: "CASH",
			Passengers: []request.PassengerDetail{
				{Name: "John Doe", Age: 30, Gender: "male"},
			},
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(1))

		err := h.CreateBooking(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, ctx.Response().StatusCode())
	})

	t.Run("empty passenger list fails validation", func(t *testing.T) {
		payload := request.CreateBooking{
			ScheduleID:    10,
			PaymentMethod: "WALLET",
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(1))

		err := h.CreateBooking(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnprocessableEntity, ctx.Response().StatusCode())
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()

	t.Run("invalid booking id", func(t *testing.T) {
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings/not-a-uuid/cancel")
		ctx.Request().Header.SetMethod("POST")
		ctx.Locals("user_id", int64(1))

		err := h.CancelBooking(ctx)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
	})
}

func TestShowBookings(t *testing.T) {
	setup()
	defer teardown()

	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	ctx.Request().SetRequestURI("/api/v1/bookings")
	ctx.Request().Header.SetMethod("GET")
	ctx.Locals("user_id", int64(1))

	ucm.On("ShowBookings", ctx.Context(), int64(1)).
		Return([]response.BookingDetail{{ID: uuid.NewString(), Status: "confirmed"}}, nil)

	err := h.ShowBookings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, ctx.Response().StatusCode())
}
