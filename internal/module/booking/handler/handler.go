package handler

import (
	"context"
	"fmt"

	"railway-booking/internal/module/booking/models/request"
	"railway-booking/internal/module/booking/usecases"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/helpers"
	"railway-booking/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type BookingHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req request.CreateBooking

	if err := c.BodyParser(&req); err != nil {
		h.Log.Error(c.Context(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(c, h.Log, errors.BadRequest("bad request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(c.Context(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(c, h.Log, errors.ValidationError(err.Error()))
	}

	userID := c.Locals("user_id").(int64)

	resp, err := h.Usecase.CreateBooking(c.Context(), userID, &req)
	if err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, resp, "booking created")
}

func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.RespError(c, h.Log, errors.BadRequest("invalid booking id"))
	}

	userID := c.Locals("user_id").(int64)

	resp, err := h.Usecase.CancelBooking(c.Context(), userID, bookingID)
	if err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, resp, "booking cancelled")
}

func (h *BookingHandler) ShowBookings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int64)

	resp, err := h.Usecase.ShowBookings(c.Context(), userID)
	if err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, resp, "bookings retrieved")
}

func (h *BookingHandler) FindBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.RespError(c, h.Log, errors.BadRequest("invalid booking id"))
	}

	userID := c.Locals("user_id").(int64)

	resp, err := h.Usecase.FindBooking(c.Context(), userID, bookingID)
	if err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, resp, "booking retrieved")
}

func (h *BookingHandler) UpdatePassengers(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.RespError(c, h.Log, errors.BadRequest("invalid booking id"))
	}

	var req request.UpdatePassengers

	if err := c.BodyParser(&req); err != nil {
		h.Log.Error(c.Context(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(c, h.Log, errors.BadRequest("bad request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(c.Context(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(c, h.Log, errors.ValidationError(err.Error()))
	}

	userID := c.Locals("user_id").(int64)

	if err := h.Usecase.UpdatePassengers(c.Context(), userID, bookingID, &req); err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, nil, "passengers updated")
}

// CompleteBookingTask is the asynq handler that closes out a booking after
// its journey window has passed.
func (h *BookingHandler) CompleteBookingTask(ctx context.Context, t *asynq.Task) error {
	var req request.CompleteBooking
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error unmarshal complete booking task: %v", err))
		return err
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error parse booking id %s: %v", req.BookingID, err))
		return err
	}

	return h.Usecase.CompleteBooking(ctx, bookingID)
}
