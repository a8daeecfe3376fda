package handler

import (
	"fmt"
	"strconv"

	"railway-booking/internal/module/refund/models/request"
	"railway-booking/internal/module/refund/usecases"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/helpers"
	"railway-booking/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type RefundHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *RefundHandler) PendingRequests(c *fiber.Ctx) error {
	resp, err := h.Usecase.PendingRequests(c.Context())
	if err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, resp, "pending refund requests retrieved")
}

func (h *RefundHandler) ApproveRequest(c *fiber.Ctx) error {
	requestID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(c, h.Log, errors.BadRequest("invalid refund request id"))
	}

	adminID := c.Locals("user_id").(int64)

	resp, err := h.Usecase.Approve(c.Context(), adminID, requestID)
	if err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, resp, "refund request approved")
}

func (h *RefundHandler) RejectRequest(c *fiber.Ctx) error {
	requestID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.RespError(c, h.Log, errors.BadRequest("invalid refund request id"))
	}

	var req request.RejectRefund

	if err := c.BodyParser(&req); err != nil {
		h.Log.Error(c.Context(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(c, h.Log, errors.BadRequest("bad request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(c.Context(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(c, h.Log, errors.ValidationError(err.Error()))
	}

	adminID := c.Locals("user_id").(int64)

	resp, err := h.Usecase.Reject(c.Context(), adminID, requestID, &req)
	if err != nil {
		return helpers.RespError(c, h.Log, err)
	}

	return helpers.RespSuccess(c, h.Log, resp, "refund request rejected")
}
