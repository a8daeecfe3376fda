package handler

import (
	"fmt"
	"strconv"

	"railway-booking/internal/module/payment/models/request"
	"railway-booking/internal/module/payment/usecases"
	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/helpers"
	"railway-booking/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PaymentHandler) GetWallet(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.GetWallet(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error get wallet: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get wallet")
}

func (h *PaymentHandler) TopUpWallet(ctx *fiber.Ctx) error {
	var req request.WalletTopUp
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.ValidationError(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.TopUpWallet(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error top up wallet: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success top up wallet")
}

func (h *PaymentHandler) AddSource(ctx *fiber.Ctx) error {
	var req request.AddFundingSource
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.ValidationError(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.AddSource(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error add funding source: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success add funding source")
}

func (h *PaymentHandler) ListSources(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ListSources(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error list funding sources: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list funding sources")
}

func (h *PaymentHandler) DeactivateSource(ctx *fiber.Ctx) error {
	sourceID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse source id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse source id"))
	}

	userID := ctx.Locals("user_id").(int64)

	if err := h.Usecase.DeactivateSource(ctx.UserContext(), userID, sourceID); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error deactivate funding source: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success deactivate funding source")
}

func (h *PaymentHandler) SourceTransactions(ctx *fiber.Ctx) error {
	sourceID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse source id: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse source id"))
	}

	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.SourceTransactions(ctx.UserContext(), userID, sourceID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error list source transactions: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list source transactions")
}

func (h *PaymentHandler) ListPayments(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ListPayments(ctx.UserContext(), userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error list payments: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list payments")
}
