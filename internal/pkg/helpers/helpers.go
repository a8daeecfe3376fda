package helpers

import (
	stderrors "errors"
	"fmt"

	"railway-booking/internal/pkg/errors"
	"railway-booking/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func RespSuccess(ctx *fiber.Ctx, logger log.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func RespError(ctx *fiber.Ctx, logger log.Logger, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return ctx.Status(appErr.HttpStatus).JSON(Response{
			Success: false,
			Error: &ErrorBody{
				Code:    appErr.Code,
				Message: appErr.Message,
			},
		})
	}

	logger.Error(ctx.UserContext(), fmt.Sprintf("unhandled error: %v", err))
	return ctx.Status(fiber.StatusInternalServerError).JSON(Response{
		Success: false,
		Error: &ErrorBody{
			Code:    errors.CodeInternalServerError,
			Message: "internal server error",
		},
	})
}
