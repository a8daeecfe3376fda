package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error codes returned in the response envelope. Handlers and usecases
// branch on these, never on message text.
const (
	CodeBadRequest             = "BAD_REQUEST"
	CodeValidationError        = "VALIDATION_ERROR"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeConflict               = "CONFLICT"
	CodeInternalServerError    = "INTERNAL_SERVER_ERROR"
	CodeInsufficientSeats      = "INSUFFICIENT_SEATS"
	CodeInsufficientBalance    = "INSUFFICIENT_BALANCE"
	CodeSourceInactive         = "SOURCE_INACTIVE"
	CodeSourceNotFound         = "SOURCE_NOT_FOUND"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
	CodeAlreadyCancelled       = "ALREADY_CANCELLED"
)

type AppError struct {
	HttpStatus int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(httpStatus int, code, message string) *AppError {
	return &AppError{
		HttpStatus: httpStatus,
		Code:       code,
		Message:    message,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, CodeBadRequest, message)
}

func ValidationError(message string) *AppError {
	return New(http.StatusUnprocessableEntity, CodeValidationError, message)
}

func UnauthorizedError(message string) *AppError {
	return New(http.StatusUnauthorized, CodeUnauthorized, message)
}

func ForbiddenError(message string) *AppError {
	return New(http.StatusForbidden, CodeForbidden, message)
}

func NotFoundError(message string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, message)
}

func Conflict(message string) *AppError {
	return New(http.StatusConflict, CodeConflict, message)
}

func InternalServerError(message string) *AppError {
	return New(http.StatusInternalServerError, CodeInternalServerError, message)
}

func InsufficientSeats(available, requested int) *AppError {
	return New(http.StatusConflict, CodeInsufficientSeats,
		fmt.Sprintf("insufficient seats. available: %d, requested: %d", available, requested))
}

func InsufficientBalance(message string) *AppError {
	return New(http.StatusBadRequest, CodeInsufficientBalance, message)
}

func SourceInactive(message string) *AppError {
	return New(http.StatusBadRequest, CodeSourceInactive, message)
}

func SourceNotFound(message string) *AppError {
	return New(http.StatusNotFound, CodeSourceNotFound, message)
}

func InvalidStateTransition(message string) *AppError {
	return New(http.StatusConflict, CodeInvalidStateTransition, message)
}

func AlreadyCancelled(message string) *AppError {
	return New(http.StatusConflict, CodeAlreadyCancelled, message)
}

// HasCode reports whether err is an *AppError carrying the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
