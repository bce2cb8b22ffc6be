// FILE: internal/pkg/serverutils/api_error.go
package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ApiError is a domain error carrying the HTTP status it should map to.
// Services return these; the error middleware turns them into the JSON
// envelope. Anything else becomes a 500 with a generic message.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

// Common constructors matching the error taxonomy: validation errors
// are rejected before any network call, backend errors map to 502 with
// a fixed user-facing message, missing-data errors map to 404.
func NewValidationError(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func NewBackendError(message string) *ApiError {
	return NewApiError(fiber.StatusBadGateway, message)
}

func NewNotFoundError(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

// ErrorHandlerMiddleware converts returned errors into the error
// envelope. No error is fatal: every failure leaves the caller with a
// well-formed JSON response and the service in its previous state.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Code).JSON(ErrorResponse(apiErr.Code, apiErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
