package models

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Error codes carried by AppError. Handlers map them to HTTP statuses.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the standardized API error body. Every failure, whatever
// its origin, reaches the client as {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AppError is a classified application error. Message is safe to show to
// clients; Err (if set) is the internal cause and is only logged.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Server error",
		Err:     err,
	}
}

// StatusForCode maps an AppError code to its HTTP status.
func StatusForCode(code string) int {
	switch code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes the standardized error body. Internal causes never
// cross the HTTP boundary: a wrapped cause is logged and the client sees the
// generic message only.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	message := "Server error"

	if appErr, ok := err.(*AppError); ok {
		message = appErr.Message
		if appErr.Err != nil {
			slog.ErrorContext(c.UserContext(), "request error",
				slog.String("code", appErr.Code),
				slog.String("error", appErr.Err.Error()),
			)
		}
	} else if status < fiber.StatusInternalServerError {
		message = err.Error()
	} else {
		slog.ErrorContext(c.UserContext(), "request error",
			slog.String("error", err.Error()),
		)
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
