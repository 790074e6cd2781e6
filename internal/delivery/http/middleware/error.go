package middleware

import (
	"errors"
	"log"

	"job-assist/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is the error currency handlers return. The middleware at the top of
// the chain turns it into the response envelope; anything 5xx is masked.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		return response.Error(c, status, msg, data)
	}
}

// normalizeError maps any handler error onto (status, message, data). Internal
// causes never leak: every 5xx collapses to the generic message with no data.
func normalizeError(err error) (int, string, interface{}) {
	status := fiber.StatusInternalServerError
	msg := ""
	var data interface{}

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		msg = appErr.Message
		data = appErr.Data
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		msg = fiberErr.Message
	}

	if status <= 0 || status >= 500 {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}
	if msg == "" {
		msg = response.DefaultMessage(status)
	}
	return status, msg, data
}
