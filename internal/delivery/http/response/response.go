// Package response writes error responses in a uniform envelope and
// translates domain errors into HTTP statuses. Success responses carry
// the record itself and are written by the handlers directly.
package response

import (
	"fmt"
	"net/http"
	"strings"

	domainerrors "directory/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Error writes an error response in the standard envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError returns a 400 error for malformed request bodies
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// ValidationError flattens validator.ValidationErrors into one structured
// 400 response listing every failing field.
func ValidationError(c echo.Context, err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.ActualTag() {
		case "required":
			messages = append(messages, fmt.Sprintf("field %s is required", fieldErr.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("field %s must be a valid email address", fieldErr.Field()))
		case "uuid4", "uuid":
			messages = append(messages, fmt.Sprintf("field %s must be a valid UUID", fieldErr.Field()))
		case "datetime":
			messages = append(messages, fmt.Sprintf("field %s must be a date in YYYY-MM-DD format", fieldErr.Field()))
		default:
			messages = append(messages, fmt.Sprintf("field %s is invalid", fieldErr.Field()))
		}
	}

	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED",
		domainerrors.ErrValidationFailed.Message(), strings.Join(messages, ", "))
}

// HandleAppError handles application errors, converting domain errors to
// appropriate HTTP responses. Unknown errors propagate to the central
// error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
