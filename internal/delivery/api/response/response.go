package response

import (
	"net/http"

	domainerrors "sip/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Mobile clients predate this service and expect its exact response
// shapes: failures carry {"status":"failed","message":...} and the sign-in
// flow reports {"success":false,...} instead. Keep these stable.

// FailureResponse is the standard error body.
type FailureResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// AuthFailureResponse is the body used by the sign-in flow on bad credentials.
type AuthFailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationFailureResponse is the failure body for rejected request
// payloads, listing each failed field.
type ValidationFailureResponse struct {
	Status  string                    `json:"status"`
	Message string                    `json:"message"`
	Errors  []domainerrors.FieldError `json:"errors"`
}

// Success returns a successful response with the given payload as-is.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Failed returns an error response in the standard failure shape.
func Failed(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, FailureResponse{
		Status:  "failed",
		Message: message,
	})
}

// AuthFailed returns the sign-in failure shape.
func AuthFailed(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, AuthFailureResponse{
		Success: false,
		Message: message,
	})
}

// ValidationFailed returns a 400 carrying the per-field validation errors.
func ValidationFailed(c echo.Context, message string, fields []domainerrors.FieldError) error {
	return c.JSON(http.StatusBadRequest, ValidationFailureResponse{
		Status:  "failed",
		Message: message,
		Errors:  fields,
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, message string) error {
	return Failed(c, http.StatusBadRequest, message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Failed(c, http.StatusUnauthorized, message)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, message string) error {
	return Failed(c, http.StatusNotFound, message)
}

// InternalServerError returns a 500 error. Internal details never reach the client.
func InternalServerError(c echo.Context) error {
	return Failed(c, http.StatusInternalServerError, "Server error")
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		return ValidationFailed(c, validationErr.Message(), validationErr.FieldErrors())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			return InternalServerError(c)
		}
		if appErr.ErrorCode() == domainerrors.ErrInvalidCredentials.ErrorCode() {
			return AuthFailed(c, appErr.HTTPCode(), appErr.Message())
		}

		return Failed(c, appErr.HTTPCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
