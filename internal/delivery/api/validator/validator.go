// Package validator wires go-playground/validator into Echo's request validation.
package validator

import (
	"fmt"

	playgroundvalidator "github.com/go-playground/validator/v10"

	domainerrors "sip/internal/domain/errors"
	"sip/internal/errors"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates a validator instance with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct and maps failures onto the
// domain validation error so the delivery layer renders them as a
// per-field list.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playgroundvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	fields := make([]domainerrors.FieldError, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldMessage(fieldErr),
		})
	}

	return domainerrors.NewValidationError(fields)
}

func fieldMessage(fieldErr playgroundvalidator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fieldErr.Param())
	default:
		return fmt.Sprintf("failed the '%s' rule", fieldErr.Tag())
	}
}
