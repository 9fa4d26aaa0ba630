// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "gemmarket/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *playground.Validate
}

// New creates the validator wired into the echo server.
func New() echo.Validator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct against its validate tags and
// converts failures into the shared validation error.
func (v *requestValidator) Validate(input any) error {
	if err := v.validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error()).WrapMessage("request validation failed")
	}

	return nil
}
