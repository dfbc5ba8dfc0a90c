// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"net/http"

	validatorpkg "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator wraps a validator instance for use as echo.Validator.
type Validator struct {
	validate *validatorpkg.Validate
}

// New creates a request validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{
		validate: validatorpkg.New(validatorpkg.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Validation failures surface as 400s.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
