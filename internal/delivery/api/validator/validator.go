// Package validator adapts the shared struct validator to echo.
package validator

import (
	"nearby/internal/infra/validate"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validate.New()}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}
