// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator validates request structs against their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator installed on the Echo server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. The raw validator error is returned so
// handlers can surface the offending fields.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
