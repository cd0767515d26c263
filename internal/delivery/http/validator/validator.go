// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "critique/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance so echo's c.Validate works on
// struct tags.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks struct tags and maps failures to the domain's validation
// error so the error handler renders a 400.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
