// Package validator plugs go-playground/validator into Echo's binding flow.
package validator

import (
	domainerrors "clipstream/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator implements echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used for request structs.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct's validation tags and maps failures to the
// application's invalid-argument error so the error handler emits a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	return nil
}
