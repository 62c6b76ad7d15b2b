// Package validator adapts go-playground/validator to echo's Validator
// interface, turning tag violations into the API's field-to-message errors.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "devnet/internal/domain/errors"
)

// fieldLabels maps request field names to the labels used in messages.
var fieldLabels = map[string]string{
	"name":      "Name",
	"email":     "Email",
	"password":  "Password",
	"password2": "Confirm Password",
}

type echoValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator used by the HTTP server.
func New() *echoValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so error payloads match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator. A failed validation returns an
// AppError carrying the full field-to-message mapping; callers propagate it
// to the error middleware untouched.
func (ev *echoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "input validation failed")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Keep the first violation per field.
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = message(fe)
		}
	}

	return domainerrors.NewValidationError(fields)
}

func message(fe validator.FieldError) string {
	label := fieldLabels[fe.Field()]
	if label == "" {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " field is required"
	case "email":
		return "Email is invalid"
	case "eqfield":
		return "Passwords must match"
	case "min", "max":
		if fe.Field() == "password" {
			return "Password must be at least 6 characters"
		}

		return label + " must be between 2 and 30 characters"
	default:
		return label + " is invalid"
	}
}
