package validator

import (
	"testing"

	domainerrors "devnet/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name      string `json:"name" validate:"required,min=2,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=30"`
	Password2 string `json:"password2" validate:"required,eqfield=Password"`
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:      "A B",
		Email:     "a@x.com",
		Password:  "secret1",
		Password2: "secret1",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldMessages(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		payload registerPayload
		field   string
		message string
	}{
		{
			name:    "missing email",
			payload: registerPayload{Name: "A B", Password: "secret1", Password2: "secret1"},
			field:   "email",
			message: "Email field is required",
		},
		{
			name:    "malformed email",
			payload: registerPayload{Name: "A B", Email: "not-an-email", Password: "secret1", Password2: "secret1"},
			field:   "email",
			message: "Email is invalid",
		},
		{
			name:    "short name",
			payload: registerPayload{Name: "A", Email: "a@x.com", Password: "secret1", Password2: "secret1"},
			field:   "name",
			message: "Name must be between 2 and 30 characters",
		},
		{
			name:    "short password",
			payload: registerPayload{Name: "A B", Email: "a@x.com", Password: "abc", Password2: "abc"},
			field:   "password",
			message: "Password must be at least 6 characters",
		},
		{
			name:    "mismatched confirmation",
			payload: registerPayload{Name: "A B", Email: "a@x.com", Password: "secret1", Password2: "secret2"},
			field:   "password2",
			message: "Passwords must match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.payload)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.message, appErr.Fields()[tt.field])
		})
	}
}
