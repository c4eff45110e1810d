package validator

import (
	"strings"
	"testing"

	domainerrors "ember/internal/domain/errors"
	"ember/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidator_RegisterInputPasswordBounds(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "lower bound", password: strings.Repeat("a", 8), wantErr: false},
		{name: "upper bound", password: strings.Repeat("a", 100), wantErr: false},
		{name: "too short", password: strings.Repeat("a", 7), wantErr: true},
		{name: "too long", password: strings.Repeat("a", 101), wantErr: true},
		{name: "missing", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&usecase.RegisterInput{
				Email:    "user@example.com",
				Password: tt.password,
			})

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ChangePasswordInputBounds(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.ChangePasswordInput{
		CurrentPassword: "whatever",
		NewPassword:     strings.Repeat("b", 101),
	})
	assert.Error(t, err)

	err = v.Validate(&usecase.ChangePasswordInput{
		CurrentPassword: "whatever",
		NewPassword:     "pass1234",
	})
	assert.NoError(t, err)
}

func TestValidator_UpdateUserInputOptionalPassword(t *testing.T) {
	v := New()

	// Nil password is left unchanged and skips the bounds
	assert.NoError(t, v.Validate(&usecase.UpdateUserInput{UserID: 1}))

	short := "short"
	assert.Error(t, v.Validate(&usecase.UpdateUserInput{UserID: 1, Password: &short}))

	valid := "pass1234"
	assert.NoError(t, v.Validate(&usecase.UpdateUserInput{UserID: 1, Password: &valid}))
}
