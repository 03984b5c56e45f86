package validator

import (
	"testing"

	domainerrors "github.com/Abhithakur7080/your-video/internal/domain/errors"
	"github.com/Abhithakur7080/your-video/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changePassword struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
	Email       string `json:"email" validate:"omitempty,email"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&changePassword{OldPassword: "old", NewPassword: "secret1"}))

	err := v.Validate(&changePassword{NewPassword: "abc", Email: "nope"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, []string{
		"oldPassword is required",
		"newPassword must be at least 6 characters",
		"email must be a valid email",
	}, appErr.Details())
}
