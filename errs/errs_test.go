package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "code: must be 3 letters", NewValidationError("code", "must be 3 letters").Error())
	assert.Equal(t, "bad input", NewValidationError("", "bad input").Error())
}

func TestIsValidation(t *testing.T) {
	wrapped := fmt.Errorf("prompt: %w", NewValidationError("name", "is required"))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, IsValidation(nil))
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("country %s: %w", "USA", ErrAlreadyExists)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestCodeError(t *testing.T) {
	err := fmt.Errorf("delete: %w", ForCode("USA", ErrNotFound))

	assert.Equal(t, "delete: country USA: country not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "USA", CodeOf(err))
	assert.Equal(t, "", CodeOf(ErrNotFound))
	assert.NoError(t, ForCode("USA", nil))
}
