package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "asset"}
		assert.Equal(t, "asset not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "asset"}
		err2 := &NotFoundError{Entity: "asset"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "asset"}
		err2 := &NotFoundError{Entity: "allocation"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrAllocationNotFound, ErrAllocationNotFound))
		assert.False(t, errors.Is(ErrAllocationNotFound, ErrAssetNotFound))
	})

	t.Run("IsNotFound helper sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to approve allocation: %w", ErrAssetNotFound)
		assert.True(t, IsNotFound(wrapped))
		assert.True(t, errors.Is(wrapped, ErrAssetNotFound))
		assert.False(t, IsNotFound(ErrAllocationApproved))
	})
}

func TestInvalidArgumentError(t *testing.T) {
	t.Run("Error message with detail", func(t *testing.T) {
		err := NewInvalidArgumentError("allocation ID", "must be a UUID")
		assert.Equal(t, "invalid allocation ID: must be a UUID", err.Error())
	})

	t.Run("Error message without detail", func(t *testing.T) {
		err := &InvalidArgumentError{Argument: "user ID"}
		assert.Equal(t, "invalid user ID", err.Error())
	})

	t.Run("IsInvalidArgument helper", func(t *testing.T) {
		assert.True(t, IsInvalidArgument(NewInvalidArgumentError("id", "")))
		assert.False(t, IsInvalidArgument(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "allocatedTo", Message: "user does not exist"}
		assert.Equal(t, "validation error: allocatedTo - user does not exist", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("asset", "required")))
		assert.True(t, IsValidation(ErrInvalidTimeRange))
		assert.False(t, IsValidation(ErrAssetNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "allocation conflict: allocation has already been approved", ErrAllocationApproved.Error())
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		wrapped := fmt.Errorf("reject: %w", ErrAllocationApproved)
		assert.True(t, IsConflict(wrapped))
		assert.True(t, IsConflict(NewConflictError("allocation", "busy")))
		assert.False(t, IsConflict(ErrAllocationNotFound))
	})
}

func TestAuthenticationAndConfigurationErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(NewAuthenticationError("token expired")))
	assert.False(t, IsAuthentication(ErrUserNotFound))

	assert.True(t, IsConfiguration(NewConfigurationError("JWT secret is required")))
	assert.False(t, IsConfiguration(ErrInvalidCredentials))
}
