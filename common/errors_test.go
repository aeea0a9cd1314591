package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {

	t.Run("Validation", func(t *testing.T) {
		err := NewValidationError("amount below minimum")
		assert.True(t, IsValidation(err))
		assert.False(t, IsTransient(err))
		assert.Equal(t, "validation: amount below minimum", err.Error())
	})

	t.Run("State Conflict", func(t *testing.T) {
		err := NewStateConflictError("already approved")
		assert.True(t, IsStateConflict(err))
	})

	t.Run("Transient", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewTransientError("rpc unavailable", cause)
		assert.True(t, IsTransient(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Permanent", func(t *testing.T) {
		err := NewPermanentError(CodeContractPaused, "token contract is paused")
		assert.True(t, IsPermanent(err))
		assert.Equal(t, CodeContractPaused, ErrorCode(err))
		assert.Equal(t, "permanent (contract_paused): token contract is paused", err.Error())
	})
}

func TestErrorKindsWrapped(t *testing.T) {

	err := fmt.Errorf("mint failed: %w", NewPermanentError(CodeGasStarved, "minter balance too low"))

	assert.True(t, IsPermanent(err))
	assert.True(t, IsGasStarved(err))
	assert.Equal(t, CodeGasStarved, ErrorCode(err))
}

func TestErrorKindsNonTagged(t *testing.T) {

	err := errors.New("plain error")

	assert.False(t, IsValidation(err))
	assert.False(t, IsStateConflict(err))
	assert.False(t, IsTransient(err))
	assert.False(t, IsPermanent(err))
	assert.False(t, IsGasStarved(err))
	assert.Equal(t, "", ErrorCode(err))
}
