package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
)

func TestIncreaseDelta(t *testing.T) {
	t.Run("covered raise returns the delta", func(t *testing.T) {
		delta, err := increaseDelta(100, 150, 80)

		require.NoError(t, err)
		assert.InDelta(t, 50.0, delta, 0.001)
	})

	t.Run("uncovered raise reports the exact shortfall", func(t *testing.T) {
		_, err := increaseDelta(100, 200, 40)

		var insufficientErr *apperrors.InsufficientFundsError
		require.ErrorAs(t, err, &insufficientErr)
		assert.InDelta(t, 60.0, insufficientErr.Shortfall, 0.001)
	})

	t.Run("same budget is rejected", func(t *testing.T) {
		_, err := increaseDelta(100, 100, 500)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("decrease is rejected even with funds available", func(t *testing.T) {
		_, err := increaseDelta(100, 50, 500)

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}
