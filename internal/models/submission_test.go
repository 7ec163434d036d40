package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
)

func TestSubmissionEnsureReviewable(t *testing.T) {
	assert.NoError(t, (&Submission{Status: SubmissionStatusPending}).EnsureReviewable())
	assert.ErrorIs(t, (&Submission{Status: SubmissionStatusApproved}).EnsureReviewable(), apperrors.ErrAlreadyReviewed)
	assert.ErrorIs(t, (&Submission{Status: SubmissionStatusRejected}).EnsureReviewable(), apperrors.ErrAlreadyReviewed)
}

func TestSubmissionBeforeCreate(t *testing.T) {
	t.Run("generates id when unset", func(t *testing.T) {
		s := &Submission{}

		assert.NoError(t, s.BeforeCreate(&gorm.DB{}))
		assert.NotEmpty(t, s.ID)
	})

	t.Run("keeps existing id", func(t *testing.T) {
		s := &Submission{ID: "550e8400-e29b-41d4-a716-446655440000"}

		assert.NoError(t, s.BeforeCreate(&gorm.DB{}))
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", s.ID)
	})
}
