package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"account not owned", apperrors.ErrAccountNotOwned, http.StatusForbidden},
		{"campaign not found", apperrors.ErrCampaignNotFound, http.StatusNotFound},
		{"submission not found", apperrors.ErrSubmissionNotFound, http.StatusNotFound},
		{"already reviewed", apperrors.ErrAlreadyReviewed, http.StatusConflict},
		{"email taken", apperrors.ErrEmailTaken, http.StatusConflict},
		{"duplicate submission", apperrors.ErrDuplicateSubmission, http.StatusBadRequest},
		{"invalid status transition", apperrors.ErrInvalidStatusTransition, http.StatusBadRequest},
		{"wrong password", apperrors.ErrWrongPassword, http.StatusBadRequest},
		{"campaign not active", apperrors.ErrCampaignNotActive, http.StatusBadRequest},
		{"campaign ended", apperrors.ErrCampaignEnded, http.StatusBadRequest},
		{"reviewer notes too short", apperrors.ErrReviewerNotesTooShort, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, known := statusForError(tt.err)

			assert.True(t, known)
			assert.Equal(t, tt.status, status)
		})
	}

	t.Run("unknown error is not mapped", func(t *testing.T) {
		_, known := statusForError(errors.New("boom"))

		assert.False(t, known)
	})
}

func TestHandleServiceErrorInsufficientFunds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/campaigns/abc/increase-budget", nil)

	handleServiceError(c, &apperrors.InsufficientFundsError{Shortfall: 60})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 60.0, body["shortfall"], 0.001)
}

func TestHandleServiceErrorMappedSentinel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/submissions/abc/approve", nil)

	handleServiceError(c, apperrors.ErrAlreadyReviewed)

	assert.Equal(t, http.StatusConflict, w.Code)
}
