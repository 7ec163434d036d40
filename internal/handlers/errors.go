package handlers

import (
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
)

// handleServiceError translates a service error into an HTTP response.
// Unknown errors are logged and reported to Sentry but never leak details to
// the client.
func handleServiceError(c *gin.Context, err error) {
	var insufficientFunds *apperrors.InsufficientFundsError
	if errors.As(err, &insufficientFunds) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Insufficient available balance",
			"shortfall": insufficientFunds.Shortfall,
		})
		return
	}

	status, known := statusForError(err)
	if known {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	logrus.Errorf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	sentry.CaptureException(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// statusForError maps the service error taxonomy to HTTP statuses. Duplicate
// submissions intentionally map to 400: the web client branches on status and
// shows the message verbatim.
func statusForError(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return http.StatusUnauthorized, true
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrAccountNotOwned):
		return http.StatusForbidden, true
	case errors.Is(err, apperrors.ErrCampaignNotFound),
		errors.Is(err, apperrors.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrSubmissionNotFound),
		errors.Is(err, apperrors.ErrBalanceNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrAlreadyReviewed),
		errors.Is(err, apperrors.ErrEmailTaken):
		return http.StatusConflict, true
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrCampaignNotActive),
		errors.Is(err, apperrors.ErrCampaignEnded),
		errors.Is(err, apperrors.ErrCampaignNotAdjustable),
		errors.Is(err, apperrors.ErrInvalidStatusTransition),
		errors.Is(err, apperrors.ErrDuplicateSubmission),
		errors.Is(err, apperrors.ErrReviewerNotesTooShort),
		errors.Is(err, apperrors.ErrWrongPassword):
		return http.StatusBadRequest, true
	}
	return 0, false
}
