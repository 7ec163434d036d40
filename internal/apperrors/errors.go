package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. Handlers translate these to
// HTTP statuses; anything not listed here is treated as an internal error.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("operation not allowed for this role")
	ErrAccountNotOwned = errors.New("social account not owned by caller")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmailTaken      = errors.New("email already registered")
	ErrWrongPassword   = errors.New("current password is incorrect")

	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrAccountNotFound    = errors.New("social account not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrBalanceNotFound    = errors.New("balance not found")

	ErrCampaignNotActive       = errors.New("campaign is not active")
	ErrCampaignEnded           = errors.New("campaign has ended")
	ErrInvalidStatusTransition = errors.New("invalid campaign status transition")
	ErrCampaignNotAdjustable   = errors.New("campaign budget can no longer be changed")
	ErrDuplicateSubmission     = errors.New("clip already submitted for this campaign")
	ErrAlreadyReviewed         = errors.New("submission already reviewed")
	ErrReviewerNotesTooShort   = errors.New("reviewer notes must be at least 10 characters")
)

// InsufficientFundsError carries the exact shortfall so clients can display it.
type InsufficientFundsError struct {
	Shortfall float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient available balance, missing %.2f", e.Shortfall)
}
