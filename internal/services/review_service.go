package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
	"github.com/quintus06/Clipbox-sub000/internal/database/repository"
	"github.com/quintus06/Clipbox-sub000/internal/models"
)

// minReviewerNotesLen is the minimum length of rejection notes.
const minReviewerNotesLen = 10

type ReviewService struct {
	db     *gorm.DB
	events *EventsService
}

func NewReviewService(db *gorm.DB, events *EventsService) *ReviewService {
	return &ReviewService{db: db, events: events}
}

// Approve moves a pending submission to APPROVED, computes its payout and
// debits the campaign's remaining budget. The submission and campaign rows
// are updated under row locks in one transaction so concurrent approvals
// cannot overdraw the budget. When the computed payout exceeds the remaining
// budget, the payout is clamped to what is left.
func (s *ReviewService) Approve(actor *models.User, submissionID string) (*models.SubmissionResponse, error) {
	var submission *models.Submission
	var campaign *models.Campaign

	err := s.db.Transaction(func(tx *gorm.DB) error {
		submissionRepo := repository.NewSubmissionRepository(tx)
		campaignRepo := repository.NewCampaignRepository(tx)

		locked, err := submissionRepo.GetByIDForUpdate(submissionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		if err != nil {
			return err
		}
		submission = locked

		campaign, err = campaignRepo.GetByIDForUpdate(submission.CampaignID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() && campaign.AdvertiserID != actor.ID {
			return apperrors.ErrForbidden
		}
		if err := submission.EnsureReviewable(); err != nil {
			return err
		}

		applyApproval(submission, campaign, time.Now())
		if err := submissionRepo.Update(submission); err != nil {
			return err
		}
		return campaignRepo.Update(campaign)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Submission %s approved, payout %.2f, campaign %s remaining budget %.2f",
		submission.ID, *submission.AmountEarned, campaign.ID, campaign.RemainingBudget)

	s.events.Publish(EventSubmissionApproved, map[string]interface{}{
		"submission_id": submission.ID,
		"campaign_id":   campaign.ID,
		"clipper_id":    submission.ClipperID,
		"amount_earned": *submission.AmountEarned,
	})

	return toSubmissionResponse(submission, campaign.Title, ""), nil
}

// Reject moves a pending submission to REJECTED with the reviewer's notes.
func (s *ReviewService) Reject(actor *models.User, submissionID, reviewerNotes string) (*models.SubmissionResponse, error) {
	notes := strings.TrimSpace(reviewerNotes)
	if utf8.RuneCountInString(notes) < minReviewerNotesLen {
		return nil, apperrors.ErrReviewerNotesTooShort
	}

	var submission *models.Submission
	var campaign *models.Campaign

	err := s.db.Transaction(func(tx *gorm.DB) error {
		submissionRepo := repository.NewSubmissionRepository(tx)
		campaignRepo := repository.NewCampaignRepository(tx)

		locked, err := submissionRepo.GetByIDForUpdate(submissionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubmissionNotFound
		}
		if err != nil {
			return err
		}
		submission = locked

		campaign, err = campaignRepo.GetByIDForUpdate(submission.CampaignID)
		if err != nil {
			return err
		}

		if !actor.IsAdmin() && campaign.AdvertiserID != actor.ID {
			return apperrors.ErrForbidden
		}
		if err := submission.EnsureReviewable(); err != nil {
			return err
		}

		applyRejection(submission, campaign, notes, time.Now())
		if err := submissionRepo.Update(submission); err != nil {
			return err
		}
		return campaignRepo.Update(campaign)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Submission %s rejected by %s", submission.ID, actor.ID)

	s.events.Publish(EventSubmissionRejected, map[string]interface{}{
		"submission_id": submission.ID,
		"campaign_id":   campaign.ID,
		"clipper_id":    submission.ClipperID,
	})

	return toSubmissionResponse(submission, campaign.Title, ""), nil
}

// applyApproval marks a pending submission approved at the given time,
// computes its payout clamped to the remaining budget, and debits the
// campaign. In-memory state change only; the caller persists both rows.
func applyApproval(submission *models.Submission, campaign *models.Campaign, now time.Time) {
	amount := clampToBudget(campaign.PayoutFor(submission.Views), campaign.RemainingBudget)

	submission.Status = models.SubmissionStatusApproved
	submission.ApprovedAt = &now
	submission.AmountEarned = &amount

	campaign.RemainingBudget -= amount
	campaign.ApprovedSubmissions++
}

// applyRejection marks a pending submission rejected at the given time with
// the reviewer's notes. In-memory state change only.
func applyRejection(submission *models.Submission, campaign *models.Campaign, notes string, now time.Time) {
	submission.Status = models.SubmissionStatusRejected
	submission.RejectedAt = &now
	submission.ReviewerNotes = notes

	campaign.RejectedSubmissions++
}

// clampToBudget caps a payout at the campaign's remaining budget, flooring
// the budget at zero.
func clampToBudget(amount, remaining float64) float64 {
	if remaining <= 0 {
		return 0
	}
	if amount > remaining {
		return remaining
	}
	return amount
}
