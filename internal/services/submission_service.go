package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
	"github.com/quintus06/Clipbox-sub000/internal/database/repository"
	"github.com/quintus06/Clipbox-sub000/internal/models"
)

type SubmissionService struct {
	db     *gorm.DB
	events *EventsService
}

func NewSubmissionService(db *gorm.DB, events *EventsService) *SubmissionService {
	return &SubmissionService{db: db, events: events}
}

// CreateSubmission submits a clip against a campaign on behalf of a clipper.
// Preconditions are checked in a fixed order inside a single transaction, so
// no partial side effect is ever visible: role, input, campaign existence and
// state, account ownership, then the duplicate guard. On success the new
// submission is persisted PENDING and the campaign submission counter is
// incremented in the same transaction.
func (s *SubmissionService) CreateSubmission(user *models.User, req *models.CreateSubmissionRequest) (*models.SubmissionResponse, error) {
	if !user.IsClipper() {
		return nil, apperrors.ErrForbidden
	}

	campaignID := strings.TrimSpace(req.CampaignID)
	accountID := strings.TrimSpace(req.AccountID)
	clipURL := strings.TrimSpace(req.ClipURL)
	if campaignID == "" || accountID == "" || clipURL == "" {
		return nil, apperrors.ErrInvalidInput
	}

	var submission *models.Submission
	var campaign *models.Campaign

	err := s.db.Transaction(func(tx *gorm.DB) error {
		campaignRepo := repository.NewCampaignRepository(tx)
		accountRepo := repository.NewSocialAccountRepository(tx)
		submissionRepo := repository.NewSubmissionRepository(tx)

		locked, err := campaignRepo.GetByIDForUpdate(campaignID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCampaignNotFound
		}
		if err != nil {
			return err
		}
		campaign = locked

		now := time.Now()
		if err := campaign.AcceptsSubmissionAt(now); err != nil {
			return err
		}

		account, err := accountRepo.GetByID(accountID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		if err != nil {
			return err
		}
		if account.UserID != user.ID {
			return apperrors.ErrAccountNotOwned
		}

		exists, err := submissionRepo.Exists(campaignID, user.ID, clipURL)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrDuplicateSubmission
		}

		submission = &models.Submission{
			CampaignID:  campaignID,
			ClipperID:   user.ID,
			AccountID:   accountID,
			ClipURL:     clipURL,
			Description: strings.TrimSpace(req.Description),
			Platform:    account.Platform,
			Status:      models.SubmissionStatusPending,
			SubmittedAt: now,
		}
		if err := submissionRepo.Create(submission); err != nil {
			return err
		}

		return campaignRepo.IncrementTotalSubmissions(campaignID)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Submission %s created for campaign %s by clipper %s", submission.ID, campaign.ID, user.ID)

	// The advertiser was loaded outside the lock for display purposes only.
	advertiserName := ""
	if full, err := repository.NewCampaignRepository(s.db).GetByID(campaignID); err == nil {
		advertiserName = full.Advertiser.DisplayName
	}

	resp := toSubmissionResponse(submission, campaign.Title, advertiserName)
	return resp, nil
}

// ListForClipper returns all submissions owned by the caller, most recent
// first, enriched with campaign title and advertiser name.
func (s *SubmissionService) ListForClipper(user *models.User) ([]*models.SubmissionResponse, error) {
	if !user.IsClipper() {
		return nil, apperrors.ErrForbidden
	}

	submissions, err := repository.NewSubmissionRepository(s.db).GetByClipperID(user.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.SubmissionResponse, len(submissions))
	for i, submission := range submissions {
		responses[i] = toSubmissionResponse(submission,
			submission.Campaign.Title,
			submission.Campaign.Advertiser.DisplayName)
	}
	return responses, nil
}

// ListForCampaign returns all submissions against a campaign for its
// advertiser or an admin.
func (s *SubmissionService) ListForCampaign(user *models.User, campaignID string) ([]*models.SubmissionResponse, error) {
	campaign, err := repository.NewCampaignRepository(s.db).GetByID(campaignID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() && campaign.AdvertiserID != user.ID {
		return nil, apperrors.ErrForbidden
	}

	submissions, err := repository.NewSubmissionRepository(s.db).GetByCampaignID(campaignID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.SubmissionResponse, len(submissions))
	for i, submission := range submissions {
		responses[i] = toSubmissionResponse(submission, campaign.Title, campaign.Advertiser.DisplayName)
	}
	return responses, nil
}

// UpdateMetrics refreshes the engagement counters of a submission. Metrics
// are the only fields that stay mutable after review.
func (s *SubmissionService) UpdateMetrics(user *models.User, submissionID string, req *models.UpdateSubmissionMetricsRequest) (*models.SubmissionResponse, error) {
	if !user.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	submissionRepo := repository.NewSubmissionRepository(s.db)
	submission, err := submissionRepo.GetByID(submissionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Views != nil {
		submission.Views = *req.Views
	}
	if req.Likes != nil {
		submission.Likes = *req.Likes
	}
	if req.Shares != nil {
		submission.Shares = *req.Shares
	}
	if req.Comments != nil {
		submission.Comments = *req.Comments
	}

	if err := submissionRepo.Update(submission); err != nil {
		return nil, err
	}

	return toSubmissionResponse(submission, submission.Campaign.Title, submission.Campaign.Advertiser.DisplayName), nil
}

// toSubmissionResponse converts a Submission model to its response DTO. A
// missing payout renders as 0 and optional timestamps as RFC3339 or null.
func toSubmissionResponse(submission *models.Submission, campaignTitle, advertiserName string) *models.SubmissionResponse {
	amountEarned := 0.0
	if submission.AmountEarned != nil {
		amountEarned = *submission.AmountEarned
	}

	return &models.SubmissionResponse{
		ID:             submission.ID,
		CampaignID:     submission.CampaignID,
		CampaignTitle:  campaignTitle,
		AdvertiserName: advertiserName,
		ClipURL:        submission.ClipURL,
		Platform:       submission.Platform,
		Status:         submission.Status,
		Views:          submission.Views,
		Likes:          submission.Likes,
		Shares:         submission.Shares,
		Comments:       submission.Comments,
		AmountEarned:   amountEarned,
		SubmittedAt:    submission.SubmittedAt.Format(time.RFC3339),
		ApprovedAt:     formatOptionalTime(submission.ApprovedAt),
		RejectedAt:     formatOptionalTime(submission.RejectedAt),
		PublishedAt:    formatOptionalTime(submission.PublishedAt),
		ReviewerNotes:  submission.ReviewerNotes,
	}
}

// formatOptionalTime formats a nullable timestamp as RFC3339
func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
