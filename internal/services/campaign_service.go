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

type CampaignService struct {
	db *gorm.DB
}

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

// CreateCampaign creates a new ACTIVE campaign. The initial budget is debited
// from the advertiser's available balance into pending, exactly like a budget
// increase from zero.
func (s *CampaignService) CreateCampaign(user *models.User, req *models.CreateCampaignRequest) (*models.CampaignResponse, error) {
	if !user.IsAdvertiser() {
		return nil, apperrors.ErrForbidden
	}
	if req.EndDate.Before(time.Now()) {
		return nil, apperrors.ErrInvalidInput
	}
	for _, platform := range req.Platforms {
		if !models.ValidPlatform(platform) {
			return nil, apperrors.ErrInvalidInput
		}
	}

	var campaign *models.Campaign

	err := s.db.Transaction(func(tx *gorm.DB) error {
		campaignRepo := repository.NewCampaignRepository(tx)
		balanceRepo := repository.NewBalanceRepository(tx)

		balance, err := balanceRepo.GetOrCreateForUpdate(user.ID)
		if err != nil {
			return err
		}
		if balance.Available < req.Budget {
			return &apperrors.InsufficientFundsError{Shortfall: req.Budget - balance.Available}
		}

		balance.Available -= req.Budget
		balance.Pending += req.Budget
		if err := balanceRepo.Update(balance); err != nil {
			return err
		}

		campaign = &models.Campaign{
			AdvertiserID:     user.ID,
			Title:            strings.TrimSpace(req.Title),
			Description:      strings.TrimSpace(req.Description),
			Status:           models.CampaignStatusActive,
			Budget:           req.Budget,
			RemainingBudget:  req.Budget,
			PaymentRatio:     req.PaymentRatio,
			MaxPayoutPerClip: req.MaxPayoutPerClip,
			Platforms:        strings.Join(req.Platforms, ","),
			EndDate:          req.EndDate,
		}
		if err := campaignRepo.Create(campaign); err != nil {
			return err
		}

		entry := &models.BalanceEntry{
			AdvertiserID:   user.ID,
			CampaignID:     &campaign.ID,
			EntryType:      models.EntryTypeDebit,
			Amount:         req.Budget,
			Reason:         "campaign funding",
			AvailableAfter: balance.Available,
		}
		return balanceRepo.CreateEntry(entry)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Campaign %s created by advertiser %s with budget %.2f", campaign.ID, user.ID, campaign.Budget)

	return toCampaignResponse(campaign, user.DisplayName), nil
}

// GetCampaignsByAdvertiser retrieves all campaigns owned by the caller.
func (s *CampaignService) GetCampaignsByAdvertiser(user *models.User) ([]*models.CampaignResponse, error) {
	if !user.IsAdvertiser() && !user.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	campaigns, err := repository.NewCampaignRepository(s.db).GetByAdvertiserID(user.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		responses[i] = toCampaignResponse(campaign, user.DisplayName)
	}
	return responses, nil
}

// GetCampaignByID retrieves a single campaign. Advertisers only see their
// own; clippers and admins may view any.
func (s *CampaignService) GetCampaignByID(user *models.User, campaignID string) (*models.CampaignResponse, error) {
	campaign, err := repository.NewCampaignRepository(s.db).GetByID(campaignID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.IsAdvertiser() && campaign.AdvertiserID != user.ID {
		return nil, apperrors.ErrForbidden
	}

	return toCampaignResponse(campaign, campaign.Advertiser.DisplayName), nil
}

// DiscoverCampaigns lists ACTIVE, not-yet-ended campaigns for clippers to
// browse, newest first.
func (s *CampaignService) DiscoverCampaigns(page, pageSize int) ([]*models.CampaignResponse, int64, error) {
	offset := (page - 1) * pageSize
	campaigns, total, err := repository.NewCampaignRepository(s.db).GetActive(time.Now(), offset, pageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		responses[i] = toCampaignResponse(campaign, campaign.Advertiser.DisplayName)
	}
	return responses, total, nil
}

// Pause moves an ACTIVE campaign to PAUSED.
func (s *CampaignService) Pause(user *models.User, campaignID string) (*models.CampaignResponse, error) {
	return s.transition(user, campaignID, models.CampaignStatusActive, models.CampaignStatusPaused)
}

// Resume moves a PAUSED campaign back to ACTIVE.
func (s *CampaignService) Resume(user *models.User, campaignID string) (*models.CampaignResponse, error) {
	return s.transition(user, campaignID, models.CampaignStatusPaused, models.CampaignStatusActive)
}

// Complete moves an ACTIVE or PAUSED campaign to COMPLETED. Terminal.
func (s *CampaignService) Complete(user *models.User, campaignID string) (*models.CampaignResponse, error) {
	resp, err := s.transition(user, campaignID, models.CampaignStatusActive, models.CampaignStatusCompleted)
	if errors.Is(err, apperrors.ErrInvalidStatusTransition) {
		return s.transition(user, campaignID, models.CampaignStatusPaused, models.CampaignStatusCompleted)
	}
	return resp, err
}

// transition moves a campaign from one status to another under a row lock.
func (s *CampaignService) transition(user *models.User, campaignID, from, to string) (*models.CampaignResponse, error) {
	var campaign *models.Campaign

	err := s.db.Transaction(func(tx *gorm.DB) error {
		campaignRepo := repository.NewCampaignRepository(tx)

		locked, err := campaignRepo.GetByIDForUpdate(campaignID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCampaignNotFound
		}
		if err != nil {
			return err
		}
		campaign = locked

		if !user.IsAdmin() && campaign.AdvertiserID != user.ID {
			return apperrors.ErrForbidden
		}
		if campaign.Status != from {
			return apperrors.ErrInvalidStatusTransition
		}

		campaign.Status = to
		return campaignRepo.Update(campaign)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Campaign %s transitioned %s -> %s", campaign.ID, from, to)
	return toCampaignResponse(campaign, ""), nil
}

// toCampaignResponse converts a Campaign model to its response DTO
func toCampaignResponse(campaign *models.Campaign, advertiserName string) *models.CampaignResponse {
	platforms := []string{}
	if campaign.Platforms != "" {
		platforms = strings.Split(campaign.Platforms, ",")
	}

	return &models.CampaignResponse{
		ID:                  campaign.ID,
		AdvertiserID:        campaign.AdvertiserID,
		AdvertiserName:      advertiserName,
		Title:               campaign.Title,
		Description:         campaign.Description,
		Status:              campaign.Status,
		Budget:              campaign.Budget,
		RemainingBudget:     campaign.RemainingBudget,
		PaymentRatio:        campaign.PaymentRatio,
		MaxPayoutPerClip:    campaign.MaxPayoutPerClip,
		Platforms:           platforms,
		EndDate:             campaign.EndDate.Format(time.RFC3339),
		TotalSubmissions:    campaign.TotalSubmissions,
		ApprovedSubmissions: campaign.ApprovedSubmissions,
		RejectedSubmissions: campaign.RejectedSubmissions,
		CreatedAt:           campaign.CreatedAt.Format(time.RFC3339),
	}
}
