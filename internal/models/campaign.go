package models

import (
	"time"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
)

// Campaign statuses.
const (
	CampaignStatusActive    = "ACTIVE"
	CampaignStatusPending   = "PENDING"
	CampaignStatusPaused    = "PAUSED"
	CampaignStatusCompleted = "COMPLETED"
)

// Campaign represents an advertiser-funded promotional task that clippers
// submit content against. Budget counters are only mutated inside row-locked
// transactions, see the budget and review services.
type Campaign struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AdvertiserID string `json:"advertiser_id" gorm:"not null;index;type:uuid"`
	Title        string `json:"title" gorm:"type:varchar(255);not null"`
	Description  string `json:"description" gorm:"type:text"`
	Status       string `json:"status" gorm:"type:varchar(20);not null;index;default:'ACTIVE'"`

	// Budget, in euros. RemainingBudget is decremented on approval only;
	// pending submissions never reserve funds.
	Budget          float64 `json:"budget" gorm:"type:decimal(15,2);not null;default:0"`
	RemainingBudget float64 `json:"remaining_budget" gorm:"type:decimal(15,2);not null;default:0"`

	// PaymentRatio is euros paid per 1000 views at approval time.
	PaymentRatio     float64  `json:"payment_ratio" gorm:"type:decimal(15,2);not null;default:0"`
	MaxPayoutPerClip *float64 `json:"max_payout_per_clip,omitempty" gorm:"type:decimal(15,2)"`

	Platforms string    `json:"platforms" gorm:"type:varchar(255)"` // comma separated platform list
	EndDate   time.Time `json:"end_date" gorm:"not null;index"`

	TotalSubmissions    int `json:"total_submissions" gorm:"default:0"`
	ApprovedSubmissions int `json:"approved_submissions" gorm:"default:0"`
	RejectedSubmissions int `json:"rejected_submissions" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Advertiser  User         `json:"advertiser,omitempty" gorm:"foreignKey:AdvertiserID;references:ID;constraint:OnDelete:CASCADE"`
	Submissions []Submission `json:"submissions,omitempty" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// AcceptsSubmissionAt checks whether a clip may be submitted at the given time.
func (c *Campaign) AcceptsSubmissionAt(now time.Time) error {
	if c.Status != CampaignStatusActive {
		return apperrors.ErrCampaignNotActive
	}
	if now.After(c.EndDate) {
		return apperrors.ErrCampaignEnded
	}
	return nil
}

// BudgetAdjustableAt checks whether the campaign budget may still be raised.
// Paused campaigns may be topped up before resuming; completed and pending
// campaigns can no longer pay out, so raising their budget would strand funds.
func (c *Campaign) BudgetAdjustableAt() error {
	if c.Status != CampaignStatusActive && c.Status != CampaignStatusPaused {
		return apperrors.ErrCampaignNotAdjustable
	}
	return nil
}

// PayoutFor computes the earned amount for a clip with the given view count:
// PaymentRatio euros per 1000 views, capped per clip when a cap is configured.
// Clamping against the remaining budget happens at approval time.
func (c *Campaign) PayoutFor(views int) float64 {
	amount := c.PaymentRatio * float64(views) / 1000
	if c.MaxPayoutPerClip != nil && amount > *c.MaxPayoutPerClip {
		amount = *c.MaxPayoutPerClip
	}
	return amount
}

// CreateCampaignRequest represents the request to create a new campaign
type CreateCampaignRequest struct {
	Title            string    `json:"title" binding:"required" example:"Summer clips push"`
	Description      string    `json:"description"`
	Budget           float64   `json:"budget" binding:"required,gt=0" example:"1000"`
	PaymentRatio     float64   `json:"payment_ratio" binding:"required,gt=0" example:"10"`
	MaxPayoutPerClip *float64  `json:"max_payout_per_clip,omitempty" example:"100"`
	Platforms        []string  `json:"platforms" binding:"required,min=1"`
	EndDate          time.Time `json:"end_date" binding:"required" example:"2026-12-31T23:59:59Z"`
}

// IncreaseBudgetRequest represents the request to raise a campaign budget
type IncreaseBudgetRequest struct {
	NewBudget float64 `json:"newBudget" binding:"required,gt=0" example:"1500"`
}

// CampaignResponse represents the response for campaign operations
type CampaignResponse struct {
	ID                  string   `json:"id"`
	AdvertiserID        string   `json:"advertiser_id"`
	AdvertiserName      string   `json:"advertiser_name,omitempty"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	Budget              float64  `json:"budget"`
	RemainingBudget     float64  `json:"remaining_budget"`
	PaymentRatio        float64  `json:"payment_ratio"`
	MaxPayoutPerClip    *float64 `json:"max_payout_per_clip,omitempty"`
	Platforms           []string `json:"platforms"`
	EndDate             string   `json:"end_date"`
	TotalSubmissions    int      `json:"total_submissions"`
	ApprovedSubmissions int      `json:"approved_submissions"`
	RejectedSubmissions int      `json:"rejected_submissions"`
	CreatedAt           string   `json:"created_at"`
}
