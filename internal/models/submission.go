package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
)

// Submission statuses. PENDING is the only non-terminal state.
const (
	SubmissionStatusPending  = "PENDING"
	SubmissionStatusApproved = "APPROVED"
	SubmissionStatusRejected = "REJECTED"
)

// Submission is one clipper's clip entry against one campaign. A (campaign,
// clipper, clip URL) triple is unique; after review only the metrics counters
// remain mutable.
type Submission struct {
	ID          string `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID  string `json:"campaign_id" gorm:"not null;type:uuid;uniqueIndex:idx_submissions_campaign_clipper_url;index"`
	ClipperID   string `json:"clipper_id" gorm:"not null;type:uuid;uniqueIndex:idx_submissions_campaign_clipper_url;index"`
	AccountID   string `json:"account_id" gorm:"not null;type:uuid;index"`
	ClipURL     string `json:"clip_url" gorm:"type:varchar(500);not null;uniqueIndex:idx_submissions_campaign_clipper_url"`
	Description string `json:"description" gorm:"type:text"`
	Platform    string `json:"platform" gorm:"type:varchar(20);not null"`
	Status      string `json:"status" gorm:"type:varchar(20);not null;index;default:'PENDING'"`

	Views    int `json:"views" gorm:"default:0"`
	Likes    int `json:"likes" gorm:"default:0"`
	Shares   int `json:"shares" gorm:"default:0"`
	Comments int `json:"comments" gorm:"default:0"`

	AmountEarned *float64 `json:"amount_earned,omitempty" gorm:"type:decimal(15,2)"`

	SubmittedAt time.Time  `json:"submitted_at" gorm:"not null;index"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`

	ReviewerNotes string `json:"reviewer_notes" gorm:"type:text"`
	RevisionNotes string `json:"revision_notes" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Campaign Campaign      `json:"campaign,omitempty" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE"`
	Clipper  User          `json:"clipper,omitempty" gorm:"foreignKey:ClipperID;references:ID;constraint:OnDelete:CASCADE"`
	Account  SocialAccount `json:"account,omitempty" gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Submission model
func (Submission) TableName() string {
	return "submissions"
}

// BeforeCreate generates a UUID for the submission if not set
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// EnsureReviewable returns an error unless the submission is still pending.
func (s *Submission) EnsureReviewable() error {
	if s.Status != SubmissionStatusPending {
		return apperrors.ErrAlreadyReviewed
	}
	return nil
}

// CreateSubmissionRequest represents the request to submit a clip
type CreateSubmissionRequest struct {
	CampaignID  string `json:"campaignId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	AccountID   string `json:"accountId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440001"`
	ClipURL     string `json:"clipUrl" binding:"required" example:"https://www.tiktok.com/@clipper/video/12345"`
	Description string `json:"description,omitempty"`
}

// RejectSubmissionRequest represents the request to reject a submission
type RejectSubmissionRequest struct {
	ReviewerNotes string `json:"reviewerNotes" binding:"required"`
}

// UpdateSubmissionMetricsRequest represents a metrics refresh for a submission
type UpdateSubmissionMetricsRequest struct {
	Views    *int `json:"views,omitempty" binding:"omitempty,gte=0"`
	Likes    *int `json:"likes,omitempty" binding:"omitempty,gte=0"`
	Shares   *int `json:"shares,omitempty" binding:"omitempty,gte=0"`
	Comments *int `json:"comments,omitempty" binding:"omitempty,gte=0"`
}

// SubmissionResponse represents a submission enriched with campaign details.
// Optional timestamps render as RFC3339 strings or null; a missing payout
// renders as 0.
type SubmissionResponse struct {
	ID             string  `json:"id"`
	CampaignID     string  `json:"campaign_id"`
	CampaignTitle  string  `json:"campaign_title"`
	AdvertiserName string  `json:"advertiser_name"`
	ClipURL        string  `json:"clip_url"`
	Platform       string  `json:"platform"`
	Status         string  `json:"status"`
	Views          int     `json:"views"`
	Likes          int     `json:"likes"`
	Shares         int     `json:"shares"`
	Comments       int     `json:"comments"`
	AmountEarned   float64 `json:"amount_earned"`
	SubmittedAt    string  `json:"submitted_at"`
	ApprovedAt     *string `json:"approved_at"`
	RejectedAt     *string `json:"rejected_at"`
	PublishedAt    *string `json:"published_at"`
	ReviewerNotes  string  `json:"reviewer_notes,omitempty"`
}
