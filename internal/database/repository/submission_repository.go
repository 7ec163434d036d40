package repository

import (
	"github.com/quintus06/Clipbox-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create creates a new submission
func (r *SubmissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

// GetByID retrieves a submission by ID
func (r *SubmissionRepository) GetByID(id string) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Preload("Campaign.Advertiser").First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByIDForUpdate retrieves a submission by ID under a row lock. Must be
// called inside a transaction.
func (r *SubmissionRepository) GetByIDForUpdate(id string) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&submission, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByClipperID retrieves all submissions of a clipper, most recent first
func (r *SubmissionRepository) GetByClipperID(clipperID string) ([]*models.Submission, error) {
	var submissions []*models.Submission
	err := r.db.Where("clipper_id = ?", clipperID).
		Preload("Campaign.Advertiser").
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// GetByCampaignID retrieves all submissions against a campaign, most recent first
func (r *SubmissionRepository) GetByCampaignID(campaignID string) ([]*models.Submission, error) {
	var submissions []*models.Submission
	err := r.db.Where("campaign_id = ?", campaignID).
		Preload("Clipper").
		Order("submitted_at DESC").
		Find(&submissions).Error
	return submissions, err
}

// Exists checks whether the clipper already submitted this clip URL against
// the campaign, regardless of which account was used
func (r *SubmissionRepository) Exists(campaignID, clipperID, clipURL string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Submission{}).
		Where("campaign_id = ? AND clipper_id = ? AND clip_url = ?", campaignID, clipperID, clipURL).
		Count(&count).Error
	return count > 0, err
}

// Update updates a submission
func (r *SubmissionRepository) Update(submission *models.Submission) error {
	return r.db.Save(submission).Error
}
