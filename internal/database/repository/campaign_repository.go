package repository

import (
	"time"

	"github.com/quintus06/Clipbox-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID with its advertiser
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Preload("Advertiser").First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetByIDForUpdate retrieves a campaign by ID under a row lock. Must be called
// inside a transaction.
func (r *CampaignRepository) GetByIDForUpdate(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetByAdvertiserID retrieves all campaigns owned by an advertiser
func (r *CampaignRepository) GetByAdvertiserID(advertiserID string) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("advertiser_id = ?", advertiserID).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

// GetActive retrieves ACTIVE campaigns that have not yet ended, newest first
func (r *CampaignRepository) GetActive(now time.Time, offset, limit int) ([]*models.Campaign, int64, error) {
	query := r.db.Model(&models.Campaign{}).
		Where("status = ? AND end_date > ?", models.CampaignStatusActive, now)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []*models.Campaign
	err := query.Preload("Advertiser").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&campaigns).Error
	return campaigns, total, err
}

// Update updates a campaign
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// UpdateStatus sets the status of a campaign
func (r *CampaignRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).
		Update("status", status).Error
}

// IncrementTotalSubmissions bumps the submission counter for a campaign
func (r *CampaignRepository) IncrementTotalSubmissions(id string) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", id).
		UpdateColumn("total_submissions", gorm.Expr("total_submissions + 1")).Error
}

// CompleteExpired marks ACTIVE campaigns whose end date has passed as COMPLETED
// and returns the number of campaigns updated.
func (r *CampaignRepository) CompleteExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Campaign{}).
		Where("status = ? AND end_date < ?", models.CampaignStatusActive, now).
		Update("status", models.CampaignStatusCompleted)
	return result.RowsAffected, result.Error
}
