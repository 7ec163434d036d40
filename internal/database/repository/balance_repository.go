package repository

import (
	"errors"

	"github.com/quintus06/Clipbox-sub000/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// GetByAdvertiserID retrieves the balance row for an advertiser
func (r *BalanceRepository) GetByAdvertiserID(advertiserID string) (*models.Balance, error) {
	var balance models.Balance
	err := r.db.First(&balance, "advertiser_id = ?", advertiserID).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// GetOrCreateForUpdate retrieves the advertiser's balance row under a row
// lock, creating a zeroed row first if none exists. Must be called inside a
// transaction.
func (r *BalanceRepository) GetOrCreateForUpdate(advertiserID string) (*models.Balance, error) {
	var balance models.Balance
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&balance, "advertiser_id = ?", advertiserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		balance = models.Balance{AdvertiserID: advertiserID}
		if err := r.db.Create(&balance).Error; err != nil {
			return nil, err
		}
		return &balance, nil
	}
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// Update updates a balance row
func (r *BalanceRepository) Update(balance *models.Balance) error {
	return r.db.Save(balance).Error
}

// CreateEntry appends a ledger entry
func (r *BalanceRepository) CreateEntry(entry *models.BalanceEntry) error {
	return r.db.Create(entry).Error
}

// GetEntries retrieves the most recent ledger entries for an advertiser
func (r *BalanceRepository) GetEntries(advertiserID string, limit int) ([]models.BalanceEntry, error) {
	var entries []models.BalanceEntry
	err := r.db.Where("advertiser_id = ?", advertiserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
