package repository

import (
	"github.com/quintus06/Clipbox-sub000/internal/models"

	"gorm.io/gorm"
)

type SocialAccountRepository struct {
	db *gorm.DB
}

func NewSocialAccountRepository(db *gorm.DB) *SocialAccountRepository {
	return &SocialAccountRepository{db: db}
}

// Create creates a new social account
func (r *SocialAccountRepository) Create(account *models.SocialAccount) error {
	return r.db.Create(account).Error
}

// GetByID retrieves a social account by ID
func (r *SocialAccountRepository) GetByID(id string) (*models.SocialAccount, error) {
	var account models.SocialAccount
	err := r.db.First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByUserID retrieves all social accounts owned by a user
func (r *SocialAccountRepository) GetByUserID(userID string) ([]*models.SocialAccount, error) {
	var accounts []*models.SocialAccount
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accounts).Error
	return accounts, err
}

// DeleteByUserIDAndID deletes an account owned by the given user and returns
// the number of rows removed
func (r *SocialAccountRepository) DeleteByUserIDAndID(userID, accountID string) (int64, error) {
	result := r.db.Where("user_id = ? AND id = ?", userID, accountID).
		Delete(&models.SocialAccount{})
	return result.RowsAffected, result.Error
}
