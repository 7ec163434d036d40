package services

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
	"github.com/quintus06/Clipbox-sub000/internal/database/repository"
	"github.com/quintus06/Clipbox-sub000/internal/models"
)

type SocialAccountService struct {
	accountRepo *repository.SocialAccountRepository
}

func NewSocialAccountService(db *gorm.DB) *SocialAccountService {
	return &SocialAccountService{accountRepo: repository.NewSocialAccountRepository(db)}
}

// Connect registers a social account for a clipper.
func (s *SocialAccountService) Connect(user *models.User, req *models.ConnectAccountRequest) (*models.SocialAccount, error) {
	if !user.IsClipper() {
		return nil, apperrors.ErrForbidden
	}

	platform := strings.ToUpper(strings.TrimSpace(req.Platform))
	username := strings.TrimSpace(req.Username)
	if username == "" || !models.ValidPlatform(platform) {
		return nil, apperrors.ErrInvalidInput
	}

	account := &models.SocialAccount{
		UserID:   user.ID,
		Platform: platform,
		Username: username,
	}
	if err := s.accountRepo.Create(account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrInvalidInput
		}
		return nil, err
	}

	logrus.Infof("User %s connected %s account %s", user.ID, platform, username)
	return account, nil
}

// ListMine retrieves the caller's social accounts.
func (s *SocialAccountService) ListMine(user *models.User) ([]*models.SocialAccount, error) {
	return s.accountRepo.GetByUserID(user.ID)
}

// Delete removes a social account owned by the caller.
func (s *SocialAccountService) Delete(user *models.User, accountID string) error {
	removed, err := s.accountRepo.DeleteByUserIDAndID(user.ID, accountID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return apperrors.ErrAccountNotFound
	}
	return nil
}
