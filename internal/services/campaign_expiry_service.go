package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/database/repository"
)

// CampaignExpiryService periodically marks ACTIVE campaigns whose end date
// has passed as COMPLETED, so they stop accepting submissions even when no
// request touches them.
type CampaignExpiryService struct {
	campaignRepo *repository.CampaignRepository
	interval     time.Duration
	stopChan     chan bool
}

func NewCampaignExpiryService(db *gorm.DB) *CampaignExpiryService {
	return &CampaignExpiryService{
		campaignRepo: repository.NewCampaignRepository(db),
		interval:     10 * time.Minute,
		stopChan:     make(chan bool),
	}
}

// Start starts the campaign expiry service
func (s *CampaignExpiryService) Start() {
	go s.run()
	logrus.Info("Campaign expiry service started")
}

// Stop stops the campaign expiry service
func (s *CampaignExpiryService) Stop() {
	s.stopChan <- true
	logrus.Info("Campaign expiry service stopped")
}

// run runs the expiry loop
func (s *CampaignExpiryService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run initial sweep
	s.completeExpired()

	for {
		select {
		case <-ticker.C:
			s.completeExpired()
		case <-s.stopChan:
			return
		}
	}
}

// completeExpired performs one sweep over expired campaigns
func (s *CampaignExpiryService) completeExpired() {
	updated, err := s.campaignRepo.CompleteExpired(time.Now())
	if err != nil {
		logrus.Errorf("Failed to complete expired campaigns: %v", err)
		return
	}
	if updated > 0 {
		logrus.Infof("Marked %d expired campaign(s) as completed", updated)
	} else {
		logrus.Debug("Campaign expiry sweep completed: nothing to update")
	}
}

// SetInterval sets the sweep interval
func (s *CampaignExpiryService) SetInterval(interval time.Duration) {
	s.interval = interval
}
