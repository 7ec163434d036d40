package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
	"github.com/quintus06/Clipbox-sub000/internal/database/repository"
	"github.com/quintus06/Clipbox-sub000/internal/models"
)

// balanceEntryHistory is how many ledger entries the balance endpoint returns.
const balanceEntryHistory = 50

type BudgetService struct {
	db     *gorm.DB
	events *EventsService
}

func NewBudgetService(db *gorm.DB, events *EventsService) *BudgetService {
	return &BudgetService{db: db, events: events}
}

// IncreaseBudget raises a campaign budget. The budget is monotonic: the new
// value must exceed the current one, and the delta must be covered by the
// advertiser's available balance. Funds move available -> pending and both
// campaign budget fields grow by the delta, all under row locks in one
// transaction.
func (s *BudgetService) IncreaseBudget(actor *models.User, campaignID string, newBudget float64) (*models.Campaign, error) {
	var campaign *models.Campaign

	err := s.db.Transaction(func(tx *gorm.DB) error {
		campaignRepo := repository.NewCampaignRepository(tx)
		balanceRepo := repository.NewBalanceRepository(tx)

		locked, err := campaignRepo.GetByIDForUpdate(campaignID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCampaignNotFound
		}
		if err != nil {
			return err
		}
		campaign = locked

		if !actor.IsAdmin() && campaign.AdvertiserID != actor.ID {
			return apperrors.ErrForbidden
		}
		if err := campaign.BudgetAdjustableAt(); err != nil {
			return err
		}

		balance, err := balanceRepo.GetOrCreateForUpdate(campaign.AdvertiserID)
		if err != nil {
			return err
		}
		delta, err := increaseDelta(campaign.Budget, newBudget, balance.Available)
		if err != nil {
			return err
		}

		balance.Available -= delta
		balance.Pending += delta
		if err := balanceRepo.Update(balance); err != nil {
			return err
		}

		entry := &models.BalanceEntry{
			AdvertiserID:   campaign.AdvertiserID,
			CampaignID:     &campaign.ID,
			EntryType:      models.EntryTypeDebit,
			Amount:         delta,
			Reason:         "campaign budget increase",
			AvailableAfter: balance.Available,
		}
		if err := balanceRepo.CreateEntry(entry); err != nil {
			return err
		}

		campaign.Budget = newBudget
		campaign.RemainingBudget += delta
		return campaignRepo.Update(campaign)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Campaign %s budget raised to %.2f", campaign.ID, campaign.Budget)

	s.events.Publish(EventCampaignBudgetIncrease, map[string]interface{}{
		"campaign_id":   campaign.ID,
		"advertiser_id": campaign.AdvertiserID,
		"new_budget":    campaign.Budget,
	})

	return campaign, nil
}

// Deposit credits an advertiser's available balance.
func (s *BudgetService) Deposit(actor *models.User, amount float64) (*models.Balance, error) {
	if !actor.IsAdvertiser() {
		return nil, apperrors.ErrForbidden
	}
	if amount <= 0 {
		return nil, apperrors.ErrInvalidInput
	}

	var balance *models.Balance

	err := s.db.Transaction(func(tx *gorm.DB) error {
		balanceRepo := repository.NewBalanceRepository(tx)

		locked, err := balanceRepo.GetOrCreateForUpdate(actor.ID)
		if err != nil {
			return err
		}
		balance = locked

		balance.Available += amount
		if err := balanceRepo.Update(balance); err != nil {
			return err
		}

		entry := &models.BalanceEntry{
			AdvertiserID:   actor.ID,
			EntryType:      models.EntryTypeCredit,
			Amount:         amount,
			Reason:         "deposit",
			AvailableAfter: balance.Available,
		}
		return balanceRepo.CreateEntry(entry)
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Advertiser %s deposited %.2f", actor.ID, amount)

	s.events.Publish(EventBalanceDeposited, map[string]interface{}{
		"advertiser_id": actor.ID,
		"amount":        amount,
	})

	return balance, nil
}

// GetBalance returns the advertiser's balance snapshot with recent entries.
func (s *BudgetService) GetBalance(actor *models.User) (*models.BalanceResponse, error) {
	if !actor.IsAdvertiser() && !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	balanceRepo := repository.NewBalanceRepository(s.db)
	balance, err := balanceRepo.GetByAdvertiserID(actor.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No deposits yet; report a zeroed ledger.
		return &models.BalanceResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	entries, err := balanceRepo.GetEntries(actor.ID, balanceEntryHistory)
	if err != nil {
		return nil, err
	}

	return &models.BalanceResponse{
		Available: balance.Available,
		Pending:   balance.Pending,
		Withdrawn: balance.Withdrawn,
		Entries:   entries,
	}, nil
}

// increaseDelta validates a requested budget raise against the current budget
// and available funds. Returns the delta to move, ErrInvalidInput for a
// non-increase, or an InsufficientFundsError carrying the exact shortfall.
func increaseDelta(currentBudget, newBudget, available float64) (float64, error) {
	delta := newBudget - currentBudget
	if delta <= 0 {
		return 0, apperrors.ErrInvalidInput
	}
	if available < delta {
		return 0, &apperrors.InsufficientFundsError{Shortfall: delta - available}
	}
	return delta, nil
}
