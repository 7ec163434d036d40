package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
)

func floatPtr(v float64) *float64 { return &v }

func TestCampaignPayoutFor(t *testing.T) {
	t.Run("pays ratio per thousand views", func(t *testing.T) {
		c := &Campaign{PaymentRatio: 10}

		assert.InDelta(t, 50.0, c.PayoutFor(5000), 0.001)
	})

	t.Run("caps at max payout per clip", func(t *testing.T) {
		c := &Campaign{PaymentRatio: 10, MaxPayoutPerClip: floatPtr(30)}

		assert.InDelta(t, 30.0, c.PayoutFor(5000), 0.001)
	})

	t.Run("cap above computed amount has no effect", func(t *testing.T) {
		c := &Campaign{PaymentRatio: 10, MaxPayoutPerClip: floatPtr(100)}

		assert.InDelta(t, 50.0, c.PayoutFor(5000), 0.001)
	})

	t.Run("zero views earn nothing", func(t *testing.T) {
		c := &Campaign{PaymentRatio: 10}

		assert.Zero(t, c.PayoutFor(0))
	})
}

func TestCampaignAcceptsSubmissionAt(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		status  string
		endDate time.Time
		wantErr error
	}{
		{"active campaign before end date", CampaignStatusActive, now.Add(24 * time.Hour), nil},
		{"paused campaign", CampaignStatusPaused, now.Add(24 * time.Hour), apperrors.ErrCampaignNotActive},
		{"completed campaign", CampaignStatusCompleted, now.Add(24 * time.Hour), apperrors.ErrCampaignNotActive},
		{"pending campaign", CampaignStatusPending, now.Add(24 * time.Hour), apperrors.ErrCampaignNotActive},
		{"active campaign past end date", CampaignStatusActive, now.Add(-time.Hour), apperrors.ErrCampaignEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{Status: tt.status, EndDate: tt.endDate}

			err := c.AcceptsSubmissionAt(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCampaignBudgetAdjustableAt(t *testing.T) {
	assert.NoError(t, (&Campaign{Status: CampaignStatusActive}).BudgetAdjustableAt())
	assert.NoError(t, (&Campaign{Status: CampaignStatusPaused}).BudgetAdjustableAt())
	assert.ErrorIs(t, (&Campaign{Status: CampaignStatusCompleted}).BudgetAdjustableAt(), apperrors.ErrCampaignNotAdjustable)
	assert.ErrorIs(t, (&Campaign{Status: CampaignStatusPending}).BudgetAdjustableAt(), apperrors.ErrCampaignNotAdjustable)
}
