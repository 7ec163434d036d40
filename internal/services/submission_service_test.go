package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quintus06/Clipbox-sub000/internal/models"
)

func TestToSubmissionResponse(t *testing.T) {
	submittedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending submission renders null review fields and zero payout", func(t *testing.T) {
		submission := &models.Submission{
			ID:          "sub-1",
			CampaignID:  "camp-1",
			ClipURL:     "https://www.tiktok.com/@clipper/video/1",
			Platform:    models.PlatformTikTok,
			Status:      models.SubmissionStatusPending,
			Views:       1200,
			SubmittedAt: submittedAt,
		}

		resp := toSubmissionResponse(submission, "Summer push", "Acme")

		assert.Equal(t, "Summer push", resp.CampaignTitle)
		assert.Equal(t, "Acme", resp.AdvertiserName)
		assert.Zero(t, resp.AmountEarned)
		assert.Equal(t, "2026-03-01T12:00:00Z", resp.SubmittedAt)
		assert.Nil(t, resp.ApprovedAt)
		assert.Nil(t, resp.RejectedAt)
		assert.Nil(t, resp.PublishedAt)
	})

	t.Run("approved submission carries earned amount and timestamp", func(t *testing.T) {
		amount := 42.5
		approvedAt := submittedAt.Add(time.Hour)
		submission := &models.Submission{
			ID:           "sub-2",
			Status:       models.SubmissionStatusApproved,
			AmountEarned: &amount,
			SubmittedAt:  submittedAt,
			ApprovedAt:   &approvedAt,
		}

		resp := toSubmissionResponse(submission, "", "")

		assert.InDelta(t, 42.5, resp.AmountEarned, 0.001)
		require.NotNil(t, resp.ApprovedAt)
		assert.Equal(t, "2026-03-01T13:00:00Z", *resp.ApprovedAt)
	})
}

func TestFormatOptionalTime(t *testing.T) {
	assert.Nil(t, formatOptionalTime(nil))

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	formatted := formatOptionalTime(&ts)
	require.NotNil(t, formatted)
	assert.Equal(t, "2026-01-02T03:04:05Z", *formatted)
}
