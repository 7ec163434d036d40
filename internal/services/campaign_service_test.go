package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
	"github.com/quintus06/Clipbox-sub000/internal/models"
)

func expectCampaignLock(mock sqlmock.Sqlmock, status string) {
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE id = \$1.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "advertiser_id", "title", "status", "budget", "remaining_budget",
		}).AddRow("camp-1", "adv-1", "Summer push", status, 1000.0, 1000.0))
}

func TestCampaignServiceTransitions(t *testing.T) {
	advertiser := &models.User{ID: "adv-1", Role: models.RoleAdvertiser}

	t.Run("resuming an active campaign is an invalid transition", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewCampaignService(db)

		expectCampaignLock(mock, models.CampaignStatusActive)
		mock.ExpectRollback()

		_, err := svc.Resume(advertiser, "camp-1")

		assert.ErrorIs(t, err, apperrors.ErrInvalidStatusTransition)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pausing an active campaign succeeds", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewCampaignService(db)

		expectCampaignLock(mock, models.CampaignStatusActive)
		mock.ExpectExec(`UPDATE "campaigns" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		resp, err := svc.Pause(advertiser, "camp-1")

		assert.NoError(t, err)
		assert.Equal(t, models.CampaignStatusPaused, resp.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("completing a paused campaign retries from the paused state", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewCampaignService(db)

		expectCampaignLock(mock, models.CampaignStatusPaused)
		mock.ExpectRollback()
		expectCampaignLock(mock, models.CampaignStatusPaused)
		mock.ExpectExec(`UPDATE "campaigns" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		resp, err := svc.Complete(advertiser, "camp-1")

		assert.NoError(t, err)
		assert.Equal(t, models.CampaignStatusCompleted, resp.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
