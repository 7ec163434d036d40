package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quintus06/Clipbox-sub000/internal/apperrors"
	"github.com/quintus06/Clipbox-sub000/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

func expectReviewLocks(mock sqlmock.Sqlmock, submissionStatus string) {
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "submissions" WHERE id = \$1.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "campaign_id", "clipper_id", "status", "views", "submitted_at",
		}).AddRow("sub-1", "camp-1", "clipper-1", submissionStatus, 5000, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "campaigns" WHERE id = \$1.*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "advertiser_id", "title", "status", "payment_ratio", "budget", "remaining_budget", "approved_submissions", "rejected_submissions",
		}).AddRow("camp-1", "adv-1", "Summer push", models.CampaignStatusActive, 10.0, 1000.0, 1000.0, 0, 0))
}

func TestReviewServiceApprove(t *testing.T) {
	advertiser := &models.User{ID: "adv-1", Role: models.RoleAdvertiser}

	t.Run("approval pays out and debits the remaining budget", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db, nil)

		expectReviewLocks(mock, models.SubmissionStatusPending)
		mock.ExpectExec(`UPDATE "submissions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "campaigns" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		resp, err := svc.Approve(advertiser, "sub-1")

		require.NoError(t, err)
		assert.Equal(t, models.SubmissionStatusApproved, resp.Status)
		assert.InDelta(t, 50.0, resp.AmountEarned, 0.001)
		assert.NotNil(t, resp.ApprovedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second approval fails and rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db, nil)

		expectReviewLocks(mock, models.SubmissionStatusApproved)
		mock.ExpectRollback()

		_, err := svc.Approve(advertiser, "sub-1")

		assert.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-owner advertiser is forbidden", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db, nil)

		expectReviewLocks(mock, models.SubmissionStatusPending)
		mock.ExpectRollback()

		_, err := svc.Approve(&models.User{ID: "adv-2", Role: models.RoleAdvertiser}, "sub-1")

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestReviewServiceReject(t *testing.T) {
	advertiser := &models.User{ID: "adv-1", Role: models.RoleAdvertiser}

	t.Run("rejection records notes and counter", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db, nil)

		expectReviewLocks(mock, models.SubmissionStatusPending)
		mock.ExpectExec(`UPDATE "submissions" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "campaigns" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		resp, err := svc.Reject(advertiser, "sub-1", "content does not match the brief")

		require.NoError(t, err)
		assert.Equal(t, models.SubmissionStatusRejected, resp.Status)
		assert.Equal(t, "content does not match the brief", resp.ReviewerNotes)
		assert.NotNil(t, resp.RejectedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("short notes fail before touching the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db, nil)

		_, err := svc.Reject(advertiser, "sub-1", "too short")

		assert.ErrorIs(t, err, apperrors.ErrReviewerNotesTooShort)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("notes length counts runes, not bytes", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewReviewService(db, nil)

		// 9 runes, 18 bytes: still too short.
		_, err := svc.Reject(advertiser, "sub-1", "ééééééééé")

		assert.ErrorIs(t, err, apperrors.ErrReviewerNotesTooShort)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplyApproval(t *testing.T) {
	now := time.Now()

	t.Run("debits budget and bumps counter exactly once", func(t *testing.T) {
		submission := &models.Submission{Status: models.SubmissionStatusPending, Views: 5000}
		campaign := &models.Campaign{PaymentRatio: 10, RemainingBudget: 1000}

		applyApproval(submission, campaign, now)

		require.NotNil(t, submission.AmountEarned)
		assert.InDelta(t, 50.0, *submission.AmountEarned, 0.001)
		assert.InDelta(t, 950.0, campaign.RemainingBudget, 0.001)
		assert.Equal(t, 1, campaign.ApprovedSubmissions)
		assert.ErrorIs(t, submission.EnsureReviewable(), apperrors.ErrAlreadyReviewed)
	})

	t.Run("clamps payout to the remaining budget", func(t *testing.T) {
		submission := &models.Submission{Status: models.SubmissionStatusPending, Views: 5000}
		campaign := &models.Campaign{PaymentRatio: 10, RemainingBudget: 30}

		applyApproval(submission, campaign, now)

		require.NotNil(t, submission.AmountEarned)
		assert.InDelta(t, 30.0, *submission.AmountEarned, 0.001)
		assert.Zero(t, campaign.RemainingBudget)
	})
}

func TestApplyRejection(t *testing.T) {
	now := time.Now()
	submission := &models.Submission{Status: models.SubmissionStatusPending}
	campaign := &models.Campaign{RemainingBudget: 1000}

	applyRejection(submission, campaign, "content does not match the brief", now)

	assert.Equal(t, models.SubmissionStatusRejected, submission.Status)
	assert.Equal(t, "content does not match the brief", submission.ReviewerNotes)
	assert.Nil(t, submission.AmountEarned)
	assert.Equal(t, 1, campaign.RejectedSubmissions)
	assert.InDelta(t, 1000.0, campaign.RemainingBudget, 0.001)
	assert.ErrorIs(t, submission.EnsureReviewable(), apperrors.ErrAlreadyReviewed)
}

func TestClampToBudget(t *testing.T) {
	t.Run("amount within remaining budget passes through", func(t *testing.T) {
		assert.InDelta(t, 50.0, clampToBudget(50, 200), 0.001)
	})

	t.Run("amount above remaining budget is clamped", func(t *testing.T) {
		assert.InDelta(t, 30.0, clampToBudget(50, 30), 0.001)
	})

	t.Run("exhausted budget pays zero", func(t *testing.T) {
		assert.Zero(t, clampToBudget(50, 0))
	})

	t.Run("negative remaining budget pays zero", func(t *testing.T) {
		assert.Zero(t, clampToBudget(50, -10))
	})
}
