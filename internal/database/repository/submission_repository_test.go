package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

func TestSubmissionRepositoryExists(t *testing.T) {
	t.Run("reports duplicate triple", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSubmissionRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "submissions"`).
			WithArgs("camp-1", "clipper-1", "https://tiktok.com/clip/1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.Exists("camp-1", "clipper-1", "https://tiktok.com/clip/1")

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("different url is no duplicate", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewSubmissionRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "submissions"`).
			WithArgs("camp-1", "clipper-1", "https://tiktok.com/clip/2").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.Exists("camp-1", "clipper-1", "https://tiktok.com/clip/2")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestCampaignRepositoryCompleteExpired(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCampaignRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "campaigns" SET`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	affected, err := repo.CompleteExpired(time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
