package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	// SkipDefaultTransaction keeps the mocked session down to the single
	// UPDATE the expectations describe, without gorm's Begin/Commit wrapper.
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

// The view counter must be bumped with a storage-level increment, never a
// read-modify-write, so concurrent requests cannot lose updates.
func TestIncrementViewsIsAtomic(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository()

	mock.ExpectExec(`UPDATE "jobs" SET "views"=views \+ \$1 WHERE id = \$2`).
		WithArgs(1, "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViews(db, "job-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementApplicationCountIsAtomic(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewJobRepository()

	mock.ExpectExec(`UPDATE "jobs" SET "application_count"=application_count \+ \$1 WHERE id = \$2`).
		WithArgs(-1, "job-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementApplicationCount(db, "job-1", -1))
	require.NoError(t, mock.ExpectationsWereMet())
}
