package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Application{},
	))
	return db
}

func seedEmployer(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Employer",
		Email:        "employer@example.com",
		PasswordHash: "x",
		Role:         models.UserRoleEmployer,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedJob(t *testing.T, db *gorm.DB, employerID string, mutate func(*models.Job)) *models.Job {
	t.Helper()
	job := &models.Job{
		Title:        "Backend Engineer",
		Company:      "Acme Corp",
		Description:  "Build and operate the services behind our hiring platform, end to end.",
		Requirements: "Several years of production experience with Go and SQL.",
		Location:     "Berlin",
		Category:     models.JobCategoryFullTime,
		Experience:   models.ExperienceMid,
		PostedByID:   employerID,
		Status:       models.JobStatusActive,
	}
	if mutate != nil {
		mutate(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func TestCloseExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository()
	employer := seedEmployer(t, db)

	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	expired := seedJob(t, db, employer.ID, func(j *models.Job) { j.ApplicationDeadline = &past })
	open := seedJob(t, db, employer.ID, func(j *models.Job) { j.ApplicationDeadline = &future })
	noDeadline := seedJob(t, db, employer.ID, nil)
	alreadyClosed := seedJob(t, db, employer.ID, func(j *models.Job) {
		j.Status = models.JobStatusClosed
		j.ApplicationDeadline = &past
	})

	closed, err := repo.CloseExpired(db, time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(1), closed)

	check := func(id string, want models.JobStatus) {
		var job models.Job
		require.NoError(t, db.First(&job, "id = ?", id).Error)
		require.Equal(t, want, job.Status)
	}
	check(expired.ID, models.JobStatusClosed)
	check(open.ID, models.JobStatusActive)
	check(noDeadline.ID, models.JobStatusActive)
	check(alreadyClosed.ID, models.JobStatusClosed)

	// Running again is a no-op.
	closed, err = repo.CloseExpired(db, time.Now())
	require.NoError(t, err)
	require.Zero(t, closed)
}

func TestReconcileApplicationCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository()
	employer := seedEmployer(t, db)

	drifted := seedJob(t, db, employer.ID, func(j *models.Job) { j.ApplicationCount = 7 })
	correct := seedJob(t, db, employer.ID, func(j *models.Job) { j.ApplicationCount = 1 })

	seeker := &models.User{
		Name: "Seeker", Email: "seeker@example.com", PasswordHash: "x",
		Role: models.UserRoleJobseeker, IsActive: true,
	}
	require.NoError(t, db.Create(seeker).Error)

	for _, jobID := range []string{drifted.ID, correct.ID} {
		require.NoError(t, db.Create(&models.Application{
			UserID: seeker.ID, JobID: jobID, Resume: "/files/r.pdf",
			Status: models.ApplicationStatusApplied, AppliedDate: time.Now(),
		}).Error)
	}

	repaired, err := repo.ReconcileApplicationCounts(db)
	require.NoError(t, err)
	require.Equal(t, int64(1), repaired)

	var job models.Job
	require.NoError(t, db.First(&job, "id = ?", drifted.ID).Error)
	require.Equal(t, 1, job.ApplicationCount)
}

func TestIncrementApplicationCountDelta(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository()
	employer := seedEmployer(t, db)
	job := seedJob(t, db, employer.ID, nil)

	require.NoError(t, repo.IncrementApplicationCount(db, job.ID, 1))
	require.NoError(t, repo.IncrementApplicationCount(db, job.ID, 1))
	require.NoError(t, repo.IncrementApplicationCount(db, job.ID, -1))

	var stored models.Job
	require.NoError(t, db.First(&stored, "id = ?", job.ID).Error)
	require.Equal(t, 1, stored.ApplicationCount)
}

func TestDeleteWithApplicationsMissingJob(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository()

	err := repo.DeleteWithApplications(db, "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestSearchPaginationTotal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewJobRepository()
	employer := seedEmployer(t, db)

	for i := 0; i < 25; i++ {
		seedJob(t, db, employer.ID, nil)
	}

	jobs, total, err := repo.Search(db, JobFilter{
		Status:   models.JobStatusActive,
		Page:     3,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, jobs, 5)
}
