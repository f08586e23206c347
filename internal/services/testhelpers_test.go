package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
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

func setupTestConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Server.Env = "test"
	config.AppConfig = cfg
}

func createTestUser(t *testing.T, db *gorm.DB, role models.UserRole, email string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestJobseeker(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := createTestUser(t, db, models.UserRoleJobseeker, email)
	user.Profile.Resume = "/api/v1/files/resumes/" + user.ID + "/resume.pdf"
	require.NoError(t, db.Save(user).Error)
	return user
}

func createTestJob(t *testing.T, db *gorm.DB, employerID string, mutate ...func(*models.Job)) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:        "Backend Engineer",
		Company:      "Acme Corp",
		Description:  "Build and operate the services behind our hiring platform, end to end.",
		Requirements: "Several years of production experience with Go and SQL.",
		Location:     "Berlin",
		Category:     models.JobCategoryFullTime,
		Experience:   models.ExperienceMid,
		Salary: models.Salary{
			Min:      60000,
			Max:      90000,
			Currency: "EUR",
			Period:   models.SalaryPeriodYearly,
		},
		PostedByID: employerID,
		Status:     models.JobStatusActive,
	}
	for _, m := range mutate {
		m(job)
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func createTestApplication(t *testing.T, db *gorm.DB, userID, jobID string, status models.ApplicationStatus) *models.Application {
	t.Helper()

	app := &models.Application{
		UserID:      userID,
		JobID:       jobID,
		Resume:      "/files/resume.pdf",
		Status:      status,
		AppliedDate: time.Now(),
	}
	require.NoError(t, db.Create(app).Error)
	return app
}
