package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Search(db *gorm.DB, f JobFilter) ([]models.Job, int64, error)
	Update(db *gorm.DB, job *models.Job) error
	DeleteWithApplications(db *gorm.DB, id string) error
	IncrementViews(db *gorm.DB, id string) error
	IncrementApplicationCount(db *gorm.DB, id string, delta int) error
	EmployerOverview(db *gorm.DB, employerID string) (*JobOverview, error)
	CountByCategory(db *gorm.DB, employerID string) ([]CategoryCount, error)
	CloseExpired(db *gorm.DB, now time.Time) (int64, error)
	ReconcileApplicationCounts(db *gorm.DB) (int64, error)
}

type JobFilter struct {
	Search     string
	Location   string
	Category   models.JobCategory
	Experience models.ExperienceLevel
	Remote     *bool
	MinSalary  *float64
	MaxSalary  *float64
	Featured   *bool
	Status     models.JobStatus
	PostedByID string
	Sort       string
	Page       int
	PageSize   int
}

type JobOverview struct {
	TotalJobs         int64 `json:"totalJobs"`
	ActiveJobs        int64 `json:"activeJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TotalViews        int64 `json:"totalViews"`
}

type CategoryCount struct {
	Category models.JobCategory `json:"category"`
	Count    int64              `json:"count"`
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("PostedBy").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Search(db *gorm.DB, f JobFilter) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{})

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.PostedByID != "" {
		query = query.Where("posted_by_id = ?", f.PostedByID)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(company) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Experience != "" {
		query = query.Where("experience = ?", f.Experience)
	}
	if f.Remote != nil {
		query = query.Where("remote = ?", *f.Remote)
	}
	if f.MinSalary != nil {
		query = query.Where("salary_min >= ?", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		query = query.Where("salary_max <= ?", *f.MaxSalary)
	}
	if f.Featured != nil {
		query = query.Where("featured = ?", *f.Featured)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []models.Job
	err := query.Preload("PostedBy").
		Order(sortClause(f.Sort)).
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func sortClause(sort string) string {
	switch sort {
	case "oldest":
		return "created_at ASC"
	case "salary-high":
		return "salary_max DESC"
	case "salary-low":
		return "salary_min ASC"
	case "applications":
		return "application_count DESC"
	default: // newest
		return "created_at DESC"
	}
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

// DeleteWithApplications removes the job and every application referencing
// it. The two deletes run in one transaction where the store supports it;
// applications go first so an interrupted cascade cannot orphan the job.
func (r *JobRepositoryImpl) DeleteWithApplications(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Application{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

// IncrementViews bumps the view counter with a storage-level increment, not
// read-modify-write, so concurrent requests cannot lose updates.
func (r *JobRepositoryImpl) IncrementViews(db *gorm.DB, id string) error {
	return db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *JobRepositoryImpl) IncrementApplicationCount(db *gorm.DB, id string, delta int) error {
	return db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("application_count", gorm.Expr("application_count + ?", delta)).Error
}

func (r *JobRepositoryImpl) EmployerOverview(db *gorm.DB, employerID string) (*JobOverview, error) {
	var overview JobOverview
	err := db.Model(&models.Job{}).
		Select(
			"COUNT(*) AS total_jobs, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS active_jobs, "+
				"COALESCE(SUM(application_count), 0) AS total_applications, "+
				"COALESCE(SUM(views), 0) AS total_views",
			models.JobStatusActive,
		).
		Where("posted_by_id = ?", employerID).
		Scan(&overview).Error
	if err != nil {
		return nil, err
	}
	return &overview, nil
}

func (r *JobRepositoryImpl) CountByCategory(db *gorm.DB, employerID string) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := db.Model(&models.Job{}).
		Select("category, COUNT(*) AS count").
		Where("posted_by_id = ?", employerID).
		Group("category").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CloseExpired flips active jobs whose application deadline has passed to
// closed. Run periodically by the jobs worker.
func (r *JobRepositoryImpl) CloseExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.Job{}).
		Where("status = ? AND application_deadline IS NOT NULL AND application_deadline < ?",
			models.JobStatusActive, now).
		Update("status", models.JobStatusClosed)
	return result.RowsAffected, result.Error
}

// ReconcileApplicationCounts overwrites application_count with the actual
// number of applications per job. Idempotent; repairs drift left behind by
// an interrupted cascade delete.
func (r *JobRepositoryImpl) ReconcileApplicationCounts(db *gorm.DB) (int64, error) {
	result := db.Exec(`
		UPDATE jobs
		SET application_count = (
			SELECT COUNT(*) FROM applications WHERE applications.job_id = jobs.id
		)
		WHERE application_count <> (
			SELECT COUNT(*) FROM applications WHERE applications.job_id = jobs.id
		)
	`)
	return result.RowsAffected, result.Error
}
