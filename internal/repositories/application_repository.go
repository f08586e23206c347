package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("duplicate application")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByUserAndJob(db *gorm.DB, userID, jobID string) (*models.Application, error)
	StatusesByUserAndJobs(db *gorm.DB, userID string, jobIDs []string) (map[string]models.ApplicationStatus, error)
	ListByUser(db *gorm.DB, userID string, f ApplicationFilter) ([]models.Application, int64, error)
	ListByJob(db *gorm.DB, jobID string, f ApplicationFilter) ([]models.Application, int64, error)
	ListAll(db *gorm.DB, f ApplicationFilter) ([]models.Application, int64, error)
	Update(db *gorm.DB, app *models.Application) error
	Delete(db *gorm.DB, id string) error
	EmployerStatusBreakdown(db *gorm.DB, employerID string) (map[models.ApplicationStatus]int64, error)
}

type ApplicationFilter struct {
	Status   models.ApplicationStatus
	JobID    string
	UserID   string
	Page     int
	PageSize int
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create inserts the application. The unique (user_id, job_id) index is the
// authoritative duplicate guard: a violation here is reported as
// ErrDuplicateApplication regardless of any service-level pre-check.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("User").Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByUserAndJob(db *gorm.DB, userID, jobID string) (*models.Application, error) {
	var app models.Application
	err := db.First(&app, "user_id = ? AND job_id = ?", userID, jobID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// StatusesByUserAndJobs fetches the viewer's applications across a page of
// job ids in one query, for the hasApplied/applicationStatus annotations.
func (r *ApplicationRepositoryImpl) StatusesByUserAndJobs(db *gorm.DB, userID string, jobIDs []string) (map[string]models.ApplicationStatus, error) {
	statuses := make(map[string]models.ApplicationStatus)
	if len(jobIDs) == 0 {
		return statuses, nil
	}

	var apps []models.Application
	err := db.Select("job_id", "status").
		Where("user_id = ? AND job_id IN ?", userID, jobIDs).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	for _, app := range apps {
		statuses[app.JobID] = app.Status
	}
	return statuses, nil
}

func (r *ApplicationRepositoryImpl) ListByUser(db *gorm.DB, userID string, f ApplicationFilter) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{}).Where("user_id = ?", userID)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	return r.list(query.Preload("Job"), f)
}

func (r *ApplicationRepositoryImpl) ListByJob(db *gorm.DB, jobID string, f ApplicationFilter) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{}).Where("job_id = ?", jobID)
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	return r.list(query.Preload("User"), f)
}

func (r *ApplicationRepositoryImpl) ListAll(db *gorm.DB, f ApplicationFilter) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.JobID != "" {
		query = query.Where("job_id = ?", f.JobID)
	}
	if f.UserID != "" {
		query = query.Where("user_id = ?", f.UserID)
	}
	return r.list(query.Preload("User").Preload("Job"), f)
}

func (r *ApplicationRepositoryImpl) list(query *gorm.DB, f ApplicationFilter) ([]models.Application, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.Application
	err := query.Order("applied_date DESC").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, app *models.Application) error {
	return db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// EmployerStatusBreakdown counts applications per status across all jobs
// owned by the employer.
func (r *ApplicationRepositoryImpl) EmployerStatusBreakdown(db *gorm.DB, employerID string) (map[models.ApplicationStatus]int64, error) {
	type row struct {
		Status models.ApplicationStatus
		Count  int64
	}

	var rows []row
	err := db.Model(&models.Application{}).
		Select("applications.status AS status, COUNT(*) AS count").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.posted_by_id = ?", employerID).
		Group("applications.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make(map[models.ApplicationStatus]int64, len(models.ApplicationStatuses))
	for _, s := range models.ApplicationStatuses {
		breakdown[s] = 0
	}
	for _, r := range rows {
		breakdown[r.Status] = r.Count
	}
	return breakdown, nil
}
