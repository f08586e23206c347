package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	service  JobService
	employer *models.User
	seeker   *models.User
}

func TestJobServiceSuite(t *testing.T) {
	suite.Run(t, new(JobServiceSuite))
}

func (s *JobServiceSuite) SetupTest() {
	setupTestConfig(s.T())
	s.db = setupTestDB(s.T())
	s.service = NewJobService(repositories.NewJobRepository(), repositories.NewApplicationRepository())
	s.employer = createTestUser(s.T(), s.db, models.UserRoleEmployer, "employer@example.com")
	s.seeker = createTestJobseeker(s.T(), s.db, "seeker@example.com")
}

func (s *JobServiceSuite) caller(u *models.User) auth.Caller {
	return auth.Caller{UserID: u.ID, Role: u.Role}
}

func (s *JobServiceSuite) TestCreateRequiresEmployer() {
	_, err := s.service.Create(s.db, s.caller(s.seeker), &dto.CreateJobRequest{})
	s.ErrorIs(err, apperrors.ErrInsufficientPermissions)
}

func (s *JobServiceSuite) TestCreateDefaults() {
	job, err := s.service.Create(s.db, s.caller(s.employer), &dto.CreateJobRequest{
		Title:        "Platform Engineer",
		Company:      "Acme Corp",
		Description:  "Run the infrastructure that keeps the hiring pipeline available day and night.",
		Requirements: "Production experience with Linux and a systems language.",
		Location:     "Remote",
		Category:     "full-time",
		Experience:   "senior",
		Remote:       true,
	})
	s.Require().NoError(err)

	s.Equal(models.JobStatusActive, job.Status)
	s.Equal(s.employer.ID, job.PostedByID)
	s.Equal(models.Currency("USD"), job.Salary.Currency)
	s.Equal(models.SalaryPeriodYearly, job.Salary.Period)
	s.Zero(job.Views)
	s.Zero(job.ApplicationCount)
	s.JSONEq(`[]`, string(job.Skills))
}

func (s *JobServiceSuite) TestCreateRejectsInvertedSalary() {
	_, err := s.service.Create(s.db, s.caller(s.employer), &dto.CreateJobRequest{
		Title:        "Platform Engineer",
		Company:      "Acme Corp",
		Description:  "Run the infrastructure that keeps the hiring pipeline available day and night.",
		Requirements: "Production experience with Linux and a systems language.",
		Location:     "Remote",
		Category:     "full-time",
		Experience:   "senior",
		Salary:       dto.SalaryRequest{Min: 90000, Max: 60000},
	})
	s.Error(err)
}

func (s *JobServiceSuite) TestSearchReturnsOnlyActive() {
	createTestJob(s.T(), s.db, s.employer.ID)
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) { j.Status = models.JobStatusPaused })
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) { j.Status = models.JobStatusClosed })

	jobs, total, err := s.service.Search(s.db, dto.SearchJobsRequest{Page: 1, PageSize: 10}, nil)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(jobs, 1)
	s.Equal(models.JobStatusActive, jobs[0].Status)
}

func (s *JobServiceSuite) TestSearchFilters() {
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) {
		j.Title = "Senior Go Developer"
		j.Remote = true
		j.Salary.Min = 100000
		j.Salary.Max = 140000
	})
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) {
		j.Title = "Junior Designer"
		j.Category = models.JobCategoryPartTime
	})

	remote := true
	jobs, total, err := s.service.Search(s.db, dto.SearchJobsRequest{
		Search:   "go developer",
		Remote:   &remote,
		Page:     1,
		PageSize: 10,
	}, nil)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Senior Go Developer", jobs[0].Title)
}

func (s *JobServiceSuite) TestSearchSortBySalary() {
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) {
		j.Title = "Low"
		j.Salary.Max = 50000
	})
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) {
		j.Title = "High"
		j.Salary.Max = 150000
	})

	jobs, _, err := s.service.Search(s.db, dto.SearchJobsRequest{
		Sort:     "salary-high",
		Page:     1,
		PageSize: 10,
	}, nil)
	s.Require().NoError(err)
	s.Equal("High", jobs[0].Title)
	s.Equal("Low", jobs[1].Title)
}

func (s *JobServiceSuite) TestSearchAnnotatesJobseeker() {
	applied := createTestJob(s.T(), s.db, s.employer.ID)
	other := createTestJob(s.T(), s.db, s.employer.ID)
	createTestApplication(s.T(), s.db, s.seeker.ID, applied.ID, models.ApplicationStatusShortlisted)

	viewer := s.caller(s.seeker)
	jobs, _, err := s.service.Search(s.db, dto.SearchJobsRequest{Page: 1, PageSize: 10}, &viewer)
	s.Require().NoError(err)
	s.Len(jobs, 2)

	byID := map[string]dto.JobResponse{}
	for _, j := range jobs {
		byID[j.ID] = j
	}

	s.Require().NotNil(byID[applied.ID].HasApplied)
	s.True(*byID[applied.ID].HasApplied)
	s.Require().NotNil(byID[applied.ID].ApplicationStatus)
	s.Equal(models.ApplicationStatusShortlisted, *byID[applied.ID].ApplicationStatus)

	s.Require().NotNil(byID[other.ID].HasApplied)
	s.False(*byID[other.ID].HasApplied)
	s.Nil(byID[other.ID].ApplicationStatus)
}

func (s *JobServiceSuite) TestSearchNoAnnotationsForAnonymous() {
	createTestJob(s.T(), s.db, s.employer.ID)

	jobs, _, err := s.service.Search(s.db, dto.SearchJobsRequest{Page: 1, PageSize: 10}, nil)
	s.Require().NoError(err)
	s.Nil(jobs[0].HasApplied)
	s.Nil(jobs[0].ApplicationStatus)
}

func (s *JobServiceSuite) TestGetIncrementsViews() {
	job := createTestJob(s.T(), s.db, s.employer.ID)

	got, err := s.service.Get(s.db, job.ID, nil)
	s.Require().NoError(err)
	s.Equal(1, got.Views)

	got, err = s.service.Get(s.db, job.ID, nil)
	s.Require().NoError(err)
	s.Equal(2, got.Views)

	var stored models.Job
	s.Require().NoError(s.db.First(&stored, "id = ?", job.ID).Error)
	s.Equal(2, stored.Views)
}

func (s *JobServiceSuite) TestGetIncludesPoster() {
	job := createTestJob(s.T(), s.db, s.employer.ID)

	got, err := s.service.Get(s.db, job.ID, nil)
	s.Require().NoError(err)
	s.Require().NotNil(got.Poster)
	s.Equal(s.employer.ID, got.Poster.ID)
	s.Equal(s.employer.Email, got.Poster.Email)
}

func (s *JobServiceSuite) TestGetNotFound() {
	_, err := s.service.Get(s.db, "00000000-0000-0000-0000-000000000000", nil)

	appErr, ok := apperrors.AsAppError(err)
	s.Require().True(ok)
	s.Equal(404, appErr.HTTPCode)
}

func (s *JobServiceSuite) TestUpdateOwnershipEnforced() {
	job := createTestJob(s.T(), s.db, s.employer.ID)
	rival := createTestUser(s.T(), s.db, models.UserRoleEmployer, "rival@example.com")

	title := "Hijacked"
	_, err := s.service.Update(s.db, s.caller(rival), job.ID, &dto.UpdateJobRequest{Title: &title})
	s.ErrorIs(err, apperrors.ErrInsufficientPermissions)
}

func (s *JobServiceSuite) TestUpdatePartial() {
	job := createTestJob(s.T(), s.db, s.employer.ID)

	title := "Retitled Role"
	status := "paused"
	updated, err := s.service.Update(s.db, s.caller(s.employer), job.ID, &dto.UpdateJobRequest{
		Title:  &title,
		Status: &status,
	})
	s.Require().NoError(err)
	s.Equal("Retitled Role", updated.Title)
	s.Equal(models.JobStatusPaused, updated.Status)
	s.Equal(job.Company, updated.Company)
}

func (s *JobServiceSuite) TestUpdateReopensClosedJob() {
	job := createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) { j.Status = models.JobStatusClosed })

	status := "active"
	updated, err := s.service.Update(s.db, s.caller(s.employer), job.ID, &dto.UpdateJobRequest{Status: &status})
	s.Require().NoError(err)
	s.Equal(models.JobStatusActive, updated.Status)
}

func (s *JobServiceSuite) TestAdminCanUpdateAnyJob() {
	job := createTestJob(s.T(), s.db, s.employer.ID)
	admin := createTestUser(s.T(), s.db, models.UserRoleAdmin, "admin@example.com")

	title := "Admin Edit"
	_, err := s.service.Update(s.db, s.caller(admin), job.ID, &dto.UpdateJobRequest{Title: &title})
	s.NoError(err)
}

func (s *JobServiceSuite) TestDeleteCascadesApplications() {
	job := createTestJob(s.T(), s.db, s.employer.ID)
	createTestApplication(s.T(), s.db, s.seeker.ID, job.ID, models.ApplicationStatusApplied)

	s.Require().NoError(s.service.Delete(s.db, s.caller(s.employer), job.ID))

	var jobCount, appCount int64
	s.db.Model(&models.Job{}).Count(&jobCount)
	s.db.Model(&models.Application{}).Count(&appCount)
	s.Zero(jobCount)
	s.Zero(appCount)
}

func (s *JobServiceSuite) TestMyJobsIncludesAllStatuses() {
	createTestJob(s.T(), s.db, s.employer.ID)
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) { j.Status = models.JobStatusClosed })

	jobs, total, err := s.service.MyJobs(s.db, s.caller(s.employer), dto.MyJobsRequest{Page: 1, PageSize: 10})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(jobs, 2)
}

func (s *JobServiceSuite) TestStats() {
	active := createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) {
		j.Views = 10
		j.ApplicationCount = 3
	})
	createTestJob(s.T(), s.db, s.employer.ID, func(j *models.Job) {
		j.Status = models.JobStatusClosed
		j.Category = models.JobCategoryContract
		j.Views = 5
		j.ApplicationCount = 1
	})
	_ = active

	stats, err := s.service.Stats(s.db, s.caller(s.employer))
	s.Require().NoError(err)
	s.Equal(int64(2), stats.Overview.TotalJobs)
	s.Equal(int64(1), stats.Overview.ActiveJobs)
	s.Equal(int64(4), stats.Overview.TotalApplications)
	s.Equal(int64(15), stats.Overview.TotalViews)
	s.Len(stats.Categories, 2)
}

func (s *JobServiceSuite) TestStatsForbiddenForJobseeker() {
	_, err := s.service.Stats(s.db, s.caller(s.seeker))
	s.ErrorIs(err, apperrors.ErrInsufficientPermissions)
}
