package services

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	Search(db *gorm.DB, req dto.SearchJobsRequest, viewer *auth.Caller) ([]dto.JobResponse, int64, error)
	Get(db *gorm.DB, id string, viewer *auth.Caller) (*dto.JobResponse, error)
	Create(db *gorm.DB, caller auth.Caller, req *dto.CreateJobRequest) (*models.Job, error)
	Update(db *gorm.DB, caller auth.Caller, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(db *gorm.DB, caller auth.Caller, id string) error
	MyJobs(db *gorm.DB, caller auth.Caller, req dto.MyJobsRequest) ([]models.Job, int64, error)
	Stats(db *gorm.DB, caller auth.Caller) (*dto.JobStatsResponse, error)
}

type JobServiceImpl struct {
	jobRepo repositories.JobRepository
	appRepo repositories.ApplicationRepository
}

func NewJobService(jobRepo repositories.JobRepository, appRepo repositories.ApplicationRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, appRepo: appRepo}
}

// Search lists active jobs only; paused and closed postings never appear in
// the public catalog regardless of filters.
func (s *JobServiceImpl) Search(db *gorm.DB, req dto.SearchJobsRequest, viewer *auth.Caller) ([]dto.JobResponse, int64, error) {
	jobs, total, err := s.jobRepo.Search(db, repositories.JobFilter{
		Search:     req.Search,
		Location:   req.Location,
		Category:   models.JobCategory(req.Category),
		Experience: models.ExperienceLevel(req.Experience),
		Remote:     req.Remote,
		MinSalary:  req.MinSalary,
		MaxSalary:  req.MaxSalary,
		Featured:   req.Featured,
		Status:     models.JobStatusActive,
		Sort:       req.Sort,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	statuses, err := s.viewerStatuses(db, viewer, jobs)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, s.toResponse(&jobs[i], viewer, statuses))
	}
	return responses, total, nil
}

// Get returns a single job and counts the read as a view. The increment is
// applied in storage; the response carries the post-increment value.
func (s *JobServiceImpl) Get(db *gorm.DB, id string, viewer *auth.Caller) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.jobRepo.IncrementViews(db, id); err != nil {
		logger.Warn("failed to increment job views", "job_id", id, "error", err)
	} else {
		job.Views++
	}

	statuses, err := s.viewerStatuses(db, viewer, []models.Job{*job})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := s.toResponse(job, viewer, statuses)
	return &resp, nil
}

func (s *JobServiceImpl) Create(db *gorm.DB, caller auth.Caller, req *dto.CreateJobRequest) (*models.Job, error) {
	if caller.Role != models.UserRoleEmployer && !caller.IsAdmin() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if req.Salary.Min > req.Salary.Max && req.Salary.Max > 0 {
		return nil, apperrors.ErrInvalidOperation("job", "Minimum salary cannot exceed maximum salary")
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Category:     models.JobCategory(req.Category),
		Experience:   models.ExperienceLevel(req.Experience),
		Salary: models.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: models.Currency(req.Salary.Currency),
			Period:   models.SalaryPeriod(req.Salary.Period),
		},
		Skills:              toJSONList(req.Skills),
		Benefits:            toJSONList(req.Benefits),
		Tags:                toJSONList(req.Tags),
		PostedByID:          caller.UserID,
		Status:              models.JobStatusActive,
		ApplicationDeadline: req.ApplicationDeadline,
		Remote:              req.Remote,
		Featured:            req.Featured,
	}
	if job.Salary.Currency == "" {
		job.Salary.Currency = "USD"
	}
	if job.Salary.Period == "" {
		job.Salary.Period = models.SalaryPeriodYearly
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) Update(db *gorm.DB, caller auth.Caller, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CanManageJob(caller, job) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Category != nil {
		job.Category = models.JobCategory(*req.Category)
	}
	if req.Experience != nil {
		job.Experience = models.ExperienceLevel(*req.Experience)
	}
	if req.Salary != nil {
		if req.Salary.Min > req.Salary.Max && req.Salary.Max > 0 {
			return nil, apperrors.ErrInvalidOperation("job", "Minimum salary cannot exceed maximum salary")
		}
		job.Salary = models.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: models.Currency(req.Salary.Currency),
			Period:   models.SalaryPeriod(req.Salary.Period),
		}
		if job.Salary.Currency == "" {
			job.Salary.Currency = "USD"
		}
		if job.Salary.Period == "" {
			job.Salary.Period = models.SalaryPeriodYearly
		}
	}
	if req.Skills != nil {
		job.Skills = toJSONList(*req.Skills)
	}
	if req.Benefits != nil {
		job.Benefits = toJSONList(*req.Benefits)
	}
	if req.Tags != nil {
		job.Tags = toJSONList(*req.Tags)
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.Remote != nil {
		job.Remote = *req.Remote
	}
	if req.Featured != nil {
		job.Featured = *req.Featured
	}
	// Any direct transition between statuses is allowed, including
	// reopening a closed job.
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// Delete removes the job together with all of its applications.
func (s *JobServiceImpl) Delete(db *gorm.DB, caller auth.Caller, id string) error {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CanManageJob(caller, job) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobRepo.DeleteWithApplications(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// MyJobs lists the caller's own postings in every status.
func (s *JobServiceImpl) MyJobs(db *gorm.DB, caller auth.Caller, req dto.MyJobsRequest) ([]models.Job, int64, error) {
	if caller.Role != models.UserRoleEmployer && !caller.IsAdmin() {
		return nil, 0, apperrors.ErrInsufficientPermissions
	}

	jobs, total, err := s.jobRepo.Search(db, repositories.JobFilter{
		PostedByID: caller.UserID,
		Status:     models.JobStatus(req.Status),
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return jobs, total, nil
}

func (s *JobServiceImpl) Stats(db *gorm.DB, caller auth.Caller) (*dto.JobStatsResponse, error) {
	if caller.Role != models.UserRoleEmployer && !caller.IsAdmin() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	overview, err := s.jobRepo.EmployerOverview(db, caller.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	categories, err := s.jobRepo.CountByCategory(db, caller.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if categories == nil {
		categories = []repositories.CategoryCount{}
	}

	return &dto.JobStatsResponse{
		Overview:   *overview,
		Categories: categories,
	}, nil
}

// viewerStatuses batches the viewer's application lookups for a page of
// jobs. Only jobseekers get annotations.
func (s *JobServiceImpl) viewerStatuses(db *gorm.DB, viewer *auth.Caller, jobs []models.Job) (map[string]models.ApplicationStatus, error) {
	if viewer == nil || viewer.Role != models.UserRoleJobseeker {
		return nil, nil
	}

	jobIDs := make([]string, 0, len(jobs))
	for i := range jobs {
		jobIDs = append(jobIDs, jobs[i].ID)
	}
	return s.appRepo.StatusesByUserAndJobs(db, viewer.UserID, jobIDs)
}

func (s *JobServiceImpl) toResponse(job *models.Job, viewer *auth.Caller, statuses map[string]models.ApplicationStatus) dto.JobResponse {
	resp := dto.JobResponse{Job: *job}
	if job.PostedBy != nil {
		poster := job.PostedBy.PublicProfile()
		resp.Poster = &poster
	}
	if statuses != nil {
		hasApplied := false
		if status, ok := statuses[job.ID]; ok {
			hasApplied = true
			resp.ApplicationStatus = &status
		}
		resp.HasApplied = &hasApplied
	}
	return resp
}
