package services

import (
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(db *gorm.DB, caller auth.Caller, req *dto.ApplyRequest) (*models.Application, error)
	Get(db *gorm.DB, caller auth.Caller, id string) (*dto.ApplicationResponse, error)
	MyApplications(db *gorm.DB, caller auth.Caller, req dto.MyApplicationsRequest) ([]dto.ApplicationResponse, int64, error)
	ListByJob(db *gorm.DB, caller auth.Caller, jobID string, req dto.MyApplicationsRequest) ([]dto.ApplicationResponse, int64, error)
	ListAll(db *gorm.DB, caller auth.Caller, req dto.ListApplicationsRequest) ([]dto.ApplicationResponse, int64, error)
	UpdateStatus(db *gorm.DB, caller auth.Caller, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	Delete(db *gorm.DB, caller auth.Caller, id string) error
	EmployerStats(db *gorm.DB, caller auth.Caller) (*dto.ApplicationStatsResponse, error)
}

type ApplicationServiceImpl struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		mailer:   mailer,
	}
}

// Apply submits an application for the caller. Preconditions are checked in
// a fixed order: the job must exist, be accepting applications, not already
// be applied to, and the applicant must have a resume on file.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, caller auth.Caller, req *dto.ApplyRequest) (*models.Application, error) {
	if caller.Role != models.UserRoleJobseeker {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrJobNotAcceptingApplications
	}

	// Fast-path duplicate check; the unique index remains authoritative
	// under concurrent submits.
	if _, err := s.appRepo.FindByUserAndJob(db, caller.UserID, req.JobID); err == nil {
		return nil, apperrors.ErrDuplicateApplication
	} else if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, caller.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user.Profile.Resume == "" {
		return nil, apperrors.ErrResumeRequired
	}

	app := &models.Application{
		UserID:      caller.UserID,
		JobID:       req.JobID,
		Resume:      user.Profile.Resume,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusApplied,
		AppliedDate: time.Now(),
	}

	// Insert first, then bump the counter: a failed insert must not move
	// applicationCount, and a duplicate surfaces before any side effect.
	if err := s.appRepo.Create(db, app); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrDuplicateApplication
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.jobRepo.IncrementApplicationCount(db, req.JobID, 1); err != nil {
		logger.Warn("failed to increment application count",
			"job_id", req.JobID, "error", err)
	}

	return app, nil
}

func (s *ApplicationServiceImpl) Get(db *gorm.DB, caller auth.Caller, id string) (*dto.ApplicationResponse, error) {
	app, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanViewApplication(caller, app, app.Job) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

// MyApplications lists the caller's own applications with job summaries.
func (s *ApplicationServiceImpl) MyApplications(db *gorm.DB, caller auth.Caller, req dto.MyApplicationsRequest) ([]dto.ApplicationResponse, int64, error) {
	apps, total, err := s.appRepo.ListByUser(db, caller.UserID, repositories.ApplicationFilter{
		Status:   models.ApplicationStatus(req.Status),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return toApplicationResponses(apps), total, nil
}

// ListByJob lists applications to one job, for the job's owner or an admin.
func (s *ApplicationServiceImpl) ListByJob(db *gorm.DB, caller auth.Caller, jobID string, req dto.MyApplicationsRequest) ([]dto.ApplicationResponse, int64, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, 0, apperrors.ErrJobNotFound(err)
		}
		return nil, 0, apperrors.InternalError(err)
	}

	if !auth.CanUpdateApplicationStatus(caller, job) {
		return nil, 0, apperrors.ErrInsufficientPermissions
	}

	apps, total, err := s.appRepo.ListByJob(db, jobID, repositories.ApplicationFilter{
		Status:   models.ApplicationStatus(req.Status),
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return toApplicationResponses(apps), total, nil
}

// ListAll is the admin view across every job and applicant.
func (s *ApplicationServiceImpl) ListAll(db *gorm.DB, caller auth.Caller, req dto.ListApplicationsRequest) ([]dto.ApplicationResponse, int64, error) {
	if !caller.IsAdmin() {
		return nil, 0, apperrors.ErrInsufficientPermissions
	}

	apps, total, err := s.appRepo.ListAll(db, repositories.ApplicationFilter{
		Status:   models.ApplicationStatus(req.Status),
		JobID:    req.JobID,
		UserID:   req.UserID,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return toApplicationResponses(apps), total, nil
}

// UpdateStatus moves the application through the hiring funnel and stores
// any interview or offer details that came with the decision. The applicant
// is notified by email on a best-effort basis.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, caller auth.Caller, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	app, err := s.findByID(db, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanUpdateApplicationStatus(caller, app.Job) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	app.Status = models.ApplicationStatus(req.Status)
	if req.Notes != "" {
		app.Notes = req.Notes
	}
	if req.InterviewDate != nil {
		app.InterviewDate = req.InterviewDate
	}
	if req.InterviewLocation != "" {
		app.InterviewLocation = req.InterviewLocation
	}
	if req.InterviewType != "" {
		app.InterviewType = models.InterviewType(req.InterviewType)
	}
	if req.Feedback != "" {
		app.Feedback = req.Feedback
	}
	if req.SalaryOffered != nil {
		app.SalaryOffered = req.SalaryOffered
	}
	if req.StartDate != nil {
		app.StartDate = req.StartDate
	}

	if err := s.appRepo.Update(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyStatusChange(app)

	return app, nil
}

// Delete withdraws the application and releases its slot in the job's
// counter, so the applicant can apply again later.
func (s *ApplicationServiceImpl) Delete(db *gorm.DB, caller auth.Caller, id string) error {
	app, err := s.findByID(db, id)
	if err != nil {
		return err
	}

	if !auth.CanDeleteApplication(caller, app) {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.appRepo.Delete(db, id); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if err := s.jobRepo.IncrementApplicationCount(db, app.JobID, -1); err != nil {
		logger.Warn("failed to decrement application count",
			"job_id", app.JobID, "error", err)
	}

	return nil
}

func (s *ApplicationServiceImpl) EmployerStats(db *gorm.DB, caller auth.Caller) (*dto.ApplicationStatsResponse, error) {
	if caller.Role != models.UserRoleEmployer && !caller.IsAdmin() {
		return nil, apperrors.ErrInsufficientPermissions
	}

	breakdown, err := s.appRepo.EmployerStatusBreakdown(db, caller.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var total int64
	for _, count := range breakdown {
		total += count
	}

	return &dto.ApplicationStatsResponse{
		Overview: dto.ApplicationOverview{
			TotalApplications: total,
			Applied:           breakdown[models.ApplicationStatusApplied],
			UnderReview:       breakdown[models.ApplicationStatusUnderReview],
			Shortlisted:       breakdown[models.ApplicationStatusShortlisted],
			Interview:         breakdown[models.ApplicationStatusInterview],
			Accepted:          breakdown[models.ApplicationStatusAccepted],
			Rejected:          breakdown[models.ApplicationStatusRejected],
		},
		StatusBreakdown: breakdown,
	}, nil
}

func (s *ApplicationServiceImpl) findByID(db *gorm.DB, id string) (*models.Application, error) {
	app, err := s.appRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// notifyStatusChange emails the applicant about the new status. Failures
// are logged, never surfaced: the status update already committed.
func (s *ApplicationServiceImpl) notifyStatusChange(app *models.Application) {
	if s.mailer == nil || app.User == nil || app.Job == nil {
		return
	}

	name, data, msg := email.StatusUpdateEmail(
		app.User.Email, app.User.Name, app.Job.Title, app.Job.Company, app.Status)

	go func() {
		if err := s.mailer.SendWithTemplate(name, data, msg); err != nil {
			logger.Warn("failed to send status update email",
				"application_id", app.ID, "error", err)
		}
	}()
}

func toApplicationResponse(app *models.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{Application: *app}
	if app.Job != nil {
		summary := app.Job.Summary()
		resp.Job = &summary
	}
	if app.User != nil {
		applicant := app.User.ApplicantSummary()
		resp.Applicant = &applicant
	}
	return resp
}

func toApplicationResponses(apps []models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, toApplicationResponse(&apps[i]))
	}
	return responses
}
