package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type ApplyRequest struct {
	JobID       string `json:"jobId" validate:"required,uuid"`
	CoverLetter string `json:"coverLetter" validate:"omitempty,max=1000"`
}

// UpdateApplicationStatusRequest accepts any status in the enum; there is
// deliberately no transition graph between statuses.
type UpdateApplicationStatusRequest struct {
	Status            string     `json:"status" validate:"required,is-application-status"`
	Notes             string     `json:"notes" validate:"omitempty,max=500"`
	InterviewDate     *time.Time `json:"interviewDate"`
	InterviewLocation string     `json:"interviewLocation"`
	InterviewType     string     `json:"interviewType" validate:"omitempty,is-interview-type"`
	Feedback          string     `json:"feedback" validate:"omitempty,max=1000"`
	SalaryOffered     *float64   `json:"salaryOffered"`
	StartDate         *time.Time `json:"startDate"`
}

type MyApplicationsRequest struct {
	Status   string `form:"status" validate:"omitempty,is-application-status"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

type ListApplicationsRequest struct {
	Status   string `form:"status" validate:"omitempty,is-application-status"`
	JobID    string `form:"jobId" validate:"omitempty,uuid"`
	UserID   string `form:"userId" validate:"omitempty,uuid"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

// ApplicationResponse joins the record with a job summary (for applicants)
// and/or an applicant summary (for employers and admins).
type ApplicationResponse struct {
	models.Application
	Job       *models.JobSummary       `json:"job,omitempty"`
	Applicant *models.ApplicantSummary `json:"applicant,omitempty"`
}

// ApplicationStatsResponse mirrors the stats endpoint of the source API:
// a flat overview plus a per-status breakdown.
type ApplicationStatsResponse struct {
	Overview        ApplicationOverview                  `json:"overview"`
	StatusBreakdown map[models.ApplicationStatus]int64   `json:"statusBreakdown"`
}

type ApplicationOverview struct {
	TotalApplications int64 `json:"totalApplications"`
	Applied           int64 `json:"applied"`
	UnderReview       int64 `json:"underReview"`
	Shortlisted       int64 `json:"shortlisted"`
	Interview         int64 `json:"interview"`
	Accepted          int64 `json:"accepted"`
	Rejected          int64 `json:"rejected"`
}
