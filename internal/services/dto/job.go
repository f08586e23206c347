package dto

import (
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
)

type SalaryRequest struct {
	Min      float64 `json:"min" validate:"gte=0"`
	Max      float64 `json:"max" validate:"gte=0"`
	Currency string  `json:"currency" validate:"omitempty,is-currency"`
	Period   string  `json:"period" validate:"omitempty,is-salary-period"`
}

type CreateJobRequest struct {
	Title               string        `json:"title" validate:"required,min=5,max=100"`
	Company             string        `json:"company" validate:"required,min=2,max=100"`
	Description         string        `json:"description" validate:"required,min=50,max=2000"`
	Requirements        string        `json:"requirements" validate:"required,min=20,max=1000"`
	Location            string        `json:"location" validate:"required"`
	Category            string        `json:"category" validate:"required,is-job-category"`
	Experience          string        `json:"experience" validate:"required,is-experience-level"`
	Salary              SalaryRequest `json:"salary"`
	Skills              []string      `json:"skills"`
	Benefits            []string      `json:"benefits"`
	Tags                []string      `json:"tags"`
	ApplicationDeadline *time.Time    `json:"applicationDeadline"`
	Remote              bool          `json:"remote"`
	Featured            bool          `json:"featured"`
}

// UpdateJobRequest is a partial update; nil fields are left unchanged.
// Changed fields are validated against the same bounds as creation.
type UpdateJobRequest struct {
	Title               *string        `json:"title" validate:"omitempty,min=5,max=100"`
	Company             *string        `json:"company" validate:"omitempty,min=2,max=100"`
	Description         *string        `json:"description" validate:"omitempty,min=50,max=2000"`
	Requirements        *string        `json:"requirements" validate:"omitempty,min=20,max=1000"`
	Location            *string        `json:"location"`
	Category            *string        `json:"category" validate:"omitempty,is-job-category"`
	Experience          *string        `json:"experience" validate:"omitempty,is-experience-level"`
	Salary              *SalaryRequest `json:"salary"`
	Skills              *[]string      `json:"skills"`
	Benefits            *[]string      `json:"benefits"`
	Tags                *[]string      `json:"tags"`
	ApplicationDeadline *time.Time     `json:"applicationDeadline"`
	Remote              *bool          `json:"remote"`
	Featured            *bool          `json:"featured"`
	Status              *string        `json:"status" validate:"omitempty,is-job-status"`
}

type SearchJobsRequest struct {
	Search     string   `form:"search"`
	Location   string   `form:"location"`
	Category   string   `form:"category" validate:"omitempty,is-job-category"`
	Experience string   `form:"experience" validate:"omitempty,is-experience-level"`
	Remote     *bool    `form:"remote"`
	MinSalary  *float64 `form:"minSalary" validate:"omitempty,gte=0"`
	MaxSalary  *float64 `form:"maxSalary" validate:"omitempty,gte=0"`
	Featured   *bool    `form:"featured"`
	Sort       string   `form:"sort" validate:"omitempty,oneof=newest oldest salary-high salary-low applications"`
	Page       int      `form:"-"`
	PageSize   int      `form:"-"`
}

type MyJobsRequest struct {
	Status   string `form:"status" validate:"omitempty,is-job-status"`
	Page     int    `form:"-"`
	PageSize int    `form:"-"`
}

// JobResponse is a job with the poster's public subset and, for an
// authenticated jobseeker, the viewer's application annotations.
type JobResponse struct {
	models.Job
	Poster            *models.PublicProfile     `json:"poster,omitempty"`
	HasApplied        *bool                     `json:"hasApplied,omitempty"`
	ApplicationStatus *models.ApplicationStatus `json:"applicationStatus,omitempty"`
}

type JobStatsResponse struct {
	Overview   repositories.JobOverview      `json:"overview"`
	Categories []repositories.CategoryCount  `json:"categories"`
}
