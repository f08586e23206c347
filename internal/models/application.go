package models

import "time"

type Application struct {
	BaseModel
	// A user may apply to a given job at most once; the composite unique
	// index is the authoritative guard, the service pre-check is only a
	// fast path.
	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job;index" json:"userId"`
	JobID  string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job;index" json:"jobId"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Job  *Job  `gorm:"foreignKey:JobID" json:"-"`

	// Resume is snapshotted from the applicant's profile at apply time.
	Resume      string `gorm:"not null" json:"resume"`
	CoverLetter string `gorm:"size:1000" json:"coverLetter,omitempty"`

	Status      ApplicationStatus `gorm:"type:varchar(20);not null;index;default:'applied'" json:"status"`
	AppliedDate time.Time         `gorm:"index" json:"appliedDate"`

	Notes             string        `gorm:"size:500" json:"notes,omitempty"`
	InterviewDate     *time.Time    `json:"interviewDate,omitempty"`
	InterviewLocation string        `json:"interviewLocation,omitempty"`
	InterviewType     InterviewType `gorm:"type:varchar(10);default:'in-person'" json:"interviewType,omitempty"`
	Feedback          string        `gorm:"size:1000" json:"feedback,omitempty"`
	SalaryOffered     *float64      `json:"salaryOffered,omitempty"`
	StartDate         *time.Time    `json:"startDate,omitempty"`
}

// ApplicantSummary is the applicant subset joined onto employer-facing
// application views.
type ApplicantSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Profile Profile `json:"profile"`
}

func (u *User) ApplicantSummary() ApplicantSummary {
	return ApplicantSummary{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Profile: u.Profile,
	}
}
