package models

type UserRole string
type JobCategory string
type JobStatus string
type ExperienceLevel string
type SalaryPeriod string
type Currency string
type ApplicationStatus string
type InterviewType string

const (
	UserRoleJobseeker UserRole = "jobseeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	JobCategoryInternship JobCategory = "internship"
	JobCategoryFullTime   JobCategory = "full-time"
	JobCategoryPartTime   JobCategory = "part-time"
	JobCategoryContract   JobCategory = "contract"
	JobCategoryFreelance  JobCategory = "freelance"

	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"

	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"

	SalaryPeriodHourly  SalaryPeriod = "hourly"
	SalaryPeriodMonthly SalaryPeriod = "monthly"
	SalaryPeriodYearly  SalaryPeriod = "yearly"

	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusUnderReview ApplicationStatus = "under-review"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"

	InterviewTypePhone     InterviewType = "phone"
	InterviewTypeVideo     InterviewType = "video"
	InterviewTypeInPerson  InterviewType = "in-person"
	InterviewTypeTechnical InterviewType = "technical"
)

// ApplicationStatuses lists every valid status, in funnel order. Stats
// breakdowns iterate this so all six buckets are always reported.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusApplied,
	ApplicationStatusUnderReview,
	ApplicationStatusShortlisted,
	ApplicationStatusInterview,
	ApplicationStatusAccepted,
	ApplicationStatusRejected,
}

// Currencies supported on job salary records.
var Currencies = []Currency{"USD", "EUR", "GBP", "INR", "CAD", "AUD"}

// CompanySizes are the allowed profile companySize buckets.
var CompanySizes = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
