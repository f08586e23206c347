package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"jobboard_backend/internal/models"
)

// registerCustomRules installs the enum validation tags used by the DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-category", validateJobCategory)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-experience-level", validateExperienceLevel)
	mustRegister("is-salary-period", validateSalaryPeriod)
	mustRegister("is-currency", validateCurrency)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-interview-type", validateInterviewType)
	mustRegister("is-company-size", validateCompanySize)
}

// Empty values pass all enum rules; 'required' handles presence.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleJobseeker, models.UserRoleEmployer, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateJobCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobCategory(value) {
	case models.JobCategoryInternship, models.JobCategoryFullTime,
		models.JobCategoryPartTime, models.JobCategoryContract,
		models.JobCategoryFreelance:
		return true
	default:
		return false
	}
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusActive, models.JobStatusPaused, models.JobStatusClosed:
		return true
	default:
		return false
	}
}

func validateExperienceLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ExperienceLevel(value) {
	case models.ExperienceEntry, models.ExperienceMid,
		models.ExperienceSenior, models.ExperienceExecutive:
		return true
	default:
		return false
	}
}

func validateSalaryPeriod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SalaryPeriod(value) {
	case models.SalaryPeriodHourly, models.SalaryPeriodMonthly, models.SalaryPeriodYearly:
		return true
	default:
		return false
	}
}

func validateCurrency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, c := range models.Currencies {
		if models.Currency(value) == c {
			return true
		}
	}
	return false
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, s := range models.ApplicationStatuses {
		if models.ApplicationStatus(value) == s {
			return true
		}
	}
	return false
}

func validateInterviewType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.InterviewType(value) {
	case models.InterviewTypePhone, models.InterviewTypeVideo,
		models.InterviewTypeInPerson, models.InterviewTypeTechnical:
		return true
	default:
		return false
	}
}

func validateCompanySize(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	for _, s := range models.CompanySizes {
		if value == s {
			return true
		}
	}
	return false
}
