package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a lookup miss (gorm.ErrRecordNotFound or a repository
// sentinel) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict is a business-rule rejection. The source API reports these as
// 400, not 409, so the envelope keeps that shape.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusBadRequest)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// Predefined errors for the common static cases.

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 6 characters",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrAccountDeactivated = New(
	CodeForbidden,
	"auth",
	"Your account has been deactivated",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// Jobs

func ErrJobNotFound(err error) *AppError {
	return ErrNotFound(err, "job", "Job not found")
}

var ErrJobNotAcceptingApplications = New(
	CodeConflict,
	"job",
	"This job is no longer accepting applications",
	http.StatusBadRequest,
)

// Applications

func ErrApplicationNotFound(err error) *AppError {
	return ErrNotFound(err, "application", "Application not found")
}

var ErrDuplicateApplication = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusBadRequest,
)

var ErrResumeRequired = New(
	CodeConflict,
	"application",
	"Please upload your resume before applying for jobs",
	http.StatusBadRequest,
)

// Uploads

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
