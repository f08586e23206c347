package auth

import "jobboard_backend/internal/models"

// Capability checks for the ownership rules. Every handler and service goes
// through these instead of comparing role strings inline.

// Caller identifies an authenticated requester.
type Caller struct {
	UserID string
	Role   models.UserRole
}

func (c Caller) IsAdmin() bool {
	return c.Role == models.UserRoleAdmin
}

// CanManageJob reports whether the caller may update or delete the job.
// Jobs are publicly readable but mutable only by their poster or an admin.
func CanManageJob(caller Caller, job *models.Job) bool {
	return caller.IsAdmin() || caller.UserID == job.PostedByID
}

// CanViewApplication reports whether the caller may read the application.
// Visible to the applicant, the employer owning the referenced job, and
// admins.
func CanViewApplication(caller Caller, app *models.Application, job *models.Job) bool {
	if caller.IsAdmin() {
		return true
	}
	if caller.UserID == app.UserID {
		return true
	}
	return job != nil && caller.UserID == job.PostedByID
}

// CanUpdateApplicationStatus reports whether the caller may move the
// application through the hiring funnel: the owning employer or an admin.
func CanUpdateApplicationStatus(caller Caller, job *models.Job) bool {
	return caller.IsAdmin() || (job != nil && caller.UserID == job.PostedByID)
}

// CanDeleteApplication reports whether the caller may withdraw or remove
// the application. The applicant and admins only; employers cannot delete
// applications to their jobs.
func CanDeleteApplication(caller Caller, app *models.Application) bool {
	return caller.IsAdmin() || caller.UserID == app.UserID
}

// CanManageUser reports whether the caller may modify the account: the
// account owner or an admin.
func CanManageUser(caller Caller, userID string) bool {
	return caller.IsAdmin() || caller.UserID == userID
}
