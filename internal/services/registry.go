package services

import (
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
)

// ServiceContainer wires every service over the shared repositories.
type ServiceContainer struct {
	Auth        AuthService
	User        UserService
	Job         JobService
	Application ApplicationService
}

func NewServiceContainer(mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()

	return &ServiceContainer{
		Auth:        NewAuthService(userRepo),
		User:        NewUserService(userRepo),
		Job:         NewJobService(jobRepo, appRepo),
		Application: NewApplicationService(appRepo, jobRepo, userRepo, mailer),
	}
}
