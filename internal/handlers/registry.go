package handlers

import (
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	UploadHandler      *UploadHandler
	FileHandler        *FileHandler
}

func NewAppHandlers(cfg *config.Config, sc *services.ServiceContainer, store storage.Storage) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.Auth, sc.User),
		UserHandler:        NewUserHandler(base, sc.User),
		JobHandler:         NewJobHandler(base, sc.Job),
		ApplicationHandler: NewApplicationHandler(base, sc.Application),
		UploadHandler:      NewUploadHandler(base, sc.User, store, cfg),
		FileHandler:        NewFileHandler(base, store),
	}
}
