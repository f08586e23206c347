package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
)

// TokenWorker prunes expired refresh tokens.
type TokenWorker struct {
	db       *gorm.DB
	userRepo repositories.UserRepository
}

func NewTokenWorker(db *gorm.DB) *TokenWorker {
	return &TokenWorker{
		db:       db,
		userRepo: repositories.NewUserRepository(),
	}
}

func (w *TokenWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
}

func (w *TokenWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token worker stopped")
			return
		case <-ticker.C:
			if err := w.userRepo.CleanExpiredRefreshTokens(w.db); err != nil {
				logger.Error("failed to clean expired refresh tokens", "error", err)
			}
		}
	}
}
