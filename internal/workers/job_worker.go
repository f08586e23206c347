package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
)

// JobWorker runs the periodic maintenance tasks of the job catalog:
// closing postings past their deadline and repairing application counters.
type JobWorker struct {
	db      *gorm.DB
	jobRepo repositories.JobRepository
}

func NewJobWorker(db *gorm.DB) *JobWorker {
	return &JobWorker{
		db:      db,
		jobRepo: repositories.NewJobRepository(),
	}
}

func (w *JobWorker) Start(ctx context.Context) {
	go w.closeExpiredJobs(ctx)
	go w.reconcileApplicationCounts(ctx)
}

// closeExpiredJobs flips active jobs whose applicationDeadline has passed
// to closed, hourly.
func (w *JobWorker) closeExpiredJobs(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job worker stopped")
			return
		case <-ticker.C:
			closed, err := w.jobRepo.CloseExpired(w.db, time.Now())
			if err != nil {
				logger.Error("failed to close expired jobs", "error", err)
			} else if closed > 0 {
				logger.Info("closed expired jobs", "count", closed)
			}
		}
	}
}

// reconcileApplicationCounts repairs counter drift against the actual
// application rows, daily.
func (w *JobWorker) reconcileApplicationCounts(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			repaired, err := w.jobRepo.ReconcileApplicationCounts(w.db)
			if err != nil {
				logger.Error("failed to reconcile application counts", "error", err)
			} else if repaired > 0 {
				logger.Warn("repaired application count drift", "jobs", repaired)
			}
		}
	}
}
