package jobs

import (
	"camping-rental-admin/internal/config"
	"camping-rental-admin/internal/logger"
	"camping-rental-admin/internal/service"
)

// JobRunner coordinates scheduled background work. The only job today is the
// profit recalculation; it exists so the derived calendar tracks the rentals
// registry even when nobody presses refresh.
type JobRunner struct {
	profits service.ProfitsService
	config  *config.Config
}

func NewJobRunner(profits service.ProfitsService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		profits: profits,
		config:  cfg,
	}
}

// Config returns the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RecalculateProfits rebuilds the profit calendar from the open rentals.
func (jr *JobRunner) RecalculateProfits() {
	jr.runWithRecovery("RecalculateProfits", func() {
		calendar, err := jr.profits.Recalculate()
		if err != nil {
			logger.Error("Profit calendar rebuilt but not persisted", "error", err)
			return
		}
		logger.Info("Profit calendar refreshed", "entries", len(calendar))
	})
}
