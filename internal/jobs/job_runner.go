package jobs

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"taxibot-backend/internal/config"
	"taxibot-backend/internal/logger"
	"taxibot-backend/internal/repository/postgres"
)

// JobRunner coordinates the maintenance jobs that keep the marketplace tidy.
// These run outside the core engine: the negotiation and order state machines
// themselves carry no timeouts.
type JobRunner struct {
	db     *sql.DB
	store  *postgres.Store
	config *config.Config
	log    *slog.Logger
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		config: cfg,
		log:    logger.WithService("jobs"),
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			jr.log.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	jr.log.Info("Starting job", "job", jobName)
	jobFunc()
	jr.log.Info("Job completed", "job", jobName)
}

// ExpireStaleOrders cancels pending orders that nobody accepted within the
// configured window.
func (jr *JobRunner) ExpireStaleOrders() {
	jr.runWithRecovery("ExpireStaleOrders", func() {
		cutoff := time.Now().Add(-time.Duration(jr.config.Scheduler.StaleOrderMaxAgeHours) * time.Hour)
		n, err := jr.store.OrderRepository.CancelStale(context.Background(), cutoff)
		logger.DatabaseResult("ExpireStaleOrders", n, err, "cutoff", cutoff)
	})
}

// RejectStaleNegotiations closes pending counter-offers left without a
// response past the configured window.
func (jr *JobRunner) RejectStaleNegotiations() {
	jr.runWithRecovery("RejectStaleNegotiations", func() {
		cutoff := time.Now().Add(-time.Duration(jr.config.Scheduler.StaleNegotiationMaxHours) * time.Hour)
		n, err := jr.store.NegotiationRepository.RejectStale(context.Background(), cutoff)
		logger.DatabaseResult("RejectStaleNegotiations", n, err, "cutoff", cutoff)
	})
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireStaleOrders()
	jr.RejectStaleNegotiations()
}
