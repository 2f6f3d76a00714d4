package jobs

import (
	"context"
	"log/slog"
	"time"

	"waiterbot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AbandonedOrderResetJob manages the scheduled sweep of abandoned order
// slots. Runs every minute and drops slots whose sessions have been silent
// for longer than the configured threshold.
type AbandonedOrderResetJob struct {
	handler   commands.ResetAbandonedOrdersCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAbandonedOrderResetJob creates a new job for sweeping abandoned order
// slots. Uses ResetAbandonedOrdersCommandHandler to drop stale slots every
// minute.
func NewAbandonedOrderResetJob(
	handler commands.ResetAbandonedOrdersCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *AbandonedOrderResetJob {
	return &AbandonedOrderResetJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "abandoned_order_reset_job"),
	}
}

// Start begins the sweep job to run every minute.
func (j *AbandonedOrderResetJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewResetAbandonedOrdersCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned order reset job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Abandoned order reset job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Reset abandoned orders", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned order reset job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *AbandonedOrderResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Abandoned order reset job stopped")
}
