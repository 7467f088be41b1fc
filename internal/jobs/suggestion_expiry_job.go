package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SuggestionExpiryJob manages the scheduled expiry of suggested rounds.
// Runs every 30 seconds to mark unclaimed suggestions past their expiry
// timestamp as expired, which returns their orders to the eligible pool.
type SuggestionExpiryJob struct {
	handler commands.ExpireSuggestionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSuggestionExpiryJob creates a new job for expiring suggested rounds.
// Uses ExpireSuggestionsCommandHandler to process the expiry sweep.
func NewSuggestionExpiryJob(handler commands.ExpireSuggestionsCommandHandler, logger *slog.Logger) *SuggestionExpiryJob {
	return &SuggestionExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "suggestion_expiry_job"),
	}
}

// Start begins the suggestion expiry job to run every 30 seconds.
func (j *SuggestionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireSuggestionsCommand()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Suggestion expiry job failed", "error", err)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired suggested rounds", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Suggestion expiry job started (running every 30 seconds)")
	return nil
}

// Stop stops the suggestion expiry job.
func (j *SuggestionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Suggestion expiry job stopped")
}
