package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	suggestionExpiryJob *SuggestionExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireSuggestionsHandler commands.ExpireSuggestionsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		suggestionExpiryJob: NewSuggestionExpiryJob(expireSuggestionsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.suggestionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start suggestion expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.suggestionExpiryJob.Stop()
}
