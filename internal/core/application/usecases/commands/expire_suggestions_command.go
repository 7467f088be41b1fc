package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrExpireSuggestionsCommandIsNotConstructed = errors.New(
	"ExpireSuggestionsCommand must be created via NewExpireSuggestionsCommand constructor",
)

// ExpireSuggestionsCommand triggers a sweep over planner suggestions,
// transitioning every pending or accepted one whose expiry timestamp has
// passed. Expired suggestions are terminal: never claimable, never revived.
type ExpireSuggestionsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireSuggestionsCommand creates a new command to trigger the expiry
// sweep. This is a parameterless command run on a schedule.
func NewExpireSuggestionsCommand() ExpireSuggestionsCommand {
	return ExpireSuggestionsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireSuggestionsCommandIsNotConstructed if validation fails.
func (c *ExpireSuggestionsCommand) Validate() error {
	return c.guard.Validate(
		ErrExpireSuggestionsCommandIsNotConstructed,
	)
}
