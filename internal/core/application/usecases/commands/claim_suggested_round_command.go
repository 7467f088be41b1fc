package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrClaimSuggestedRoundCommandIsNotConstructed = errors.New(
	"ClaimSuggestedRoundCommand must be created via NewClaimSuggestedRoundCommand constructor",
)

// ClaimSuggestedRoundCommand represents a driver's request to claim a whole
// planner-proposed round, converting it into a delivery round in one step.
type ClaimSuggestedRoundCommand struct { //nolint:recvcheck //using for validation
	suggestionID kernel.UUID
	driverID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimSuggestedRoundCommand creates a command to claim a suggested round
// for a driver.
func NewClaimSuggestedRoundCommand(suggestionID kernel.UUID, driverID kernel.UUID) (ClaimSuggestedRoundCommand, error) {
	claimCommand := ClaimSuggestedRoundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setSuggestionID(suggestionID),
		claimCommand.setDriverID(driverID),
	); err != nil {
		return ClaimSuggestedRoundCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimSuggestedRoundCommandIsNotConstructed if validation fails.
func (c ClaimSuggestedRoundCommand) Validate() error {
	return c.guard.Validate(ErrClaimSuggestedRoundCommandIsNotConstructed)
}

// SuggestionID returns the identifier of the suggested round being claimed.
func (c ClaimSuggestedRoundCommand) SuggestionID() kernel.UUID {
	return c.suggestionID
}

// DriverID returns the identifier of the claiming driver.
func (c ClaimSuggestedRoundCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ClaimSuggestedRoundCommand) setSuggestionID(suggestionID kernel.UUID) error {
	if err := suggestionID.Validate(); err != nil {
		return err
	}

	c.suggestionID = suggestionID
	return nil
}

func (c *ClaimSuggestedRoundCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
