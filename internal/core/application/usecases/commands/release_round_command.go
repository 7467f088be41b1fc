package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrReleaseRoundCommandIsNotConstructed = errors.New(
	"ReleaseRoundCommand must be created via NewReleaseRoundCommand constructor",
)

// ReleaseRoundCommand represents a driver backing out of a whole ready round,
// undoing the claim and, when the round came from an unexpired suggestion,
// reopening that suggestion for other drivers.
type ReleaseRoundCommand struct { //nolint:recvcheck //using for validation
	roundID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseRoundCommand creates a command to release a whole round.
func NewReleaseRoundCommand(roundID kernel.UUID, driverID kernel.UUID) (ReleaseRoundCommand, error) {
	releaseCommand := ReleaseRoundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		releaseCommand.setRoundID(roundID),
		releaseCommand.setDriverID(driverID),
	); err != nil {
		return ReleaseRoundCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseRoundCommandIsNotConstructed if validation fails.
func (c ReleaseRoundCommand) Validate() error {
	return c.guard.Validate(ErrReleaseRoundCommandIsNotConstructed)
}

// RoundID returns the identifier of the round being released.
func (c ReleaseRoundCommand) RoundID() kernel.UUID {
	return c.roundID
}

// DriverID returns the identifier of the acting driver.
func (c ReleaseRoundCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ReleaseRoundCommand) setRoundID(roundID kernel.UUID) error {
	if err := roundID.Validate(); err != nil {
		return err
	}

	c.roundID = roundID
	return nil
}

func (c *ReleaseRoundCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
