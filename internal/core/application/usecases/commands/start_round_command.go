package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartRoundCommandIsNotConstructed = errors.New(
	"StartRoundCommand must be created via NewStartRoundCommand constructor",
)

// StartRoundCommand represents a driver departing with a ready round.
type StartRoundCommand struct { //nolint:recvcheck //using for validation
	roundID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRoundCommand creates a command to start the driver's round.
func NewStartRoundCommand(roundID kernel.UUID, driverID kernel.UUID) (StartRoundCommand, error) {
	startCommand := StartRoundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setRoundID(roundID),
		startCommand.setDriverID(driverID),
	); err != nil {
		return StartRoundCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartRoundCommandIsNotConstructed if validation fails.
func (c StartRoundCommand) Validate() error {
	return c.guard.Validate(ErrStartRoundCommandIsNotConstructed)
}

// RoundID returns the identifier of the round to start.
func (c StartRoundCommand) RoundID() kernel.UUID {
	return c.roundID
}

// DriverID returns the identifier of the acting driver.
func (c StartRoundCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *StartRoundCommand) setRoundID(roundID kernel.UUID) error {
	if err := roundID.Validate(); err != nil {
		return err
	}

	c.roundID = roundID
	return nil
}

func (c *StartRoundCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
