package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrReleaseStopCommandIsNotConstructed = errors.New(
	"ReleaseStopCommand must be created via NewReleaseStopCommand constructor",
)

// ReleaseStopCommand represents a driver backing out of a single-stop round
// before departure. Grouped rounds must be released as a whole instead.
type ReleaseStopCommand struct { //nolint:recvcheck //using for validation
	roundID  kernel.UUID
	stopID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReleaseStopCommand creates a command to release one stop.
func NewReleaseStopCommand(
	roundID kernel.UUID,
	stopID kernel.UUID,
	driverID kernel.UUID,
) (ReleaseStopCommand, error) {
	releaseCommand := ReleaseStopCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		releaseCommand.setRoundID(roundID),
		releaseCommand.setStopID(stopID),
		releaseCommand.setDriverID(driverID),
	); err != nil {
		return ReleaseStopCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseStopCommandIsNotConstructed if validation fails.
func (c ReleaseStopCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStopCommandIsNotConstructed)
}

// RoundID returns the identifier of the round holding the stop.
func (c ReleaseStopCommand) RoundID() kernel.UUID {
	return c.roundID
}

// StopID returns the identifier of the stop being released.
func (c ReleaseStopCommand) StopID() kernel.UUID {
	return c.stopID
}

// DriverID returns the identifier of the acting driver.
func (c ReleaseStopCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *ReleaseStopCommand) setRoundID(roundID kernel.UUID) error {
	if err := roundID.Validate(); err != nil {
		return err
	}

	c.roundID = roundID
	return nil
}

func (c *ReleaseStopCommand) setStopID(stopID kernel.UUID) error {
	if err := stopID.Validate(); err != nil {
		return err
	}

	c.stopID = stopID
	return nil
}

func (c *ReleaseStopCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
