package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrMarkStopDeliveredCommandIsNotConstructed = errors.New(
	"MarkStopDeliveredCommand must be created via NewMarkStopDeliveredCommand constructor",
)

// MarkStopDeliveredCommand represents a driver handing over the order at the
// next stop of an in-progress round.
type MarkStopDeliveredCommand struct { //nolint:recvcheck //using for validation
	roundID  kernel.UUID
	stopID   kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkStopDeliveredCommand creates a command to deliver one stop.
func NewMarkStopDeliveredCommand(
	roundID kernel.UUID,
	stopID kernel.UUID,
	driverID kernel.UUID,
) (MarkStopDeliveredCommand, error) {
	deliverCommand := MarkStopDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliverCommand.setRoundID(roundID),
		deliverCommand.setStopID(stopID),
		deliverCommand.setDriverID(driverID),
	); err != nil {
		return MarkStopDeliveredCommand{}, err
	}

	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkStopDeliveredCommandIsNotConstructed if validation fails.
func (c MarkStopDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkStopDeliveredCommandIsNotConstructed)
}

// RoundID returns the identifier of the round being progressed.
func (c MarkStopDeliveredCommand) RoundID() kernel.UUID {
	return c.roundID
}

// StopID returns the identifier of the stop being delivered.
func (c MarkStopDeliveredCommand) StopID() kernel.UUID {
	return c.stopID
}

// DriverID returns the identifier of the acting driver.
func (c MarkStopDeliveredCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *MarkStopDeliveredCommand) setRoundID(roundID kernel.UUID) error {
	if err := roundID.Validate(); err != nil {
		return err
	}

	c.roundID = roundID
	return nil
}

func (c *MarkStopDeliveredCommand) setStopID(stopID kernel.UUID) error {
	if err := stopID.Validate(); err != nil {
		return err
	}

	c.stopID = stopID
	return nil
}

func (c *MarkStopDeliveredCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
