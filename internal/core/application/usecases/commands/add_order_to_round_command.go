package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAddOrderToRoundCommandIsNotConstructed = errors.New(
	"AddOrderToRoundCommand must be created via NewAddOrderToRoundCommand constructor",
)

// AddOrderToRoundCommand represents a driver's request to append one more
// order to the round they already hold in ready status.
type AddOrderToRoundCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddOrderToRoundCommand creates a command to append an order to the
// driver's current ready round.
func NewAddOrderToRoundCommand(orderID kernel.UUID, driverID kernel.UUID) (AddOrderToRoundCommand, error) {
	addCommand := AddOrderToRoundCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setOrderID(orderID),
		addCommand.setDriverID(driverID),
	); err != nil {
		return AddOrderToRoundCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderToRoundCommandIsNotConstructed if validation fails.
func (c AddOrderToRoundCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderToRoundCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being appended.
func (c AddOrderToRoundCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the identifier of the acting driver.
func (c AddOrderToRoundCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AddOrderToRoundCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderToRoundCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
