package commands

import (
	"errors"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
)

// CreateDriverCommand represents a carrier registering a new driver.
// The login code and PIN are generated by the handler, not supplied by
// the caller.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	ownerID   kernel.UUID
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
func NewCreateDriverCommand(ownerID kernel.UUID, firstName, lastName string) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setName(firstName, lastName),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// OwnerID returns the carrier registering the driver.
func (c CreateDriverCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// FirstName returns the driver's first name.
func (c CreateDriverCommand) FirstName() string {
	return c.firstName
}

// LastName returns the driver's last name.
func (c CreateDriverCommand) LastName() string {
	return c.lastName
}

func (c *CreateDriverCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateDriverCommand) setName(firstName, lastName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	if lastName == "" {
		return ErrLastNameIsRequired
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}
