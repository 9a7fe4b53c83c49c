package commands

import (
	"context"
	"errors"

	"couriernet/internal/core/domain/model/driver"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/ports"
)

// ErrDriverCodeSpaceExhausted is returned when the handler cannot find
// an unused driver login code within the retry cap.
var ErrDriverCodeSpaceExhausted = errors.New("could not generate a unique driver code")

// driverCodeRetryCap bounds the generate-and-check loop.
const driverCodeRetryCap = 100

// CreateDriverCommandHandler registers a driver for a carrier and
// issues the generated login code and PIN.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver
// registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration. The login code is generated and
// checked for uniqueness inside the transaction.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	idCode, err := h.uniqueIDCode(ctx, driverRepo)
	if err != nil {
		return nil, err
	}

	aggregate, err := driver.NewDriver(
		kernel.NewUUID(),
		cmd.OwnerID(),
		cmd.FirstName(),
		cmd.LastName(),
		idCode,
		driver.RandomPinCode(),
	)
	if err != nil {
		return nil, err
	}

	if err = driverRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *CreateDriverCommandHandler) uniqueIDCode(ctx context.Context, driverRepo ports.DriverRepository) (string, error) {
	for range driverCodeRetryCap {
		code := driver.RandomIDCode()
		exists, err := driverRepo.ExistsByIDCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrDriverCodeSpaceExhausted
}
