package commands

import (
	"context"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
)

// AssignDriverCommandHandler assigns a driver to a shipment and
// regenerates both verification codes, invalidating any previously
// issued ones.
type AssignDriverCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver
// assignment.
func NewAssignDriverCommandHandler(uowFactory AssignUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment. The driver lookup doubles as the
// existence check; the status change and its history row commit
// together.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*shipment.Order, error) {
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

	assignee, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	err = aggregate.AssignDriver(assignee.ID(), shipment.RandomVerificationCode(), shipment.RandomVerificationCode())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := shipment.NewStatusChange(kernel.NewUUID(), aggregate.ID(), aggregate.Status(), time.Now())
	if err != nil {
		return nil, err
	}
	if err = orderRepo.AppendHistory(ctx, change); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
