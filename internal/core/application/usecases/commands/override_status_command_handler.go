package commands

import (
	"context"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
)

// OverrideStatusCommandHandler applies a manual status override. Only
// shipments sitting in Interwencja accept an override; the aggregate
// enforces that.
type OverrideStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewOverrideStatusCommandHandler creates a handler for status
// overrides.
func NewOverrideStatusCommandHandler(uowFactory OrderUoWFactory) OverrideStatusCommandHandler {
	return OverrideStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override.
func (h *OverrideStatusCommandHandler) Handle(ctx context.Context, cmd OverrideStatusCommand) (*shipment.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.OverrideStatus(cmd.Status()); err != nil {
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
