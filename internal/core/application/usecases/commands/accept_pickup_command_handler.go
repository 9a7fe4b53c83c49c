package commands

import (
	"context"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
)

// AcceptPickupCommandHandler records a driver collecting a parcel. The
// code check and the status precondition both run against the row read
// inside the transaction, so a concurrent transition on the same order
// cannot slip between check and write.
type AcceptPickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptPickupCommandHandler creates a handler for pickup
// acceptance.
func NewAcceptPickupCommandHandler(uowFactory OrderUoWFactory) AcceptPickupCommandHandler {
	return AcceptPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup. A failed code or precondition check
// appends nothing to history.
func (h *AcceptPickupCommandHandler) Handle(ctx context.Context, cmd AcceptPickupCommand) (shipment.Status, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.StatusUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.StatusUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByOrderCode(ctx, cmd.OrderCode())
	if err != nil {
		return shipment.StatusUnknown, err
	}

	if err = aggregate.AcceptPickup(cmd.PickupCode()); err != nil {
		return shipment.StatusUnknown, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return shipment.StatusUnknown, err
	}

	change, err := shipment.NewStatusChange(kernel.NewUUID(), aggregate.ID(), aggregate.Status(), time.Now())
	if err != nil {
		return shipment.StatusUnknown, err
	}
	if err = orderRepo.AppendHistory(ctx, change); err != nil {
		return shipment.StatusUnknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.StatusUnknown, err
	}

	return aggregate.Status(), nil
}
