package commands

import (
	"context"
)

// HideOrderCommandHandler flips one party's visibility flag. No history
// row is appended; soft deletion is not a lifecycle transition.
type HideOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewHideOrderCommandHandler creates a handler for hiding orders.
func NewHideOrderCommandHandler(uowFactory OrderUoWFactory) HideOrderCommandHandler {
	return HideOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the visibility change.
func (h *HideOrderCommandHandler) Handle(ctx context.Context, cmd HideOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.Party() {
	case HistoryPartyUser:
		aggregate.MarkDeletedByUser()
	case HistoryPartyCarrier:
		aggregate.MarkDeletedByCarrier()
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
