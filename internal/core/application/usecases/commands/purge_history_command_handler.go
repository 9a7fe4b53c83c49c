package commands

import (
	"context"
)

// PurgeHistoryCommandHandler erases an order entirely: its problem
// tickets, its status history, and the order row itself, in one
// transaction. The order lookup runs first so purging a missing order
// reports NotFound instead of silently deleting nothing.
type PurgeHistoryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeHistoryCommandHandler creates a handler for history purges.
func NewPurgeHistoryCommandHandler(uowFactory OrderUoWFactory) PurgeHistoryCommandHandler {
	return PurgeHistoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge.
func (h *PurgeHistoryCommandHandler) Handle(ctx context.Context, cmd PurgeHistoryCommand) error {
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

	if err = orderRepo.PurgeProblems(ctx, aggregate.ID()); err != nil {
		return err
	}
	if err = orderRepo.PurgeHistory(ctx, aggregate.ID()); err != nil {
		return err
	}
	if err = orderRepo.Remove(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
