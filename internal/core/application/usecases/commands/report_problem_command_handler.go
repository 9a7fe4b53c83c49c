package commands

import (
	"context"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
)

// ReportProblemCommandHandler files an intervention ticket and forces
// the shipment into Interwencja. The ticket, the status change, and the
// history row commit together.
type ReportProblemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReportProblemCommandHandler creates a handler for problem reports.
func NewReportProblemCommandHandler(uowFactory OrderUoWFactory) ReportProblemCommandHandler {
	return ReportProblemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the problem report.
func (h *ReportProblemCommandHandler) Handle(ctx context.Context, cmd ReportProblemCommand) (*shipment.Problem, error) {
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

	if err = aggregate.Intervene(); err != nil {
		return nil, err
	}

	now := time.Now()
	problem, err := shipment.NewProblem(kernel.NewUUID(), aggregate.ID(), cmd.CustomerID(), cmd.Description(), now)
	if err != nil {
		return nil, err
	}
	if err = orderRepo.AddProblem(ctx, problem); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	change, err := shipment.NewStatusChange(kernel.NewUUID(), aggregate.ID(), aggregate.Status(), now)
	if err != nil {
		return nil, err
	}
	if err = orderRepo.AppendHistory(ctx, change); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return problem, nil
}
