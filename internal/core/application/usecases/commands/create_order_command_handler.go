package commands

import (
	"context"
	"errors"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/route"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/domain/services"
	"couriernet/internal/core/ports"
	"couriernet/internal/pkg/errs"
)

// ErrOrderCodeSpaceExhausted is returned when the generate-and-check
// loop fails to find an unused order code within the retry cap. With a
// 14-digit code space this indicates a store problem, not bad luck.
var ErrOrderCodeSpaceExhausted = errors.New("could not generate a unique order code")

// orderCodeRetryCap bounds the generate-and-check loop.
const orderCodeRetryCap = 100

// CreateOrderCommandHandler books a shipment: it re-validates the
// course segment, re-checks capacity under a relation lock, debits the
// customer wallet, and persists the new order with its first history
// row in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
	finder     services.CourseFinder
}

// NewCreateOrderCommandHandler creates a handler for shipment booking.
func NewCreateOrderCommandHandler(uowFactory SettlementUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		finder:     services.NewCourseFinder(),
	}
}

// Handle processes the booking. The relation row lock serializes
// capacity checks per relation, and the wallet row lock serializes
// debits per wallet; both are held until commit.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*shipment.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	targetDate := now
	if !cmd.DeliverToday() {
		targetDate = now.AddDate(0, 0, 1)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeRepo := uow.RouteRepository()
	relation, err := routeRepo.GetRelationForUpdate(ctx, cmd.RelationID())
	if err != nil {
		return nil, err
	}

	stops, err := routeRepo.GetRelationStops(ctx, relation.ID())
	if err != nil {
		return nil, err
	}

	startStop, endStop, err := matchSegment(stops, cmd.StartStop(), cmd.EndStop())
	if err != nil {
		return nil, err
	}

	vehicle, err := routeRepo.GetVehicle(ctx, relation.VehicleID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	activeOrders, err := orderRepo.GetActiveByRelationAndDate(ctx, relation.ID(), targetDate)
	if err != nil {
		return nil, err
	}
	if h.finder.ActiveCapacity(activeOrders)+cmd.Size().Weight() > vehicle.Capacity() {
		return nil, ErrConcurrencyConflict
	}

	walletRepo := uow.WalletRepository()
	customerWallet, err := walletRepo.GetByUserForUpdate(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if err = customerWallet.Debit(cmd.Price()); err != nil {
		return nil, err
	}
	if err = walletRepo.Update(ctx, customerWallet); err != nil {
		return nil, err
	}

	orderCode, err := uniqueOrderCode(ctx, orderRepo)
	if err != nil {
		return nil, err
	}

	aggregate, err := shipment.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		relation.ID(),
		cmd.Size(),
		startStop.Name(),
		endStop.Name(),
		startStop.Departure().On(targetDate),
		endStop.Arrival().On(targetDate),
		cmd.Price(),
		orderCode,
	)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
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

	return aggregate, nil
}

// matchSegment finds the first start-stop occurrence followed by the
// end stop within the ordered stop list.
func matchSegment(stops []*route.Stop, startName, endName string) (*route.Stop, *route.Stop, error) {
	for i, start := range stops {
		if start.Name() != startName {
			continue
		}
		for _, end := range stops[i+1:] {
			if end.Name() == endName {
				return start, end, nil
			}
		}
	}
	return nil, nil, errs.NewObjectNotFoundError("stop", startName+" -> "+endName)
}

// uniqueOrderCode generates order codes until one is unused, bounded by
// the retry cap.
func uniqueOrderCode(ctx context.Context, orderRepo ports.OrderRepository) (string, error) {
	for range orderCodeRetryCap {
		code := shipment.RandomOrderCode()
		exists, err := orderRepo.ExistsByOrderCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrOrderCodeSpaceExhausted
}
