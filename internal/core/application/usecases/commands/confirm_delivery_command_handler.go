package commands

import (
	"context"
	"time"

	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
)

// ConfirmDeliveryCommandHandler records the terminal delivery
// transition. It is the single point at which carrier funds increase
// for an order: the credit, the status change, and the history row
// commit together or not at all.
type ConfirmDeliveryCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory SettlementUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery. The carrier is resolved as the owner
// of the relation's vehicle; its wallet is credited under a row lock by
// exactly the order's stored price.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (shipment.Status, error) {
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

	if err = aggregate.ConfirmDelivery(cmd.DeliveryCode()); err != nil {
		return shipment.StatusUnknown, err
	}

	routeRepo := uow.RouteRepository()
	relation, err := routeRepo.GetRelation(ctx, aggregate.RelationID())
	if err != nil {
		return shipment.StatusUnknown, err
	}
	vehicle, err := routeRepo.GetVehicle(ctx, relation.VehicleID())
	if err != nil {
		return shipment.StatusUnknown, err
	}

	walletRepo := uow.WalletRepository()
	carrierWallet, err := walletRepo.GetByUserForUpdate(ctx, vehicle.OwnerID())
	if err != nil {
		return shipment.StatusUnknown, err
	}
	if err = carrierWallet.Credit(aggregate.Price()); err != nil {
		return shipment.StatusUnknown, err
	}
	if err = walletRepo.Update(ctx, carrierWallet); err != nil {
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
