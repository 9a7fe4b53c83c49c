package postgres_test

import (
	"context"
	"sync"
	"time"

	"couriernet/internal/core/application/usecases/commands"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/domain/model/wallet"
	"couriernet/internal/core/ports"
)

// settlementUoWFactory adapts the full unit-of-work factory to the
// scoped factory the booking handler asks for.
type settlementUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f settlementUoWFactory) Create() commands.SettlementUoW {
	return f.factory.Create()
}

func (suite *UnitOfWorkIntegrationTestSuite) seedWallet(userID kernel.UUID, balance float64) {
	ctx := context.Background()
	userWallet, err := wallet.NewWallet(kernel.NewUUID(), userID)
	suite.Require().NoError(err)
	if balance > 0 {
		err = userWallet.Credit(balance)
		suite.Require().NoError(err)
	}
	err = suite.factory.Create().WalletRepository().Add(ctx, userWallet)
	suite.Require().NoError(err)
}

// TestConcurrentBooking_CapacityNeverExceeded races two bookings whose
// combined weight would overbook the vehicle. The relation row lock
// serializes them; the loser's in-transaction capacity re-check must
// fail, never both succeed.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentBooking_CapacityNeverExceeded() {
	ctx := context.Background()
	fixture := suite.seedRoute()

	// An M order (weight 2) already booked for tomorrow leaves 4 of the
	// vehicle's 6 slots; only one more L (weight 3) fits.
	tomorrow := time.Now().AddDate(0, 0, 1)
	existing := suite.newTestOrder(fixture.relationID, tomorrow)
	err := suite.factory.Create().OrderRepository().Add(ctx, existing)
	suite.Require().NoError(err)

	customers := [2]kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	for _, customerID := range customers {
		suite.seedWallet(customerID, 100)
	}

	handler := commands.NewCreateOrderCommandHandler(settlementUoWFactory{suite.factory})

	results := make([]error, len(customers))
	var wg sync.WaitGroup
	for i, customerID := range customers {
		cmd, cmdErr := commands.NewCreateOrderCommand(
			customerID, fixture.relationID, shipment.SizeL, "Warszawa", "Radom", 20, false)
		suite.Require().NoError(cmdErr)

		wg.Add(1)
		go func(slot int, bookCmd commands.CreateOrderCommand) {
			defer wg.Done()
			_, handleErr := handler.Handle(ctx, bookCmd)
			results[slot] = handleErr
		}(i, cmd)
	}
	wg.Wait()

	winners := 0
	for _, result := range results {
		if result == nil {
			winners++
		} else {
			suite.Require().ErrorIs(result, commands.ErrConcurrencyConflict)
		}
	}
	suite.Equal(1, winners, "exactly one of the racing bookings may fit")

	active, err := suite.factory.Create().OrderRepository().
		GetActiveByRelationAndDate(ctx, fixture.relationID, tomorrow)
	suite.Require().NoError(err)

	usedCapacity := 0
	for _, booked := range active {
		usedCapacity += booked.Size().Weight()
	}
	suite.LessOrEqual(usedCapacity, 6, "booked weight must never exceed vehicle capacity")
	suite.Equal(5, usedCapacity)
}

// TestConcurrentBooking_BalanceNeverNegative races two bookings paid
// from one wallet that only covers a single price. The wallet row lock
// serializes the debits; the loser must fail instead of overdrawing.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentBooking_BalanceNeverNegative() {
	ctx := context.Background()
	fixture := suite.seedRoute()

	customerID := kernel.NewUUID()
	suite.seedWallet(customerID, 30)

	handler := commands.NewCreateOrderCommandHandler(settlementUoWFactory{suite.factory})

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := range results {
		cmd, cmdErr := commands.NewCreateOrderCommand(
			customerID, fixture.relationID, shipment.SizeS, "Warszawa", "Radom", 20, false)
		suite.Require().NoError(cmdErr)

		wg.Add(1)
		go func(slot int, bookCmd commands.CreateOrderCommand) {
			defer wg.Done()
			_, handleErr := handler.Handle(ctx, bookCmd)
			results[slot] = handleErr
		}(i, cmd)
	}
	wg.Wait()

	winners := 0
	for _, result := range results {
		if result == nil {
			winners++
		} else {
			suite.Require().ErrorIs(result, wallet.ErrInsufficientFunds)
		}
	}
	suite.Equal(1, winners, "the wallet only covers one of the racing bookings")

	remaining, err := suite.factory.Create().WalletRepository().GetByUser(ctx, customerID)
	suite.Require().NoError(err)
	suite.GreaterOrEqual(remaining.Balance(), float64(0))
	suite.Equal(float64(10), remaining.Balance())
}
