package commands_test

import (
	"context"
	"time"

	"couriernet/internal/core/application/usecases/commands"
	"couriernet/internal/core/domain/model/driver"
	"couriernet/internal/core/domain/model/kernel"
	"couriernet/internal/core/domain/model/route"
	"couriernet/internal/core/domain/model/shipment"
	"couriernet/internal/core/domain/model/wallet"
	"couriernet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *shipment.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *shipment.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderCode(ctx context.Context, orderCode string) (*shipment.Order, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistsByOrderCode(ctx context.Context, orderCode string) (bool, error) {
	args := m.Called(ctx, orderCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByRelationAndDate(
	ctx context.Context, relationID kernel.UUID, date time.Time,
) ([]*shipment.Order, error) {
	args := m.Called(ctx, relationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Order), args.Error(1)
}

func (m *MockOrderRepository) AppendHistory(ctx context.Context, change *shipment.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockOrderRepository) GetHistory(ctx context.Context, orderID kernel.UUID) ([]*shipment.StatusChange, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.StatusChange), args.Error(1)
}

func (m *MockOrderRepository) PurgeHistory(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) AddProblem(ctx context.Context, problem *shipment.Problem) error {
	args := m.Called(ctx, problem)
	return args.Error(0)
}

func (m *MockOrderRepository) PurgeProblems(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) GetStopsByName(ctx context.Context, name string) ([]*route.Stop, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Stop), args.Error(1)
}

func (m *MockRouteRepository) GetRelationStops(ctx context.Context, relationID kernel.UUID) ([]*route.Stop, error) {
	args := m.Called(ctx, relationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*route.Stop), args.Error(1)
}

func (m *MockRouteRepository) GetRelation(ctx context.Context, id kernel.UUID) (*route.Relation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Relation), args.Error(1)
}

func (m *MockRouteRepository) GetRelationForUpdate(ctx context.Context, id kernel.UUID) (*route.Relation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Relation), args.Error(1)
}

func (m *MockRouteRepository) GetVehicle(ctx context.Context, id kernel.UUID) (*route.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Vehicle), args.Error(1)
}

func (m *MockRouteRepository) GetPriceList(ctx context.Context, relationID kernel.UUID) (*route.PriceList, error) {
	args := m.Called(ctx, relationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.PriceList), args.Error(1)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Add(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByUserForUpdate(ctx context.Context, userID kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByIDCode(ctx context.Context, idCode string) (*driver.Driver, error) {
	args := m.Called(ctx, idCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ExistsByIDCode(ctx context.Context, idCode string) (bool, error) {
	args := m.Called(ctx, idCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*driver.Driver, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignUoW struct{ mockTx }

func (m *MockAssignUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockDriverUoW struct{ mockTx }

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockSettlementUoW struct{ mockTx }

func (m *MockSettlementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSettlementUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

func (m *MockSettlementUoW) WalletRepository() ports.WalletRepository {
	args := m.Called()
	return args.Get(0).(ports.WalletRepository)
}

type MockSettlementUoWFactory struct{ mock.Mock }

func (m *MockSettlementUoWFactory) Create() commands.SettlementUoW {
	args := m.Called()
	return args.Get(0).(commands.SettlementUoW)
}
